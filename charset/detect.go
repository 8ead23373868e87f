package charset

import (
	"bytes"
	"io"
	"regexp"
	"strings"
)

// sniffLen is how much of the stream Detect peeks at to find a BOM and/or
// a declared `1 CHAR` line. GEDCOM headers are short; real-world files
// never need more than a few hundred bytes to reach the CHAR tag, but
// some put SUBM/SOUR/GEDC ahead of it, so the window is generous.
const sniffLen = 8192

// Result is the outcome of encoding detection.
type Result struct {
	Encoding Encoding
	// Warnings holds non-fatal observations, e.g. a declared CHAR value
	// overridden by a conflicting BOM.
	Warnings []string
}

var charLineRE = regexp.MustCompile(`(?mi)^\s*1\s+CHAR\s+(\S+)`)

// Detect peeks the beginning of r to determine its character encoding,
// per spec.md §4.1. It returns the detected encoding, any non-fatal
// warnings, and a reader that reproduces the full original stream (BOM
// bytes consumed, everything else intact) for subsequent decoding.
//
// An unrecognized declared CHAR name is a fatal condition and returned as
// *ErrUnknownEncoding.
func Detect(r io.Reader) (Result, io.Reader, error) {
	buf := make([]byte, sniffLen)
	n, readErr := io.ReadFull(r, buf)
	if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
		return Result{}, nil, readErr
	}
	buf = buf[:n]

	bomEnc, bomSkip := sniffBOM(buf)
	declaredEnc, declaredName, declaredFound := scanDeclaredChar(buf[bomSkip:])

	if declaredFound && declaredEnc == Unknown {
		return Result{}, nil, &ErrUnknownEncoding{Declared: declaredName}
	}

	var res Result
	switch {
	case bomEnc != Unknown:
		res.Encoding = bomEnc
		if declaredFound && declaredEnc != Unknown && declaredEnc != bomEnc {
			res.Warnings = append(res.Warnings,
				"declared CHAR "+declaredName+" overridden by byte-order mark "+bomEnc.String())
		}
	default:
		if zeroByte := sniffZeroBytePattern(buf); zeroByte != Unknown {
			res.Encoding = zeroByte
		} else if declaredFound {
			res.Encoding = declaredEnc
		} else {
			// No BOM, no zero-byte heuristic, no declared CHAR: assume the
			// GEDCOM 5.5.1 default.
			res.Encoding = ASCII
		}
	}

	rest := buf[bomSkip:]
	return res, io.MultiReader(bytes.NewReader(rest), r), nil
}

// sniffBOM checks for a byte-order mark at the start of buf and returns
// the encoding it implies plus how many bytes to skip.
func sniffBOM(buf []byte) (Encoding, int) {
	switch {
	case len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF:
		return UTF8, 3
	case len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE:
		return UTF16LE, 2
	case len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF:
		return UTF16BE, 2
	default:
		return Unknown, 0
	}
}

// sniffZeroBytePattern implements the "first line begins with a UTF-16
// pattern" fallback from spec.md §4.1: '0' encoded as UTF-16LE starts with
// 0x30 0x00, UTF-16BE with 0x00 0x30.
func sniffZeroBytePattern(buf []byte) Encoding {
	if len(buf) < 2 {
		return Unknown
	}
	switch {
	case buf[0] == 0x30 && buf[1] == 0x00:
		return UTF16LE
	case buf[0] == 0x00 && buf[1] == 0x30:
		return UTF16BE
	default:
		return Unknown
	}
}

// scanDeclaredChar looks for a `1 CHAR <name>` line in buf, treating buf as
// ASCII text (safe for this purpose: the HEAD block up to and including
// CHAR is always plain ASCII in every encoding GEDCOM permits). It returns
// the mapped Encoding, the raw declared name, and whether a CHAR line was
// found at all.
func scanDeclaredChar(buf []byte) (Encoding, string, bool) {
	m := charLineRE.FindSubmatch(buf)
	if m == nil {
		return Unknown, "", false
	}
	name := strings.TrimSpace(string(m[1]))
	switch strings.ToUpper(name) {
	case "ASCII":
		return ASCII, name, true
	case "ANSEL":
		return ANSEL, name, true
	case "UTF-8", "UTF8":
		return UTF8, name, true
	case "UNICODE":
		// No BOM was found by the time this path runs, so UNICODE means
		// UTF-16LE per spec.md §4.1.
		return UTF16LE, name, true
	default:
		return Unknown, name, true
	}
}
