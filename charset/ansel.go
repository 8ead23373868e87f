// ANSEL decoder for GEDCOM character encoding support.
//
// ANSEL (ANSI Z39.47) is a legacy character encoding used in GEDCOM 5.5
// files. This file implements an io.Reader that converts ANSEL-encoded
// bytes to UTF-8.
//
// ANSEL places combining diacritical marks BEFORE the base character,
// while Unicode places them AFTER; this decoder reorders them as it goes.
// For example, ANSEL bytes [0xE2, 0x65] (acute + e) become UTF-8 "é"
// (e + combining acute).

package charset

import (
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// anselReader implements io.Reader, converting ANSEL-encoded input to
// UTF-8. Bytes that don't map to a defined ANSEL code point are decoded as
// Windows-1252 where that gives a printable character, and otherwise
// replaced with U+FFFD; either way a Warning is recorded rather than
// aborting decoding.
type anselReader struct {
	warningSink
	reader  io.Reader
	pending []rune
	outBuf  []byte
	outPos  int
	line    int
	column  int
	eof     bool
}

func newAnselReader(r io.Reader) *anselReader {
	return &anselReader{
		reader:  r,
		pending: make([]rune, 0, 4),
		outBuf:  make([]byte, 0, 256),
		line:    1,
		column:  1,
	}
}

func (r *anselReader) Read(p []byte) (int, error) {
	if n, done := r.returnBuffered(p); done {
		return n, nil
	}
	if r.eof {
		return 0, io.EOF
	}

	r.outBuf = r.outBuf[:0]
	r.outPos = 0

	n, err := r.readAndProcess(p)
	if n > 0 || err != nil {
		return n, err
	}
	if !r.eof {
		return r.Read(p)
	}
	return 0, io.EOF
}

func (r *anselReader) returnBuffered(p []byte) (int, bool) {
	if r.outPos >= len(r.outBuf) {
		return 0, false
	}
	n := copy(p, r.outBuf[r.outPos:])
	r.outPos += n
	if r.outPos >= len(r.outBuf) {
		r.outBuf, r.outPos = r.outBuf[:0], 0
	}
	return n, true
}

func (r *anselReader) readAndProcess(p []byte) (int, error) {
	inputBuf := make([]byte, 256)
	nRead, readErr := r.reader.Read(inputBuf)
	if readErr != nil && readErr != io.EOF {
		return 0, readErr
	}

	if nRead == 0 && readErr == io.EOF {
		r.eof = true
		r.flushPendingCombining()
		if n, done := r.returnBuffered(p); done {
			return n, nil
		}
		return 0, io.EOF
	}

	for i := 0; i < nRead; i++ {
		r.processByte(inputBuf[i])
	}

	if readErr == io.EOF {
		r.eof = true
		r.flushPendingCombining()
	}

	if n, done := r.returnBuffered(p); done {
		return n, nil
	}
	return 0, nil
}

// processByte converts one ANSEL input byte to UTF-8, appending to outBuf.
// Undefined byte values are decoded via the Windows-1252 fallback when it
// yields a printable character, else replaced with U+FFFD; both cases are
// warned about and never stop decoding.
func (r *anselReader) processByte(b byte) {
	if IsCombiningDiacritical(b) {
		if combining, ok := anselCombining[b]; ok {
			r.pending = append(r.pending, combining)
		} else {
			r.emitRune('�')
			r.warn(fmt.Sprintf("undefined ANSEL combining mark 0x%02X at line %d, column %d", b, r.line, r.column))
		}
		r.column++
		return
	}

	var baseRune rune
	switch {
	case b < 0x80:
		baseRune = rune(b)
	default:
		if mapped, ok := anselToUnicode[b]; ok {
			baseRune = mapped
		} else if fallback := charmap.Windows1252.DecodeByte(b); fallback != utf8.RuneError && (fallback < 0x80 || fallback > 0x9F) {
			// Not a defined ANSEL code point, but the byte is plausible
			// Windows-1252 text misdeclared as ANSEL; use the Latin-adjacent
			// mapping rather than losing the character outright.
			baseRune = fallback
			r.warn(fmt.Sprintf("undefined ANSEL byte 0x%02X at line %d, column %d decoded via Windows-1252 fallback", b, r.line, r.column))
		} else {
			baseRune = '�'
			r.warn(fmt.Sprintf("invalid ANSEL byte 0x%02X at line %d, column %d replaced with U+FFFD", b, r.line, r.column))
		}
	}

	r.emitRune(baseRune)
	for _, combining := range r.pending {
		r.emitRune(combining)
	}
	r.pending = r.pending[:0]

	if b == '\n' {
		r.line++
		r.column = 1
	} else {
		r.column++
	}
}

func (r *anselReader) emitRune(ru rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], ru)
	r.outBuf = append(r.outBuf, buf[:n]...)
}

func (r *anselReader) flushPendingCombining() {
	for _, combining := range r.pending {
		r.emitRune(combining)
	}
	r.pending = r.pending[:0]
}
