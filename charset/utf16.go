package charset

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newUTF16Reader converts UTF-16 (LE or BE) input to UTF-8 using
// golang.org/x/text's transform machinery, then wraps the result so
// malformed code units are replaced with U+FFFD and recorded as a
// Warning instead of passing through silently or aborting.
func newUTF16Reader(r io.Reader, big bool) *utf16Reader {
	endian := unicode.LittleEndian
	if big {
		endian = unicode.BigEndian
	}
	decoder := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder()
	return &utf16Reader{
		r:    transform.NewReader(r, decoder),
		line: 1, column: 1,
	}
}

// utf16Reader tracks line/column over the UTF-8 bytes produced by the
// underlying transform.Reader and turns runs of U+FFFD (which the x/text
// decoder emits for unpaired surrogates or truncated code units) into
// Warnings.
type utf16Reader struct {
	warningSink
	r      io.Reader
	line   int
	column int
}

func (u *utf16Reader) Read(p []byte) (int, error) {
	n, err := u.r.Read(p)
	if n > 0 {
		u.scan(p[:n])
	}
	return n, err
}

func (u *utf16Reader) scan(b []byte) {
	i := 0
	for i < len(b) {
		if b[i] == replacementChar[0] && i+2 < len(b) && b[i+1] == replacementChar[1] && b[i+2] == replacementChar[2] {
			u.warn(fmt.Sprintf("invalid UTF-16 code unit at line %d, column %d replaced with U+FFFD", u.line, u.column))
			i += 3
			u.column++
			continue
		}
		if b[i] == '\n' {
			u.line++
			u.column = 1
		} else {
			u.column++
		}
		i++
	}
}
