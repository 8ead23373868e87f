package charset

import (
	"fmt"
	"io"
)

// asciiReader decodes a declared-ASCII stream to UTF-8. Bytes ≥ 0x80 are
// not valid ASCII; each is replaced with the Unicode replacement
// character and recorded as a warning rather than aborting the parse.
type asciiReader struct {
	warningSink
	r      io.Reader
	outBuf []byte
	outPos int
	column int
	line   int
}

func newASCIIReader(r io.Reader) *asciiReader {
	return &asciiReader{r: r, line: 1, column: 1}
}

func (a *asciiReader) Read(p []byte) (int, error) {
	if a.outPos < len(a.outBuf) {
		n := copy(p, a.outBuf[a.outPos:])
		a.outPos += n
		if a.outPos >= len(a.outBuf) {
			a.outBuf, a.outPos = nil, 0
		}
		return n, nil
	}

	in := make([]byte, 4096)
	n, err := a.r.Read(in)
	if n == 0 {
		return 0, err
	}

	a.outBuf = a.outBuf[:0]
	for _, b := range in[:n] {
		if b < 0x80 {
			a.outBuf = append(a.outBuf, b)
		} else {
			a.outBuf = append(a.outBuf, replacementChar...)
			a.warn(fmt.Sprintf("invalid ASCII byte 0x%02X at line %d, column %d replaced with U+FFFD", b, a.line, a.column))
		}
		if b == '\n' {
			a.line++
			a.column = 1
		} else {
			a.column++
		}
	}

	copied := copy(p, a.outBuf)
	a.outPos = copied
	if a.outPos >= len(a.outBuf) {
		a.outBuf, a.outPos = nil, 0
	}
	if copied == 0 {
		return 0, err
	}
	return copied, nil
}

var replacementChar = []byte{0xEF, 0xBF, 0xBD} // U+FFFD in UTF-8
