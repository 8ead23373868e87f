package charset

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// utf8Reader validates a declared-UTF-8 stream, replacing any malformed
// byte sequence with U+FFFD and recording a warning, per spec.md §4.2.
type utf8Reader struct {
	warningSink
	r       io.Reader
	pending []byte // unconsumed bytes from the previous read, may end mid-rune
	outBuf  []byte
	outPos  int
	line    int
	column  int
	eof     bool
}

func newUTF8Reader(r io.Reader) *utf8Reader {
	return &utf8Reader{r: r, line: 1, column: 1}
}

func (u *utf8Reader) Read(p []byte) (int, error) {
	if u.outPos < len(u.outBuf) {
		n := copy(p, u.outBuf[u.outPos:])
		u.outPos += n
		if u.outPos >= len(u.outBuf) {
			u.outBuf, u.outPos = nil, 0
		}
		return n, nil
	}
	if u.eof && len(u.pending) == 0 {
		return 0, io.EOF
	}

	buf := make([]byte, 4096)
	n, err := u.r.Read(buf)
	data := append(u.pending, buf[:n]...)
	u.pending = nil

	if err == io.EOF {
		u.eof = true
	} else if err != nil {
		return 0, err
	}

	u.outBuf = u.outBuf[:0]
	i := 0
	for i < len(data) {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			if !u.eof && i+utf8.UTFMax > len(data) {
				// Might be a truncated rune at the end of this chunk; hold
				// it back for the next read.
				u.pending = append(u.pending, data[i:]...)
				break
			}
			u.outBuf = append(u.outBuf, replacementChar...)
			u.warn(fmt.Sprintf("invalid UTF-8 byte 0x%02X at line %d, column %d replaced with U+FFFD", data[i], u.line, u.column))
			i++
			u.column++
			continue
		}
		u.outBuf = append(u.outBuf, data[i:i+size]...)
		if r == '\n' {
			u.line++
			u.column = 1
		} else {
			u.column++
		}
		i += size
	}

	copied := copy(p, u.outBuf)
	u.outPos = copied
	if u.outPos >= len(u.outBuf) {
		u.outBuf, u.outPos = nil, 0
	}
	if copied == 0 {
		if u.eof {
			return 0, io.EOF
		}
		return u.Read(p)
	}
	return copied, nil
}
