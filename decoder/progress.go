package decoder

import "io"

// progressReader wraps an io.Reader to track bytes read and fan out to
// registered callbacks.
type progressReader struct {
	reader    io.Reader
	bytesRead int64
	totalSize int64
	callbacks []ProgressCallback
}

// newProgressReader wraps r so every read reports bytesRead/totalSize to
// callbacks. totalSize is -1 when unknown. Returns r unwrapped if there
// are no callbacks to notify.
func newProgressReader(r io.Reader, totalSize int64, callbacks []ProgressCallback) io.Reader {
	if len(callbacks) == 0 {
		return r
	}
	if totalSize == 0 {
		totalSize = -1
	}
	return &progressReader{reader: r, totalSize: totalSize, callbacks: callbacks}
}

// Read implements io.Reader, tracking cumulative bytes and invoking the callbacks.
func (p *progressReader) Read(buf []byte) (n int, err error) {
	n, err = p.reader.Read(buf)
	if n > 0 {
		p.bytesRead += int64(n)
		for _, cb := range p.callbacks {
			p.safeNotify(cb)
		}
	}
	return n, err
}

func (p *progressReader) safeNotify(cb ProgressCallback) {
	defer func() {
		_ = recover() // an observer panic must not abort the decode
	}()
	cb(p.bytesRead, p.totalSize)
}
