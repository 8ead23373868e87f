// Package bytesource abstracts the raw byte stream a GEDCOM file is read
// from. It exists so the charset and decoder packages never need to know
// whether the bytes came from an os.File, an in-memory buffer, or an
// arbitrary io.Reader, and so progress reporting can consult a total size
// when one happens to be known.
package bytesource

import (
	"bytes"
	"io"
	"os"
)

// Source is a seekable-once stream of raw bytes. Implementations are read
// once, front to back; Source does not support rewinding.
type Source interface {
	io.Reader

	// Size returns the total number of bytes in the stream, or -1 if the
	// size is not known in advance (e.g. an arbitrary io.Reader).
	Size() int64
}

// FromFile opens path and returns a Source that reports its size via stat.
func FromFile(path string) (Source, error) {
	f, err := os.Open(path) // #nosec G304 -- caller-provided path is the whole point of this API
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &fileSource{file: f, size: info.Size()}, nil
}

type fileSource struct {
	file *os.File
	size int64
}

func (s *fileSource) Read(p []byte) (int, error) { return s.file.Read(p) }
func (s *fileSource) Size() int64                { return s.size }

// Close releases the underlying file handle, if the Source came from
// FromFile. Sources that don't own a closable resource implement Close as
// a no-op via CloseIfCloser.
func (s *fileSource) Close() error { return s.file.Close() }

// FromBytes wraps an in-memory buffer as a Source with a known size.
func FromBytes(data []byte) Source {
	return &memSource{r: bytes.NewReader(data), size: int64(len(data))}
}

type memSource struct {
	r    *bytes.Reader
	size int64
}

func (s *memSource) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *memSource) Size() int64                { return s.size }

// FromReader wraps an arbitrary io.Reader whose total size is unknown.
func FromReader(r io.Reader) Source {
	return &readerSource{r: r}
}

type readerSource struct {
	r io.Reader
}

func (s *readerSource) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *readerSource) Size() int64                { return -1 }

// CloseIfCloser closes src if it implements io.Closer, swallowing a nil
// error. Callers use this so they can unconditionally defer-close a Source
// without a type switch at every call site.
func CloseIfCloser(src Source) error {
	if c, ok := src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
