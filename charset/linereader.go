package charset

import (
	"bufio"
	"errors"
	"io"

	"github.com/kestrelgen/gedkit/cancel"
)

// ErrCancelled is returned by LineReader.Next when the supplied
// cancellation flag was observed set during a read.
var ErrCancelled = errors.New("charset: parse cancelled")

// ProgressEvent reports how many logical lines have been read so far.
// Complete is true exactly once, on the final event for a stream.
type ProgressEvent struct {
	Lines    int
	Complete bool
}

// ProgressFunc receives ProgressEvents. It is invoked synchronously on
// the parsing goroutine; panics from it are recovered and ignored so a
// misbehaving observer can't abort the parse.
type ProgressFunc func(ProgressEvent)

// LineReaderOptions configures a LineReader.
type LineReaderOptions struct {
	// NotificationRate is how many logical lines elapse between progress
	// events. Zero means use the default of 500.
	NotificationRate int
	CancelFlag       *cancel.Flag
	Observers        []ProgressFunc
}

// NewDecodedReader selects the decode reader for enc and returns it along
// with a function to retrieve warnings accumulated during decoding.
func NewDecodedReader(r io.Reader, enc Encoding) (io.Reader, func() []Warning) {
	switch enc {
	case ANSEL:
		dr := newAnselReader(r)
		return dr, dr.Warnings
	case UTF16LE:
		dr := newUTF16Reader(r, false)
		return dr, dr.Warnings
	case UTF16BE:
		dr := newUTF16Reader(r, true)
		return dr, dr.Warnings
	case UTF8:
		dr := newUTF8Reader(r)
		return dr, dr.Warnings
	default: // ASCII and Unknown both decode as ASCII
		dr := newASCIIReader(r)
		return dr, dr.Warnings
	}
}

// LineReader splits a decoded UTF-8 byte stream into logical lines,
// normalizing across the \r, \n, \r\n and \n\r terminator dialects,
// discarding blank lines produced by consecutive terminators, interning
// common tokens, and emitting progress events and cancellation checks per
// spec.md §4.2.
type LineReader struct {
	scanner *bufio.Scanner
	opts    LineReaderOptions
	rate    int
	lines   int
	done    bool
}

// NewLineReader wraps r (already decoded to UTF-8) with terminator
// splitting, progress notification and cancellation support.
func NewLineReader(r io.Reader, opts LineReaderOptions) *LineReader {
	rate := opts.NotificationRate
	if rate <= 0 {
		rate = 500
	}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	s.Split(splitAnyTerminator)
	return &LineReader{scanner: s, opts: opts, rate: rate}
}

// Next returns the next non-blank logical line, or io.EOF when the stream
// is exhausted. It returns ErrCancelled if the configured CancelFlag was
// observed set.
func (lr *LineReader) Next() (string, error) {
	if lr.done {
		return "", io.EOF
	}
	for {
		if lr.opts.CancelFlag.Requested() {
			lr.done = true
			lr.notify(true)
			return "", ErrCancelled
		}

		if !lr.scanner.Scan() {
			lr.done = true
			if err := lr.scanner.Err(); err != nil {
				return "", err
			}
			lr.notify(true)
			return "", io.EOF
		}

		line := lr.scanner.Text()
		if line == "" {
			continue // consecutive terminators: discard the blank line
		}

		lr.lines++
		if lr.lines%lr.rate == 0 {
			lr.notify(false)
		}
		return Intern(line), nil
	}
}

func (lr *LineReader) notify(complete bool) {
	ev := ProgressEvent{Lines: lr.lines, Complete: complete}
	for _, obs := range lr.opts.Observers {
		lr.safeNotify(obs, ev)
	}
}

func (lr *LineReader) safeNotify(obs ProgressFunc, ev ProgressEvent) {
	defer func() {
		_ = recover() // an observer panic must not abort the parse
	}()
	obs(ev)
}

// splitAnyTerminator is a bufio.SplitFunc recognizing \r, \n, \r\n and
// \n\r as a single terminator each.
func splitAnyTerminator(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			if i+1 < len(data) && data[i+1] == '\r' {
				return i + 2, data[:i], nil
			}
			if i+1 == len(data) && !atEOF {
				break
			}
			return i + 1, data[:i], nil
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			if i+1 == len(data) && !atEOF {
				break
			}
			return i + 1, data[:i], nil
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
