// Package charset detects the character encoding of a raw GEDCOM byte
// stream and decodes it into a sequence of logical text lines.
//
// Detect examines a byte-order mark and/or a declared `1 CHAR` header
// line to pick one of five encodings: ASCII, ANSEL, UTF-8, UTF-16LE or
// UTF-16BE. NewDecodedReader then produces an io.Reader that normalizes
// the chosen encoding to UTF-8, replacing any malformed byte sequence
// with U+FFFD and recording a Warning rather than aborting. LineReader
// wraps that UTF-8 stream, splitting it on any of the four terminator
// dialects GEDCOM permits, discarding blank lines, emitting progress
// events at a configurable interval, and observing a cancellation flag.
package charset
