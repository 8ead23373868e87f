package encoder

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/kestrelgen/gedkit/gedcom"
)

// encodeState represents the current state of the streaming encoder.
type encodeState int

const (
	stateInitial        encodeState = iota // Initial state, waiting for WriteHeader
	stateHeaderWritten                     // Header has been written, can write records or trailer
	stateRecordsWritten                    // At least one record has been written, can write more records or trailer
	stateComplete                          // Trailer has been written, encoding is complete
)

// String returns a human-readable name for the encode state.
func (s encodeState) String() string {
	switch s {
	case stateInitial:
		return "Initial"
	case stateHeaderWritten:
		return "HeaderWritten"
	case stateRecordsWritten:
		return "RecordsWritten"
	case stateComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// StreamEncoder provides a streaming interface for writing GEDCOM documents.
// It allows writing records one at a time with constant memory usage,
// enabling generation of very large GEDCOM files without loading the entire
// document into memory first.
//
// The encoder enforces valid GEDCOM structure through a state machine:
//   - WriteHeader must be called first (and only once)
//   - The typed Write* methods can be called zero or more times
//   - WriteTrailer must be called to complete the document
//   - Close should be called to flush any buffered data
//
// Example usage:
//
//	f, _ := os.Create("output.ged")
//	defer f.Close()
//
//	enc := encoder.NewStreamEncoder(f)
//	enc.WriteHeader(header)
//	for _, indi := range individuals {
//	    enc.WriteIndividual(indi)
//	}
//	enc.WriteTrailer()
//	enc.Close()
type StreamEncoder struct {
	writer  *bufio.Writer
	options *EncodeOptions
	state   encodeState
	err     error // sticky error for early exit
}

// Errors returned by StreamEncoder for invalid state transitions.
var (
	ErrHeaderNotWritten      = errors.New("header must be written before writing records")
	ErrHeaderAlreadyWritten  = errors.New("header has already been written")
	ErrTrailerNotWritten     = errors.New("trailer has not been written")
	ErrTrailerAlreadyWritten = errors.New("trailer has already been written")
	ErrEncodingComplete      = errors.New("encoding is complete, no further writes allowed")
)

// NewStreamEncoder creates a new StreamEncoder that writes to w.
// It uses default encoding options (LF line endings, default max line length).
func NewStreamEncoder(w io.Writer) *StreamEncoder {
	return NewStreamEncoderWithOptions(w, DefaultOptions())
}

// NewStreamEncoderWithOptions creates a new StreamEncoder with custom options.
// If opts is nil, default options are used.
func NewStreamEncoderWithOptions(w io.Writer, opts *EncodeOptions) *StreamEncoder {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &StreamEncoder{
		writer:  bufio.NewWriter(w),
		options: opts,
		state:   stateInitial,
	}
}

// WriteHeader writes the GEDCOM header. This must be the first method called
// on the encoder and can only be called once.
//
// Returns ErrHeaderAlreadyWritten if the header has already been written,
// or ErrEncodingComplete if the encoding is already complete.
func (e *StreamEncoder) WriteHeader(h *gedcom.Header) error {
	if e.err != nil {
		return e.err
	}

	switch e.state {
	case stateInitial:
		// Valid state, proceed
	case stateHeaderWritten, stateRecordsWritten:
		return ErrHeaderAlreadyWritten
	case stateComplete:
		return ErrEncodingComplete
	}

	if err := writeHeader(e.writer, h, e.options); err != nil {
		e.err = err
		return err
	}

	e.state = stateHeaderWritten
	return nil
}

// writeEntityRecord validates the current state and writes a single top-level
// record, advancing the state machine to stateRecordsWritten on success.
func (e *StreamEncoder) writeEntityRecord(xref, tagName, value string, tags []*gedcom.Tag) error {
	if e.err != nil {
		return e.err
	}

	switch e.state {
	case stateInitial:
		return ErrHeaderNotWritten
	case stateHeaderWritten, stateRecordsWritten:
		// Valid states, proceed
	case stateComplete:
		return ErrEncodingComplete
	}

	if err := writeTopLevelRecord(e.writer, xref, tagName, value, tags, e.options); err != nil {
		e.err = err
		return err
	}

	e.state = stateRecordsWritten
	return nil
}

// WriteIndividual writes a single INDI record. WriteHeader must have been
// called before calling this method.
func (e *StreamEncoder) WriteIndividual(indi *gedcom.Individual) error {
	return e.writeEntityRecord(indi.XRef, "INDI", "", individualToTags(indi, e.options))
}

// WriteFamily writes a single FAM record. WriteHeader must have been called
// before calling this method.
func (e *StreamEncoder) WriteFamily(fam *gedcom.Family) error {
	return e.writeEntityRecord(fam.XRef, "FAM", "", familyToTags(fam, e.options))
}

// WriteSource writes a single SOUR record. WriteHeader must have been called
// before calling this method.
func (e *StreamEncoder) WriteSource(src *gedcom.Source) error {
	return e.writeEntityRecord(src.XRef, "SOUR", "", sourceToTags(src, e.options))
}

// WriteRepository writes a single REPO record. WriteHeader must have been
// called before calling this method.
func (e *StreamEncoder) WriteRepository(repo *gedcom.Repository) error {
	return e.writeEntityRecord(repo.XRef, "REPO", "", repositoryToTags(repo, e.options))
}

// WriteMediaObject writes a single OBJE record. WriteHeader must have been
// called before calling this method.
func (e *StreamEncoder) WriteMediaObject(media *gedcom.MediaObject) error {
	return e.writeEntityRecord(media.XRef, "OBJE", "", mediaObjectToTags(media, e.options))
}

// WriteSubmitter writes a single SUBM record. WriteHeader must have been
// called before calling this method.
func (e *StreamEncoder) WriteSubmitter(subm *gedcom.Submitter) error {
	return e.writeEntityRecord(subm.XRef, "SUBM", "", submitterToTags(subm, e.options))
}

// WriteNote writes a single top-level NOTE record. WriteHeader must have been
// called before calling this method.
func (e *StreamEncoder) WriteNote(note *gedcom.Note) error {
	first, rest := noteContinuationTags(note, e.options)
	rest = append(rest, note.CustomFacts...)
	return e.writeEntityRecord(note.XRef, "NOTE", first, rest)
}

// WriteTrailer writes the GEDCOM trailer (0 TRLR) to complete the document.
// This must be called after WriteHeader and optionally after writing records.
//
// Returns ErrHeaderNotWritten if the header has not been written,
// or ErrTrailerAlreadyWritten if the trailer has already been written.
func (e *StreamEncoder) WriteTrailer() error {
	if e.err != nil {
		return e.err
	}

	switch e.state {
	case stateInitial:
		return ErrHeaderNotWritten
	case stateHeaderWritten, stateRecordsWritten:
		// Valid states, proceed
	case stateComplete:
		return ErrTrailerAlreadyWritten
	}

	if err := writeTrailer(e.writer, e.options); err != nil {
		e.err = err
		return err
	}

	e.state = stateComplete
	return nil
}

// Flush flushes any buffered data to the underlying writer.
// This can be called at any time to ensure data is written.
func (e *StreamEncoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	if err := e.writer.Flush(); err != nil {
		e.err = err
		return err
	}
	return nil
}

// Close flushes any buffered data and marks the encoder as complete.
// If the trailer has not been written, it returns ErrTrailerNotWritten
// but still flushes any buffered data.
//
// After Close is called, no further writes are allowed.
func (e *StreamEncoder) Close() error {
	// Always flush, even if there's an error
	flushErr := e.writer.Flush()

	// If we already have a sticky error, return it
	if e.err != nil {
		return e.err
	}

	// If flush failed, record and return it
	if flushErr != nil {
		e.err = flushErr
		return flushErr
	}

	// Check if trailer was written
	if e.state != stateComplete {
		e.err = ErrTrailerNotWritten
		return ErrTrailerNotWritten
	}

	return nil
}

// State returns the current state of the encoder.
// This is primarily useful for testing and debugging.
func (e *StreamEncoder) State() string {
	return e.state.String()
}

// Err returns any error that occurred during encoding.
// Once an error occurs, the encoder stops accepting further writes.
func (e *StreamEncoder) Err() error {
	return e.err
}

// EncodeStreaming is a convenience function that streams a complete document
// through a StreamEncoder. It's equivalent to calling WriteHeader, the typed
// Write* methods for every entity, and WriteTrailer, but bounds memory use to
// one record at a time rather than building the whole output in a buffer.
func EncodeStreaming(w io.Writer, doc *gedcom.Gedcom) error {
	return EncodeStreamingWithOptions(w, doc, DefaultOptions())
}

// EncodeStreamingWithOptions is like EncodeStreaming but with custom options.
func EncodeStreamingWithOptions(w io.Writer, doc *gedcom.Gedcom, opts *EncodeOptions) error {
	if doc == nil {
		return fmt.Errorf("encoder: cannot encode a nil document")
	}

	enc := NewStreamEncoderWithOptions(w, opts)

	if err := enc.WriteHeader(doc.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, subm := range sortedByXRef(doc.Submitters(), func(s *gedcom.Submitter) string { return s.XRef }) {
		if err := enc.WriteSubmitter(subm); err != nil {
			return fmt.Errorf("write submitter %s: %w", subm.XRef, err)
		}
	}

	for _, indi := range sortedByXRef(doc.Individuals(), func(i *gedcom.Individual) string { return i.XRef }) {
		if err := enc.WriteIndividual(indi); err != nil {
			return fmt.Errorf("write individual %s: %w", indi.XRef, err)
		}
	}

	for _, fam := range sortedByXRef(doc.Families(), func(f *gedcom.Family) string { return f.XRef }) {
		if err := enc.WriteFamily(fam); err != nil {
			return fmt.Errorf("write family %s: %w", fam.XRef, err)
		}
	}

	for _, src := range sortedByXRef(doc.Sources(), func(s *gedcom.Source) string { return s.XRef }) {
		if err := enc.WriteSource(src); err != nil {
			return fmt.Errorf("write source %s: %w", src.XRef, err)
		}
	}

	for _, repo := range sortedByXRef(doc.Repositories(), func(r *gedcom.Repository) string { return r.XRef }) {
		if err := enc.WriteRepository(repo); err != nil {
			return fmt.Errorf("write repository %s: %w", repo.XRef, err)
		}
	}

	for _, media := range sortedByXRef(doc.MultimediaObjects(), func(m *gedcom.MediaObject) string { return m.XRef }) {
		if err := enc.WriteMediaObject(media); err != nil {
			return fmt.Errorf("write media object %s: %w", media.XRef, err)
		}
	}

	for _, note := range sortedByXRef(doc.Notes(), func(n *gedcom.Note) string { return n.XRef }) {
		if err := enc.WriteNote(note); err != nil {
			return fmt.Errorf("write note %s: %w", note.XRef, err)
		}
	}

	if err := enc.WriteTrailer(); err != nil {
		return fmt.Errorf("write trailer: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}
