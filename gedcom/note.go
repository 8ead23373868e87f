package gedcom

// Note represents a textual note or annotation. CONT/CONC continuation
// lines are merged into Text during decoding, so Text already holds the
// complete multi-line content.
type Note struct {
	// XRef is the cross-reference identifier for this note
	XRef string

	// Text is the full note content, with CONT lines joined by "\n" and
	// CONC lines concatenated directly.
	Text string

	// CustomFacts holds tags the interpreter has no typed field for.
	CustomFacts []*Tag
}

// NoteRef is a NOTE subordinate attached to another record, which GEDCOM
// allows to be either a pointer to a top-level NOTE record or inline note
// text directly on the line (per the NOTE_STRUCTURE grammar).
type NoteRef struct {
	// XRef is the cross-reference to a top-level NOTE record (e.g.
	// "@N1@"). Empty when the note is inline text.
	XRef string

	// Text is the inline note content, with CONT/CONC continuation lines
	// merged in. Empty when XRef is set.
	Text string

	// Note is the resolved pointer for XRef, populated during
	// cross-reference resolution. Nil for inline notes or when XRef
	// could not be resolved.
	Note *Note
}
