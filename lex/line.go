// Package lex tokenizes individual GEDCOM logical lines into level, xref,
// tag and value parts.
//
// This package handles tokenization of single GEDCOM lines, converting
// them into Line structures with level, tag, value, and cross-reference
// information. It does not concatenate CONC/CONT continuations — that is
// the interpreter's job, since it needs to know which field a value
// belongs to.
package lex

// Line is a single tokenized GEDCOM line.
//
//	LEVEL [XREF] TAG [VALUE]
type Line struct {
	// Level is the hierarchical depth (0-99).
	Level int

	// XRef is the cross-reference identifier, e.g. "@I1@", or empty.
	XRef string

	// Tag is the GEDCOM tag, e.g. HEAD, INDI, NAME, BIRT.
	Tag string

	// Value is everything after the tag, or empty.
	Value string

	// LineNumber is the 1-based logical line number, for diagnostics.
	LineNumber int
}
