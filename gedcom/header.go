package gedcom

import "time"

// Header contains metadata about the GEDCOM file.
type Header struct {
	// Version is the GEDCOM specification version
	Version Version

	// Encoding is the character encoding used in the file
	Encoding Encoding

	// SourceSystem identifies the software that created the file
	SourceSystem string

	// Vendor is detected from SourceSystem (HEAD.SOUR), identifying the
	// genealogy product that produced this file.
	Vendor Vendor

	// Date is when the file was created
	Date time.Time

	// Language is the primary language used in the file (optional)
	Language string

	// Copyright notice (optional)
	Copyright string

	// SubmitterXRef is the raw cross-reference to the submitting individual
	// or organization (SUBM tag under HEAD).
	SubmitterXRef string

	// Submitter is the resolved Submitter pointer, populated during
	// cross-reference resolution. Nil if SubmitterXRef could not be resolved.
	Submitter *Submitter

	// AncestryTreeID is the Ancestry.com tree identifier from HEAD.SOUR._TREE.
	// This is an Ancestry.com vendor extension that identifies the family tree
	// this GEDCOM was exported from.
	AncestryTreeID string

	// CustomFacts holds tags under HEAD the interpreter has no typed field for.
	CustomFacts []*Tag
}
