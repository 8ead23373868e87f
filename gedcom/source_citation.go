package gedcom

// SourceCitation links a record or fact to the source that documents it
// (a SOUR subordinate pointing at a top-level SOUR record).
type SourceCitation struct {
	// SourceXRef is the cross-reference to the SOUR record.
	SourceXRef string

	// Source is the resolved pointer for SourceXRef, populated during
	// cross-reference resolution.
	Source *Source

	// Page is the specific location within the source (PAGE subordinate).
	Page string

	// Quality is the assessed reliability of the citation, 0-3 (QUAY
	// subordinate).
	Quality int

	// Data holds the DATA subordinate, when present.
	Data *SourceCitationData

	// AncestryAPID holds the Ancestry Permanent Identifier (_APID vendor
	// extension), when present.
	AncestryAPID *AncestryAPID
}

// SourceCitationData holds the DATE/TEXT subordinates of a SOUR citation's
// DATA structure.
type SourceCitationData struct {
	// Date is when the cited data was recorded (DATE subordinate).
	Date string

	// Text is the text copied from the source (TEXT subordinate).
	Text string
}
