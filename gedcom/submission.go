package gedcom

// Submission represents a top-level SUBN record: submission information
// for a single genealogical research submission (e.g. to a batch
// processing system such as TempleReady). GEDCOM 5.5.1 permits at most one
// SUBN record per file.
type Submission struct {
	// XRef is the cross-reference identifier for this submission.
	XRef string

	// SubmitterXRef is the raw cross-reference to the submitter (SUBM
	// subordinate).
	SubmitterXRef string

	// Submitter is the resolved pointer for SubmitterXRef, populated during
	// cross-reference resolution.
	Submitter *Submitter

	// FamilyFileName is the name of the family file (FAMF subordinate).
	FamilyFileName string

	// TempleCode is the LDS temple code (TEMP subordinate).
	TempleCode string

	// AncestorGenerations is the number of generations of ancestors
	// included (ANCE subordinate).
	AncestorGenerations string

	// DescendantGenerations is the number of generations of descendants
	// included (DESC subordinate).
	DescendantGenerations string

	// OrdinanceProcessFlag indicates whether ordinances should be processed
	// (ORDI subordinate).
	OrdinanceProcessFlag string

	// RefNumber is the submitter-assigned reference number (RIN
	// subordinate).
	RefNumber string

	// CustomFacts holds tags the interpreter has no typed field for.
	CustomFacts []*Tag
}
