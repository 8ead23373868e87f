package gedcom

// Source represents a source of genealogical information.
type Source struct {
	// XRef is the cross-reference identifier for this source
	XRef string

	// Title is the source title
	Title string

	// Author is the source author/originator
	Author string

	// Publication is publication information
	Publication string

	// Text is the actual text from the source
	Text string

	// RepositoryRef is the XRef to the repository where this source is stored
	RepositoryRef string

	// Repository is the resolved pointer for RepositoryRef, populated during
	// cross-reference resolution.
	Repository *Repository

	// InlineRepository holds repository data given inline under SOUR.REPO
	// rather than as a pointer to a separate REPO record.
	InlineRepository *InlineRepository

	// Media are references to media objects with optional title.
	Media []*MediaLink

	// Notes are references to note records, either by pointer or inline
	// text, disambiguated and resolved during cross-reference resolution.
	Notes []*NoteRef

	// ChangeDate records when this source was last modified.
	ChangeDate *ChangeDate

	// CustomFacts holds tags the interpreter has no typed field for.
	CustomFacts []*Tag
}
