// Package gedcom defines the core data types for representing GEDCOM
// genealogy data.
//
// This package provides the fundamental structures for working with GEDCOM
// 5.5 and 5.5.1 files, including individuals, families, sources, events,
// and other genealogical records. The main entry point is the Gedcom type,
// which owns one map per entity kind plus the header, optional submission
// record, and trailer. Individual records can be accessed through the
// typed accessor methods or by looking an xref up directly in the
// appropriate map.
//
// Example usage:
//
//	// After decoding a GEDCOM file
//	g, _ := decoder.Decode(reader)
//
//	// Access individuals
//	for _, individual := range g.Individuals() {
//	    fmt.Printf("Name: %s\n", individual.Names[0].Full)
//	}
//
//	// Lookup by cross-reference
//	person := g.Individual("@I1@")
//	if person != nil {
//	    fmt.Printf("Found: %s\n", person.Names[0].Full)
//	}
package gedcom

// Gedcom is the root of a decoded GEDCOM file. Each entity kind has its own
// map, keyed by xref, and is the sole owner of the entities it holds; every
// other reference to an entity elsewhere in the graph is a non-owning
// pointer populated during cross-reference resolution.
type Gedcom struct {
	// Header contains file metadata (the single 0 HEAD record).
	Header *Header

	// Submission is the optional single 0 SUBN record.
	Submission *Submission

	// Trailer marks the end of the file (the single 0 TRLR record).
	Trailer *Trailer

	// IndividualsByXRef holds every INDI record, keyed by xref.
	IndividualsByXRef map[string]*Individual

	// FamiliesByXRef holds every FAM record, keyed by xref.
	FamiliesByXRef map[string]*Family

	// SourcesByXRef holds every SOUR record, keyed by xref.
	SourcesByXRef map[string]*Source

	// RepositoriesByXRef holds every REPO record, keyed by xref.
	RepositoriesByXRef map[string]*Repository

	// NotesByXRef holds every top-level NOTE record, keyed by xref.
	NotesByXRef map[string]*Note

	// MultimediaByXRef holds every OBJE record, keyed by xref.
	MultimediaByXRef map[string]*MediaObject

	// SubmittersByXRef holds every SUBM record, keyed by xref.
	SubmittersByXRef map[string]*Submitter
}

// New returns a Gedcom with all entity-kind maps initialized and empty.
func New() *Gedcom {
	return &Gedcom{
		IndividualsByXRef:  make(map[string]*Individual),
		FamiliesByXRef:     make(map[string]*Family),
		SourcesByXRef:      make(map[string]*Source),
		RepositoriesByXRef: make(map[string]*Repository),
		NotesByXRef:        make(map[string]*Note),
		MultimediaByXRef:   make(map[string]*MediaObject),
		SubmittersByXRef:   make(map[string]*Submitter),
	}
}

// Individual returns the individual with the given xref, or nil.
func (g *Gedcom) Individual(xref string) *Individual { return g.IndividualsByXRef[xref] }

// Family returns the family with the given xref, or nil.
func (g *Gedcom) Family(xref string) *Family { return g.FamiliesByXRef[xref] }

// Source returns the source with the given xref, or nil.
func (g *Gedcom) Source(xref string) *Source { return g.SourcesByXRef[xref] }

// Repository returns the repository with the given xref, or nil.
func (g *Gedcom) Repository(xref string) *Repository { return g.RepositoriesByXRef[xref] }

// Note returns the top-level note with the given xref, or nil.
func (g *Gedcom) Note(xref string) *Note { return g.NotesByXRef[xref] }

// Media returns the multimedia object with the given xref, or nil.
func (g *Gedcom) Media(xref string) *MediaObject { return g.MultimediaByXRef[xref] }

// Submitter returns the submitter with the given xref, or nil.
func (g *Gedcom) Submitter(xref string) *Submitter { return g.SubmittersByXRef[xref] }

// Individuals returns all individual records.
func (g *Gedcom) Individuals() []*Individual {
	out := make([]*Individual, 0, len(g.IndividualsByXRef))
	for _, v := range g.IndividualsByXRef {
		out = append(out, v)
	}
	return out
}

// Families returns all family records.
func (g *Gedcom) Families() []*Family {
	out := make([]*Family, 0, len(g.FamiliesByXRef))
	for _, v := range g.FamiliesByXRef {
		out = append(out, v)
	}
	return out
}

// Sources returns all source records.
func (g *Gedcom) Sources() []*Source {
	out := make([]*Source, 0, len(g.SourcesByXRef))
	for _, v := range g.SourcesByXRef {
		out = append(out, v)
	}
	return out
}

// Repositories returns all repository records.
func (g *Gedcom) Repositories() []*Repository {
	out := make([]*Repository, 0, len(g.RepositoriesByXRef))
	for _, v := range g.RepositoriesByXRef {
		out = append(out, v)
	}
	return out
}

// Notes returns all top-level note records.
func (g *Gedcom) Notes() []*Note {
	out := make([]*Note, 0, len(g.NotesByXRef))
	for _, v := range g.NotesByXRef {
		out = append(out, v)
	}
	return out
}

// MultimediaObjects returns all multimedia records.
func (g *Gedcom) MultimediaObjects() []*MediaObject {
	out := make([]*MediaObject, 0, len(g.MultimediaByXRef))
	for _, v := range g.MultimediaByXRef {
		out = append(out, v)
	}
	return out
}

// Submitters returns all submitter records.
func (g *Gedcom) Submitters() []*Submitter {
	out := make([]*Submitter, 0, len(g.SubmittersByXRef))
	for _, v := range g.SubmittersByXRef {
		out = append(out, v)
	}
	return out
}
