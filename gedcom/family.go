package gedcom

// Family represents a family unit (husband, wife, and children).
type Family struct {
	// XRef is the cross-reference identifier for this family
	XRef string

	// Husband is the XRef to the husband individual
	Husband string

	// HusbandIndividual is the resolved pointer for Husband, populated
	// during cross-reference resolution.
	HusbandIndividual *Individual

	// Wife is the XRef to the wife individual
	Wife string

	// WifeIndividual is the resolved pointer for Wife, populated during
	// cross-reference resolution.
	WifeIndividual *Individual

	// Children are XRefs to child individuals
	Children []string

	// ChildIndividuals holds the resolved pointers for Children, populated
	// during cross-reference resolution, in the same order. An entry is nil
	// if its xref could not be resolved.
	ChildIndividuals []*Individual

	// Events contains family events (marriage, divorce, etc.)
	Events []*Event

	// SourceCitations are source citations with page/quality details
	SourceCitations []*SourceCitation

	// Notes are references to note records, either by pointer or inline
	// text, disambiguated and resolved during cross-reference resolution.
	Notes []*NoteRef

	// Media are references to media objects with optional crop/title.
	Media []*MediaLink

	// LDSOrdinances are LDS (Latter-Day Saints) ordinances (SLGS - spouse sealing)
	LDSOrdinances []*LDSOrdinance

	// ChangeDate is when the record was last modified (CHAN tag).
	ChangeDate *ChangeDate

	// CustomFacts holds tags the interpreter has no typed field for.
	CustomFacts []*Tag
}

// AllMembers returns the husband, wife, and children of the family, in that
// order, using the resolved pointers populated during cross-reference
// resolution. Members whose xref could not be resolved are omitted.
func (f *Family) AllMembers() []*Individual {
	var members []*Individual
	if f.HusbandIndividual != nil {
		members = append(members, f.HusbandIndividual)
	}
	if f.WifeIndividual != nil {
		members = append(members, f.WifeIndividual)
	}
	for _, child := range f.ChildIndividuals {
		if child != nil {
			members = append(members, child)
		}
	}
	return members
}

// ResolvedChildren returns ChildIndividuals with unresolved (nil) entries
// filtered out, preserving GEDCOM file order.
func (f *Family) ResolvedChildren() []*Individual {
	var children []*Individual
	for _, child := range f.ChildIndividuals {
		if child != nil {
			children = append(children, child)
		}
	}
	return children
}
