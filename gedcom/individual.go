package gedcom

// Individual represents a person in the GEDCOM file.
type Individual struct {
	// XRef is the cross-reference identifier for this individual
	XRef string

	// Names contains all name variants for this person
	Names []*PersonalName

	// Sex is the person's sex (M, F, X, U for unknown)
	Sex string

	// Events contains life events (birth, death, marriage, etc.)
	Events []*Event

	// Attributes contains personal attributes (occupation, education, etc.)
	Attributes []*Attribute

	// ChildInFamilies are references to families where this person is a child
	ChildInFamilies []FamilyLink

	// SpouseInFamilies are references to families where this person is a spouse
	SpouseInFamilies []string // XRef to Family records

	// Associations are links to associated individuals (godparents, witnesses, etc.)
	Associations []*Association

	// SourceCitations are source citations with page/quality details
	SourceCitations []*SourceCitation

	// Notes are references to note records, either by pointer or inline
	// text, disambiguated and resolved during cross-reference resolution.
	Notes []*NoteRef

	// Media are references to media objects with optional crop/title
	Media []*MediaLink

	// LDSOrdinances are LDS (Latter-Day Saints) ordinances (BAPL, CONL, ENDL, SLGC)
	LDSOrdinances []*LDSOrdinance

	// ChangeDate is when the record was last modified (CHAN tag)
	ChangeDate *ChangeDate

	// RefNumber is the user reference number (REFN tag)
	RefNumber string

	// SpouseFamilies holds the resolved Family pointers for SpouseInFamilies,
	// populated during cross-reference resolution. An entry is nil if its
	// xref could not be resolved (recorded as a dangling-reference error).
	SpouseFamilies []*Family

	// FamilySearchID is the FamilySearch Family Tree ID (_FSFTID tag).
	// This is a vendor extension from FamilySearch.org that uniquely identifies
	// an individual in their Family Tree database. Format: alphanumeric like "KWCJ-QN7".
	FamilySearchID string

	// CustomFacts holds tags the interpreter has no typed field for.
	CustomFacts []*Tag
}

// PersonalName represents a person's name with optional components.
type PersonalName struct {
	// Full is the full name (e.g., "John /Doe/")
	Full string

	// Given is the given (first) name
	Given string

	// Surname is the family name
	Surname string

	// Prefix is the name prefix (e.g., "Dr.", "Sir")
	Prefix string

	// Suffix is the name suffix (e.g., "Jr.", "III")
	Suffix string

	// Nickname is the person's nickname (e.g., "Bill" for William)
	Nickname string

	// SurnamePrefix is the surname prefix (e.g., "von", "de", "van der")
	SurnamePrefix string

	// Type is the name type (e.g., "birth", "married", "aka")
	Type string
}

// FamilyLink represents a link to a family with optional pedigree type.
type FamilyLink struct {
	// FamilyXRef is the cross-reference to the family record
	FamilyXRef string

	// Family is the resolved Family pointer, populated during cross-reference
	// resolution. Nil if FamilyXRef could not be resolved.
	Family *Family

	// Pedigree is the pedigree linkage type (e.g., "birth", "adopted", "foster", "sealing")
	// Empty string if not specified. Preserves original casing from GEDCOM.
	Pedigree string
}

// Association represents a link to an associated individual with a role.
// Used for relationships like godparents (GODP), witnesses (WITN), etc.
type Association struct {
	// IndividualXRef is the cross-reference to the associated individual
	IndividualXRef string

	// Individual is the resolved pointer for IndividualXRef, populated during
	// cross-reference resolution. Nil if IndividualXRef could not be resolved.
	Individual *Individual

	// Relation is the relationship role (RELA tag), e.g. "Godparent", "Witness".
	Relation string

	// SourceCitations are source citations documenting this association.
	SourceCitations []*SourceCitation

	// Notes are note references for this association.
	Notes []*NoteRef
}

// Attribute represents a personal attribute.
type Attribute struct {
	// Type is the attribute type (e.g., "OCCU" for occupation, "EDUC" for education)
	Type string

	// Value is the attribute value
	Value string

	// Date when the attribute was applicable (optional)
	Date string

	// ParsedDate is the parsed representation of Date.
	// This is nil if the date string could not be parsed.
	ParsedDate *Date

	// Place where the attribute was applicable (optional)
	Place string

	// SourceCitations are source citations with page/quality details
	SourceCitations []*SourceCitation
}

// BirthEvent returns the first birth event for this individual, or nil if none found.
func (i *Individual) BirthEvent() *Event {
	for _, event := range i.Events {
		if event.Type == EventBirth {
			return event
		}
	}
	return nil
}

// DeathEvent returns the first death event for this individual, or nil if none found.
func (i *Individual) DeathEvent() *Event {
	for _, event := range i.Events {
		if event.Type == EventDeath {
			return event
		}
	}
	return nil
}

// BirthDate returns the parsed birth date for this individual, or nil if no birth event
// or no parsed date is available.
func (i *Individual) BirthDate() *Date {
	event := i.BirthEvent()
	if event == nil {
		return nil
	}
	return event.ParsedDate
}

// DeathDate returns the parsed death date for this individual, or nil if no death event
// or no parsed date is available.
func (i *Individual) DeathDate() *Date {
	event := i.DeathEvent()
	if event == nil {
		return nil
	}
	return event.ParsedDate
}

// FamilySearchURL returns the FamilySearch.org URL for this individual's record.
// Returns an empty string if FamilySearchID is not set.
func (i *Individual) FamilySearchURL() string {
	if i.FamilySearchID == "" {
		return ""
	}
	return "https://www.familysearch.org/tree/person/details/" + i.FamilySearchID
}

// Parents returns the husband and wife of every family this individual is a
// child in, using the resolved family and spouse pointers. Unresolved links
// are skipped.
func (i *Individual) Parents() []*Individual {
	var parents []*Individual
	for _, link := range i.ChildInFamilies {
		if link.Family == nil {
			continue
		}
		if link.Family.HusbandIndividual != nil {
			parents = append(parents, link.Family.HusbandIndividual)
		}
		if link.Family.WifeIndividual != nil {
			parents = append(parents, link.Family.WifeIndividual)
		}
	}
	return parents
}

// Spouses returns the other spouse in every family this individual is a
// spouse in, handling remarriage by returning one entry per family.
func (i *Individual) Spouses() []*Individual {
	var spouses []*Individual
	for _, fam := range i.SpouseFamilies {
		if fam == nil {
			continue
		}
		if fam.HusbandIndividual != nil && fam.HusbandIndividual.XRef != i.XRef {
			spouses = append(spouses, fam.HusbandIndividual)
		}
		if fam.WifeIndividual != nil && fam.WifeIndividual.XRef != i.XRef {
			spouses = append(spouses, fam.WifeIndividual)
		}
	}
	return spouses
}

// Children returns the children of every family this individual is a
// spouse in, preserving GEDCOM file order within each family.
func (i *Individual) Children() []*Individual {
	var children []*Individual
	for _, fam := range i.SpouseFamilies {
		if fam == nil {
			continue
		}
		children = append(children, fam.ResolvedChildren()...)
	}
	return children
}
