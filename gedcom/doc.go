// Package gedcom defines the core data types for representing GEDCOM genealogy data.
//
// This package provides the fundamental structures for working with GEDCOM files,
// including individuals, families, sources, events, and other genealogical records.
// It supports GEDCOM versions 5.5 and 5.5.1.
//
// The main entry point is the Gedcom type, which contains a parsed GEDCOM file
// with all of its entities indexed by cross-reference. Entities can be accessed
// through the plural accessors (Individuals, Families, ...) or looked up directly
// by xref with the singular accessors (Individual, Family, ...).
//
// Example usage:
//
//	// After decoding a GEDCOM file
//	doc, _ := decoder.Decode(reader)
//
//	// Access individuals
//	for _, individual := range doc.Individuals() {
//	    fmt.Printf("Name: %s\n", individual.Names[0].Full)
//	}
//
//	// Lookup by cross-reference
//	person := doc.Individual("@I1@")
//	if person != nil {
//	    fmt.Printf("Found: %s\n", person.Names[0].Full)
//	}
package gedcom
