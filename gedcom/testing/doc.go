// Package testing provides round-trip test helpers for GEDCOM documents.
//
// This package enables users to verify that encode/decode cycles preserve
// their genealogical data, addressing the common fear of import/export corruption.
//
// # Quick Start
//
// Use AssertRoundTrip in your tests to verify that a GEDCOM file survives
// an encode/decode cycle:
//
//	func TestMyGEDCOM(t *testing.T) {
//	    data, _ := os.ReadFile("family.ged")
//	    gedcomtesting.AssertRoundTrip(t, data)
//	}
//
// For programmatic use (e.g., validation tools), use CheckRoundTrip which
// returns a detailed report:
//
//	report, err := gedcomtesting.CheckRoundTrip(file)
//	if !report.Equal {
//	    for _, diff := range report.Differences {
//	        log.Printf("Difference at %s: %q -> %q", diff.Path, diff.Before, diff.After)
//	    }
//	}
//
// # Fidelity Contract
//
// Round-trip testing compares the two decoded documents record kind by record
// kind, matching records by cross-reference identifier. The following
// describes what is compared and what is not:
//
// Compared (must be identical after round-trip):
//   - Header Version, Encoding, SourceSystem and Language
//   - The set of XRefs of each record kind
//   - Individuals: primary full name, sex and number of events
//   - Families: husband, wife and number of children
//   - Sources: title and author; repositories and submitters: name
//   - Notes: text; media objects: form and file reference
//   - Each record's CustomFacts, in order (Level, Tag, Value, XRef)
//
// Not compared:
//   - Line numbers (expected to differ due to header reconstruction)
//   - Byte-level formatting (line endings, whitespace normalization)
//   - CONC/CONT reorganization (may be split differently)
//   - Header custom facts, unless WithHeaderTagComparison is given
//   - Record order, and typed fields not listed above
//
// # How Comparison Works
//
// The comparison algorithm:
//  1. Compares the Header fields listed above
//  2. For each record kind, compares the record count and reports XRefs
//     present on only one side, in sorted XRef order
//  3. For each XRef present on both sides, compares the fields listed above
//     and then CustomFacts:
//     - Matches tags by position (same index)
//     - Compares Level, Tag, Value, XRef fields
//     - Skips LineNumber field (expected to change)
//     - Reports path-based differences such as
//     "Individual[@I1@].CustomFacts[2].Value"
//
// # Design Rationale
//
// CustomFacts hold the tags the decoder has no typed field for. Comparing
// them by position checks that unknown and vendor-specific tags survive the
// encoder even where the library does not interpret them.
package testing
