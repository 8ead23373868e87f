package testing

import (
	"fmt"
	"sort"

	"github.com/kestrelgen/gedkit/gedcom"
)

// compareDocuments compares two parsed GEDCOM documents and returns differences.
// It compares headers and every entity collection (individuals, families,
// sources, repositories, notes, media objects, submitters) by cross-reference.
func compareDocuments(before, after *gedcom.Gedcom, report *RoundTripReport, cfg *roundTripConfig) {
	compareHeaders(before.Header, after.Header, report, cfg)

	compareIndividuals(before.IndividualsByXRef, after.IndividualsByXRef, report)
	compareFamilies(before.FamiliesByXRef, after.FamiliesByXRef, report)
	compareSources(before.SourcesByXRef, after.SourcesByXRef, report)
	compareRepositories(before.RepositoriesByXRef, after.RepositoriesByXRef, report)
	compareNotes(before.NotesByXRef, after.NotesByXRef, report)
	compareMedia(before.MultimediaByXRef, after.MultimediaByXRef, report)
	compareSubmitters(before.SubmittersByXRef, after.SubmittersByXRef, report)
}

// compareHeaders compares two header structs.
func compareHeaders(before, after *gedcom.Header, report *RoundTripReport, cfg *roundTripConfig) {
	if before == nil && after == nil {
		return
	}
	if before == nil {
		report.AddDifference("Header", "nil", "present")
		return
	}
	if after == nil {
		report.AddDifference("Header", "present", "nil")
		return
	}

	if before.Version != after.Version {
		report.AddDifference("Header.Version", string(before.Version), string(after.Version))
	}

	if before.Encoding != after.Encoding {
		report.AddDifference("Header.Encoding", string(before.Encoding), string(after.Encoding))
	}

	if before.SourceSystem != after.SourceSystem {
		report.AddDifference("Header.SourceSystem", before.SourceSystem, after.SourceSystem)
	}

	if before.Language != after.Language {
		report.AddDifference("Header.Language", before.Language, after.Language)
	}

	// By default, custom header facts are not compared because the encoder
	// reconstructs the header from Header's typed fields.
	if cfg != nil && cfg.compareHeaderTags {
		compareTags(before.CustomFacts, after.CustomFacts, "Header.CustomFacts", report)
	}
}

// sortedKeys returns the keys of an xref map in sorted order so that
// comparisons and diff reports are deterministic.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// diffXRefPresence reports xrefs present in one collection but not the
// other, and returns the set of xrefs present in both for field comparison.
func diffXRefPresence[V any](kind string, before, after map[string]V, report *RoundTripReport) []string {
	if len(before) != len(after) {
		report.AddDifference(
			fmt.Sprintf("%s.Count", kind),
			fmt.Sprintf("%d", len(before)),
			fmt.Sprintf("%d", len(after)),
		)
	}

	var common []string
	for _, xref := range sortedKeys(before) {
		if _, ok := after[xref]; !ok {
			report.AddDifference(fmt.Sprintf("%s[%s]", kind, xref), "present", "missing")
			continue
		}
		common = append(common, xref)
	}
	for _, xref := range sortedKeys(after) {
		if _, ok := before[xref]; !ok {
			report.AddDifference(fmt.Sprintf("%s[%s]", kind, xref), "missing", "present")
		}
	}
	return common
}

func compareIndividuals(before, after map[string]*gedcom.Individual, report *RoundTripReport) {
	for _, xref := range diffXRefPresence("Individual", before, after, report) {
		b, a := before[xref], after[xref]
		path := fmt.Sprintf("Individual[%s]", xref)

		if nameOf(b.Names) != nameOf(a.Names) {
			report.AddDifference(path+".Names", nameOf(b.Names), nameOf(a.Names))
		}
		if b.Sex != a.Sex {
			report.AddDifference(path+".Sex", b.Sex, a.Sex)
		}
		if len(b.Events) != len(a.Events) {
			report.AddDifference(path+".Events.Count", fmt.Sprintf("%d", len(b.Events)), fmt.Sprintf("%d", len(a.Events)))
		}
		compareTags(b.CustomFacts, a.CustomFacts, path+".CustomFacts", report)
	}
}

func nameOf(names []*gedcom.PersonalName) string {
	if len(names) == 0 {
		return ""
	}
	return names[0].Full
}

func compareFamilies(before, after map[string]*gedcom.Family, report *RoundTripReport) {
	for _, xref := range diffXRefPresence("Family", before, after, report) {
		b, a := before[xref], after[xref]
		path := fmt.Sprintf("Family[%s]", xref)

		if b.Husband != a.Husband {
			report.AddDifference(path+".Husband", b.Husband, a.Husband)
		}
		if b.Wife != a.Wife {
			report.AddDifference(path+".Wife", b.Wife, a.Wife)
		}
		if len(b.Children) != len(a.Children) {
			report.AddDifference(path+".Children.Count", fmt.Sprintf("%d", len(b.Children)), fmt.Sprintf("%d", len(a.Children)))
		}
		compareTags(b.CustomFacts, a.CustomFacts, path+".CustomFacts", report)
	}
}

func compareSources(before, after map[string]*gedcom.Source, report *RoundTripReport) {
	for _, xref := range diffXRefPresence("Source", before, after, report) {
		b, a := before[xref], after[xref]
		path := fmt.Sprintf("Source[%s]", xref)

		if b.Title != a.Title {
			report.AddDifference(path+".Title", b.Title, a.Title)
		}
		if b.Author != a.Author {
			report.AddDifference(path+".Author", b.Author, a.Author)
		}
		compareTags(b.CustomFacts, a.CustomFacts, path+".CustomFacts", report)
	}
}

func compareRepositories(before, after map[string]*gedcom.Repository, report *RoundTripReport) {
	for _, xref := range diffXRefPresence("Repository", before, after, report) {
		b, a := before[xref], after[xref]
		path := fmt.Sprintf("Repository[%s]", xref)

		if b.Name != a.Name {
			report.AddDifference(path+".Name", b.Name, a.Name)
		}
		compareTags(b.CustomFacts, a.CustomFacts, path+".CustomFacts", report)
	}
}

func compareNotes(before, after map[string]*gedcom.Note, report *RoundTripReport) {
	for _, xref := range diffXRefPresence("Note", before, after, report) {
		b, a := before[xref], after[xref]
		path := fmt.Sprintf("Note[%s]", xref)

		if b.Text != a.Text {
			report.AddDifference(path+".Text", b.Text, a.Text)
		}
		compareTags(b.CustomFacts, a.CustomFacts, path+".CustomFacts", report)
	}
}

func compareMedia(before, after map[string]*gedcom.MediaObject, report *RoundTripReport) {
	for _, xref := range diffXRefPresence("Media", before, after, report) {
		b, a := before[xref], after[xref]
		path := fmt.Sprintf("Media[%s]", xref)

		if b.Form != a.Form {
			report.AddDifference(path+".Form", b.Form, a.Form)
		}
		if b.FileRef != a.FileRef {
			report.AddDifference(path+".FileRef", b.FileRef, a.FileRef)
		}
		compareTags(b.CustomFacts, a.CustomFacts, path+".CustomFacts", report)
	}
}

func compareSubmitters(before, after map[string]*gedcom.Submitter, report *RoundTripReport) {
	for _, xref := range diffXRefPresence("Submitter", before, after, report) {
		b, a := before[xref], after[xref]
		path := fmt.Sprintf("Submitter[%s]", xref)

		if b.Name != a.Name {
			report.AddDifference(path+".Name", b.Name, a.Name)
		}
		compareTags(b.CustomFacts, a.CustomFacts, path+".CustomFacts", report)
	}
}

// compareTags compares two custom-fact tag slices by position.
func compareTags(before, after []*gedcom.Tag, pathPrefix string, report *RoundTripReport) {
	if len(before) != len(after) {
		report.AddDifference(
			pathPrefix+".Count",
			fmt.Sprintf("%d", len(before)),
			fmt.Sprintf("%d", len(after)),
		)
	}

	minTags := len(before)
	if len(after) < minTags {
		minTags = len(after)
	}

	for i := 0; i < minTags; i++ {
		compareTag(before[i], after[i], fmt.Sprintf("%s[%d]", pathPrefix, i), report)
	}

	for i := minTags; i < len(before); i++ {
		report.AddDifference(
			fmt.Sprintf("%s[%d]", pathPrefix, i),
			fmt.Sprintf("present (%s)", before[i].Tag),
			"missing",
		)
	}

	for i := minTags; i < len(after); i++ {
		report.AddDifference(
			fmt.Sprintf("%s[%d]", pathPrefix, i),
			"missing",
			fmt.Sprintf("present (%s)", after[i].Tag),
		)
	}
}

// compareTag compares two individual tags.
// LineNumber is intentionally not compared as it may change during round-trip.
func compareTag(before, after *gedcom.Tag, path string, report *RoundTripReport) {
	if before.Level != after.Level {
		report.AddDifference(path+".Level", fmt.Sprintf("%d", before.Level), fmt.Sprintf("%d", after.Level))
	}

	if before.Tag != after.Tag {
		report.AddDifference(path+".Tag", before.Tag, after.Tag)
	}

	if before.Value != after.Value {
		report.AddDifference(path+".Value", before.Value, after.Value)
	}

	if before.XRef != after.XRef {
		report.AddDifference(path+".XRef", before.XRef, after.XRef)
	}
}
