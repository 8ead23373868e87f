package decoder

import (
	"regexp"

	"github.com/kestrelgen/gedkit/gedcom"
)

// recordHandler builds and registers one top-level record kind into doc.
type recordHandler func(doc *gedcom.Gedcom, xref, value string, tags []*gedcom.Tag, collector *diagnosticCollector)

// handlers dispatches a level-0 tag to the function that builds and
// registers its entity. Built once at init per §4.5; HEAD and TRLR are
// handled separately by the decode pipeline, not through this map.
var handlers map[string]recordHandler

func init() {
	handlers = map[string]recordHandler{
		"INDI": func(doc *gedcom.Gedcom, xref, _ string, tags []*gedcom.Tag, collector *diagnosticCollector) {
			registerIndividual(doc, xref, parseIndividual(xref, tags, collector), collector)
		},
		"FAM": func(doc *gedcom.Gedcom, xref, _ string, tags []*gedcom.Tag, collector *diagnosticCollector) {
			registerFamily(doc, xref, parseFamily(xref, tags, collector), collector)
		},
		"SOUR": func(doc *gedcom.Gedcom, xref, _ string, tags []*gedcom.Tag, collector *diagnosticCollector) {
			registerSource(doc, xref, parseSource(xref, tags, collector), collector)
		},
		"REPO": func(doc *gedcom.Gedcom, xref, _ string, tags []*gedcom.Tag, collector *diagnosticCollector) {
			registerRepository(doc, xref, parseRepository(xref, tags, collector), collector)
		},
		"NOTE": func(doc *gedcom.Gedcom, xref, value string, tags []*gedcom.Tag, collector *diagnosticCollector) {
			registerNote(doc, xref, parseNote(xref, value, tags, collector), collector)
		},
		"OBJE": func(doc *gedcom.Gedcom, xref, _ string, tags []*gedcom.Tag, collector *diagnosticCollector) {
			registerMedia(doc, xref, parseMediaObject(xref, tags, collector), collector)
		},
		"SUBM": func(doc *gedcom.Gedcom, xref, _ string, tags []*gedcom.Tag, collector *diagnosticCollector) {
			registerSubmitter(doc, xref, parseSubmitter(xref, tags, collector), collector)
		},
		"SUBN": func(doc *gedcom.Gedcom, xref, _ string, tags []*gedcom.Tag, collector *diagnosticCollector) {
			if doc.Submission != nil {
				collector.add(duplicateXRef(xref, "submission"))
				return
			}
			doc.Submission = parseSubmission(xref, tags, collector)
		},
	}
}

var xrefPattern = regexp.MustCompile(`^@[^@\s]+@$`)

// checkXRef reports a malformed-xref diagnostic when xref is present but
// doesn't match the '@' 1*CHAR '@' grammar. It never blocks registration;
// the value is still used as the map key on a best-effort basis.
func checkXRef(xref string, lineNumber int, collector *diagnosticCollector) {
	if xref == "" || xrefPattern.MatchString(xref) {
		return
	}
	collector.add(NewDiagnostic(lineNumber, SeverityError, CodeMalformedXRef,
		"cross-reference identifier does not match @id@ grammar", xref))
}

func duplicateXRef(xref, kind string) Diagnostic {
	return NewDiagnostic(0, SeverityError, CodeDuplicateXRef,
		"duplicate "+kind+" cross-reference "+xref+", first definition kept", xref)
}

func registerIndividual(doc *gedcom.Gedcom, xref string, indi *gedcom.Individual, collector *diagnosticCollector) {
	if _, exists := doc.IndividualsByXRef[xref]; exists {
		collector.add(duplicateXRef(xref, "individual"))
		return
	}
	doc.IndividualsByXRef[xref] = indi
}

func registerFamily(doc *gedcom.Gedcom, xref string, fam *gedcom.Family, collector *diagnosticCollector) {
	if _, exists := doc.FamiliesByXRef[xref]; exists {
		collector.add(duplicateXRef(xref, "family"))
		return
	}
	doc.FamiliesByXRef[xref] = fam
}

func registerSource(doc *gedcom.Gedcom, xref string, src *gedcom.Source, collector *diagnosticCollector) {
	if _, exists := doc.SourcesByXRef[xref]; exists {
		collector.add(duplicateXRef(xref, "source"))
		return
	}
	doc.SourcesByXRef[xref] = src
}

func registerRepository(doc *gedcom.Gedcom, xref string, repo *gedcom.Repository, collector *diagnosticCollector) {
	if _, exists := doc.RepositoriesByXRef[xref]; exists {
		collector.add(duplicateXRef(xref, "repository"))
		return
	}
	doc.RepositoriesByXRef[xref] = repo
}

func registerNote(doc *gedcom.Gedcom, xref string, note *gedcom.Note, collector *diagnosticCollector) {
	if xref == "" {
		// Inline notes (no xref) aren't addressable; they're only ever
		// referenced by the record that contains them.
		return
	}
	if _, exists := doc.NotesByXRef[xref]; exists {
		collector.add(duplicateXRef(xref, "note"))
		return
	}
	doc.NotesByXRef[xref] = note
}

func registerMedia(doc *gedcom.Gedcom, xref string, media *gedcom.MediaObject, collector *diagnosticCollector) {
	if _, exists := doc.MultimediaByXRef[xref]; exists {
		collector.add(duplicateXRef(xref, "media object"))
		return
	}
	doc.MultimediaByXRef[xref] = media
}

func registerSubmitter(doc *gedcom.Gedcom, xref string, subm *gedcom.Submitter, collector *diagnosticCollector) {
	if _, exists := doc.SubmittersByXRef[xref]; exists {
		collector.add(duplicateXRef(xref, "submitter"))
		return
	}
	doc.SubmittersByXRef[xref] = subm
}
