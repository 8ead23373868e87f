package decoder

import "github.com/kestrelgen/gedkit/gedcom"

// resolveReferences walks every raw xref string in doc and populates its
// resolved pointer counterpart, recording a dangling-xref Diagnostic for
// any xref that does not resolve to a record of the expected kind.
func resolveReferences(doc *gedcom.Gedcom, collector *diagnosticCollector) {
	if doc.Header != nil && doc.Header.SubmitterXRef != "" {
		doc.Header.Submitter = resolveSubmitter(doc, doc.Header.SubmitterXRef, collector)
	}
	if doc.Submission != nil && doc.Submission.SubmitterXRef != "" {
		doc.Submission.Submitter = resolveSubmitter(doc, doc.Submission.SubmitterXRef, collector)
	}

	for _, indi := range doc.IndividualsByXRef {
		resolveIndividual(doc, indi, collector)
	}
	for _, fam := range doc.FamiliesByXRef {
		resolveFamily(doc, fam, collector)
	}
	for _, src := range doc.SourcesByXRef {
		resolveSource(doc, src, collector)
	}
	for _, repo := range doc.RepositoriesByXRef {
		resolveNotes(doc, repo.Notes, collector)
	}
	for _, subm := range doc.SubmittersByXRef {
		resolveNotes(doc, subm.Notes, collector)
	}
	for _, media := range doc.MultimediaByXRef {
		resolveNotes(doc, media.Notes, collector)
		resolveSourceCitations(doc, media.SourceCitations, collector)
	}
}

func resolveIndividual(doc *gedcom.Gedcom, indi *gedcom.Individual, collector *diagnosticCollector) {
	for i := range indi.ChildInFamilies {
		link := &indi.ChildInFamilies[i]
		link.Family = resolveFamilyXRef(doc, link.FamilyXRef, collector)
	}

	for _, xref := range indi.SpouseInFamilies {
		indi.SpouseFamilies = append(indi.SpouseFamilies, resolveFamilyXRef(doc, xref, collector))
	}

	for _, assoc := range indi.Associations {
		assoc.Individual = resolveIndividualXRef(doc, assoc.IndividualXRef, collector)
		resolveNotes(doc, assoc.Notes, collector)
		resolveSourceCitations(doc, assoc.SourceCitations, collector)
	}

	for _, ord := range indi.LDSOrdinances {
		if ord.FamilyXRef != "" {
			ord.Family = resolveFamilyXRef(doc, ord.FamilyXRef, collector)
		}
	}

	for _, link := range indi.Media {
		if link.MediaXRef != "" {
			link.Media = resolveMediaXRef(doc, link.MediaXRef, collector)
		}
	}
	for _, event := range indi.Events {
		resolveEvent(doc, event, collector)
	}
	for _, attr := range indi.Attributes {
		resolveSourceCitations(doc, attr.SourceCitations, collector)
	}

	resolveNotes(doc, indi.Notes, collector)
	resolveSourceCitations(doc, indi.SourceCitations, collector)
}

func resolveFamily(doc *gedcom.Gedcom, fam *gedcom.Family, collector *diagnosticCollector) {
	if fam.Husband != "" {
		fam.HusbandIndividual = resolveIndividualXRef(doc, fam.Husband, collector)
	}
	if fam.Wife != "" {
		fam.WifeIndividual = resolveIndividualXRef(doc, fam.Wife, collector)
	}
	fam.ChildIndividuals = make([]*gedcom.Individual, len(fam.Children))
	for i, xref := range fam.Children {
		fam.ChildIndividuals[i] = resolveIndividualXRef(doc, xref, collector)
	}
	for _, ord := range fam.LDSOrdinances {
		if ord.FamilyXRef != "" {
			ord.Family = resolveFamilyXRef(doc, ord.FamilyXRef, collector)
		}
	}
	for _, link := range fam.Media {
		if link.MediaXRef != "" {
			link.Media = resolveMediaXRef(doc, link.MediaXRef, collector)
		}
	}
	for _, event := range fam.Events {
		resolveEvent(doc, event, collector)
	}

	resolveNotes(doc, fam.Notes, collector)
	resolveSourceCitations(doc, fam.SourceCitations, collector)
}

func resolveSource(doc *gedcom.Gedcom, src *gedcom.Source, collector *diagnosticCollector) {
	if src.RepositoryRef != "" {
		src.Repository = resolveRepositoryXRef(doc, src.RepositoryRef, collector)
	}
	for _, link := range src.Media {
		if link.MediaXRef != "" {
			link.Media = resolveMediaXRef(doc, link.MediaXRef, collector)
		}
	}

	resolveNotes(doc, src.Notes, collector)
}

func resolveEvent(doc *gedcom.Gedcom, event *gedcom.Event, collector *diagnosticCollector) {
	for _, link := range event.Media {
		if link.MediaXRef != "" {
			link.Media = resolveMediaXRef(doc, link.MediaXRef, collector)
		}
	}
	resolveNotes(doc, event.Notes, collector)
	resolveSourceCitations(doc, event.SourceCitations, collector)
}

// resolveNotes fills in the resolved Note pointer on every pointer-form
// NoteRef in refs, recording a dangling-xref Diagnostic for any xref that
// does not resolve. Inline-text NoteRefs (empty XRef) are left untouched.
func resolveNotes(doc *gedcom.Gedcom, refs []*gedcom.NoteRef, collector *diagnosticCollector) {
	for _, ref := range refs {
		if ref.XRef == "" {
			continue
		}
		if note, ok := doc.NotesByXRef[ref.XRef]; ok {
			ref.Note = note
			continue
		}
		collector.add(danglingXRef(ref.XRef, "note"))
	}
}

// resolveSourceCitations fills in the resolved Source pointer on every
// citation in cites, recording a dangling-xref Diagnostic for any
// SourceXRef that does not resolve.
func resolveSourceCitations(doc *gedcom.Gedcom, cites []*gedcom.SourceCitation, collector *diagnosticCollector) {
	for _, cite := range cites {
		if cite.SourceXRef == "" {
			continue
		}
		if src, ok := doc.SourcesByXRef[cite.SourceXRef]; ok {
			cite.Source = src
			continue
		}
		collector.add(danglingXRef(cite.SourceXRef, "source"))
	}
}

func resolveIndividualXRef(doc *gedcom.Gedcom, xref string, collector *diagnosticCollector) *gedcom.Individual {
	if indi, ok := doc.IndividualsByXRef[xref]; ok {
		return indi
	}
	collector.add(danglingXRef(xref, "individual"))
	return nil
}

func resolveFamilyXRef(doc *gedcom.Gedcom, xref string, collector *diagnosticCollector) *gedcom.Family {
	if fam, ok := doc.FamiliesByXRef[xref]; ok {
		return fam
	}
	collector.add(danglingXRef(xref, "family"))
	return nil
}

func resolveRepositoryXRef(doc *gedcom.Gedcom, xref string, collector *diagnosticCollector) *gedcom.Repository {
	if repo, ok := doc.RepositoriesByXRef[xref]; ok {
		return repo
	}
	collector.add(danglingXRef(xref, "repository"))
	return nil
}

func resolveSubmitter(doc *gedcom.Gedcom, xref string, collector *diagnosticCollector) *gedcom.Submitter {
	if subm, ok := doc.SubmittersByXRef[xref]; ok {
		return subm
	}
	collector.add(danglingXRef(xref, "submitter"))
	return nil
}

func resolveMediaXRef(doc *gedcom.Gedcom, xref string, collector *diagnosticCollector) *gedcom.MediaObject {
	if media, ok := doc.MultimediaByXRef[xref]; ok {
		return media
	}
	collector.add(danglingXRef(xref, "media object"))
	return nil
}

func danglingXRef(xref, kind string) Diagnostic {
	return NewDiagnostic(0, SeverityError, CodeDanglingXRef,
		"dangling cross-reference to "+kind+" "+xref, xref)
}
