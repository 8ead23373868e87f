package encoder

import (
	"strconv"
	"strings"

	"github.com/kestrelgen/gedkit/gedcom"
)

// textToTags converts a potentially multiline string value to GEDCOM tags.
// The first line becomes the primary tag at the specified level, and subsequent
// lines become CONT (continuation) tags at level+1.
//
// When opts is provided and DisableLineWrap is false, lines exceeding
// MaxLineLength are automatically split using CONC tags at word boundaries.
//
// Examples:
//   - "Single line" -> [TAG value="Single line"]
//   - "Line1\nLine2" -> [TAG value="Line1", CONT value="Line2"]
//   - "" -> [TAG value=""]
//   - "Very long line..." -> [TAG value="Very long...", CONC value="line..."]
func textToTags(value string, level int, tagName string, opts *EncodeOptions) []*gedcom.Tag {
	if value == "" {
		return []*gedcom.Tag{{Level: level, Tag: tagName, Value: ""}}
	}

	lines := strings.Split(value, "\n")

	tags := make([]*gedcom.Tag, 0, len(lines))

	firstLineSegments := splitLineForLength(lines[0], opts)
	tags = append(tags, &gedcom.Tag{Level: level, Tag: tagName, Value: firstLineSegments[0]})

	for i := 1; i < len(firstLineSegments); i++ {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "CONC", Value: firstLineSegments[i]})
	}

	for i := 1; i < len(lines); i++ {
		lineSegments := splitLineForLength(lines[i], opts)

		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "CONT", Value: lineSegments[0]})

		for j := 1; j < len(lineSegments); j++ {
			tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "CONC", Value: lineSegments[j]})
		}
	}

	return tags
}

// noteRefToTags converts a NoteRef back to NOTE tags: a single pointer tag
// for a reference to a top-level NOTE record, or textToTags' CONT/CONC
// expansion for inline note text.
func noteRefToTags(ref *gedcom.NoteRef, level int, opts *EncodeOptions) []*gedcom.Tag {
	if ref.XRef != "" {
		return []*gedcom.Tag{{Level: level, Tag: "NOTE", Value: ref.XRef}}
	}
	return textToTags(ref.Text, level, "NOTE", opts)
}

// splitLineForLength splits a single line into segments that fit within MaxLineLength.
// Returns a slice with at least one element (the original line if no splitting needed).
// Attempts to split at word boundaries (spaces) when possible.
func splitLineForLength(line string, opts *EncodeOptions) []string {
	if opts != nil && opts.DisableLineWrap {
		return []string{line}
	}

	maxLen := DefaultMaxLineLength
	if opts != nil {
		maxLen = opts.effectiveMaxLineLength()
	}

	if len(line) <= maxLen {
		return []string{line}
	}

	var segments []string
	remaining := line

	for len(remaining) > maxLen {
		splitAt := findWordBoundary(remaining, maxLen)
		segments = append(segments, remaining[:splitAt])
		remaining = remaining[splitAt:]
	}
	segments = append(segments, remaining)

	return segments
}

// findWordBoundary finds the best index at or before maxLen to split a line,
// preferring the last space so words are not broken mid-word. Falls back to
// a hard split at maxLen when no space is found.
func findWordBoundary(line string, maxLen int) int {
	if maxLen >= len(line) {
		return len(line)
	}
	if idx := strings.LastIndexByte(line[:maxLen], ' '); idx > 0 {
		return idx + 1
	}
	return maxLen
}

// individualToTags converts an Individual entity to GEDCOM tags.
func individualToTags(indi *gedcom.Individual, opts *EncodeOptions) []*gedcom.Tag {
	var tags []*gedcom.Tag

	for _, name := range indi.Names {
		tags = append(tags, nameToTags(name, 1)...)
	}

	if indi.Sex != "" {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "SEX", Value: indi.Sex})
	}

	for _, event := range indi.Events {
		tags = append(tags, eventToTags(event, 1, opts)...)
	}

	for _, attr := range indi.Attributes {
		tags = append(tags, attributeToTags(attr, 1, opts)...)
	}

	for _, ord := range indi.LDSOrdinances {
		tags = append(tags, ldsOrdinanceToTags(ord, 1)...)
	}

	for i := range indi.ChildInFamilies {
		tags = append(tags, familyLinkToTags(&indi.ChildInFamilies[i], 1)...)
	}

	for _, famXRef := range indi.SpouseInFamilies {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "FAMS", Value: famXRef})
	}

	for _, assoc := range indi.Associations {
		tags = append(tags, associationToTags(assoc, 1, opts)...)
	}

	for _, cite := range indi.SourceCitations {
		tags = append(tags, sourceCitationToTags(cite, 1, opts)...)
	}

	for _, note := range indi.Notes {
		tags = append(tags, noteRefToTags(note, 1, opts)...)
	}

	for _, media := range indi.Media {
		tags = append(tags, mediaLinkToTags(media, 1)...)
	}

	if indi.ChangeDate != nil {
		tags = append(tags, changeDateToTags(indi.ChangeDate, 1, "CHAN")...)
	}

	if indi.RefNumber != "" {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "REFN", Value: indi.RefNumber})
	}

	if indi.FamilySearchID != "" {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "_FSFTID", Value: indi.FamilySearchID})
	}

	tags = append(tags, indi.CustomFacts...)

	return tags
}

// familyToTags converts a Family entity to GEDCOM tags.
func familyToTags(fam *gedcom.Family, opts *EncodeOptions) []*gedcom.Tag {
	var tags []*gedcom.Tag

	if fam.Husband != "" {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "HUSB", Value: fam.Husband})
	}

	if fam.Wife != "" {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "WIFE", Value: fam.Wife})
	}

	for _, child := range fam.Children {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "CHIL", Value: child})
	}

	for _, event := range fam.Events {
		tags = append(tags, eventToTags(event, 1, opts)...)
	}

	for _, ord := range fam.LDSOrdinances {
		tags = append(tags, ldsOrdinanceToTags(ord, 1)...)
	}

	for _, cite := range fam.SourceCitations {
		tags = append(tags, sourceCitationToTags(cite, 1, opts)...)
	}

	for _, note := range fam.Notes {
		tags = append(tags, noteRefToTags(note, 1, opts)...)
	}

	for _, media := range fam.Media {
		tags = append(tags, mediaLinkToTags(media, 1)...)
	}

	if fam.ChangeDate != nil {
		tags = append(tags, changeDateToTags(fam.ChangeDate, 1, "CHAN")...)
	}

	tags = append(tags, fam.CustomFacts...)

	return tags
}

// sourceToTags converts a Source entity to GEDCOM tags.
func sourceToTags(src *gedcom.Source, opts *EncodeOptions) []*gedcom.Tag {
	var tags []*gedcom.Tag

	if src.Title != "" {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "TITL", Value: src.Title})
	}

	if src.Author != "" {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "AUTH", Value: src.Author})
	}

	if src.Publication != "" {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "PUBL", Value: src.Publication})
	}

	if src.Text != "" {
		tags = append(tags, textToTags(src.Text, 1, "TEXT", opts)...)
	}

	if src.RepositoryRef != "" {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "REPO", Value: src.RepositoryRef})
	} else if src.InlineRepository != nil && src.InlineRepository.Name != "" {
		tags = append(tags,
			&gedcom.Tag{Level: 1, Tag: "REPO"},
			&gedcom.Tag{Level: 2, Tag: "NAME", Value: src.InlineRepository.Name},
		)
	}

	for _, media := range src.Media {
		tags = append(tags, mediaLinkToTags(media, 1)...)
	}

	for _, note := range src.Notes {
		tags = append(tags, noteRefToTags(note, 1, opts)...)
	}

	if src.ChangeDate != nil {
		tags = append(tags, changeDateToTags(src.ChangeDate, 1, "CHAN")...)
	}

	tags = append(tags, src.CustomFacts...)

	return tags
}

// submitterToTags converts a Submitter entity to GEDCOM tags.
func submitterToTags(subm *gedcom.Submitter, opts *EncodeOptions) []*gedcom.Tag {
	var tags []*gedcom.Tag

	if subm.Name != "" {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "NAME", Value: subm.Name})
	}

	if subm.Address != nil {
		tags = append(tags, addressToTags(subm.Address, 1)...)
	}

	for _, phone := range subm.Phone {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "PHON", Value: phone})
	}

	for _, email := range subm.Email {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "EMAIL", Value: email})
	}

	for _, lang := range subm.Language {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "LANG", Value: lang})
	}

	for _, note := range subm.Notes {
		tags = append(tags, noteRefToTags(note, 1, opts)...)
	}

	tags = append(tags, subm.CustomFacts...)

	return tags
}

// repositoryToTags converts a Repository entity to GEDCOM tags.
func repositoryToTags(repo *gedcom.Repository, opts *EncodeOptions) []*gedcom.Tag {
	var tags []*gedcom.Tag

	if repo.Name != "" {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "NAME", Value: repo.Name})
	}

	if repo.Address != nil {
		tags = append(tags, addressToTags(repo.Address, 1)...)
	}

	for _, note := range repo.Notes {
		tags = append(tags, noteRefToTags(note, 1, opts)...)
	}

	tags = append(tags, repo.CustomFacts...)

	return tags
}

// mediaObjectToTags converts a MediaObject entity to GEDCOM tags.
func mediaObjectToTags(media *gedcom.MediaObject, opts *EncodeOptions) []*gedcom.Tag {
	var tags []*gedcom.Tag

	if media.Form != "" {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "FORM", Value: media.Form})
	}

	if media.Title != "" {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "TITL", Value: media.Title})
	}

	if media.FileRef != "" {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "FILE", Value: media.FileRef})
	}

	for _, cite := range media.SourceCitations {
		tags = append(tags, sourceCitationToTags(cite, 1, opts)...)
	}

	for _, note := range media.Notes {
		tags = append(tags, noteRefToTags(note, 1, opts)...)
	}

	if media.ChangeDate != nil {
		tags = append(tags, changeDateToTags(media.ChangeDate, 1, "CHAN")...)
	}

	for _, refn := range media.RefNumbers {
		tags = append(tags, &gedcom.Tag{Level: 1, Tag: "REFN", Value: refn})
	}

	tags = append(tags, media.CustomFacts...)

	return tags
}

// noteContinuationTags splits a top-level note's merged text into the CONT/CONC
// subordinate tags that follow its "0 @Nn@ NOTE <first line>" record line.
// The caller is responsible for writing the record line itself with the
// first segment as its value.
func noteContinuationTags(note *gedcom.Note, opts *EncodeOptions) (first string, rest []*gedcom.Tag) {
	all := textToTags(note.Text, 0, "NOTE", opts)
	first = all[0].Value
	rest = all[1:]
	return first, rest
}

// nameToTags converts a PersonalName to GEDCOM tags at the specified level.
func nameToTags(name *gedcom.PersonalName, level int) []*gedcom.Tag {
	var tags []*gedcom.Tag

	tags = append(tags, &gedcom.Tag{Level: level, Tag: "NAME", Value: name.Full})

	if name.Given != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "GIVN", Value: name.Given})
	}
	if name.Surname != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "SURN", Value: name.Surname})
	}
	if name.Prefix != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "NPFX", Value: name.Prefix})
	}
	if name.Suffix != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "NSFX", Value: name.Suffix})
	}
	if name.Nickname != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "NICK", Value: name.Nickname})
	}
	if name.SurnamePrefix != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "SPFX", Value: name.SurnamePrefix})
	}
	if name.Type != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "TYPE", Value: name.Type})
	}

	return tags
}

// eventToTags converts an Event to GEDCOM tags at the specified level.
//
//nolint:gocyclo // converting all event fields requires handling many cases
func eventToTags(event *gedcom.Event, level int, opts *EncodeOptions) []*gedcom.Tag {
	tags := []*gedcom.Tag{{Level: level, Tag: string(event.Type), Value: event.Description}}

	if event.Date != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "DATE", Value: event.Date})
	}

	if event.Place != "" {
		tags = append(tags, placeToTags(event.Place, event.PlaceDetail, level+1)...)
	}

	if event.EventTypeDetail != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "TYPE", Value: event.EventTypeDetail})
	}

	if event.Cause != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "CAUS", Value: event.Cause})
	}

	if event.Age != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "AGE", Value: event.Age})
	}

	if event.Agency != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "AGNC", Value: event.Agency})
	}

	if event.Address != nil {
		tags = append(tags, addressToTags(event.Address, level+1)...)
	}

	for _, phone := range event.Phone {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "PHON", Value: phone})
	}
	for _, email := range event.Email {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "EMAIL", Value: email})
	}
	for _, fax := range event.Fax {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "FAX", Value: fax})
	}
	for _, www := range event.Website {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "WWW", Value: www})
	}

	if event.Restriction != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "RESN", Value: event.Restriction})
	}

	for _, note := range event.Notes {
		tags = append(tags, noteRefToTags(note, level+1, opts)...)
	}

	for _, cite := range event.SourceCitations {
		tags = append(tags, sourceCitationToTags(cite, level+1, opts)...)
	}

	for _, media := range event.Media {
		tags = append(tags, mediaLinkToTags(media, level+1)...)
	}

	tags = append(tags, event.CustomFacts...)

	return tags
}

// attributeToTags converts an Attribute to GEDCOM tags at the specified level.
func attributeToTags(attr *gedcom.Attribute, level int, opts *EncodeOptions) []*gedcom.Tag {
	tags := []*gedcom.Tag{{Level: level, Tag: attr.Type, Value: attr.Value}}

	if attr.Date != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "DATE", Value: attr.Date})
	}

	if attr.Place != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "PLAC", Value: attr.Place})
	}

	for _, cite := range attr.SourceCitations {
		tags = append(tags, sourceCitationToTags(cite, level+1, opts)...)
	}

	return tags
}

// sourceCitationToTags converts a SourceCitation to GEDCOM tags at the specified level.
func sourceCitationToTags(cite *gedcom.SourceCitation, level int, opts *EncodeOptions) []*gedcom.Tag {
	tags := []*gedcom.Tag{{Level: level, Tag: "SOUR", Value: cite.SourceXRef}}

	if cite.Page != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "PAGE", Value: cite.Page})
	}

	if cite.Quality > 0 {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "QUAY", Value: strconv.Itoa(cite.Quality)})
	}

	if cite.Data != nil {
		tags = append(tags, sourceCitationDataToTags(cite.Data, level+1, opts)...)
	}

	if cite.AncestryAPID != nil {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "_APID", Value: cite.AncestryAPID.Raw})
	}

	return tags
}

// sourceCitationDataToTags converts SourceCitationData to GEDCOM tags at the specified level.
func sourceCitationDataToTags(data *gedcom.SourceCitationData, level int, opts *EncodeOptions) []*gedcom.Tag {
	tags := []*gedcom.Tag{{Level: level, Tag: "DATA"}}

	if data.Date != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "DATE", Value: data.Date})
	}

	if data.Text != "" {
		tags = append(tags, textToTags(data.Text, level+1, "TEXT", opts)...)
	}

	return tags
}

// addressToTags converts an Address to GEDCOM tags at the specified level.
func addressToTags(addr *gedcom.Address, level int) []*gedcom.Tag {
	tags := []*gedcom.Tag{{Level: level, Tag: "ADDR", Value: addr.Line1}}

	if addr.Line1 != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "ADR1", Value: addr.Line1})
	}
	if addr.Line2 != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "ADR2", Value: addr.Line2})
	}
	if addr.Line3 != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "ADR3", Value: addr.Line3})
	}
	if addr.City != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "CITY", Value: addr.City})
	}
	if addr.State != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "STAE", Value: addr.State})
	}
	if addr.PostalCode != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "POST", Value: addr.PostalCode})
	}
	if addr.Country != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "CTRY", Value: addr.Country})
	}

	return tags
}

// placeToTags converts place information to GEDCOM tags at the specified level.
func placeToTags(placeName string, detail *gedcom.PlaceDetail, level int) []*gedcom.Tag {
	tags := []*gedcom.Tag{{Level: level, Tag: "PLAC", Value: placeName}}

	if detail != nil {
		if detail.Form != "" {
			tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "FORM", Value: detail.Form})
		}
		if detail.Coordinates != nil {
			tags = append(tags, coordinatesToTags(detail.Coordinates, level+1)...)
		}
	}

	return tags
}

// coordinatesToTags converts Coordinates to GEDCOM tags at the specified level.
func coordinatesToTags(coords *gedcom.Coordinates, level int) []*gedcom.Tag {
	tags := []*gedcom.Tag{{Level: level, Tag: "MAP"}}

	if coords.Latitude != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "LATI", Value: coords.Latitude})
	}
	if coords.Longitude != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "LONG", Value: coords.Longitude})
	}

	return tags
}

// ldsOrdinanceToTags converts an LDSOrdinance to GEDCOM tags at the specified level.
func ldsOrdinanceToTags(ord *gedcom.LDSOrdinance, level int) []*gedcom.Tag {
	tags := []*gedcom.Tag{{Level: level, Tag: string(ord.Type)}}

	if ord.Date != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "DATE", Value: ord.Date})
	}
	if ord.Temple != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "TEMP", Value: ord.Temple})
	}
	if ord.Place != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "PLAC", Value: ord.Place})
	}
	if ord.Status != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "STAT", Value: ord.Status})
	}
	if ord.FamilyXRef != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "FAMC", Value: ord.FamilyXRef})
	}

	return tags
}

// familyLinkToTags converts a FamilyLink to GEDCOM tags at the specified level.
func familyLinkToTags(link *gedcom.FamilyLink, level int) []*gedcom.Tag {
	tags := []*gedcom.Tag{{Level: level, Tag: "FAMC", Value: link.FamilyXRef}}

	if link.Pedigree != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "PEDI", Value: link.Pedigree})
	}

	return tags
}

// associationToTags converts an Association to GEDCOM tags at the specified level.
func associationToTags(assoc *gedcom.Association, level int, opts *EncodeOptions) []*gedcom.Tag {
	tags := []*gedcom.Tag{{Level: level, Tag: "ASSO", Value: assoc.IndividualXRef}}

	if assoc.Relation != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "RELA", Value: assoc.Relation})
	}

	for _, cite := range assoc.SourceCitations {
		tags = append(tags, sourceCitationToTags(cite, level+1, opts)...)
	}

	for _, note := range assoc.Notes {
		tags = append(tags, noteRefToTags(note, level+1, opts)...)
	}

	return tags
}

// changeDateToTags converts a ChangeDate to GEDCOM tags at the specified level.
func changeDateToTags(cd *gedcom.ChangeDate, level int, tagName string) []*gedcom.Tag {
	tags := []*gedcom.Tag{{Level: level, Tag: tagName}}

	if cd.Date != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "DATE", Value: cd.Date})

		if cd.Time != "" {
			tags = append(tags, &gedcom.Tag{Level: level + 2, Tag: "TIME", Value: cd.Time})
		}
	}

	return tags
}

// mediaLinkToTags converts a MediaLink to GEDCOM tags at the specified level.
// A link with a MediaXRef points at a top-level OBJE record; otherwise its
// FORM/FILE describe the media inline.
func mediaLinkToTags(link *gedcom.MediaLink, level int) []*gedcom.Tag {
	tags := []*gedcom.Tag{{Level: level, Tag: "OBJE", Value: link.MediaXRef}}

	if link.MediaXRef == "" {
		if link.Form != "" {
			tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "FORM", Value: link.Form})
		}
		if link.FileRef != "" {
			tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "FILE", Value: link.FileRef})
		}
	}

	if link.Title != "" {
		tags = append(tags, &gedcom.Tag{Level: level + 1, Tag: "TITL", Value: link.Title})
	}

	return tags
}
