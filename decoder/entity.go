package decoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kestrelgen/gedkit/gedcom"
)

// diagnosticCollector accumulates diagnostics during entity population.
// It is nil-safe: all methods check for nil receiver before acting.
type diagnosticCollector struct {
	diagnostics Diagnostics
	// strictCustomTags, when true, reports vendor-extension tags (leading
	// underscore) as unknown tags like any other; otherwise they are
	// silently ignored when not recognized.
	strictCustomTags bool
}

// ignorableCustomTag reports whether tag should be silently skipped rather
// than reported as unknown: a vendor-extension tag (leading underscore)
// when StrictCustomTags is not set.
func (c *diagnosticCollector) ignorableCustomTag(tag string) bool {
	if c != nil && c.strictCustomTags {
		return false
	}
	return strings.HasPrefix(tag, "_")
}

// add appends a diagnostic to the collector if the collector is non-nil.
func (c *diagnosticCollector) add(d Diagnostic) {
	if c != nil {
		c.diagnostics = append(c.diagnostics, d)
	}
}

// addUnknownTag records an unknown tag diagnostic.
func (c *diagnosticCollector) addUnknownTag(lineNumber int, tag, context string) {
	if c != nil {
		c.add(NewDiagnostic(
			lineNumber,
			SeverityWarning,
			CodeUnknownTag,
			fmt.Sprintf("unknown tag: %s", tag),
			context,
		))
	}
}

// addInvalidValue records an invalid value diagnostic.
func (c *diagnosticCollector) addInvalidValue(lineNumber int, tag, value, reason string) {
	if c != nil {
		c.add(NewDiagnostic(
			lineNumber,
			SeverityWarning,
			CodeInvalidValue,
			fmt.Sprintf("invalid value for %s: %s", tag, reason),
			value,
		))
	}
}

// addNumericParse records a failure to parse a numeric subordinate value.
func (c *diagnosticCollector) addNumericParse(lineNumber int, tag, value string) {
	if c != nil {
		c.add(NewDiagnostic(
			lineNumber,
			SeverityWarning,
			CodeNumericParse,
			fmt.Sprintf("expected integer for %s", tag),
			value,
		))
	}
}

// parseNoteRef builds a NoteRef from a NOTE subordinate's raw value,
// disambiguating a pointer to a top-level NOTE record from inline note
// text per the '@' 1*CHAR '@' xref grammar. The resolved Note pointer is
// filled in later, during cross-reference resolution.
func parseNoteRef(value string) *gedcom.NoteRef {
	if xrefPattern.MatchString(value) {
		return &gedcom.NoteRef{XRef: value}
	}
	return &gedcom.NoteRef{Text: value}
}

// parseIndividual converts a flattened tag list into an Individual entity.
//
//nolint:gocyclo // GEDCOM parsing inherently requires handling many tag types
func parseIndividual(xref string, tags []*gedcom.Tag, collector *diagnosticCollector) *gedcom.Individual {
	indi := &gedcom.Individual{XRef: xref}

	var leftover []*gedcom.Tag
	for i := 0; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level != 1 {
			continue
		}

		switch tag.Tag {
		case "NAME":
			name := parsePersonalName(tags, i, collector)
			indi.Names = append(indi.Names, name)

		case "SEX":
			indi.Sex = tag.Value

		case "BIRT", "DEAT", "BAPM", "BURI", "CENS", "CHR", "ADOP", "RESI", "IMMI", "EMIG",
			"BARM", "BASM", "BLES", "CHRA", "CONF", "FCOM",
			"GRAD", "RETI", "NATU", "ORDN", "PROB", "WILL", "CREM":
			event := parseEvent(tags, i, tag.Tag, collector)
			indi.Events = append(indi.Events, event)

		case "BAPL", "CONL", "ENDL", "SLGC":
			ord := parseLDSOrdinance(tags, i, ldsOrdinanceType(tag.Tag), collector)
			indi.LDSOrdinances = append(indi.LDSOrdinances, ord)

		case "OCCU", "CAST", "DSCR", "EDUC", "IDNO", "NATI", "SSN", "TITL", "RELI", "NCHI", "NMR", "PROP":
			attr := parseAttribute(tags, i, tag.Tag, collector)
			indi.Attributes = append(indi.Attributes, attr)

		case "FAMC":
			famLink := parseFamilyLink(tags, i, collector)
			indi.ChildInFamilies = append(indi.ChildInFamilies, famLink)

		case "FAMS":
			indi.SpouseInFamilies = append(indi.SpouseInFamilies, tag.Value)

		case "ASSO":
			assoc := parseAssociation(tags, i, collector)
			indi.Associations = append(indi.Associations, assoc)

		case "SOUR":
			cite := parseSourceCitation(tags, i, tag.Level, collector)
			indi.SourceCitations = append(indi.SourceCitations, cite)

		case "NOTE":
			indi.Notes = append(indi.Notes, parseNoteRef(tag.Value))

		case "OBJE":
			link := parseMediaLink(tags, i, tag.Level, collector)
			indi.Media = append(indi.Media, link)

		case "CHAN":
			indi.ChangeDate = parseChangeDate(tags, i, collector)

		case "REFN":
			indi.RefNumber = tag.Value

		case "_FSFTID":
			indi.FamilySearchID = tag.Value

		case "RESN", "CREA", "UID":
			// Known tags not carried as typed fields in this model.

		default:
			if collector.ignorableCustomTag(tag.Tag) {
				continue
			}
			collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
			leftover = append(leftover, tag)
		}
	}
	indi.CustomFacts = leftover

	return indi
}

//nolint:gocyclo // Name parsing requires handling many tag types and edge cases
func parsePersonalName(tags []*gedcom.Tag, nameIdx int, collector *diagnosticCollector) *gedcom.PersonalName {
	name := &gedcom.PersonalName{
		Full: tags[nameIdx].Value,
	}

	// Parse the full name to extract given and surname.
	// GEDCOM format: "Given /Surname/"
	full := tags[nameIdx].Value
	if slashIdx := strings.Index(full, "/"); slashIdx >= 0 {
		name.Given = strings.TrimSpace(full[:slashIdx])
		surname := full[slashIdx+1:]
		if endSlash := strings.Index(surname, "/"); endSlash >= 0 {
			name.Surname = surname[:endSlash]
		} else {
			name.Surname = strings.TrimSpace(surname)
		}
	} else {
		name.Given = strings.TrimSpace(full)
	}

	for i := nameIdx + 1; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level <= 1 {
			break
		}
		if tag.Level == 2 {
			switch tag.Tag {
			case "GIVN":
				name.Given = tag.Value
			case "SURN":
				name.Surname = tag.Value
			case "NPFX":
				name.Prefix = tag.Value
			case "NSFX":
				name.Suffix = tag.Value
			case "NICK":
				name.Nickname = tag.Value
			case "SPFX":
				name.SurnamePrefix = tag.Value
			case "TYPE":
				name.Type = tag.Value
			case "SOUR", "NOTE", "FONE", "ROMN":
				// SOUR/NOTE are common; FONE/ROMN are 5.5.1 phonetic/romanized
				// name variants not yet carried as typed fields.
			default:
				if !collector.ignorableCustomTag(tag.Tag) {
					collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
				}
			}
		}
	}

	return name
}

// parseFamilyLink extracts a family link from tags starting at famcIdx.
func parseFamilyLink(tags []*gedcom.Tag, famcIdx int, collector *diagnosticCollector) gedcom.FamilyLink {
	famLink := gedcom.FamilyLink{
		FamilyXRef: tags[famcIdx].Value,
	}

	for i := famcIdx + 1; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level <= 1 {
			break
		}
		if tag.Level == 2 {
			switch tag.Tag {
			case "PEDI":
				famLink.Pedigree = tag.Value
			case "STAT", "NOTE":
				// Known tags not yet parsed into typed fields.
			default:
				if !collector.ignorableCustomTag(tag.Tag) {
					collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
				}
			}
		}
	}

	return famLink
}

// parseAssociation extracts an association from tags starting at assoIdx.
func parseAssociation(tags []*gedcom.Tag, assoIdx int, collector *diagnosticCollector) *gedcom.Association {
	baseLevel := tags[assoIdx].Level

	assoc := &gedcom.Association{
		IndividualXRef: tags[assoIdx].Value,
	}

	for i := assoIdx + 1; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level <= baseLevel {
			break
		}
		if tag.Level == baseLevel+1 {
			switch tag.Tag {
			case "RELA":
				assoc.Relation = tag.Value
			case "NOTE":
				assoc.Notes = append(assoc.Notes, parseNoteRef(tag.Value))
			case "SOUR":
				cite := parseSourceCitation(tags, i, tag.Level, collector)
				assoc.SourceCitations = append(assoc.SourceCitations, cite)
			default:
				if !collector.ignorableCustomTag(tag.Tag) {
					collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
				}
			}
		}
	}

	return assoc
}

// parseSourceCitation extracts a source citation from tags starting at sourIdx.
func parseSourceCitation(tags []*gedcom.Tag, sourIdx, baseLevel int, collector *diagnosticCollector) *gedcom.SourceCitation {
	cite := &gedcom.SourceCitation{
		SourceXRef: tags[sourIdx].Value,
	}

	for i := sourIdx + 1; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level <= baseLevel {
			break
		}
		if tag.Level == baseLevel+1 {
			switch tag.Tag {
			case "PAGE":
				cite.Page = tag.Value
			case "QUAY":
				if q, err := strconv.Atoi(tag.Value); err == nil {
					cite.Quality = q
				} else {
					collector.addNumericParse(tag.LineNumber, "QUAY", tag.Value)
				}
			case "DATA":
				cite.Data = parseSourceCitationData(tags, i, baseLevel+1, collector)
			case "_APID":
				cite.AncestryAPID = gedcom.ParseAPID(tag.Value)
			case "NOTE", "OBJE", "EVEN", "TEXT":
				// Known tags not yet parsed into typed fields.
			default:
				if !collector.ignorableCustomTag(tag.Tag) {
					collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
				}
			}
		}
	}

	return cite
}

// parseSourceCitationData extracts source citation data from tags starting at dataIdx.
func parseSourceCitationData(tags []*gedcom.Tag, dataIdx, baseLevel int, collector *diagnosticCollector) *gedcom.SourceCitationData {
	data := &gedcom.SourceCitationData{}

	for i := dataIdx + 1; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level <= baseLevel {
			break
		}
		if tag.Level == baseLevel+1 {
			switch tag.Tag {
			case "DATE":
				data.Date = tag.Value
			case "TEXT":
				data.Text = tag.Value
			default:
				if !collector.ignorableCustomTag(tag.Tag) {
					collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
				}
			}
		}
	}

	return data
}

// parseEvent extracts an event from tags starting at eventIdx.
//
//nolint:gocyclo // GEDCOM parsing inherently requires handling many tag types
func parseEvent(tags []*gedcom.Tag, eventIdx int, eventTag string, collector *diagnosticCollector) *gedcom.Event {
	event := &gedcom.Event{
		Type: gedcom.EventType(eventTag),
	}

	baseLevel := tags[eventIdx].Level

	for i := eventIdx + 1; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level <= baseLevel {
			break
		}
		if tag.Level == baseLevel+1 {
			switch tag.Tag {
			case "DATE":
				event.Date = tag.Value
				if parsed, err := gedcom.ParseDate(tag.Value); err == nil {
					event.ParsedDate = parsed
				} else {
					collector.addInvalidValue(tag.LineNumber, "DATE", tag.Value, err.Error())
				}
			case "PLAC":
				event.Place = tag.Value
				event.PlaceDetail = parsePlaceDetail(tags, i, tag.Level, collector)
			case "TYPE":
				event.EventTypeDetail = tag.Value
			case "CAUS":
				event.Cause = tag.Value
			case "AGE":
				event.Age = tag.Value
			case "AGNC":
				event.Agency = tag.Value
			case "ADDR":
				event.Address = parseEventAddress(tags, i, tag.Level, collector)
			case "PHON":
				event.Phone = append(event.Phone, tag.Value)
			case "EMAIL":
				event.Email = append(event.Email, tag.Value)
			case "FAX":
				event.Fax = append(event.Fax, tag.Value)
			case "WWW":
				event.Website = append(event.Website, tag.Value)
			case "RESN":
				event.Restriction = tag.Value
			case "NOTE":
				event.Notes = append(event.Notes, parseNoteRef(tag.Value))
			case "SOUR":
				cite := parseSourceCitation(tags, i, tag.Level, collector)
				event.SourceCitations = append(event.SourceCitations, cite)
			case "OBJE":
				link := parseMediaLink(tags, i, tag.Level, collector)
				event.Media = append(event.Media, link)
			case "HUSB", "WIFE":
				// These appear in family events (marriage, etc.) for spouse
				// ages; not yet parsed into typed fields.
			default:
				if !collector.ignorableCustomTag(tag.Tag) {
					collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
				}
			}
		}
	}

	return event
}

// parseEventAddress extracts an address structure from tags starting at addrIdx.
func parseEventAddress(tags []*gedcom.Tag, addrIdx, baseLevel int, collector *diagnosticCollector) *gedcom.Address {
	addr := &gedcom.Address{
		Line1: tags[addrIdx].Value,
	}

	for i := addrIdx + 1; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level <= baseLevel {
			break
		}
		if tag.Level == baseLevel+1 {
			switch tag.Tag {
			case "ADR1":
				addr.Line1 = tag.Value
			case "ADR2":
				addr.Line2 = tag.Value
			case "ADR3":
				addr.Line3 = tag.Value
			case "CITY":
				addr.City = tag.Value
			case "STAE":
				addr.State = tag.Value
			case "POST":
				addr.PostalCode = tag.Value
			case "CTRY":
				addr.Country = tag.Value
			default:
				if !collector.ignorableCustomTag(tag.Tag) {
					collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
				}
			}
		}
	}

	return addr
}

// parsePlaceDetail extracts a place structure with optional coordinates from tags starting at placIdx.
func parsePlaceDetail(tags []*gedcom.Tag, placIdx, baseLevel int, collector *diagnosticCollector) *gedcom.PlaceDetail {
	place := &gedcom.PlaceDetail{
		Name: tags[placIdx].Value,
	}

	for i := placIdx + 1; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level <= baseLevel {
			break
		}
		if tag.Level == baseLevel+1 {
			switch tag.Tag {
			case "FORM":
				place.Form = tag.Value
			case "MAP":
				place.Coordinates = parseCoordinates(tags, i, tag.Level, collector)
			case "FONE", "ROMN", "NOTE", "LANG":
				// Known tags not yet parsed into typed fields.
			default:
				if !collector.ignorableCustomTag(tag.Tag) {
					collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
				}
			}
		}
	}

	return place
}

// parseCoordinates extracts geographic coordinates from tags starting at mapIdx.
func parseCoordinates(tags []*gedcom.Tag, mapIdx, baseLevel int, collector *diagnosticCollector) *gedcom.Coordinates {
	coords := &gedcom.Coordinates{}

	for i := mapIdx + 1; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level <= baseLevel {
			break
		}
		if tag.Level == baseLevel+1 {
			switch tag.Tag {
			case "LATI":
				coords.Latitude = tag.Value
			case "LONG":
				coords.Longitude = tag.Value
			default:
				if !collector.ignorableCustomTag(tag.Tag) {
					collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
				}
			}
		}
	}

	return coords
}

// parseAttribute extracts an attribute from tags starting at attrIdx.
func parseAttribute(tags []*gedcom.Tag, attrIdx int, attrTag string, collector *diagnosticCollector) *gedcom.Attribute {
	attr := &gedcom.Attribute{
		Type:  attrTag,
		Value: tags[attrIdx].Value,
	}

	for i := attrIdx + 1; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level <= 1 {
			break
		}
		if tag.Level == 2 {
			switch tag.Tag {
			case "DATE":
				attr.Date = tag.Value
				if parsed, err := gedcom.ParseDate(tag.Value); err == nil {
					attr.ParsedDate = parsed
				} else {
					collector.addInvalidValue(tag.LineNumber, "DATE", tag.Value, err.Error())
				}
			case "PLAC":
				attr.Place = tag.Value
			case "SOUR":
				cite := parseSourceCitation(tags, i, tag.Level, collector)
				attr.SourceCitations = append(attr.SourceCitations, cite)
			case "TYPE", "NOTE", "AGE":
				// Known tags not yet parsed into typed fields.
			default:
				if !collector.ignorableCustomTag(tag.Tag) {
					collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
				}
			}
		}
	}

	return attr
}

// ldsOrdinanceType maps a GEDCOM tag to its LDSOrdinanceType.
func ldsOrdinanceType(tag string) gedcom.LDSOrdinanceType {
	switch tag {
	case "BAPL":
		return gedcom.LDSBaptism
	case "CONL":
		return gedcom.LDSConfirmation
	case "ENDL":
		return gedcom.LDSEndowment
	case "SLGC":
		return gedcom.LDSSealingChild
	case "SLGS":
		return gedcom.LDSSealingSpouse
	default:
		return gedcom.LDSOrdinanceType(tag)
	}
}

// parseLDSOrdinance extracts an LDS ordinance from tags starting at ordIdx.
func parseLDSOrdinance(tags []*gedcom.Tag, ordIdx int, ordType gedcom.LDSOrdinanceType, collector *diagnosticCollector) *gedcom.LDSOrdinance {
	ord := &gedcom.LDSOrdinance{
		Type: ordType,
	}

	baseLevel := tags[ordIdx].Level

	for i := ordIdx + 1; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level <= baseLevel {
			break
		}
		if tag.Level == baseLevel+1 {
			switch tag.Tag {
			case "DATE":
				ord.Date = tag.Value
			case "TEMP":
				ord.Temple = tag.Value
			case "PLAC":
				ord.Place = tag.Value
			case "STAT":
				ord.Status = tag.Value
			case "FAMC":
				ord.FamilyXRef = tag.Value
			case "NOTE", "SOUR":
				// Known tags not yet parsed into typed fields.
			default:
				if !collector.ignorableCustomTag(tag.Tag) {
					collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
				}
			}
		}
	}

	return ord
}

// parseFamily converts a flattened tag list into a Family entity.
//
//nolint:gocyclo // GEDCOM parsing inherently requires handling many tag types
func parseFamily(xref string, tags []*gedcom.Tag, collector *diagnosticCollector) *gedcom.Family {
	fam := &gedcom.Family{XRef: xref}

	var leftover []*gedcom.Tag
	for i := 0; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level != 1 {
			continue
		}

		switch tag.Tag {
		case "HUSB":
			if fam.Husband != "" {
				collector.add(NewDiagnostic(tag.LineNumber, SeverityWarning, CodeCardinality,
					"family already has a HUSB, ignoring extra one", tag.Value))
				continue
			}
			fam.Husband = tag.Value

		case "WIFE":
			if fam.Wife != "" {
				collector.add(NewDiagnostic(tag.LineNumber, SeverityWarning, CodeCardinality,
					"family already has a WIFE, ignoring extra one", tag.Value))
				continue
			}
			fam.Wife = tag.Value

		case "CHIL":
			fam.Children = append(fam.Children, tag.Value)

		case "MARR", "DIV", "ENGA", "ANUL", "MARB", "MARC", "MARL", "MARS", "DIVF", "EVEN":
			event := parseEvent(tags, i, tag.Tag, collector)
			fam.Events = append(fam.Events, event)

		case "SLGS":
			ord := parseLDSOrdinance(tags, i, ldsOrdinanceType(tag.Tag), collector)
			fam.LDSOrdinances = append(fam.LDSOrdinances, ord)

		case "SOUR":
			cite := parseSourceCitation(tags, i, tag.Level, collector)
			fam.SourceCitations = append(fam.SourceCitations, cite)

		case "NOTE":
			fam.Notes = append(fam.Notes, parseNoteRef(tag.Value))

		case "OBJE":
			fam.Media = append(fam.Media, parseMediaLink(tags, i, tag.Level, collector))

		case "CHAN":
			fam.ChangeDate = parseChangeDate(tags, i, collector)

		case "REFN":
			// Family has no RefNumber field; preserved via CustomFacts below
			// only when genuinely unrecognized, so this is just ignored.

		case "NCHI", "RESN", "SUBM", "ASSO", "CREA", "UID":
			// Known tags not carried as typed fields in this model.

		default:
			if collector.ignorableCustomTag(tag.Tag) {
				continue
			}
			collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
			leftover = append(leftover, tag)
		}
	}
	fam.CustomFacts = leftover

	return fam
}

//nolint:gocyclo // Source parsing requires handling many tag types
func parseSource(xref string, tags []*gedcom.Tag, collector *diagnosticCollector) *gedcom.Source {
	src := &gedcom.Source{XRef: xref}

	var leftover []*gedcom.Tag
	for i := 0; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level != 1 {
			continue
		}

		switch tag.Tag {
		case "TITL":
			src.Title = tag.Value
		case "AUTH":
			src.Author = tag.Value
		case "PUBL":
			src.Publication = tag.Value
		case "TEXT":
			src.Text = tag.Value
		case "REPO":
			if tag.Value != "" {
				src.RepositoryRef = tag.Value
			} else {
				src.InlineRepository = parseInlineRepository(tags, i, collector)
			}
		case "NOTE":
			src.Notes = append(src.Notes, parseNoteRef(tag.Value))
		case "OBJE":
			src.Media = append(src.Media, parseMediaLink(tags, i, tag.Level, collector))
		case "CHAN":
			src.ChangeDate = parseChangeDate(tags, i, collector)
		case "DATA", "ABBR", "CREA", "UID":
			// Known tags not carried as typed fields in this model.
		default:
			if collector.ignorableCustomTag(tag.Tag) {
				continue
			}
			collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
			leftover = append(leftover, tag)
		}
	}
	src.CustomFacts = leftover

	return src
}

// parseInlineRepository extracts an inline repository from tags starting at repoIdx.
// An inline repository has no XRef value and contains subordinate tags like NAME.
func parseInlineRepository(tags []*gedcom.Tag, repoIdx int, collector *diagnosticCollector) *gedcom.InlineRepository {
	repo := &gedcom.InlineRepository{}

	baseLevel := tags[repoIdx].Level

	for i := repoIdx + 1; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level <= baseLevel {
			break
		}
		if tag.Level == baseLevel+1 {
			switch tag.Tag {
			case "NAME":
				repo.Name = tag.Value
			case "CALN", "NOTE":
				// Known tags not yet parsed into typed fields.
			default:
				if !collector.ignorableCustomTag(tag.Tag) {
					collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
				}
			}
		}
	}

	return repo
}

// parseChangeDate extracts a change date structure from tags starting at chanIdx.
func parseChangeDate(tags []*gedcom.Tag, chanIdx int, collector *diagnosticCollector) *gedcom.ChangeDate {
	cd := &gedcom.ChangeDate{}

	baseLevel := tags[chanIdx].Level

	for i := chanIdx + 1; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level <= baseLevel {
			break
		}
		if tag.Level == baseLevel+1 {
			switch tag.Tag {
			case "DATE":
				cd.Date = tag.Value
				for j := i + 1; j < len(tags); j++ {
					timeTag := tags[j]
					if timeTag.Level <= baseLevel+1 {
						break
					}
					if timeTag.Level == baseLevel+2 && timeTag.Tag == "TIME" {
						cd.Time = timeTag.Value
						break
					}
				}
			case "NOTE":
				// Known tag not yet parsed into typed fields.
			default:
				if !collector.ignorableCustomTag(tag.Tag) {
					collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
				}
			}
		}
	}

	return cd
}

// parseSubmitter converts a flattened tag list into a Submitter entity.
func parseSubmitter(xref string, tags []*gedcom.Tag, collector *diagnosticCollector) *gedcom.Submitter {
	subm := &gedcom.Submitter{XRef: xref}

	var leftover []*gedcom.Tag
	for i := 0; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level != 1 {
			continue
		}

		switch tag.Tag {
		case "NAME":
			subm.Name = tag.Value

		case "ADDR":
			subm.Address = parseEventAddress(tags, i, tag.Level, collector)

		case "PHON":
			subm.Phone = append(subm.Phone, tag.Value)

		case "EMAIL":
			subm.Email = append(subm.Email, tag.Value)

		case "LANG":
			subm.Language = append(subm.Language, tag.Value)

		case "NOTE":
			subm.Notes = append(subm.Notes, parseNoteRef(tag.Value))

		case "CHAN", "FAX", "WWW", "OBJE", "RIN", "UID":
			// Known tags not carried as typed fields in this model.

		default:
			if collector.ignorableCustomTag(tag.Tag) {
				continue
			}
			collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
			leftover = append(leftover, tag)
		}
	}
	subm.CustomFacts = leftover

	return subm
}

// parseRepository converts a flattened tag list into a Repository entity.
func parseRepository(xref string, tags []*gedcom.Tag, collector *diagnosticCollector) *gedcom.Repository {
	repo := &gedcom.Repository{XRef: xref}

	var leftover []*gedcom.Tag
	for i := 0; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level != 1 {
			continue
		}

		switch tag.Tag {
		case "NAME":
			repo.Name = tag.Value

		case "ADDR":
			repo.Address = parseEventAddress(tags, i, tag.Level, collector)

		case "PHON":
			if repo.Address == nil {
				repo.Address = &gedcom.Address{}
			}
			repo.Address.Phone = tag.Value

		case "EMAIL":
			if repo.Address == nil {
				repo.Address = &gedcom.Address{}
			}
			repo.Address.Email = tag.Value

		case "WWW":
			if repo.Address == nil {
				repo.Address = &gedcom.Address{}
			}
			repo.Address.Website = tag.Value

		case "NOTE":
			repo.Notes = append(repo.Notes, parseNoteRef(tag.Value))

		case "CHAN", "REFN", "FAX", "UID":
			// Known tags not carried as typed fields in this model.

		default:
			if collector.ignorableCustomTag(tag.Tag) {
				continue
			}
			collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
			leftover = append(leftover, tag)
		}
	}
	repo.CustomFacts = leftover

	return repo
}

// parseNote converts a flattened tag list into a Note entity. value is the
// level-0 NOTE line's own value, already merged with any CONT/CONC
// continuation lines during tree flattening.
func parseNote(xref, value string, tags []*gedcom.Tag, collector *diagnosticCollector) *gedcom.Note {
	note := &gedcom.Note{
		XRef: xref,
		Text: value,
	}

	var leftover []*gedcom.Tag
	for i := 0; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level != 1 {
			continue
		}

		switch tag.Tag {
		case "LANG", "SOUR", "REFN", "UID", "CHAN":
			// Known tags not carried as typed fields in this model.

		default:
			if collector.ignorableCustomTag(tag.Tag) {
				continue
			}
			collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
			leftover = append(leftover, tag)
		}
	}
	note.CustomFacts = leftover

	return note
}

// parseMediaObject converts a flattened tag list into a MediaObject entity.
func parseMediaObject(xref string, tags []*gedcom.Tag, collector *diagnosticCollector) *gedcom.MediaObject {
	media := &gedcom.MediaObject{XRef: xref}

	var leftover []*gedcom.Tag
	for i := 0; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level != 1 {
			continue
		}

		switch tag.Tag {
		case "FORM":
			media.Form = tag.Value
		case "TITL":
			media.Title = tag.Value
		case "FILE":
			media.FileRef = tag.Value
		case "NOTE":
			media.Notes = append(media.Notes, parseNoteRef(tag.Value))
		case "SOUR":
			cite := parseSourceCitation(tags, i, tag.Level, collector)
			media.SourceCitations = append(media.SourceCitations, cite)
		case "CHAN":
			media.ChangeDate = parseChangeDate(tags, i, collector)
		case "REFN":
			media.RefNumbers = append(media.RefNumbers, tag.Value)
		case "RESN", "CREA", "UID":
			// Known tags not carried as typed fields in this model.
		default:
			if collector.ignorableCustomTag(tag.Tag) {
				continue
			}
			collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
			leftover = append(leftover, tag)
		}
	}
	media.CustomFacts = leftover

	return media
}

// parseMediaLink extracts a MediaLink from an OBJE tag and its subordinates,
// covering both pointer form (OBJE @O1@) and inline form (OBJE with FORM/
// TITL/FILE subordinates).
func parseMediaLink(tags []*gedcom.Tag, objeIdx, baseLevel int, collector *diagnosticCollector) *gedcom.MediaLink {
	link := &gedcom.MediaLink{
		MediaXRef: tags[objeIdx].Value,
	}

	for i := objeIdx + 1; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level <= baseLevel {
			break
		}
		if tag.Level == baseLevel+1 {
			switch tag.Tag {
			case "FORM":
				link.Form = tag.Value
			case "TITL":
				link.Title = tag.Value
			case "FILE":
				link.FileRef = tag.Value
			default:
				if !collector.ignorableCustomTag(tag.Tag) {
					collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
				}
			}
		}
	}

	return link
}

// parseSubmission converts a flattened tag list into a Submission entity.
func parseSubmission(xref string, tags []*gedcom.Tag, collector *diagnosticCollector) *gedcom.Submission {
	sub := &gedcom.Submission{XRef: xref}

	var leftover []*gedcom.Tag
	for i := 0; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level != 1 {
			continue
		}

		switch tag.Tag {
		case "SUBM":
			sub.SubmitterXRef = tag.Value
		case "FAMF":
			sub.FamilyFileName = tag.Value
		case "TEMP":
			sub.TempleCode = tag.Value
		case "ANCE":
			sub.AncestorGenerations = tag.Value
		case "DESC":
			sub.DescendantGenerations = tag.Value
		case "ORDI":
			sub.OrdinanceProcessFlag = tag.Value
		case "RIN":
			sub.RefNumber = tag.Value
		default:
			if collector.ignorableCustomTag(tag.Tag) {
				continue
			}
			collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
			leftover = append(leftover, tag)
		}
	}
	sub.CustomFacts = leftover

	return sub
}
