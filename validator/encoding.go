// encoding.go validates the encoding declared in a GEDCOM header and scans
// custom tag values for control characters that cause interoperability
// problems with legacy readers.
//
// GEDCOM 5.5/5.5.1 allow ANSEL, ASCII, UNICODE, and (as a common vendor
// extension) UTF-8 and LATIN1 in the header CHAR tag. Anything else is
// flagged so a caller can investigate a misdeclared or unsupported charset
// before depending on it. C0 control characters (U+0000-U+001F) other than
// TAB, LF, and CR are banned in tag values regardless of declared encoding.

package validator

import (
	"fmt"

	"github.com/kestrelgen/gedkit/gedcom"
)

// EncodingValidator validates the declared header encoding and scans for
// banned control characters.
type EncodingValidator struct{}

// NewEncodingValidator creates a new EncodingValidator.
func NewEncodingValidator() *EncodingValidator {
	return &EncodingValidator{}
}

// Validate performs all encoding validations on the document.
// It combines results from ValidateEncoding and ValidateControlCharacters.
func (e *EncodingValidator) Validate(doc *gedcom.Gedcom) []Issue {
	var issues []Issue
	issues = append(issues, e.ValidateEncoding(doc)...)
	issues = append(issues, e.ValidateControlCharacters(doc)...)
	return issues
}

// ValidateEncoding checks that the header's declared CHAR value is one of
// the encodings this library recognizes. An unrecognized value can mean the
// file was generated by software using a private or mistyped charset name.
func (e *EncodingValidator) ValidateEncoding(doc *gedcom.Gedcom) []Issue {
	if doc == nil || doc.Header == nil {
		return nil
	}

	switch doc.Header.Encoding {
	case "", gedcom.EncodingUTF8, gedcom.EncodingANSEL, gedcom.EncodingASCII,
		gedcom.EncodingUNICODE, gedcom.EncodingLATIN1:
		return nil
	}

	return []Issue{
		NewIssue(
			SeverityWarning,
			CodeInvalidEncodingForVersion,
			fmt.Sprintf("unrecognized CHAR encoding %q in header", doc.Header.Encoding),
			"",
		).WithDetail("encoding", string(doc.Header.Encoding)).
			WithDetail("version", string(doc.Header.Version)),
	}
}

// ValidateControlCharacters scans header fields and every record's custom
// tag values for banned C0 control characters.
// Banned: U+0000-U+001F except TAB (U+0009), LF (U+000A), CR (U+000D).
func (e *EncodingValidator) ValidateControlCharacters(doc *gedcom.Gedcom) []Issue {
	if doc == nil || doc.Header == nil {
		return nil
	}

	var issues []Issue

	// Scan header string fields
	headerFields := []struct {
		value string
		field string
	}{
		{doc.Header.SourceSystem, "SOUR"},
		{doc.Header.Language, "LANG"},
		{doc.Header.Copyright, "COPR"},
		{doc.Header.SubmitterXRef, "SUBM"},
		{doc.Header.AncestryTreeID, "_TREE"},
	}
	for _, hf := range headerFields {
		if hf.value != "" {
			if issue := e.checkControlChars(hf.value, "", hf.field); issue != nil {
				issues = append(issues, *issue)
			}
		}
	}

	e.scanTagsForControlChars(doc.Header.CustomFacts, "", &issues)

	for _, indi := range doc.Individuals() {
		e.scanTagsForControlChars(indi.CustomFacts, indi.XRef, &issues)
	}
	for _, fam := range doc.Families() {
		e.scanTagsForControlChars(fam.CustomFacts, fam.XRef, &issues)
	}
	for _, src := range doc.Sources() {
		e.scanTagsForControlChars(src.CustomFacts, src.XRef, &issues)
	}
	for _, repo := range doc.Repositories() {
		e.scanTagsForControlChars(repo.CustomFacts, repo.XRef, &issues)
	}
	for _, note := range doc.Notes() {
		if issue := e.checkControlChars(note.Text, note.XRef, "NOTE"); issue != nil {
			issues = append(issues, *issue)
		}
		e.scanTagsForControlChars(note.CustomFacts, note.XRef, &issues)
	}
	for _, media := range doc.MultimediaObjects() {
		e.scanTagsForControlChars(media.CustomFacts, media.XRef, &issues)
	}
	for _, subm := range doc.Submitters() {
		e.scanTagsForControlChars(subm.CustomFacts, subm.XRef, &issues)
	}

	return issues
}

// scanTagsForControlChars scans each tag's value for banned control characters.
func (e *EncodingValidator) scanTagsForControlChars(tags []*gedcom.Tag, recordXRef string, issues *[]Issue) {
	for _, tag := range tags {
		if tag.Value != "" {
			if issue := e.checkControlChars(tag.Value, recordXRef, tag.Tag); issue != nil {
				*issues = append(*issues, *issue)
			}
		}
	}
}

// checkControlChars checks a string for banned C0 control characters.
// Returns an Issue if a banned character is found, nil otherwise.
func (e *EncodingValidator) checkControlChars(value, recordXRef, field string) *Issue {
	for i, r := range value {
		if e.isBannedControlChar(r) {
			issue := NewIssue(
				SeverityError,
				CodeBannedControlCharacter,
				fmt.Sprintf("banned C0 control character U+%04X in %s field", r, field),
				recordXRef,
			).WithDetail("character", fmt.Sprintf("U+%04X", r)).
				WithDetail("field", field).
				WithDetail("position", fmt.Sprintf("%d", i))
			return &issue
		}
	}
	return nil
}

// isBannedControlChar returns true if the rune is a banned C0 control character.
// Banned: U+0000-U+001F except TAB (U+0009), LF (U+000A), CR (U+000D)
func (e *EncodingValidator) isBannedControlChar(r rune) bool {
	// Allow TAB, LF, CR
	if r == 0x09 || r == 0x0A || r == 0x0D {
		return false
	}
	// Ban U+0000-U+001F
	return r >= 0x00 && r <= 0x1F
}
