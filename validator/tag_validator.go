// tag_validator.go provides validation for custom (underscore-prefixed) GEDCOM tags.
//
// Custom tags are vendor-specific extensions that start with an underscore (e.g., _MILT,
// _PRIM). This validator checks custom tags against a TagRegistry to ensure they appear
// under valid parent tags and have correctly formatted values.

package validator

import (
	"fmt"
	"strings"

	"github.com/kestrelgen/gedkit/gedcom"
)

// TagValidator validates custom (underscore-prefixed) tags against a registry.
type TagValidator struct {
	registry        *TagRegistry
	validateUnknown bool
}

// NewTagValidator creates a new TagValidator.
//
// Parameters:
//   - registry: The TagRegistry containing custom tag definitions
//   - validateUnknown: If true, report unknown custom tags as warnings
//
// If registry is nil, validation will only report unknown custom tags (if validateUnknown is true).
func NewTagValidator(registry *TagRegistry, validateUnknown bool) *TagValidator {
	return &TagValidator{
		registry:        registry,
		validateUnknown: validateUnknown,
	}
}

// Validate scans every record's custom facts and validates custom tags.
//
// Validation logic:
//   - Only underscore-prefixed tags (custom/vendor tags) are checked
//   - If a tag is in the registry, validate parent and value constraints
//   - If a tag is NOT in the registry and validateUnknown is true, report as warning
//   - Standard GEDCOM tags (non-underscore) are not checked
//
// Custom tags are recorded at decode time as direct children of their owning
// record, so the parent tag for every CustomFacts entry is that record's own
// tag name (INDI, FAM, SOUR, and so on).
func (v *TagValidator) Validate(doc *gedcom.Gedcom) []Issue {
	if doc == nil {
		return nil
	}

	var issues []Issue

	if doc.Header != nil {
		v.scanTags(doc.Header.CustomFacts, "HEAD", "", &issues)
	}
	for _, indi := range doc.Individuals() {
		v.scanTags(indi.CustomFacts, "INDI", indi.XRef, &issues)
	}
	for _, fam := range doc.Families() {
		v.scanTags(fam.CustomFacts, "FAM", fam.XRef, &issues)
	}
	for _, src := range doc.Sources() {
		v.scanTags(src.CustomFacts, "SOUR", src.XRef, &issues)
	}
	for _, repo := range doc.Repositories() {
		v.scanTags(repo.CustomFacts, "REPO", repo.XRef, &issues)
	}
	for _, note := range doc.Notes() {
		v.scanTags(note.CustomFacts, "NOTE", note.XRef, &issues)
	}
	for _, media := range doc.MultimediaObjects() {
		v.scanTags(media.CustomFacts, "OBJE", media.XRef, &issues)
	}
	for _, subm := range doc.Submitters() {
		v.scanTags(subm.CustomFacts, "SUBM", subm.XRef, &issues)
	}

	return issues
}

// scanTags validates every underscore-prefixed tag in tags against the
// registry. All entries share the same parent, since custom facts are only
// captured as direct children of their owning record.
func (v *TagValidator) scanTags(tags []*gedcom.Tag, parent, recordXRef string, issues *[]Issue) {
	for _, tag := range tags {
		if strings.HasPrefix(tag.Tag, "_") {
			v.validateCustomTag(tag, parent, recordXRef, issues)
		}
	}
}

// validateCustomTag validates a single custom tag against the registry.
func (v *TagValidator) validateCustomTag(tag *gedcom.Tag, parent, recordXRef string, issues *[]Issue) {
	// Check if tag is known in the registry
	if v.registry != nil && v.registry.IsKnown(tag.Tag) {
		// Tag is registered - validate against definition
		if issue := v.registry.ValidateTag(tag.Tag, parent, tag.Value); issue != nil {
			// Upgrade severity based on the requirement
			// INVALID_TAG_PARENT and INVALID_TAG_VALUE should be Error severity
			if issue.Code == CodeInvalidTagParent || issue.Code == CodeInvalidTagValue {
				issue.Severity = SeverityError
			}
			issue.RecordXRef = recordXRef
			issue.Details["line_number"] = fmt.Sprintf("%d", tag.LineNumber)
			*issues = append(*issues, *issue)
		}
		return
	}

	// Tag is not in registry
	if v.validateUnknown {
		issue := NewIssue(
			SeverityWarning,
			CodeUnknownCustomTag,
			fmt.Sprintf("unknown custom tag %s", tag.Tag),
			recordXRef,
		).WithDetail("tag", tag.Tag).
			WithDetail("parent", parent).
			WithDetail("line_number", fmt.Sprintf("%d", tag.LineNumber))

		*issues = append(*issues, issue)
	}
}
