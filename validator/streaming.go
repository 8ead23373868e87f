// streaming.go provides streaming validation for memory-efficient GEDCOM processing.
//
// The StreamingValidator validates records incrementally as they are decoded,
// without requiring a complete Gedcom document in memory. This enables:
//   - Validating files larger than available memory
//   - Detecting errors early (fail-fast)
//   - Tracking cross-references for eventual consistency checking
//
// Memory usage is proportional to the number of unique XRefs, not the total file size.
//
// # Basic Usage
//
//	sv := validator.NewStreamingValidator(validator.StreamingOptions{})
//	var issues []validator.Issue
//
//	// Feed each entity to the validator as it is decoded
//	issues = append(issues, sv.ValidateIndividual(indi)...)
//	issues = append(issues, sv.ValidateFamily(fam)...)
//	sv.ValidateSource(src)
//
//	// Check cross-reference consistency
//	issues = append(issues, sv.Finalize()...)

package validator

import (
	"fmt"

	"github.com/kestrelgen/gedkit/gedcom"
)

// StreamingOptions configures the StreamingValidator behavior.
type StreamingOptions struct {
	// DateLogic configures date logic validation thresholds.
	// If nil, default values are used.
	DateLogic *DateLogicConfig

	// Strictness controls which severity levels are included in results.
	// The zero value is StrictnessRelaxed (errors only).
	Strictness Strictness
}

// usageLocation records where an XRef is referenced.
type usageLocation struct {
	// RecordXRef is the XRef of the record containing the reference.
	RecordXRef string

	// Context describes where the reference appears (e.g., "HUSB", "WIFE", "FAMC").
	Context string

	// Field provides additional detail about the reference location.
	Field string

	// Index is the position in a list (for CHIL, ChildInFamilies, etc.).
	Index int
}

// StreamingValidator validates GEDCOM records incrementally without requiring
// a complete Document in memory. Cross-reference validation is deferred until
// Finalize() is called.
type StreamingValidator struct {
	opts StreamingOptions

	// seenXRefs tracks all declared XRefs (record identifiers).
	seenXRefs map[string]struct{}

	// usedXRefs maps each referenced XRef to where it's used.
	usedXRefs map[string][]usageLocation

	// xrefKinds maps XRefs to their record kind ("INDI", "FAM", "SOUR", ...)
	// for context-aware validation.
	xrefKinds map[string]string

	// dateLogic provides date validation for individual records.
	dateLogic *DateLogicValidator
}

// NewStreamingValidator creates a new StreamingValidator with the given options.
// A nil opts.DateLogic selects the default date logic thresholds.
func NewStreamingValidator(opts StreamingOptions) *StreamingValidator {
	return &StreamingValidator{
		opts:      opts,
		seenXRefs: make(map[string]struct{}),
		usedXRefs: make(map[string][]usageLocation),
		xrefKinds: make(map[string]string),
		dateLogic: NewDateLogicValidator(opts.DateLogic),
	}
}

// ValidateIndividual validates a single individual and returns immediate issues.
// Cross-reference issues are deferred to Finalize().
func (sv *StreamingValidator) ValidateIndividual(ind *gedcom.Individual) []Issue {
	if ind == nil {
		return nil
	}

	if ind.XRef != "" {
		sv.seenXRefs[ind.XRef] = struct{}{}
		sv.xrefKinds[ind.XRef] = "INDI"
	}

	issues := sv.validateIndividual(ind)
	return sv.filterByStrictness(issues)
}

// ValidateFamily validates a single family and returns immediate issues.
// Cross-reference issues are deferred to Finalize().
func (sv *StreamingValidator) ValidateFamily(fam *gedcom.Family) []Issue {
	if fam == nil {
		return nil
	}

	if fam.XRef != "" {
		sv.seenXRefs[fam.XRef] = struct{}{}
		sv.xrefKinds[fam.XRef] = "FAM"
	}

	issues := sv.validateFamily(fam)
	return sv.filterByStrictness(issues)
}

// ValidateSource registers a source and collects its outgoing references.
// Sources carry no date-logic checks, so no immediate issues are returned.
func (sv *StreamingValidator) ValidateSource(src *gedcom.Source) {
	if src == nil {
		return
	}

	if src.XRef != "" {
		sv.seenXRefs[src.XRef] = struct{}{}
		sv.xrefKinds[src.XRef] = "SOUR"
	}

	sv.collectSourceReferences(src)
}

// ValidateRepository registers a repository so references to it resolve
// during Finalize().
func (sv *StreamingValidator) ValidateRepository(repo *gedcom.Repository) {
	if repo == nil || repo.XRef == "" {
		return
	}
	sv.seenXRefs[repo.XRef] = struct{}{}
	sv.xrefKinds[repo.XRef] = "REPO"
}

// ValidateNote registers a note so references to it resolve during Finalize().
func (sv *StreamingValidator) ValidateNote(note *gedcom.Note) {
	if note == nil || note.XRef == "" {
		return
	}
	sv.seenXRefs[note.XRef] = struct{}{}
	sv.xrefKinds[note.XRef] = "NOTE"
}

// validateIndividual validates an Individual record and collects XRef references.
func (sv *StreamingValidator) validateIndividual(ind *gedcom.Individual) []Issue {
	var issues []Issue

	// Validate date logic (death before birth, etc.) - these are immediate issues
	// Note: We can only do individual-level checks without a Document.
	// Parent-child checks require a full document and are not supported in streaming mode.
	if issue := sv.dateLogic.checkDeathBeforeBirth(ind); issue != nil {
		issues = append(issues, *issue)
	}

	// Collect FAMC references
	for i, link := range ind.ChildInFamilies {
		if link.FamilyXRef != "" {
			sv.usedXRefs[link.FamilyXRef] = append(sv.usedXRefs[link.FamilyXRef], usageLocation{
				RecordXRef: ind.XRef,
				Context:    "FAMC",
				Field:      fmt.Sprintf("ChildInFamilies[%d]", i),
				Index:      i,
			})
		}
	}

	// Collect FAMS references
	for i, famXRef := range ind.SpouseInFamilies {
		if famXRef != "" {
			sv.usedXRefs[famXRef] = append(sv.usedXRefs[famXRef], usageLocation{
				RecordXRef: ind.XRef,
				Context:    "FAMS",
				Field:      fmt.Sprintf("SpouseInFamilies[%d]", i),
				Index:      i,
			})
		}
	}

	// Collect SOUR references from individual
	for i, citation := range ind.SourceCitations {
		if citation != nil && citation.SourceXRef != "" {
			sv.usedXRefs[citation.SourceXRef] = append(sv.usedXRefs[citation.SourceXRef], usageLocation{
				RecordXRef: ind.XRef,
				Context:    "SOUR",
				Field:      fmt.Sprintf("SourceCitations[%d]", i),
				Index:      i,
			})
		}
	}

	// Collect NOTE references
	for i, noteRef := range ind.Notes {
		if noteRef != nil && noteRef.XRef != "" {
			sv.usedXRefs[noteRef.XRef] = append(sv.usedXRefs[noteRef.XRef], usageLocation{
				RecordXRef: ind.XRef,
				Context:    "NOTE",
				Field:      fmt.Sprintf("Notes[%d]", i),
				Index:      i,
			})
		}
	}

	// Collect ASSO references
	for i, assoc := range ind.Associations {
		if assoc != nil && assoc.IndividualXRef != "" {
			sv.usedXRefs[assoc.IndividualXRef] = append(sv.usedXRefs[assoc.IndividualXRef], usageLocation{
				RecordXRef: ind.XRef,
				Context:    "ASSO",
				Field:      fmt.Sprintf("Associations[%d]", i),
				Index:      i,
			})
		}
	}

	return issues
}

// validateFamily validates a Family record and collects XRef references.
// Currently only collects references; validation rules may be added later.
//
//nolint:unparam // Returns nil now but signature kept for future validation rules
func (sv *StreamingValidator) validateFamily(fam *gedcom.Family) []Issue {
	// Collect HUSB reference
	if fam.Husband != "" {
		sv.usedXRefs[fam.Husband] = append(sv.usedXRefs[fam.Husband], usageLocation{
			RecordXRef: fam.XRef,
			Context:    "HUSB",
			Field:      "Husband",
			Index:      0,
		})
	}

	// Collect WIFE reference
	if fam.Wife != "" {
		sv.usedXRefs[fam.Wife] = append(sv.usedXRefs[fam.Wife], usageLocation{
			RecordXRef: fam.XRef,
			Context:    "WIFE",
			Field:      "Wife",
			Index:      0,
		})
	}

	// Collect CHIL references
	for i, childXRef := range fam.Children {
		if childXRef != "" {
			sv.usedXRefs[childXRef] = append(sv.usedXRefs[childXRef], usageLocation{
				RecordXRef: fam.XRef,
				Context:    "CHIL",
				Field:      fmt.Sprintf("Children[%d]", i),
				Index:      i,
			})
		}
	}

	// Collect SOUR references from family
	for i, citation := range fam.SourceCitations {
		if citation != nil && citation.SourceXRef != "" {
			sv.usedXRefs[citation.SourceXRef] = append(sv.usedXRefs[citation.SourceXRef], usageLocation{
				RecordXRef: fam.XRef,
				Context:    "SOUR",
				Field:      fmt.Sprintf("SourceCitations[%d]", i),
				Index:      i,
			})
		}
	}

	// Collect NOTE references
	for i, noteRef := range fam.Notes {
		if noteRef != nil && noteRef.XRef != "" {
			sv.usedXRefs[noteRef.XRef] = append(sv.usedXRefs[noteRef.XRef], usageLocation{
				RecordXRef: fam.XRef,
				Context:    "NOTE",
				Field:      fmt.Sprintf("Notes[%d]", i),
				Index:      i,
			})
		}
	}

	return nil
}

// collectSourceReferences collects XRef references from a Source record.
func (sv *StreamingValidator) collectSourceReferences(src *gedcom.Source) {
	// Collect REPO reference
	if src.RepositoryRef != "" {
		sv.usedXRefs[src.RepositoryRef] = append(sv.usedXRefs[src.RepositoryRef], usageLocation{
			RecordXRef: src.XRef,
			Context:    "REPO",
			Field:      "RepositoryRef",
			Index:      0,
		})
	}

	// Collect NOTE references
	for i, noteRef := range src.Notes {
		if noteRef != nil && noteRef.XRef != "" {
			sv.usedXRefs[noteRef.XRef] = append(sv.usedXRefs[noteRef.XRef], usageLocation{
				RecordXRef: src.XRef,
				Context:    "NOTE",
				Field:      fmt.Sprintf("Notes[%d]", i),
				Index:      i,
			})
		}
	}
}

// Finalize completes validation and returns cross-reference issues.
// This method should be called after all records have been passed to the
// Validate* methods (ValidateIndividual, ValidateFamily, and so on).
//
// Returns issues for:
//   - Orphaned references (XRefs used but never declared)
func (sv *StreamingValidator) Finalize() []Issue {
	var issues []Issue

	// Check for orphaned references
	for xref, usages := range sv.usedXRefs {
		if _, exists := sv.seenXRefs[xref]; !exists {
			// XRef is used but was never declared
			for _, usage := range usages {
				issues = append(issues, sv.createOrphanedReferenceIssue(xref, usage))
			}
		}
	}

	return sv.filterByStrictness(issues)
}

// createOrphanedReferenceIssue creates an issue for an orphaned reference.
func (sv *StreamingValidator) createOrphanedReferenceIssue(xref string, usage usageLocation) Issue {
	var code string
	var message string

	switch usage.Context {
	case "FAMC":
		code = CodeOrphanedFAMC
		message = fmt.Sprintf("FAMC reference to non-existent family %s", xref)
	case "FAMS":
		code = CodeOrphanedFAMS
		message = fmt.Sprintf("FAMS reference to non-existent family %s", xref)
	case "HUSB":
		code = CodeOrphanedHUSB
		message = fmt.Sprintf("HUSB reference to non-existent individual %s", xref)
	case "WIFE":
		code = CodeOrphanedWIFE
		message = fmt.Sprintf("WIFE reference to non-existent individual %s", xref)
	case "CHIL":
		code = CodeOrphanedCHIL
		message = fmt.Sprintf("CHIL reference to non-existent individual %s", xref)
	case "SOUR":
		code = CodeOrphanedSOUR
		message = fmt.Sprintf("SOUR reference to non-existent source %s", xref)
	default:
		// Generic orphaned reference for NOTE, ASSO, REPO, etc.
		code = "ORPHANED_" + usage.Context
		message = fmt.Sprintf("%s reference to non-existent record %s", usage.Context, xref)
	}

	return NewIssue(SeverityError, code, message, usage.RecordXRef).
		WithRelatedXRef(xref).
		WithDetail("reference_type", usage.Context).
		WithDetail("field", usage.Field)
}

// Reset clears all internal state, allowing the validator to be reused.
func (sv *StreamingValidator) Reset() {
	sv.seenXRefs = make(map[string]struct{})
	sv.usedXRefs = make(map[string][]usageLocation)
	sv.xrefKinds = make(map[string]string)
}

// filterByStrictness filters issues based on the configured strictness level.
func (sv *StreamingValidator) filterByStrictness(issues []Issue) []Issue {
	if len(issues) == 0 {
		return issues
	}

	switch sv.opts.Strictness {
	case StrictnessRelaxed:
		// Only errors
		var result []Issue
		for _, issue := range issues {
			if issue.Severity == SeverityError {
				result = append(result, issue)
			}
		}
		return result
	case StrictnessNormal:
		// Errors and warnings
		var result []Issue
		for _, issue := range issues {
			if issue.Severity == SeverityError || issue.Severity == SeverityWarning {
				result = append(result, issue)
			}
		}
		return result
	case StrictnessStrict:
		// All issues
		return issues
	default:
		// Default to normal strictness
		var result []Issue
		for _, issue := range issues {
			if issue.Severity == SeverityError || issue.Severity == SeverityWarning {
				result = append(result, issue)
			}
		}
		return result
	}
}

// SeenXRefCount returns the number of declared XRefs tracked by the validator.
// This is useful for memory usage monitoring.
func (sv *StreamingValidator) SeenXRefCount() int {
	return len(sv.seenXRefs)
}

// UsedXRefCount returns the number of unique XRefs referenced by records.
// This is useful for memory usage monitoring.
func (sv *StreamingValidator) UsedXRefCount() int {
	return len(sv.usedXRefs)
}
