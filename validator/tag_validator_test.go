package validator

import (
	"regexp"
	"testing"

	"github.com/kestrelgen/gedkit/gedcom"
)

func TestNewTagValidator(t *testing.T) {
	t.Run("with nil registry and validateUnknown false", func(t *testing.T) {
		tv := NewTagValidator(nil, false)
		if tv == nil {
			t.Fatal("expected non-nil TagValidator")
		}
		if tv.registry != nil {
			t.Error("expected nil registry")
		}
		if tv.validateUnknown {
			t.Error("expected validateUnknown to be false")
		}
	})

	t.Run("with registry and validateUnknown true", func(t *testing.T) {
		registry := NewTagRegistry()
		tv := NewTagValidator(registry, true)
		if tv == nil {
			t.Fatal("expected non-nil TagValidator")
		}
		if tv.registry != registry {
			t.Error("expected registry to be set")
		}
		if !tv.validateUnknown {
			t.Error("expected validateUnknown to be true")
		}
	})
}

func TestTagValidator_Validate_NilDocument(t *testing.T) {
	registry := NewTagRegistry()
	tv := NewTagValidator(registry, true)

	issues := tv.Validate(nil)
	if issues != nil {
		t.Errorf("expected nil issues for nil document, got %v", issues)
	}
}

func TestTagValidator_Validate_NoCustomTags(t *testing.T) {
	registry := NewTagRegistry()
	tv := NewTagValidator(registry, true)

	doc := gedcom.New()
	doc.IndividualsByXRef["@I1@"] = &gedcom.Individual{
		XRef: "@I1@",
		Names: []*gedcom.PersonalName{{Full: "John /Doe/"}},
	}

	issues := tv.Validate(doc)
	if len(issues) != 0 {
		t.Errorf("expected no issues for document without custom tags, got %d", len(issues))
	}
}

func TestTagValidator_Validate_UnknownCustomTag(t *testing.T) {
	registry := NewTagRegistry()
	tv := NewTagValidator(registry, true)

	doc := gedcom.New()
	doc.IndividualsByXRef["@I1@"] = &gedcom.Individual{
		XRef: "@I1@",
		CustomFacts: []*gedcom.Tag{
			{Level: 1, Tag: "_CUSTOM", Value: "some value", LineNumber: 5},
		},
	}

	issues := tv.Validate(doc)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}

	issue := issues[0]
	if issue.Code != CodeUnknownCustomTag {
		t.Errorf("expected code %s, got %s", CodeUnknownCustomTag, issue.Code)
	}
	if issue.Severity != SeverityWarning {
		t.Errorf("expected severity Warning, got %s", issue.Severity)
	}
	if issue.RecordXRef != "@I1@" {
		t.Errorf("expected RecordXRef @I1@, got %s", issue.RecordXRef)
	}
	if issue.Details["tag"] != "_CUSTOM" {
		t.Errorf("expected tag detail _CUSTOM, got %s", issue.Details["tag"])
	}
}

func TestTagValidator_Validate_UnknownCustomTag_Disabled(t *testing.T) {
	registry := NewTagRegistry()
	tv := NewTagValidator(registry, false)

	doc := gedcom.New()
	doc.IndividualsByXRef["@I1@"] = &gedcom.Individual{
		XRef: "@I1@",
		CustomFacts: []*gedcom.Tag{
			{Level: 1, Tag: "_UNKNOWN", Value: "value"},
		},
	}

	issues := tv.Validate(doc)
	if len(issues) != 0 {
		t.Errorf("expected no issues when validateUnknown is false, got %d", len(issues))
	}
}

func TestTagValidator_Validate_KnownCustomTag_Valid(t *testing.T) {
	registry := NewTagRegistry()
	err := registry.Register("_MILT", TagDefinition{
		Tag:            "_MILT",
		AllowedParents: []string{"INDI"},
		Description:    "Military service",
	})
	if err != nil {
		t.Fatalf("failed to register tag: %v", err)
	}

	tv := NewTagValidator(registry, true)

	doc := gedcom.New()
	doc.IndividualsByXRef["@I1@"] = &gedcom.Individual{
		XRef: "@I1@",
		CustomFacts: []*gedcom.Tag{
			{Level: 1, Tag: "_MILT", Value: "Army"},
		},
	}

	issues := tv.Validate(doc)
	if len(issues) != 0 {
		t.Errorf("expected no issues for valid custom tag, got %d: %v", len(issues), issues)
	}
}

func TestTagValidator_Validate_InvalidParent(t *testing.T) {
	registry := NewTagRegistry()
	err := registry.Register("_MILT", TagDefinition{
		Tag:            "_MILT",
		AllowedParents: []string{"INDI"}, // Only allowed under INDI
		Description:    "Military service",
	})
	if err != nil {
		t.Fatalf("failed to register tag: %v", err)
	}

	tv := NewTagValidator(registry, true)

	doc := gedcom.New()
	doc.FamiliesByXRef["@F1@"] = &gedcom.Family{
		XRef: "@F1@",
		CustomFacts: []*gedcom.Tag{
			{Level: 1, Tag: "_MILT", Value: "Army", LineNumber: 10},
		},
	}

	issues := tv.Validate(doc)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}

	issue := issues[0]
	if issue.Code != CodeInvalidTagParent {
		t.Errorf("expected code %s, got %s", CodeInvalidTagParent, issue.Code)
	}
	if issue.Severity != SeverityError {
		t.Errorf("expected severity Error, got %s", issue.Severity)
	}
	if issue.RecordXRef != "@F1@" {
		t.Errorf("expected RecordXRef @F1@, got %s", issue.RecordXRef)
	}
}

func TestTagValidator_Validate_InvalidValue(t *testing.T) {
	registry := NewTagRegistry()
	err := registry.Register("_PRIM", TagDefinition{
		Tag:          "_PRIM",
		ValuePattern: YesNoPattern, // Only Y or N allowed
		Description:  "Primary indicator",
	})
	if err != nil {
		t.Fatalf("failed to register tag: %v", err)
	}

	tv := NewTagValidator(registry, true)

	doc := gedcom.New()
	doc.IndividualsByXRef["@I1@"] = &gedcom.Individual{
		XRef: "@I1@",
		CustomFacts: []*gedcom.Tag{
			{Level: 1, Tag: "_PRIM", Value: "INVALID", LineNumber: 7},
		},
	}

	issues := tv.Validate(doc)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}

	issue := issues[0]
	if issue.Code != CodeInvalidTagValue {
		t.Errorf("expected code %s, got %s", CodeInvalidTagValue, issue.Code)
	}
	if issue.Severity != SeverityError {
		t.Errorf("expected severity Error, got %s", issue.Severity)
	}
}

func TestTagValidator_Validate_HeaderCustomTag(t *testing.T) {
	registry := NewTagRegistry()
	err := registry.Register("_TREE", TagDefinition{
		Tag:            "_TREE",
		AllowedParents: []string{"INDI"}, // Not allowed under HEAD
		Description:    "Ancestry tree id",
	})
	if err != nil {
		t.Fatalf("failed to register tag: %v", err)
	}

	tv := NewTagValidator(registry, true)

	doc := gedcom.New()
	doc.Header = &gedcom.Header{
		CustomFacts: []*gedcom.Tag{
			{Level: 1, Tag: "_TREE", Value: "12345"},
		},
	}

	issues := tv.Validate(doc)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Code != CodeInvalidTagParent {
		t.Errorf("expected code %s, got %s", CodeInvalidTagParent, issues[0].Code)
	}
	if issues[0].RecordXRef != "" {
		t.Errorf("expected empty RecordXRef for header tag, got %q", issues[0].RecordXRef)
	}
}

func TestTagValidator_Validate_MultipleIssues(t *testing.T) {
	registry := NewTagRegistry()
	err := registry.Register("_MILT", TagDefinition{
		Tag:            "_MILT",
		AllowedParents: []string{"INDI"},
	})
	if err != nil {
		t.Fatalf("failed to register tag: %v", err)
	}

	tv := NewTagValidator(registry, true)

	doc := gedcom.New()
	doc.IndividualsByXRef["@I1@"] = &gedcom.Individual{
		XRef: "@I1@",
		CustomFacts: []*gedcom.Tag{
			{Level: 1, Tag: "_UNKNOWN1"}, // Unknown
			{Level: 1, Tag: "_UNKNOWN2"}, // Unknown
			{Level: 1, Tag: "_MILT"},     // Valid
		},
	}
	doc.FamiliesByXRef["@F1@"] = &gedcom.Family{
		XRef: "@F1@",
		CustomFacts: []*gedcom.Tag{
			{Level: 1, Tag: "_MILT"}, // Invalid parent
		},
	}

	issues := tv.Validate(doc)
	if len(issues) != 3 {
		t.Errorf("expected 3 issues, got %d: %v", len(issues), issues)
	}

	// Count issue types
	unknownCount := 0
	invalidParentCount := 0
	for _, issue := range issues {
		switch issue.Code {
		case CodeUnknownCustomTag:
			unknownCount++
		case CodeInvalidTagParent:
			invalidParentCount++
		}
	}

	if unknownCount != 2 {
		t.Errorf("expected 2 unknown tag issues, got %d", unknownCount)
	}
	if invalidParentCount != 1 {
		t.Errorf("expected 1 invalid parent issue, got %d", invalidParentCount)
	}
}

func TestTagValidator_Validate_EmptyDocument(t *testing.T) {
	registry := NewTagRegistry()
	tv := NewTagValidator(registry, true)

	doc := gedcom.New()

	issues := tv.Validate(doc)
	if len(issues) != 0 {
		t.Errorf("expected no issues for empty document, got %d", len(issues))
	}
}

func TestTagValidator_Validate_RecordWithNoCustomTags(t *testing.T) {
	registry := NewTagRegistry()
	tv := NewTagValidator(registry, true)

	doc := gedcom.New()
	doc.IndividualsByXRef["@I1@"] = &gedcom.Individual{XRef: "@I1@", CustomFacts: nil}

	issues := tv.Validate(doc)
	if len(issues) != 0 {
		t.Errorf("expected no issues for record with no custom tags, got %d", len(issues))
	}
}

func TestTagValidator_Validate_XRefPattern(t *testing.T) {
	registry := NewTagRegistry()
	err := registry.Register("_ASSO", TagDefinition{
		Tag:          "_ASSO",
		ValuePattern: XRefPattern,
		Description:  "Association to another individual",
	})
	if err != nil {
		t.Fatalf("failed to register tag: %v", err)
	}

	tv := NewTagValidator(registry, true)

	tests := []struct {
		name       string
		value      string
		wantIssues int
	}{
		{"valid XRef", "@I123@", 0},
		{"invalid XRef - no @", "I123", 1},
		{"invalid XRef - missing closing @", "@I123", 1},
		{"valid XRef with underscore", "@I_1@", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := gedcom.New()
			doc.IndividualsByXRef["@I1@"] = &gedcom.Individual{
				XRef: "@I1@",
				CustomFacts: []*gedcom.Tag{
					{Level: 1, Tag: "_ASSO", Value: tt.value},
				},
			}

			issues := tv.Validate(doc)
			if len(issues) != tt.wantIssues {
				t.Errorf("expected %d issues, got %d: %v", tt.wantIssues, len(issues), issues)
			}
		})
	}
}

func TestTagValidator_Validate_NilRegistry(t *testing.T) {
	tv := NewTagValidator(nil, true) // nil registry, but validateUnknown = true

	doc := gedcom.New()
	doc.IndividualsByXRef["@I1@"] = &gedcom.Individual{
		XRef: "@I1@",
		CustomFacts: []*gedcom.Tag{
			{Level: 1, Tag: "_CUSTOM", Value: "value"},
		},
	}

	issues := tv.Validate(doc)
	// With nil registry, all custom tags are unknown
	if len(issues) != 1 {
		t.Errorf("expected 1 unknown tag issue, got %d", len(issues))
	}
	if len(issues) > 0 && issues[0].Code != CodeUnknownCustomTag {
		t.Errorf("expected code %s, got %s", CodeUnknownCustomTag, issues[0].Code)
	}
}

func TestTagValidator_Validate_CustomValuePattern(t *testing.T) {
	registry := NewTagRegistry()
	// Custom pattern for year values
	yearPattern := regexp.MustCompile(`^\d{4}$`)
	err := registry.Register("_YEAR", TagDefinition{
		Tag:          "_YEAR",
		ValuePattern: yearPattern,
		Description:  "Year-only value",
	})
	if err != nil {
		t.Fatalf("failed to register tag: %v", err)
	}

	tv := NewTagValidator(registry, true)

	tests := []struct {
		name       string
		value      string
		wantIssues int
	}{
		{"valid year", "1985", 0},
		{"invalid - too short", "85", 1},
		{"invalid - has letters", "198X", 1},
		{"invalid - too long", "19850", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := gedcom.New()
			doc.IndividualsByXRef["@I1@"] = &gedcom.Individual{
				XRef: "@I1@",
				CustomFacts: []*gedcom.Tag{
					{Level: 1, Tag: "_YEAR", Value: tt.value},
				},
			}

			issues := tv.Validate(doc)
			if len(issues) != tt.wantIssues {
				t.Errorf("expected %d issues, got %d: %v", tt.wantIssues, len(issues), issues)
			}
		})
	}
}

func TestTagValidator_Validate_AllEntityKinds(t *testing.T) {
	registry := NewTagRegistry()
	tv := NewTagValidator(registry, true)

	doc := gedcom.New()
	doc.IndividualsByXRef["@I1@"] = &gedcom.Individual{XRef: "@I1@", CustomFacts: []*gedcom.Tag{{Level: 1, Tag: "_A"}}}
	doc.FamiliesByXRef["@F1@"] = &gedcom.Family{XRef: "@F1@", CustomFacts: []*gedcom.Tag{{Level: 1, Tag: "_B"}}}
	doc.SourcesByXRef["@S1@"] = &gedcom.Source{XRef: "@S1@", CustomFacts: []*gedcom.Tag{{Level: 1, Tag: "_C"}}}
	doc.RepositoriesByXRef["@R1@"] = &gedcom.Repository{XRef: "@R1@", CustomFacts: []*gedcom.Tag{{Level: 1, Tag: "_D"}}}
	doc.NotesByXRef["@N1@"] = &gedcom.Note{XRef: "@N1@", CustomFacts: []*gedcom.Tag{{Level: 1, Tag: "_E"}}}
	doc.MultimediaByXRef["@M1@"] = &gedcom.MediaObject{XRef: "@M1@", CustomFacts: []*gedcom.Tag{{Level: 1, Tag: "_F"}}}
	doc.SubmittersByXRef["@U1@"] = &gedcom.Submitter{XRef: "@U1@", CustomFacts: []*gedcom.Tag{{Level: 1, Tag: "_G"}}}

	issues := tv.Validate(doc)
	if len(issues) != 7 {
		t.Errorf("expected 7 issues (one per entity kind), got %d: %v", len(issues), issues)
	}

	xrefsSeen := make(map[string]bool)
	for _, issue := range issues {
		xrefsSeen[issue.RecordXRef] = true
	}
	for _, xref := range []string{"@I1@", "@F1@", "@S1@", "@R1@", "@N1@", "@M1@", "@U1@"} {
		if !xrefsSeen[xref] {
			t.Errorf("expected an issue referencing %s", xref)
		}
	}
}

func TestTagValidator_Validate_TagsWithoutUnderscorePrefixIgnored(t *testing.T) {
	registry := NewTagRegistry()
	tv := NewTagValidator(registry, true)

	doc := gedcom.New()
	doc.IndividualsByXRef["@I1@"] = &gedcom.Individual{
		XRef: "@I1@",
		CustomFacts: []*gedcom.Tag{
			{Level: 1, Tag: "FOO", Value: "bar"}, // not vendor-prefixed, not scanned
		},
	}

	issues := tv.Validate(doc)
	if len(issues) != 0 {
		t.Errorf("expected no issues for non-underscore-prefixed custom tag, got %d", len(issues))
	}
}
