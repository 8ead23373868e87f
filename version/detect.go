// Package version provides GEDCOM version detection and validation.
//
// This package helps identify which GEDCOM specification version (5.5 or
// 5.5.1) a file conforms to. It can detect the version from the header or
// use tag-based heuristics to make an educated guess.
//
// Example usage:
//
//	lines, _ := tokenizeAll(reader) // []lex.Line
//	version, err := version.DetectVersion(lines)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Detected GEDCOM version: %s\n", version)
package version

import (
	"strings"

	"github.com/kestrelgen/gedkit/gedcom"
	"github.com/kestrelgen/gedkit/lex"
)

// DetectVersion detects the GEDCOM version from tokenized lines.
// It first tries to find the version in the header (HEAD -> GEDC -> VERS).
// If not found, it falls back to tag-based heuristics.
// Returns Version55 as the default if detection fails.
func DetectVersion(lines []lex.Line) (gedcom.Version, error) {
	if v := detectFromHeader(lines); v != "" {
		return v, nil
	}
	return detectFromTags(lines), nil
}

// detectFromHeader looks for the version in the GEDCOM header.
// Header structure:
//
//	0 HEAD
//	1 GEDC
//	2 VERS 5.5 (or 5.5.1)
func detectFromHeader(lines []lex.Line) gedcom.Version {
	inHead := false
	inGedc := false

	for _, line := range lines {
		if v := processHeaderLine(line, &inHead, &inGedc); v != "" {
			return v
		}
	}

	return ""
}

func processHeaderLine(line lex.Line, inHead, inGedc *bool) gedcom.Version {
	if line.Level == 0 {
		return handleLevel0(line, inHead)
	}

	if *inHead && line.Level == 1 {
		return handleLevel1(line, inGedc)
	}

	if *inHead && *inGedc && line.Level == 2 && line.Tag == "VERS" {
		return parseVersionString(line.Value)
	}

	return ""
}

func handleLevel0(line lex.Line, inHead *bool) gedcom.Version {
	*inHead = line.Tag == "HEAD"
	return ""
}

func handleLevel1(line lex.Line, inGedc *bool) gedcom.Version {
	*inGedc = line.Tag == "GEDC"
	return ""
}

func parseVersionString(value string) gedcom.Version {
	switch strings.TrimSpace(value) {
	case "5.5":
		return gedcom.Version55
	case "5.5.1":
		return gedcom.Version551
	default:
		return ""
	}
}

// detectFromTags uses tag-based heuristics to guess the GEDCOM version when
// the header omits GEDC.VERS. A 5.5.1-only tag anywhere in the file is
// enough to call it 5.5.1; otherwise 5.5 is assumed, the more permissive
// baseline this repository supports.
func detectFromTags(lines []lex.Line) gedcom.Version {
	for _, line := range lines {
		switch line.Tag {
		case "MAP", "LATI", "LONG", "EMAIL", "WWW", "FACT":
			return gedcom.Version551
		}
	}
	return gedcom.Version55
}

// IsValidVersion checks if v is a valid GEDCOM version this repository
// supports.
func IsValidVersion(v gedcom.Version) bool {
	return v.IsValid()
}
