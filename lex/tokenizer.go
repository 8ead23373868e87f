package lex

import (
	"strconv"
	"strings"
)

// MaxLevel is the highest hierarchical level GEDCOM permits.
const MaxLevel = 99

// Tokenizer converts logical GEDCOM lines into Line tokens, one at a
// time, tracking a running line number for diagnostics.
type Tokenizer struct {
	lineNumber int
}

// NewTokenizer returns a Tokenizer ready to tokenize the first line.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize parses one logical line per the grammar in §4.3:
//
//	line  := level WS [ xref WS ] tag [ WS value ]
//	level := 1*2 DIGIT            ; 0-99
//	xref  := '@' 1*CHAR '@'       ; no '@' or space inside
//	tag   := 1*TAGCHAR
//	value := any chars up to end of line
//
// Leading whitespace before the level is tolerated and reported as a
// warning rather than an error. A missing level, a level outside 0-99, or
// a missing tag is fatal and returned as *TokenError.
func (t *Tokenizer) Tokenize(input string) (*Line, []string, error) {
	t.lineNumber++
	var warnings []string

	line := input
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed != line {
		warnings = append(warnings, "leading whitespace before level")
		line = trimmed
	}

	if strings.TrimSpace(line) == "" {
		return nil, warnings, newTokenError(t.lineNumber, "missing level", input)
	}

	levelEnd := 0
	for levelEnd < len(line) && line[levelEnd] >= '0' && line[levelEnd] <= '9' {
		levelEnd++
	}
	if levelEnd == 0 {
		return nil, warnings, newTokenError(t.lineNumber, "missing level", input)
	}
	level, err := strconv.Atoi(line[:levelEnd])
	if err != nil {
		return nil, warnings, wrapTokenError(t.lineNumber, "invalid level number", input, err)
	}
	if level < 0 || level > MaxLevel {
		return nil, warnings, newTokenError(t.lineNumber, "level out of range 0-99", input)
	}

	rest := strings.TrimLeft(line[levelEnd:], " \t")
	if rest == "" {
		return nil, warnings, newTokenError(t.lineNumber, "missing tag", input)
	}

	var xref string
	if rest[0] == '@' {
		end := strings.IndexByte(rest[1:], '@')
		if end >= 0 {
			xref = rest[:end+2]
			rest = strings.TrimLeft(rest[end+2:], " \t")
		}
	}

	if rest == "" {
		return nil, warnings, newTokenError(t.lineNumber, "missing tag", input)
	}

	tagEnd := strings.IndexAny(rest, " \t")
	var tag, value string
	if tagEnd < 0 {
		tag = rest
	} else {
		tag = rest[:tagEnd]
		value = strings.TrimLeft(rest[tagEnd:], " \t")
	}
	if tag == "" {
		return nil, warnings, newTokenError(t.lineNumber, "missing tag", input)
	}

	return &Line{
		Level:      level,
		XRef:       xref,
		Tag:        tag,
		Value:      value,
		LineNumber: t.lineNumber,
	}, warnings, nil
}

// Reset rewinds the tokenizer's line counter for reuse.
func (t *Tokenizer) Reset() {
	t.lineNumber = 0
}
