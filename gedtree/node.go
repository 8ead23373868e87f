// Package gedtree assembles a sequence of tokenized GEDCOM lines into a
// tree of nodes, one per line, nested according to level. It does not
// interpret tags; that is the decoder package's job.
package gedtree

import "github.com/kestrelgen/gedkit/lex"

// Node is one line of a GEDCOM file, with its children nested beneath it
// according to level.
type Node struct {
	Line     lex.Line
	Children []*Node
}
