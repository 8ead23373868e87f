package gedtree

import (
	"fmt"

	"github.com/kestrelgen/gedkit/lex"
)

// BuildError is a non-fatal issue recorded while assembling the tree: a
// level jump (skipping one or more intermediate levels), trailing content
// after the file's trailer, or a missing HEAD/TRLR bookend.
type BuildError struct {
	LineNumber int
	Message    string
}

// TrailingContentMessage is the BuildError.Message recorded for lines
// appearing after the first 0 TRLR record. Callers classifying
// BuildErrors by severity match against this constant rather than the
// "last record is not 0 TRLR" structural-failure message.
const TrailingContentMessage = "trailing content after 0 TRLR ignored"

func (e *BuildError) Error() string {
	return fmt.Sprintf("line %d: %s", e.LineNumber, e.Message)
}

// stackFrame pairs a node with the level it was pushed at.
type stackFrame struct {
	node  *Node
	level int
}

// Build assembles lines into a tree of top-level nodes, per §4.4: a stack
// of open nodes indexed by level. A line at level L becomes a child of
// the current top when L is exactly one more than the top's level; a
// line at L <= top's level pops back to the right ancestor; a line that
// skips more than one level is clamped to top's level + 1 and recorded as
// a BuildError.
//
// The first line must be level-0 HEAD and the last record processed must
// be level-0 TRLR; violations are recorded as BuildErrors but do not stop
// assembly. Content appearing after the first 0 TRLR is never itself
// structurally fatal: it is dropped from the tree and reported as a
// single non-fatal BuildError rather than as a missing-TRLR violation.
func Build(lines []lex.Line) ([]*Node, []*BuildError) {
	var errs []*BuildError

	if trlrIdx := firstTrailerIndex(lines); trlrIdx >= 0 && trlrIdx < len(lines)-1 {
		errs = append(errs, &BuildError{
			LineNumber: lines[trlrIdx+1].LineNumber,
			Message:    TrailingContentMessage,
		})
		lines = lines[:trlrIdx+1]
	}

	var roots []*Node
	var stack []stackFrame

	for i, line := range lines {
		level := line.Level
		node := &Node{Line: line}

		if i == 0 && (level != 0 || line.Tag != "HEAD") {
			errs = append(errs, &BuildError{LineNumber: line.LineNumber, Message: "first record is not 0 HEAD"})
		}

		if len(stack) == 0 {
			roots = append(roots, node)
			stack = append(stack, stackFrame{node: node, level: 0})
			continue
		}

		top := stack[len(stack)-1]

		switch {
		case level == top.level+1:
			top.node.Children = append(top.node.Children, node)
			stack = append(stack, stackFrame{node: node, level: level})
		case level <= top.level:
			stack = popTo(stack, level-1)
			appendChild(&roots, stack, node)
			stack = append(stack, stackFrame{node: node, level: level})
		default:
			errs = append(errs, &BuildError{
				LineNumber: line.LineNumber,
				Message:    fmt.Sprintf("level skipped: expected at most %d, got %d", top.level+1, level),
			})
			clamped := top.level + 1
			top.node.Children = append(top.node.Children, node)
			stack = append(stack, stackFrame{node: node, level: clamped})
		}
	}

	if len(lines) == 0 {
		errs = append(errs, &BuildError{Message: "empty input: missing 0 HEAD and 0 TRLR"})
	} else {
		last := lines[len(lines)-1]
		if last.Level != 0 || last.Tag != "TRLR" {
			errs = append(errs, &BuildError{LineNumber: last.LineNumber, Message: "last record is not 0 TRLR"})
		}
	}

	return roots, errs
}

// firstTrailerIndex returns the index of the first level-0 TRLR line, or
// -1 if none is present.
func firstTrailerIndex(lines []lex.Line) int {
	for i, line := range lines {
		if line.Level == 0 && line.Tag == "TRLR" {
			return i
		}
	}
	return -1
}

// popTo pops stack frames until the top's level equals target, or the
// stack is empty when target < 0.
func popTo(stack []stackFrame, target int) []stackFrame {
	for len(stack) > 0 && stack[len(stack)-1].level != target {
		stack = stack[:len(stack)-1]
	}
	return stack
}

// appendChild attaches node to the current stack top's children, or to
// roots when the stack is empty (node is itself a new level-0 record).
func appendChild(roots *[]*Node, stack []stackFrame, node *Node) {
	if len(stack) == 0 {
		*roots = append(*roots, node)
		return
	}
	top := stack[len(stack)-1]
	top.node.Children = append(top.node.Children, node)
}
