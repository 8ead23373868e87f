package decoder

import (
	"github.com/kestrelgen/gedkit/gedcom"
	"github.com/kestrelgen/gedkit/gedtree"
)

// flattenRecord preorder-flattens a record's tree into a slice of Tags,
// absorbing CONT/CONC children into their parent's value per §4.5: CONT
// inserts a newline before the child's value, CONC appends it directly. A
// node that exceeds maxDepth is dropped from the walk and reported.
func flattenRecord(root *gedtree.Node, maxDepth int, collector *diagnosticCollector) []*gedcom.Tag {
	return flattenNode(root, 0, maxDepth, collector)
}

func flattenNode(node *gedtree.Node, depth, maxDepth int, collector *diagnosticCollector) []*gedcom.Tag {
	if maxDepth > 0 && depth > maxDepth {
		collector.add(NewDiagnostic(
			node.Line.LineNumber,
			SeverityWarning,
			CodeInvalidValue,
			"maximum nesting depth exceeded, subtree dropped",
			node.Line.Tag,
		))
		return nil
	}

	value, children := mergeContinuations(node.Line.Value, node.Children)
	tag := &gedcom.Tag{
		Level:      node.Line.Level,
		Tag:        node.Line.Tag,
		Value:      value,
		XRef:       node.Line.XRef,
		LineNumber: node.Line.LineNumber,
	}

	tags := make([]*gedcom.Tag, 0, len(children)+1)
	tags = append(tags, tag)
	for _, child := range children {
		tags = append(tags, flattenNode(child, depth+1, maxDepth, collector)...)
	}
	return tags
}

// mergeContinuations splits children into CONT/CONC lines, folded into
// value, and the remaining non-continuation children.
func mergeContinuations(value string, children []*gedtree.Node) (string, []*gedtree.Node) {
	if len(children) == 0 {
		return value, nil
	}

	rest := make([]*gedtree.Node, 0, len(children))
	for _, child := range children {
		switch child.Line.Tag {
		case "CONT":
			value += "\n" + child.Line.Value
		case "CONC":
			value += child.Line.Value
		default:
			rest = append(rest, child)
		}
	}
	return value, rest
}
