package align

import "github.com/yaklabco/structdiff/pkg/syntax"

// nodesByLine maps a 1-based source line number to the nodes that begin on
// it — an atom's own line, or a list's open/close delimiter line (the list
// node itself is recorded at both, since either delimiter starting on a
// line makes that node "present" on it for pairing purposes).
func nodesByLine(root *syntax.Node) map[int][]*syntax.Node {
	out := make(map[int][]*syntax.Node)
	var walk func(n *syntax.Node)
	walk = func(n *syntax.Node) {
		switch n.Kind {
		case syntax.KindAtom:
			line := n.Span.Start.Line
			out[line] = append(out[line], n)
		case syntax.KindList:
			if n.OpenText != "" {
				line := n.OpenSpan.Start.Line
				out[line] = append(out[line], n)
			}
			for _, c := range n.Children {
				walk(c)
			}
			if n.CloseText != "" {
				line := n.CloseSpan.Start.Line
				out[line] = append(out[line], n)
			}
		}
	}
	walk(root)
	return out
}

func allKind(nodes []*syntax.Node, overlay *syntax.Overlay, kind syntax.MarkKind) bool {
	for _, n := range nodes {
		if overlay.Kind(n) != kind {
			return false
		}
	}
	return true
}

// sharePairing reports whether any node in lhsNodes is paired with a node
// present in rhsNodes.
func sharePairing(lhsNodes []*syntax.Node, lhsOverlay *syntax.Overlay, rhsNodes []*syntax.Node) bool {
	rhsSet := make(map[*syntax.Node]bool, len(rhsNodes))
	for _, n := range rhsNodes {
		rhsSet[n] = true
	}
	for _, n := range lhsNodes {
		if partner := lhsOverlay.Partner(n); partner != nil && rhsSet[partner] {
			return true
		}
	}
	return false
}
