package structdiff

import "github.com/yaklabco/structdiff/pkg/syntax"

// nextInTraversal returns the node that follows n's whole subtree in
// pre-order (n's own children are skipped), popping out through finished
// parents along the way — so stepping off the last child of a list lands
// on that list's own next sibling, not inside the list again. Returns nil
// once traversal runs off the end of the root.
//
// This folds the spec's separate zero-cost Exit-Left/Exit-Right edges into
// a single step: since exiting a list never costs anything, there is no
// path-cost difference between modeling it as its own graph edge and
// applying it silently while advancing the cursor.
func nextInTraversal(n *syntax.Node) *syntax.Node {
	for n.Parent != nil {
		siblings := n.Parent.Children
		idx := indexOf(siblings, n)
		if idx+1 < len(siblings) {
			return siblings[idx+1]
		}
		n = n.Parent
	}
	return nil
}

func indexOf(siblings []*syntax.Node, n *syntax.Node) int {
	for i, s := range siblings {
		if s == n {
			return i
		}
	}
	return -1
}

// firstChildOrNext returns n's first child if it has one, otherwise the
// next node after n in traversal order. Used both to step into a list and
// to initialize a cursor at the start of a tree.
func firstChildOrNext(n *syntax.Node) *syntax.Node {
	if len(n.Children) > 0 {
		return n.Children[0]
	}
	return nextInTraversal(n)
}

// countRemaining counts the atoms from n (inclusive) to the end of
// traversal, including those nested inside n and every later subtree.
// Used to compute the admissible heuristic.
func countRemaining(n *syntax.Node) int {
	count := 0
	for n != nil {
		count += subtreeAtomCount(n)
		n = nextInTraversal(n)
	}
	return count
}
