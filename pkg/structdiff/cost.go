package structdiff

import "github.com/yaklabco/structdiff/pkg/syntax"

// Edge costs. Only the relative ordering is load-bearing (spec contract):
// exactly-matching edges always beat non-matching ones, and matching a
// whole subtree in one hop strictly beats matching every child
// individually.
const (
	costUnchangedAtom      = 1
	costUnchangedListEnter = 0
	costRemoveOrAdd        = 1
	costReplaceAtom        = 1 // < costRemoveOrAdd*2, so replace beats remove+add

	// commentCostMultiplier scales every cost associated with a comment
	// atom. Resolves the open question of how strongly comments should be
	// weighted: matching, adding, removing or replacing a comment atom costs
	// twice what the same edge costs for a code atom.
	commentCostMultiplier = 2
)

// atomCost returns the weighted cost of touching (matching, removing,
// adding, or replacing) a single atom, applying the comment multiplier.
func atomCost(n *syntax.Node, base uint64) uint64 {
	if n.IsComment() {
		return base * commentCostMultiplier
	}
	return base
}

// subtreeAtomCount counts the atom leaves in n's subtree (n included if it
// is itself an atom). Lists contribute zero on their own, since entering a
// list costs nothing — only the atoms within it cost anything to match
// individually, which is what the step-past shortcut must beat.
func subtreeAtomCount(n *syntax.Node) int {
	if n.IsAtom() {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += subtreeAtomCount(c)
	}
	return total
}

// stepPastCost is the cost of the fast Unchanged-List step-past edge: the
// whole subtree is presumed equal (hash match, verified by DeepEqual) and
// skipped in one hop. It must cost strictly less than matching every atom
// in the subtree individually at costUnchangedAtom each.
func stepPastCost(n *syntax.Node) uint64 {
	count := subtreeAtomCount(n)
	if count == 0 {
		return 0
	}
	return uint64(count-1) * costUnchangedAtom
}
