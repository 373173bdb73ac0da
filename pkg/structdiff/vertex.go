package structdiff

import "github.com/yaklabco/structdiff/pkg/syntax"

// vertex is a position in the implicit diff graph: the next unconsumed
// node on each side, or nil if that side is exhausted. This is the
// "pair of tree cursors" the spec describes, represented the way the
// teacher's algorithm represents it — as a pointer to the next node in
// pre-order, with list exits folded into nextInTraversal rather than kept
// as explicit stack frames. Vertex is comparable, so it can key a Go map
// directly for the visited-set and predecessor table.
type vertex struct {
	lhs *syntax.Node
	rhs *syntax.Node
}

func (v vertex) isGoal() bool { return v.lhs == nil && v.rhs == nil }

// edgeKind is the label on one edge of the diff graph, recorded so the
// engine knows how to mark the nodes it consumed once the shortest path is
// found.
type edgeKind uint8

const (
	edgeUnchangedAtom edgeKind = iota
	edgeUnchangedListEnter
	edgeUnchangedListStepPast
	edgeReplaceAtom
	edgeRemove
	edgeAdd
)

// transition is one outgoing edge from a vertex: its kind, its cost, and
// the vertex it leads to.
type transition struct {
	kind edgeKind
	cost uint64
	next vertex
}

// options controls which optional edges neighbours will offer.
type options struct {
	enableReplaceAtom bool
}

// neighbours enumerates every edge leaving v. Mirrors the shape of the
// original's neighbour generator: unchanged-pair edges are considered
// first (cheapest), then the optional replace edge, then removing from
// the lhs, then adding from the rhs.
func neighbours(v vertex, opts options) []transition {
	var out []transition

	if v.lhs != nil && v.rhs != nil {
		if v.lhs.IsAtom() && v.rhs.IsAtom() {
			if v.lhs.EqualAtom(v.rhs) {
				out = append(out, transition{
					kind: edgeUnchangedAtom,
					cost: atomCost(v.lhs, costUnchangedAtom),
					next: vertex{lhs: nextInTraversal(v.lhs), rhs: nextInTraversal(v.rhs)},
				})
			} else if opts.enableReplaceAtom && v.lhs.AtomKind == v.rhs.AtomKind {
				out = append(out, transition{
					kind: edgeReplaceAtom,
					cost: atomCost(v.lhs, costReplaceAtom),
					next: vertex{lhs: nextInTraversal(v.lhs), rhs: nextInTraversal(v.rhs)},
				})
			}
		}

		if v.lhs.IsList() && v.rhs.IsList() && v.lhs.EqualDelimiters(v.rhs) {
			if v.lhs.Hash() == v.rhs.Hash() && v.lhs.DeepEqual(v.rhs) {
				out = append(out, transition{
					kind: edgeUnchangedListStepPast,
					cost: stepPastCost(v.lhs),
					next: vertex{lhs: nextInTraversal(v.lhs), rhs: nextInTraversal(v.rhs)},
				})
			}
			out = append(out, transition{
				kind: edgeUnchangedListEnter,
				cost: costUnchangedListEnter,
				next: vertex{lhs: firstChildOrNext(v.lhs), rhs: firstChildOrNext(v.rhs)},
			})
		}
	}

	if v.lhs != nil {
		out = append(out, transition{
			kind: edgeRemove,
			cost: atomCost(v.lhs, costRemoveOrAdd),
			next: vertex{lhs: firstChildOrNext(v.lhs), rhs: v.rhs},
		})
	}

	if v.rhs != nil {
		out = append(out, transition{
			kind: edgeAdd,
			cost: atomCost(v.rhs, costRemoveOrAdd),
			next: vertex{lhs: v.lhs, rhs: firstChildOrNext(v.rhs)},
		})
	}

	return out
}
