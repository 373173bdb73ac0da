// Package structdiff computes the change overlay between two parsed
// syntax trees. Diffing is posed as shortest-path search over an implicit
// graph of cursor-pair vertices, following the formulation and cost
// structure of the teacher repository's reference algorithm, adapted from
// whole-file line diffing to whole-tree structural diffing.
package structdiff

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/yaklabco/structdiff/pkg/syntax"
)

// Option configures a single Diff call.
type Option func(*options)

// WithReplaceAtom enables the optional Replace-Atom edge: two atoms of the
// same kind but different literal text can be marked as one replacing the
// other, instead of always being diffed as an independent removal plus
// addition.
func WithReplaceAtom(enabled bool) Option {
	return func(o *options) { o.enableReplaceAtom = enabled }
}

// Result is the per-side output of a Diff: each tree's change overlay, the
// total edit cost of the path found, and the number of graph vertices
// visited (useful for logging and tests, not a contract).
type Result struct {
	LHS         *syntax.Overlay
	RHS         *syntax.Overlay
	Cost        uint64
	NodesVisited int
}

// Diff computes the shortest edit path between lhs and rhs and returns the
// resulting mark overlays for both trees. It checks ctx for cancellation
// between heap pops; if ctx is done before the goal is reached, it returns
// a fallback result — everything on both trees marked Removed/Added — and
// the context's error, rather than blocking indefinitely on a pathological
// input.
func Diff(ctx context.Context, lhs, rhs *syntax.Tree, opts ...Option) (*Result, error) {
	var o options
	for _, apply := range opts {
		apply(&o)
	}

	start := vertex{lhs: firstChildOrNext(lhs.Root), rhs: firstChildOrNext(rhs.Root)}

	h := newVertexHeap()
	heap.Init(h)
	heap.Push(h, heapItem{v: start, distance: 0, estimate: remainingEstimate(start)})

	type predecessor struct {
		from vertex
		edge edgeKind
		dist uint64
	}
	predecessors := make(map[vertex]predecessor)
	visited := make(map[vertex]bool)

	visitedCount := 0
	var goalReached bool

	for h.Len() > 0 {
		if visitedCount%1024 == 0 {
			select {
			case <-ctx.Done():
				return fallbackResult(lhs, rhs), ctx.Err()
			default:
			}
		}

		item := heap.Pop(h).(heapItem)
		if item.v.isGoal() {
			goalReached = true
			break
		}
		if visited[item.v] {
			continue
		}
		visited[item.v] = true
		visitedCount++

		for _, t := range neighbours(item.v, o) {
			nd := item.distance + t.cost
			if prev, ok := predecessors[t.next]; !ok || nd < prev.dist {
				predecessors[t.next] = predecessor{from: item.v, edge: t.kind, dist: nd}
				heap.Push(h, heapItem{v: t.next, distance: nd, estimate: remainingEstimate(t.next)})
			}
		}
	}

	if !goalReached {
		return nil, fmt.Errorf("structdiff: exhausted search graph before reaching goal")
	}

	goal := vertex{}
	type step struct {
		at   vertex
		edge edgeKind
	}
	var path []step
	cur := goal
	var totalCost uint64
	if p, ok := predecessors[cur]; ok {
		totalCost = p.dist
	}
	for {
		p, ok := predecessors[cur]
		if !ok {
			break
		}
		path = append(path, step{at: p.from, edge: p.edge})
		cur = p.from
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	lhsOverlay := syntax.NewOverlay(lhs)
	rhsOverlay := syntax.NewOverlay(rhs)

	for _, s := range path {
		applyEdge(lhsOverlay, rhsOverlay, s.edge, s.at)
	}

	// The virtual roots are never a cursor position in the graph — the walk
	// starts at their first child — so they are never marked by an edge.
	// They trivially correspond to one another (each tree has exactly one),
	// so pair them directly; this keeps Overlay.AllSet true for a completed
	// diff.
	lhsOverlay.Pair(lhs.Root, syntax.MarkUnchanged, rhs.Root)
	rhsOverlay.Pair(rhs.Root, syntax.MarkUnchanged, lhs.Root)

	return &Result{LHS: lhsOverlay, RHS: rhsOverlay, Cost: totalCost, NodesVisited: visitedCount}, nil
}

// applyEdge marks the node(s) a single graph edge consumed, using the
// source vertex's node pointers (the vertex the edge departed from, which
// is where the live syntax.Node references live).
func applyEdge(lhsOverlay, rhsOverlay *syntax.Overlay, edge edgeKind, at vertex) {
	switch edge {
	case edgeUnchangedAtom:
		lhsOverlay.Pair(at.lhs, syntax.MarkUnchanged, at.rhs)
		rhsOverlay.Pair(at.rhs, syntax.MarkUnchanged, at.lhs)
	case edgeUnchangedListStepPast:
		syntax.PairDeep(lhsOverlay, rhsOverlay, at.lhs, at.rhs)
	case edgeUnchangedListEnter:
		lhsOverlay.Pair(at.lhs, syntax.MarkUnchanged, at.rhs)
		rhsOverlay.Pair(at.rhs, syntax.MarkUnchanged, at.lhs)
	case edgeReplaceAtom:
		lhsOverlay.Pair(at.lhs, syntax.MarkReplaced, at.rhs)
		rhsOverlay.Pair(at.rhs, syntax.MarkReplaced, at.lhs)
	case edgeRemove:
		lhsOverlay.Set(at.lhs, syntax.MarkRemoved)
	case edgeAdd:
		rhsOverlay.Set(at.rhs, syntax.MarkAdded)
	}
}

// remainingEstimate is an admissible heuristic for the cost remaining to
// the goal: it can never overestimate. Unchanged, replace and step-past
// edges consume the same number of atoms on both sides, so every atom by
// which one side's remainder outnumbers the other's must be removed or
// added on its own, at costRemoveOrAdd or more.
func remainingEstimate(v vertex) uint64 {
	lhsCount := countRemaining(v.lhs)
	rhsCount := countRemaining(v.rhs)
	n := lhsCount - rhsCount
	if rhsCount > lhsCount {
		n = rhsCount - lhsCount
	}
	return uint64(n) * costRemoveOrAdd
}

// fallbackResult marks every node of both trees as wholly removed/added —
// the degenerate "no overlap found" diff, returned when a deadline expires
// before the search completes.
func fallbackResult(lhs, rhs *syntax.Tree) *Result {
	lhsOverlay := syntax.NewOverlay(lhs)
	rhsOverlay := syntax.NewOverlay(rhs)
	for i := 1; i < lhs.Len(); i++ {
		lhsOverlay.Set(lhs.NodeAt(i), syntax.MarkRemoved)
	}
	for i := 1; i < rhs.Len(); i++ {
		rhsOverlay.Set(rhs.NodeAt(i), syntax.MarkAdded)
	}
	lhsOverlay.Pair(lhs.Root, syntax.MarkUnchanged, rhs.Root)
	rhsOverlay.Pair(rhs.Root, syntax.MarkUnchanged, lhs.Root)
	return &Result{LHS: lhsOverlay, RHS: rhsOverlay}
}
