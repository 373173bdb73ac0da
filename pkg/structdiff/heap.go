package structdiff

import "container/heap"

// heapItem is one entry in the Dijkstra priority queue: a vertex plus the
// shortest distance found to it so far and an admissible estimate of the
// remaining distance to the goal (A*-style ordering, kept from the
// original algorithm purely to make convergence faster — it never affects
// the cost of the path found, since the estimate never exceeds the true
// remaining cost and is never subtracted from the recorded distance).
type heapItem struct {
	v        vertex
	distance uint64
	estimate uint64
	// seq is this item's push order, used only to break priority ties so
	// that equal-cost paths resolve deterministically (spec: "the engine
	// prefers the one discovered first") instead of depending on
	// container/heap's internal tree shape.
	seq uint64
}

func (h heapItem) priority() uint64 { return h.distance + h.estimate }

// vertexHeap is a min-heap of heapItem ordered by priority, with push order
// as the tiebreaker.
type vertexHeap struct {
	items   []heapItem
	nextSeq uint64
}

func newVertexHeap() *vertexHeap {
	return &vertexHeap{}
}

func (h *vertexHeap) Len() int { return len(h.items) }

func (h *vertexHeap) Less(i, j int) bool {
	pi, pj := h.items[i].priority(), h.items[j].priority()
	if pi != pj {
		return pi < pj
	}
	return h.items[i].seq < h.items[j].seq
}

func (h *vertexHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *vertexHeap) Push(x any) {
	item := x.(heapItem)
	item.seq = h.nextSeq
	h.nextSeq++
	h.items = append(h.items, item)
}

func (h *vertexHeap) Pop() any {
	n := len(h.items)
	item := h.items[n-1]
	h.items = h.items[:n-1]
	return item
}

var _ heap.Interface = (*vertexHeap)(nil)
