package syntax

// MarkKind is the change kind the diff engine attaches to a node.
type MarkKind uint8

const (
	// MarkUnset is the zero value: the engine has not yet visited this node.
	// No node should carry MarkUnset once a diff has completed.
	MarkUnset MarkKind = iota
	// MarkUnchanged pairs this node with exactly one node on the other side.
	MarkUnchanged
	// MarkAdded means the node exists only on the rhs tree.
	MarkAdded
	// MarkRemoved means the node exists only on the lhs tree.
	MarkRemoved
	// MarkReplaced is an Atom whose literal changed but whose positional
	// slot corresponds to an Atom on the other side (the optional
	// Replace-Atom edge).
	MarkReplaced
)

func (k MarkKind) String() string {
	switch k {
	case MarkUnchanged:
		return "unchanged"
	case MarkAdded:
		return "added"
	case MarkRemoved:
		return "removed"
	case MarkReplaced:
		return "replaced"
	default:
		return "unset"
	}
}

// Overlay is the diff engine's output for one side of a diff: a change-kind
// and an optional cross-tree partner for every node, indexed by Seq. Trees
// stay immutable after parsing; Overlay is the "parallel attribute" the
// spec describes instead of in-place mutation.
type Overlay struct {
	tree    *Tree
	kinds   []MarkKind
	partner []*Node
}

// NewOverlay allocates an empty overlay sized for the given tree.
func NewOverlay(t *Tree) *Overlay {
	return &Overlay{
		tree:    t,
		kinds:   make([]MarkKind, t.Len()),
		partner: make([]*Node, t.Len()),
	}
}

// Tree returns the tree this overlay annotates.
func (o *Overlay) Tree() *Tree { return o.tree }

// Kind returns the change kind recorded for n.
func (o *Overlay) Kind(n *Node) MarkKind { return o.kinds[n.Seq] }

// Partner returns the paired node on the other side, or nil if n has none.
func (o *Overlay) Partner(n *Node) *Node { return o.partner[n.Seq] }

// Set records a change kind for n with no partner (Added/Removed).
func (o *Overlay) Set(n *Node, kind MarkKind) {
	o.kinds[n.Seq] = kind
}

// Pair records n as MarkUnchanged (or MarkReplaced) and links it to
// partner; the partner's own overlay must be updated separately (pairing
// is symmetric but each side owns its own overlay).
func (o *Overlay) Pair(n *Node, kind MarkKind, partner *Node) {
	o.kinds[n.Seq] = kind
	o.partner[n.Seq] = partner
}

// PairDeep marks n and partner as MarkUnchanged, and recursively pairs
// every descendant of n with the correspondingly-positioned descendant of
// partner. It must only be called when n.DeepEqual(partner) holds, which
// the subtree-equality fast edge in the diff engine guarantees by
// construction (hash match, then verified) before invoking it.
func PairDeep(lhsOverlay, rhsOverlay *Overlay, lhs, rhs *Node) {
	lhsOverlay.Pair(lhs, MarkUnchanged, rhs)
	rhsOverlay.Pair(rhs, MarkUnchanged, lhs)
	if lhs.Kind == KindList {
		for i := range lhs.Children {
			PairDeep(lhsOverlay, rhsOverlay, lhs.Children[i], rhs.Children[i])
		}
	}
}

// AllSet reports whether every node in the overlay's tree has a mark other
// than MarkUnset — used by tests to check the engine covered the whole
// tree.
func (o *Overlay) AllSet() bool {
	for _, k := range o.kinds {
		if k == MarkUnset {
			return false
		}
	}
	return true
}
