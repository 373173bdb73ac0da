package syntax

import "hash/fnv"

// Hash returns a structural hash of this node and its full subtree: two
// nodes with equal Hash are presumed structurally equal (same kind, same
// literal text throughout, same shape). The diff engine's subtree-equality
// fast edge treats equal hashes as "probably equal" and then confirms with
// DeepEqual before trusting them, per the spec's hash-compare-then-verify
// policy.
//
// The hash is computed post-order, once per node, and cached: a List's hash
// folds in the hash of every child, so computing the root's hash walks the
// whole tree once regardless of how many times Hash is later called.
func (n *Node) Hash() uint64 {
	if n.hashValid {
		return n.hash
	}

	h := fnv.New64a()
	switch n.Kind {
	case KindAtom:
		_, _ = h.Write([]byte{byte(n.Kind), byte(n.AtomKind)})
		_, _ = h.Write([]byte(n.Content))
	case KindList:
		_, _ = h.Write([]byte{byte(n.Kind)})
		_, _ = h.Write([]byte(n.OpenText))
		_, _ = h.Write([]byte(n.CloseText))
		for _, c := range n.Children {
			childHash := c.Hash()
			var buf [8]byte
			for i := range buf {
				buf[i] = byte(childHash >> (8 * i))
			}
			_, _ = h.Write(buf[:])
		}
	}

	n.hash = h.Sum64()
	n.hashValid = true
	return n.hash
}

// DeepEqual verifies, literal by literal, that two subtrees are identical
// in shape and content. It is the confirmation step after a Hash
// collision-prone comparison; call it only once Hash() values already
// matched, since it walks both subtrees in full.
func (n *Node) DeepEqual(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind {
		return false
	}
	switch n.Kind {
	case KindAtom:
		return n.EqualAtom(o)
	case KindList:
		if !n.EqualDelimiters(o) {
			return false
		}
		if len(n.Children) != len(o.Children) {
			return false
		}
		for i := range n.Children {
			if !n.Children[i].DeepEqual(o.Children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
