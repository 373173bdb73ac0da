package syntax

import "bytes"

// AnomalyKind classifies a non-fatal parse anomaly.
type AnomalyKind uint8

const (
	// AnomalyStrayClose is a close-delimiter token with no matching open frame.
	AnomalyStrayClose AnomalyKind = iota
	// AnomalyUnclosedAtEOF is an open frame still open when input ended.
	AnomalyUnclosedAtEOF
)

func (k AnomalyKind) String() string {
	switch k {
	case AnomalyStrayClose:
		return "stray close delimiter"
	case AnomalyUnclosedAtEOF:
		return "unclosed at end of file"
	default:
		return "unknown anomaly"
	}
}

// Anomaly records a non-fatal parse condition (spec: "Parse anomalies must
// not be silently discarded"). It is attached to the Tree, not raised as an
// error, so the diff can proceed.
type Anomaly struct {
	Kind AnomalyKind
	At   Position
	Text string // the offending delimiter text, if any
}

// Tree is a parsed syntactic tree: a virtual root List (empty delimiters)
// whose children are the file's top-level nodes, plus the source bytes it
// was parsed from and any anomalies recorded along the way.
type Tree struct {
	Root     *Node
	Source   []byte
	Anomalies []Anomaly

	// byOrder is every node in pre-order, indexed by Seq. Built once after
	// parsing by finalize; Len, NodeAt and Balanced read it. The diff
	// engine steps its cursors through parent/child pointers, not this.
	byOrder []*Node
}

// NewTree wraps a parsed root node and its source bytes into a Tree and
// finalizes bookkeeping (Seq, Depth, pre-order index).
func NewTree(root *Node, source []byte, anomalies []Anomaly) *Tree {
	t := &Tree{Root: root, Source: source, Anomalies: anomalies}
	t.finalize()
	return t
}

// finalize assigns Seq/Depth/Parent across the whole tree in pre-order.
func (t *Tree) finalize() {
	t.byOrder = t.byOrder[:0]
	var walk func(n *Node, depth int, parent *Node)
	walk = func(n *Node, depth int, parent *Node) {
		n.Depth = depth
		n.Parent = parent
		n.Seq = len(t.byOrder)
		t.byOrder = append(t.byOrder, n)
		for _, c := range n.Children {
			walk(c, depth+1, n)
		}
	}
	walk(t.Root, 0, nil)
}

// Len returns the total number of nodes in the tree (including the root).
func (t *Tree) Len() int { return len(t.byOrder) }

// NodeAt returns the node with the given pre-order Seq.
func (t *Tree) NodeAt(seq int) *Node {
	if seq < 0 || seq >= len(t.byOrder) {
		return nil
	}
	return t.byOrder[seq]
}

// leafSpans returns every atom span and list-delimiter span, in source
// order, across the whole tree (excluding the virtual root's empty
// delimiters).
func (t *Tree) leafSpans() []Span {
	var spans []Span
	var walk func(n *Node)
	walk = func(n *Node) {
		switch n.Kind {
		case KindAtom:
			spans = append(spans, n.Span)
		case KindList:
			if n.OpenText != "" {
				spans = append(spans, n.OpenSpan)
			}
			for _, c := range n.Children {
				walk(c)
			}
			if n.CloseText != "" {
				spans = append(spans, n.CloseSpan)
			}
		}
	}
	walk(t.Root)
	return spans
}

// Reconstruct concatenates the tree's literal text in source order,
// filling the gaps between tokens with the corresponding bytes from the
// original source (whitespace, and any bytes the permissive lexer could
// not classify). For a correctly parsed tree this always equals Source
// exactly — the invariant this method exists to make checkable.
func (t *Tree) Reconstruct() []byte {
	spans := t.leafSpans()
	var buf bytes.Buffer
	prevEnd := 0
	for _, sp := range spans {
		if sp.StartOffset > prevEnd {
			buf.Write(t.Source[prevEnd:sp.StartOffset])
		}
		buf.Write(t.Source[sp.StartOffset:sp.EndOffset])
		prevEnd = sp.EndOffset
	}
	if prevEnd < len(t.Source) {
		buf.Write(t.Source[prevEnd:])
	}
	return buf.Bytes()
}

// Balanced reports whether every List node in the tree has non-empty open
// and close delimiter text, i.e. no list was auto-closed at EOF. A false
// result corresponds to an AnomalyUnclosedAtEOF having been recorded.
func (t *Tree) Balanced() bool {
	for _, n := range t.byOrder {
		if n.Kind == KindList && (n.OpenText == "" || n.CloseText == "") {
			// The virtual root is the only list allowed empty delimiters.
			if n != t.Root {
				return false
			}
		}
	}
	return true
}
