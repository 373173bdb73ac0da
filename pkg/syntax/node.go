// Package syntax defines the syntactic tree produced by a parse: atoms and
// delimited lists, their source positions, and the change-mark overlay a
// diff engine attaches to a pair of such trees.
package syntax

// Kind discriminates the two closed node variants: Atom and List.
type Kind uint8

const (
	// KindAtom is an indivisible lexical token.
	KindAtom Kind = iota
	// KindList is a balanced-delimiter grouping of child nodes.
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "Atom"
	case KindList:
		return "List"
	default:
		return "Unknown"
	}
}

// AtomKind further classifies an Atom node. The spec requires distinguishing
// comments from everything else; string-atom-subtype distinction is not
// required, so plain code atoms and string atoms share AtomCode.
type AtomKind uint8

const (
	// AtomCode is any non-comment atom: identifier, number, operator, string literal.
	AtomCode AtomKind = iota
	// AtomComment is a comment atom.
	AtomComment
	// AtomUnknown is a byte the lexer could not classify, preserved verbatim
	// by the permissive skip-one-byte fallback so reconstruction stays exact.
	AtomUnknown
)

// Node is a single node of a syntactic tree: either an Atom or a List,
// dispatched on Kind. Only the fields relevant to Kind are populated; the
// others are zero. This mirrors a tagged union rather than an open class
// hierarchy — callers switch on Kind, they do not type-assert.
type Node struct {
	Kind Kind

	// Seq is this node's pre-order index within its Tree, assigned once at
	// parse time. Overlay stores each node's mark and partner at index Seq,
	// and Tree.NodeAt looks nodes up by it.
	Seq int

	// Depth is the number of List ancestors above this node (the root list
	// itself is depth 0). The diff engine's costs do not depend on it.
	Depth int

	Parent *Node

	// --- Atom fields ---

	AtomKind AtomKind
	Content  string
	Span     Span

	// --- List fields ---

	OpenText  string
	OpenSpan  Span
	CloseText string
	CloseSpan Span
	Children  []*Node

	hash      uint64
	hashValid bool
}

// IsAtom reports whether this node is an Atom.
func (n *Node) IsAtom() bool { return n.Kind == KindAtom }

// IsList reports whether this node is a List.
func (n *Node) IsList() bool { return n.Kind == KindList }

// IsComment reports whether this node is a comment atom.
func (n *Node) IsComment() bool { return n.Kind == KindAtom && n.AtomKind == AtomComment }

// Text returns the node's own literal source text: an atom's content, or a
// list's concatenated open+close delimiters (children excluded — use Hash
// or a tree walk for the full subtree text).
func (n *Node) Text() string {
	if n.Kind == KindAtom {
		return n.Content
	}
	return n.OpenText + n.CloseText
}

// StartSpan returns the span of the node's first token: its own span for an
// atom, or the open delimiter's span for a list.
func (n *Node) StartSpan() Span {
	if n.Kind == KindAtom {
		return n.Span
	}
	return n.OpenSpan
}

// EndSpan returns the span of the node's last token: its own span for an
// atom, or the close delimiter's span for a list.
func (n *Node) EndSpan() Span {
	if n.Kind == KindAtom {
		return n.Span
	}
	return n.CloseSpan
}

// EqualDelimiters reports whether two List nodes share the same literal
// open and close delimiter text. It does not compare children.
func (n *Node) EqualDelimiters(o *Node) bool {
	if n.Kind != KindList || o.Kind != KindList {
		return false
	}
	return n.OpenText == o.OpenText && n.CloseText == o.CloseText
}

// EqualAtom reports whether two Atom nodes have identical literal text and
// the same AtomKind (comment-vs-not).
func (n *Node) EqualAtom(o *Node) bool {
	if n.Kind != KindAtom || o.Kind != KindAtom {
		return false
	}
	return n.Content == o.Content && n.AtomKind == o.AtomKind
}
