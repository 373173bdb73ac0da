package syntax

// NewAtom creates a leaf Atom node. Seq and Depth are left zero; call
// NewTree (or Tree.finalize via a fresh parse) to assign them.
func NewAtom(kind AtomKind, content string, span Span) *Node {
	return &Node{
		Kind:     KindAtom,
		AtomKind: kind,
		Content:  content,
		Span:     span,
	}
}

// NewList creates a List node from its delimiters and children.
func NewList(openText string, openSpan Span, children []*Node, closeText string, closeSpan Span) *Node {
	return &Node{
		Kind:      KindList,
		OpenText:  openText,
		OpenSpan:  openSpan,
		Children:  children,
		CloseText: closeText,
		CloseSpan: closeSpan,
	}
}
