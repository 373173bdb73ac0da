package synparse

import (
	"github.com/yaklabco/structdiff/pkg/langtable"
	"github.com/yaklabco/structdiff/pkg/syntax"
)

// frame is one open List on the shift-reduce stack: the delimiter token
// that opened it, plus the children accumulated so far.
type frame struct {
	openText string
	openSpan syntax.Span
	children []*syntax.Node
}

// Parse lexes src under profile and reduces the token stream into a
// syntax.Tree. It never returns an error: malformed input degrades to
// best-effort atoms and tree.Anomalies, per the permissive parsing
// contract — a diff tool must not refuse to diff a file just because it
// can't fully understand it.
func Parse(src []byte, profile *langtable.Profile) *syntax.Tree {
	lines := syntax.NewLineIndex(src)
	lx := newLexer(src, profile, lines)

	var anomalies []syntax.Anomaly
	stack := []*frame{{}}

	for {
		tok, ok := lx.next()
		if !ok {
			break
		}

		top := stack[len(stack)-1]

		switch tok.Kind {
		case TokenOpen:
			stack = append(stack, &frame{openText: tok.Text, openSpan: tok.Span})

		case TokenClose:
			if len(stack) <= 1 {
				// No matching open frame: fail-soft, keep the delimiter as a
				// stray atom rather than aborting the parse.
				anomalies = append(anomalies, syntax.Anomaly{
					Kind: syntax.AnomalyStrayClose,
					At:   tok.Span.Start,
					Text: tok.Text,
				})
				top.children = append(top.children, syntax.NewAtom(syntax.AtomUnknown, tok.Text, tok.Span))
				continue
			}
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			list := syntax.NewList(top.openText, top.openSpan, top.children, tok.Text, tok.Span)
			parent.children = append(parent.children, list)

		case TokenComment:
			top.children = append(top.children, syntax.NewAtom(syntax.AtomComment, tok.Text, tok.Span))

		case TokenAtom:
			top.children = append(top.children, syntax.NewAtom(syntax.AtomCode, tok.Text, tok.Span))

		case TokenUnknown:
			top.children = append(top.children, syntax.NewAtom(syntax.AtomUnknown, tok.Text, tok.Span))
		}
	}

	eof := lines.At(len(src))
	for len(stack) > 1 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		anomalies = append(anomalies, syntax.Anomaly{
			Kind: syntax.AnomalyUnclosedAtEOF,
			At:   eof,
			Text: top.openText,
		})
		list := syntax.NewList(top.openText, top.openSpan, top.children, "", syntax.Span{})
		parent := stack[len(stack)-1]
		parent.children = append(parent.children, list)
	}

	root := syntax.NewList("", syntax.Span{}, stack[0].children, "", syntax.Span{})
	return syntax.NewTree(root, src, anomalies)
}
