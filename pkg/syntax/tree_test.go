package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/structdiff/pkg/syntax"
)

func span(idx *syntax.LineIndex, start, end int) syntax.Span {
	return idx.Span(start, end)
}

func TestTreeReconstructExact(t *testing.T) {
	t.Parallel()

	src := []byte("[ 123, 456 ]")
	idx := syntax.NewLineIndex(src)

	children := []*syntax.Node{
		syntax.NewAtom(syntax.AtomCode, "123", span(idx, 2, 5)),
		syntax.NewAtom(syntax.AtomCode, ",", span(idx, 5, 6)),
		syntax.NewAtom(syntax.AtomCode, "456", span(idx, 7, 10)),
	}
	list := syntax.NewList("[", span(idx, 0, 1), children, "]", span(idx, 11, 12))
	root := syntax.NewList("", syntax.Span{}, []*syntax.Node{list}, "", syntax.Span{})

	tree := syntax.NewTree(root, src, nil)

	require.Equal(t, string(src), string(tree.Reconstruct()))
	assert.True(t, tree.Balanced())
}

func TestTreeUnbalancedAtEOF(t *testing.T) {
	t.Parallel()

	src := []byte("(a (b c")
	idx := syntax.NewLineIndex(src)

	inner := syntax.NewList("(", span(idx, 3, 4), []*syntax.Node{
		syntax.NewAtom(syntax.AtomCode, "b", span(idx, 4, 5)),
		syntax.NewAtom(syntax.AtomCode, "c", span(idx, 6, 7)),
	}, "", syntax.Span{})
	outer := syntax.NewList("(", span(idx, 0, 1), []*syntax.Node{
		syntax.NewAtom(syntax.AtomCode, "a", span(idx, 1, 2)),
		inner,
	}, "", syntax.Span{})
	root := syntax.NewList("", syntax.Span{}, []*syntax.Node{outer}, "", syntax.Span{})

	tree := syntax.NewTree(root, src, []syntax.Anomaly{
		{Kind: syntax.AnomalyUnclosedAtEOF, At: idx.At(7)},
		{Kind: syntax.AnomalyUnclosedAtEOF, At: idx.At(7)},
	})

	assert.False(t, tree.Balanced())
	assert.Len(t, tree.Anomalies, 2)
}

func TestNodeSeqAssignedPreOrder(t *testing.T) {
	t.Parallel()

	src := []byte("(a b)")
	idx := syntax.NewLineIndex(src)
	a := syntax.NewAtom(syntax.AtomCode, "a", span(idx, 1, 2))
	b := syntax.NewAtom(syntax.AtomCode, "b", span(idx, 3, 4))
	list := syntax.NewList("(", span(idx, 0, 1), []*syntax.Node{a, b}, ")", span(idx, 4, 5))
	root := syntax.NewList("", syntax.Span{}, []*syntax.Node{list}, "", syntax.Span{})

	tree := syntax.NewTree(root, src, nil)

	require.Equal(t, 0, root.Seq)
	require.Equal(t, 1, list.Seq)
	require.Equal(t, 2, a.Seq)
	require.Equal(t, 3, b.Seq)
	require.Equal(t, 1, list.Depth)
	require.Equal(t, 2, a.Depth)
	require.Same(t, a, tree.NodeAt(2))
}
