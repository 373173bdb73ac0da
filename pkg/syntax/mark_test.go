package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/structdiff/pkg/syntax"
)

func singleAtomTree(content string) *syntax.Tree {
	a := syntax.NewAtom(syntax.AtomCode, content, syntax.Span{})
	root := syntax.NewList("", syntax.Span{}, []*syntax.Node{a}, "", syntax.Span{})
	return syntax.NewTree(root, []byte(content), nil)
}

func TestOverlayPairDeep(t *testing.T) {
	t.Parallel()

	lhsTree := singleAtomTree("x")
	rhsTree := singleAtomTree("x")

	lhsOverlay := syntax.NewOverlay(lhsTree)
	rhsOverlay := syntax.NewOverlay(rhsTree)

	syntax.PairDeep(lhsOverlay, rhsOverlay, lhsTree.Root, rhsTree.Root)

	require.True(t, lhsOverlay.AllSet())
	require.True(t, rhsOverlay.AllSet())

	assert.Equal(t, syntax.MarkUnchanged, lhsOverlay.Kind(lhsTree.Root.Children[0]))
	assert.Same(t, rhsTree.Root.Children[0], lhsOverlay.Partner(lhsTree.Root.Children[0]))
	assert.Same(t, lhsTree.Root.Children[0], rhsOverlay.Partner(rhsTree.Root.Children[0]))
}

func TestOverlaySetAddedRemoved(t *testing.T) {
	t.Parallel()

	tree := singleAtomTree("x")
	overlay := syntax.NewOverlay(tree)
	overlay.Set(tree.Root.Children[0], syntax.MarkRemoved)

	assert.Equal(t, syntax.MarkRemoved, overlay.Kind(tree.Root.Children[0]))
	assert.False(t, overlay.AllSet()) // root itself is still MarkUnset
}
