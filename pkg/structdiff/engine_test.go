package structdiff_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/structdiff/pkg/langtable"
	"github.com/yaklabco/structdiff/pkg/structdiff"
	"github.com/yaklabco/structdiff/pkg/syntax"
	"github.com/yaklabco/structdiff/pkg/synparse"
)

func parseGo(t *testing.T, src string) *syntax.Tree {
	t.Helper()
	profile, ok := langtable.Default().ByName("go")
	require.True(t, ok)
	return synparse.Parse([]byte(src), profile)
}

func TestDiffIdenticalInputsAreAllUnchanged(t *testing.T) {
	t.Parallel()

	src := `func add(a int, b int) int { return a + b }`
	lhs := parseGo(t, src)
	rhs := parseGo(t, src)

	result, err := structdiff.Diff(context.Background(), lhs, rhs)
	require.NoError(t, err)
	assert.True(t, result.LHS.AllSet())
	assert.True(t, result.RHS.AllSet())

	for i := 1; i < lhs.Len(); i++ {
		n := lhs.NodeAt(i)
		assert.Equal(t, syntax.MarkUnchanged, result.LHS.Kind(n), "node %d should be unchanged", i)
	}
}

func TestDiffWhollyDifferentInputsAreAllAddedRemoved(t *testing.T) {
	t.Parallel()

	lhs := parseGo(t, `aaa`)
	rhs := parseGo(t, `bbb`)

	result, err := structdiff.Diff(context.Background(), lhs, rhs)
	require.NoError(t, err)

	for i := 1; i < lhs.Len(); i++ {
		assert.Equal(t, syntax.MarkRemoved, result.LHS.Kind(lhs.NodeAt(i)))
	}
	for i := 1; i < rhs.Len(); i++ {
		assert.Equal(t, syntax.MarkAdded, result.RHS.Kind(rhs.NodeAt(i)))
	}
}

func TestDiffDetectsSingleChangedAtomInsideMatchingList(t *testing.T) {
	t.Parallel()

	lhs := parseGo(t, `f(x, y, z)`)
	rhs := parseGo(t, `f(x, q, z)`)

	result, err := structdiff.Diff(context.Background(), lhs, rhs)
	require.NoError(t, err)

	var lhsRemoved, rhsAdded int
	for i := 1; i < lhs.Len(); i++ {
		if result.LHS.Kind(lhs.NodeAt(i)) == syntax.MarkRemoved {
			lhsRemoved++
		}
	}
	for i := 1; i < rhs.Len(); i++ {
		if result.RHS.Kind(rhs.NodeAt(i)) == syntax.MarkAdded {
			rhsAdded++
		}
	}
	assert.Equal(t, 1, lhsRemoved)
	assert.Equal(t, 1, rhsAdded)
}

func TestDiffIsSymmetric(t *testing.T) {
	t.Parallel()

	lhs := parseGo(t, `f(x, y, z)`)
	rhs := parseGo(t, `f(x, q, z)`)

	forward, err := structdiff.Diff(context.Background(), lhs, rhs)
	require.NoError(t, err)
	backward, err := structdiff.Diff(context.Background(), rhs, lhs)
	require.NoError(t, err)

	assert.Equal(t, forward.Cost, backward.Cost)
}

func TestDiffRespectsCancelledContext(t *testing.T) {
	t.Parallel()

	lhs := parseGo(t, `f(x, y, z)`)
	rhs := parseGo(t, `f(x, q, z)`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := structdiff.Diff(ctx, lhs, rhs)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, syntax.MarkRemoved, result.LHS.Kind(lhs.NodeAt(1)))
}

func TestWithReplaceAtomMarksReplacement(t *testing.T) {
	t.Parallel()

	lhs := parseGo(t, `x`)
	rhs := parseGo(t, `y`)

	result, err := structdiff.Diff(context.Background(), lhs, rhs, structdiff.WithReplaceAtom(true))
	require.NoError(t, err)

	assert.Equal(t, syntax.MarkReplaced, result.LHS.Kind(lhs.NodeAt(1)))
	assert.Equal(t, syntax.MarkReplaced, result.RHS.Kind(rhs.NodeAt(1)))
	assert.Same(t, rhs.NodeAt(1), result.LHS.Partner(lhs.NodeAt(1)))
}
