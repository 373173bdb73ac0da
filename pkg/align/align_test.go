package align_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/structdiff/pkg/align"
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

func TestAlignCoversEverySourceLine(t *testing.T) {
	t.Parallel()

	lhsSrc := "func f() {\n\tx := 1\n\ty := 2\n}\n"
	rhsSrc := "func f() {\n\tx := 1\n\tz := 3\n}\n"

	lhs := parseGo(t, lhsSrc)
	rhs := parseGo(t, rhsSrc)

	result, err := structdiff.Diff(context.Background(), lhs, rhs)
	require.NoError(t, err)

	rows := align.Align(lhs, rhs, result.LHS, result.RHS, align.WithCollapse(false))

	lhsLineCount := strings.Count(lhsSrc, "\n")
	rhsLineCount := strings.Count(rhsSrc, "\n")

	seenLHS := make(map[int]int)
	seenRHS := make(map[int]int)
	for _, row := range rows {
		if row.HasLHS() {
			seenLHS[row.LHSLine]++
		}
		if row.HasRHS() {
			seenRHS[row.RHSLine]++
		}
	}

	for line := 1; line <= lhsLineCount; line++ {
		assert.Equal(t, 1, seenLHS[line], "lhs line %d should appear in exactly one row", line)
	}
	for line := 1; line <= rhsLineCount; line++ {
		assert.Equal(t, 1, seenRHS[line], "rhs line %d should appear in exactly one row", line)
	}
}

func TestAlignPairsUnchangedLines(t *testing.T) {
	t.Parallel()

	src := "func f() {\n\tx := 1\n}\n"
	lhs := parseGo(t, src)
	rhs := parseGo(t, src)

	result, err := structdiff.Diff(context.Background(), lhs, rhs)
	require.NoError(t, err)

	rows := align.Align(lhs, rhs, result.LHS, result.RHS, align.WithCollapse(false))

	for _, row := range rows {
		assert.True(t, row.HasLHS() && row.HasRHS(), "identical input should pair every line")
		assert.True(t, row.Matched)
	}
}

func TestAlignCollapsesLongMatchedRuns(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString("x\n")
	}
	src := b.String()

	lhs := parseGo(t, src)
	rhs := parseGo(t, src)

	result, err := structdiff.Diff(context.Background(), lhs, rhs)
	require.NoError(t, err)

	rows := align.Align(lhs, rhs, result.LHS, result.RHS, align.WithContextLines(2))

	var ellipses int
	for _, row := range rows {
		if row.Kind == align.RowEllipsis {
			ellipses++
			assert.Positive(t, row.SkippedRows)
		}
	}
	assert.Equal(t, 1, ellipses)
	assert.Less(t, len(rows), 20)
}
