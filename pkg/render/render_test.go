package render_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/structdiff/pkg/align"
	"github.com/yaklabco/structdiff/pkg/langtable"
	"github.com/yaklabco/structdiff/pkg/render"
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

func TestRenderShowsBothSidesForMatchedRow(t *testing.T) {
	t.Parallel()

	src := "func f() {\n\tx := 1\n}\n"
	lhs := parseGo(t, src)
	rhs := parseGo(t, src)

	result, err := structdiff.Diff(context.Background(), lhs, rhs)
	require.NoError(t, err)

	rows := align.Align(lhs, rhs, result.LHS, result.RHS, align.WithCollapse(false))

	var buf bytes.Buffer
	r := render.New(&buf, "never")
	r.Render("a.go", "b.go", lhs, rhs, rows)

	out := buf.String()
	assert.Contains(t, out, "func f() {")
	assert.Contains(t, out, "--- a.go")
	assert.Contains(t, out, "+++ b.go")
}

func TestRenderShowsOneSideForUnpairedRow(t *testing.T) {
	t.Parallel()

	lhsSrc := "func f() {\n\tx := 1\n}\n"
	rhsSrc := "func f() {\n\tx := 1\n\ty := 2\n}\n"

	lhs := parseGo(t, lhsSrc)
	rhs := parseGo(t, rhsSrc)

	result, err := structdiff.Diff(context.Background(), lhs, rhs)
	require.NoError(t, err)

	rows := align.Align(lhs, rhs, result.LHS, result.RHS, align.WithCollapse(false))

	var addOnly int
	for _, row := range rows {
		if row.HasRHS() && !row.HasLHS() {
			addOnly++
		}
	}
	require.Positive(t, addOnly, "expected at least one rhs-only row in the fixture")

	var buf bytes.Buffer
	r := render.New(&buf, "never")
	r.Render("a.go", "b.go", lhs, rhs, rows)

	assert.Contains(t, buf.String(), "y := 2")
}

func TestRenderCollapsesEllipsisRowToOneLine(t *testing.T) {
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

	var buf bytes.Buffer
	r := render.New(&buf, "never")
	r.Render("a.go", "b.go", lhs, rhs, rows)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	var ellipsisLines int
	for _, line := range lines {
		if strings.Contains(line, "unchanged lines") {
			ellipsisLines++
		}
	}
	assert.Equal(t, 1, ellipsisLines)
}

func TestRenderPlainModeEmitsNoEscapeCodes(t *testing.T) {
	t.Parallel()

	src := "func f() {}\n"
	lhs := parseGo(t, src)
	rhs := parseGo(t, src)

	result, err := structdiff.Diff(context.Background(), lhs, rhs)
	require.NoError(t, err)

	rows := align.Align(lhs, rhs, result.LHS, result.RHS)

	var buf bytes.Buffer
	r := render.New(&buf, "never")
	r.Render("a.go", "b.go", lhs, rhs, rows)

	assert.NotContains(t, buf.String(), "\x1b[")
}
