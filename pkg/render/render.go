package render

import (
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/yaklabco/structdiff/pkg/align"
	"github.com/yaklabco/structdiff/pkg/syntax"
)

// defaultColumnWidth is used when the output isn't a terminal (piped,
// redirected to a file) or the terminal size can't be read.
const defaultColumnWidth = 80

// Renderer writes an aligned row stream as two side-by-side columns.
type Renderer struct {
	out    io.Writer
	styles *Styles
	width  int
}

// New builds a Renderer. colorMode is "auto", "always", or "never", per
// the teacher's color-mode convention.
func New(out io.Writer, colorMode string) *Renderer {
	return &Renderer{
		out:    out,
		styles: NewStyles(IsColorEnabled(colorMode, out)),
		width:  terminalWidth(out),
	}
}

func terminalWidth(out io.Writer) int {
	if f, ok := out.(interface{ Fd() uintptr }); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultColumnWidth * 2
}

// Render writes the header and every row of the aligned stream for one
// file pair.
func (r *Renderer) Render(lhsPath, rhsPath string, lhs, rhs *syntax.Tree, rows []align.Row) {
	fmt.Fprintln(r.out, r.styles.FilePath.Render(fmt.Sprintf("--- %s", lhsPath)))
	fmt.Fprintln(r.out, r.styles.FilePath.Render(fmt.Sprintf("+++ %s", rhsPath)))

	lhsLines := syntax.NewLineIndex(lhs.Source)
	rhsLines := syntax.NewLineIndex(rhs.Source)

	colWidth := (r.width - 3) / 2
	if colWidth < 10 {
		colWidth = 10
	}

	for _, row := range rows {
		r.renderRow(row, lhs.Source, rhs.Source, lhsLines, rhsLines, colWidth)
	}
}

func (r *Renderer) renderRow(row align.Row, lhsSrc, rhsSrc []byte, lhsLines, rhsLines *syntax.LineIndex, colWidth int) {
	if row.Kind == align.RowEllipsis {
		fmt.Fprintln(r.out, r.styles.Ellipsis.Render(fmt.Sprintf("  ⋯ %d unchanged lines ⋯", row.SkippedRows)))
		return
	}

	lhsText, lhsStyle := "", r.styles.Context
	if row.HasLHS() {
		lhsText = string(lhsLines.LineContent(lhsSrc, row.LHSLine))
		if !row.HasRHS() {
			lhsStyle = r.styles.Remove
		} else if !row.Matched {
			lhsStyle = r.styles.Remove
		}
	}

	rhsText, rhsStyle := "", r.styles.Context
	if row.HasRHS() {
		rhsText = string(rhsLines.LineContent(rhsSrc, row.RHSLine))
		if !row.HasLHS() {
			rhsStyle = r.styles.Add
		} else if !row.Matched {
			rhsStyle = r.styles.Add
		}
	}

	left := r.styles.Gutter.Render(gutter(row.LHSLine)) + " " + lhsStyle.Render(truncate(lhsText, colWidth))
	right := r.styles.Gutter.Render(gutter(row.RHSLine)) + " " + rhsStyle.Render(truncate(rhsText, colWidth))

	fmt.Fprintf(r.out, "%-*s│%s\n", colWidth+6, left, right)
}

func gutter(line int) string {
	if line == 0 {
		return "    "
	}
	return fmt.Sprintf("%4d", line)
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}
