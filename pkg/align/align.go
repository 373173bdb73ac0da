package align

import "github.com/yaklabco/structdiff/pkg/syntax"

// Option configures Align.
type Option func(*options)

type options struct {
	contextLines int
	collapse     bool
}

// defaultContextLines matches the teacher's unified-diff hunk grouping
// default (pkg/fix.contextLines).
const defaultContextLines = 3

func defaults() options {
	return options{contextLines: defaultContextLines, collapse: true}
}

// WithContextLines sets how many matched rows are kept on each side of a
// change before a run of matched rows is collapsed into an ellipsis.
func WithContextLines(n int) Option {
	return func(o *options) { o.contextLines = n }
}

// WithCollapse enables or disables ellipsis collapsing entirely.
func WithCollapse(enabled bool) Option {
	return func(o *options) { o.collapse = enabled }
}

// Align produces the row stream for a diffed pair of trees, per spec: a
// two-pointer merge over each side's per-line node groups, preferring a
// shared row whenever the two sides' next lines have a pairing link or are
// both without nodes, otherwise draining whichever side is wholly unmatched.
func Align(lhs, rhs *syntax.Tree, lhsOverlay, rhsOverlay *syntax.Overlay, opts ...Option) []Row {
	o := defaults()
	for _, apply := range opts {
		apply(&o)
	}

	lhsByLine := nodesByLine(lhs.Root)
	rhsByLine := nodesByLine(rhs.Root)

	lhsLineCount := syntax.NewLineIndex(lhs.Source).LineCount()
	rhsLineCount := syntax.NewLineIndex(rhs.Source).LineCount()

	var rows []Row
	lhsLine, rhsLine := 1, 1

	for lhsLine <= lhsLineCount || rhsLine <= rhsLineCount {
		switch {
		case lhsLine > lhsLineCount:
			rows = append(rows, Row{LHSLine: 0, RHSLine: rhsLine})
			rhsLine++

		case rhsLine > rhsLineCount:
			rows = append(rows, Row{LHSLine: lhsLine, RHSLine: 0})
			lhsLine++

		default:
			lhsNodes := lhsByLine[lhsLine]
			rhsNodes := rhsByLine[rhsLine]

			switch {
			case len(lhsNodes) == 0 && len(rhsNodes) == 0:
				// Both lines hold no nodes (blank or whitespace only), so
				// there is nothing on either side that could differ.
				rows = append(rows, Row{LHSLine: lhsLine, RHSLine: rhsLine, Matched: true})
				lhsLine++
				rhsLine++

			case sharePairing(lhsNodes, lhsOverlay, rhsNodes):
				rows = append(rows, Row{LHSLine: lhsLine, RHSLine: rhsLine, Matched: true})
				lhsLine++
				rhsLine++

			case allKind(lhsNodes, lhsOverlay, syntax.MarkRemoved):
				rows = append(rows, Row{LHSLine: lhsLine, RHSLine: 0})
				lhsLine++

			case allKind(rhsNodes, rhsOverlay, syntax.MarkAdded):
				rows = append(rows, Row{LHSLine: 0, RHSLine: rhsLine})
				rhsLine++

			default:
				// Partial change: neither side is wholly removed/added nor
				// shares a pairing link. Emit as a coincident change row.
				rows = append(rows, Row{LHSLine: lhsLine, RHSLine: rhsLine})
				lhsLine++
				rhsLine++
			}
		}
	}

	if o.collapse {
		rows = collapseMatched(rows, o.contextLines)
	}

	return rows
}
