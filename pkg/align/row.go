// Package align turns a pair of marked syntax trees into a row stream: an
// ordered sequence of (lhs line?, rhs line?) pairs suitable for a
// side-by-side renderer, grouping nodes by the source line they start on
// rather than by line-for-line text comparison.
package align

// RowKind discriminates an ordinary aligned row from a collapsed-context
// marker.
type RowKind uint8

const (
	// RowPair is an ordinary row: at least one of LHSLine/RHSLine is set.
	RowPair RowKind = iota
	// RowEllipsis stands in for a run of unchanged, matched rows that were
	// collapsed to keep long unchanged stretches out of the output.
	RowEllipsis
)

// Row is one line of the aligned output. LHSLine/RHSLine are 1-based
// source line numbers, or 0 if that side has no line on this row.
type Row struct {
	Kind RowKind

	LHSLine int
	RHSLine int

	// Matched is true when this row's lhs and rhs lines share at least one
	// pairing link — both sides present and structurally unchanged at the
	// node level — or when neither line holds any node (both blank). Used
	// to decide which runs are eligible for collapsing.
	Matched bool

	// SkippedRows is populated on a RowEllipsis row: how many matched rows
	// it replaces.
	SkippedRows int
}

// HasLHS reports whether this row has a left-hand-side line.
func (r Row) HasLHS() bool { return r.LHSLine > 0 }

// HasRHS reports whether this row has a right-hand-side line.
func (r Row) HasRHS() bool { return r.RHSLine > 0 }
