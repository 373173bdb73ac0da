package runner

import (
	"github.com/yaklabco/structdiff/pkg/align"
	"github.com/yaklabco/structdiff/pkg/syntax"
)

// FileOutcome is one file pair's diff result.
type FileOutcome struct {
	// RelPath is the path relative to both roots (or the base name, when
	// diffing a single file pair directly).
	RelPath string

	// LHS and RHS are nil when the file exists on only one side.
	LHS *syntax.Tree
	RHS *syntax.Tree

	// Rows is the aligned row stream, populated for every outcome
	// (including whole-file add/remove, which aligns against an empty
	// counterpart tree).
	Rows []align.Row

	// Cost is the engine's total edit cost for this pair; for a whole-file
	// add or remove it is the cost of adding or removing every node.
	Cost uint64

	// Error is set if the pair could not be parsed or diffed.
	Error error
}

// Changed reports whether this outcome has any non-unchanged row.
func (f FileOutcome) Changed() bool {
	for _, row := range f.Rows {
		if row.Kind == align.RowEllipsis {
			continue
		}
		if !row.Matched {
			return true
		}
	}
	return false
}

// Stats aggregates counts across a batch run.
type Stats struct {
	FilesDiscovered int
	FilesChanged    int
	FilesErrored    int
	FilesAdded      int
	FilesRemoved    int
}

// Result is the overall batch outcome, in deterministic path order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	switch {
	case outcome.LHS == nil:
		r.Stats.FilesAdded++
	case outcome.RHS == nil:
		r.Stats.FilesRemoved++
	case outcome.Changed():
		r.Stats.FilesChanged++
	}
}

// HasChanges reports whether any file pair in the batch differed.
func (r *Result) HasChanges() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesChanged > 0 || r.Stats.FilesAdded > 0 || r.Stats.FilesRemoved > 0
}
