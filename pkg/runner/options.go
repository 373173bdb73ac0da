// Package runner orchestrates structural diffing across a whole directory
// tree of file pairs, concurrently, on top of the single-pair pkg/structdiff
// engine.
package runner

import (
	"path/filepath"

	"github.com/yaklabco/structdiff/pkg/align"
	"github.com/yaklabco/structdiff/pkg/langtable"
)

// Options controls a batch run.
type Options struct {
	// LHSRoot and RHSRoot are the two trees being compared. Each may be a
	// single file (both must then be files) or a directory.
	LHSRoot string
	RHSRoot string

	// ExcludeGlobs skips matching relative paths during directory walks.
	ExcludeGlobs []string

	// Jobs controls the maximum number of concurrent worker goroutines.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Table resolves a Profile for each discovered file by extension, with
	// content-sniffing fallback. Defaults to langtable.Default() if nil.
	Table *langtable.Table

	// AlignOptions are forwarded to align.Align for every file pair.
	AlignOptions []align.Option

	// ReplaceAtom enables the engine's optional same-position atom
	// replacement edge (spec.md's "replace atom" refinement).
	ReplaceAtom bool
}

func (o Options) effectiveTable() *langtable.Table {
	if o.Table != nil {
		return o.Table
	}
	return langtable.Default()
}

func (o Options) matchesExclude(relPath string) bool {
	for _, pattern := range o.ExcludeGlobs {
		if matched, err := filepath.Match(filepath.ToSlash(pattern), filepath.ToSlash(relPath)); err == nil && matched {
			return true
		}
	}
	return false
}
