package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/yaklabco/structdiff/pkg/align"
	"github.com/yaklabco/structdiff/pkg/langtable"
	"github.com/yaklabco/structdiff/pkg/structdiff"
	"github.com/yaklabco/structdiff/pkg/synparse"
	"github.com/yaklabco/structdiff/pkg/syntax"
)

// Run discovers file pairs under opts.LHSRoot/opts.RHSRoot and diffs them
// concurrently, using a worker pool sized to opts.Jobs (or runtime.NumCPU()
// when unset). Each file pair is diffed independently and atomically, per
// spec.md §5 — concurrency is only ever across pairs, never within one.
func Run(ctx context.Context, opts Options) (*Result, error) {
	pairing, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	type job struct {
		relPath string
		lhsOnly bool
		rhsOnly bool
	}

	jobs := make([]job, 0, len(pairing.BothPaths)+len(pairing.LHSOnlyPaths)+len(pairing.RHSOnlyPaths))
	for _, p := range pairing.BothPaths {
		jobs = append(jobs, job{relPath: p})
	}
	for _, p := range pairing.LHSOnlyPaths {
		jobs = append(jobs, job{relPath: p, lhsOnly: true})
	}
	for _, p := range pairing.RHSOnlyPaths {
		jobs = append(jobs, job{relPath: p, rhsOnly: true})
	}

	result := &Result{Files: make([]FileOutcome, 0, len(jobs))}
	result.Stats.FilesDiscovered = len(jobs)

	if len(jobs) == 0 {
		return result, nil
	}

	workerCount := opts.Jobs
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	if workerCount > len(jobs) {
		workerCount = len(jobs)
	}

	table := opts.effectiveTable()

	singleFile := false
	if info, statErr := os.Stat(opts.LHSRoot); statErr == nil && !info.IsDir() {
		singleFile = true
	}

	workCh := make(chan job)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range workCh {
				select {
				case <-ctx.Done():
					return
				default:
				}

				outcome := diffPair(ctx, opts, table, j.relPath, j.lhsOnly, j.rhsOnly, singleFile)

				select {
				case <-ctx.Done():
					return
				case outCh <- outcome:
				}
			}
		}()
	}

	go func() {
		defer close(workCh)
		for _, j := range jobs {
			select {
			case <-ctx.Done():
				return
			case workCh <- j:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(jobs))
	for outcome := range outCh {
		outcomes[outcome.RelPath] = outcome
	}

	for _, j := range jobs {
		if outcome, ok := outcomes[j.relPath]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// diffPair parses and diffs a single file pair. A file present on only one
// side is diffed against an empty tree of the same profile so the aligner
// still emits a whole-file add/remove row set, rather than special-casing
// that path separately.
func diffPair(ctx context.Context, opts Options, table *langtable.Table, relPath string, lhsOnly, rhsOnly, singleFile bool) FileOutcome {
	outcome := FileOutcome{RelPath: relPath}

	lhsPath := filepath.Join(opts.LHSRoot, relPath)
	rhsPath := filepath.Join(opts.RHSRoot, relPath)
	if singleFile {
		// Discover reports the base name as RelPath when both roots are
		// plain files; the roots themselves are the paths to read.
		lhsPath = opts.LHSRoot
		rhsPath = opts.RHSRoot
	}

	var lhsSrc, rhsSrc []byte
	var err error

	if !rhsOnly {
		lhsSrc, err = os.ReadFile(lhsPath)
		if err != nil {
			outcome.Error = fmt.Errorf("read lhs %s: %w", relPath, err)
			return outcome
		}
	}
	if !lhsOnly {
		rhsSrc, err = os.ReadFile(rhsPath)
		if err != nil {
			outcome.Error = fmt.Errorf("read rhs %s: %w", relPath, err)
			return outcome
		}
	}

	profile, _ := table.ResolveOrDetect(extensionOf(relPath), pick(lhsSrc, rhsSrc))

	lhsTree := parseOrFallback(lhsSrc, profile)
	rhsTree := parseOrFallback(rhsSrc, profile)

	diffOpts := []structdiff.Option{}
	if opts.ReplaceAtom {
		diffOpts = append(diffOpts, structdiff.WithReplaceAtom(true))
	}

	diffResult, err := structdiff.Diff(ctx, lhsTree, rhsTree, diffOpts...)
	if diffResult == nil {
		// No fallback available (a genuinely exhausted search graph, not a
		// deadline): this pair could not be diffed at all.
		outcome.Error = fmt.Errorf("diff %s: %w", relPath, err)
		return outcome
	}
	// err != nil here means the deadline fired and diffResult is the
	// degenerate remove-all/add-all fallback (spec.md §5) — still a
	// complete, alignable result, not a failure of this file pair.

	rows := align.Align(lhsTree, rhsTree, diffResult.LHS, diffResult.RHS, opts.AlignOptions...)

	if !rhsOnly {
		outcome.LHS = lhsTree
	}
	if !lhsOnly {
		outcome.RHS = rhsTree
	}
	outcome.Rows = rows
	outcome.Cost = diffResult.Cost

	return outcome
}

func parseOrFallback(src []byte, profile *langtable.Profile) *syntax.Tree {
	if profile == nil {
		profile = langtable.LineOnlyProfile()
	}
	return synparse.Parse(src, profile)
}

func extensionOf(relPath string) string {
	ext := filepath.Ext(relPath)
	if ext == "" {
		return ""
	}
	return ext[1:]
}

func pick(a, b []byte) []byte {
	if len(a) > 0 {
		return a
	}
	return b
}
