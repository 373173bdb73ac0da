package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Pairing lists the relative paths discovered under each root. RelPath
// appears in exactly one of these sets per path (BothPaths, LHSOnlyPaths,
// RHSOnlyPaths), mirroring the original implementation's directory-diff
// mode: a path missing from one side is a wholly added or removed file, not
// an error.
type Pairing struct {
	BothPaths    []string
	LHSOnlyPaths []string
	RHSOnlyPaths []string
}

// Discover walks opts.LHSRoot and opts.RHSRoot and classifies every
// relative path found under either. When a root is a single file, its
// "relative path" is just its base name.
func Discover(ctx context.Context, opts Options) (*Pairing, error) {
	lhsInfo, err := os.Stat(opts.LHSRoot)
	if err != nil {
		return nil, fmt.Errorf("stat lhs root: %w", err)
	}
	rhsInfo, err := os.Stat(opts.RHSRoot)
	if err != nil {
		return nil, fmt.Errorf("stat rhs root: %w", err)
	}

	if !lhsInfo.IsDir() && !rhsInfo.IsDir() {
		return &Pairing{BothPaths: []string{filepath.Base(opts.LHSRoot)}}, nil
	}
	if lhsInfo.IsDir() != rhsInfo.IsDir() {
		return nil, fmt.Errorf("lhs and rhs roots must both be files or both be directories")
	}

	lhsSet, err := walkRelPaths(ctx, opts.LHSRoot, opts)
	if err != nil {
		return nil, fmt.Errorf("walk lhs root: %w", err)
	}
	rhsSet, err := walkRelPaths(ctx, opts.RHSRoot, opts)
	if err != nil {
		return nil, fmt.Errorf("walk rhs root: %w", err)
	}

	pairing := &Pairing{}
	for relPath := range lhsSet {
		if _, ok := rhsSet[relPath]; ok {
			pairing.BothPaths = append(pairing.BothPaths, relPath)
		} else {
			pairing.LHSOnlyPaths = append(pairing.LHSOnlyPaths, relPath)
		}
	}
	for relPath := range rhsSet {
		if _, ok := lhsSet[relPath]; !ok {
			pairing.RHSOnlyPaths = append(pairing.RHSOnlyPaths, relPath)
		}
	}

	sort.Strings(pairing.BothPaths)
	sort.Strings(pairing.LHSOnlyPaths)
	sort.Strings(pairing.RHSOnlyPaths)

	return pairing, nil
}

func walkRelPaths(ctx context.Context, root string, opts Options) (map[string]struct{}, error) {
	seen := make(map[string]struct{})

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if opts.matchesExclude(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if opts.matchesExclude(relPath) {
			return nil
		}

		seen[relPath] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return seen, nil
}
