package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/structdiff/pkg/runner"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunSingleFilePair(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	lhs := filepath.Join(dir, "a.go")
	rhs := filepath.Join(dir, "b.go")
	writeFile(t, lhs, "package main\n\nfunc f() { x := 1 }\n")
	writeFile(t, rhs, "package main\n\nfunc f() { x := 2 }\n")

	result, err := runner.Run(context.Background(), runner.Options{LHSRoot: lhs, RHSRoot: rhs})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)

	outcome := result.Files[0]
	require.NoError(t, outcome.Error)
	assert.True(t, outcome.Changed())
	assert.Equal(t, 1, result.Stats.FilesChanged)
}

func TestRunDirectoryTreeHandlesAddedAndRemovedFiles(t *testing.T) {
	t.Parallel()

	lhsRoot := t.TempDir()
	rhsRoot := t.TempDir()

	writeFile(t, filepath.Join(lhsRoot, "same.go"), "package main\n\nfunc f() {}\n")
	writeFile(t, filepath.Join(rhsRoot, "same.go"), "package main\n\nfunc f() {}\n")

	writeFile(t, filepath.Join(lhsRoot, "removed.go"), "package main\n\nfunc gone() {}\n")
	writeFile(t, filepath.Join(rhsRoot, "added.go"), "package main\n\nfunc fresh() {}\n")

	result, err := runner.Run(context.Background(), runner.Options{LHSRoot: lhsRoot, RHSRoot: rhsRoot})
	require.NoError(t, err)
	require.Len(t, result.Files, 3)

	assert.Equal(t, 1, result.Stats.FilesAdded)
	assert.Equal(t, 1, result.Stats.FilesRemoved)
	assert.True(t, result.HasChanges())

	var sawSame bool
	for _, outcome := range result.Files {
		if outcome.RelPath == "same.go" {
			sawSame = true
			assert.False(t, outcome.Changed())
		}
	}
	assert.True(t, sawSame)
}

func TestRunRespectsJobsCap(t *testing.T) {
	t.Parallel()

	lhsRoot := t.TempDir()
	rhsRoot := t.TempDir()

	for i := 0; i < 5; i++ {
		name := filepath.Join("pkg", "file"+string(rune('a'+i))+".go")
		writeFile(t, filepath.Join(lhsRoot, name), "package main\n")
		writeFile(t, filepath.Join(rhsRoot, name), "package main\n\nvar x = 1\n")
	}

	result, err := runner.Run(context.Background(), runner.Options{LHSRoot: lhsRoot, RHSRoot: rhsRoot, Jobs: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Stats.FilesDiscovered)
	assert.Equal(t, 5, result.Stats.FilesChanged)
}
