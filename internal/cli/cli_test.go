package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/structdiff/internal/cli"
)

func buildInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
}

func TestDiffCommandReportsExitCodeWhenFilesDiffer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	lhs := filepath.Join(dir, "a.go")
	rhs := filepath.Join(dir, "b.go")
	require.NoError(t, os.WriteFile(lhs, []byte("package main\n\nfunc f() { x := 1 }\n"), 0o644))
	require.NoError(t, os.WriteFile(rhs, []byte("package main\n\nfunc f() { x := 2 }\n"), 0o644))

	cmd := cli.NewRootCommand(buildInfo())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"diff", "--color", "never", lhs, rhs})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrDiffsFound)
	assert.Contains(t, stdout.String(), "---")
	assert.Contains(t, stdout.String(), "+++")
}

func TestDiffCommandSucceedsWhenFilesMatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	lhs := filepath.Join(dir, "a.go")
	rhs := filepath.Join(dir, "b.go")
	content := []byte("package main\n\nfunc f() {}\n")
	require.NoError(t, os.WriteFile(lhs, content, 0o644))
	require.NoError(t, os.WriteFile(rhs, content, 0o644))

	cmd := cli.NewRootCommand(buildInfo())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"diff", "--color", "never", lhs, rhs})

	require.NoError(t, cmd.Execute())
}

func TestVersionCommandPrintsBuildInfo(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "1.2.3", Commit: "abcdef", Date: "2026-01-01"})
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
}
