package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// settingsFiles are the project-level config file names searched for, in
// order of preference, mirroring the teacher's gomdlintConfigFiles list.
var settingsFiles = []string{
	".structdiff.yml",
	".structdiff.yaml",
	"structdiff.yml",
	"structdiff.yaml",
}

// vcsRootMarkers stop the upward search once a repository root is crossed,
// same boundary the teacher's discovery uses.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// FindProjectSettings searches upward from startDir for one of the
// settingsFiles names, stopping at a VCS root, the user's home directory, or the
// filesystem root. Returns "" (not an error) when nothing is found.
func FindProjectSettings(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		homeDir = ""
	}

	currentDir := absDir
	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		for _, name := range settingsFiles {
			path := filepath.Join(currentDir, name)
			if fileExists(path) {
				return path, nil
			}
		}

		if isVCSRoot(currentDir) {
			return "", nil
		}
		if homeDir != "" && currentDir == homeDir {
			return "", nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		path := filepath.Join(dir, marker)
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
