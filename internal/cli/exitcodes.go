package cli

import (
	"errors"

	"github.com/yaklabco/structdiff/pkg/runner"
)

// Exit codes for structdiff.
const (
	// ExitSuccess indicates no differences and no errors.
	ExitSuccess = 0

	// ExitDiffsFound indicates the run completed but found differences.
	ExitDiffsFound = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates settings or syntax-profile load errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the process exit code from a batch result.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.Stats.FilesErrored > 0 {
		return ExitInternalError
	}
	if result.HasChanges() {
		return ExitDiffsFound
	}
	return ExitSuccess
}

// ExitCodeFromError maps a top-level command error to a process exit
// code, distinguishing the "diffs found" sentinel from a genuine failure.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrDiffsFound) {
		return ExitDiffsFound
	}
	return ExitInternalError
}
