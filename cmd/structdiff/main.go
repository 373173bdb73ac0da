// Command structdiff renders a side-by-side structural diff of two source
// files or directory trees.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/structdiff/internal/cli"
	"github.com/yaklabco/structdiff/internal/logging"
)

// Build-time variables set by the release tooling via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrDiffsFound) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeFromError(err)
	}

	return cli.ExitSuccess
}
