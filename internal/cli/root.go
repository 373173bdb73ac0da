// Package cli provides the Cobra command structure for structdiff.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/structdiff/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root structdiff command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "structdiff",
		Short: "A structural, syntax-aware diff for source files",
		Long: `structdiff compares two source files by their syntactic atoms and lists
instead of by line, and renders the result as a side-by-side structural diff.

It parses each file into a tree of atoms and delimited lists using a small
declarative syntax profile, computes a minimum-cost edit script between the
two trees, and aligns the result into a two-column terminal view.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to settings file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto", "colorize output: auto, always, never")

	rootCmd.AddCommand(newDiffCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
