package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/structdiff/internal/configloader"
	"github.com/yaklabco/structdiff/internal/logging"
	"github.com/yaklabco/structdiff/pkg/align"
	"github.com/yaklabco/structdiff/pkg/langtable"
	"github.com/yaklabco/structdiff/pkg/render"
	"github.com/yaklabco/structdiff/pkg/runner"
	"github.com/yaklabco/structdiff/pkg/settings"
)

// ErrDiffsFound is returned when the run completes but reports at least
// one difference, mirroring the teacher's sentinel non-error used purely
// to drive the process exit code without logging a spurious failure.
var ErrDiffsFound = errors.New("differences found")

type diffFlags struct {
	jobs         int
	ignore       []string
	replaceAtom  bool
	syntaxConfig string
	contextLines int
	noCollapse   bool
	deadline     int
}

func newDiffCommand() *cobra.Command {
	flags := &diffFlags{}

	cmd := &cobra.Command{
		Use:   "diff <lhs> <rhs>",
		Short: "Render a structural diff between two files or directories",
		Long: `Compare two files, or two directory trees of files, structurally: by
syntactic atom and list rather than by line.

Examples:
  structdiff diff old.go new.go
  structdiff diff --jobs 8 old-tree/ new-tree/
  structdiff diff --ignore 'vendor/**' a/ b/`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args, flags)
		},
	}

	addDiffFlags(cmd, flags)

	return cmd
}

func addDiffFlags(cmd *cobra.Command, flags *diffFlags) {
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore during directory walks")
	cmd.Flags().BoolVar(&flags.replaceAtom, "replace-atom", false, "enable the optional replace-atom edge")
	cmd.Flags().StringVar(&flags.syntaxConfig, "syntax-config", "", "path to a TOML file of additional syntax profiles")
	cmd.Flags().IntVar(&flags.contextLines, "context", 0, "matched rows kept around a change before collapsing (0 = use settings default)")
	cmd.Flags().BoolVar(&flags.noCollapse, "no-collapse", false, "never collapse unchanged runs into an ellipsis")
	cmd.Flags().IntVar(&flags.deadline, "deadline", 0, "per-file-pair wall-clock budget in seconds (0 = none)")
}

func runDiff(cmd *cobra.Command, args []string, flags *diffFlags) error {
	logger := logging.Default()

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	cliSettings := &settings.Settings{
		Jobs:            flags.jobs,
		Ignore:          flags.ignore,
		ReplaceAtom:     flags.replaceAtom,
		SyntaxConfig:    flags.syntaxConfig,
		ContextLines:    flags.contextLines,
		DeadlineSeconds: flags.deadline,
	}
	if colorFlag, err := cmd.Flags().GetString("color"); err == nil && colorFlag != "" && cmd.Flags().Changed("color") {
		cliSettings.Color = settings.ColorMode(colorFlag)
	}

	loadResult, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLISettings:  cliSettings,
	})
	if err != nil {
		logger.Error("failed to load settings", logging.FieldError, err)
		return fmt.Errorf("load settings: %w", err)
	}
	finalSettings := loadResult.Settings
	if flags.noCollapse {
		finalSettings.Collapse = false
	}

	if loadResult.LoadedFrom != "" {
		logger.Debug("loaded settings", logging.FieldPath, loadResult.LoadedFrom)
	}

	table, err := buildTable(finalSettings)
	if err != nil {
		logger.Error("failed to build syntax table", logging.FieldError, err)
		return fmt.Errorf("build syntax table: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if finalSettings.DeadlineSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(finalSettings.DeadlineSeconds)*time.Second)
		defer cancel()
	}

	lhsRoot, rhsRoot := args[0], args[1]

	runOpts := runner.Options{
		LHSRoot:      lhsRoot,
		RHSRoot:      rhsRoot,
		ExcludeGlobs: finalSettings.Ignore,
		Jobs:         finalSettings.Jobs,
		Table:        table,
		ReplaceAtom:  finalSettings.ReplaceAtom,
		AlignOptions: []align.Option{
			align.WithContextLines(finalSettings.ContextLines),
			align.WithCollapse(finalSettings.Collapse),
		},
	}

	logger.Debug("starting diff run",
		logging.FieldLHSPath, lhsRoot,
		logging.FieldRHSPath, rhsRoot,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.Run(ctx, runOpts)
	if err != nil && result == nil {
		logger.Error("diff run failed", logging.FieldError, err)
		return fmt.Errorf("diff run failed: %w", err)
	}

	singleFile := false
	if info, statErr := os.Stat(lhsRoot); statErr == nil && !info.IsDir() {
		singleFile = true
	}

	renderer := render.New(cmd.OutOrStdout(), string(finalSettings.Color))
	for _, outcome := range result.Files {
		if outcome.Error != nil {
			logger.Error("failed to diff file pair", logging.FieldPath, outcome.RelPath, logging.FieldError, outcome.Error)
			continue
		}
		if !outcome.Changed() {
			continue
		}
		lhsPath, rhsPath := lhsRoot, rhsRoot
		if !singleFile {
			lhsPath = filepath.Join(lhsRoot, outcome.RelPath)
			rhsPath = filepath.Join(rhsRoot, outcome.RelPath)
		}
		renderer.Render(lhsPath, rhsPath, outcome.LHS, outcome.RHS, outcome.Rows)
	}

	logger.Debug("diff run complete",
		logging.FieldFilePairsDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilePairsProcessed, len(result.Files),
	)

	switch ExitCodeFromResult(result) {
	case ExitDiffsFound:
		return ErrDiffsFound
	case ExitInternalError:
		return fmt.Errorf("%d file pair(s) could not be diffed", result.Stats.FilesErrored)
	}
	return nil
}

// buildTable starts from langtable.Default() and, when settings.SyntaxConfig
// names a file, overlays its profiles on top — later entries win on a
// shared extension, per langtable.NewTable's documented tie-break.
func buildTable(s *settings.Settings) (*langtable.Table, error) {
	if s.SyntaxConfig == "" {
		return langtable.Default(), nil
	}

	data, err := os.ReadFile(s.SyntaxConfig)
	if err != nil {
		return nil, fmt.Errorf("read syntax config %s: %w", s.SyntaxConfig, err)
	}
	extra, err := langtable.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse syntax config %s: %w", s.SyntaxConfig, err)
	}

	profiles := append(langtable.Default().Profiles(), extra...)
	return langtable.NewTable(profiles), nil
}
