// Package configloader resolves the final CLI-level Settings by merging,
// in ascending precedence: built-in defaults, a discovered project YAML
// file, STRUCTDIFF_*-prefixed environment variables, and CLI flags. It is
// kept separate from pkg/settings the same way the teacher separates
// internal/configloader (loading/merging logic) from pkg/config (pure data
// structs).
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/structdiff/pkg/settings"
)

// LoadOptions controls Settings resolution.
type LoadOptions struct {
	// WorkingDir is the directory to search upward from for a project
	// settings file. Defaults to os.Getwd() when empty.
	WorkingDir string

	// ExplicitPath is an explicit settings file path (--config flag). When
	// set, upward project-file discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips loading environment variable overrides.
	IgnoreEnv bool

	// CLISettings carries values set directly via CLI flags. Only
	// non-zero fields are considered "explicitly set" and therefore
	// override everything else, per merge's convention.
	CLISettings *settings.Settings
}

// LoadResult is the resolved Settings plus metadata about how it was
// resolved.
type LoadResult struct {
	Settings   *settings.Settings
	LoadedFrom string
}

// Load resolves the final Settings value.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := settings.Default()

	path := opts.ExplicitPath
	if path == "" {
		found, err := FindProjectSettings(ctx, workDir)
		if err != nil {
			return nil, fmt.Errorf("discover settings file: %w", err)
		}
		path = found
	}

	if path != "" {
		fileCfg, err := loadSettingsFile(path)
		if err != nil {
			return nil, fmt.Errorf("load settings file %s: %w", path, err)
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = path
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLISettings != nil {
		cfg = merge(cfg, opts.CLISettings)
	}

	result.Settings = cfg
	return result, nil
}

func loadSettingsFile(path string) (*settings.Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg := &settings.Settings{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return cfg, nil
}
