// Package settings defines the CLI-level configuration structure for
// structdiff — the options a user can set once in a file instead of
// repeating as flags on every invocation. It is a pure data structure with
// no loading logic of its own, mirroring the teacher's pkg/config: the
// struct here knows its own field names and YAML tags, nothing about
// where a Settings value came from.
package settings

// ColorMode selects when the renderer emits ANSI escapes.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Settings is the root CLI-level configuration structure, loaded from an
// optional YAML file plus environment variables plus CLI flags, in that
// order of increasing precedence (internal/configloader.Load).
type Settings struct {
	// Color controls the renderer's ANSI color mode.
	Color ColorMode `yaml:"color"`

	// ContextLines is how many matched rows are kept around a change
	// before a run of matched rows collapses into an ellipsis.
	ContextLines int `yaml:"context_lines"`

	// Collapse enables ellipsis collapsing of long unchanged runs.
	Collapse bool `yaml:"collapse"`

	// Jobs caps the number of concurrent worker goroutines in a batch run.
	// 0 means "auto" (runtime.NumCPU()).
	Jobs int `yaml:"jobs"`

	// Ignore lists glob patterns (relative to each root) to skip during
	// directory discovery.
	Ignore []string `yaml:"ignore"`

	// ReplaceAtom enables the engine's optional same-position atom
	// replacement edge.
	ReplaceAtom bool `yaml:"replace_atom"`

	// SyntaxConfig is an optional path to a TOML file of additional or
	// overriding langtable.Profile entries, merged over the embedded
	// defaults. Empty means "built-in profiles only".
	SyntaxConfig string `yaml:"syntax_config"`

	// DeadlineSeconds is the cooperative wall-clock budget (spec.md §5)
	// applied per file pair. 0 means no deadline.
	DeadlineSeconds int `yaml:"deadline_seconds"`
}

// Default returns the built-in Settings used when no file, environment
// variable, or flag overrides a field.
func Default() *Settings {
	return &Settings{
		Color:        ColorAuto,
		ContextLines: 3,
		Collapse:     true,
	}
}
