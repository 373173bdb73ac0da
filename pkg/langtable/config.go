package langtable

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/BurntSushi/toml"
)

// rawTable is the shape of the TOML configuration file: one table per
// language, keyed by language name, with exactly the fields spec.md §6
// lists.
type rawTable map[string]rawLanguage

type rawLanguage struct {
	Extensions            []string `toml:"extensions"`
	AtomPatterns          []string `toml:"atom_patterns"`
	CommentPatterns       []string `toml:"comment_patterns"`
	OpenDelimiterPattern  string   `toml:"open_delimiter_pattern"`
	CloseDelimiterPattern string   `toml:"close_delimiter_pattern"`
}

// LoadBytes parses a TOML syntax-configuration document into a sorted,
// validated slice of Profiles. Every error here is a configuration error
// (spec.md §7): fatal for the affected language, reported at load time,
// never a diff-time concern.
func LoadBytes(data []byte) ([]*Profile, error) {
	var raw rawTable
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("langtable: decode syntax config: %w", err)
	}

	profiles := make([]*Profile, 0, len(raw))
	for name, lang := range raw {
		profile, err := buildProfile(name, lang)
		if err != nil {
			return nil, fmt.Errorf("langtable: language %q: %w", name, err)
		}
		profiles = append(profiles, profile)
	}

	// Deterministic order regardless of Go's randomized map iteration.
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })

	return profiles, nil
}

func buildProfile(name string, lang rawLanguage) (*Profile, error) {
	atomPatterns, err := compileAll(lang.AtomPatterns)
	if err != nil {
		return nil, fmt.Errorf("atom_patterns: %w", err)
	}
	commentPatterns, err := compileAll(lang.CommentPatterns)
	if err != nil {
		return nil, fmt.Errorf("comment_patterns: %w", err)
	}
	open, err := compileOne(lang.OpenDelimiterPattern)
	if err != nil {
		return nil, fmt.Errorf("open_delimiter_pattern: %w", err)
	}
	closePattern, err := compileOne(lang.CloseDelimiterPattern)
	if err != nil {
		return nil, fmt.Errorf("close_delimiter_pattern: %w", err)
	}

	return &Profile{
		Name:                  name,
		Extensions:            lang.Extensions,
		AtomPatterns:          atomPatterns,
		CommentPatterns:       commentPatterns,
		OpenDelimiterPattern:  open,
		CloseDelimiterPattern: closePattern,
	}, nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := compileOne(p)
		if err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	return out, nil
}

// compileOne compiles a single pattern and rejects ones that can match the
// empty string — the spec requires every atom/comment pattern be
// non-nullable, since a zero-length match would stall the lexer. This is
// also where the spec.md §9 backtick-typo Open Question is resolved: rather
// than special-casing the one known-bad original pattern, every shipped
// pattern is validated the same way, so any similarly malformed pattern is
// caught at load time instead of silently reproduced.
func compileOne(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", pattern, err)
	}
	if re.MatchString("") {
		return nil, fmt.Errorf("pattern %q matches the empty string", pattern)
	}
	return re, nil
}
