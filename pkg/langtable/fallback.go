package langtable

import "regexp"

// neverMatches is a sentinel delimiter pattern for a profile that has no
// delimiters at all. Its character class excludes every code point (and
// regexp reads an invalid UTF-8 byte as U+FFFD, which is excluded too), so
// it never fires on any input, which is exactly the "no open/close
// delimiters configured" behavior this fallback needs.
var neverMatches = regexp.MustCompile(`[^\x00-\x{10FFFF}]`)

// wordPattern treats any run of non-whitespace bytes as one atom. It is
// deliberately coarser than any real language's atom_patterns: the point
// of this profile is only to keep the parser, diff engine, and aligner
// operating on *something* when extension resolution and content
// detection both fail, per spec.md §4.1's "downgrade to a line-oriented
// fallback" — the diff will read as individual-token churn rather than
// syntax-aware grouping, which is the accepted cost of that downgrade.
var wordPattern = regexp.MustCompile(`\S+`)

// lineOnly is built once at package initialization; it holds no per-call
// state.
var lineOnly = &Profile{
	Name:                  "plaintext",
	AtomPatterns:          []*regexp.Regexp{wordPattern},
	CommentPatterns:       nil,
	OpenDelimiterPattern:  neverMatches,
	CloseDelimiterPattern: neverMatches,
}

// LineOnlyProfile returns the line-oriented fallback profile used when a
// file's extension can't be resolved and content detection (ResolveOrDetect)
// finds no match either. It treats every whitespace-delimited token as an
// independent atom with no nested structure, which keeps every component
// downstream of the parser working unmodified on unrecognized input.
func LineOnlyProfile() *Profile {
	return lineOnly
}
