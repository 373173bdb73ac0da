package langtable

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// ResolveOrDetect looks up a Profile by extension first; when the extension
// is unknown (or empty) it falls back to content detection, guessing a
// language name from the file's bytes and looking that name up in the table.
// This mirrors the two-stage strategy of the teacher's language detector,
// trading its long hand-written pattern cascade for go-enry's shebang and
// classifier heuristics: this table only needs a name to key a lookup by,
// not a full content-type classification.
func (t *Table) ResolveOrDetect(extension string, content []byte) (*Profile, bool) {
	if extension != "" {
		if p, ok := t.Resolve(extension); ok {
			return p, ok
		}
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		if p, ok := t.ByName(normalizeLanguageName(lang)); ok {
			return p, ok
		}
	}

	candidates := make([]string, 0, len(t.profiles))
	for _, p := range t.profiles {
		candidates = append(candidates, p.Name)
	}

	// The classifier ranks every candidate and reports safe only when there
	// is a single one, so its top-ranked language is used as is.
	if lang, _ := enry.GetLanguageByClassifier(content, candidates); lang != "" {
		if p, ok := t.ByName(normalizeLanguageName(lang)); ok {
			return p, ok
		}
	}

	return nil, false
}

// normalizeLanguageName maps a go-enry display name (e.g. "JavaScript") onto
// the lowercase profile names this table is keyed by (e.g. "javascript").
func normalizeLanguageName(lang string) string {
	return strings.ToLower(lang)
}
