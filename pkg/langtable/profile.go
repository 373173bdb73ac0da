// Package langtable is the Language Table: a small in-memory registry
// mapping a file extension (or, via content detection, a language name) to
// a syntax Profile — the ordered atom/comment regexes and delimiter
// regexes that drive the parser in pkg/synparse.
package langtable

import "regexp"

// Profile is one language's syntax description (spec.md §3, "Syntax
// profile"). Pattern ordering is semantically significant: during
// tokenization the first pattern that matches at the cursor wins.
type Profile struct {
	Name                  string
	Extensions            []string
	AtomPatterns          []*regexp.Regexp
	CommentPatterns       []*regexp.Regexp
	OpenDelimiterPattern  *regexp.Regexp
	CloseDelimiterPattern *regexp.Regexp
}

// Table is a pure lookup from extension (or language name) to Profile. It
// is built once from the declarative TOML configuration at program start;
// there is no I/O at diff time.
type Table struct {
	profiles []*Profile
	byExt    map[string]*Profile
	byName   map[string]*Profile
}

// NewTable builds a Table from a set of profiles. Later profiles win ties
// on extension, matching map-assignment order; profiles should not
// normally share an extension.
func NewTable(profiles []*Profile) *Table {
	t := &Table{
		profiles: profiles,
		byExt:    make(map[string]*Profile),
		byName:   make(map[string]*Profile),
	}
	for _, p := range profiles {
		t.byName[p.Name] = p
		for _, ext := range p.Extensions {
			t.byExt[ext] = p
		}
	}
	return t
}

// Resolve looks up a Profile by file extension (lowercase, no leading dot).
func (t *Table) Resolve(extension string) (*Profile, bool) {
	p, ok := t.byExt[extension]
	return p, ok
}

// ByName looks up a Profile by its language name.
func (t *Table) ByName(name string) (*Profile, bool) {
	p, ok := t.byName[name]
	return p, ok
}

// Profiles returns every registered profile, in registration order.
func (t *Table) Profiles() []*Profile {
	return t.profiles
}
