package langtable

import _ "embed"

//go:embed default.toml
var defaultConfig []byte

// Default returns the Table built from the repository's built-in syntax
// profiles. It panics on malformed embedded configuration, which would be
// a programming error (a broken build), not a runtime condition — the
// embedded file is compiled into the binary and never varies at runtime.
func Default() *Table {
	profiles, err := LoadBytes(defaultConfig)
	if err != nil {
		panic("langtable: embedded default.toml is invalid: " + err.Error())
	}
	return NewTable(profiles)
}
