// Package synparse turns source bytes and a syntax profile into a
// pkg/syntax.Tree: a permissive shift-reduce lexer/parser that never fails,
// instead recording anomalies for the caller to inspect.
package synparse

import "github.com/yaklabco/structdiff/pkg/syntax"

// TokenKind classifies one lexed token.
type TokenKind uint8

const (
	TokenOpen TokenKind = iota
	TokenClose
	TokenComment
	TokenAtom
	// TokenUnknown is a single byte the active profile's patterns could not
	// classify, emitted by the permissive skip-one-byte fallback.
	TokenUnknown
)

// Token is one lexed unit: its kind, literal text, and source span.
type Token struct {
	Kind TokenKind
	Text string
	Span syntax.Span
}
