package synparse

import (
	"regexp"

	"github.com/yaklabco/structdiff/pkg/langtable"
	"github.com/yaklabco/structdiff/pkg/syntax"
)

// lexer walks src one token at a time under the rules of a single Profile.
type lexer struct {
	src     []byte
	pos     int
	profile *langtable.Profile
	lines   *syntax.LineIndex
}

func newLexer(src []byte, profile *langtable.Profile, lines *syntax.LineIndex) *lexer {
	return &lexer{src: src, profile: profile, lines: lines}
}

// isSpace reports whether b is whitespace, discarded (but reconstructible
// from the source) between tokens.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// next returns the next token, or ok=false once the input is exhausted.
// Matching follows the profile's pattern precedence, anchored at the
// cursor: open-delimiter, then close-delimiter, then each comment pattern
// in order, then each atom pattern in order. A byte nothing recognizes is
// emitted verbatim as a TokenUnknown so reconstruction stays exact.
func (l *lexer) next() (Token, bool) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return Token{}, false
	}

	remaining := l.src[l.pos:]

	if text, ok := matchAnchored(l.profile.OpenDelimiterPattern, remaining); ok {
		return l.emit(TokenOpen, text), true
	}
	if text, ok := matchAnchored(l.profile.CloseDelimiterPattern, remaining); ok {
		return l.emit(TokenClose, text), true
	}
	for _, pattern := range l.profile.CommentPatterns {
		if text, ok := matchAnchored(pattern, remaining); ok {
			return l.emit(TokenComment, text), true
		}
	}
	for _, pattern := range l.profile.AtomPatterns {
		if text, ok := matchAnchored(pattern, remaining); ok {
			return l.emit(TokenAtom, text), true
		}
	}

	// Permissive fallback: nothing matched, skip one byte.
	return l.emit(TokenUnknown, string(l.src[l.pos:l.pos+1])), true
}

// matchAnchored reports whether pattern matches at the very start of
// remaining, returning the matched text. A zero-length match is rejected
// (patterns are validated at load time to never produce one; this is a
// defensive backstop against the lexer stalling).
func matchAnchored(pattern *regexp.Regexp, remaining []byte) (string, bool) {
	loc := pattern.FindIndex(remaining)
	if loc == nil || loc[0] != 0 || loc[1] == 0 {
		return "", false
	}
	return string(remaining[:loc[1]]), true
}

func (l *lexer) emit(kind TokenKind, text string) Token {
	start := l.pos
	end := l.pos + len(text)
	l.pos = end
	return Token{Kind: kind, Text: text, Span: l.lines.Span(start, end)}
}
