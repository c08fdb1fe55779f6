package textutil

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a title into its comparable form: balanced
// parenthetical segments are removed, every character that is not a letter,
// digit, or whitespace is erased, the result is lowercased, and whitespace
// runs collapse to single spaces. Empty input yields empty output.
//
// Normalize is idempotent: applying it to its own output is a no-op.
func Normalize(raw string) string {
	stripped := stripParentheticals(raw)

	var b strings.Builder
	b.Grow(len(stripped))
	pendingSpace := false
	for _, r := range stripped {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			pendingSpace = true
		}
	}
	return b.String()
}

// stripParentheticals removes single-level balanced (...) segments. An
// opening parenthesis without a closing one is left in place; the punctuation
// pass drops the stray rune anyway.
func stripParentheticals(s string) string {
	if !strings.ContainsRune(s, '(') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	rest := s
	for {
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			b.WriteString(rest)
			return b.String()
		}
		closing := strings.IndexByte(rest[open:], ')')
		if closing < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:open])
		rest = rest[open+closing+1:]
	}
}

// Parentheticals returns the contents of every balanced single-level (...)
// segment, in order of appearance. Nested parentheses are not interpreted;
// the first closing parenthesis terminates a segment.
func Parentheticals(s string) []string {
	var segments []string
	rest := s
	for {
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			return segments
		}
		closing := strings.IndexByte(rest[open:], ')')
		if closing < 0 {
			return segments
		}
		segments = append(segments, rest[open+1:open+closing])
		rest = rest[open+closing+1:]
	}
}

// TokenSet returns the unique whitespace-separated tokens of s.
func TokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
