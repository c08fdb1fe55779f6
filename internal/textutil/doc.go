// Package textutil provides the text processing primitives used by the
// matching engine: title normalization, tokenization, parenthetical tag
// extraction, and display-name derivation.
//
// Normalization canonicalizes a title into a comparable form by stripping
// parenthetical segments, erasing punctuation, lowercasing, and collapsing
// whitespace. Two titles that differ only in punctuation style normalize to
// the same value, which is what makes substring matching across
// inconsistently named files possible.
package textutil
