package matching

import (
	"strings"

	"romsort/internal/textutil"
)

// subtitleSeparators are the characters a title may use to introduce a
// subtitle. Splitting happens on the raw title so that the punctuation the
// normalizer would erase can still mark the main-title boundary.
const subtitleSeparators = ":—–-"

// Variants derives the ordered, deduplicated set of normalized forms for a
// reference name, most specific first:
//
//  1. the full normalized title
//  2. the normalized main title, when the raw title carries a subtitle
//     separated by a colon, dash, or em/en dash
//  3. the primary variant with a leading "the " stripped
//
// Later variants trade precision for recall; the scorer penalizes them
// through a positional bonus so a full-title match always outranks a
// main-title-only match on the same file.
func Variants(raw string) []string {
	variants := make([]string, 0, 3)
	appendVariant := func(v string) {
		if v == "" {
			return
		}
		for _, existing := range variants {
			if existing == v {
				return
			}
		}
		variants = append(variants, v)
	}

	primary := textutil.Normalize(raw)
	appendVariant(primary)

	if idx := strings.IndexAny(raw, subtitleSeparators); idx >= 0 {
		appendVariant(textutil.Normalize(raw[:idx]))
	}

	if rest, ok := strings.CutPrefix(primary, "the "); ok {
		appendVariant(rest)
	}

	return variants
}
