package matching

import (
	"math"
	"strings"

	"romsort/internal/textutil"
)

// ScoreRejected is the sentinel score of a rejected candidate. It compares
// lower than every reachable ranking score.
const ScoreRejected = math.MinInt32

// ScoredCandidate pairs a candidate filename with its ranking score.
type ScoredCandidate struct {
	File  string
	Score int
}

// Rejected reports whether the candidate was disqualified by the rule set.
func (c ScoredCandidate) Rejected() bool { return c.Score == ScoreRejected }

// Score evaluates one filename against the variant set under the given
// rules. The boolean result is false when no variant is a substring of the
// normalized filename; such files are not candidates at all. For candidates,
// the score is either ScoreRejected or the sum of the specificity/coverage,
// region priority, and length similarity terms.
func Score(filename string, variants []string, rules RuleSet) (bool, int) {
	normalized := textutil.Normalize(filename)

	variantIdx := -1
	for i, v := range variants {
		if v != "" && strings.Contains(normalized, v) {
			variantIdx = i
			break
		}
	}
	if variantIdx < 0 {
		return false, 0
	}

	// Earlier variants are more specific; index 5 and beyond go negative on
	// purpose so weak matches stay rankable but penalized.
	score := 50 - 10*variantIdx
	score += tokenCoverage(variants[variantIdx], normalized)

	lower := strings.ToLower(filename)
	segments := textutil.Parentheticals(lower)
	if rejected(lower, segments, rules) {
		return true, ScoreRejected
	}

	score += regionScore(lower, segments, rules.weights)

	// Length similarity: files whose normalized name is not much longer than
	// the primary variant rank higher. The penalty is capped at 100.
	excess := len(normalized) - len(variants[0])
	if excess > 100 {
		excess = 100
	}
	score += 100 - excess

	return true, score
}

// tokenCoverage scores how completely the filename's tokens cover the
// winning variant's unique tokens, scaled to 0..100. Both sides are sets,
// so a token repeated in the variant counts once.
func tokenCoverage(variant, normalizedFilename string) int {
	variantTokens := textutil.TokenSet(variant)
	if len(variantTokens) == 0 {
		return 0
	}
	fileTokens := textutil.TokenSet(normalizedFilename)
	covered := 0
	for token := range variantTokens {
		if _, ok := fileTokens[token]; ok {
			covered++
		}
	}
	return covered * 100 / len(variantTokens)
}

// rejected applies the tag and region rejection rules to the lowercased raw
// filename and its parenthetical segments.
func rejected(lower string, segments []string, rules RuleSet) bool {
	// Any tag of any group appearing in any parenthetical segment
	// disqualifies the file. The first hit short-circuits.
	for _, group := range rules.rejectTagGroups {
		for _, tag := range group {
			for _, segment := range segments {
				if strings.Contains(segment, tag) {
					return true
				}
			}
		}
	}

	// With two or more parenthetical segments the second is a
	// region/language marker by convention, never a free-form note.
	if len(segments) >= 2 && !containsAnyToken(segments[1], rules.acceptableRegions) {
		return true
	}

	hasAcceptableRegion := false
	for _, segment := range segments {
		if containsAnyToken(segment, rules.acceptableRegions) {
			hasAcceptableRegion = true
			break
		}
	}

	if rules.rejectLoneCountries && !hasAcceptableRegion {
		for _, country := range rules.loneCountries {
			for _, segment := range segments {
				if strings.Contains(segment, country) {
					return true
				}
			}
		}
	}

	// Japan stays independently toggleable even when it is also listed as a
	// generic lone country.
	if rules.rejectJapanOnly && !hasAcceptableRegion {
		for _, segment := range segments {
			if strings.Contains(segment, "japan") {
				return true
			}
		}
	}

	return false
}

// regionScore adds the configured priority weight for each region indicator
// found inside the filename's parenthetical content. Full spellings earn the
// full weight; the short "eu"/"us" tokens earn the weight less 50. The
// English indicator counts once whether spelled "en" or "english".
func regionScore(lower string, segments []string, w Weights) int {
	joined := strings.Join(segments, " ")
	tokens := splitRegionTokens(joined)

	score := 0
	if strings.Contains(joined, "europe") {
		score += w.Europe
	} else if tokens["eu"] {
		score += w.Europe - 50
	}
	if strings.Contains(joined, "usa") {
		score += w.USA
	} else if tokens["us"] {
		score += w.USA - 50
	}
	if strings.Contains(joined, "world") {
		score += w.World
	}
	if tokens["en"] || strings.Contains(joined, "english") {
		score += w.English
	}
	if strings.Contains(lower, "europe") && strings.Contains(lower, "usa") {
		score += regionComboBonus
	}
	return score
}

// splitRegionTokens breaks parenthetical content into standalone tokens so
// that short indicators like "en" or "us" never fire on longer words.
func splitRegionTokens(s string) map[string]bool {
	tokens := make(map[string]bool)
	start := -1
	for i, r := range s {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens[s[start:i]] = true
			start = -1
		}
	}
	if start >= 0 {
		tokens[s[start:]] = true
	}
	return tokens
}

// containsAnyToken reports whether any of the needles appears as a
// standalone token of segment. Substring matching would let incidental
// letter runs count as regions ("sweden" or "genesis" both contain "en"),
// so acceptability demands whole tokens; comma-separated lists like
// "en,ja" still split cleanly.
func containsAnyToken(segment string, needles []string) bool {
	tokens := splitRegionTokens(segment)
	for _, needle := range needles {
		if tokens[needle] {
			return true
		}
	}
	return false
}
