package matching

import "sort"

// MatchResult is the outcome of matching one reference name against a file
// listing. Candidates holds every file that contained a variant substring,
// sorted by descending score; rejected candidates carry ScoreRejected and so
// sort last. Winner is empty when no candidate survived rejection.
type MatchResult struct {
	Winner     string
	Candidates []ScoredCandidate
}

// HasWinner reports whether a selectable candidate was found.
func (r MatchResult) HasWinner() bool { return r.Winner != "" }

// AllRejected reports whether files matched but every one was rejected,
// which a batch report distinguishes from finding no candidates at all.
func (r MatchResult) AllRejected() bool {
	return r.Winner == "" && len(r.Candidates) > 0
}

// SelectBest matches one reference name against the given files and picks
// the highest-scoring non-rejected candidate.
//
// Files are evaluated in the order given, and the first candidate to reach
// the maximum score wins; the caller's listing order is therefore an
// explicit input to tie-breaking. Feeding a lexically sorted listing (as
// os.ReadDir produces) makes ties deterministically lexical.
func SelectBest(referenceName string, files []string, rules RuleSet) MatchResult {
	variants := Variants(referenceName)
	if len(variants) == 0 {
		return MatchResult{}
	}

	var result MatchResult
	bestScore := ScoreRejected
	for _, file := range files {
		matched, score := Score(file, variants, rules)
		if !matched {
			continue
		}
		result.Candidates = append(result.Candidates, ScoredCandidate{File: file, Score: score})
		if score != ScoreRejected && (result.Winner == "" || score > bestScore) {
			result.Winner = file
			bestScore = score
		}
	}

	sort.SliceStable(result.Candidates, func(i, j int) bool {
		return result.Candidates[i].Score > result.Candidates[j].Score
	})
	return result
}
