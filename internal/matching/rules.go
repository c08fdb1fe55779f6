package matching

import "strings"

// Default region priority weights, applied when a weight is left unset.
const (
	DefaultEuropeWeight  = 1000
	DefaultUSAWeight     = 800
	DefaultWorldWeight   = 700
	DefaultEnglishWeight = 650
)

// regionComboBonus is added when a filename names both Europe and USA.
const regionComboBonus = 100

// Weights holds the four named region priority weights. Higher values rank
// the corresponding releases earlier.
type Weights struct {
	Europe  int
	USA     int
	World   int
	English int
}

// RuleSet is the read-only rule snapshot consumed by scoring. Construct one
// with NewRuleSet (or DefaultRuleSet) before a batch and treat it as
// immutable for the batch's duration; the constructor copies every slice so
// later mutation of the inputs cannot leak into an in-flight batch.
type RuleSet struct {
	rejectTagGroups     [][]string
	acceptableRegions   []string
	loneCountries       []string
	rejectLoneCountries bool
	rejectJapanOnly     bool
	weights             Weights
}

// Params carries the raw rule configuration for NewRuleSet. String values
// are lowercased and deduplicated; empty entries are dropped. A weight of
// zero means unset and resolves to the documented default.
type Params struct {
	RejectTagGroups     [][]string
	AcceptableRegions   []string
	LoneCountries       []string
	RejectLoneCountries bool
	RejectJapanOnly     bool
	Weights             Weights
}

// NewRuleSet builds an immutable rule set from the provided parameters.
func NewRuleSet(p Params) RuleSet {
	groups := make([][]string, 0, len(p.RejectTagGroups))
	for _, group := range p.RejectTagGroups {
		cleaned := cleanTokens(group)
		if len(cleaned) > 0 {
			groups = append(groups, cleaned)
		}
	}
	return RuleSet{
		rejectTagGroups:     groups,
		acceptableRegions:   cleanTokens(p.AcceptableRegions),
		loneCountries:       cleanTokens(p.LoneCountries),
		rejectLoneCountries: p.RejectLoneCountries,
		rejectJapanOnly:     p.RejectJapanOnly,
		weights: Weights{
			Europe:  weightOrDefault(p.Weights.Europe, DefaultEuropeWeight),
			USA:     weightOrDefault(p.Weights.USA, DefaultUSAWeight),
			World:   weightOrDefault(p.Weights.World, DefaultWorldWeight),
			English: weightOrDefault(p.Weights.English, DefaultEnglishWeight),
		},
	}
}

// DefaultRuleSet returns the rule set used when no configuration overrides
// are present: common non-release tags rejected, the usual western region
// markers accepted, and single-country releases (Japan included) rejected
// unless an acceptable region is also named.
func DefaultRuleSet() RuleSet {
	return NewRuleSet(Params{
		RejectTagGroups:     DefaultRejectTagGroups(),
		AcceptableRegions:   DefaultAcceptableRegions(),
		LoneCountries:       DefaultLoneCountries(),
		RejectLoneCountries: true,
		RejectJapanOnly:     true,
	})
}

// DefaultRejectTagGroups lists the parenthetical tags that disqualify a
// candidate outright, grouped by tag class.
func DefaultRejectTagGroups() [][]string {
	return [][]string{
		{"beta", "proto", "demo", "sample", "kiosk"},
		{"pirate", "unl", "hack", "aftermarket"},
	}
}

// DefaultAcceptableRegions lists the region tokens that mark a release as
// acceptable. Both spellings of the English marker are listed because
// acceptability matches whole tokens.
func DefaultAcceptableRegions() []string {
	return []string{"europe", "usa", "world", "en", "english"}
}

// DefaultLoneCountries lists countries whose releases are rejected when no
// acceptable region appears alongside them.
func DefaultLoneCountries() []string {
	return []string{
		"japan", "germany", "france", "spain", "italy",
		"sweden", "netherlands", "australia", "brazil", "korea", "china",
	}
}

// Weights returns the resolved region priority weights.
func (r RuleSet) Weights() Weights { return r.weights }

func weightOrDefault(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}

func cleanTokens(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		token := strings.ToLower(strings.TrimSpace(v))
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}
