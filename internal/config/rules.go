package config

import "romsort/internal/matching"

// RuleSet builds the immutable per-batch rule snapshot from the loaded
// configuration. The snapshot copies every slice, so editing the config
// afterwards never affects a batch already running.
func (c *Config) RuleSet() matching.RuleSet {
	return matching.NewRuleSet(matching.Params{
		RejectTagGroups:     c.Rules.RejectTags,
		AcceptableRegions:   c.Rules.AcceptableRegions,
		LoneCountries:       c.Rules.LoneCountries,
		RejectLoneCountries: c.Rules.RejectLoneCountries,
		RejectJapanOnly:     c.Rules.RejectJapanOnly,
		Weights: matching.Weights{
			Europe:  c.Priorities.Europe,
			USA:     c.Priorities.USA,
			World:   c.Priorities.World,
			English: c.Priorities.English,
		},
	})
}
