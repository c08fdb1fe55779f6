package config

import "romsort/internal/matching"

const (
	defaultLogDir    = "~/.local/share/romsort/logs"
	defaultDataDir   = "~/.local/share/romsort"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults. Source and
// target directories stay empty; they are required per run.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:  defaultLogDir,
			DataDir: defaultDataDir,
		},
		Rules: Rules{
			RejectTags:          matching.DefaultRejectTagGroups(),
			AcceptableRegions:   matching.DefaultAcceptableRegions(),
			LoneCountries:       matching.DefaultLoneCountries(),
			RejectLoneCountries: true,
			RejectJapanOnly:     true,
		},
		Priorities: Priorities{
			Europe:  matching.DefaultEuropeWeight,
			USA:     matching.DefaultUSAWeight,
			World:   matching.DefaultWorldWeight,
			English: matching.DefaultEnglishWeight,
		},
		Batch: Batch{
			HistoryEnabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
