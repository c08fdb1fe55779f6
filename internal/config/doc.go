// Package config loads, normalizes, and validates the romsort configuration
// file. The matching rules it carries are turned into an immutable
// matching.RuleSet snapshot once per batch; nothing reads configuration
// during scoring.
package config
