package config

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks invalid configuration values.
var ErrConfiguration = errors.New("configuration error")

// Validate ensures the configuration is usable. Source and target
// directories are deliberately not checked here; commands that need them
// validate their presence at invocation time.
func (c *Config) Validate() error {
	if err := c.validatePriorities(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if err := c.validateLogging(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return nil
}

func (c *Config) validatePriorities() error {
	weights := map[string]int{
		"priorities.europe":  c.Priorities.Europe,
		"priorities.usa":     c.Priorities.USA,
		"priorities.world":   c.Priorities.World,
		"priorities.english": c.Priorities.English,
	}
	for key, value := range weights {
		if value < 0 {
			return fmt.Errorf("%s must be non-negative, got %d", key, value)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	return nil
}

// RequireDirectories fails unless both the source and target directories are
// configured, either in the file or through command flags.
func (c *Config) RequireDirectories() error {
	if c.Paths.SourceDir == "" {
		return errors.New("paths.source_dir must be set (or pass --source)")
	}
	if c.Paths.TargetDir == "" {
		return errors.New("paths.target_dir must be set (or pass --target)")
	}
	return nil
}
