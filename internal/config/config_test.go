package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"romsort/internal/matching"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Priorities.Europe != matching.DefaultEuropeWeight {
		t.Errorf("europe weight = %d", cfg.Priorities.Europe)
	}
	if !cfg.Rules.RejectJapanOnly {
		t.Error("japan-only rejection should default enabled")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Error("exists = true for missing file")
	}
	if resolved != path {
		t.Errorf("resolved = %q, want %q", resolved, path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[paths]
source_dir = "/tmp/roms"
target_dir = "/tmp/sorted"

[rules]
reject_tags = [["Beta", " PROTO "], []]
acceptable_regions = ["Europe", "europe", "USA"]
reject_lone_countries = false

[priorities]
europe = 1200

[logging]
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("exists = false")
	}
	if len(cfg.Rules.RejectTags) != 1 || cfg.Rules.RejectTags[0][0] != "beta" {
		t.Errorf("reject_tags = %v", cfg.Rules.RejectTags)
	}
	if len(cfg.Rules.AcceptableRegions) != 2 {
		t.Errorf("acceptable_regions = %v", cfg.Rules.AcceptableRegions)
	}
	if cfg.Rules.RejectLoneCountries {
		t.Error("reject_lone_countries should be false")
	}
	if cfg.Priorities.Europe != 1200 {
		t.Errorf("europe = %d, want 1200", cfg.Priorities.Europe)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadRejectsNegativeWeight(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[priorities]\nusa = -1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := Load(path); err == nil || !strings.Contains(err.Error(), "non-negative") {
		t.Errorf("Load error = %v, want non-negative weight error", err)
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := Load(path); err == nil || !errors.Is(err, ErrConfiguration) {
		t.Errorf("Load error = %v, want ErrConfiguration", err)
	}
}

func TestRuleSetSnapshotIndependence(t *testing.T) {
	cfg := Default()
	rules := cfg.RuleSet()
	cfg.Rules.AcceptableRegions[0] = "mutated"

	matched, score := matching.Score("Game (Europe).bin", []string{"game"}, rules)
	if !matched || score == matching.ScoreRejected {
		t.Error("rule snapshot affected by config mutation")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}

func TestRequireDirectories(t *testing.T) {
	cfg := Default()
	if err := cfg.RequireDirectories(); err == nil {
		t.Error("RequireDirectories passed with empty dirs")
	}
	cfg.Paths.SourceDir = "/tmp/a"
	cfg.Paths.TargetDir = "/tmp/b"
	if err := cfg.RequireDirectories(); err != nil {
		t.Errorf("RequireDirectories: %v", err)
	}
}
