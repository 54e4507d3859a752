package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseDodger(defaultDodgerYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultDodgerConfig() {
		t.Errorf("embedded defaults differ from DefaultDodgerConfig():\n%+v\n%+v", cfg, DefaultDodgerConfig())
	}
}

func TestLoadDodgerCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodger.yaml")
	data := []byte("player:\n  start_lives: 4\ndifficulty:\n  base_rate: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodger(path)
	if err != nil {
		t.Fatalf("LoadDodger() failed: %v", err)
	}
	if cfg.Player.StartLives != 4 {
		t.Errorf("StartLives = %d, expected 4", cfg.Player.StartLives)
	}
	if cfg.Difficulty.BaseRate != 50 {
		t.Errorf("BaseRate = %d, expected 50", cfg.Difficulty.BaseRate)
	}
	// Keys not named in the file keep their defaults.
	if cfg.Player.MaxLives != 5 || cfg.World.Width != 800 {
		t.Errorf("unspecified keys should keep defaults, got %+v", cfg.Player)
	}
}

func TestLoadDodgerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDodger(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDodger(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  start_lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDodger(invalid); err == nil {
		t.Error("start_lives above max_lives should fail validation")
	}
}

func TestValidateRejectsDegenerateConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *DodgerConfig)
	}{
		{"zero width", func(c *DodgerConfig) { c.World.Width = 0 }},
		{"zero min distance", func(c *DodgerConfig) { c.World.MinDistance = 0 }},
		{"inset too large", func(c *DodgerConfig) { c.PowerUps.Inset = 400 }},
		{"radius range inverted", func(c *DodgerConfig) { c.Obstacles.MaxRadius = 10 }},
		{"negative tracker cap", func(c *DodgerConfig) { c.Trackers.Cap = -1 }},
		{"zero milestone", func(c *DodgerConfig) { c.Trackers.Milestone = 0 }},
		{"zero power-up interval", func(c *DodgerConfig) { c.PowerUps.Interval = 0 }},
		{"zero min rate", func(c *DodgerConfig) { c.Difficulty.MinRate = 0 }},
	}

	if err := DefaultDodgerConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDodgerConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted a degenerate config")
			}
		})
	}
}

func TestSpawnRate(t *testing.T) {
	d := NewDifficultyManager(DefaultDodgerConfig().Difficulty)

	tests := []struct {
		score, expected int
	}{
		{0, 30},
		{499, 30},
		{500, 29},
		{2500, 25},
		{7500, 15},
		{100000, 15}, // floor-clamped
	}
	for _, tc := range tests {
		if got := d.SpawnRate(tc.score); got != tc.expected {
			t.Errorf("SpawnRate(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}

	fixed := DefaultDodgerConfig().Difficulty
	fixed.Enabled = false
	d = NewDifficultyManager(fixed)
	if got := d.SpawnRate(100000); got != 30 {
		t.Errorf("disabled progression should hold base rate, got %d", got)
	}
	if d.Level(100000) != 0 {
		t.Error("disabled progression should report level 0")
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DefaultDodgerConfig().Difficulty)
	if d.Level(0) != 0 {
		t.Errorf("Level(0) = %f, expected 0", d.Level(0))
	}
	if d.Level(1_000_000) != 1 {
		t.Errorf("Level at floor = %f, expected 1", d.Level(1_000_000))
	}
}

func TestApplyDodgerPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		base    int
		minRate int
		enabled bool
	}{
		{DifficultyEasy, 40, 20, true},
		{DifficultyNormal, 30, 15, true},
		{DifficultyHard, 22, 10, true},
		{DifficultyFixed, 30, 15, false},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultDodgerConfig()
			ApplyDodgerPreset(&cfg, tc.preset)
			if cfg.Difficulty.BaseRate != tc.base || cfg.Difficulty.MinRate != tc.minRate || cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("got %+v", cfg.Difficulty)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}

	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
	if ParsePreset("fixed") != DifficultyFixed {
		t.Error("fixed should parse as fixed preset")
	}
}
