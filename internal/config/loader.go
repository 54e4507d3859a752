package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDodger loads dodger configuration.
// Search order: customPath -> ~/.dodger/configs/dodger.yaml -> ./configs/dodger.yaml -> embedded default
func LoadDodger(customPath string) (DodgerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DodgerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseDodger(data)
		if err != nil {
			return DodgerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dodger.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseDodger(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/dodger.yaml"); err == nil {
		if cfg, err := parseDodger(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseDodger(defaultDodgerYAML)
	if err != nil {
		return DefaultDodgerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseDodger decodes YAML on top of the hardcoded defaults, so a partial
// file only overrides the keys it names, and validates the result.
func parseDodger(data []byte) (DodgerConfig, error) {
	cfg := DefaultDodgerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DodgerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DodgerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodger", "configs", filename)
}

// Validate rejects tunings that would make the simulation degenerate.
func (c DodgerConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, errors.New("world: width and height must be positive"))
	}
	if c.World.Width <= 2*c.PowerUps.Inset || c.World.Height <= 2*c.PowerUps.Inset {
		errs = append(errs, errors.New("powerups: inset leaves no room inside the world"))
	}
	if c.World.MinDistance <= 0 {
		errs = append(errs, errors.New("world: min_distance must be positive"))
	}
	if c.Player.Radius <= 0 || c.Player.FollowDivisor <= 0 {
		errs = append(errs, errors.New("player: radius and follow_divisor must be positive"))
	}
	if c.Player.StartLives <= 0 || c.Player.MaxLives < c.Player.StartLives {
		errs = append(errs, errors.New("player: need 0 < start_lives <= max_lives"))
	}
	if c.Obstacles.MinRadius <= 0 || c.Obstacles.MaxRadius < c.Obstacles.MinRadius {
		errs = append(errs, errors.New("obstacles: need 0 < min_radius <= max_radius"))
	}
	if c.Obstacles.MaxSpeed < c.Obstacles.MinSpeed {
		errs = append(errs, errors.New("obstacles: max_speed below min_speed"))
	}
	if c.Trackers.MaxSpeed < c.Trackers.MinSpeed || c.Trackers.MaxStrength < c.Trackers.MinStrength {
		errs = append(errs, errors.New("trackers: max below min"))
	}
	if c.Trackers.Cap < 0 {
		errs = append(errs, errors.New("trackers: cap must not be negative"))
	}
	if c.Trackers.Milestone <= 0 {
		errs = append(errs, errors.New("trackers: milestone must be positive"))
	}
	if c.PowerUps.Interval <= 0 || c.PowerUps.Lifetime <= 0 {
		errs = append(errs, errors.New("powerups: interval and lifetime must be positive"))
	}
	if c.Difficulty.BaseRate <= 0 || c.Difficulty.MinRate <= 0 {
		errs = append(errs, errors.New("difficulty: base_rate and min_rate must be positive"))
	}
	return errors.Join(errs...)
}

// ApplyDodgerPreset modifies the spawn schedule based on a difficulty preset.
func ApplyDodgerPreset(cfg *DodgerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseRate = 40
		cfg.Difficulty.MinRate = 20
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseRate = 30
		cfg.Difficulty.MinRate = 15
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseRate = 22
		cfg.Difficulty.MinRate = 10
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
