package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

// DefaultDodgerConfig returns the built-in tuning. It matches
// defaults/dodger.yaml and is used when the embedded file cannot be parsed.
func DefaultDodgerConfig() DodgerConfig {
	return DodgerConfig{
		World: WorldConfig{
			Width:        800,
			Height:       600,
			SpawnOffset:  20,
			EscapeMargin: 100,
			MinDistance:  0.1,
		},
		Player: PlayerConfig{
			Radius:        25,
			MaxSpeed:      8,
			FollowDivisor: 5,
			StartLives:    3,
			MaxLives:      5,
		},
		Obstacles: ObstacleConfig{
			MinRadius:    15,
			MaxRadius:    30,
			MinSpeed:     2,
			MaxSpeed:     4,
			NearDistance: 100,
			NearModifier: 0.7,
			EscapeScore:  5,
			LifeCost:     1,
		},
		Trackers: TrackerConfig{
			Radius:      20,
			MinSpeed:    1.5,
			MaxSpeed:    2.5,
			MinStrength: 0.3,
			MaxStrength: 0.7,
			Jitter:      1,
			Cap:         5,
			Milestone:   500,
			LifeCost:    2,
		},
		PowerUps: PowerUpConfig{
			Radius:       15,
			Interval:     450,
			Lifetime:     300,
			Inset:        50,
			ScoreBonus:   200,
			BombBonus:    100,
			SlowDuration: 300,
			SlowModifier: 0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			BaseRate:     30,
			MinRate:      15,
			ScoreDivisor: 500,
		},
	}
}
