// Package config provides YAML-based game configuration loading and
// difficulty management for the dodger.
package config

// DodgerConfig contains all tuning for the dodger simulation. Distances are
// in world units (the playfield is World.Width x World.Height), times are in
// simulation frames.
type DodgerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Trackers   TrackerConfig    `yaml:"trackers"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	SpawnOffset  float64 `yaml:"spawn_offset"`  // How far outside an edge hazards appear
	EscapeMargin float64 `yaml:"escape_margin"` // How far outside an edge an obstacle is dropped
	MinDistance  float64 `yaml:"min_distance"`  // Floor for distance divisors
}

// PlayerConfig defines the avatar.
type PlayerConfig struct {
	Radius        float64 `yaml:"radius"`
	MaxSpeed      float64 `yaml:"max_speed"`      // Cap on follow speed per frame
	FollowDivisor float64 `yaml:"follow_divisor"` // Follow speed is distance / divisor
	StartLives    int     `yaml:"start_lives"`
	MaxLives      int     `yaml:"max_lives"`
}

// ObstacleConfig defines seeking obstacles.
type ObstacleConfig struct {
	MinRadius    int     `yaml:"min_radius"`
	MaxRadius    int     `yaml:"max_radius"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	NearDistance float64 `yaml:"near_distance"` // Below this distance obstacles ease off
	NearModifier float64 `yaml:"near_modifier"`
	EscapeScore  int     `yaml:"escape_score"`
	LifeCost     int     `yaml:"life_cost"`
}

// TrackerConfig defines AI trackers.
type TrackerConfig struct {
	Radius      float64 `yaml:"radius"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	MinStrength float64 `yaml:"min_strength"`
	MaxStrength float64 `yaml:"max_strength"`
	Jitter      float64 `yaml:"jitter"`    // Per-axis noise amplitude per frame
	Cap         int     `yaml:"cap"`       // Maximum trackers alive at once
	Milestone   int     `yaml:"milestone"` // Score multiple that allows a spawn
	LifeCost    int     `yaml:"life_cost"`
}

// PowerUpConfig defines pickups and their effects.
type PowerUpConfig struct {
	Radius       float64 `yaml:"radius"`
	Interval     int     `yaml:"interval"` // Frames between spawns
	Lifetime     int     `yaml:"lifetime"` // Frames before an unclaimed pickup vanishes
	Inset        float64 `yaml:"inset"`    // Distance from edges for spawn positions
	ScoreBonus   int     `yaml:"score_bonus"`
	BombBonus    int     `yaml:"bomb_bonus"`
	SlowDuration int     `yaml:"slow_duration"`
	SlowModifier float64 `yaml:"slow_modifier"`
}

// DifficultyConfig defines the obstacle spawn schedule. The spawn interval
// in frames is max(MinRate, BaseRate - score/ScoreDivisor).
type DifficultyConfig struct {
	Enabled      bool `yaml:"enabled"` // When false the interval stays at BaseRate
	BaseRate     int  `yaml:"base_rate"`
	MinRate      int  `yaml:"min_rate"`
	ScoreDivisor int  `yaml:"score_divisor"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty strings
// return "" which means "keep the config file's schedule".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
