package config

// DifficultyManager derives the obstacle spawn interval from the score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether the interval shrinks as score grows.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.ScoreDivisor > 0
}

// SpawnRate returns the number of frames between obstacle spawns at the
// given score: max(MinRate, BaseRate - score/ScoreDivisor). The result is
// never below 1.
func (d *DifficultyManager) SpawnRate(score int) int {
	rate := d.cfg.BaseRate
	if d.IsEnabled() && score > 0 {
		rate -= score / d.cfg.ScoreDivisor
	}
	return max(rate, d.cfg.MinRate, 1)
}

// Level returns progression toward the fastest interval in [0, 1].
func (d *DifficultyManager) Level(score int) float64 {
	span := d.cfg.BaseRate - d.cfg.MinRate
	if span <= 0 || !d.IsEnabled() {
		return 0
	}
	return clampF(float64(d.cfg.BaseRate-d.SpawnRate(score))/float64(span), 0, 1)
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return max(lo, min(hi, val))
}
