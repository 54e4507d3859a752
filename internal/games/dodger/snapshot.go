package dodger

import "github.com/vovakirdan/tui-dodger/internal/core"

// Snapshot is a read-only copy of everything the renderer needs for one
// frame. Slices are copies; mutating them does not affect the session.
type Snapshot struct {
	World     core.Vec // Playfield size
	Player    Player
	Target    core.Vec
	Obstacles []Obstacle
	Trackers  []Tracker
	PowerUps  []PowerUp

	Score         int
	Lives         int
	MaxLives      int
	SlowRemaining int
	SpawnRate     int
	Danger        float64 // Spawn-rate progression in [0, 1]
	Frame         int

	Mode          Mode
	ReturnMode    Mode // What the ranking overlay sits on top of
	PendingColor  int
	RankingScroll int
	BlinkOn       bool // Pause title visible this frame
	MenuPulse     int
	RankingFlash  bool // Ranking frame highlight on this frame
}

// Slowed reports whether the slow-time effect is active.
func (s Snapshot) Slowed() bool {
	return s.SlowRemaining > 0
}

// Snapshot copies the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		World:     s.World(),
		Player:    s.player,
		Target:    s.target,
		Obstacles: append([]Obstacle(nil), s.pools.Obstacles()...),
		Trackers:  append([]Tracker(nil), s.pools.Trackers()...),
		PowerUps:  append([]PowerUp(nil), s.pools.PowerUps()...),

		Score:         s.score,
		Lives:         s.lives,
		MaxLives:      s.cfg.Player.MaxLives,
		SlowRemaining: s.slowRemaining,
		SpawnRate:     s.spawnRate,
		Danger:        s.difficulty.Level(s.score),
		Frame:         s.clock.Frame,

		Mode:          s.mode,
		ReturnMode:    s.rankingReturn,
		PendingColor:  s.pendingColor,
		RankingScroll: s.rankingScroll,
		BlinkOn:       s.clock.PauseBlink.On(),
		MenuPulse:     s.clock.MenuPulse.Frames(),
		RankingFlash:  s.clock.RankingFrame.On(),
	}
}
