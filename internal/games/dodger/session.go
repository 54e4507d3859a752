package dodger

import (
	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
)

// Mode is the session state. Only ModeActive advances the simulation.
type Mode int

const (
	ModeActive Mode = iota
	ModePaused
	ModeColorMenu
	ModeRanking
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeActive:
		return "Active"
	case ModePaused:
		return "Paused"
	case ModeColorMenu:
		return "ColorMenu"
	case ModeRanking:
		return "Ranking"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Intent is a discrete request from the input layer. Intents that the
// current mode does not allow are ignored.
type Intent int

const (
	IntentTogglePause Intent = iota
	IntentRestart
	IntentToggleColorMenu
	IntentToggleRanking
	IntentConfirmColor
	IntentCancelColor
	IntentColorPrev
	IntentColorNext
	IntentRankingScrollUp
	IntentRankingScrollDown
)

// ScoreRecorder receives the final result of a run. It is called once per
// run, synchronously, at the transition to game over.
type ScoreRecorder interface {
	AddRecord(score, livesRemaining int)
}

// Session owns the whole simulation state of one run: pools, timers, score,
// lives and the mode state machine.
type Session struct {
	cfg        config.DodgerConfig
	difficulty *config.DifficultyManager
	pools      *Pools
	clock      Clock
	recorder   ScoreRecorder

	player        Player
	target        core.Vec
	score         int
	lives         int
	slowRemaining int
	spawnRate     int
	recorded      bool

	mode          Mode
	rankingReturn Mode // Mode to go back to when the ranking closes
	pendingColor  int
	rankingScroll int
}

// NewSession creates a session ready to play. recorder may be nil.
func NewSession(cfg config.DodgerConfig, seed int64, recorder ScoreRecorder) *Session {
	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		recorder:   recorder,
	}
	s.pools = NewPools(&s.cfg, seed)
	s.reset()
	return s
}

// reset puts every counter and pool back to its creation-time value. The
// confirmed player color survives.
func (s *Session) reset() {
	center := core.V(s.cfg.World.Width/2, s.cfg.World.Height/2)

	s.pools.Clear()
	s.clock = NewClock()
	s.player = Player{
		Pos:        center,
		Radius:     s.cfg.Player.Radius,
		ColorIndex: s.player.ColorIndex,
	}
	s.target = center
	s.score = 0
	s.lives = s.cfg.Player.StartLives
	s.slowRemaining = 0
	s.spawnRate = s.difficulty.SpawnRate(0)
	s.recorded = false
	s.mode = ModeActive
	s.rankingReturn = ModeActive
	s.pendingColor = s.player.ColorIndex
	s.rankingScroll = 0
}

// Apply feeds one intent into the state machine and reports whether it was
// accepted.
func (s *Session) Apply(in Intent) bool {
	switch in {
	case IntentTogglePause:
		switch s.mode {
		case ModeActive:
			s.mode = ModePaused
			s.clock.PauseBlink.Reset()
			return true
		case ModePaused:
			s.mode = ModeActive
			return true
		}

	case IntentRestart:
		if s.mode == ModeGameOver || s.mode == ModePaused {
			s.reset()
			return true
		}

	case IntentToggleColorMenu:
		switch s.mode {
		case ModeActive:
			s.mode = ModeColorMenu
			s.pendingColor = s.player.ColorIndex
			s.clock.MenuPulse.Reset()
			return true
		case ModeColorMenu:
			return s.Apply(IntentCancelColor)
		}

	case IntentConfirmColor:
		if s.mode == ModeColorMenu {
			s.player.ColorIndex = s.pendingColor
			s.mode = ModeActive
			return true
		}

	case IntentCancelColor:
		if s.mode == ModeColorMenu {
			s.pendingColor = s.player.ColorIndex
			s.mode = ModeActive
			return true
		}

	case IntentColorPrev, IntentColorNext:
		if s.mode == ModeColorMenu {
			step := 1
			if in == IntentColorPrev {
				step = -1
			}
			s.pendingColor = wrapColor(s.pendingColor + step)
			return true
		}

	case IntentToggleRanking:
		switch s.mode {
		case ModeActive, ModePaused, ModeGameOver:
			s.rankingReturn = s.mode
			s.mode = ModeRanking
			s.rankingScroll = 0
			s.clock.RankingFrame.Reset()
			return true
		case ModeRanking:
			s.mode = s.rankingReturn
			return true
		}

	case IntentRankingScrollUp:
		if s.mode == ModeRanking {
			s.rankingScroll = max(0, s.rankingScroll-1)
			return true
		}

	case IntentRankingScrollDown:
		if s.mode == ModeRanking {
			s.rankingScroll++
			return true
		}
	}

	return false
}

// SetTarget moves the point the player follows, clamped to the playfield.
func (s *Session) SetTarget(v core.Vec) {
	s.target = core.V(
		core.ClampF(v.X, 0, s.cfg.World.Width),
		core.ClampF(v.Y, 0, s.cfg.World.Height),
	)
}

// NudgeTarget shifts the follow point by d.
func (s *Session) NudgeTarget(d core.Vec) {
	s.SetTarget(s.target.Add(d))
}

// Update advances the session by one frame. Frozen modes only advance their
// own animation counters.
func (s *Session) Update() {
	switch s.mode {
	case ModeActive:
		s.step()
	case ModePaused:
		s.clock.PauseBlink.Tick()
	case ModeColorMenu:
		s.clock.MenuPulse.Tick()
	case ModeRanking:
		s.clock.RankingFrame.Tick()
	case ModeGameOver:
	}
}

// step runs one active frame: follow, spawn, move, age, collide, score.
func (s *Session) step() {
	s.movePlayer()
	s.clock.Tick()

	if s.clock.ObstacleSpawn.Due(s.spawnRate) {
		s.pools.SpawnObstacle()
		s.clock.ObstacleSpawn.Reset()

		// Trackers only join on the exact frame a scheduled spawn fires
		// with the score sitting on a milestone.
		if s.score%s.cfg.Trackers.Milestone == 0 {
			s.pools.SpawnTracker()
		}
	}

	if s.clock.PowerUpSpawn.Due(s.cfg.PowerUps.Interval) {
		s.pools.SpawnPowerUp()
		s.clock.PowerUpSpawn.Reset()
	}

	escaped := s.pools.MoveObstacles(s.player.Pos, s.slowRemaining > 0)
	s.addScore(escaped * s.cfg.Obstacles.EscapeScore)
	s.pools.MoveTrackers(s.player.Pos)
	s.pools.AgePowerUps()

	s.resolveCollisions()
	if s.mode == ModeGameOver {
		return
	}

	s.addScore(1)
	if s.slowRemaining > 0 {
		s.slowRemaining--
	}
	s.spawnRate = s.difficulty.SpawnRate(s.score)
}

// movePlayer eases the player toward the target, faster when further away.
func (s *Session) movePlayer() {
	dist := s.player.Pos.Dist(s.target)
	if dist == 0 {
		return
	}
	speed := min(s.cfg.Player.MaxSpeed, dist/s.cfg.Player.FollowDivisor)
	s.player.Pos = s.player.Pos.Add(s.player.Pos.Toward(s.target, speed, s.cfg.World.MinDistance))
}

// resolveCollisions sweeps the pools and applies every hit and pickup.
// Once the run ends, remaining pickups from the same sweep are discarded.
func (s *Session) resolveCollisions() {
	hits := collide(s.player.Bounds(), s.pools)

	for i := 0; i < hits.obstacleHits; i++ {
		s.loseLives(s.cfg.Obstacles.LifeCost)
	}
	for i := 0; i < hits.trackerHits; i++ {
		s.loseLives(s.cfg.Trackers.LifeCost)
	}
	for _, kind := range hits.pickups {
		if s.mode == ModeGameOver {
			break
		}
		s.applyPowerUp(kind)
	}
}

// loseLives takes n lives and ends the run when none are left. The final
// score is recorded exactly once.
func (s *Session) loseLives(n int) {
	s.lives -= n
	if s.lives > 0 {
		return
	}
	s.lives = 0
	if s.mode == ModeGameOver {
		return
	}
	s.mode = ModeGameOver
	if !s.recorded && s.recorder != nil {
		s.recorder.AddRecord(s.score, s.lives)
	}
	s.recorded = true
}

// applyPowerUp applies the effect of a picked-up power-up.
func (s *Session) applyPowerUp(kind PowerUpKind) {
	pc := s.cfg.PowerUps
	switch kind {
	case PowerUpScore:
		s.addScore(pc.ScoreBonus)
	case PowerUpShield:
		s.lives = min(s.cfg.Player.MaxLives, s.lives+1)
	case PowerUpBomb:
		s.pools.ClearObstacles()
		s.addScore(pc.BombBonus)
	case PowerUpSlow:
		s.slowRemaining = pc.SlowDuration
	}
}

// addScore adds a non-negative amount; score never decreases.
func (s *Session) addScore(n int) {
	if n > 0 {
		s.score += n
	}
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Lives returns the lives remaining.
func (s *Session) Lives() int {
	return s.lives
}

// ColorIndex returns the confirmed player color.
func (s *Session) ColorIndex() int {
	return s.player.ColorIndex
}

// World returns the playfield size.
func (s *Session) World() core.Vec {
	return core.V(s.cfg.World.Width, s.cfg.World.Height)
}
