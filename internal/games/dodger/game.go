// Package dodger implements an arcade dodging game: the player avoids
// obstacles that home in from the screen edges and AI trackers that hunt
// with noisy pursuit, while collecting timed power-ups.
package dodger

import (
	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/storage"
)

// nudgeStep is how far one arrow key press moves the follow target.
const nudgeStep = 40.0

// Leaderboard is the score ledger the game records into and shows in its
// ranking overlay.
type Leaderboard interface {
	ScoreRecorder
	TopN(n int) []storage.Record
	Highest() int
	Count() int
}

// Game adapts a Session to the platform loop: it turns platform actions
// into intents, pointer positions into follow targets, and draws snapshots.
type Game struct {
	cfg     config.DodgerConfig
	board   Leaderboard
	session *Session
	runtime core.RuntimeConfig
	view    viewport
}

// New creates a dodger game. A nil board keeps scores in memory only.
func New(cfg config.DodgerConfig, board Leaderboard) *Game {
	if board == nil {
		board = storage.NewRanking(nil, nil)
	}
	return &Game{cfg: cfg, board: board}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "AI Dodger"
}

// Reset starts a fresh session. The confirmed player color carries over.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.view = newViewport(runtime.ScreenW, runtime.ScreenH, g.cfg.World.Width, g.cfg.World.Height)

	color := 0
	if g.session != nil {
		color = g.session.ColorIndex()
	}
	g.session = NewSession(g.cfg, runtime.Seed, g.board)
	g.session.player.ColorIndex = color
	g.session.pendingColor = color
}

// Resize adapts the world-to-screen mapping without touching the run.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.view = newViewport(width, height, g.cfg.World.Width, g.cfg.World.Height)
}

// Step applies this frame's input and advances the simulation one tick.
// Back with no overlay open requests quit; the frame stops there.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions() {
		if g.handleAction(a) {
			return core.StepResult{State: g.State(), Quit: true}
		}
	}

	if p, ok := in.Pointer(); ok && g.session.Mode() == ModeActive {
		g.session.SetTarget(g.view.toWorld(p.X, p.Y))
	}

	g.session.Update()
	return core.StepResult{State: g.State()}
}

// handleAction interprets one action in the light of the current mode and
// reports whether it is a quit request.
func (g *Game) handleAction(a core.Action) bool {
	s := g.session
	mode := s.Mode()

	switch a {
	case core.ActionPause:
		s.Apply(IntentTogglePause)
	case core.ActionRestart:
		s.Apply(IntentRestart)
	case core.ActionColorMenu:
		s.Apply(IntentToggleColorMenu)
	case core.ActionRanking:
		s.Apply(IntentToggleRanking)
	case core.ActionConfirm:
		s.Apply(IntentConfirmColor)
	case core.ActionBack:
		switch mode {
		case ModeColorMenu:
			s.Apply(IntentCancelColor)
		case ModeRanking:
			s.Apply(IntentToggleRanking)
		default:
			return true
		}
	case core.ActionLeft, core.ActionRight:
		if mode == ModeColorMenu {
			if a == core.ActionLeft {
				s.Apply(IntentColorPrev)
			} else {
				s.Apply(IntentColorNext)
			}
		} else if mode == ModeActive {
			dx := nudgeStep
			if a == core.ActionLeft {
				dx = -dx
			}
			s.NudgeTarget(core.V(dx, 0))
		}
	case core.ActionUp, core.ActionDown:
		if mode == ModeRanking {
			if a == core.ActionUp {
				s.Apply(IntentRankingScrollUp)
			} else {
				s.Apply(IntentRankingScrollDown)
			}
		} else if mode == ModeActive {
			dy := nudgeStep
			if a == core.ActionUp {
				dy = -dy
			}
			s.NudgeTarget(core.V(0, dy))
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	mode := g.session.Mode()
	return core.GameState{
		Score:    g.session.Score(),
		Lives:    g.session.Lives(),
		GameOver: mode == ModeGameOver,
		Paused:   mode == ModePaused,
		Overlay:  mode == ModeColorMenu || mode == ModeRanking,
	}
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// viewport maps world coordinates to screen cells. Row 0 holds the HUD and
// the last row the hint line; the playfield fills the rows between.
type viewport struct {
	screenW, screenH int
	top              int
	sx, sy           float64
}

func newViewport(screenW, screenH int, worldW, worldH float64) viewport {
	fieldH := max(screenH-2, 1)
	return viewport{
		screenW: screenW,
		screenH: screenH,
		top:     1,
		sx:      float64(max(screenW, 1)) / worldW,
		sy:      float64(fieldH) / worldH,
	}
}

// toScreen returns the cell containing a world point.
func (v viewport) toScreen(p core.Vec) (int, int) {
	return floorInt(p.X * v.sx), v.top + floorInt(p.Y*v.sy)
}

// toWorld returns the world point at the center of a cell.
func (v viewport) toWorld(col, row int) core.Vec {
	return core.V((float64(col)+0.5)/v.sx, (float64(row-v.top)+0.5)/v.sy)
}

func floorInt(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}
