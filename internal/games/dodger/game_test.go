package dodger

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/storage"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(t *testing.T) (*Game, *storage.Ranking) {
	t.Helper()
	board := storage.NewRanking(nil, nil)
	g := New(config.DefaultDodgerConfig(), board)
	g.Reset(testRuntime(42))
	return g, board
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestGameIdentity(t *testing.T) {
	g := New(config.DefaultDodgerConfig(), nil)

	if g.ID() != "dodger" {
		t.Errorf("ID = %q", g.ID())
	}
	if g.Title() != "AI Dodger" {
		t.Errorf("Title = %q", g.Title())
	}
}

func TestGamePauseAndResume(t *testing.T) {
	g, _ := newTestGame(t)

	res := step(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("pause action did not pause")
	}
	score := res.State.Score

	for i := 0; i < 10; i++ {
		res = step(g)
	}
	if res.State.Score != score {
		t.Errorf("score moved while paused: %d -> %d", score, res.State.Score)
	}

	res = step(g, core.ActionPause)
	if res.State.Paused {
		t.Error("second pause action did not resume")
	}
}

func TestGameColorMenuActions(t *testing.T) {
	g, _ := newTestGame(t)

	res := step(g, core.ActionColorMenu)
	if !res.State.Overlay {
		t.Fatal("color menu not reported as overlay")
	}
	step(g, core.ActionRight)
	step(g, core.ActionRight)
	step(g, core.ActionLeft)
	step(g, core.ActionConfirm)

	if g.Session().ColorIndex() != 1 {
		t.Errorf("color = %d, want 1", g.Session().ColorIndex())
	}
	if g.Session().Mode() != ModeActive {
		t.Errorf("mode = %v, want Active", g.Session().Mode())
	}

	step(g, core.ActionColorMenu)
	step(g, core.ActionRight)
	step(g, core.ActionBack)
	if g.Session().ColorIndex() != 1 {
		t.Errorf("color = %d after Back, want 1", g.Session().ColorIndex())
	}
}

func TestGameRankingActions(t *testing.T) {
	g, _ := newTestGame(t)

	step(g, core.ActionRanking)
	step(g, core.ActionDown)
	step(g, core.ActionDown)
	step(g, core.ActionUp)
	if got := g.Session().Snapshot().RankingScroll; got != 1 {
		t.Errorf("scroll = %d, want 1", got)
	}

	res := step(g, core.ActionBack)
	if res.State.Overlay || g.Session().Mode() != ModeActive {
		t.Errorf("Back did not close ranking, mode %v", g.Session().Mode())
	}
}

func TestGameArrowsNudgeTarget(t *testing.T) {
	g, _ := newTestGame(t)

	step(g, core.ActionLeft)
	step(g, core.ActionUp)

	if got, want := g.Session().Snapshot().Target, core.V(360, 260); got != want {
		t.Errorf("target = %v, want %v", got, want)
	}
}

func TestGamePointerSetsTarget(t *testing.T) {
	g, _ := newTestGame(t)

	in := core.NewInputFrame()
	in.SetPointer(0, 1)
	g.Step(in)

	target := g.Session().Snapshot().Target
	if target.X > 10 || target.Y > 30 {
		t.Errorf("target = %v, want near the top-left corner", target)
	}
}

func TestGamePointerIgnoredWhilePaused(t *testing.T) {
	g, _ := newTestGame(t)
	step(g, core.ActionPause)

	in := core.NewInputFrame()
	in.SetPointer(0, 1)
	g.Step(in)

	if got := g.Session().Snapshot().Target; got != core.V(400, 300) {
		t.Errorf("target = %v, want unchanged center", got)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := newViewport(80, 24, 800, 600)

	for _, cell := range [][2]int{{0, 1}, {10, 5}, {79, 22}, {40, 12}} {
		x, y := v.toScreen(v.toWorld(cell[0], cell[1]))
		if x != cell[0] || y != cell[1] {
			t.Errorf("cell %v mapped back to (%d, %d)", cell, x, y)
		}
	}
}

func TestGameResetKeepsColor(t *testing.T) {
	g, _ := newTestGame(t)
	step(g, core.ActionColorMenu)
	step(g, core.ActionRight)
	step(g, core.ActionConfirm)

	g.Reset(testRuntime(43))

	if g.Session().ColorIndex() != 1 {
		t.Errorf("color = %d after reset, want 1", g.Session().ColorIndex())
	}
	if g.Session().Snapshot().PendingColor != 1 {
		t.Errorf("pending color not carried over")
	}
}

func TestGameOverRecordsToBoard(t *testing.T) {
	g, board := newTestGame(t)
	s := g.Session()
	s.lives = 1
	s.score = 777
	s.pools.trackers = append(s.pools.trackers, Tracker{Pos: s.player.Pos, Radius: 20})

	res := step(g)

	if !res.State.GameOver || res.State.Lives != 0 {
		t.Fatalf("state = %+v, want game over with 0 lives", res.State)
	}
	if board.Count() != 1 || board.Highest() != 777 {
		t.Errorf("board count=%d highest=%d, want 1 and 777", board.Count(), board.Highest())
	}

	res = step(g, core.ActionRestart)
	if res.State.GameOver || res.State.Lives != 3 {
		t.Errorf("restart state = %+v", res.State)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() core.GameState {
		g := New(config.DefaultDodgerConfig(), nil)
		g.Reset(testRuntime(99))
		var st core.GameState
		for i := 0; i < 1500; i++ {
			in := core.NewInputFrame()
			in.SetPointer(i%80, 1+(i/3)%22)
			st = g.Step(in).State
			if st.GameOver {
				break
			}
		}
		return st
	}

	if a, b := run(), run(); a != b {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
}

func TestRenderHUD(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Green") {
		t.Errorf("HUD row missing color name: %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(23), "Pause") {
		t.Errorf("hint row = %q", screen.Row(23))
	}
	// The player sits at the center of the field.
	if c := screen.GetCell(40, 12); c.Rune != '█' || c.Color != Palette[0].Color {
		t.Errorf("center cell = %+v, want player", c)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(30, 10)

	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small window not reported")
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(g *Game)
		expect string
	}{
		{"paused", func(g *Game) { step(g, core.ActionPause) }, "PAUSED"},
		{"color menu", func(g *Game) { step(g, core.ActionColorMenu) }, "CHOOSE YOUR COLOR"},
		{"empty ranking", func(g *Game) { step(g, core.ActionRanking) }, "No scores yet"},
		{"game over", func(g *Game) { g.Session().loseLives(3) }, "GAME OVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			tt.setup(g)
			screen := core.NewScreen(80, 24)

			g.Render(screen)

			if !strings.Contains(screen.String(), tt.expect) {
				t.Errorf("screen missing %q:\n%s", tt.expect, screen.String())
			}
		})
	}
}

func TestRenderRankingWindow(t *testing.T) {
	g, board := newTestGame(t)
	for i := 1; i <= 8; i++ {
		board.AddRecord(i*100, i%4)
	}

	step(g, core.ActionRanking)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Highest: 800", "Records: 8", "1-5 of 8", "800"} {
		if !strings.Contains(out, want) {
			t.Errorf("ranking missing %q", want)
		}
	}
	if strings.Contains(out, " 6.") {
		t.Error("ranking shows more than five rows")
	}

	for i := 0; i < 10; i++ {
		step(g, core.ActionDown)
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "4-8 of 8") {
		t.Error("scrolled window not clamped to the last page")
	}
}

func TestRenderGameOverRank(t *testing.T) {
	g, board := newTestGame(t)
	board.AddRecord(5000, 0)
	g.Session().score = 3000
	g.Session().loseLives(3)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "You ranked #2!") {
		t.Errorf("game over screen missing rank:\n%s", screen.String())
	}
}

// staticBoard is a Leaderboard with fixed contents.
type staticBoard struct {
	records []storage.Record
}

func (b *staticBoard) AddRecord(score, livesRemaining int) {}
func (b *staticBoard) TopN(n int) []storage.Record         { return b.records[:min(n, len(b.records))] }
func (b *staticBoard) Highest() int                        { return 100 }
func (b *staticBoard) Count() int                          { return len(b.records) }

func TestRenderRankingNegativeLives(t *testing.T) {
	board := &staticBoard{records: []storage.Record{{Score: 100, Lives: -1}}}
	g := New(config.DefaultDodgerConfig(), board)
	g.Reset(testRuntime(42))

	step(g, core.ActionRanking)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Records: 1") {
		t.Errorf("ranking not drawn:\n%s", screen.String())
	}
}

func TestRenderGameOverRankTied(t *testing.T) {
	g, board := newTestGame(t)
	board.AddRecord(3000, 1)
	board.AddRecord(3000, 2)
	g.Session().score = 3000
	g.Session().loseLives(3)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "You ranked #1!") {
		t.Errorf("tied run not announced at its best rank:\n%s", screen.String())
	}
}

func TestGameBackRequestsQuitOnlyWithoutOverlay(t *testing.T) {
	g, _ := newTestGame(t)

	if res := step(g, core.ActionColorMenu, core.ActionBack); res.Quit {
		t.Error("Back closing the color menu requested quit")
	}
	if g.Session().Mode() != ModeActive {
		t.Errorf("mode = %v, want Active", g.Session().Mode())
	}

	if res := step(g, core.ActionBack); !res.Quit {
		t.Error("Back with no overlay did not request quit")
	}
	if res := step(g, core.ActionPause, core.ActionBack); !res.Quit || !res.State.Paused {
		t.Errorf("Back while paused = %+v, want quit from Paused", res)
	}
}
