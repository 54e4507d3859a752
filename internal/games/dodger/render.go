package dodger

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/storage"
)

const (
	minScreenW = 60
	minScreenH = 16

	// rankingRows is how many ledger rows the ranking overlay shows at once.
	rankingRows = 5
	// gameOverRankLimit is the deepest position announced on game over.
	gameOverRankLimit = 5
)

// Render draws the current frame to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}
	if dst.Width() != g.view.screenW || dst.Height() != g.view.screenH {
		g.Resize(dst.Width(), dst.Height())
	}

	snap := g.session.Snapshot()

	g.renderHUD(dst, snap)
	g.renderPowerUps(dst, snap)
	g.renderObstacles(dst, snap)
	g.renderTrackers(dst, snap)
	g.renderPlayer(dst, snap)
	g.renderHints(dst, snap)
	g.renderOverlay(dst, snap)
}

// renderHUD draws score, lives, trackers and color name on the top row.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawTextColored(1, 0, left, core.ColorWhite)

	// Five-segment gauge of how close spawning is to its fastest rate.
	filled := int(snap.Danger*5 + 0.5)
	gauge := strings.Repeat("▮", filled) + strings.Repeat("▯", 5-filled)
	dst.DrawTextColored(len(left)+3, 0, gauge, core.ColorOrange)

	hearts := strings.Repeat("♥", snap.Lives) + strings.Repeat("♡", max(snap.MaxLives-snap.Lives, 0))
	dst.DrawTextCenteredColored(0, "Lives: "+hearts, core.ColorRed)

	right := fmt.Sprintf("AI: %d  %s", len(snap.Trackers), Palette[snap.Player.ColorIndex].Name)
	if snap.Slowed() {
		right = fmt.Sprintf("SLOW %d  %s", snap.SlowRemaining, right)
	}
	dst.DrawText(dst.Width()-len([]rune(right))-1, 0, right)
}

// renderHints draws the control line at the bottom.
func (g *Game) renderHints(dst *core.Screen, snap Snapshot) {
	var hint string
	switch snap.Mode {
	case ModeActive:
		hint = "Mouse/Arrows: Move  P: Pause  C: Color  T: Ranking  Q: Quit"
	case ModePaused:
		hint = "P: Resume  R: Restart  T: Ranking  Q: Quit"
	case ModeColorMenu:
		hint = "←/→: Choose  Enter: Confirm  Esc: Cancel"
	case ModeRanking:
		hint = "↑/↓: Scroll  T/Esc: Close"
	case ModeGameOver:
		hint = "R: Restart  T: Ranking  Q: Quit"
	}
	dst.DrawTextCenteredColored(dst.Height()-1, hint, core.ColorGray)
}

func (g *Game) renderPlayer(dst *core.Screen, snap Snapshot) {
	p := snap.Player
	if snap.Slowed() {
		g.drawDisc(dst, p.Pos, p.Radius*1.3, '░', core.ColorSlowTimeRim)
	}
	g.drawDisc(dst, p.Pos, p.Radius, '█', Palette[p.ColorIndex].Color)
}

func (g *Game) renderObstacles(dst *core.Screen, snap Snapshot) {
	for _, o := range snap.Obstacles {
		g.drawDisc(dst, o.Pos, o.Radius, '▓', o.Color)
	}
}

func (g *Game) renderTrackers(dst *core.Screen, snap Snapshot) {
	for _, t := range snap.Trackers {
		g.drawDisc(dst, t.Pos, t.Radius, '▒', core.ColorOrange)
		x, y := g.view.toScreen(t.Pos)
		g.setField(dst, x, y, '◆', core.ColorYellow)
	}
}

func (g *Game) renderPowerUps(dst *core.Screen, snap Snapshot) {
	for _, p := range snap.PowerUps {
		x, y := g.view.toScreen(p.Pos)
		g.setField(dst, x, y, p.Kind.Glyph(), p.Kind.Color())
	}
}

// drawDisc fills the cells whose centers fall inside the ellipse a world
// circle becomes under the viewport scale. The center cell is always drawn.
func (g *Game) drawDisc(dst *core.Screen, center core.Vec, radius float64, r rune, c core.Color) {
	cx, cy := g.view.toScreen(center)
	g.setField(dst, cx, cy, r, c)

	rx := radius * g.view.sx
	ry := radius * g.view.sy
	if rx <= 0 || ry <= 0 {
		return
	}

	px := center.X * g.view.sx
	py := center.Y*g.view.sy + float64(g.view.top)
	for y := floorInt(py - ry); y <= floorInt(py+ry); y++ {
		for x := floorInt(px - rx); x <= floorInt(px+rx); x++ {
			dx := (float64(x) + 0.5 - px) / rx
			dy := (float64(y) + 0.5 - py) / ry
			if dx*dx+dy*dy <= 1 {
				g.setField(dst, x, y, r, c)
			}
		}
	}
}

// setField writes a cell only if it lies inside the playfield rows.
func (g *Game) setField(dst *core.Screen, x, y int, r rune, c core.Color) {
	if y < g.view.top || y >= dst.Height()-1 {
		return
	}
	dst.SetColored(x, y, r, c)
}

// renderOverlay draws the box for whichever frozen mode is active.
func (g *Game) renderOverlay(dst *core.Screen, snap Snapshot) {
	switch snap.Mode {
	case ModePaused:
		title := ""
		if snap.BlinkOn {
			title = "PAUSED"
		}
		drawCenteredBox(dst, core.ColorLightBlue, title, "Press P to resume")

	case ModeColorMenu:
		g.renderColorMenu(dst, snap)

	case ModeRanking:
		g.renderRanking(dst, snap)

	case ModeGameOver:
		lines := []string{"GAME OVER", "", fmt.Sprintf("Final score: %d", snap.Score)}
		if rank := g.finalRank(snap.Score); rank > 0 {
			lines = append(lines, fmt.Sprintf("You ranked #%d!", rank))
		}
		lines = append(lines, "", "Press R to restart")
		drawCenteredBox(dst, core.ColorRed, lines...)
	}
}

// renderColorMenu draws the palette with the pending choice pulsing.
func (g *Game) renderColorMenu(dst *core.Screen, snap Snapshot) {
	const swatchW = 9

	boxW := swatchW*len(Palette) + 4
	boxH := 9
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorPaleYellow)
	dst.DrawTextCenteredColored(boxY+1, "CHOOSE YOUR COLOR", core.ColorPaleYellow)

	// The preview swells and shrinks with the pulse counter.
	pulse := snap.MenuPulse % animationPeriod
	if pulse >= animationPeriod/2 {
		pulse = animationPeriod - pulse
	}
	previewW := 3 + pulse/6
	pending := Palette[snap.PendingColor]
	dst.DrawTextCenteredColored(boxY+3, strings.Repeat("█", previewW), pending.Color)

	for i, entry := range Palette {
		x := boxX + 2 + i*swatchW
		dst.DrawTextColored(x+2, boxY+5, "███", entry.Color)
		label := entry.Name
		if i == snap.PendingColor {
			label = "[" + label + "]"
		}
		dst.DrawTextColored(x+(swatchW-len(label))/2, boxY+6, label, entry.Color)
	}

	dst.DrawTextCenteredColored(boxY+7, "Selected: "+pending.Name, core.ColorWhite)
}

// renderRanking draws a window of the ledger starting at the scroll offset.
func (g *Game) renderRanking(dst *core.Screen, snap Snapshot) {
	records := g.board.TopN(storage.MaxRecords)
	highest := g.board.Highest()

	boxW := 44
	boxH := rankingRows + 8
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	frame := core.ColorGold
	if !snap.RankingFlash {
		frame = core.ColorOrange
	}
	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, frame)
	dst.DrawTextCenteredColored(boxY+1, "RANKING", core.ColorGold)
	dst.DrawTextCenteredColored(boxY+2,
		fmt.Sprintf("Highest: %d   Records: %d", highest, g.board.Count()), core.ColorWhite)
	dst.DrawHLine(boxX+1, boxY+3, boxW-2, '─', core.ColorDimGray)

	if len(records) == 0 {
		dst.DrawTextCenteredColored(boxY+boxH/2, "No scores yet", core.ColorGray)
		return
	}

	start := min(snap.RankingScroll, max(len(records)-rankingRows, 0))
	end := min(start+rankingRows, len(records))
	for i := start; i < end; i++ {
		rec := records[i]
		c := core.ColorDefault
		if rec.Score == highest {
			c = core.ColorGold
		}
		line := fmt.Sprintf("%2d. %6d  %s  %s",
			i+1, rec.Score, rec.Date.Format("01-02 15:04"), strings.Repeat("♥", max(rec.Lives, 0)))
		dst.DrawTextColored(boxX+3, boxY+4+i-start, line, c)
	}

	if len(records) > rankingRows {
		hint := fmt.Sprintf("%d-%d of %d", start+1, end, len(records))
		dst.DrawTextCenteredColored(boxY+boxH-2, hint, core.ColorDimGray)
	}
}

// finalRank returns the best 1-based ledger position holding a finished
// run's score, or 0 if it did not make the announced range.
func (g *Game) finalRank(score int) int {
	for i, rec := range g.board.TopN(gameOverRankLimit) {
		if rec.Score == score {
			return i + 1
		}
	}
	return 0
}

// drawCenteredBox draws a bordered box with the lines centered in it.
func drawCenteredBox(dst *core.Screen, c core.Color, lines ...string) {
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 6
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)
	for i, l := range lines {
		dst.DrawTextCenteredColored(boxY+1+i, l, c)
	}
}
