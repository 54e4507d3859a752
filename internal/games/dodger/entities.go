package dodger

import "github.com/vovakirdan/tui-dodger/internal/core"

// Player is the avatar steered toward the pointer.
type Player struct {
	Pos        core.Vec
	Radius     float64
	ColorIndex int // Index into Palette
}

// Bounds returns the collision box of the player.
func (p Player) Bounds() core.Rect {
	return core.RectAround(p.Pos, p.Radius)
}

// Obstacle is a disposable hazard that seeks the player and is dropped once
// it drifts far enough off the playfield.
type Obstacle struct {
	Pos    core.Vec
	Radius float64
	Speed  float64
	Color  core.Color
}

// Bounds returns the collision box of the obstacle.
func (o Obstacle) Bounds() core.Rect {
	return core.RectAround(o.Pos, o.Radius)
}

// Tracker is a persistent hazard with noisy pursuit. It never leaves on its
// own; only a hit on the player removes it.
type Tracker struct {
	Pos      core.Vec
	Radius   float64
	Speed    float64
	Strength float64 // Pursuit aggressiveness in [MinStrength, MaxStrength)
}

// Bounds returns the collision box of the tracker.
func (t Tracker) Bounds() core.Rect {
	return core.RectAround(t.Pos, t.Radius)
}

// PowerUpKind selects the effect of a pickup.
type PowerUpKind int

const (
	PowerUpScore  PowerUpKind = iota // Flat score bonus
	PowerUpShield                    // One extra life, capped
	PowerUpBomb                      // Clears obstacles, small score bonus
	PowerUpSlow                      // Halves obstacle speed for a while
	powerUpKindCount
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpScore:
		return "Score"
	case PowerUpShield:
		return "Shield"
	case PowerUpBomb:
		return "Bomb"
	case PowerUpSlow:
		return "Slow"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpScore:
		return '$'
	case PowerUpShield:
		return '♥'
	case PowerUpBomb:
		return '✸'
	case PowerUpSlow:
		return '⧗'
	default:
		return '?'
	}
}

// Color returns the display color for a power-up kind.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpScore:
		return core.ColorGold
	case PowerUpShield:
		return core.ColorCyan
	case PowerUpBomb:
		return core.ColorMagenta
	case PowerUpSlow:
		return core.ColorBlue
	default:
		return core.ColorDefault
	}
}

// PowerUp is a timed pickup.
type PowerUp struct {
	Pos      core.Vec
	Radius   float64
	Kind     PowerUpKind
	Lifetime int // Frames left before it vanishes unclaimed
}

// Bounds returns the collision box of the power-up.
func (p PowerUp) Bounds() core.Rect {
	return core.RectAround(p.Pos, p.Radius)
}
