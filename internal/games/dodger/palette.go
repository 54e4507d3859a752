package dodger

import "github.com/vovakirdan/tui-dodger/internal/core"

// PaletteEntry is one selectable player color.
type PaletteEntry struct {
	Name  string
	Color core.Color
}

// Palette is the fixed set of player colors offered by the color menu.
var Palette = []PaletteEntry{
	{Name: "Green", Color: 48},
	{Name: "Blue", Color: 75},
	{Name: "Pink", Color: 211},
	{Name: "Yellow", Color: 220},
	{Name: "Purple", Color: 135},
	{Name: "Cyan", Color: 51},
}

// obstacleColors is the reddish band obstacles draw their color from.
var obstacleColors = []core.Color{124, 160, 161, 166, 167, 196, 197, 202, 203}

// wrapColor maps any integer onto a valid palette index.
func wrapColor(i int) int {
	n := len(Palette)
	return ((i % n) + n) % n
}
