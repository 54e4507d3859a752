package core

// Color is a foreground color for a screen cell, expressed as an xterm
// 256-color palette index. Zero means the terminal's default foreground.
type Color uint8

// Named colors used by the HUD and overlays.
const (
	ColorDefault     Color = 0
	ColorRed         Color = 196
	ColorGreen       Color = 48
	ColorYellow      Color = 226
	ColorBlue        Color = 69
	ColorMagenta     Color = 207
	ColorCyan        Color = 51
	ColorWhite       Color = 231
	ColorOrange      Color = 214
	ColorGold        Color = 220
	ColorGray        Color = 245
	ColorDimGray     Color = 240
	ColorLightBlue   Color = 147
	ColorLightGreen  Color = 120
	ColorNightSky    Color = 60
	ColorPaleYellow  Color = 229
	ColorSlowTimeRim Color = 63
)

// IsDefault reports whether the color defers to the terminal foreground.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
