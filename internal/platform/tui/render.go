package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodger/internal/core"
)

// ScreenRenderer turns a Screen buffer into a styled string. Styles are
// built once per lipgloss renderer, so each SSH session gets colors that
// match its own terminal.
type ScreenRenderer struct {
	styles [256]lipgloss.Style
}

// NewScreenRenderer builds the style table. A nil renderer uses the
// process's default output.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	sr := &ScreenRenderer{}
	for i := range sr.styles {
		c := core.Color(i)
		if c.IsDefault() {
			sr.styles[i] = r.NewStyle()
			continue
		}
		sr.styles[i] = r.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(i)))
	}
	return sr
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(sr.styles[startColor].Render(run.String()))
		}
	}
	return sb.String()
}
