package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-dash/internal/core"
)

// colorStyles maps the game palette to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorInk:     lipgloss.NewStyle().Foreground(lipgloss.Color("223")).Bold(true),
	core.ColorGrid:    lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
	core.ColorPanda:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorStraw:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorSeed:    lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	core.ColorLeaf:    lipgloss.NewStyle().Foreground(lipgloss.Color("71")),
	core.ColorGold:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("104")),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
