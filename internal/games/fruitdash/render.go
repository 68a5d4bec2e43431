package fruitdash

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/fruit-dash/internal/core"
	"github.com/vovakirdan/fruit-dash/internal/grid"
)

const (
	hudHeight = 2 // title line and status line
	boardTop  = hudHeight + 1
)

// Visual characters for rendering
const (
	EmptyChar  = '·'
	FruitChar  = '♥'
	SlowChar   = '♣'
	MagnetChar = 'U'
	BodyChar   = '■'
)

var pandaChars = map[grid.Dir]rune{
	grid.East:  '►',
	grid.West:  '◄',
	grid.North: '▲',
	grid.South: '▼',
}

// Layout returns the viewport of the board for a screen of width screenW.
func Layout(g grid.Geometry, screenW, cellW int) grid.Viewport {
	return grid.Fit(g, screenW, boardTop, cellW, 1)
}

// MinScreenSize returns the smallest screen that shows the whole board.
func MinScreenSize(g grid.Geometry, cellW int) (w, h int) {
	return g.W*cellW + 2, boardTop + g.H + 1
}

// Render draws a snapshot into dst. cellW is the number of columns per grid cell.
func Render(dst *core.Screen, s Snapshot, cellW int) {
	dst.Clear()
	renderHUD(dst, s)

	vp := Layout(s.Grid, dst.Width(), cellW)
	if !vp.Fits(dst.Width(), dst.Height()) {
		w, h := MinScreenSize(s.Grid, cellW)
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()))
		return
	}

	renderBoard(dst, vp, s)

	switch s.Phase {
	case PhaseMenu:
		renderOverlay(dst, "PRESS ENTER", "TAB: wrap | M: mode | arrows/WASD: move")
	case PhaseCountdown:
		renderOverlay(dst, strconv.Itoa(s.Countdown), "get ready")
	}
}

// renderHUD draws the title and status lines plus the separator.
func renderHUD(dst *core.Screen, s Snapshot) {
	info := fmt.Sprintf(" RED PANDA FRUIT DASH  MODE: %s | SPEED x%.2f", strings.ToUpper(s.Mode.String()), s.SpeedRatio)
	if s.Mode == ModeGrowth {
		info += fmt.Sprintf(" | LEN: %d", s.TargetLength)
	}
	dst.DrawText(0, 0, info, core.ColorInk)

	score := fmt.Sprintf("%05d ", s.Score)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(score), 0, score, core.ColorInk)

	// Status line: wrap flag, then active effects
	wrap := " WRAP OFF"
	if s.Wrap {
		wrap = " WRAP ON"
	}
	dst.DrawText(0, 1, wrap, core.ColorBlue)

	x := 12
	effect := func(label string, remaining float64, c core.Color) {
		if remaining <= 0 {
			return
		}
		text := fmt.Sprintf("%s:%0.1fs", label, remaining)
		dst.DrawText(x, 1, text, c)
		x += utf8.RuneCountInString(text) + 2
	}
	effect("Slow", s.Timers.Slow, core.ColorLeaf)
	effect("Mag", s.Timers.Magnet, core.ColorGold)
	effect("Turbo", s.Timers.Turbo, core.ColorAlert)
	if s.Combo > 0 && s.Timers.ComboWindow > 0 {
		dst.DrawText(x, 1, fmt.Sprintf("Combo x%d", s.Combo), core.ColorSeed)
	}
}

func renderBoard(dst *core.Screen, vp grid.Viewport, s Snapshot) {
	b := vp.Bounds()
	dst.DrawBox(core.NewRect(b.X-1, b.Y-1, b.W+2, b.H+2), core.ColorGrid)

	for _, c := range s.Grid.All() {
		x, y := vp.ToScreen(c)
		dst.SetColor(x, y, EmptyChar, core.ColorGrid)
	}

	if s.HasFruit {
		x, y := vp.ToScreen(s.Fruit)
		dst.SetColor(x, y, FruitChar, core.ColorStraw)
		if vp.CellW > 1 {
			dst.SetColor(x+1, y, '\'', core.ColorLeaf)
		}
	}

	if s.HasPowerUp {
		x, y := vp.ToScreen(s.PowerUp.Cell)
		switch s.PowerUp.Kind {
		case PowerSlow:
			dst.SetColor(x, y, SlowChar, core.ColorLeaf)
		case PowerMagnet:
			dst.SetColor(x, y, MagnetChar, core.ColorGold)
		}
	}

	// Body fades from straw to leaf toward the tail; the head is the panda.
	if len(s.Body) > 1 {
		for i, c := range s.Body[1:] {
			col := core.ColorStraw
			if 2*(i+1) > len(s.Body) {
				col = core.ColorLeaf
			}
			x, y := vp.ToScreen(c)
			dst.SetColor(x, y, BodyChar, col)
		}
	}

	x, y := vp.ToScreen(s.Player.Cell)
	ch, ok := pandaChars[s.Player.Dir]
	if !ok {
		ch = '@'
	}
	dst.SetColor(x, y, ch, core.ColorPanda)
}

// renderOverlay draws a centered box with two lines of text.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorAlert)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorAlert)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDim)
}
