// Package tui provides the Bubble Tea integration for Fruit Dash.
// It owns the terminal loop, measures frame time, maps keys to intents and
// forwards audio cues; the game itself never sees Bubble Tea.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-dash/internal/core"
)

// MaxFrameDelta caps the real time handed to the game in one frame, so a
// stalled terminal does not fast-forward the run.
const MaxFrameDelta = 0.25

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, clamped to [0, MaxFrameDelta].
// The first frame (zero prev) has no elapsed time.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	return core.ClampF(now.Sub(prev).Seconds(), 0, MaxFrameDelta)
}
