package fruitdash

import (
	"strings"
	"testing"

	"github.com/vovakirdan/fruit-dash/internal/core"
	"github.com/vovakirdan/fruit-dash/internal/registry"
)

func TestGameRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
		mode  Mode
	}{
		{"fruitdash", "Red Panda Fruit Dash", ModeSpeed},
		{"fruitdash_growth", "Red Panda Fruit Dash (Growth)", ModeGrowth},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			g, err := registry.Create(tc.id)
			if err != nil {
				t.Fatalf("registry.Create(%q) failed: %v", tc.id, err)
			}
			if g.ID() != tc.id || g.Title() != tc.title {
				t.Errorf("ID()=%q Title()=%q, expected %q %q", g.ID(), g.Title(), tc.id, tc.title)
			}

			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 32, Seed: 9})
			if got := g.(*Game).Snapshot().Mode; got != tc.mode {
				t.Errorf("mode = %v, expected %v", got, tc.mode)
			}
		})
	}
}

func TestGameAdvanceAndState(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 32, Seed: 1})

	if s := g.State(); s.Phase != "menu" || s.Score != 0 || s.GameOver {
		t.Errorf("State() = %+v, expected a fresh menu", s)
	}

	res := g.Advance(0, core.FrameOf(core.ActionConfirm))
	if res.State.Phase != "countdown" {
		t.Errorf("Phase = %q, expected countdown", res.State.Phase)
	}
	if len(res.Cues) != 1 || res.Cues[0] != core.CueCountdownTick {
		t.Errorf("Cues = %v, expected [count]", res.Cues)
	}

	res = g.Advance(0.1, core.FrameOf(core.ActionCancel))
	if res.State.Phase != "menu" || res.State.GameOver {
		t.Errorf("State = %+v, expected menu without game over", res.State)
	}
}

func TestGameReportsEndedRuns(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 5})
	g.Advance(0, core.FrameOf(core.ActionConfirm))
	for g.State().Phase != "running" {
		g.Advance(1, core.NewInputFrame())
	}

	res := g.Advance(0, core.FrameOf(core.ActionCancel))
	if !res.State.GameOver {
		t.Error("GameOver should be set on the frame a run ends")
	}
	if got := g.Reports(); len(got) != 1 || got[0].Cause != CauseCancelled {
		t.Errorf("Reports() = %+v, expected one cancelled run", got)
	}

	if res = g.Advance(0, core.NewInputFrame()); res.State.GameOver {
		t.Error("GameOver should only be set for one frame")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 2})
	scr := core.NewScreen(80, 32)
	g.Render(scr)
	if !strings.Contains(scr.Row(0), "RED PANDA FRUIT DASH") {
		t.Errorf("HUD = %q, expected the title", scr.Row(0))
	}
}
