package fruitdash

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/fruit-dash/internal/config"
	"github.com/vovakirdan/fruit-dash/internal/core"
	"github.com/vovakirdan/fruit-dash/internal/grid"
)

func newTestMachine(t *testing.T, mutate func(*config.Config)) *Machine {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	m, err := NewMachine(cfg, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewMachine() failed: %v", err)
	}
	return m
}

// startRun confirms and waits out the countdown.
func startRun(t *testing.T, m *Machine) {
	t.Helper()
	m.Advance(0, core.FrameOf(core.ActionConfirm))
	for i := 0; m.Phase() != PhaseRunning; i++ {
		if i > 10 {
			t.Fatalf("countdown never finished, phase=%v", m.Phase())
		}
		m.Advance(1.0, core.NewInputFrame())
	}
}

func TestMachineStartsInMenu(t *testing.T) {
	m := newTestMachine(t, nil)
	f := m.Advance(0.5, core.NewInputFrame())
	if f.Snapshot.Phase != PhaseMenu {
		t.Errorf("Phase = %v, expected menu", f.Snapshot.Phase)
	}
	if len(f.Cues) != 0 || f.Ended != nil {
		t.Errorf("idle menu frame = %+v, expected no cues or report", f)
	}
	// Time in the menu does not move the panda.
	if f.Snapshot.Player.Cell != f.Snapshot.Grid.Center() {
		t.Errorf("player = %v, expected centre", f.Snapshot.Player.Cell)
	}
}

func TestMachineCountdown(t *testing.T) {
	m := newTestMachine(t, nil)

	f := m.Advance(0, core.FrameOf(core.ActionConfirm))
	if f.Snapshot.Phase != PhaseCountdown || f.Snapshot.Countdown != 3 {
		t.Fatalf("after confirm: phase=%v countdown=%d, expected countdown 3", f.Snapshot.Phase, f.Snapshot.Countdown)
	}
	if !reflect.DeepEqual(f.Cues, []core.Cue{core.CueCountdownTick}) {
		t.Errorf("confirm cues = %v, expected [count]", f.Cues)
	}

	steps := []struct {
		dt        float64
		wantPhase Phase
		wantCount int
		wantCues  []core.Cue
	}{
		{0.5, PhaseCountdown, 3, nil},
		{0.6, PhaseCountdown, 2, []core.Cue{core.CueCountdownTick}},
		// A long frame only takes one second off.
		{3.5, PhaseCountdown, 1, []core.Cue{core.CueCountdownTick}},
		{1.0, PhaseRunning, 0, []core.Cue{core.CueStart}},
	}
	for i, s := range steps {
		f := m.Advance(s.dt, core.NewInputFrame())
		if f.Snapshot.Phase != s.wantPhase || f.Snapshot.Countdown != s.wantCount {
			t.Errorf("step %d: phase=%v countdown=%d, expected %v %d", i, f.Snapshot.Phase, f.Snapshot.Countdown, s.wantPhase, s.wantCount)
		}
		if !reflect.DeepEqual(f.Cues, s.wantCues) {
			t.Errorf("step %d: cues = %v, expected %v", i, f.Cues, s.wantCues)
		}
	}
}

func TestMachineZeroCountdown(t *testing.T) {
	m := newTestMachine(t, func(c *config.Config) { c.Rules.Countdown = 0 })

	f := m.Advance(0, core.FrameOf(core.ActionConfirm))
	if f.Snapshot.Phase != PhaseRunning {
		t.Errorf("Phase = %v, expected running", f.Snapshot.Phase)
	}
	want := []core.Cue{core.CueCountdownTick, core.CueStart}
	if !reflect.DeepEqual(f.Cues, want) {
		t.Errorf("cues = %v, expected %v", f.Cues, want)
	}
}

func TestMachineCancelCountdown(t *testing.T) {
	m := newTestMachine(t, nil)
	m.Advance(0, core.FrameOf(core.ActionConfirm))

	f := m.Advance(0.2, core.FrameOf(core.ActionCancel))
	if f.Snapshot.Phase != PhaseMenu {
		t.Errorf("Phase = %v, expected menu", f.Snapshot.Phase)
	}
	if f.Ended != nil {
		t.Errorf("cancelling a countdown should not report a run, got %+v", f.Ended)
	}
}

func TestMachineMenuToggles(t *testing.T) {
	m := newTestMachine(t, nil)

	f := m.Advance(0, core.FrameOf(core.ActionToggleWrap))
	if f.Snapshot.Wrap {
		t.Error("ToggleWrap should disable wrapping")
	}
	f = m.Advance(0, core.FrameOf(core.ActionToggleMode))
	if f.Snapshot.Mode != ModeGrowth || len(f.Snapshot.Body) != 1 || f.Snapshot.TargetLength != 3 {
		t.Errorf("after ToggleMode: mode=%v body=%v target=%d, expected a fresh growth run",
			f.Snapshot.Mode, f.Snapshot.Body, f.Snapshot.TargetLength)
	}
	if f.Snapshot.Phase != PhaseMenu {
		t.Errorf("toggles must stay in the menu, phase=%v", f.Snapshot.Phase)
	}

	// Two toggles in one frame cancel out.
	f = m.Advance(0, core.FrameOf(core.ActionToggleWrap, core.ActionToggleWrap))
	if f.Snapshot.Wrap {
		t.Error("double ToggleWrap should leave wrapping disabled")
	}
}

func TestMachineStopsAtPhaseChange(t *testing.T) {
	m := newTestMachine(t, nil)

	f := m.Advance(0, core.FrameOf(core.ActionConfirm, core.ActionToggleWrap, core.ActionToggleMode))
	if f.Snapshot.Phase != PhaseCountdown {
		t.Fatalf("Phase = %v, expected countdown", f.Snapshot.Phase)
	}
	if !f.Snapshot.Wrap || f.Snapshot.Mode != ModeSpeed {
		t.Errorf("intents after confirm were applied: wrap=%v mode=%v", f.Snapshot.Wrap, f.Snapshot.Mode)
	}
}

func TestMachineTogglesPersistAcrossRuns(t *testing.T) {
	m := newTestMachine(t, nil)
	m.Advance(0, core.FrameOf(core.ActionToggleMode, core.ActionToggleWrap))
	startRun(t, m)

	f := m.Advance(0, core.FrameOf(core.ActionCancel))
	if f.Snapshot.Mode != ModeGrowth || f.Snapshot.Wrap {
		t.Errorf("after cancel: mode=%v wrap=%v, expected growth without wrap", f.Snapshot.Mode, f.Snapshot.Wrap)
	}
}

func TestMachineWallDeath(t *testing.T) {
	m := newTestMachine(t, func(c *config.Config) { c.Rules.Wrap = false })
	startRun(t, m)

	e := m.Engine()
	place(e, grid.Pos{X: 21, Y: 5}, grid.East, grid.Pos{X: 0, Y: 0})
	e.score = 70

	f := m.Advance(0.5, core.NewInputFrame())
	if f.Ended == nil {
		t.Fatal("expected a run report")
	}
	if f.Ended.Cause != CauseWall || f.Ended.Score != 70 || f.Ended.Run != 1 {
		t.Errorf("report = %+v, expected wall death with score 70", *f.Ended)
	}
	if n := len(f.Cues); n == 0 || f.Cues[n-1] != core.CueDeath {
		t.Errorf("cues = %v, expected to end with die", f.Cues)
	}
	if f.Snapshot.Phase != PhaseMenu || f.Snapshot.Score != 0 {
		t.Errorf("after death: phase=%v score=%d, expected a fresh menu", f.Snapshot.Phase, f.Snapshot.Score)
	}
}

func TestMachineCancelRun(t *testing.T) {
	m := newTestMachine(t, nil)
	startRun(t, m)
	m.Advance(0.1, core.NewInputFrame())

	f := m.Advance(0.1, core.FrameOf(core.ActionMoveUp, core.ActionCancel))
	if f.Ended == nil || f.Ended.Cause != CauseCancelled {
		t.Fatalf("Ended = %+v, expected a cancelled run", f.Ended)
	}
	for _, c := range f.Cues {
		if c == core.CueDeath {
			t.Error("cancel should not play the death cue")
		}
	}
	if f.Snapshot.Phase != PhaseMenu {
		t.Errorf("Phase = %v, expected menu", f.Snapshot.Phase)
	}
}

func TestMachineLastMoveWins(t *testing.T) {
	m := newTestMachine(t, nil)
	startRun(t, m)
	e := m.Engine()
	place(e, grid.Pos{X: 5, Y: 5}, grid.East, grid.Pos{X: 0, Y: 0})

	// Slightly more than one step at base speed.
	dt := 1/e.cfg.Speed.Base + 1e-6
	f := m.Advance(dt, core.FrameOf(core.ActionMoveUp, core.ActionMoveDown, core.ActionMoveLeft))
	if f.Snapshot.Player.Cell != (grid.Pos{X: 4, Y: 5}) {
		t.Errorf("player = %v, expected (4,5)", f.Snapshot.Player.Cell)
	}
	if f.Snapshot.Player.Dir != grid.West {
		t.Errorf("dir = %v, expected W", f.Snapshot.Player.Dir)
	}
}

func TestMachineDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	moves := []core.Action{core.ActionMoveUp, core.ActionMoveRight, core.ActionMoveDown, core.ActionMoveLeft}
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%200 == 0:
			inputs[i].Set(core.ActionConfirm)
		case i%23 == 0:
			inputs[i].Set(moves[(i/23)%len(moves)])
		}
	}

	run := func() ([]Snapshot, []RunReport) {
		m := newTestMachine(t, nil)
		var snaps []Snapshot
		var reports []RunReport
		for i, in := range inputs {
			dt := 1.0 / 60
			if i%7 == 0 {
				dt = 1.0 / 30
			}
			f := m.Advance(dt, in)
			snaps = append(snaps, f.Snapshot)
			if f.Ended != nil {
				reports = append(reports, *f.Ended)
			}
		}
		return snaps, reports
	}

	s1, r1 := run()
	s2, r2 := run()
	if !reflect.DeepEqual(s1, s2) {
		t.Error("same seed and inputs produced different snapshots")
	}
	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("run reports differ: %+v vs %+v", r1, r2)
	}
}
