package fruitdash

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-dash/internal/config"
	"github.com/vovakirdan/fruit-dash/internal/core"
	"github.com/vovakirdan/fruit-dash/internal/grid"
)

// Phase is the high-level state of the game. Game over is not a phase: a
// finished run goes straight back to the menu.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseCountdown
	PhaseRunning
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseCountdown:
		return "countdown"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

// RunReport summarizes a run that just ended. It is handed to the driver
// once and never stored.
type RunReport struct {
	Run      int // 1-based run number within this machine
	Mode     Mode
	Wrap     bool
	Score    int
	Cause    DeathCause
	Seconds  float64
	Steps    int
	Fruits   int
	Length   int // target length, growth mode only
	Turbos   int
	PowerUps int
	Err      error
}

// Frame is the result of one Machine.Advance call.
type Frame struct {
	Snapshot Snapshot
	Cues     []core.Cue
	Ended    *RunReport // non-nil on the frame a run ended
}

// Machine drives an Engine through the menu, countdown and running phases.
type Machine struct {
	engine *Engine
	log    *log.Logger

	phase     Phase
	countdown int
	clock     float64 // seconds toward the next countdown decrement
	runs      int

	cues []core.Cue
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for phase changes and spawn failures.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

// NewMachine creates a machine sitting in the menu with a fresh run.
func NewMachine(cfg config.Config, rng *rand.Rand, opts ...Option) (*Machine, error) {
	e, err := NewEngine(cfg, rng)
	if err != nil {
		return nil, err
	}
	m := &Machine{
		engine: e,
		log:    log.New(io.Discard),
		phase:  PhaseMenu,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Engine exposes the underlying engine, mostly to tests and tools.
func (m *Machine) Engine() *Engine { return m.engine }

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Countdown returns the displayed countdown value.
func (m *Machine) Countdown() int { return m.countdown }

// Advance handles one frame: dt seconds of real time and the intents
// received during the frame, in arrival order.
func (m *Machine) Advance(dt float64, in core.InputFrame) Frame {
	var f Frame
	m.cues = m.cues[:0]

	switch m.phase {
	case PhaseMenu:
		m.updateMenu(in)
	case PhaseCountdown:
		m.updateCountdown(dt, in)
	case PhaseRunning:
		f.Ended = m.updateRunning(dt, in)
	}

	if len(m.cues) > 0 {
		f.Cues = make([]core.Cue, len(m.cues))
		copy(f.Cues, m.cues)
	}
	f.Snapshot = m.Snapshot()
	return f
}

// Snapshot returns the current render state.
func (m *Machine) Snapshot() Snapshot {
	s := m.engine.Snapshot()
	s.Phase = m.phase
	s.Countdown = m.countdown
	return s
}

func (m *Machine) updateMenu(in core.InputFrame) {
	for _, a := range in.Actions {
		switch a {
		case core.ActionConfirm:
			m.startCountdown()
			return
		case core.ActionToggleWrap:
			m.engine.SetWrap(!m.engine.Wrap())
			m.log.Debug("wrap toggled", "wrap", m.engine.Wrap())
			m.reset()
		case core.ActionToggleMode:
			m.engine.SetMode(m.engine.Mode().Toggle())
			m.log.Debug("mode toggled", "mode", m.engine.Mode())
			m.reset()
		}
	}
}

func (m *Machine) startCountdown() {
	m.countdown = m.engine.Config().Rules.Countdown
	m.clock = 0
	m.cues = append(m.cues, core.CueCountdownTick)
	if m.countdown <= 0 {
		m.countdown = 0
		m.startRunning()
		return
	}
	m.setPhase(PhaseCountdown)
}

func (m *Machine) updateCountdown(dt float64, in core.InputFrame) {
	if in.Has(core.ActionCancel) {
		m.toMenu()
		return
	}

	m.clock += dt
	if m.clock < 1 {
		return
	}
	// One decrement per frame; the remainder is dropped.
	m.clock = 0
	m.countdown--
	if m.countdown > 0 {
		m.cues = append(m.cues, core.CueCountdownTick)
		return
	}
	m.startRunning()
}

func (m *Machine) startRunning() {
	m.cues = append(m.cues, core.CueStart)
	m.setPhase(PhaseRunning)
}

func (m *Machine) updateRunning(dt float64, in core.InputFrame) *RunReport {
	if in.Has(core.ActionCancel) {
		report := m.report(CauseCancelled, nil)
		m.toMenu()
		return report
	}

	var pending grid.Dir
	if a, ok := in.LastMove(); ok {
		pending = grid.DirFromAction(a)
	}

	res := m.engine.Tick(dt, pending)
	m.cues = append(m.cues, m.engine.DrainCues()...)
	if res.Alive {
		return nil
	}

	report := m.report(res.Cause, res.Err)
	if res.Err != nil {
		m.log.Warn("run aborted", "err", res.Err, "score", report.Score)
	} else {
		m.cues = append(m.cues, core.CueDeath)
		m.log.Info("run over", "cause", res.Cause, "score", report.Score, "seconds", report.Seconds)
	}
	m.toMenu()
	return report
}

func (m *Machine) report(cause DeathCause, err error) *RunReport {
	m.runs++
	stats := m.engine.Stats()
	return &RunReport{
		Run:      m.runs,
		Mode:     m.engine.Mode(),
		Wrap:     m.engine.Wrap(),
		Score:    m.engine.Score(),
		Cause:    cause,
		Seconds:  stats.Elapsed,
		Steps:    stats.Steps,
		Fruits:   stats.Fruits,
		Length:   m.engine.TargetLength(),
		Turbos:   stats.Turbos,
		PowerUps: stats.PowerUps,
		Err:      err,
	}
}

func (m *Machine) toMenu() {
	m.countdown = 0
	m.clock = 0
	m.setPhase(PhaseMenu)
	m.reset()
}

func (m *Machine) reset() {
	if err := m.engine.Reset(); err != nil {
		m.log.Error("reset failed", "err", err)
	}
}

func (m *Machine) setPhase(p Phase) {
	if p == m.phase {
		return
	}
	m.log.Debug("phase", "from", m.phase, "to", p)
	m.phase = p
}
