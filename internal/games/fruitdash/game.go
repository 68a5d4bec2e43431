package fruitdash

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-dash/internal/config"
	"github.com/vovakirdan/fruit-dash/internal/core"
	"github.com/vovakirdan/fruit-dash/internal/registry"
)

// Package-level settings applied on the next Reset, set by the CLI.
var (
	configPath       string
	difficultyPreset string
	wrapOverride     *bool
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the config file path. Empty means the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetWrap forces the starting wrap policy regardless of the config file.
func SetWrap(enabled bool) {
	wrapOverride = &enabled
}

// SetLogger sets the logger handed to new machines.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadConfig resolves the configuration the way Reset does: the config
// file, then the difficulty preset, then the wrap override.
func LoadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(difficultyPreset)); err != nil {
		return cfg, err
	}
	if wrapOverride != nil {
		cfg.Rules.Wrap = *wrapOverride
	}
	return cfg, nil
}

// Game adapts a Machine to the registry.Game interface.
type Game struct {
	mode    Mode
	cfg     config.Config
	machine *Machine
	last    Frame
	reports []RunReport
}

// New creates a game that starts in speed mode.
func New() *Game {
	return &Game{mode: ModeSpeed}
}

// NewGrowth creates a game that starts in growth mode.
func NewGrowth() *Game {
	return &Game{mode: ModeGrowth}
}

func init() {
	registry.Register("fruitdash", func() registry.Game {
		return New()
	})
	registry.Register("fruitdash_growth", func() registry.Game {
		return NewGrowth()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeGrowth {
		return "fruitdash_growth"
	}
	return "fruitdash"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeGrowth {
		return "Red Panda Fruit Dash (Growth)"
	}
	return "Red Panda Fruit Dash"
}

// Reset builds a fresh machine. A config that fails to load falls back to
// the defaults with a warning.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := LoadConfig()
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.Default()
		if wrapOverride != nil {
			cfg.Rules.Wrap = *wrapOverride
		}
	}
	cfg.Rules.Mode = g.mode.String()
	g.cfg = cfg

	m, err := NewMachine(cfg, rand.New(rand.NewSource(rc.Seed)), WithLogger(logger))
	if err != nil {
		// Only a grid too small for the opening spawns gets here.
		logger.Error("cannot start game, using default grid", "err", err)
		cfg.Grid = config.Default().Grid
		g.cfg = cfg
		m, _ = NewMachine(cfg, rand.New(rand.NewSource(rc.Seed)), WithLogger(logger))
	}
	g.machine = m
	g.last = Frame{Snapshot: m.Snapshot()}
	g.reports = nil
}

// Advance runs one frame.
func (g *Game) Advance(dt float64, in core.InputFrame) core.StepResult {
	g.last = g.machine.Advance(dt, in)
	if g.last.Ended != nil {
		g.reports = append(g.reports, *g.last.Ended)
	}
	return core.StepResult{State: g.State(), Cues: g.last.Cues}
}

// Render draws the last frame.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.last.Snapshot, g.cfg.Grid.CellSize)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.last.Snapshot
	state := core.GameState{
		Score: s.Score,
		Phase: s.Phase.String(),
	}
	if g.last.Ended != nil {
		state.GameOver = true
		state.Final = g.last.Ended.Score
	}
	return state
}

// Snapshot returns the render state of the last frame.
func (g *Game) Snapshot() Snapshot {
	return g.last.Snapshot
}

// Reports returns the runs ended since the last Reset, oldest first.
func (g *Game) Reports() []RunReport {
	return g.reports
}

// Config returns the configuration in use.
func (g *Game) Config() config.Config {
	return g.cfg
}
