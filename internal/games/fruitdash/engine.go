// Package fruitdash implements Red Panda Fruit Dash: a panda runs across a
// grid eating fruit, picking up power-ups and, in growth mode, dragging a
// trail it must not bite.
//
// Engine owns the run state and advances it with a fixed-step accumulator so
// gameplay speed is independent of the frame rate. Machine wraps the engine
// in the menu / countdown / running phases. Neither does any I/O; rendering
// and audio consume the Snapshot and cues they return.
package fruitdash

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/fruit-dash/internal/config"
	"github.com/vovakirdan/fruit-dash/internal/core"
	"github.com/vovakirdan/fruit-dash/internal/grid"
)

// TickResult is the outcome of Engine.Tick.
type TickResult struct {
	Alive bool
	Cause DeathCause // set when Alive is false
	Err   error      // non-nil only for ErrGridFull
	Steps int        // discrete steps taken during the tick
}

// RunStats counts what happened since the last Reset.
type RunStats struct {
	Elapsed  float64 // simulated seconds
	Steps    int
	Fruits   int
	Turbos   int
	PowerUps int
}

// Engine is the simulation of a single run.
type Engine struct {
	cfg  config.Config
	geom grid.Geometry
	rng  *rand.Rand

	mode  Mode
	wrap  bool
	rules Rules

	player   Player
	fruit    grid.Pos
	hasFruit bool
	power    *PowerUp

	score  int
	speed  float64
	acc    float64
	timers Timers
	combo  int

	stats RunStats
	cues  []core.Cue
}

// NewEngine creates an engine with the mode and wrap policy from cfg.Rules
// and sets up a fresh run. rng is the only source of randomness.
func NewEngine(cfg config.Config, rng *rand.Rand) (*Engine, error) {
	mode, err := ParseMode(cfg.Rules.Mode)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:  cfg,
		geom: grid.New(cfg.Grid.Width, cfg.Grid.Height),
		rng:  rng,
		mode: mode,
		wrap: cfg.Rules.Wrap,
	}
	if err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset starts a fresh run. Mode and wrap are kept.
func (e *Engine) Reset() error {
	e.player = newPlayer(e.geom)
	e.rules = newRules(e.mode, e.player.Cell, e.cfg)
	e.score = 0
	e.speed = e.cfg.Speed.Base
	e.acc = 0
	e.timers = Timers{}
	e.combo = 0
	e.stats = RunStats{}
	e.cues = e.cues[:0]
	e.hasFruit = false
	e.power = nil

	if err := e.spawnFruit(); err != nil {
		return fmt.Errorf("fruitdash: reset: %w", err)
	}
	if err := e.spawnPowerUp(e.cfg.PowerUps.ResetSpawnChance); err != nil {
		return fmt.Errorf("fruitdash: reset: %w", err)
	}
	return nil
}

// SetMode changes the rule set. Call Reset afterwards.
func (e *Engine) SetMode(m Mode) { e.mode = m }

// SetWrap changes the wall policy. It applies to the next step.
func (e *Engine) SetWrap(wrap bool) { e.wrap = wrap }

// Tick advances the run by dt seconds of real time. pending is the direction
// requested this frame; the zero vector keeps the current heading.
func (e *Engine) Tick(dt float64, pending grid.Dir) TickResult {
	e.stats.Elapsed += dt
	e.advanceTimers(dt)
	e.player.Request(pending)

	stepTime := e.stepTime()
	res := TickResult{Alive: true}

	e.acc += dt
	for e.acc >= stepTime {
		e.acc -= stepTime
		res.Steps++
		cause, err := e.step()
		if cause != CauseNone {
			e.acc = 0
			res.Alive = false
			res.Cause = cause
			res.Err = err
			return res
		}
		if e.cfg.PowerUps.AttractPerStep {
			e.attract()
		}
	}

	if !e.cfg.PowerUps.AttractPerStep {
		e.attract()
	}
	return res
}

// advanceTimers runs every effect timer down by dt. A combo whose window
// ran out is dropped.
func (e *Engine) advanceTimers(dt float64) {
	e.timers.decay(dt)
	if e.timers.ComboWindow <= 0 {
		e.combo = 0
	}
}

// stepTime is the number of seconds per cell at the current effective speed.
func (e *Engine) stepTime() float64 {
	speed := e.speed
	if e.timers.Slow > 0 {
		speed *= e.cfg.PowerUps.SlowFactor
	}
	if e.timers.Turbo > 0 {
		speed *= e.cfg.Combo.TurboFactor
	}
	return 1 / speed
}

// step moves the panda one cell and resolves everything that happens there.
// A non-None cause means the run is over and nothing else was mutated.
func (e *Engine) step() (DeathCause, error) {
	e.player.turn()
	next, ok := e.geom.Step(e.player.Cell, e.player.Dir, e.wrap)
	if !ok {
		return CauseWall, nil
	}
	e.stats.Steps++
	e.player.Cell = next
	e.player.Angle = e.player.Dir.Angle()

	ate := e.hasFruit && next == e.fruit

	e.rules.Advance(next, ate)
	if e.rules.CheckSelfCollision(next) {
		return CauseSelf, nil
	}

	if ate {
		if err := e.eat(); err != nil {
			return CauseGridFull, err
		}
	}

	if e.power != nil && e.power.Cell == next {
		e.collect(e.power.Kind)
		e.power = nil
	}
	return CauseNone, nil
}

// eat scores the fruit under the panda, ramps speed, updates the combo and
// respawns the fruit and maybe a power-up.
func (e *Engine) eat() error {
	e.stats.Fruits++
	e.score += e.cfg.Scoring.Fruit
	e.speed = e.rules.OnFruitEaten(e.speed)
	e.emit(core.CueFruitEaten)

	if e.timers.ComboWindow > 0 {
		e.combo++
	} else {
		e.combo = 1
	}
	e.timers.ComboWindow = e.cfg.Combo.Window
	if e.combo >= e.cfg.Combo.Count {
		e.combo = 0
		e.timers.ComboWindow = 0
		e.timers.Turbo = e.cfg.Combo.TurboDuration
		e.score += e.cfg.Combo.Bonus
		e.stats.Turbos++
		e.emit(core.CueTurbo)
	}

	if err := e.spawnFruit(); err != nil {
		return err
	}
	return e.spawnPowerUp(e.cfg.PowerUps.SpawnChance)
}

func (e *Engine) collect(kind PowerKind) {
	switch kind {
	case PowerSlow:
		e.timers.Slow = e.cfg.PowerUps.SlowDuration
	case PowerMagnet:
		e.timers.Magnet = e.cfg.PowerUps.MagnetDuration
	}
	e.stats.PowerUps++
	e.emit(core.CuePowerUp)
}

// attract pulls the fruit one cell toward the panda while the magnet is
// active and the fruit is within the magnet radius.
func (e *Engine) attract() {
	if e.timers.Magnet <= 0 || !e.hasFruit {
		return
	}
	if grid.Taxicab(e.fruit, e.player.Cell) <= e.cfg.PowerUps.MagnetRadius {
		e.fruit = grid.Toward(e.fruit, e.player.Cell)
	}
}

func (e *Engine) emit(c core.Cue) {
	e.cues = append(e.cues, c)
}

// DrainCues returns the cues emitted since the last call and forgets them.
func (e *Engine) DrainCues() []core.Cue {
	if len(e.cues) == 0 {
		return nil
	}
	out := make([]core.Cue, len(e.cues))
	copy(out, e.cues)
	e.cues = e.cues[:0]
	return out
}

// Accessors

func (e *Engine) Mode() Mode { return e.mode }
func (e *Engine) Wrap() bool { return e.wrap }
func (e *Engine) Score() int { return e.score }
func (e *Engine) Speed() float64 { return e.speed }
func (e *Engine) Player() Player { return e.player }
func (e *Engine) Timers() Timers { return e.timers }
func (e *Engine) Combo() int { return e.combo }
func (e *Engine) Stats() RunStats { return e.stats }
func (e *Engine) Geometry() grid.Geometry { return e.geom }
func (e *Engine) TargetLength() int { return e.rules.TargetLength() }
func (e *Engine) Config() config.Config { return e.cfg }
func (e *Engine) Fruit() (grid.Pos, bool) { return e.fruit, e.hasFruit }

// SpeedRatio is the current speed relative to the base speed.
func (e *Engine) SpeedRatio() float64 {
	return e.speed / e.cfg.Speed.Base
}

// PowerUp returns the power-up on the grid, if any.
func (e *Engine) PowerUp() (PowerUp, bool) {
	if e.power == nil {
		return PowerUp{}, false
	}
	return *e.power, true
}

// Body returns a copy of the trailing body, head first.
func (e *Engine) Body() []grid.Pos {
	body := e.rules.Body()
	if len(body) == 0 {
		return nil
	}
	out := make([]grid.Pos, len(body))
	copy(out, body)
	return out
}
