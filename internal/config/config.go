// Package config provides YAML-based game configuration loading and
// difficulty presets for Fruit Dash.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunables of the simulation. It is read once at
// startup; the engine never re-reads it.
type Config struct {
	Grid     GridConfig    `yaml:"grid"`
	Speed    SpeedConfig   `yaml:"speed"`
	PowerUps PowerUpConfig `yaml:"powerups"`
	Combo    ComboConfig   `yaml:"combo"`
	Scoring  ScoringConfig `yaml:"scoring"`
	Growth   GrowthConfig  `yaml:"growth"`
	Rules    RulesConfig   `yaml:"rules"`
}

// GridConfig defines the playfield.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"` // rendering only: terminal columns per cell
}

// SpeedConfig defines movement speed in cells per second and its ramps.
type SpeedConfig struct {
	Base float64 `yaml:"base"`

	SpeedRamp float64 `yaml:"speed_ramp"` // multiplier per fruit in speed mode
	SpeedCap  float64 `yaml:"speed_cap"`  // cap as a multiple of Base in speed mode

	GrowthRamp  float64 `yaml:"growth_ramp"`  // multiplier per ramp step in growth mode
	GrowthCap   float64 `yaml:"growth_cap"`   // cap as a multiple of Base in growth mode
	GrowthEvery int     `yaml:"growth_every"` // length increments between growth ramps
}

// PowerUpConfig defines power-up spawning and effects.
type PowerUpConfig struct {
	SpawnChance      float64 `yaml:"spawn_chance"`       // chance after each fruit
	ResetSpawnChance float64 `yaml:"reset_spawn_chance"` // chance when a run is set up
	SlowDuration     float64 `yaml:"slow_duration"`
	SlowFactor       float64 `yaml:"slow_factor"`
	MagnetDuration   float64 `yaml:"magnet_duration"`
	MagnetRadius     int     `yaml:"magnet_radius"` // taxicab cells
	AttractPerStep   bool    `yaml:"attract_per_step"`
}

// ComboConfig defines the combo window and the turbo it grants.
type ComboConfig struct {
	Window        float64 `yaml:"window"`
	Count         int     `yaml:"count"`
	Bonus         int     `yaml:"bonus"`
	TurboDuration float64 `yaml:"turbo_duration"`
	TurboFactor   float64 `yaml:"turbo_factor"`
}

// ScoringConfig defines points per fruit.
type ScoringConfig struct {
	Fruit int `yaml:"fruit"`
}

// GrowthConfig defines the trailing body of growth mode.
type GrowthConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// RulesConfig defines the starting rule set and the countdown.
type RulesConfig struct {
	Mode      string `yaml:"mode"` // "speed" or "growth"
	Wrap      bool   `yaml:"wrap"`
	Countdown int    `yaml:"countdown"` // seconds
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration can drive a simulation.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Grid.Width > 1 && c.Grid.Height > 1, "grid must be at least 2x2, got %dx%d", c.Grid.Width, c.Grid.Height)
	check(c.Grid.CellSize > 0, "grid.cell_size must be positive, got %d", c.Grid.CellSize)
	check(c.Speed.Base > 0, "speed.base must be positive, got %v", c.Speed.Base)
	check(c.Speed.SpeedRamp >= 1, "speed.speed_ramp must be >= 1, got %v", c.Speed.SpeedRamp)
	check(c.Speed.SpeedCap >= 1, "speed.speed_cap must be >= 1, got %v", c.Speed.SpeedCap)
	check(c.Speed.GrowthRamp >= 1, "speed.growth_ramp must be >= 1, got %v", c.Speed.GrowthRamp)
	check(c.Speed.GrowthCap >= 1, "speed.growth_cap must be >= 1, got %v", c.Speed.GrowthCap)
	check(c.Speed.GrowthEvery > 0, "speed.growth_every must be positive, got %d", c.Speed.GrowthEvery)
	check(probability(c.PowerUps.SpawnChance), "powerups.spawn_chance must be in [0,1], got %v", c.PowerUps.SpawnChance)
	check(probability(c.PowerUps.ResetSpawnChance), "powerups.reset_spawn_chance must be in [0,1], got %v", c.PowerUps.ResetSpawnChance)
	check(c.PowerUps.SlowFactor > 0, "powerups.slow_factor must be positive, got %v", c.PowerUps.SlowFactor)
	check(c.PowerUps.SlowDuration >= 0 && c.PowerUps.MagnetDuration >= 0, "power-up durations must not be negative")
	check(c.PowerUps.MagnetRadius >= 0, "powerups.magnet_radius must not be negative, got %d", c.PowerUps.MagnetRadius)
	check(c.Combo.Window >= 0, "combo.window must not be negative, got %v", c.Combo.Window)
	check(c.Combo.Count > 0, "combo.count must be positive, got %d", c.Combo.Count)
	check(c.Combo.TurboFactor > 0, "combo.turbo_factor must be positive, got %v", c.Combo.TurboFactor)
	check(c.Growth.InitialLength > 0, "growth.initial_length must be positive, got %d", c.Growth.InitialLength)
	check(c.Rules.Mode == "speed" || c.Rules.Mode == "growth", "rules.mode must be speed or growth, got %q", c.Rules.Mode)
	check(c.Rules.Countdown >= 0, "rules.countdown must not be negative, got %d", c.Rules.Countdown)

	return errors.Join(errs...)
}

func probability(p float64) bool {
	return p >= 0 && p <= 1
}
