package fruitdash

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/fruit-dash/internal/config"
	"github.com/vovakirdan/fruit-dash/internal/grid"
)

// Mode selects the rule set of a run.
type Mode int

const (
	ModeSpeed  Mode = iota // every fruit speeds the panda up
	ModeGrowth             // every fruit grows a trailing body
)

func (m Mode) String() string {
	switch m {
	case ModeSpeed:
		return "speed"
	case ModeGrowth:
		return "growth"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeSpeed {
		return ModeGrowth
	}
	return ModeSpeed
}

// ParseMode parses "speed" or "growth", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "speed":
		return ModeSpeed, nil
	case "growth":
		return ModeGrowth, nil
	default:
		return ModeSpeed, fmt.Errorf("fruitdash: unknown mode %q (want speed or growth)", s)
	}
}

// Rules isolates what differs between modes: the trailing body, self
// collision and the speed curve.
type Rules interface {
	Mode() Mode
	// Advance records a new head cell. ate reports whether the step consumed fruit.
	Advance(head grid.Pos, ate bool)
	// CheckSelfCollision reports whether head overlaps the body behind it.
	CheckSelfCollision(head grid.Pos) bool
	// OnFruitEaten returns the new speed after a fruit.
	OnFruitEaten(speed float64) float64
	// Body returns the trailing cells, head first. Empty in speed mode.
	Body() []grid.Pos
	// TargetLength is the body length cap. Zero in speed mode.
	TargetLength() int
}

func newRules(mode Mode, start grid.Pos, cfg config.Config) Rules {
	if mode == ModeGrowth {
		return &growthRules{
			body:    []grid.Pos{start},
			target:  cfg.Growth.InitialLength,
			initial: cfg.Growth.InitialLength,
			every:   cfg.Speed.GrowthEvery,
			ramp:    cfg.Speed.GrowthRamp,
			limit:   cfg.Speed.GrowthCap * cfg.Speed.Base,
		}
	}
	return speedRules{
		ramp:  cfg.Speed.SpeedRamp,
		limit: cfg.Speed.SpeedCap * cfg.Speed.Base,
	}
}

type speedRules struct {
	ramp, limit float64
}

func (speedRules) Mode() Mode { return ModeSpeed }
func (speedRules) Advance(grid.Pos, bool) {}
func (speedRules) CheckSelfCollision(grid.Pos) bool { return false }
func (speedRules) Body() []grid.Pos { return nil }
func (speedRules) TargetLength() int { return 0 }
func (r speedRules) OnFruitEaten(speed float64) float64 { return min(speed*r.ramp, r.limit) }

type growthRules struct {
	body    []grid.Pos
	target  int
	initial int
	every   int
	ramp    float64
	limit   float64
}

func (r *growthRules) Mode() Mode { return ModeGrowth }

func (r *growthRules) Advance(head grid.Pos, ate bool) {
	r.body = append(r.body, grid.Pos{})
	copy(r.body[1:], r.body)
	r.body[0] = head
	if ate {
		r.target++
	}
	if len(r.body) > r.target {
		r.body = r.body[:r.target]
	}
}

func (r *growthRules) CheckSelfCollision(head grid.Pos) bool {
	for _, c := range r.body[1:] {
		if c == head {
			return true
		}
	}
	return false
}

// OnFruitEaten ramps speed on every `every`-th length increment past the
// initial length. Advance must already have counted the fruit.
func (r *growthRules) OnFruitEaten(speed float64) float64 {
	grown := r.target - r.initial
	if grown > 0 && grown%r.every == 0 {
		return min(speed*r.ramp, r.limit)
	}
	return speed
}

func (r *growthRules) Body() []grid.Pos { return r.body }
func (r *growthRules) TargetLength() int { return r.target }
