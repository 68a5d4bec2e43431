package fruitdash

import "github.com/vovakirdan/fruit-dash/internal/grid"

// Snapshot is a read-only copy of everything the renderer needs for a frame.
type Snapshot struct {
	Phase     Phase
	Countdown int // seconds left, meaningful in PhaseCountdown

	Mode Mode
	Wrap bool
	Grid grid.Geometry

	Player Player

	Fruit    grid.Pos
	HasFruit bool

	PowerUp    PowerUp
	HasPowerUp bool

	Body         []grid.Pos // head first, growth mode only
	TargetLength int

	Timers     Timers
	Combo      int
	Score      int
	Speed      float64
	SpeedRatio float64
}

// Snapshot copies the current run state. Phase fields are left zero; the
// machine fills them in.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Mode:         e.mode,
		Wrap:         e.wrap,
		Grid:         e.geom,
		Player:       e.player,
		Fruit:        e.fruit,
		HasFruit:     e.hasFruit,
		Body:         e.Body(),
		TargetLength: e.rules.TargetLength(),
		Timers:       e.timers,
		Combo:        e.combo,
		Score:        e.score,
		Speed:        e.speed,
		SpeedRatio:   e.SpeedRatio(),
	}
	s.PowerUp, s.HasPowerUp = e.PowerUp()
	return s
}
