package fruitdash

import "github.com/vovakirdan/fruit-dash/internal/grid"

// Player is the red panda: its cell, its heading and the heading requested
// for the next step.
type Player struct {
	Cell    grid.Pos
	Dir     grid.Dir
	Pending grid.Dir
	Angle   float64 // degrees, rendering hint only
}

func newPlayer(g grid.Geometry) Player {
	return Player{
		Cell:    g.Center(),
		Dir:     grid.East,
		Pending: grid.East,
		Angle:   grid.East.Angle(),
	}
}

// Request sets the heading applied on the next step. The zero vector is ignored.
func (p *Player) Request(d grid.Dir) {
	if d.IsZero() {
		return
	}
	p.Pending = d
}

// turn applies the pending heading. Reversal is allowed.
func (p *Player) turn() {
	if !p.Pending.IsZero() {
		p.Dir = p.Pending
	}
}

// PowerKind identifies a power-up.
type PowerKind int

const (
	PowerSlow PowerKind = iota
	PowerMagnet
)

func (k PowerKind) String() string {
	switch k {
	case PowerSlow:
		return "slow"
	case PowerMagnet:
		return "magnet"
	default:
		return "unknown"
	}
}

// PowerUp is a collectible lying on the grid.
type PowerUp struct {
	Kind PowerKind
	Cell grid.Pos
}

// DeathCause tells why a run ended.
type DeathCause int

const (
	CauseNone      DeathCause = iota
	CauseWall                 // stepped off the grid with wrapping disabled
	CauseSelf                 // ran into the trailing body
	CauseGridFull             // no free cell left for a spawn
	CauseCancelled            // player backed out to the menu
)

func (c DeathCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseGridFull:
		return "grid_full"
	case CauseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Timers holds the remaining seconds of every timed effect.
type Timers struct {
	Slow        float64
	Magnet      float64
	Turbo       float64
	ComboWindow float64
}

// decay subtracts dt from every timer, flooring at zero.
func (t *Timers) decay(dt float64) {
	t.Slow = max(0, t.Slow-dt)
	t.Magnet = max(0, t.Magnet-dt)
	t.Turbo = max(0, t.Turbo-dt)
	t.ComboWindow = max(0, t.ComboWindow-dt)
}
