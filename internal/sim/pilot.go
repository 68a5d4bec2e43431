package sim

import (
	"github.com/vovakirdan/fruit-dash/internal/core"
	"github.com/vovakirdan/fruit-dash/internal/games/fruitdash"
	"github.com/vovakirdan/fruit-dash/internal/grid"
)

// headings in tie-break order after the current heading.
var headings = []grid.Dir{grid.North, grid.East, grid.South, grid.West}

// Steer picks the next heading for a greedy autopilot: the safe neighbour
// closest to the fruit, preferring the current heading on ties. When no
// neighbour is safe the current heading is kept.
func Steer(s fruitdash.Snapshot) grid.Dir {
	head := s.Player.Cell
	blocked := make(map[grid.Pos]bool, len(s.Body))
	for _, c := range s.Body {
		if c != head {
			blocked[c] = true
		}
	}

	best := s.Player.Dir
	bestDist := -1
	try := func(d grid.Dir) {
		next, ok := s.Grid.Step(head, d, s.Wrap)
		if !ok || blocked[next] {
			return
		}
		dist := 0
		if s.HasFruit {
			dist = distance(s.Grid, next, s.Fruit, s.Wrap)
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}

	try(s.Player.Dir)
	for _, d := range headings {
		if d != s.Player.Dir {
			try(d)
		}
	}
	return best
}

// distance is the taxicab distance, measured around the edges when wrapping.
func distance(g grid.Geometry, a, b grid.Pos, wrap bool) int {
	dx := core.Abs(a.X - b.X)
	dy := core.Abs(a.Y - b.Y)
	if wrap {
		dx = min(dx, g.W-dx)
		dy = min(dy, g.H-dy)
	}
	return dx + dy
}

// actionFor maps a heading to the move intent that requests it.
func actionFor(d grid.Dir) core.Action {
	switch d {
	case grid.North:
		return core.ActionMoveUp
	case grid.South:
		return core.ActionMoveDown
	case grid.West:
		return core.ActionMoveLeft
	case grid.East:
		return core.ActionMoveRight
	default:
		return core.ActionNone
	}
}
