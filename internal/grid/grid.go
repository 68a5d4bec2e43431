// Package grid holds the pure geometry of the playfield: positions,
// unit directions, bounds and wrapping, and the mapping between grid cells
// and screen cells. Nothing here keeps state.
package grid

import (
	"fmt"

	"github.com/vovakirdan/fruit-dash/internal/core"
)

// Pos is a cell coordinate on the grid.
type Pos struct {
	X, Y int
}

// Add returns p translated by d.
func (p Pos) Add(d Dir) Pos {
	return Pos{X: p.X + d.DX, Y: p.Y + d.DY}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Dir is a movement vector. Valid directions are the four unit vectors;
// the zero value means "no direction" and is never applied to a player.
type Dir struct {
	DX, DY int
}

// The four unit directions. Y grows downwards, so North is -Y.
var (
	North = Dir{DX: 0, DY: -1}
	South = Dir{DX: 0, DY: 1}
	East  = Dir{DX: 1, DY: 0}
	West  = Dir{DX: -1, DY: 0}
)

// IsZero reports whether d is the zero vector.
func (d Dir) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Angle returns the orientation in degrees, counter-clockwise from East.
// Used only as a rendering hint.
func (d Dir) Angle() float64 {
	switch d {
	case East:
		return 0
	case North:
		return 90
	case West:
		return 180
	case South:
		return 270
	default:
		return 0
	}
}

func (d Dir) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	case Dir{}:
		return "none"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// DirFromAction maps a move intent to its direction.
// Non-move actions map to the zero vector.
func DirFromAction(a core.Action) Dir {
	switch a {
	case core.ActionMoveUp:
		return North
	case core.ActionMoveDown:
		return South
	case core.ActionMoveLeft:
		return West
	case core.ActionMoveRight:
		return East
	default:
		return Dir{}
	}
}

// Geometry describes the logical bounds of a W x H grid.
type Geometry struct {
	W, H int
}

// New returns the geometry of a w x h grid.
func New(w, h int) Geometry {
	return Geometry{W: w, H: h}
}

// Cells returns the number of cells on the grid.
func (g Geometry) Cells() int {
	return g.W * g.H
}

// Center returns the starting cell (W/2, H/2).
func (g Geometry) Center() Pos {
	return Pos{X: g.W / 2, Y: g.H / 2}
}

// Contains reports whether p lies inside the grid.
func (g Geometry) Contains(p Pos) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// Wrap folds p back onto the grid, modulo each dimension.
func (g Geometry) Wrap(p Pos) Pos {
	return Pos{X: mod(p.X, g.W), Y: mod(p.Y, g.H)}
}

// Step moves p one cell along d. With wrap the result is folded modulo the
// grid size; without wrap a destination outside the grid returns ok=false.
func (g Geometry) Step(p Pos, d Dir, wrap bool) (next Pos, ok bool) {
	next = p.Add(d)
	if wrap {
		return g.Wrap(next), true
	}
	if !g.Contains(next) {
		return p, false
	}
	return next, true
}

// Taxicab returns the Manhattan distance between a and b (no wrapping).
func Taxicab(a, b Pos) int {
	return core.Abs(a.X-b.X) + core.Abs(a.Y-b.Y)
}

// Toward returns from moved one cell toward to on each axis independently.
// An axis that already matches is left alone.
func Toward(from, to Pos) Pos {
	return Pos{
		X: from.X + core.Sign(to.X-from.X),
		Y: from.Y + core.Sign(to.Y-from.Y),
	}
}

// All returns every cell of the grid in row-major order.
func (g Geometry) All() []Pos {
	cells := make([]Pos, 0, g.Cells())
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			cells = append(cells, Pos{X: x, Y: y})
		}
	}
	return cells
}

func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
