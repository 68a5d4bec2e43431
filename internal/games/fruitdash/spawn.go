package fruitdash

import (
	"errors"

	"github.com/vovakirdan/fruit-dash/internal/grid"
)

// ErrGridFull is returned when a spawn finds no free cell.
var ErrGridFull = errors.New("fruitdash: no free cell to spawn on")

// occupiedCells builds a fresh occupancy set from the player, the body and,
// when requested, the active fruit and power-up.
func (e *Engine) occupiedCells(withFruit, withPowerUp bool) map[grid.Pos]struct{} {
	body := e.rules.Body()
	occ := make(map[grid.Pos]struct{}, len(body)+3)
	occ[e.player.Cell] = struct{}{}
	for _, c := range body {
		occ[c] = struct{}{}
	}
	if withFruit && e.hasFruit {
		occ[e.fruit] = struct{}{}
	}
	if withPowerUp && e.power != nil {
		occ[e.power.Cell] = struct{}{}
	}
	return occ
}

// freeCell draws uniformly among cells not in occ. Rejection sampling is
// bounded; past the bound the free cells are enumerated instead.
func (e *Engine) freeCell(occ map[grid.Pos]struct{}) (grid.Pos, error) {
	tries := 4 * e.geom.Cells()
	for i := 0; i < tries; i++ {
		c := grid.Pos{X: e.rng.Intn(e.geom.W), Y: e.rng.Intn(e.geom.H)}
		if _, taken := occ[c]; !taken {
			return c, nil
		}
	}

	free := make([]grid.Pos, 0, e.geom.Cells()-len(occ))
	for _, c := range e.geom.All() {
		if _, taken := occ[c]; !taken {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return grid.Pos{}, ErrGridFull
	}
	return free[e.rng.Intn(len(free))], nil
}

// spawnFruit replaces the fruit. On error the old fruit is removed.
func (e *Engine) spawnFruit() error {
	cell, err := e.freeCell(e.occupiedCells(false, true))
	if err != nil {
		e.hasFruit = false
		return err
	}
	e.fruit = cell
	e.hasFruit = true
	return nil
}

// spawnPowerUp rolls chance. A failed roll clears the current power-up; a
// successful one replaces it with a uniformly chosen kind.
func (e *Engine) spawnPowerUp(chance float64) error {
	if e.rng.Float64() > chance {
		e.power = nil
		return nil
	}
	kind := PowerKind(e.rng.Intn(2))
	cell, err := e.freeCell(e.occupiedCells(true, false))
	if err != nil {
		e.power = nil
		return err
	}
	e.power = &PowerUp{Kind: kind, Cell: cell}
	return nil
}
