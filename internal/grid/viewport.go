package grid

import "github.com/vovakirdan/fruit-dash/internal/core"

// Viewport maps grid cells onto screen cells. A grid cell is CellW columns
// wide and CellH rows tall; Origin is the screen position of cell (0,0).
type Viewport struct {
	OriginX, OriginY int
	CellW, CellH     int
	Geometry         Geometry
}

// Fit centers geometry g horizontally inside a screen of the given width,
// starting at row top. The returned viewport may exceed the screen; use
// Fits to check.
func Fit(g Geometry, screenW, top, cellW, cellH int) Viewport {
	boardW := g.W * cellW
	return Viewport{
		OriginX:  (screenW - boardW) / 2,
		OriginY:  top,
		CellW:    cellW,
		CellH:    cellH,
		Geometry: g,
	}
}

// Bounds returns the screen rectangle covered by the grid.
func (v Viewport) Bounds() core.Rect {
	return core.NewRect(v.OriginX, v.OriginY, v.Geometry.W*v.CellW, v.Geometry.H*v.CellH)
}

// Fits reports whether the grid plus a one-cell frame fits a w x h screen.
func (v Viewport) Fits(w, h int) bool {
	b := v.Bounds()
	return b.X >= 1 && b.Y >= 1 && b.Right()+1 <= w && b.Bottom()+1 <= h
}

// ToScreen returns the top-left screen cell of grid cell p.
func (v Viewport) ToScreen(p Pos) (x, y int) {
	return v.OriginX + p.X*v.CellW, v.OriginY + p.Y*v.CellH
}

// FromScreen returns the grid cell under screen cell (x, y).
// ok is false when the screen cell lies outside the grid.
func (v Viewport) FromScreen(x, y int) (Pos, bool) {
	if !v.Bounds().Contains(x, y) {
		return Pos{}, false
	}
	return Pos{X: (x - v.OriginX) / v.CellW, Y: (y - v.OriginY) / v.CellH}, true
}
