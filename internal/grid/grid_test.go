package grid

import (
	"testing"

	"github.com/vovakirdan/fruit-dash/internal/core"
)

func TestStepWithoutWrap(t *testing.T) {
	g := New(22, 26)

	tests := []struct {
		name   string
		from   Pos
		dir    Dir
		want   Pos
		wantOK bool
	}{
		{"inside", Pos{5, 5}, East, Pos{6, 5}, true},
		{"east edge", Pos{21, 3}, East, Pos{21, 3}, false},
		{"west edge", Pos{0, 3}, West, Pos{0, 3}, false},
		{"north edge", Pos{4, 0}, North, Pos{4, 0}, false},
		{"south edge", Pos{4, 25}, South, Pos{4, 25}, false},
		{"along edge", Pos{0, 0}, South, Pos{0, 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := g.Step(tc.from, tc.dir, false)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("Step(%v, %v) = %v, %v, expected %v, %v", tc.from, tc.dir, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestStepWithWrap(t *testing.T) {
	g := New(22, 26)

	tests := []struct {
		from Pos
		dir  Dir
		want Pos
	}{
		{Pos{21, 7}, East, Pos{0, 7}},
		{Pos{0, 7}, West, Pos{21, 7}},
		{Pos{3, 0}, North, Pos{3, 25}},
		{Pos{3, 25}, South, Pos{3, 0}},
	}

	for _, tc := range tests {
		got, ok := g.Step(tc.from, tc.dir, true)
		if !ok || got != tc.want {
			t.Errorf("Step(%v, %v, wrap) = %v, %v, expected %v, true", tc.from, tc.dir, got, ok, tc.want)
		}
		if !g.Contains(got) {
			t.Errorf("wrapped position %v is outside the grid", got)
		}
	}
}

func TestWrapNegative(t *testing.T) {
	g := New(5, 4)
	if got := g.Wrap(Pos{-6, -9}); got != (Pos{4, 3}) {
		t.Errorf("Wrap(-6,-9) = %v, expected (4,3)", got)
	}
}

func TestTaxicabAndToward(t *testing.T) {
	if d := Taxicab(Pos{10, 10}, Pos{10, 8}); d != 2 {
		t.Errorf("Taxicab = %d, expected 2", d)
	}
	if d := Taxicab(Pos{0, 0}, Pos{3, 4}); d != 7 {
		t.Errorf("Taxicab = %d, expected 7", d)
	}

	tests := []struct {
		from, to, want Pos
	}{
		{Pos{10, 10}, Pos{10, 8}, Pos{10, 9}},
		{Pos{4, 4}, Pos{6, 2}, Pos{5, 3}},
		{Pos{4, 4}, Pos{4, 4}, Pos{4, 4}},
		{Pos{7, 1}, Pos{2, 1}, Pos{6, 1}},
	}
	for _, tc := range tests {
		if got := Toward(tc.from, tc.to); got != tc.want {
			t.Errorf("Toward(%v, %v) = %v, expected %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestDirAngle(t *testing.T) {
	tests := []struct {
		dir  Dir
		want float64
	}{
		{East, 0},
		{North, 90},
		{West, 180},
		{South, 270},
	}
	for _, tc := range tests {
		if got := tc.dir.Angle(); got != tc.want {
			t.Errorf("%v.Angle() = %v, expected %v", tc.dir, got, tc.want)
		}
	}
}

func TestDirFromAction(t *testing.T) {
	tests := []struct {
		action core.Action
		want   Dir
	}{
		{core.ActionMoveUp, North},
		{core.ActionMoveDown, South},
		{core.ActionMoveLeft, West},
		{core.ActionMoveRight, East},
		{core.ActionConfirm, Dir{}},
	}
	for _, tc := range tests {
		if got := DirFromAction(tc.action); got != tc.want {
			t.Errorf("DirFromAction(%v) = %v, expected %v", tc.action, got, tc.want)
		}
	}
	if !DirFromAction(core.ActionCancel).IsZero() {
		t.Error("non-move action should map to the zero vector")
	}
}

func TestAllCells(t *testing.T) {
	g := New(3, 2)
	cells := g.All()
	if len(cells) != g.Cells() {
		t.Fatalf("All() returned %d cells, expected %d", len(cells), g.Cells())
	}
	if cells[0] != (Pos{0, 0}) || cells[5] != (Pos{2, 1}) {
		t.Errorf("All() order = %v, expected row-major", cells)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	g := New(22, 26)
	v := Fit(g, 80, 2, 2, 1)

	if v.OriginX != (80-44)/2 {
		t.Errorf("OriginX = %d, expected %d", v.OriginX, (80-44)/2)
	}

	for _, p := range []Pos{{0, 0}, {21, 25}, {10, 13}} {
		x, y := v.ToScreen(p)
		got, ok := v.FromScreen(x+1, y)
		if !ok || got != p {
			t.Errorf("FromScreen(ToScreen(%v)) = %v, %v", p, got, ok)
		}
	}

	if _, ok := v.FromScreen(0, 0); ok {
		t.Error("FromScreen outside the board should report false")
	}
}

func TestViewportFits(t *testing.T) {
	v := Fit(New(22, 26), 80, 2, 2, 1)
	if !v.Fits(80, 30) {
		t.Error("22x26 board should fit an 80x30 screen")
	}
	if v.Fits(80, 24) {
		t.Error("22x26 board should not fit an 80x24 screen")
	}
}
