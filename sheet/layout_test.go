package sheet

import (
	"math"
	"testing"

	"github.com/lvillar/paleolabel"
)

func TestFitLetterStockCard(t *testing.T) {
	// 3.25 x 2.25in cards on letter stock: two columns, four rows.
	l := FitLetter(paleolabel.DefaultStyle())
	if l.Cols != 2 || l.Rows != 4 {
		t.Errorf("grid = %dx%d (cols x rows), want 2x4", l.Cols, l.Rows)
	}
	if l.PerSheet() != 8 {
		t.Errorf("PerSheet = %d, want 8", l.PerSheet())
	}
}

func TestFitLetterCaps(t *testing.T) {
	style := paleolabel.DefaultStyle()
	style.WidthInches = 1.0
	style.HeightInches = 0.5
	l := FitLetter(style)
	if l.Cols != 3 {
		t.Errorf("cols = %d, want cap of 3", l.Cols)
	}
	if l.Rows != 10 {
		t.Errorf("rows = %d, want cap of 10", l.Rows)
	}
}

func TestFitLetterOversizedLabel(t *testing.T) {
	style := paleolabel.DefaultStyle()
	style.WidthInches = 12
	style.HeightInches = 14
	l := FitLetter(style)
	if l.Cols != 1 || l.Rows != 1 {
		t.Errorf("grid = %dx%d, want at least a 1x1 grid", l.Cols, l.Rows)
	}
}

func TestLayoutOrigin(t *testing.T) {
	l := Avery5160
	x, y := l.origin(0, 0)
	if math.Abs(x-0.1875*72) > 1e-9 || math.Abs(y-0.5*72) > 1e-9 {
		t.Errorf("origin(0,0) = (%g, %g), want margins (13.5, 36)", x, y)
	}

	x, y = l.origin(2, 1)
	wantX := (0.1875 + 1*(2.625+0.125)) * 72
	wantY := (0.5 + 2*(1.0+0.0)) * 72
	if math.Abs(x-wantX) > 1e-9 || math.Abs(y-wantY) > 1e-9 {
		t.Errorf("origin(2,1) = (%g, %g), want (%g, %g)", x, y, wantX, wantY)
	}
}
