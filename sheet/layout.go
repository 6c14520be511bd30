package sheet

import (
	"github.com/lvillar/paleolabel"
	"github.com/lvillar/paleolabel/measure"
)

// Letter page dimensions in points.
const (
	LetterWidth  = 612.0
	LetterHeight = 792.0
)

// Layout describes the grid a sheet of labels is tiled into. All lengths
// are in inches, matching how label stock is sold.
type Layout struct {
	Name        string
	Rows        int
	Cols        int
	LabelWidth  float64
	LabelHeight float64
	TopMargin   float64
	LeftMargin  float64
	RowSpacing  float64
	ColSpacing  float64
}

// Stock layouts for common label sheets.
var (
	// Avery5160 is the 30-up address label sheet.
	Avery5160 = Layout{
		Name: "Avery 5160", Rows: 10, Cols: 3,
		LabelWidth: 2.625, LabelHeight: 1.0,
		TopMargin: 0.5, LeftMargin: 0.1875,
		RowSpacing: 0.0, ColSpacing: 0.125,
	}

	// Avery5161 is the 20-up address label sheet.
	Avery5161 = Layout{
		Name: "Avery 5161", Rows: 10, Cols: 2,
		LabelWidth: 4.0, LabelHeight: 1.0,
		TopMargin: 0.5, LeftMargin: 0.25,
		RowSpacing: 0.0, ColSpacing: 0.25,
	}

	// Avery5163 is the 10-up shipping label sheet.
	Avery5163 = Layout{
		Name: "Avery 5163", Rows: 5, Cols: 2,
		LabelWidth: 4.0, LabelHeight: 2.0,
		TopMargin: 0.5, LeftMargin: 0.25,
		RowSpacing: 0.0, ColSpacing: 0.25,
	}

	// MuseumLarge holds four 3x4in display labels.
	MuseumLarge = Layout{
		Name: "Museum Large", Rows: 2, Cols: 2,
		LabelWidth: 3.0, LabelHeight: 4.0,
		TopMargin: 0.5, LeftMargin: 1.25,
		RowSpacing: 0.5, ColSpacing: 0.5,
	}

	// SpecimenSmall holds eighteen 2x1in drawer labels.
	SpecimenSmall = Layout{
		Name: "Small Specimen", Rows: 6, Cols: 3,
		LabelWidth: 2.0, LabelHeight: 1.0,
		TopMargin: 1.0, LeftMargin: 0.75,
		RowSpacing: 0.5, ColSpacing: 0.75,
	}
)

// Sheet geometry used by FitLetter, in inches.
const (
	fitMargin  = 0.1875
	fitSpacing = 0.125
	fitMaxCols = 3
	fitMaxRows = 10
)

// FitLetter derives a grid for the style's label size on a letter page:
// 0.1875in margins, 0.125in gutters, capped at 3 columns by 10 rows.
func FitLetter(style paleolabel.LabelStyle) Layout {
	usableWidth := measure.PointsToInches(LetterWidth) - 2*fitMargin
	usableHeight := measure.PointsToInches(LetterHeight) - 2*fitMargin

	cols := int(usableWidth / (style.WidthInches + fitSpacing))
	rows := int(usableHeight / (style.HeightInches + fitSpacing))
	if cols > fitMaxCols {
		cols = fitMaxCols
	}
	if rows > fitMaxRows {
		rows = fitMaxRows
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return Layout{
		Name: "Letter", Rows: rows, Cols: cols,
		LabelWidth:  style.WidthInches,
		LabelHeight: style.HeightInches,
		TopMargin:   fitMargin, LeftMargin: fitMargin,
		RowSpacing: fitSpacing, ColSpacing: fitSpacing,
	}
}

// PerSheet returns how many labels one page holds.
func (l Layout) PerSheet() int {
	return l.Rows * l.Cols
}

// origin returns the top-left corner of the label at (row, col), in points.
func (l Layout) origin(row, col int) (x, y float64) {
	x = measure.InchesToPoints(l.LeftMargin + float64(col)*(l.LabelWidth+l.ColSpacing))
	y = measure.InchesToPoints(l.TopMargin + float64(row)*(l.LabelHeight+l.RowSpacing))
	return
}
