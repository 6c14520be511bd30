// Package paleolabel lays out and renders specimen labels: small printable
// cards carrying field/value pairs (taxonomy, locality, collector) or a
// free-form text body. Content is fitted into a fixed-size card by the
// textfit shrink-to-fit engine and drawn through an abstract Surface, so the
// same renderer drives PDF output (sheet), raster previews (preview), or a
// recording fake in tests.
package paleolabel

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB color with components normalized to the 0-1 range.
type Color struct {
	R, G, B float64
}

// Black is the default text and border color.
var Black = Color{0, 0, 0}

// ParseHexColor parses a "#rrggbb" or "rrggbb" hex color.
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	var c [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		c[i] = float64(v) / 255.0
	}
	return Color{R: c[0], G: c[1], B: c[2]}, nil
}

// RGB255 returns the color as 0-255 integer components, the form most
// drawing backends expect.
func (c Color) RGB255() (r, g, b int) {
	return int(c.R*255.0 + 0.5), int(c.G*255.0 + 0.5), int(c.B*255.0 + 0.5)
}

// The base font families with bold/italic variants. Families outside this
// set pass through FontName unchanged and are the drawing surface's problem.
const (
	FamilyCourier   = "Courier"
	FamilyHelvetica = "Helvetica"
	FamilyTimes     = "Times-Roman"
)

// fontVariants maps (family, bold, italic) to a concrete font identifier.
var fontVariants = map[string][4]string{
	// order: regular, bold, italic, bold italic
	FamilyCourier:   {"Courier", "Courier-Bold", "Courier-Oblique", "Courier-BoldOblique"},
	FamilyHelvetica: {"Helvetica", "Helvetica-Bold", "Helvetica-Oblique", "Helvetica-BoldOblique"},
	FamilyTimes:     {"Times-Roman", "Times-Bold", "Times-Italic", "Times-BoldItalic"},
}

// TextStyle describes how one run of text is drawn. The zero value is not
// useful; start from DefaultTextStyle.
type TextStyle struct {
	FontFamily string
	FontSize   float64 // points
	Color      Color
	Bold       bool
	Italic     bool
}

// DefaultTextStyle returns the style the original label sheets use: 10pt
// black Courier.
func DefaultTextStyle() TextStyle {
	return TextStyle{FontFamily: FamilyCourier, FontSize: 10, Color: Black}
}

// FontName resolves the family plus bold/italic flags to a concrete font
// identifier. Unknown families are returned as-is.
func (ts TextStyle) FontName() string {
	variants, ok := fontVariants[ts.FontFamily]
	if !ok {
		return ts.FontFamily
	}
	idx := 0
	if ts.Bold {
		idx |= 1
	}
	if ts.Italic {
		idx |= 2
	}
	return variants[idx]
}

// FieldStyle pairs the styles for a field name and its value, the separator
// drawn between them, and whether the field is rendered when its value is
// blank.
type FieldStyle struct {
	Field       TextStyle
	Value       TextStyle
	Separator   string
	ShowIfEmpty bool
}

// LabelStyle is the complete styling configuration for one label. It is
// immutable during a render pass; construct it once per export request.
type LabelStyle struct {
	WidthInches     float64
	HeightInches    float64
	BorderThickness float64 // points; 0 means no visible border
	PaddingFraction float64 // fraction of the smaller card dimension

	DefaultField     TextStyle
	DefaultValue     TextStyle
	DefaultSeparator string
	ShowEmptyFields  bool

	// FieldOverrides maps exact field names to their own styles.
	FieldOverrides map[string]FieldStyle
}

// DefaultStyle returns the stock 3.25in x 2.25in card: 1.5pt border, 5%
// padding, bold Courier field names and regular Courier values.
func DefaultStyle() LabelStyle {
	field := DefaultTextStyle()
	field.Bold = true
	return LabelStyle{
		WidthInches:      3.25,
		HeightInches:     2.25,
		BorderThickness:  1.5,
		PaddingFraction:  0.05,
		DefaultField:     field,
		DefaultValue:     DefaultTextStyle(),
		DefaultSeparator: ": ",
		ShowEmptyFields:  true,
	}
}

// FieldStyleFor resolves the style for a field: the exact-match override if
// one exists, otherwise a FieldStyle assembled from the defaults.
func (ls LabelStyle) FieldStyleFor(name string) FieldStyle {
	if fs, ok := ls.FieldOverrides[name]; ok {
		return fs
	}
	return FieldStyle{
		Field:       ls.DefaultField,
		Value:       ls.DefaultValue,
		Separator:   ls.DefaultSeparator,
		ShowIfEmpty: ls.ShowEmptyFields,
	}
}

// Validate checks the style preconditions: positive dimensions, non-negative
// border, padding below one half (at 0.5 the usable text area degenerates to
// nothing), and positive font sizes everywhere. It returns a *StyleError
// naming the offending part.
func (ls LabelStyle) Validate() error {
	if ls.WidthInches <= 0 || ls.HeightInches <= 0 {
		return newStyleError("dimensions", ErrInvalidDimension)
	}
	if ls.BorderThickness < 0 {
		return newStyleError("border", ErrInvalidBorder)
	}
	if ls.PaddingFraction < 0 || ls.PaddingFraction >= 0.5 {
		return newStyleError("padding", ErrInvalidPadding)
	}
	if ls.DefaultField.FontSize <= 0 {
		return newStyleError("default field style", ErrInvalidFontSize)
	}
	if ls.DefaultValue.FontSize <= 0 {
		return newStyleError("default value style", ErrInvalidFontSize)
	}
	for name, fs := range ls.FieldOverrides {
		if fs.Field.FontSize <= 0 || fs.Value.FontSize <= 0 {
			return newStyleError("field "+name, ErrInvalidFontSize)
		}
	}
	return nil
}
