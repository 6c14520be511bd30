package paleolabel

import (
	"math"

	"github.com/lvillar/paleolabel/measure"
	"github.com/lvillar/paleolabel/textfit"
)

// Render draws one label onto the surface with its top-left corner at
// (x, y), both in points. The style and content are validated up front;
// after that the render cannot fail, it degrades: the font shrinks to fit
// and lines past the bottom padding are silently omitted.
func Render(s Surface, content Content, x, y float64, style LabelStyle) error {
	if err := style.Validate(); err != nil {
		return err
	}
	if err := content.Validate(); err != nil {
		return err
	}

	width := measure.InchesToPoints(style.WidthInches)
	height := measure.InchesToPoints(style.HeightInches)
	padding := style.PaddingFraction * math.Min(width, height)
	textWidth := width - 2*padding
	textHeight := height - 2*padding

	if style.BorderThickness > 0 {
		s.DrawRect(x, y, width, height, style.BorderThickness)
	}

	if content.IsText() {
		renderTextLabel(s, content.Body(), x, y, width, height, padding, textWidth, textHeight, style)
		return nil
	}
	renderFieldedLabel(s, content.Fields(), x, y, height, padding, textWidth, textHeight, style)
	return nil
}

// renderTextLabel draws a free-form text body centered in the card, set in
// the style's default value style.
func renderTextLabel(s Surface, text string, x, y, width, height, padding, textWidth, textHeight float64, style LabelStyle) {
	vs := style.DefaultValue
	font := vs.FontName()

	lines, size := textfit.Fit([]string{text}, textWidth, textHeight,
		vs.FontSize, font, textfit.MinFontSize, s.TextWidth)

	s.SetFont(font, size)
	s.SetTextColor(vs.Color)

	baseline := y + padding + size
	bottom := y + height - padding

	for _, line := range lines {
		if baseline > bottom {
			break
		}
		lineWidth := s.TextWidth(line, font, size)
		s.DrawText(line, x+(width-lineWidth)/2, baseline)
		baseline += size * textfit.LineHeightRatio
	}
}

// styledField is one surviving field/value pair with its resolved styles.
type styledField struct {
	name  string
	value string
	style FieldStyle
}

// renderFieldedLabel draws field: value lines top-down at the left padding
// edge, each run in its own font and color.
func renderFieldedLabel(s Surface, fields []Field, x, y, height, padding, textWidth, textHeight float64, style LabelStyle) {
	var survivors []styledField
	for _, f := range fields {
		fs := style.FieldStyleFor(f.Name)
		if f.Value == "" && !fs.ShowIfEmpty {
			continue
		}
		survivors = append(survivors, styledField{name: f.Name, value: f.Value, style: fs})
	}
	if len(survivors) == 0 {
		return
	}

	// The fitting pass is conservative: it starts from the largest font
	// size any surviving run wants, and measures every synthetic line
	// with the first survivor's field font.
	initial := 0.0
	for _, sf := range survivors {
		initial = math.Max(initial, sf.style.Field.FontSize)
		initial = math.Max(initial, sf.style.Value.FontSize)
	}

	runs := make([]string, len(survivors))
	for i, sf := range survivors {
		runs[i] = sf.name + sf.style.Separator + sf.value
	}

	firstFont := survivors[0].style.Field.FontName()
	_, final := textfit.Fit(runs, textWidth, textHeight,
		initial, firstFont, textfit.MinFontSize, s.TextWidth)

	// Scale every per-field size by the same factor so relative size
	// differences between fields survive the shrink.
	scale := final / initial

	baseline := y + padding + final
	bottom := y + height - padding

	for _, sf := range survivors {
		if baseline > bottom {
			break
		}

		fieldFont := sf.style.Field.FontName()
		valueFont := sf.style.Value.FontName()
		fieldSize := sf.style.Field.FontSize * scale
		valueSize := sf.style.Value.FontSize * scale

		fieldText := sf.name + sf.style.Separator
		s.SetFont(fieldFont, fieldSize)
		s.SetTextColor(sf.style.Field.Color)
		s.DrawText(fieldText, x+padding, baseline)

		fieldWidth := s.TextWidth(fieldText, fieldFont, fieldSize)
		s.SetFont(valueFont, valueSize)
		s.SetTextColor(sf.style.Value.Color)
		s.DrawText(sf.value, x+padding+fieldWidth, baseline)

		baseline += math.Max(fieldSize, valueSize) * textfit.LineHeightRatio
	}
}
