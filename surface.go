package paleolabel

// Surface is the drawing capability a renderer needs. Coordinates are in
// points with the origin at the page's top-left corner and y growing
// downward; text is positioned by its baseline.
//
// The renderer is a pure function over a Surface: it holds no state between
// calls, so labels may be rendered in any order as long as draw calls to one
// surface are serialized in the intended visual order.
type Surface interface {
	// TextWidth reports the width of s set in the named font at the
	// given size, without drawing anything.
	TextWidth(s, font string, size float64) float64

	// SetFont selects the font used by subsequent DrawText calls. The
	// font identifier comes from TextStyle.FontName; surfaces may reject
	// identifiers they cannot resolve through their own error handling.
	SetFont(font string, size float64)

	// SetTextColor selects the fill color for subsequent DrawText calls.
	SetTextColor(c Color)

	// DrawText draws s with its baseline at (x, y).
	DrawText(s string, x, y float64)

	// DrawRect strokes a rectangle outline with the given line width.
	DrawRect(x, y, w, h, lineWidth float64)
}
