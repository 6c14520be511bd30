// Package textfit implements the shrink-to-fit algorithm that makes label
// text fit a fixed box: each input line is greedily word-wrapped to the
// available width, and the font size is stepped down until the stacked line
// height fits the available height, bottoming out at a minimum readable size.
//
// The package is pure: string widths come from an injected MeasureFunc, so
// it can be driven by a PDF backend, a raster font face, or a test stub.
package textfit

import "strings"

// MeasureFunc reports the rendered width in points of s set in the named
// font at the given size.
type MeasureFunc func(s, font string, size float64) float64

// Fitting constants shared by the whole rendering pipeline.
const (
	// LineHeightRatio is the vertical advance per line as a multiple of
	// the font size.
	LineHeightRatio = 1.2

	// MinFontSize is the smallest size the fitter will shrink to, in
	// points. Content that still overflows at this size is truncated.
	MinFontSize = 6.0

	// SizeStep is the amount the font size is reduced by on each failed
	// fitting pass, in points.
	SizeStep = 0.5
)

// Wrap greedily word-wraps text so that each output line measures at most
// width points in the given font and size. Words are never split: a single
// word wider than the box is emitted as its own line and may overflow
// horizontally. The result is never empty; empty or all-space input yields
// a single empty line.
func Wrap(text string, width, size float64, font string, m MeasureFunc) []string {
	words := strings.Fields(text)

	var lines []string
	var current string

	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m(candidate, font, size) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = word
		} else {
			// word alone is wider than the box; emit it unsplit
			lines = append(lines, word)
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// Fit wraps and stacks the input lines so they fit a width-by-height box,
// shrinking the font size from initialSize in SizeStep decrements until the
// total height fits. It returns the wrapped display lines and the size that
// produced them.
//
// If even minSize overflows, the lines wrapped at the smallest probed size
// are truncated to the whole number of lines that fit the height at minSize,
// and minSize is returned. Truncation is silent; callers wanting to warn can
// compare the returned line count against their content.
//
// The loop is bounded by (initialSize-minSize)/SizeStep and never errors.
func Fit(lines []string, width, height, initialSize float64, font string, minSize float64, m MeasureFunc) ([]string, float64) {
	var wrapped []string

	for size := initialSize; size >= minSize; size -= SizeStep {
		wrapped = wrapped[:0]
		for _, line := range lines {
			wrapped = append(wrapped, Wrap(line, width, size, font, m)...)
		}

		total := float64(len(wrapped)) * size * LineHeightRatio
		if total <= height {
			return wrapped, size
		}
	}

	// Minimum size still overflows: keep as many whole lines as fit.
	maxLines := int(height / (minSize * LineHeightRatio))
	if maxLines > len(wrapped) {
		maxLines = len(wrapped)
	}
	if maxLines < 0 {
		maxLines = 0
	}
	return wrapped[:maxLines], minSize
}
