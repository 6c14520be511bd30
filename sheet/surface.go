package sheet

import (
	gofpdf "github.com/lvillar/gofpdf"

	"github.com/lvillar/paleolabel"
)

// pdfFonts maps the renderer's concrete font identifiers onto gofpdf's
// built-in core fonts, which are addressed as (family, style string).
var pdfFonts = map[string][2]string{
	"Courier":               {"Courier", ""},
	"Courier-Bold":          {"Courier", "B"},
	"Courier-Oblique":       {"Courier", "I"},
	"Courier-BoldOblique":   {"Courier", "BI"},
	"Helvetica":             {"Helvetica", ""},
	"Helvetica-Bold":        {"Helvetica", "B"},
	"Helvetica-Oblique":     {"Helvetica", "I"},
	"Helvetica-BoldOblique": {"Helvetica", "BI"},
	"Times-Roman":           {"Times", ""},
	"Times-Bold":            {"Times", "B"},
	"Times-Italic":          {"Times", "I"},
	"Times-BoldItalic":      {"Times", "BI"},
}

// pdfSurface adapts a gofpdf document (unit "pt", top-left origin) to the
// paleolabel.Surface contract.
type pdfSurface struct {
	pdf *gofpdf.Fpdf
}

func (s *pdfSurface) setFont(font string, size float64) {
	if fs, ok := pdfFonts[font]; ok {
		s.pdf.SetFont(fs[0], fs[1], size)
		return
	}
	// Unknown identifiers pass straight through; gofpdf records the
	// failure in its error state.
	s.pdf.SetFont(font, "", size)
}

func (s *pdfSurface) TextWidth(txt, font string, size float64) float64 {
	s.setFont(font, size)
	return s.pdf.GetStringWidth(txt)
}

func (s *pdfSurface) SetFont(font string, size float64) {
	s.setFont(font, size)
}

func (s *pdfSurface) SetTextColor(c paleolabel.Color) {
	r, g, b := c.RGB255()
	s.pdf.SetTextColor(r, g, b)
}

func (s *pdfSurface) DrawText(txt string, x, y float64) {
	s.pdf.Text(x, y, txt)
}

func (s *pdfSurface) DrawRect(x, y, w, h, lineWidth float64) {
	s.pdf.SetLineWidth(lineWidth)
	s.pdf.Rect(x, y, w, h, "D")
}
