// Package sheet tiles rendered labels across the pages of a PDF document.
//
// The label renderer itself is a pure function over a drawing surface; this
// package supplies the gofpdf-backed surface, the grid arithmetic for
// multi-up label stock, and options for page metadata, pre-printed template
// backdrops, and specimen-number barcodes.
package sheet

import (
	"fmt"
	"io"

	gofpdf "github.com/lvillar/gofpdf"

	"github.com/lvillar/paleolabel"
	"github.com/lvillar/paleolabel/measure"
)

// Write renders the labels onto one or more pages and writes the finished
// PDF to w. All labels share one style; the grid defaults to FitLetter and
// can be replaced with WithLayout.
func Write(w io.Writer, labels []paleolabel.Content, style paleolabel.LabelStyle, opts ...Option) error {
	cfg := &sheetConfig{pageWidth: LetterWidth, pageHeight: LetterHeight}
	for _, opt := range opts {
		opt(cfg)
	}

	layout := FitLetter(style)
	if cfg.layout != nil {
		layout = *cfg.layout
		style.WidthInches = layout.LabelWidth
		style.HeightInches = layout.LabelHeight
	}
	if layout.Rows < 1 || layout.Cols < 1 {
		return fmt.Errorf("sheet: layout %q has an empty grid", layout.Name)
	}

	if err := style.Validate(); err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	for i, content := range labels {
		if err := content.Validate(); err != nil {
			return fmt.Errorf("sheet: label %d: %w", i+1, err)
		}
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: cfg.pageWidth, Ht: cfg.pageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	if cfg.title != "" {
		pdf.SetTitle(cfg.title, true)
	}
	if cfg.author != "" {
		pdf.SetAuthor(cfg.author, true)
	}
	if cfg.subject != "" {
		pdf.SetSubject(cfg.subject, true)
	}

	var backdrop *templateBackdrop
	if cfg.templatePath != "" {
		backdrop = newTemplateBackdrop(pdf, cfg.templatePath)
	}

	surf := &pdfSurface{pdf: pdf}
	perSheet := layout.PerSheet()

	for i, content := range labels {
		if i%perSheet == 0 {
			pdf.AddPage()
			if backdrop != nil {
				backdrop.stamp(pdf, cfg.pageWidth, cfg.pageHeight)
			}
		}
		idx := i % perSheet
		x, y := layout.origin(idx/layout.Cols, idx%layout.Cols)

		if err := renderLabel(surf, content, x, y, style, cfg, i); err != nil {
			return err
		}
	}
	if len(labels) == 0 {
		pdf.AddPage()
	}

	if pdf.Err() {
		return fmt.Errorf("sheet: %w", pdf.Error())
	}
	return pdf.Output(w)
}

// renderLabel draws one label, carving a barcode strip out of the text area
// when a barcode is configured and the label carries the barcode field.
func renderLabel(surf *pdfSurface, content paleolabel.Content, x, y float64, style paleolabel.LabelStyle, cfg *sheetConfig, n int) error {
	value := barcodeValue(content, cfg)
	if value == "" {
		return paleolabel.Render(surf, content, x, y, style)
	}

	width := measure.InchesToPoints(style.WidthInches)
	height := measure.InchesToPoints(style.HeightInches)

	// The border stays at full card size; the text renderer only sees
	// the card above the barcode strip.
	if style.BorderThickness > 0 {
		surf.DrawRect(x, y, width, height, style.BorderThickness)
	}
	textStyle := style
	textStyle.BorderThickness = 0
	textStyle.HeightInches = measure.PointsToInches(height - cfg.barcodeHeight - barcodeGap)
	if err := paleolabel.Render(surf, content, x, y, textStyle); err != nil {
		return fmt.Errorf("sheet: label %d: %w", n+1, err)
	}

	return drawBarcode(surf.pdf, value, cfg, style, x, y, width, height, n)
}

// barcodeValue returns the value to encode for a label, or "" when no
// barcode applies.
func barcodeValue(content paleolabel.Content, cfg *sheetConfig) string {
	if cfg.barcodeField == "" || content.IsText() {
		return ""
	}
	for _, f := range content.Fields() {
		if f.Name == cfg.barcodeField {
			return f.Value
		}
	}
	return ""
}
