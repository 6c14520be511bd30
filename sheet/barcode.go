package sheet

import (
	"bytes"
	"fmt"
	"image/png"
	"math"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"
	gofpdf "github.com/lvillar/gofpdf"
	pdf417 "github.com/ruudk/golang-pdf417"

	"github.com/lvillar/paleolabel"
)

// barcodeGap separates the text area from the barcode strip, in points.
const barcodeGap = 3.0

// barcodeScale oversamples the rasterized code relative to its printed
// point size so it stays crisp at print resolution.
const barcodeScale = 4

// encodeBarcode builds the symbology image for a printed area of
// widthPt x heightPt points.
func encodeBarcode(value string, format BarcodeFormat, widthPt, heightPt float64) (barcode.Barcode, error) {
	switch format {
	case QR:
		code, err := qr.Encode(value, qr.M, qr.Auto)
		if err != nil {
			return nil, err
		}
		side := int(heightPt) * barcodeScale
		return barcode.Scale(code, side, side)
	case PDF417:
		code := pdf417.Encode(value, 6, 2)
		return barcode.Scale(code, int(widthPt)*barcodeScale, int(heightPt)*barcodeScale)
	default:
		code, err := code128.Encode(value)
		if err != nil {
			return nil, err
		}
		return barcode.Scale(code, int(widthPt)*barcodeScale, int(heightPt)*barcodeScale)
	}
}

// drawBarcode rasterizes the code, registers it as an embedded PNG, and
// places it in the strip at the bottom of the label.
func drawBarcode(pdf *gofpdf.Fpdf, value string, cfg *sheetConfig, style paleolabel.LabelStyle, x, y, width, height float64, n int) error {
	padding := style.PaddingFraction * math.Min(width, height)

	drawW := width - 2*padding
	if cfg.barcodeFormat == QR {
		// QR codes are square.
		drawW = cfg.barcodeHeight
	}

	img, err := encodeBarcode(value, cfg.barcodeFormat, drawW, cfg.barcodeHeight)
	if err != nil {
		return fmt.Errorf("sheet: barcode for %q: %w", value, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("sheet: encoding barcode image: %w", err)
	}

	name := fmt.Sprintf("barcode-%d", n)
	opts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader(name, opts, &buf)

	bcX := x + (width-drawW)/2
	bcY := y + height - padding - cfg.barcodeHeight
	pdf.ImageOptions(name, bcX, bcY, drawW, cfg.barcodeHeight, false, opts, 0, "")
	return nil
}
