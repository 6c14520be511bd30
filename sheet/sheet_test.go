package sheet_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	gofpdf "github.com/lvillar/gofpdf"

	"github.com/lvillar/paleolabel"
	"github.com/lvillar/paleolabel/sheet"
)

func testLabels(n int) []paleolabel.Content {
	labels := make([]paleolabel.Content, n)
	for i := range labels {
		labels[i] = paleolabel.Fields(
			paleolabel.Field{Name: "Genus", Value: "Tyrannosaurus"},
			paleolabel.Field{Name: "Species", Value: "rex"},
			paleolabel.Field{Name: "Locality", Value: "Hell Creek Formation, MT"},
		)
	}
	return labels
}

func TestWriteBasicSheet(t *testing.T) {
	var buf bytes.Buffer
	if err := sheet.Write(&buf, testLabels(3), paleolabel.DefaultStyle()); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty PDF output")
	}
	t.Logf("Sheet PDF: %d bytes", buf.Len())
}

func TestWriteMultiPage(t *testing.T) {
	// The stock card tiles 8 per letter page; 20 labels need 3 pages.
	var buf bytes.Buffer
	err := sheet.Write(&buf, testLabels(20), paleolabel.DefaultStyle(),
		sheet.WithTitle("Drawer 14"),
		sheet.WithAuthor("Field Museum"),
	)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty PDF output")
	}
}

func TestWriteAveryLayout(t *testing.T) {
	var buf bytes.Buffer
	err := sheet.Write(&buf, testLabels(30), paleolabel.DefaultStyle(),
		sheet.WithLayout(sheet.Avery5160),
	)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty PDF output")
	}
}

func TestWriteFreeTextLabels(t *testing.T) {
	labels := []paleolabel.Content{
		paleolabel.Text("COLLECTION OF J. ORTEGA-HERNANDEZ"),
		paleolabel.Text("DO NOT OPEN WITHOUT CURATOR APPROVAL"),
	}
	var buf bytes.Buffer
	if err := sheet.Write(&buf, labels, paleolabel.DefaultStyle()); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestWriteRejectsInvalidStyle(t *testing.T) {
	style := paleolabel.DefaultStyle()
	style.PaddingFraction = 0.75
	var buf bytes.Buffer
	err := sheet.Write(&buf, testLabels(1), style)
	if !errors.Is(err, paleolabel.ErrInvalidPadding) {
		t.Errorf("got %v, want ErrInvalidPadding", err)
	}
}

func TestWriteRejectsEmptyLabel(t *testing.T) {
	var buf bytes.Buffer
	err := sheet.Write(&buf, []paleolabel.Content{paleolabel.Fields()}, paleolabel.DefaultStyle())
	if !errors.Is(err, paleolabel.ErrEmptyContent) {
		t.Errorf("got %v, want ErrEmptyContent", err)
	}
}

func TestWriteBarcodes(t *testing.T) {
	labels := []paleolabel.Content{
		paleolabel.Fields(
			paleolabel.Field{Name: "Catalog No.", Value: "UCMP 137538"},
			paleolabel.Field{Name: "Genus", Value: "Triceratops"},
		),
		// No catalog number: rendered without a barcode strip.
		paleolabel.Fields(
			paleolabel.Field{Name: "Genus", Value: "Edmontosaurus"},
		),
	}

	for _, format := range []sheet.BarcodeFormat{sheet.Code128, sheet.QR, sheet.PDF417} {
		var buf bytes.Buffer
		err := sheet.Write(&buf, labels, paleolabel.DefaultStyle(),
			sheet.WithBarcode("Catalog No.", format, 30),
		)
		if err != nil {
			t.Fatalf("write with barcode format %d: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Errorf("format %d: expected non-empty PDF output", format)
		}
	}
}

func TestWriteTemplateBackdrop(t *testing.T) {
	dir := t.TempDir()
	tplPath := filepath.Join(dir, "stock.pdf")

	// Generate the pre-printed stock template the labels go on top of.
	tpl := gofpdf.New("P", "pt", "Letter", "")
	tpl.AddPage()
	tpl.SetFont("Helvetica", "", 9)
	tpl.Text(36, 780, "Museum of Paleontology - specimen label stock")
	if err := tpl.OutputFileAndClose(tplPath); err != nil {
		t.Fatalf("creating template PDF: %v", err)
	}

	var buf bytes.Buffer
	err := sheet.Write(&buf, testLabels(2), paleolabel.DefaultStyle(),
		sheet.WithTemplatePDF(tplPath),
	)
	if err != nil {
		t.Fatalf("write with template: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty PDF output")
	}
}
