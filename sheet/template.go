package sheet

import (
	gofpdf "github.com/lvillar/gofpdf"
	"github.com/lvillar/gofpdf/contrib/gofpdi"
)

// templateBackdrop holds an imported page from an existing PDF so it can be
// stamped underneath every sheet.
type templateBackdrop struct {
	imp *gofpdi.Importer
	tpl int
}

// newTemplateBackdrop imports page 1 of the source file. Import problems
// surface through the document's error state, like any other gofpdf draw.
func newTemplateBackdrop(pdf *gofpdf.Fpdf, path string) *templateBackdrop {
	imp := gofpdi.NewImporter()
	tpl := imp.ImportPage(pdf, path, 1, "/MediaBox")
	return &templateBackdrop{imp: imp, tpl: tpl}
}

// stamp draws the imported page across the full current page.
func (t *templateBackdrop) stamp(pdf *gofpdf.Fpdf, w, h float64) {
	t.imp.UseImportedTemplate(pdf, t.tpl, 0, 0, w, h)
}
