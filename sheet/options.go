package sheet

// Option is a functional option for configuring a sheet written by Write.
type Option func(*sheetConfig)

// BarcodeFormat selects the symbology used by WithBarcode.
type BarcodeFormat int

const (
	Code128 BarcodeFormat = iota
	QR
	PDF417
)

type sheetConfig struct {
	layout       *Layout
	pageWidth    float64
	pageHeight   float64
	title        string
	author       string
	subject      string
	templatePath string

	barcodeField  string
	barcodeFormat BarcodeFormat
	barcodeHeight float64 // points
}

// WithLayout tiles labels using the given grid instead of the computed
// letter-page fit. The layout's label dimensions override the style's.
func WithLayout(l Layout) Option {
	return func(c *sheetConfig) {
		c.layout = &l
	}
}

// WithPageSize sets a custom page size in points. The default is a letter
// page (612 x 792).
func WithPageSize(width, height float64) Option {
	return func(c *sheetConfig) {
		c.pageWidth = width
		c.pageHeight = height
	}
}

// WithTitle sets the document title metadata.
func WithTitle(title string) Option {
	return func(c *sheetConfig) {
		c.title = title
	}
}

// WithAuthor sets the document author metadata.
func WithAuthor(author string) Option {
	return func(c *sheetConfig) {
		c.author = author
	}
}

// WithSubject sets the document subject metadata.
func WithSubject(subject string) Option {
	return func(c *sheetConfig) {
		c.subject = subject
	}
}

// WithTemplatePDF draws the first page of an existing PDF underneath every
// sheet, for printing onto pre-printed stock whose frame came as a PDF.
func WithTemplatePDF(path string) Option {
	return func(c *sheetConfig) {
		c.templatePath = path
	}
}

// WithBarcode stamps a machine-readable code of the named field's value in
// a strip of the given height (points) reserved at the bottom of each
// label. Labels where the field is missing or empty get no barcode and use
// the full card for text.
func WithBarcode(field string, format BarcodeFormat, heightPt float64) Option {
	return func(c *sheetConfig) {
		c.barcodeField = field
		c.barcodeFormat = format
		c.barcodeHeight = heightPt
	}
}
