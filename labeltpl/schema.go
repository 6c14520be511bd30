// Package labeltpl provides a JSON template for label batches.
//
// A template carries the label style (dimensions, default field/value text
// styles, per-field overrides), the sheet layout to tile onto, and the
// labels themselves, so a whole print run can be described in one document
// that is easy for both humans and form UIs to produce.
//
// Example JSON:
//
//	{
//	  "title": "Drawer 14 relabel",
//	  "style": {
//	    "widthInches": 3.25,
//	    "heightInches": 2.25,
//	    "field": {"family": "Courier", "size": 10, "bold": true},
//	    "value": {"family": "Courier", "size": 10}
//	  },
//	  "labels": [
//	    {"fields": [
//	      {"name": "Genus", "value": "Tyrannosaurus"},
//	      {"name": "Species", "value": "rex"}
//	    ]},
//	    {"text": "COLLECTION OF THE FIELD MUSEUM"}
//	  ]
//	}
package labeltpl

// Template is the top-level document describing one print run.
type Template struct {
	Title   string   `json:"title,omitempty"`
	Author  string   `json:"author,omitempty"`
	Subject string   `json:"subject,omitempty"`
	Style   *Style   `json:"style,omitempty"`
	Layout  string   `json:"layout,omitempty"` // letter (default), avery5160, avery5161, avery5163, museum-large, specimen-small
	Barcode *Barcode `json:"barcode,omitempty"`
	Labels  []Label  `json:"labels"`
}

// Style overlays the stock label style. Absent fields keep their defaults.
type Style struct {
	WidthInches     float64  `json:"widthInches,omitempty"`
	HeightInches    float64  `json:"heightInches,omitempty"`
	BorderThickness *float64 `json:"borderThickness,omitempty"` // points
	PaddingFraction *float64 `json:"paddingFraction,omitempty"`

	Field     *TextStyle `json:"field,omitempty"`
	Value     *TextStyle `json:"value,omitempty"`
	Separator *string    `json:"separator,omitempty"`
	ShowEmpty *bool      `json:"showEmptyFields,omitempty"`

	Overrides map[string]FieldStyle `json:"overrides,omitempty"`
}

// TextStyle overlays one text style. Absent fields keep the base value.
type TextStyle struct {
	Family string  `json:"family,omitempty"` // Courier, Helvetica, Times-Roman
	Size   float64 `json:"size,omitempty"`   // points
	Color  string  `json:"color,omitempty"`  // hex, e.g. "#5a3921"
	Bold   *bool   `json:"bold,omitempty"`
	Italic *bool   `json:"italic,omitempty"`
}

// FieldStyle overrides the styling of one named field.
type FieldStyle struct {
	Field       *TextStyle `json:"field,omitempty"`
	Value       *TextStyle `json:"value,omitempty"`
	Separator   *string    `json:"separator,omitempty"`
	ShowIfEmpty *bool      `json:"showIfEmpty,omitempty"`
}

// Label is one card: either ordered field/value pairs or free text, never
// both. Fields render in the order listed.
type Label struct {
	Text   string      `json:"text,omitempty"`
	Fields []FieldPair `json:"fields,omitempty"`
}

// FieldPair is one field/value entry. An array of pairs, rather than a
// JSON object, keeps the render order explicit.
type FieldPair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Barcode asks for a machine-readable code on each label that carries the
// named field.
type Barcode struct {
	Field  string  `json:"field"`
	Format string  `json:"format,omitempty"` // code128 (default), qr, pdf417
	Height float64 `json:"height,omitempty"` // points, default 24
}
