package labeltpl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lvillar/paleolabel"
	"github.com/lvillar/paleolabel/labeltpl"
)

func TestParseValidation(t *testing.T) {
	cases := []struct {
		name string
		json string
		want string // substring of the expected error, "" for success
	}{
		{"minimal", `{"labels": [{"text": "hello"}]}`, ""},
		{"bad json", `{"labels": [`, "parsing template"},
		{"both forms", `{"labels": [{"text": "x", "fields": [{"name": "a", "value": "b"}]}]}`, "both text and fields"},
		{"empty label", `{"labels": [{}]}`, "label 1 is empty"},
		{"unknown layout", `{"layout": "a4", "labels": [{"text": "x"}]}`, `unknown layout "a4"`},
		{"barcode no field", `{"barcode": {"format": "qr"}, "labels": [{"text": "x"}]}`, "barcode needs a field"},
		{"barcode bad format", `{"barcode": {"field": "No.", "format": "ean13"}, "labels": [{"text": "x"}]}`, "unknown barcode format"},
	}
	for _, c := range cases {
		_, err := labeltpl.Parse([]byte(c.json))
		if c.want == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", c.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: got %v, want error containing %q", c.name, err, c.want)
		}
	}
}

func TestLabelStyleOverlay(t *testing.T) {
	tpl, err := labeltpl.Parse([]byte(`{
		"style": {
			"widthInches": 2.0,
			"heightInches": 1.0,
			"borderThickness": 0,
			"value": {"family": "Times-Roman", "size": 12, "color": "#804000", "italic": true},
			"separator": " - ",
			"overrides": {
				"Species": {"value": {"italic": true}, "showIfEmpty": false}
			}
		},
		"labels": [{"text": "x"}]
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	style, err := tpl.LabelStyle()
	if err != nil {
		t.Fatalf("style: %v", err)
	}
	if style.WidthInches != 2.0 || style.HeightInches != 1.0 {
		t.Errorf("dimensions = %gx%g, want 2x1", style.WidthInches, style.HeightInches)
	}
	if style.BorderThickness != 0 {
		t.Errorf("border = %g, want explicit 0", style.BorderThickness)
	}
	v := style.DefaultValue
	if v.FontFamily != paleolabel.FamilyTimes || v.FontSize != 12 || !v.Italic {
		t.Errorf("value style not overlaid: %+v", v)
	}
	if v.FontName() != "Times-Italic" {
		t.Errorf("value font = %q, want Times-Italic", v.FontName())
	}
	if style.DefaultSeparator != " - " {
		t.Errorf("separator = %q", style.DefaultSeparator)
	}
	// Field defaults untouched by a value-only overlay.
	if style.DefaultField.FontFamily != paleolabel.FamilyCourier || !style.DefaultField.Bold {
		t.Errorf("field style changed unexpectedly: %+v", style.DefaultField)
	}

	ov := style.FieldStyleFor("Species")
	if !ov.Value.Italic || ov.ShowIfEmpty {
		t.Errorf("override not resolved: %+v", ov)
	}
	// Unlisted fields keep the overlaid defaults.
	if got := style.FieldStyleFor("Genus"); got.Separator != " - " {
		t.Errorf("default separator not inherited: %+v", got)
	}
}

func TestLabelStyleRejectsBadColor(t *testing.T) {
	tpl, err := labeltpl.Parse([]byte(`{
		"style": {"value": {"color": "#nothex"}},
		"labels": [{"text": "x"}]
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := tpl.LabelStyle(); err == nil {
		t.Error("expected error for invalid hex color")
	}
}

func TestContentsOrder(t *testing.T) {
	tpl, err := labeltpl.Parse([]byte(`{
		"labels": [
			{"fields": [
				{"name": "Locality", "value": "Bone Cabin Quarry"},
				{"name": "Genus", "value": "Apatosaurus"},
				{"name": "Collector", "value": ""}
			]},
			{"text": "free text card"}
		]
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	contents := tpl.Contents()
	if len(contents) != 2 {
		t.Fatalf("got %d contents, want 2", len(contents))
	}
	fields := contents[0].Fields()
	wantOrder := []string{"Locality", "Genus", "Collector"}
	for i, name := range wantOrder {
		if fields[i].Name != name {
			t.Errorf("field %d = %q, want %q (order must be preserved)", i, fields[i].Name, name)
		}
	}
	if !contents[1].IsText() || contents[1].Body() != "free text card" {
		t.Errorf("second label should be free text, got %+v", contents[1])
	}
}

func TestRenderEndToEnd(t *testing.T) {
	template := `{
		"title": "Drawer 14",
		"layout": "avery5163",
		"labels": [
			{"fields": [
				{"name": "Genus", "value": "Tyrannosaurus"},
				{"name": "Species", "value": "rex"},
				{"name": "Formation", "value": "Hell Creek"}
			]},
			{"text": "SEE PREPARATION NOTES"}
		]
	}`

	var buf bytes.Buffer
	if err := labeltpl.Render(&buf, []byte(template)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty PDF output")
	}
	t.Logf("Template PDF: %d bytes", buf.Len())
}
