package labeltpl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lvillar/paleolabel"
	"github.com/lvillar/paleolabel/sheet"
)

// Render parses a JSON template and writes the resulting label sheet PDF
// to w.
func Render(w io.Writer, jsonTemplate []byte) error {
	t, err := Parse(jsonTemplate)
	if err != nil {
		return err
	}
	return t.Render(w)
}

// Parse decodes and validates a JSON template.
func Parse(data []byte) (*Template, error) {
	var t Template
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("labeltpl: parsing template: %w", err)
	}

	for i, l := range t.Labels {
		if l.Text != "" && len(l.Fields) > 0 {
			return nil, fmt.Errorf("labeltpl: label %d has both text and fields", i+1)
		}
		if l.Text == "" && len(l.Fields) == 0 {
			return nil, fmt.Errorf("labeltpl: label %d is empty", i+1)
		}
	}

	if t.Layout != "" {
		if _, ok := layouts[t.Layout]; !ok {
			return nil, fmt.Errorf("labeltpl: unknown layout %q", t.Layout)
		}
	}
	if t.Barcode != nil {
		if t.Barcode.Field == "" {
			return nil, fmt.Errorf("labeltpl: barcode needs a field name")
		}
		if _, err := t.Barcode.format(); err != nil {
			return nil, err
		}
	}
	return &t, nil
}

// Render writes the template's label sheet PDF to w.
func (t *Template) Render(w io.Writer) error {
	style, err := t.LabelStyle()
	if err != nil {
		return err
	}

	var opts []sheet.Option
	if t.Title != "" {
		opts = append(opts, sheet.WithTitle(t.Title))
	}
	if t.Author != "" {
		opts = append(opts, sheet.WithAuthor(t.Author))
	}
	if t.Subject != "" {
		opts = append(opts, sheet.WithSubject(t.Subject))
	}
	if t.Layout != "" {
		if l := layouts[t.Layout]; l != nil {
			opts = append(opts, sheet.WithLayout(*l))
		}
	}
	if t.Barcode != nil {
		format, err := t.Barcode.format()
		if err != nil {
			return err
		}
		height := t.Barcode.Height
		if height <= 0 {
			height = 24
		}
		opts = append(opts, sheet.WithBarcode(t.Barcode.Field, format, height))
	}

	return sheet.Write(w, t.Contents(), style, opts...)
}

// layouts maps template layout names to sheet grids. The nil entry is the
// computed letter-page fit.
var layouts = map[string]*sheet.Layout{
	"letter":         nil,
	"avery5160":      &sheet.Avery5160,
	"avery5161":      &sheet.Avery5161,
	"avery5163":      &sheet.Avery5163,
	"museum-large":   &sheet.MuseumLarge,
	"specimen-small": &sheet.SpecimenSmall,
}

func (b *Barcode) format() (sheet.BarcodeFormat, error) {
	switch b.Format {
	case "", "code128":
		return sheet.Code128, nil
	case "qr":
		return sheet.QR, nil
	case "pdf417":
		return sheet.PDF417, nil
	}
	return 0, fmt.Errorf("labeltpl: unknown barcode format %q", b.Format)
}

// LabelStyle resolves the template's style overlay against the stock style.
func (t *Template) LabelStyle() (paleolabel.LabelStyle, error) {
	style := paleolabel.DefaultStyle()
	s := t.Style
	if s == nil {
		return style, nil
	}

	if s.WidthInches > 0 {
		style.WidthInches = s.WidthInches
	}
	if s.HeightInches > 0 {
		style.HeightInches = s.HeightInches
	}
	if s.BorderThickness != nil {
		style.BorderThickness = *s.BorderThickness
	}
	if s.PaddingFraction != nil {
		style.PaddingFraction = *s.PaddingFraction
	}

	var err error
	if style.DefaultField, err = overlayText(style.DefaultField, s.Field, "field"); err != nil {
		return style, err
	}
	if style.DefaultValue, err = overlayText(style.DefaultValue, s.Value, "value"); err != nil {
		return style, err
	}
	if s.Separator != nil {
		style.DefaultSeparator = *s.Separator
	}
	if s.ShowEmpty != nil {
		style.ShowEmptyFields = *s.ShowEmpty
	}

	if len(s.Overrides) > 0 {
		style.FieldOverrides = make(map[string]paleolabel.FieldStyle, len(s.Overrides))
		for name, o := range s.Overrides {
			resolved := style.FieldStyleFor(name) // defaults, no override registered yet
			if o.Field != nil {
				if resolved.Field, err = overlayText(resolved.Field, o.Field, name); err != nil {
					return style, err
				}
			}
			if o.Value != nil {
				if resolved.Value, err = overlayText(resolved.Value, o.Value, name); err != nil {
					return style, err
				}
			}
			if o.Separator != nil {
				resolved.Separator = *o.Separator
			}
			if o.ShowIfEmpty != nil {
				resolved.ShowIfEmpty = *o.ShowIfEmpty
			}
			style.FieldOverrides[name] = resolved
		}
	}

	if err := style.Validate(); err != nil {
		return style, fmt.Errorf("labeltpl: %w", err)
	}
	return style, nil
}

// overlayText applies the non-absent parts of the JSON text style to base.
func overlayText(base paleolabel.TextStyle, ts *TextStyle, where string) (paleolabel.TextStyle, error) {
	if ts == nil {
		return base, nil
	}
	if ts.Family != "" {
		base.FontFamily = ts.Family
	}
	if ts.Size > 0 {
		base.FontSize = ts.Size
	}
	if ts.Color != "" {
		c, err := paleolabel.ParseHexColor(ts.Color)
		if err != nil {
			return base, fmt.Errorf("labeltpl: %s style: %w", where, err)
		}
		base.Color = c
	}
	if ts.Bold != nil {
		base.Bold = *ts.Bold
	}
	if ts.Italic != nil {
		base.Italic = *ts.Italic
	}
	return base, nil
}

// Contents converts the template's labels into renderable content.
func (t *Template) Contents() []paleolabel.Content {
	out := make([]paleolabel.Content, 0, len(t.Labels))
	for _, l := range t.Labels {
		if l.Text != "" {
			out = append(out, paleolabel.Text(l.Text))
			continue
		}
		c := paleolabel.Fields()
		for _, f := range l.Fields {
			c = c.Add(f.Name, f.Value)
		}
		out = append(out, c)
	}
	return out
}
