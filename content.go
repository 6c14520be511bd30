package paleolabel

// Field is one named datum on a label, e.g. {"Genus", "Tyrannosaurus"}.
// Both the name and the value may be empty strings.
type Field struct {
	Name  string
	Value string
}

// Content is what gets printed on one label: either an ordered list of
// field/value pairs (rendered as field: value lines, in insertion order) or
// a single free-form text body (rendered centered, without field structure).
// The two forms are mutually exclusive.
type Content struct {
	fields   []Field
	text     string
	freeText bool
}

// Fields creates fielded content from the given pairs. Render order is the
// order given here; Add appends further pairs.
func Fields(fields ...Field) Content {
	return Content{fields: fields}
}

// Text creates free-form text content.
func Text(text string) Content {
	return Content{text: text, freeText: true}
}

// Add appends a field/value pair and returns the content for chaining.
// It has no effect on free-text content.
func (c Content) Add(name, value string) Content {
	if c.freeText {
		return c
	}
	c.fields = append(c.fields, Field{Name: name, Value: value})
	return c
}

// IsText reports whether this is free-form text content.
func (c Content) IsText() bool {
	return c.freeText
}

// Body returns the free-form text, or "" for fielded content.
func (c Content) Body() string {
	if !c.freeText {
		return ""
	}
	return c.text
}

// Fields returns the field/value pairs in render order. The caller must not
// modify the returned slice.
func (c Content) Fields() []Field {
	return c.fields
}

// Validate rejects content that would render nothing at all: fielded
// content with zero pairs, or free text that is empty.
func (c Content) Validate() error {
	if c.freeText {
		if c.text == "" {
			return newStyleError("content", ErrEmptyContent)
		}
		return nil
	}
	if len(c.fields) == 0 {
		return newStyleError("content", ErrEmptyContent)
	}
	return nil
}
