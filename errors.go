package paleolabel

import (
	"errors"
	"fmt"
)

// Sentinel errors for rejected style and content configurations. All of
// them are raised before any fitting or drawing begins; rendering itself
// never fails, it degrades.
var (
	ErrInvalidDimension = errors.New("paleolabel: label width and height must be positive")
	ErrInvalidBorder    = errors.New("paleolabel: border thickness must not be negative")
	ErrInvalidPadding   = errors.New("paleolabel: padding fraction must be in [0, 0.5)")
	ErrInvalidFontSize  = errors.New("paleolabel: font size must be positive")
	ErrInvalidColor     = errors.New("paleolabel: invalid color")
	ErrEmptyContent     = errors.New("paleolabel: content has no fields and no text")
)

// StyleError reports which part of a style or content configuration was
// rejected. It wraps one of the sentinel errors above.
type StyleError struct {
	Op  string // offending part, e.g. "padding", "field Genus"
	Err error  // underlying error
}

func (e *StyleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: invalid configuration", e.Op)
}

func (e *StyleError) Unwrap() error {
	return e.Err
}

// newStyleError creates a StyleError wrapping err with the offending part.
func newStyleError(op string, err error) *StyleError {
	return &StyleError{Op: op, Err: err}
}
