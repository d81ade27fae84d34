package certmerge

import (
	"errors"
	"fmt"
)

// ErrInvalidTemplate indicates the template is not a readable .docx package.
var ErrInvalidTemplate = errors.New("invalid docx template")

// ErrNoConverter indicates no external PDF conversion tool is available.
var ErrNoConverter = errors.New("no pdf converter available")

// TemplateError represents a failure rendering the template for one context.
type TemplateError struct {
	Err error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template render failed: %v", e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// RowError represents a failure generating the output for a single row.
// Under the skip-and-report policy these are collected in the Result
// instead of aborting the batch.
type RowError struct {
	Row  int
	Name string
	Err  error
}

func (e *RowError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("row %d (%s): %v", e.Row, e.Name, e.Err)
	}
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
