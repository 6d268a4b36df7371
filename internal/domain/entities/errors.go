package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for an output format other than xml or json
	ErrUnsupportedFormat = errors.New("unrecognized or unsupported output format")

	// ErrMissingInput is returned when a required input document is not provided
	ErrMissingInput = errors.New("missing required input")
)

// RenderError reports a failure to render or encode an output artifact
type RenderError struct {
	Operation string
	Format    string
	Err       error
}

func (e *RenderError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("failed to %s (%s): %v", e.Operation, e.Format, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
