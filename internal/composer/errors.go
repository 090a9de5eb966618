// Package composer assembles a résumé record into the ordered paragraphs of the
// résumé template.
package composer

import "fmt"

// MissingFieldError reports a required field that is absent from the record.
type MissingFieldError struct {
	// Path is the JSON path of the field, e.g. "header.name".
	Path string

	// Block names the part of the document that needs the field.
	Block string
}

func (e *MissingFieldError) Error() string {
	if e.Block != "" {
		return fmt.Sprintf("missing required field %s (needed by %s)", e.Path, e.Block)
	}
	return fmt.Sprintf("missing required field %s", e.Path)
}

// ComposeError represents a failure that is not tied to a single record field
type ComposeError struct {
	Message string
	Cause   error
}

func (e *ComposeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compose error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("compose error: %s", e.Message)
}

func (e *ComposeError) Unwrap() error {
	return e.Cause
}
