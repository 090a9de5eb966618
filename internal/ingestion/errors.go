package ingestion

import "fmt"

// MalformedInputError is returned when a request body or file cannot be read as
// a résumé record: invalid JSON or YAML, a non-object root, or a schema type
// violation.
type MalformedInputError struct {
	Message string

	// Field is the offending JSON path for schema violations, "(root)" for
	// the document itself, or empty when unknown.
	Field string

	Cause error
}

func (e *MalformedInputError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s at %s", msg, e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("malformed input: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("malformed input: %s", msg)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Cause
}
