package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/composer"
	"github.com/jonathan/resume-builder/internal/ingestion"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		tooLarge   *http.MaxBytesError
		malformed  *ingestion.MalformedInputError
		validation *ErrValidation
		missing    *composer.MissingFieldError
	)

	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &malformed), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &missing):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// errorField returns the record field an error refers to, if any.
func errorField(err error) string {
	var (
		malformed  *ingestion.MalformedInputError
		validation *ErrValidation
		missing    *composer.MissingFieldError
	)

	switch {
	case errors.As(err, &missing):
		return missing.Path
	case errors.As(err, &malformed):
		return malformed.Field
	case errors.As(err, &validation):
		return validation.Field
	default:
		return ""
	}
}

// NewErrorResponse builds the response body for err. Internal failures get a
// generic message so renderer internals do not leak to clients.
func NewErrorResponse(err error) ErrorResponse {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return ErrorResponse{Error: "failed to build resume"}
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return ErrorResponse{Error: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)}
	}
	return ErrorResponse{Error: err.Error(), Field: errorField(err)}
}
