// Package schemas provides JSON Schema validation for résumé input documents.
package schemas

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// RootField names the document itself in a FieldError.
const RootField = "(root)"

// ValidationError lists every schema violation in a document, sorted by field.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is one violation at a dotted field path such as
// "experience.0.bullets".
type FieldError struct {
	Field   string
	Type    string // gojsonschema error type, e.g. "invalid_type"
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// First returns the violation reported to callers that can show only one.
func (ve *ValidationError) First() FieldError {
	if len(ve.Errors) == 0 {
		return FieldError{Field: RootField, Message: "invalid document"}
	}
	return ve.Errors[0]
}

// SchemaLoadError represents errors loading or parsing the schema itself, or a
// document that is not JSON at all.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Schema is a compiled JSON Schema that can validate many documents. It is
// safe for concurrent use.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

// Compile loads schemaContent once so it can be reused across requests.
func Compile(schemaContent string) (*Schema, error) {
	return compile("(string schema)", schemaContent)
}

// CompileFile reads and compiles the schema at path.
func CompileFile(path string) (*Schema, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &SchemaLoadError{Path: path, Message: "schema file could not be read", Cause: err}
	}
	return compile(path, string(content))
}

func compile(name, content string) (*Schema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(content))
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "invalid schema", Cause: err}
	}
	return &Schema{name: name, schema: schema}, nil
}

// Validate checks a JSON document and returns a *ValidationError listing
// every violation, or a *SchemaLoadError when doc is not JSON.
func (s *Schema) Validate(doc []byte) error {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return &SchemaLoadError{Path: "(document)", Message: "document could not be loaded", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	errs := make([]FieldError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = RootField
		}
		errs = append(errs, FieldError{Field: field, Type: desc.Type(), Message: desc.Description()})
	}
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })

	return &ValidationError{Errors: errs}
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schema, err := Compile(schemaContent)
	if err != nil {
		return err
	}
	return schema.Validate([]byte(jsonContent))
}
