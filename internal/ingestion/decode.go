package ingestion

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/composer"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	resumeschema "github.com/jonathan/resume-builder/schemas"
	"gopkg.in/yaml.v3"
)

// maxUnwrapDepth bounds how many string or text/content layers are peeled off
// before giving up.
const maxUnwrapDepth = 3

// wrapperFields hold the résumé text when an automation tool forwards a model
// response without parsing it.
var wrapperFields = []string{"text", "content"}

var (
	compileOnce    sync.Once
	compiledSchema *schemas.Schema
	compileErr     error
)

func resumeSchema() (*schemas.Schema, error) {
	compileOnce.Do(func() {
		compiledSchema, compileErr = schemas.Compile(resumeschema.Resume)
	})
	return compiledSchema, compileErr
}

// DecodeResume parses a request body into a résumé record. The body may be a
// JSON object, a JSON string holding (possibly fenced) JSON, raw fenced text,
// or an object whose "text" or "content" field holds the résumé text.
func DecodeResume(body []byte) (*types.ResumeRecord, error) {
	return decode(body, 0)
}

func decode(body []byte, depth int) (*types.ResumeRecord, error) {
	if depth > maxUnwrapDepth {
		return nil, &MalformedInputError{Message: "too many nested resume wrappers"}
	}

	text := CleanText(string(body))
	if text == "" {
		return nil, &MalformedInputError{Message: "empty body", Field: "(root)"}
	}

	if text[0] == '"' {
		var inner string
		if err := json.Unmarshal([]byte(text), &inner); err != nil {
			return nil, &MalformedInputError{Message: "invalid JSON string", Field: "(root)", Cause: err}
		}
		return decode([]byte(inner), depth+1)
	}

	text = CleanJSONBlock(text)
	if !strings.HasPrefix(text, "{") {
		return nil, &MalformedInputError{Message: "expected a JSON object", Field: "(root)"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, &MalformedInputError{Message: "invalid JSON", Field: "(root)", Cause: err}
	}
	if inner, ok := wrapped(fields); ok {
		return decode([]byte(inner), depth+1)
	}

	return decodeObject([]byte(text))
}

// wrapped returns the résumé text carried in a text/content field. Objects that
// already look like a record are never unwrapped.
func wrapped(fields map[string]json.RawMessage) (string, bool) {
	if _, ok := fields["header"]; ok {
		return "", false
	}
	for _, name := range wrapperFields {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil || strings.TrimSpace(inner) == "" {
			continue
		}
		return inner, true
	}
	return "", false
}

func decodeObject(data []byte) (*types.ResumeRecord, error) {
	schema, err := resumeSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(data); err != nil {
		return nil, schemaError(err)
	}

	var record types.ResumeRecord
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&record); err != nil {
		return nil, &MalformedInputError{Message: "invalid resume", Field: "(root)", Cause: err}
	}
	if err := checkRequired(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DecodeResumeYAML parses a YAML résumé file. Keys follow the JSON field names.
func DecodeResumeYAML(data []byte) (*types.ResumeRecord, error) {
	text := CleanText(string(data))
	if text == "" {
		return nil, &MalformedInputError{Message: "empty document", Field: "(root)"}
	}

	var record types.ResumeRecord
	if err := yaml.Unmarshal([]byte(text), &record); err != nil {
		return nil, &MalformedInputError{Message: "invalid YAML", Field: "(root)", Cause: err}
	}
	if err := checkRequired(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

func schemaError(err error) error {
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		first := validationErr.First()
		return &MalformedInputError{Message: first.Message, Field: first.Field, Cause: err}
	}
	return &MalformedInputError{Message: "invalid JSON", Field: schemas.RootField, Cause: err}
}

// requiredBy names the block that cannot be built without each required field.
var requiredBy = map[string]string{
	"meta":        "filename",
	"header":      "name",
	"header.name": "name",
}

// checkRequired runs the struct validator and reports the first failure as a
// missing field, matching what the composer reports for the same record.
func checkRequired(record *types.ResumeRecord) error {
	err := record.Validate()
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &MalformedInputError{Message: "invalid resume", Cause: err}
	}

	path := strings.TrimPrefix(fieldErrs[0].Namespace(), "ResumeRecord.")
	return &composer.MissingFieldError{Path: path, Block: requiredBy[path]}
}
