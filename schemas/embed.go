// Package schemas holds the JSON Schema documents for the résumé input format.
package schemas

import _ "embed"

// ResumeSchemaFile is the on-disk name of the résumé schema, relative to the repo root.
const ResumeSchemaFile = "schemas/resume.schema.json"

// Resume is the draft-07 schema for a résumé record. It checks shapes and
// types only; required fields are enforced by the record's struct tags so that
// they surface as missing-field errors.
//
//go:embed resume.schema.json
var Resume string
