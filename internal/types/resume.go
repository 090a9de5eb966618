// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultRoleLabel is used on a company line when a role has neither location
// nor department.
const DefaultRoleLabel = "Product Management"

// ResumeRecord is the parsed résumé handed to the composer. It is never mutated
// after decoding.
type ResumeRecord struct {
	Meta       *Meta       `json:"meta" yaml:"meta" validate:"required"`
	Header     *Header     `json:"header" yaml:"header" validate:"required"`
	Summary    string      `json:"summary,omitempty" yaml:"summary,omitempty"`
	Skills     Skills      `json:"skills" yaml:"skills"`
	Experience []Role      `json:"experience" yaml:"experience"`
	Education  []Education `json:"education" yaml:"education"`
}

// Meta carries output-level settings for one tailored résumé.
type Meta struct {
	TargetLevel string `json:"target_level,omitempty" yaml:"target_level,omitempty"`
	Company     string `json:"company,omitempty" yaml:"company,omitempty"`
	Filename    string `json:"filename,omitempty" yaml:"filename,omitempty"`
}

// Header holds the candidate's name and contact details.
type Header struct {
	Name     string `json:"name" yaml:"name" validate:"required"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Phone    string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
}

// Skills holds the four competency groups.
type Skills struct {
	LeadershipStrategy  []string `json:"leadership_strategy,omitempty" yaml:"leadership_strategy,omitempty"`
	ProductGrowth       []string `json:"product_growth,omitempty" yaml:"product_growth,omitempty"`
	DataExperimentation []string `json:"data_experimentation,omitempty" yaml:"data_experimentation,omitempty"`
	PlatformsTools      []string `json:"platforms_tools,omitempty" yaml:"platforms_tools,omitempty"`
}

// Groups returns the skill groups in display order: leadership/strategy,
// product/growth, data/experimentation, platforms/tools.
func (s Skills) Groups() [][]string {
	return [][]string{s.LeadershipStrategy, s.ProductGrowth, s.DataExperimentation, s.PlatformsTools}
}

// Count returns the total number of skills across all groups.
func (s Skills) Count() int {
	n := 0
	for _, g := range s.Groups() {
		n += len(g)
	}
	return n
}

// Role is one work-history entry.
type Role struct {
	Company        string   `json:"company" yaml:"company"`
	Location       string   `json:"location,omitempty" yaml:"location,omitempty"`
	Department     string   `json:"department,omitempty" yaml:"department,omitempty"`
	Dates          string   `json:"dates,omitempty" yaml:"dates,omitempty"`
	Team           string   `json:"team,omitempty" yaml:"team,omitempty"`
	Title          string   `json:"title,omitempty" yaml:"title,omitempty"`
	RoleDates      string   `json:"role_dates,omitempty" yaml:"role_dates,omitempty"`
	JobDescription string   `json:"job_description,omitempty" yaml:"job_description,omitempty"`
	Bullets        []string `json:"bullets,omitempty" yaml:"bullets,omitempty"`
}

// RoleLabel joins location and department with ", ", falling back to
// DefaultRoleLabel when both are empty.
func (r Role) RoleLabel() string {
	var parts []string
	if r.Location != "" {
		parts = append(parts, r.Location)
	}
	if r.Department != "" {
		parts = append(parts, r.Department)
	}
	if len(parts) == 0 {
		return DefaultRoleLabel
	}
	return strings.Join(parts, ", ")
}

// Education is one degree entry.
type Education struct {
	Degree      string `json:"degree" yaml:"degree"`
	Institution string `json:"institution" yaml:"institution"`
	Dates       string `json:"dates,omitempty" yaml:"dates,omitempty"`
}

// Validate checks required fields using the validator. Field names in the
// returned errors use the JSON names, e.g. "ResumeRecord.header.name".
func (r *ResumeRecord) Validate() error {
	return NewValidator().Struct(r)
}

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}
