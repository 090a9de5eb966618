package composer

import (
	"github.com/jonathan/resume-builder/internal/blocks"
	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/types"
)

// Section titles, in document order.
const (
	CompetenciesTitle = "Core Competencies"
	ExperienceTitle   = "Experiences"
	EducationTitle    = "Education"
)

// DefaultWorkAuthorization is the statement printed under the contact line.
const DefaultWorkAuthorization = "Work Authorization: U.S. Permanent Resident (Green Card Holder)"

// Page2Index is the experience entry that starts on the second page. The
// running header is emitted right before it.
const Page2Index = 2

// Options configures a composition.
type Options struct {
	Style             layout.Style
	WorkAuthorization string
}

// DefaultOptions returns the template's style and statement.
func DefaultOptions() Options {
	return Options{
		Style:             layout.DefaultStyle(),
		WorkAuthorization: DefaultWorkAuthorization,
	}
}

func (o Options) withDefaults() Options {
	if o.Style == (layout.Style{}) {
		o.Style = layout.DefaultStyle()
	}
	if o.WorkAuthorization == "" {
		o.WorkAuthorization = DefaultWorkAuthorization
	}
	return o
}

// Compose lays out a résumé record. It never mutates the record and returns
// either a complete document or an error, never a partial document.
func Compose(record *types.ResumeRecord, opts Options) (*layout.Document, error) {
	if err := CheckRequired(record); err != nil {
		return nil, err
	}

	opts = opts.withDefaults()
	st := opts.Style
	if err := st.Validate(); err != nil {
		return nil, &ComposeError{Message: "invalid style", Cause: err}
	}

	paragraphs := concat(
		HeaderBlocks(st, record.Header, opts.WorkAuthorization),
		TargetBlocks(st, record),
		CompetencyBlocks(st, record.Skills),
		ExperienceBlocks(st, record.Header, record.Experience),
		EducationBlocks(st, record.Education),
	)

	return &layout.Document{
		Paragraphs: paragraphs,
		Numbering:  st.Numbering(),
		Page:       st.Page,
		Defaults:   st.Defaults(),
		Filename:   Filename(record.Meta),
	}, nil
}

// CheckRequired reports the first required field the composer would
// dereference unconditionally.
func CheckRequired(record *types.ResumeRecord) error {
	switch {
	case record == nil:
		return &MissingFieldError{Path: "(root)", Block: "document"}
	case record.Meta == nil:
		return &MissingFieldError{Path: "meta", Block: "filename"}
	case record.Header == nil:
		return &MissingFieldError{Path: "header", Block: "name"}
	case record.Header.Name == "":
		return &MissingFieldError{Path: "header.name", Block: "name"}
	}
	return nil
}

// HeaderBlocks is the name, contact line and work authorization statement,
// followed by a spacer.
func HeaderBlocks(st layout.Style, h *types.Header, workAuthorization string) []layout.Paragraph {
	return []layout.Paragraph{
		blocks.NameLine(st, h.Name),
		blocks.ContactLine(st, h.Location, h.Phone, h.Email, h.LinkedIn),
		blocks.CenteredLine(st, workAuthorization),
		blocks.Spacer(st),
	}
}

// TargetBlocks is the target title and the summary, each followed by a spacer.
func TargetBlocks(st layout.Style, record *types.ResumeRecord) []layout.Paragraph {
	return []layout.Paragraph{
		blocks.TargetTitle(st, TargetTitle(record)),
		blocks.Spacer(st),
		blocks.Summary(st, record.Summary),
		blocks.Spacer(st),
	}
}

// TargetTitle is meta.target_level, falling back to header.title.
func TargetTitle(record *types.ResumeRecord) string {
	if record.Meta != nil && record.Meta.TargetLevel != "" {
		return record.Meta.TargetLevel
	}
	if record.Header != nil {
		return record.Header.Title
	}
	return ""
}

// CompetencyBlocks is the competencies header and the skills line.
func CompetencyBlocks(st layout.Style, skills types.Skills) []layout.Paragraph {
	return []layout.Paragraph{
		blocks.SectionHeader(st, CompetenciesTitle),
		blocks.Spacer(st),
		blocks.SkillsLine(st, skills),
		blocks.Spacer(st),
	}
}

// ExperienceBlocks is the experience header followed by every role in order,
// with the page-2 running header before the role at Page2Index.
func ExperienceBlocks(st layout.Style, h *types.Header, roles []types.Role) []layout.Paragraph {
	out := []layout.Paragraph{
		blocks.SectionHeader(st, ExperienceTitle),
		blocks.Spacer(st),
	}
	for i, role := range roles {
		if i == Page2Index {
			out = append(out, blocks.Page2RunningHeader(st, h.Name, h.Email))
		}
		out = append(out, RoleBlocks(st, role)...)
	}
	return out
}

// RoleBlocks lays out one role: company line, optional title line, optional
// description, bullets, and a closing spacer.
func RoleBlocks(st layout.Style, role types.Role) []layout.Paragraph {
	out := []layout.Paragraph{blocks.CompanyLine(st, role.Company, role.RoleLabel(), role.Dates)}

	switch {
	case role.Team != "" && role.Title != "":
		out = append(out, blocks.RoleTitleLine(st, role.Team, role.Title, role.RoleDates))
	case role.Title != "":
		out = append(out, blocks.RoleTitleLine(st, role.Title, "", role.RoleDates))
	}

	if role.JobDescription != "" {
		out = append(out, blocks.JobDescriptionLine(st, role.JobDescription))
	}
	for _, b := range role.Bullets {
		out = append(out, blocks.BulletPoint(st, b))
	}
	return append(out, blocks.Spacer(st))
}

// EducationBlocks is the education header between spacers, one entry per
// degree, and a trailing spacer.
func EducationBlocks(st layout.Style, education []types.Education) []layout.Paragraph {
	out := []layout.Paragraph{
		blocks.Spacer(st),
		blocks.SectionHeader(st, EducationTitle),
		blocks.Spacer(st),
	}
	for _, e := range education {
		out = append(out, blocks.EducationEntry(st, e.Degree, e.Institution, e.Dates))
	}
	return append(out, blocks.Spacer(st))
}

func concat(sections ...[]layout.Paragraph) []layout.Paragraph {
	n := 0
	for _, s := range sections {
		n += len(s)
	}
	out := make([]layout.Paragraph, 0, n)
	for _, s := range sections {
		out = append(out, s...)
	}
	return out
}
