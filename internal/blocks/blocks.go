// Package blocks builds the individual paragraphs of the résumé template.
//
// Every builder is a pure function of a layout.Style and semantic fields: the
// same inputs always produce the same paragraph, and no builder invents its own
// font, size or tab position.
package blocks

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/types"
)

// SkillSeparator separates every skill on the competencies line.
const SkillSeparator = " | "

// Page2Label is the page marker printed at the right of the running header.
const Page2Label = "Page 2"

// Spacer is an empty spacer-sized paragraph, the only vertical whitespace in
// the document.
func Spacer(st layout.Style) layout.Paragraph {
	return layout.NewParagraph([]layout.TextRun{st.Run("", st.SpacerSize)})
}

// SectionHeader is a centered bold section title.
func SectionHeader(st layout.Style, text string) layout.Paragraph {
	return layout.NewParagraph(
		[]layout.TextRun{st.Run(text, st.TitleSize, layout.Bold())},
		layout.WithAlignment(layout.AlignCenter),
	)
}

// JobDescriptionLine is the italic one-line description under a role.
func JobDescriptionLine(st layout.Style, text string) layout.Paragraph {
	return layout.NewParagraph(
		[]layout.TextRun{st.Body(text, layout.Italic())},
		layout.WithTabStops(st.RightColumn()),
		layout.WithIndent(layout.Indent{Right: st.RightIndent}),
	)
}

// BulletPoint is one achievement attached to the shared bullet numbering.
func BulletPoint(st layout.Style, text string) layout.Paragraph {
	return layout.NewParagraph(
		[]layout.TextRun{st.Body(text)},
		layout.WithNumbering(st.BulletReference, 0),
		layout.WithTabStops(layout.TabStop{Type: layout.TabLeft, Position: st.BulletTab}),
		layout.WithIndent(layout.Indent{Left: st.BulletIndent, Right: st.RightIndent}),
	)
}

// CompanyLine renders "Company, role label" with the dates right-aligned in the
// role-date column.
func CompanyLine(st layout.Style, company, roleLabel, dates string) layout.Paragraph {
	return layout.NewParagraph(
		[]layout.TextRun{
			st.Body(company+",", layout.Bold()),
			st.Body(" " + roleLabel),
			st.TabRun(),
			st.Body(dates, layout.Bold()),
		},
		layout.WithTabStops(st.RoleColumn()),
	)
}

// RoleTitleLine renders "Team, Title" with optional role dates. An empty title
// drops the second run; empty dates drop the tab and the date run.
func RoleTitleLine(st layout.Style, teamOrRole, title, dates string) layout.Paragraph {
	runs := []layout.TextRun{st.Body(teamOrRole+",", layout.Bold())}
	if title != "" {
		runs = append(runs, st.Body(" "+title))
	}
	if dates != "" {
		runs = append(runs, st.TabRun(), st.Body(dates))
	}
	return layout.NewParagraph(runs, layout.WithTabStops(st.RoleColumn()))
}

// Page2RunningHeader mimics a page header: name, centered email, "Page 2".
func Page2RunningHeader(st layout.Style, name, email string) layout.Paragraph {
	return layout.NewParagraph(
		[]layout.TextRun{
			st.Body(name),
			st.TabRun(),
			st.Body(email),
			st.TabRun(),
			st.Body(Page2Label),
		},
		layout.WithTabStops(
			layout.TabStop{Type: layout.TabCenter, Position: st.Page2CenterTab},
			st.RightColumn(),
		),
	)
}

// JoinSkills concatenates the skill groups in their fixed order. Group
// boundaries are not marked and duplicates are kept.
func JoinSkills(skills types.Skills) string {
	var all []string
	for _, group := range skills.Groups() {
		all = append(all, group...)
	}
	return strings.Join(all, SkillSeparator)
}

// SkillsLine is the single plain line of core competencies.
func SkillsLine(st layout.Style, skills types.Skills) layout.Paragraph {
	return layout.NewParagraph([]layout.TextRun{st.Body(JoinSkills(skills))})
}

// EducationEntry renders "Degree, Institution" in bold with the dates at the
// right column when present.
func EducationEntry(st layout.Style, degree, institution, dates string) layout.Paragraph {
	runs := []layout.TextRun{
		st.Body(degree+", ", layout.Bold()),
		st.Body(institution, layout.Bold()),
	}
	if dates != "" {
		runs = append(runs, st.TabRun(), st.Body(dates))
	}
	return layout.NewParagraph(runs, layout.WithTabStops(st.RightColumn()))
}
