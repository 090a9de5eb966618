package blocks

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/layout"
)

// ContactSeparator separates the fields of the contact line.
const ContactSeparator = " | "

// NameLine is the centered bold name at the top of page one.
func NameLine(st layout.Style, name string) layout.Paragraph {
	return layout.NewParagraph(
		[]layout.TextRun{st.Run(name, st.NameSize, layout.Bold())},
		layout.WithAlignment(layout.AlignCenter),
		layout.WithTabStops(
			layout.TabStop{Type: layout.TabLeft, Position: st.NameLeftTab},
			st.RightColumn(),
		),
	)
}

// ContactLine joins the present contact fields with " | " and appends the
// LinkedIn profile as a hyperlink. The separator before the link is only
// written when there is something on both sides of it.
func ContactLine(st layout.Style, location, phone, email, linkedin string) layout.Paragraph {
	var fields []string
	for _, f := range []string{location, phone, email} {
		if f != "" {
			fields = append(fields, f)
		}
	}
	text := strings.Join(fields, ContactSeparator)

	var runs []layout.TextRun
	if linkedin != "" {
		if text != "" {
			text += ContactSeparator
		}
		runs = append(runs,
			st.Body(text),
			st.Body(LinkDisplay(linkedin), layout.Hyperlink(LinkTarget(linkedin))),
		)
	} else {
		runs = append(runs, st.Body(text))
	}

	return layout.NewParagraph(runs,
		layout.WithAlignment(layout.AlignCenter),
		layout.WithTabStops(st.RightColumn()),
	)
}

// LinkTarget returns the hyperlink target for a stored profile URL, adding
// https:// when no scheme is present.
func LinkTarget(link string) string {
	if schemeLength(link) > 0 {
		return link
	}
	return "https://" + link
}

// LinkDisplay strips the scheme from a profile URL for display.
func LinkDisplay(link string) string {
	return link[schemeLength(link):]
}

// schemeLength returns the length of a leading http:// or https:// in any
// letter case, or 0.
func schemeLength(link string) int {
	for _, scheme := range []string{"https://", "http://"} {
		if len(link) >= len(scheme) && strings.EqualFold(link[:len(scheme)], scheme) {
			return len(scheme)
		}
	}
	return 0
}

// CenteredLine is a centered plain body line, used for the work authorization
// statement.
func CenteredLine(st layout.Style, text string) layout.Paragraph {
	return layout.NewParagraph(
		[]layout.TextRun{st.Body(text)},
		layout.WithAlignment(layout.AlignCenter),
		layout.WithTabStops(st.RightColumn()),
	)
}

// TargetTitle is the centered bold headline naming the role applied for.
func TargetTitle(st layout.Style, title string) layout.Paragraph {
	return layout.NewParagraph(
		[]layout.TextRun{st.Run(title, st.TitleSize, layout.Bold())},
		layout.WithAlignment(layout.AlignCenter),
		layout.WithTabStops(st.RightColumn()),
	)
}

// Summary is the verbatim summary paragraph.
func Summary(st layout.Style, text string) layout.Paragraph {
	return layout.NewParagraph(
		[]layout.TextRun{st.Body(text)},
		layout.WithTabStops(st.RightColumn()),
	)
}
