package rendering

import (
	"context"
	"strings"
	"text/template"

	"github.com/jonathan/resume-builder/internal/layout"
)

// TabSeparator stands in for a tab stop in flowing Markdown text.
const TabSeparator = " · "

const markdownTemplate = `{{- range .Blocks }}
{{- if .Bullet }}- {{ .Text }}
{{ else }}{{ if .AfterList }}
{{ end }}{{ .Prefix }}{{ .Text }}

{{ end }}{{ end -}}
`

// TemplateData is the data passed to the Markdown template
type TemplateData struct {
	Blocks []Block
}

// Block is one non-empty paragraph in Markdown form. Text is already escaped;
// Prefix is "# " or "## " for headings. AfterList marks the first block after
// a bullet list, which needs a blank line to end the list.
type Block struct {
	Prefix    string
	Text      string
	Bullet    bool
	AfterList bool
}

// MarkdownRenderer writes the document as CommonMark. Spacer paragraphs become
// block breaks; large centered bold lines become headings.
type MarkdownRenderer struct {
	tmpl *template.Template
}

// NewMarkdownRenderer parses the built-in template.
func NewMarkdownRenderer() (*MarkdownRenderer, error) {
	tmpl, err := template.New("resume").Parse(markdownTemplate)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return &MarkdownRenderer{tmpl: tmpl}, nil
}

func (r *MarkdownRenderer) ContentType() string { return "text/markdown; charset=utf-8" }

func (r *MarkdownRenderer) Extension() string { return ".md" }

func (r *MarkdownRenderer) Render(ctx context.Context, doc *layout.Document) ([]byte, error) {
	if err := checkDocument(ctx, doc); err != nil {
		return nil, err
	}

	var result strings.Builder
	if err := r.tmpl.Execute(&result, buildTemplateData(doc)); err != nil {
		return nil, &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return []byte(result.String()), nil
}

// buildTemplateData classifies paragraphs into Markdown blocks
func buildTemplateData(doc *layout.Document) *TemplateData {
	largest := layout.HalfPoints(0)
	for _, p := range doc.Paragraphs {
		for _, run := range p.Runs {
			largest = max(largest, run.Size)
		}
	}

	data := &TemplateData{}
	inList := false
	for _, p := range doc.Paragraphs {
		text := inline(p.Runs)
		if text == "" {
			continue
		}
		block := Block{Text: text, Bullet: p.Numbering != nil}
		if !block.Bullet {
			block.AfterList = inList
			if size, ok := headingSize(p); ok {
				block.Text = EscapeMarkdown(strings.ReplaceAll(p.Text(), layout.Tab, " "))
				block.Prefix = "## "
				if size == largest {
					block.Prefix = "# "
				}
			}
		}
		block.Text = EscapeBlockStart(block.Text)
		inList = block.Bullet
		data.Blocks = append(data.Blocks, block)
	}
	return data
}

// headingSize reports whether p is a centered line of bold text larger than
// the body size, and the size of that text.
func headingSize(p layout.Paragraph) (layout.HalfPoints, bool) {
	if p.Alignment != layout.AlignCenter {
		return 0, false
	}
	size := layout.HalfPoints(0)
	for _, run := range p.Runs {
		if run.Text == "" || run.IsTab() {
			continue
		}
		if !run.Bold {
			return 0, false
		}
		size = max(size, run.Size)
	}
	return size, size > 0
}

// inline converts runs to escaped inline Markdown. Emphasis markers hug the
// text so that CommonMark recognizes them.
func inline(runs []layout.TextRun) string {
	var b strings.Builder
	for _, run := range runs {
		if run.IsTab() {
			b.WriteString(TabSeparator)
			continue
		}
		core := strings.TrimSpace(run.Text)
		if core == "" {
			b.WriteString(run.Text)
			continue
		}
		lead := run.Text[:strings.Index(run.Text, core)]
		trail := run.Text[len(lead)+len(core):]

		text := EscapeMarkdown(core)
		if run.Italic {
			text = "*" + text + "*"
		}
		if run.Bold {
			text = "**" + text + "**"
		}
		if run.IsHyperlink() {
			text = "[" + text + "](" + escapeLinkTarget(run.Link) + ")"
		}
		b.WriteString(lead + text + trail)
	}
	return strings.TrimSpace(b.String())
}
