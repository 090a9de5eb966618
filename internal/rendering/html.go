package rendering

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// htmlPage wraps goldmark's fragment output in a complete HTML5 document.
const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>body { font-family: %s, sans-serif; max-width: 8.5in; margin: 0.6in auto; }</style>
</head>
<body>
%s
</body>
</html>
`

// HTMLRenderer converts the Markdown preview to a standalone HTML page.
type HTMLRenderer struct {
	markdown *MarkdownRenderer
	md       goldmark.Markdown
}

// NewHTMLRenderer creates an HTMLRenderer with GFM extensions.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	markdown, err := NewMarkdownRenderer()
	if err != nil {
		return nil, err
	}
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &HTMLRenderer{markdown: markdown, md: md}, nil
}

func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *HTMLRenderer) Extension() string { return ".html" }

// Render supports context cancellation via goroutine + select since goldmark
// doesn't natively support context.
func (r *HTMLRenderer) Render(ctx context.Context, doc *layout.Document) ([]byte, error) {
	source, err := r.markdown.Render(ctx, doc)
	if err != nil {
		return nil, err
	}

	type result struct {
		body []byte
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert(source, &buf); err != nil {
			done <- result{err: &RenderError{Message: "failed to convert markdown", Cause: err}}
			return
		}
		title := template.HTMLEscapeString(doc.Filename)
		font := template.HTMLEscapeString(doc.Defaults.Font)
		done <- result{body: []byte(fmt.Sprintf(htmlPage, title, font, buf.String()))}
	}()

	select {
	case <-ctx.Done():
		return nil, &RenderError{Message: "render cancelled", Cause: ctx.Err()}
	case res := <-done:
		return res.body, res.err
	}
}
