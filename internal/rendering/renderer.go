package rendering

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/layout"
)

// Renderer serializes a document. Implementations must not modify doc.
type Renderer interface {
	Render(ctx context.Context, doc *layout.Document) ([]byte, error)
	ContentType() string
	Extension() string
}

// Output formats accepted by New.
const (
	FormatJSON     = "json"
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Formats lists the output formats in the order they are documented.
var Formats = []string{FormatJSON, FormatText, FormatMarkdown, FormatHTML}

// Canonical resolves a format name or alias ("txt", "md") to one of Formats.
// The empty string selects JSON.
func Canonical(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatText, "txt":
		return FormatText, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", &RenderError{
			Message: fmt.Sprintf("unknown format %q (expected one of %s)", format, strings.Join(Formats, ", ")),
		}
	}
}

// New returns the renderer for format.
func New(format string) (Renderer, error) {
	canonical, err := Canonical(format)
	if err != nil {
		return nil, err
	}
	switch canonical {
	case FormatText:
		return NewTextRenderer(), nil
	case FormatMarkdown:
		return NewMarkdownRenderer()
	case FormatHTML:
		return NewHTMLRenderer()
	default:
		return NewJSONRenderer(), nil
	}
}

// SuggestedFilename adapts the composer's document name to a renderer's
// extension: a trailing .docx is replaced, any other name gets ext appended.
func SuggestedFilename(docName, ext string) string {
	if docName == "" {
		docName = "Resume" + layout.DocumentExtension
	}
	current := filepath.Ext(docName)
	switch {
	case ext == "" || strings.EqualFold(current, ext):
		return docName
	case strings.EqualFold(current, layout.DocumentExtension):
		return strings.TrimSuffix(docName, current) + ext
	default:
		return docName + ext
	}
}

func checkDocument(ctx context.Context, doc *layout.Document) error {
	if err := ctx.Err(); err != nil {
		return &RenderError{Message: "render cancelled", Cause: err}
	}
	if doc == nil {
		return &RenderError{Message: "no document to render"}
	}
	return nil
}
