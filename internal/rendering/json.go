package rendering

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-builder/internal/layout"
)

// JSONRenderer dumps the document model as JSON.
type JSONRenderer struct {
	// Indent is the per-level indentation; empty writes compact JSON.
	Indent string
}

// NewJSONRenderer returns a renderer that writes two-space indented JSON.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{Indent: "  "}
}

func (r *JSONRenderer) Render(ctx context.Context, doc *layout.Document) ([]byte, error) {
	if err := checkDocument(ctx, doc); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	if r.Indent == "" {
		data, err = json.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", r.Indent)
	}
	if err != nil {
		return nil, &RenderError{Message: "failed to marshal document", Cause: err}
	}
	return append(data, '\n'), nil
}

func (r *JSONRenderer) ContentType() string { return "application/json" }

func (r *JSONRenderer) Extension() string { return ".json" }
