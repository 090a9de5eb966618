package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/resume-builder/internal/composer"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/rendering"
)

// FilenameHeader repeats the attachment name for clients that cannot read
// Content-Disposition.
const FilenameHeader = "X-Filename"

var filenameReplacer = strings.NewReplacer(`"`, "'", `\`, "_", "\r", "", "\n", "")

// handleBuildResume decodes a résumé record, composes it and streams the
// rendered document back as an attachment. The optional "format" query
// parameter overrides the server's default format.
func (s *Server) handleBuildResume(w http.ResponseWriter, r *http.Request) {
	renderer, err := s.rendererFor(r.URL.Query().Get("format"))
	if err != nil {
		s.buildError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.buildError(w, r, err)
		return
	}

	record, err := ingestion.DecodeResume(body)
	if err != nil {
		s.buildError(w, r, err)
		return
	}

	doc, err := composer.Compose(record, s.options)
	if err != nil {
		s.buildError(w, r, err)
		return
	}

	out, err := renderer.Render(r.Context(), doc)
	if err != nil {
		s.buildError(w, r, err)
		return
	}

	filename := filenameReplacer.Replace(rendering.SuggestedFilename(doc.Filename, renderer.Extension()))
	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set(FilenameHeader, filename)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		log.Printf("[build] %s: failed to write response: %v", RequestID(r.Context()), err)
		return
	}

	log.Printf("[build] %s: %s (%d paragraphs, %d bytes)", RequestID(r.Context()), filename, doc.Len(), len(out))
}

// rendererFor returns the renderer for a requested format, or the default.
func (s *Server) rendererFor(format string) (rendering.Renderer, error) {
	if format == "" {
		return s.renderers[s.format], nil
	}
	canonical, err := rendering.Canonical(format)
	if err != nil {
		return nil, &ErrValidation{Field: "format", Message: fmt.Sprintf("unsupported format %q", format)}
	}
	return s.renderers[canonical], nil
}

// buildError logs err and writes it as an ErrorResponse.
func (s *Server) buildError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	log.Printf("[build] %s: %d: %v", RequestID(r.Context()), status, err)
	s.jsonResponse(w, status, NewErrorResponse(err))
}
