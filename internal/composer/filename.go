package composer

import (
	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/types"
)

// Filename returns the suggested document name: meta.filename verbatim when
// set, otherwise "{company}_Resume.docx", or "Resume.docx" without a company.
func Filename(meta *types.Meta) string {
	if meta == nil {
		return "Resume" + layout.DocumentExtension
	}
	if meta.Filename != "" {
		return meta.Filename
	}
	if meta.Company == "" {
		return "Resume" + layout.DocumentExtension
	}
	return meta.Company + "_Resume" + layout.DocumentExtension
}
