// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/blocks"
	"github.com/jonathan/resume-builder/internal/composer"
	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// pad right-pads s with spaces to n runes.
func pad(s string, n int) string {
	if count := utf8.RuneCountInString(s); count < n {
		return s + strings.Repeat(" ", n-count)
	}
	return s
}

// PrintRecordSummary outputs a human-readable summary of a decoded résumé.
func (p *Printer) PrintRecordSummary(record *types.ResumeRecord) {
	if record == nil || record.Header == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", record.Header.Name))
	sb.WriteString(fmt.Sprintf("Title:      %s\n", composer.TargetTitle(record)))
	sb.WriteString(fmt.Sprintf("Skills:     %d\n", record.Skills.Count()))
	sb.WriteString(fmt.Sprintf("Education:  %d\n", len(record.Education)))
	sb.WriteString("\n")

	if len(record.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d roles):\n", len(record.Experience)))
		count := min(len(record.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			role := record.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", role.Company))
			if role.Dates != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", role.Dates))
			}
			sb.WriteString(fmt.Sprintf(", %d bullets\n", len(role.Bullets)))
		}
		if len(record.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Experience)-maxItemsToShow))
		}
	} else {
		sb.WriteString("No experience entries\n")
	}

	p.printBox("RESUME RECORD", strings.TrimSuffix(sb.String(), "\n"))
}

// DocumentStats are the counts shown by PrintDocumentSummary.
type DocumentStats struct {
	Paragraphs int
	Bullets    int
	Spacers    int
	Links      int

	// Page2Header is the index of the running page-2 header, or -1.
	Page2Header int
}

// Stats counts the notable blocks of doc.
func Stats(doc *layout.Document) DocumentStats {
	stats := DocumentStats{Paragraphs: doc.Len(), Page2Header: -1}
	for i, para := range doc.Paragraphs {
		switch {
		case para.Numbering != nil:
			stats.Bullets++
		case para.Text() == "":
			stats.Spacers++
		case isPage2Header(para) && stats.Page2Header == -1:
			stats.Page2Header = i
		}
		for _, r := range para.Runs {
			if r.IsHyperlink() {
				stats.Links++
			}
		}
	}
	return stats
}

func isPage2Header(para layout.Paragraph) bool {
	n := len(para.Runs)
	return n >= 2 && para.Runs[n-2].IsTab() && para.Runs[n-1].Text == blocks.Page2Label
}

// PrintDocumentSummary outputs the shape of a composed document.
func (p *Printer) PrintDocumentSummary(doc *layout.Document) {
	if doc == nil {
		return
	}

	stats := Stats(doc)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Filename:    %s\n", doc.Filename))
	sb.WriteString(fmt.Sprintf("Font:        %s %.1fpt\n", doc.Defaults.Font, doc.Defaults.Size.Points()))
	sb.WriteString(fmt.Sprintf("Page:        %d x %d twips (content %d)\n",
		doc.Page.Width, doc.Page.Height, doc.Page.ContentWidth()))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Paragraphs:  %d\n", stats.Paragraphs))
	sb.WriteString(fmt.Sprintf("Bullets:     %d\n", stats.Bullets))
	sb.WriteString(fmt.Sprintf("Spacers:     %d\n", stats.Spacers))
	sb.WriteString(fmt.Sprintf("Links:       %d\n", stats.Links))
	if stats.Page2Header >= 0 {
		sb.WriteString(fmt.Sprintf("Page 2:      header at paragraph %d", stats.Page2Header))
	} else {
		sb.WriteString("Page 2:      no running header")
	}

	p.printBox("COMPOSED DOCUMENT", sb.String())
}

// PrintBuildResult reports where a rendered document was written.
func (p *Printer) PrintBuildResult(source, output string, size int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:  %s\n", source))
	sb.WriteString(fmt.Sprintf("Output:  %s\n", output))
	sb.WriteString(fmt.Sprintf("Size:    %d bytes", size))

	p.printBox("BUILD COMPLETE", sb.String())
}

// PrintValidation reports the outcome of validating one résumé file.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(source string, err error) {
	if err == nil {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate("✅ VALID: "+source, boxWidth-4), boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n\n", source))
	for _, line := range wrap(err.Error(), boxWidth-6) {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", line))
	}

	p.printBox("INVALID RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// wrap splits text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && utf8.RuneCountInString(cur.String())+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
