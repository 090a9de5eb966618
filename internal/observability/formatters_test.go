package observability

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/composer"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(roles int) *types.ResumeRecord {
	r := &types.ResumeRecord{
		Meta:   &types.Meta{Company: "Acme", TargetLevel: "Senior PM"},
		Header: &types.Header{Name: "Jane Doe", Email: "jane@x.com", LinkedIn: "linkedin.com/in/jane"},
		Skills: types.Skills{ProductGrowth: []string{"Growth", "Pricing"}},
		Education: []types.Education{
			{Degree: "MBA", Institution: "Wharton"},
		},
	}
	for i := 0; i < roles; i++ {
		r.Experience = append(r.Experience, types.Role{
			Company: fmt.Sprintf("Company %d", i),
			Dates:   "2020 - 2021",
			Bullets: []string{"Shipped", "Grew"},
		})
	}
	return r
}

func assertBoxed(t *testing.T, output string) {
	t.Helper()
	for _, line := range strings.Split(strings.TrimSuffix(output, "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
}

func TestPrintRecordSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecordSummary(testRecord(7))
	output := buf.String()

	assert.Contains(t, output, "RESUME RECORD")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "Senior PM")
	assert.Contains(t, output, "Skills:     2")
	assert.Contains(t, output, "Experience (7 roles)")
	assert.Contains(t, output, "Company 4 (2020 - 2021), 2 bullets")
	assert.NotContains(t, output, "Company 5")
	assert.Contains(t, output, "... and 2 more")
	assertBoxed(t, output)
}

func TestPrintRecordSummary_NoExperience(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRecordSummary(testRecord(0))
	assert.Contains(t, buf.String(), "No experience entries")
}

func TestPrintRecordSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecordSummary(nil)
	p.PrintRecordSummary(&types.ResumeRecord{})

	assert.Empty(t, buf.String())
}

func TestStats(t *testing.T) {
	doc, err := composer.Compose(testRecord(3), composer.DefaultOptions())
	require.NoError(t, err)

	stats := Stats(doc)
	assert.Equal(t, doc.Len(), stats.Paragraphs)
	assert.Equal(t, 6, stats.Bullets)
	assert.Equal(t, 1, stats.Links)
	require.NotEqual(t, -1, stats.Page2Header)
	assert.Equal(t, "Jane Doe\tjane@x.com\tPage 2", doc.Paragraphs[stats.Page2Header].Text())

	doc, err = composer.Compose(testRecord(2), composer.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, -1, Stats(doc).Page2Header)
}

func TestPrintDocumentSummary(t *testing.T) {
	doc, err := composer.Compose(testRecord(4), composer.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocumentSummary(doc)
	output := buf.String()

	assert.Contains(t, output, "COMPOSED DOCUMENT")
	assert.Contains(t, output, "Acme_Resume.docx")
	assert.Contains(t, output, "Calibri 11.0pt")
	assert.Contains(t, output, "Bullets:     8")
	assert.Contains(t, output, "header at paragraph")
	assertBoxed(t, output)
}

func TestPrintDocumentSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocumentSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBuildResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBuildResult("resumes/jane.json", "out/Acme_Resume.txt", 2048)
	output := buf.String()

	assert.Contains(t, output, "BUILD COMPLETE")
	assert.Contains(t, output, "resumes/jane.json")
	assert.Contains(t, output, "out/Acme_Resume.txt")
	assert.Contains(t, output, "2048 bytes")
	assertBoxed(t, output)
}

func TestPrintValidation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintValidation("jane.json", nil)
		assert.Contains(t, buf.String(), "VALID: jane.json")
		assertBoxed(t, buf.String())
	})

	t.Run("invalid", func(t *testing.T) {
		var buf bytes.Buffer
		err := errors.New("jane.json: missing required field header.name (needed by name) and a long tail of words to wrap")
		NewPrinter(&buf).PrintValidation("jane.json", err)
		output := buf.String()

		assert.Contains(t, output, "INVALID RESUME")
		assert.Contains(t, output, "header.name")
		assert.Contains(t, output, "wrap")
		assertBoxed(t, output)
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "résu...", truncate("résumé builder", 7))
	assert.Equal(t, 7, utf8.RuneCountInString(truncate("résumé builder", 7)))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Empty(t, wrap("   ", 8))
}
