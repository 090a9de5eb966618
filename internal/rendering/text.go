package rendering

import (
	"context"
	"strings"

	"github.com/jonathan/resume-builder/internal/layout"
	"golang.org/x/text/width"
)

// DefaultCharWidth is one monospace cell at 12 characters per inch.
const DefaultCharWidth layout.Twips = 120

// defaultBullet is used when a paragraph references an unknown numbering level.
const defaultBullet = "•"

// TextRenderer draws the document on a monospace grid. Tab stops, paragraph
// alignment, indentation and bullets are resolved to columns, so the preview
// lines up the way the word-processor file does.
type TextRenderer struct {
	CharWidth layout.Twips
}

// NewTextRenderer returns a renderer using DefaultCharWidth.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{CharWidth: DefaultCharWidth}
}

func (r *TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (r *TextRenderer) Extension() string { return ".txt" }

func (r *TextRenderer) Render(ctx context.Context, doc *layout.Document) ([]byte, error) {
	if err := checkDocument(ctx, doc); err != nil {
		return nil, err
	}

	columns := r.cols(doc.Page.ContentWidth())
	var b strings.Builder
	for _, p := range doc.Paragraphs {
		if err := ctx.Err(); err != nil {
			return nil, &RenderError{Message: "render cancelled", Cause: err}
		}
		for _, line := range r.Lines(doc, p, columns) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return []byte(b.String()), nil
}

// cols converts a distance to whole grid cells, rounding toward zero.
func (r *TextRenderer) cols(t layout.Twips) int {
	cw := r.CharWidth
	if cw <= 0 {
		cw = DefaultCharWidth
	}
	return int(t / cw)
}

// Lines lays out one paragraph on a grid that is columns cells wide.
// Trailing spaces are trimmed from every line.
func (r *TextRenderer) Lines(doc *layout.Document, p layout.Paragraph, columns int) []string {
	left := max(r.cols(p.Indent.Left), 0)
	right := columns - r.cols(p.Indent.Right)

	var ln line
	col := left
	if p.Numbering != nil {
		glyph, hanging := bullet(doc, p.Numbering)
		if p.Indent.Hanging != 0 {
			hanging = p.Indent.Hanging
		}
		start := max(left-r.cols(hanging), 0)
		ln.put(start, glyph)
		col = max(start+textWidth(glyph)+1, left)
	}

	segments := splitTabs(p.Runs)
	if len(segments) == 1 {
		return r.flow(&ln, segments[0], p.Alignment, col, left, right)
	}

	cur := col
	for i, seg := range segments {
		if i == 0 {
			cur = ln.put(col, seg)
			continue
		}
		start := r.tabStart(p.TabStops, cur, seg)
		if start < cur || (start == cur && cur > left) {
			start = cur + 1
		}
		cur = ln.put(start, seg)
	}
	return []string{ln.String()}
}

// tabStart positions the text after a tab against the next stop to the right
// of cur. Without one the text follows after a single cell.
func (r *TextRenderer) tabStart(stops []layout.TabStop, cur int, seg string) int {
	for _, stop := range stops {
		pos := r.cols(stop.Position)
		if pos <= cur {
			continue
		}
		switch stop.Type {
		case layout.TabRight:
			return pos - textWidth(seg)
		case layout.TabCenter:
			return pos - textWidth(seg)/2
		default:
			return pos
		}
	}
	return cur + 1
}

// flow word-wraps untabbed text between the indents and applies alignment.
func (r *TextRenderer) flow(first *line, text string, align layout.Alignment, col, left, right int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{first.String()}
	}

	var rows []string
	current := ""
	start := col
	avail := right - start
	for _, w := range words {
		candidate := w
		if current != "" {
			candidate = current + " " + w
		}
		if current == "" || textWidth(candidate) <= avail {
			current = candidate
			continue
		}
		rows = append(rows, current)
		current = w
		avail = right - left
	}
	rows = append(rows, current)

	out := make([]string, 0, len(rows))
	for i, row := range rows {
		ln := line{}
		lineStart := left
		if i == 0 {
			ln = *first
			lineStart = start
		}
		ln.put(aligned(row, align, lineStart, right), row)
		out = append(out, ln.String())
	}
	return out
}

func aligned(text string, align layout.Alignment, start, right int) int {
	slack := right - start - textWidth(text)
	if slack <= 0 {
		return start
	}
	switch align {
	case layout.AlignCenter:
		return start + slack/2
	case layout.AlignRight:
		return start + slack
	default:
		return start
	}
}

// splitTabs joins run text into the segments separated by tab runs.
func splitTabs(runs []layout.TextRun) []string {
	segments := []string{""}
	for _, run := range runs {
		parts := strings.Split(run.Text, layout.Tab)
		segments[len(segments)-1] += parts[0]
		segments = append(segments, parts[1:]...)
	}
	return segments
}

// bullet returns the glyph and hanging indent of the referenced numbering level.
func bullet(doc *layout.Document, ref *layout.NumberingRef) (string, layout.Twips) {
	if doc.Numbering.Reference != ref.Reference {
		return defaultBullet, 0
	}
	lvl, ok := doc.Numbering.Level(ref.Level)
	if !ok || lvl.Text == "" {
		return defaultBullet, 0
	}
	return lvl.Text, lvl.Indent.Hanging
}

// cellWidth is 2 for East Asian wide and fullwidth runes.
func cellWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

func textWidth(s string) int {
	n := 0
	for _, r := range s {
		n += cellWidth(r)
	}
	return n
}

// line is a row of grid cells. A wide rune occupies its cell and a trailing
// zero cell.
type line struct {
	cells []rune
}

// put writes s starting at column col, padding with spaces as needed, and
// returns the column just past the written text.
func (l *line) put(col int, s string) int {
	for len(l.cells) < col {
		l.cells = append(l.cells, ' ')
	}
	for _, r := range s {
		w := cellWidth(r)
		for i := 0; i < w; i++ {
			v := r
			if i > 0 {
				v = 0
			}
			if col < len(l.cells) {
				l.cells[col] = v
			} else {
				l.cells = append(l.cells, v)
			}
			col++
		}
	}
	return col
}

func (l *line) String() string {
	var b strings.Builder
	for _, r := range l.cells {
		if r != 0 {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}
