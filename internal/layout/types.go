// Package layout defines the abstract layout primitives produced by the composer:
// styled text runs, paragraphs with tab stops and indentation, and the document
// model handed to a renderer.
package layout

// HalfPoints is a font size expressed in half-points (22 = 11pt).
type HalfPoints int

// Points returns the size in typographic points.
func (h HalfPoints) Points() float64 {
	return float64(h) / 2
}

// Twips is a horizontal or vertical distance in twentieths of a point (1440 per inch).
type Twips int

// Alignment is a paragraph's horizontal alignment. The zero value inherits the
// renderer default (left).
type Alignment string

const (
	AlignDefault Alignment = ""
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
)

// TabStopType controls how text after a tab character lines up against the stop.
type TabStopType string

const (
	TabLeft   TabStopType = "left"
	TabCenter TabStopType = "center"
	TabRight  TabStopType = "right"
)

// TabStop is a ruler position used to fake column layout without tables.
type TabStop struct {
	Type     TabStopType `json:"type"`
	Position Twips       `json:"position"`
}

// Indent holds paragraph indentation. Right may be negative to let text run
// into the right margin.
type Indent struct {
	Left    Twips `json:"left,omitempty"`
	Right   Twips `json:"right,omitempty"`
	Hanging Twips `json:"hanging,omitempty"`
}

// IsZero reports whether no indentation is set.
func (i Indent) IsZero() bool {
	return i == Indent{}
}

// Spacing is the native paragraph spacing. The résumé template never uses it;
// vertical whitespace comes from spacer paragraphs instead.
type Spacing struct {
	Before Twips `json:"before"`
	After  Twips `json:"after"`
}

// NumberingRef attaches a paragraph to a numbering definition.
type NumberingRef struct {
	Reference string `json:"reference"`
	Level     int    `json:"level"`
}

// HyperlinkStyle is the character style name applied to hyperlink runs.
const HyperlinkStyle = "Hyperlink"

// Tab is the text of a run that advances to the next tab stop.
const Tab = "\t"

// TextRun is one styled fragment of text. Runs are built once and never mutated.
type TextRun struct {
	Text   string     `json:"text"`
	Font   string     `json:"font"`
	Size   HalfPoints `json:"size"`
	Bold   bool       `json:"bold,omitempty"`
	Italic bool       `json:"italic,omitempty"`

	// Style names a character style, e.g. HyperlinkStyle.
	Style string `json:"style,omitempty"`

	// Link is the external target when the run is wrapped in a hyperlink.
	Link string `json:"link,omitempty"`
}

// IsTab reports whether the run only advances to the next tab stop.
func (r TextRun) IsTab() bool {
	return r.Text == Tab
}

// IsHyperlink reports whether the run is wrapped in an external hyperlink.
func (r TextRun) IsHyperlink() bool {
	return r.Link != ""
}

// RunOption sets an optional attribute on a TextRun under construction.
type RunOption func(*TextRun)

// Bold makes the run bold.
func Bold() RunOption {
	return func(r *TextRun) { r.Bold = true }
}

// Italic makes the run italic.
func Italic() RunOption {
	return func(r *TextRun) { r.Italic = true }
}

// Hyperlink wraps the run in an external hyperlink to target and applies the
// hyperlink character style.
func Hyperlink(target string) RunOption {
	return func(r *TextRun) {
		r.Link = target
		r.Style = HyperlinkStyle
	}
}

// NewRun builds a TextRun. Any text is accepted, including the empty string,
// which renders as a zero-width placeholder.
func NewRun(text, font string, size HalfPoints, opts ...RunOption) TextRun {
	r := TextRun{Text: text, Font: font, Size: size}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Paragraph is an ordered list of runs plus paragraph-level layout attributes.
type Paragraph struct {
	Runs      []TextRun     `json:"runs"`
	Alignment Alignment     `json:"alignment,omitempty"`
	TabStops  []TabStop     `json:"tab_stops,omitempty"`
	Indent    Indent        `json:"indent,omitempty"`
	Numbering *NumberingRef `json:"numbering,omitempty"`
	Spacing   Spacing       `json:"spacing"`
}

// Text returns the concatenated text of all runs.
func (p Paragraph) Text() string {
	n := 0
	for _, r := range p.Runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range p.Runs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}

// ParagraphOption sets an optional attribute on a Paragraph under construction.
type ParagraphOption func(*Paragraph)

// WithAlignment sets the paragraph alignment.
func WithAlignment(a Alignment) ParagraphOption {
	return func(p *Paragraph) { p.Alignment = a }
}

// WithTabStops sets the paragraph tab stops in ruler order.
func WithTabStops(stops ...TabStop) ParagraphOption {
	return func(p *Paragraph) { p.TabStops = append([]TabStop(nil), stops...) }
}

// WithIndent sets the paragraph indentation.
func WithIndent(in Indent) ParagraphOption {
	return func(p *Paragraph) { p.Indent = in }
}

// WithNumbering attaches the paragraph to a numbering definition level.
func WithNumbering(reference string, level int) ParagraphOption {
	return func(p *Paragraph) { p.Numbering = &NumberingRef{Reference: reference, Level: level} }
}

// WithSpacing sets native spacing before and after the paragraph.
func WithSpacing(before, after Twips) ParagraphOption {
	return func(p *Paragraph) { p.Spacing = Spacing{Before: before, After: after} }
}

// NewParagraph builds a Paragraph. The runs slice is copied so later changes by
// the caller do not leak into the built block. Spacing defaults to zero.
func NewParagraph(runs []TextRun, opts ...ParagraphOption) Paragraph {
	p := Paragraph{Runs: append([]TextRun(nil), runs...)}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
