package layout

// NumberFormat is the format of a numbering level.
type NumberFormat string

// FormatBullet renders a fixed glyph instead of a counter.
const FormatBullet NumberFormat = "bullet"

// NumberingLevel describes one nesting level of a numbering definition.
type NumberingLevel struct {
	Level     int          `json:"level"`
	Format    NumberFormat `json:"format"`
	Text      string       `json:"text"`
	Alignment Alignment    `json:"alignment"`
	Indent    Indent       `json:"indent"`
}

// NumberingDefinition is a named bullet/number rule referenced by paragraphs.
type NumberingDefinition struct {
	Reference string           `json:"reference"`
	Levels    []NumberingLevel `json:"levels"`
}

// Level returns the definition of the given nesting level.
func (n NumberingDefinition) Level(level int) (NumberingLevel, bool) {
	for _, l := range n.Levels {
		if l.Level == level {
			return l, true
		}
	}
	return NumberingLevel{}, false
}

// RunDefaults is the document default font and size.
type RunDefaults struct {
	Font string     `json:"font"`
	Size HalfPoints `json:"size"`
}

// Document is the complete layout handed to a renderer. Paragraph order is the
// top-to-bottom reading order of the rendered pages.
type Document struct {
	Paragraphs []Paragraph         `json:"paragraphs"`
	Numbering  NumberingDefinition `json:"numbering"`
	Page       PageGeometry        `json:"page"`
	Defaults   RunDefaults         `json:"defaults"`

	// Filename is the suggested download name, including DocumentExtension.
	Filename string `json:"filename"`
}

// Len returns the number of blocks in the document.
func (d *Document) Len() int {
	return len(d.Paragraphs)
}

// Index returns the position of the first paragraph whose text equals text,
// or -1.
func (d *Document) Index(text string) int {
	for i, p := range d.Paragraphs {
		if p.Text() == text {
			return i
		}
	}
	return -1
}
