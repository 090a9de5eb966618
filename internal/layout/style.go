package layout

import "fmt"

// DocumentExtension is the file extension of the word-processing format the
// document model is laid out for.
const DocumentExtension = ".docx"

// Margins are the page margins plus the header and footer offsets.
type Margins struct {
	Top    Twips `json:"top"`
	Right  Twips `json:"right"`
	Bottom Twips `json:"bottom"`
	Left   Twips `json:"left"`
	Header Twips `json:"header"`
	Footer Twips `json:"footer"`
}

// PageGeometry is the page size and margins of every page.
type PageGeometry struct {
	Width  Twips   `json:"width"`
	Height Twips   `json:"height"`
	Margin Margins `json:"margin"`
}

// ContentWidth is the usable width between the left and right margins.
func (g PageGeometry) ContentWidth() Twips {
	return g.Width - g.Margin.Left - g.Margin.Right
}

// Style holds the design tokens of the résumé template. Every block builder
// receives a Style explicitly; changing a field changes all output uniformly.
type Style struct {
	Font string `json:"font"`

	NameSize   HalfPoints `json:"name_size"`
	TitleSize  HalfPoints `json:"title_size"`
	BodySize   HalfPoints `json:"body_size"`
	SpacerSize HalfPoints `json:"spacer_size"`

	// RightTab is the right-margin column used by contact, summary and education lines.
	RightTab Twips `json:"right_tab"`

	// RoleTab is the date column of company and role-title lines.
	RoleTab Twips `json:"role_tab"`

	// Page2CenterTab centers the email in the page-2 running header.
	Page2CenterTab Twips `json:"page2_center_tab"`

	NameLeftTab   Twips `json:"name_left_tab"`
	BulletTab     Twips `json:"bullet_tab"`
	BulletIndent  Twips `json:"bullet_indent"`
	BulletHanging Twips `json:"bullet_hanging"`

	// RightIndent is negative so bullet and description text reaches under the date column.
	RightIndent Twips `json:"right_indent"`

	BulletGlyph     string `json:"bullet_glyph"`
	BulletReference string `json:"bullet_reference"`

	Page PageGeometry `json:"page"`
}

// DefaultStyle returns the tokens measured from the reference résumé template:
// Calibri, 14/12/11pt text, US Letter with 0.6in margins.
func DefaultStyle() Style {
	return Style{
		Font:            "Calibri",
		NameSize:        28,
		TitleSize:       24,
		BodySize:        22,
		SpacerSize:      10,
		RightTab:        10080,
		RoleTab:         10512,
		Page2CenterTab:  5040,
		NameLeftTab:     1620,
		BulletTab:       450,
		BulletIndent:    360,
		BulletHanging:   180,
		RightIndent:     -198,
		BulletGlyph:     "•",
		BulletReference: "resume-bullets",
		Page: PageGeometry{
			Width:  12240,
			Height: 15840,
			Margin: Margins{Top: 864, Right: 864, Bottom: 864, Left: 864, Header: 720, Footer: 720},
		},
	}
}

// WithFont returns a copy of the style using a different font family.
func (s Style) WithFont(font string) Style {
	if font != "" {
		s.Font = font
	}
	return s
}

// Run builds a run in the style's font.
func (s Style) Run(text string, size HalfPoints, opts ...RunOption) TextRun {
	return NewRun(text, s.Font, size, opts...)
}

// Body builds a body-sized run in the style's font.
func (s Style) Body(text string, opts ...RunOption) TextRun {
	return s.Run(text, s.BodySize, opts...)
}

// TabRun builds a run that advances to the next tab stop. It carries the body
// size so renderers never see a run without a size.
func (s Style) TabRun() TextRun {
	return s.Body(Tab)
}

// RightColumn is the right tab stop at the right-margin column.
func (s Style) RightColumn() TabStop {
	return TabStop{Type: TabRight, Position: s.RightTab}
}

// RoleColumn is the right tab stop at the role-date column.
func (s Style) RoleColumn() TabStop {
	return TabStop{Type: TabRight, Position: s.RoleTab}
}

// Numbering returns the single bullet numbering definition shared by all
// bullet paragraphs.
func (s Style) Numbering() NumberingDefinition {
	return NumberingDefinition{
		Reference: s.BulletReference,
		Levels: []NumberingLevel{{
			Level:     0,
			Format:    FormatBullet,
			Text:      s.BulletGlyph,
			Alignment: AlignLeft,
			Indent:    Indent{Left: s.BulletIndent, Hanging: s.BulletHanging, Right: s.RightIndent},
		}},
	}
}

// Defaults returns the document-wide default run style.
func (s Style) Defaults() RunDefaults {
	return RunDefaults{Font: s.Font, Size: s.BodySize}
}

// Validate reports tokens a renderer could not use: an empty font or a
// non-positive size tier.
func (s Style) Validate() error {
	if s.Font == "" {
		return &StyleError{Token: "font", Message: "font family is empty"}
	}
	sizes := []struct {
		token string
		size  HalfPoints
	}{
		{"name_size", s.NameSize},
		{"title_size", s.TitleSize},
		{"body_size", s.BodySize},
		{"spacer_size", s.SpacerSize},
	}
	for _, sz := range sizes {
		if sz.size <= 0 {
			return &StyleError{Token: sz.token, Message: fmt.Sprintf("size must be positive, got %d", sz.size)}
		}
	}
	if s.Page.ContentWidth() <= 0 {
		return &StyleError{Token: "page", Message: "margins leave no content width"}
	}
	return nil
}
