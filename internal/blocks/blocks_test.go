package blocks

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var st = layout.DefaultStyle()

// assertStyled checks that every run takes its font and size from the style.
func assertStyled(t *testing.T, p layout.Paragraph) {
	t.Helper()
	allowed := map[layout.HalfPoints]bool{st.NameSize: true, st.TitleSize: true, st.BodySize: true, st.SpacerSize: true}
	for i, r := range p.Runs {
		assert.Equal(t, st.Font, r.Font, "run %d font", i)
		assert.True(t, allowed[r.Size], "run %d size %d not a style tier", i, r.Size)
	}
	assert.Equal(t, layout.Spacing{}, p.Spacing)
}

func TestSpacer(t *testing.T) {
	p := Spacer(st)
	require.Len(t, p.Runs, 1)
	assert.Equal(t, "", p.Runs[0].Text)
	assert.Equal(t, st.SpacerSize, p.Runs[0].Size)
	assertStyled(t, p)
}

func TestSectionHeader(t *testing.T) {
	p := SectionHeader(st, "Experiences")
	assert.Equal(t, layout.AlignCenter, p.Alignment)
	require.Len(t, p.Runs, 1)
	assert.True(t, p.Runs[0].Bold)
	assert.Equal(t, st.TitleSize, p.Runs[0].Size)
	assertStyled(t, p)
}

func TestJobDescriptionLine(t *testing.T) {
	p := JobDescriptionLine(st, "Owned the growth roadmap")
	require.Len(t, p.Runs, 1)
	assert.True(t, p.Runs[0].Italic)
	assert.Equal(t, []layout.TabStop{{Type: layout.TabRight, Position: 10080}}, p.TabStops)
	assert.Equal(t, layout.Twips(-198), p.Indent.Right)
	assertStyled(t, p)
}

func TestBulletPoint(t *testing.T) {
	p := BulletPoint(st, "Grew revenue 20%")
	require.NotNil(t, p.Numbering)
	assert.Equal(t, st.BulletReference, p.Numbering.Reference)
	assert.Equal(t, 0, p.Numbering.Level)
	assert.Equal(t, []layout.TabStop{{Type: layout.TabLeft, Position: 450}}, p.TabStops)
	assert.Equal(t, layout.Indent{Left: 360, Right: -198}, p.Indent)
	assert.Equal(t, JobDescriptionLine(st, "x").Indent.Right, p.Indent.Right)
	assertStyled(t, p)
}

func TestCompanyLine(t *testing.T) {
	p := CompanyLine(st, "Acme", "NYC, Growth", "2020 - 2023")
	require.Len(t, p.Runs, 4)
	assert.Equal(t, "Acme,", p.Runs[0].Text)
	assert.True(t, p.Runs[0].Bold)
	assert.Equal(t, " NYC, Growth", p.Runs[1].Text)
	assert.False(t, p.Runs[1].Bold)
	assert.True(t, p.Runs[2].IsTab())
	assert.Equal(t, "2020 - 2023", p.Runs[3].Text)
	assert.True(t, p.Runs[3].Bold)
	assert.Equal(t, []layout.TabStop{{Type: layout.TabRight, Position: 10512}}, p.TabStops)
	assertStyled(t, p)
}

func TestRoleTitleLine(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		p := RoleTitleLine(st, "Payments", "Senior PM", "2021 - 2023")
		assert.Equal(t, "Payments, Senior PM\t2021 - 2023", p.Text())
		require.Len(t, p.Runs, 4)
		assert.True(t, p.Runs[0].Bold)
		assert.False(t, p.Runs[3].Bold)
		assertStyled(t, p)
	})

	t.Run("empty title", func(t *testing.T) {
		p := RoleTitleLine(st, "Senior PM", "", "2021")
		require.Len(t, p.Runs, 3)
		assert.Equal(t, "Senior PM,", p.Runs[0].Text)
		assert.True(t, p.Runs[1].IsTab())
		assert.Equal(t, "2021", p.Runs[2].Text)
	})

	t.Run("empty dates", func(t *testing.T) {
		p := RoleTitleLine(st, "Payments", "Senior PM", "")
		require.Len(t, p.Runs, 2)
		for _, r := range p.Runs {
			assert.False(t, r.IsTab())
		}
		assert.Len(t, p.TabStops, 1, "right tab stop present regardless")
	})
}

func TestPage2RunningHeader(t *testing.T) {
	p := Page2RunningHeader(st, "Jane Doe", "jane@x.com")
	assert.Equal(t, "Jane Doe\tjane@x.com\tPage 2", p.Text())
	assert.Equal(t, []layout.TabStop{
		{Type: layout.TabCenter, Position: 5040},
		{Type: layout.TabRight, Position: 10080},
	}, p.TabStops)
	assertStyled(t, p)
}

func TestSkillsLine_FixedOrder(t *testing.T) {
	skills := types.Skills{
		LeadershipStrategy:  []string{"Strategy"},
		ProductGrowth:       []string{"Growth"},
		DataExperimentation: []string{},
		PlatformsTools:      []string{"SQL", "Tableau"},
	}

	p := SkillsLine(st, skills)
	require.Len(t, p.Runs, 1)
	assert.Equal(t, "Strategy | Growth | SQL | Tableau", p.Runs[0].Text)
	assertStyled(t, p)
}

func TestJoinSkills_KeepsDuplicates(t *testing.T) {
	skills := types.Skills{LeadershipStrategy: []string{"SQL"}, PlatformsTools: []string{"SQL"}}
	assert.Equal(t, "SQL | SQL", JoinSkills(skills))
	assert.Equal(t, "", JoinSkills(types.Skills{}))
}

func TestEducationEntry(t *testing.T) {
	p := EducationEntry(st, "MBA", "Wharton", "2015")
	assert.Equal(t, "MBA, Wharton\t2015", p.Text())
	assert.True(t, p.Runs[0].Bold)
	assert.True(t, p.Runs[1].Bold)
	assertStyled(t, p)

	noDates := EducationEntry(st, "BS", "MIT", "")
	require.Len(t, noDates.Runs, 2)
	assert.Equal(t, "BS, MIT", noDates.Text())
}

func TestContactLine(t *testing.T) {
	tests := []struct {
		name     string
		location string
		phone    string
		email    string
		linkedin string
		text     string
		link     string
	}{
		{name: "all fields", location: "NYC", phone: "555", email: "j@x.com", linkedin: "linkedin.com/in/j",
			text: "NYC | 555 | j@x.com | linkedin.com/in/j", link: "https://linkedin.com/in/j"},
		{name: "missing phone", location: "NYC", email: "j@x.com", linkedin: "https://linkedin.com/in/j",
			text: "NYC | j@x.com | linkedin.com/in/j", link: "https://linkedin.com/in/j"},
		{name: "no linkedin", location: "NYC", phone: "555", email: "j@x.com",
			text: "NYC | 555 | j@x.com"},
		{name: "only linkedin", linkedin: "http://linkedin.com/in/j",
			text: "linkedin.com/in/j", link: "http://linkedin.com/in/j"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ContactLine(st, tt.location, tt.phone, tt.email, tt.linkedin)
			assert.Equal(t, tt.text, p.Text())
			assert.Equal(t, layout.AlignCenter, p.Alignment)
			assertStyled(t, p)

			last := p.Runs[len(p.Runs)-1]
			if tt.link == "" {
				assert.False(t, last.IsHyperlink())
				return
			}
			assert.True(t, last.IsHyperlink())
			assert.Equal(t, tt.link, last.Link)
			assert.Equal(t, layout.HyperlinkStyle, last.Style)
		})
	}
}

func TestLinkTarget(t *testing.T) {
	tests := []struct {
		link    string
		target  string
		display string
	}{
		{link: "linkedin.com/in/j", target: "https://linkedin.com/in/j", display: "linkedin.com/in/j"},
		{link: "https://linkedin.com/in/j", target: "https://linkedin.com/in/j", display: "linkedin.com/in/j"},
		{link: "http://linkedin.com/in/j", target: "http://linkedin.com/in/j", display: "linkedin.com/in/j"},
		{link: "HTTPS://LinkedIn.com/in/j", target: "HTTPS://LinkedIn.com/in/j", display: "LinkedIn.com/in/j"},
		{link: "httpbin.org/j", target: "https://httpbin.org/j", display: "httpbin.org/j"},
		{link: "http:/typo", target: "https://http:/typo", display: "http:/typo"},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			assert.Equal(t, tt.target, LinkTarget(tt.link))
			assert.Equal(t, tt.display, LinkDisplay(tt.link))
		})
	}
}

func TestNameLine(t *testing.T) {
	p := NameLine(st, "Jane Doe")
	require.Len(t, p.Runs, 1)
	assert.Equal(t, st.NameSize, p.Runs[0].Size)
	assert.True(t, p.Runs[0].Bold)
	assert.Equal(t, layout.AlignCenter, p.Alignment)
	assert.Len(t, p.TabStops, 2)
}

func TestBuilders_Deterministic(t *testing.T) {
	assert.Equal(t, CompanyLine(st, "A", "B", "C"), CompanyLine(st, "A", "B", "C"))
	assert.Equal(t, BulletPoint(st, "x"), BulletPoint(st, "x"))
	assert.Equal(t, ContactLine(st, "a", "b", "c", "d"), ContactLine(st, "a", "b", "c", "d"))
}

func TestBuilders_AlternateStyle(t *testing.T) {
	alt := st.WithFont("Georgia")
	alt.BodySize = 20

	p := CompanyLine(alt, "Acme", "NYC", "2020")
	for _, r := range p.Runs {
		assert.Equal(t, "Georgia", r.Font)
		assert.Equal(t, layout.HalfPoints(20), r.Size)
	}
}
