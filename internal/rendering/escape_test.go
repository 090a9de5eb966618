package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeMarkdown_EmptyString(t *testing.T) {
	assert.Equal(t, "", EscapeMarkdown(""))
}

func TestEscapeMarkdown_NoSpecialCharacters(t *testing.T) {
	text := "Grew revenue 20% in 2023, led a team of 8."
	assert.Equal(t, text, EscapeMarkdown(text))
}

func TestEscapeMarkdown_SpecialCharacters(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "C#", expected: `C\#`},
		{input: "snake_case", expected: `snake\_case`},
		{input: "*star*", expected: `\*star\*`},
		{input: "a | b", expected: `a \| b`},
		{input: "[link]", expected: `\[link\]`},
		{input: "<tag>", expected: `\<tag\>`},
		{input: "back\\slash", expected: `back\\slash`},
		{input: "`code`", expected: "\\`code\\`"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeMarkdown(tt.input))
		})
	}
}

func TestEscapeMarkdown_Unicode(t *testing.T) {
	assert.Equal(t, "José • Zürich", EscapeMarkdown("José • Zürich"))
}

func TestEscapeLinkTarget(t *testing.T) {
	assert.Equal(t, "https://x.com/a%28b%29%20c", escapeLinkTarget("https://x.com/a(b) c"))
}

func TestEscapeBlockStart(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"1. Led growth", `1\. Led growth`},
		{"12) Shipped", `12\) Shipped`},
		{"- dash", `\- dash`},
		{"+ plus", `\+ plus`},
		{"===", `\===`},
		{"~~~", `\~~~`},
		{"2023 revenue grew", "2023 revenue grew"},
		{"2023", "2023"},
		{"1234567890. too long", "1234567890. too long"},
		{"Led 1. team", "Led 1. team"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeBlockStart(tt.input))
		})
	}
}
