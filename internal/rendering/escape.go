package rendering

import "strings"

// EscapeMarkdown escapes characters that CommonMark would treat as inline
// markup: \ ` * _ [ ] < > # |
func EscapeMarkdown(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2) // Pre-allocate space for potential escaping

	for _, r := range text {
		switch r {
		case '\\', '`', '*', '_', '[', ']', '<', '>', '#', '|':
			result.WriteByte('\\')
			result.WriteRune(r)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// escapeLinkTarget keeps a URL from closing the (...) part of a link.
func escapeLinkTarget(target string) string {
	r := strings.NewReplacer(" ", "%20", "(", "%28", ")", "%29")
	return r.Replace(target)
}

// maxListNumber is the longest digit run CommonMark accepts as an ordered
// list marker.
const maxListNumber = 9

// EscapeBlockStart escapes a leading marker that CommonMark would read as the
// start of a list, a thematic break or a fence: "1." and "1)" become "1\."
// and "1\)"; a leading - + = or ~ gets a backslash.
func EscapeBlockStart(text string) string {
	if text == "" {
		return ""
	}
	switch text[0] {
	case '-', '+', '=', '~':
		return `\` + text
	}

	digits := 0
	for digits < len(text) && digits <= maxListNumber && text[digits] >= '0' && text[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits > maxListNumber || digits == len(text) {
		return text
	}
	if text[digits] != '.' && text[digits] != ')' {
		return text
	}
	return text[:digits] + `\` + text[digits:]
}
