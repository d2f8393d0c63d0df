package services

import "strings"

// SanitizeText escapes <, > and & to their HTML entities so summaries
// are safe to render as markup. Every other character passes through
// unchanged.
func SanitizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, c := range text {
		switch c {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// AdvisoryText returns the standard advisory shown alongside results.
func AdvisoryText() string {
	return "Advisory only; verify policies and prices before purchase."
}
