package customization

import "strings"

const (
	// MaxTextLines is the number of print lines a shirt can carry.
	MaxTextLines = 3
	// MaxTextChars caps the total print text, newlines included.
	MaxTextChars = 120
)

// ConstrainText returns the accepted print text for raw input: at most
// MaxTextLines newline-delimited lines and at most MaxTextChars runes.
func ConstrainText(raw string) string {
	lines := strings.Split(raw, "\n")
	accepted := raw
	if len(lines) > MaxTextLines {
		accepted = strings.Join(lines[:MaxTextLines], "\n")
	}

	runes := []rune(accepted)
	if len(runes) > MaxTextChars {
		accepted = string(runes[:MaxTextChars])
	}
	return accepted
}

// LineCount returns the number of newline-delimited lines in text.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}
