package feed

import (
	"html"
	"regexp"
	"strings"
)

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// CleanText removes HTML tags, unescapes entities and normalizes whitespace
// so feed text can be shown on a single terminal line
func CleanText(input string) string {
	// Remove HTML tags
	cleaned := htmlTagRegex.ReplaceAllString(input, " ")
	// Unescape HTML entities
	cleaned = html.UnescapeString(cleaned)
	// Normalize whitespace
	return strings.Join(strings.Fields(cleaned), " ")
}
