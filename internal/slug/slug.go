// Package slug converts human-readable names into URL-safe identifiers.
package slug

import (
	"regexp"
	"strings"
)

var (
	nonWord  = regexp.MustCompile(`[^\w\s-]`)
	collapse = regexp.MustCompile(`[-\s]+`)
)

// Make converts text to a URL-friendly slug: lowercase, punctuation stripped,
// runs of whitespace and hyphens collapsed to single hyphens, leading and
// trailing hyphens trimmed. Empty input yields an empty slug.
func Make(text string) string {
	s := strings.ToLower(text)
	s = nonWord.ReplaceAllString(s, "")
	s = collapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
