package slug

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// Make derives a URL-safe slug from an article title: lowercase, newlines
// and punctuation become spaces, whitespace runs become single hyphens.
// The result contains only lowercase ASCII letters, digits and hyphens.
// Non-ASCII letters are stripped, not transliterated.
func Make(title string) string {
	s := strings.ToLower(title)
	s = strings.ReplaceAll(s, "\n", " ")
	s = nonSlugChars.ReplaceAllString(s, " ")
	s = strings.Join(whitespace.Split(s, -1), "-")
	return hyphenRuns.ReplaceAllString(s, "-")
}
