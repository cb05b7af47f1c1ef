// Package slug derives filesystem- and URL-safe names from prompt text.
package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make lowercases text, collapses every run of non-alphanumeric
// characters to a single dash, and trims dashes from both ends.
// Text with no alphanumeric characters at all becomes "image".
func Make(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "image"
	}
	return s
}
