// Package cleaner normalizes raw CV text before scoring and extraction.
package cleaner

import (
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	colon      = regexp.MustCompile(`\s*:\s*`)
)

// Normalize collapses runs of whitespace (including newlines) into single
// spaces and pads every colon with one space on each side. PDF extractors
// tend to glue "Label:value" pairs together; the padding keeps labels and
// values tokenizable for downstream matching.
func Normalize(text string) string {
	text = whitespace.ReplaceAllString(text, " ")
	text = colon.ReplaceAllString(text, " : ")
	return strings.TrimSpace(text)
}
