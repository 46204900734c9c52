package jobscrape

import (
	"regexp"
	"strings"
)

// NormalizeText collapses every run of whitespace to a single space and
// trims the result. An empty result means the value is absent.
func NormalizeText(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

var (
	paragraphBreakRe = regexp.MustCompile(`\r?\n\s*\r?\n`)
	horizontalRunRe  = regexp.MustCompile(`[^\S\n]+`)
	spaceAroundNLRe  = regexp.MustCompile(` *\n *`)
)

// NormalizeDescription cleans plain-text description content for a prompt.
// Blank-line paragraph breaks are kept as a single blank line; other runs of
// whitespace become one space.
func NormalizeDescription(text string) string {
	text = paragraphBreakRe.ReplaceAllString(text, "\n\n")
	text = horizontalRunRe.ReplaceAllString(text, " ")
	text = spaceAroundNLRe.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
