// Package bluemonday implements jobscrape.Sanitizer with an allow-list
// policy from github.com/microcosm-cc/bluemonday.
package bluemonday

import (
	"html"
	"regexp"

	"github.com/fwojciec/jobscrape"
	"github.com/microcosm-cc/bluemonday"
)

var _ jobscrape.Sanitizer = (*Sanitizer)(nil)

// maxPasses bounds the fixpoint loop in Sanitize. Real input settles after
// one or two passes.
const maxPasses = 5

var (
	scriptRe = regexp.MustCompile(`(?is)<script\b.*?</script\s*>`)
	styleRe  = regexp.MustCompile(`(?is)<style\b.*?</style\s*>`)
	braceRe  = regexp.MustCompile(`\{[\s\S]*?\}`)

	divOpenRe  = regexp.MustCompile(`(?i)<div\b[^>]*>`)
	divCloseRe = regexp.MustCompile(`(?i)</div\s*>`)
	boldOpenRe = regexp.MustCompile(`(?i)<b(\s[^>]*)?>`)
	boldEndRe  = regexp.MustCompile(`(?i)</b\s*>`)
)

// Sanitizer reduces job description markup to structural tags.
//
// A pass removes script and style blocks and inline {...} fragments,
// rewrites div to p and b to strong, then filters through the allow-list.
// Passes repeat until the output stops changing, so Sanitize is idempotent.
type Sanitizer struct {
	policy *bluemonday.Policy
	text   *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer with the job description allow-list.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		policy: NewPolicy(),
		text:   bluemonday.NewPolicy().AddSpaceWhenStrippingTag(true),
	}
}

// NewPolicy returns the allow-list applied to descriptions: headings,
// paragraphs, emphasis, lists, tables and links with http(s) or mailto
// targets. Everything else is stripped, keeping its text.
func NewPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"a", "h1", "h2", "h3", "h4", "h5", "h6", "p", "strong", "em", "i",
		"ul", "ol", "li", "table", "thead", "tbody", "tfoot", "tr", "th", "td", "hr",
	)
	p.AllowAttrs("href", "src", "alt", "width", "height", "colspan", "rowspan", "title").Globally()
	p.RequireParseableURLs(true)
	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowRelativeURLs(true)
	return p
}

// Sanitize implements jobscrape.Sanitizer.
func (s *Sanitizer) Sanitize(markup string) string {
	out := s.pass(markup)
	for i := 1; i < maxPasses; i++ {
		next := s.pass(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}

// Text returns the sanitized markup as plain text with paragraph breaks
// collapsed the way NormalizeDescription does.
func (s *Sanitizer) Text(markup string) string {
	stripped := s.text.Sanitize(s.Sanitize(markup))
	return jobscrape.NormalizeDescription(html.UnescapeString(stripped))
}

func (s *Sanitizer) pass(markup string) string {
	markup = scriptRe.ReplaceAllString(markup, "")
	markup = styleRe.ReplaceAllString(markup, "")
	markup = braceRe.ReplaceAllString(markup, "")

	markup = divOpenRe.ReplaceAllString(markup, "<p>")
	markup = divCloseRe.ReplaceAllString(markup, "</p>")
	markup = boldOpenRe.ReplaceAllString(markup, "<strong>")
	markup = boldEndRe.ReplaceAllString(markup, "</strong>")

	return s.policy.Sanitize(markup)
}
