// Package trafilatura implements jobscrape.Extractor with go-trafilatura,
// an alternative to readability for the fallback strategy.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/jobscrape"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements jobscrape.Extractor at compile time.
var _ jobscrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
		},
	}
}

// Extract processes raw HTML and returns the main content.
// Returns ENOTFOUND when no content node is found.
func (e *Extractor) Extract(rawHTML string) (*jobscrape.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}
	if result.ContentNode == nil {
		return nil, jobscrape.Errorf(jobscrape.ENOTFOUND, "no main content")
	}

	contentHTML, err := renderChildren(result.ContentNode)
	if err != nil {
		return nil, err
	}

	return &jobscrape.ExtractResult{
		Title:       jobscrape.NormalizeText(result.Metadata.Title),
		ContentHTML: strings.TrimSpace(contentHTML),
	}, nil
}

// renderChildren renders the children of n, dropping trafilatura's
// wrapper element.
func renderChildren(n *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
