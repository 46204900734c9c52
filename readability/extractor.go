// Package readability implements jobscrape.Extractor with go-readability.
// The fallback strategy uses it to find the posting body on career pages
// with no recognizable content container.
package readability

import (
	"strings"

	"github.com/fwojciec/jobscrape"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements jobscrape.Extractor at compile time.
var _ jobscrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Returns ENOTFOUND when readability finds no content block.
func (e *Extractor) Extract(rawHTML string) (*jobscrape.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(article.Content)
	if content == "" {
		return nil, jobscrape.Errorf(jobscrape.ENOTFOUND, "no main content")
	}

	return &jobscrape.ExtractResult{
		Title:       jobscrape.NormalizeText(article.Title),
		ContentHTML: content,
	}, nil
}
