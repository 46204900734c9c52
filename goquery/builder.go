package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobscrape"
)

var _ jobscrape.PayloadBuilder = (*PayloadBuilder)(nil)

// PayloadBuilder assembles JobPostings: it classifies the URL, runs the
// site strategy and sanitizes the description it returns.
type PayloadBuilder struct {
	registry  *Registry
	sanitizer jobscrape.Sanitizer
}

// NewPayloadBuilder creates a PayloadBuilder.
func NewPayloadBuilder(registry *Registry, sanitizer jobscrape.Sanitizer) *PayloadBuilder {
	return &PayloadBuilder{registry: registry, sanitizer: sanitizer}
}

// BuildPayload parses html and builds the posting for url.
func (b *PayloadBuilder) BuildPayload(url string, html string) (*jobscrape.JobPosting, error) {
	if url == "" {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "url required")
	}
	if strings.TrimSpace(html) == "" {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	return b.Build(NewPage(url, doc)), nil
}

// Build runs extraction against an already parsed page.
func (b *PayloadBuilder) Build(page *Page) *jobscrape.JobPosting {
	site := jobscrape.DetectSite(page.URL)
	fields := b.registry.GetForSite(site).Extract(page)

	return &jobscrape.JobPosting{
		URL:                page.URL,
		JobDescriptionHTML: b.sanitizer.Sanitize(fields.Description),
		JobTitle:           jobscrape.Optional(fields.Title),
		CompanyName:        jobscrape.Optional(fields.Company),
		Location:           jobscrape.Optional(fields.Location),
		Source:             site,
	}
}
