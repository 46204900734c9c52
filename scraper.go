package jobscrape

import "context"

// PayloadBuilder turns a rendered document into a JobPosting.
type PayloadBuilder interface {
	// BuildPayload classifies url, runs the matching site strategy against
	// the parsed html and sanitizes the description.
	// Missing fields are not errors; only unparseable input is.
	BuildPayload(url string, html string) (*JobPosting, error)
}

// Scraper fetches a page and builds its JobPosting.
type Scraper interface {
	// Scrape returns EINTERNAL when an unexpected failure escapes the
	// extraction pipeline. It never returns a partial record.
	Scrape(ctx context.Context, url string) (*JobPosting, error)
}
