package mock

import (
	"context"

	"github.com/fwojciec/jobscrape"
)

var _ jobscrape.PayloadBuilder = (*PayloadBuilder)(nil)

// PayloadBuilder is a mock implementation of jobscrape.PayloadBuilder.
type PayloadBuilder struct {
	BuildPayloadFn func(url string, html string) (*jobscrape.JobPosting, error)
}

func (b *PayloadBuilder) BuildPayload(url string, html string) (*jobscrape.JobPosting, error) {
	return b.BuildPayloadFn(url, html)
}

var _ jobscrape.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of jobscrape.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*jobscrape.JobPosting, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*jobscrape.JobPosting, error) {
	return s.ScrapeFn(ctx, url)
}
