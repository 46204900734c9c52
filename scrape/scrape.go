// Package scrape coordinates fetching and payload building for job
// postings. It is the boundary where unexpected extraction failures are
// turned into a single error.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/jobscrape"
)

var _ jobscrape.Scraper = (*Service)(nil)

// Service scrapes job postings. Fetcher and Builder are required;
// RateLimiter and OnRetry are optional.
type Service struct {
	Fetcher     jobscrape.Fetcher
	Builder     jobscrape.PayloadBuilder
	RateLimiter jobscrape.DomainLimiter
	RetryDelays []time.Duration
	OnRetry     RetryFunc
}

// Scrape fetches rawURL and builds its posting. Each call works on its own
// fetched snapshot; concurrent scrapes share nothing but the rate limiter.
func (s *Service) Scrape(ctx context.Context, rawURL string) (*jobscrape.JobPosting, error) {
	if rawURL == "" {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "url required")
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "invalid URL: %s", rawURL)
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, u.Hostname()); err != nil {
			return nil, err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, rawURL, s.Fetcher.Fetch, s.OnRetry, delays)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	return s.build(rawURL, html)
}

// build runs the payload builder, converting a panic into EINTERNAL so
// that no partial posting escapes.
func (s *Service) build(rawURL, html string) (posting *jobscrape.JobPosting, err error) {
	defer func() {
		if r := recover(); r != nil {
			posting = nil
			err = &jobscrape.Error{
				Code:    jobscrape.EINTERNAL,
				Message: fmt.Sprintf("extraction failed: %v", r),
			}
		}
	}()
	return s.Builder.BuildPayload(rawURL, html)
}
