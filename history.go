package jobscrape

import (
	"context"
	"time"
)

// StoredPosting is a posting recorded in the scrape history.
type StoredPosting struct {
	ID          string
	Posting     *JobPosting
	ContentHash string
	ScrapedAt   time.Time
}

// PostingFilter represents a filter for FindPostings.
type PostingFilter struct {
	Source *Site

	Limit  int
	Offset int
}

// HistoryService records scraped postings keyed by URL.
type HistoryService interface {
	// SavePosting inserts p or replaces the record with the same URL.
	SavePosting(ctx context.Context, p *JobPosting) (*StoredPosting, error)

	// FindPostingByURL returns ENOTFOUND if no record matches url.
	FindPostingByURL(ctx context.Context, url string) (*StoredPosting, error)

	// FindPostings returns records newest first.
	FindPostings(ctx context.Context, filter PostingFilter) ([]*StoredPosting, error)

	// DeletePosting returns ENOTFOUND if no record matches url.
	DeletePosting(ctx context.Context, url string) error
}
