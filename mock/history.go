package mock

import (
	"context"

	"github.com/fwojciec/jobscrape"
)

var _ jobscrape.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of jobscrape.HistoryService.
type HistoryService struct {
	SavePostingFn      func(ctx context.Context, p *jobscrape.JobPosting) (*jobscrape.StoredPosting, error)
	FindPostingByURLFn func(ctx context.Context, url string) (*jobscrape.StoredPosting, error)
	FindPostingsFn     func(ctx context.Context, filter jobscrape.PostingFilter) ([]*jobscrape.StoredPosting, error)
	DeletePostingFn    func(ctx context.Context, url string) error
}

func (s *HistoryService) SavePosting(ctx context.Context, p *jobscrape.JobPosting) (*jobscrape.StoredPosting, error) {
	return s.SavePostingFn(ctx, p)
}

func (s *HistoryService) FindPostingByURL(ctx context.Context, url string) (*jobscrape.StoredPosting, error) {
	return s.FindPostingByURLFn(ctx, url)
}

func (s *HistoryService) FindPostings(ctx context.Context, filter jobscrape.PostingFilter) ([]*jobscrape.StoredPosting, error) {
	return s.FindPostingsFn(ctx, filter)
}

func (s *HistoryService) DeletePosting(ctx context.Context, url string) error {
	return s.DeletePostingFn(ctx, url)
}
