package mock

import (
	"context"

	"github.com/fwojciec/jobscrape"
)

var _ jobscrape.PostingWriter = (*PostingWriter)(nil)

// PostingWriter is a mock implementation of jobscrape.PostingWriter.
type PostingWriter struct {
	WritePostingFn func(ctx context.Context, posting *jobscrape.JobPosting) error
}

func (w *PostingWriter) WritePosting(ctx context.Context, posting *jobscrape.JobPosting) error {
	return w.WritePostingFn(ctx, posting)
}

var _ jobscrape.PostingStore = (*PostingStore)(nil)

// PostingStore is a mock implementation of jobscrape.PostingStore.
type PostingStore struct {
	SaveFn   func(ctx context.Context, posting *jobscrape.JobPosting) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PostingStore) Save(ctx context.Context, posting *jobscrape.JobPosting) error {
	return s.SaveFn(ctx, posting)
}

func (s *PostingStore) Commit() error {
	return s.CommitFn()
}

func (s *PostingStore) Abort() error {
	return s.AbortFn()
}
