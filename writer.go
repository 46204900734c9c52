package jobscrape

import "context"

// PostingWriter writes a scraped posting to an output sink.
type PostingWriter interface {
	WritePosting(ctx context.Context, posting *JobPosting) error
}

// PostingStore persists postings with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PostingStore interface {
	Save(ctx context.Context, posting *JobPosting) error
	Commit() error
	Abort() error
}
