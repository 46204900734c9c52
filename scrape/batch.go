package scrape

import (
	"context"

	"github.com/fwojciec/jobscrape"
	"github.com/fwojciec/jobscrape/bloom"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Batch defaults.
const (
	batchFalsePositiveRate = 0.0001
	defaultConcurrency     = 4
)

// Result holds the outcome of scraping one URL of a batch.
type Result struct {
	// ID correlates the result with log lines of the same request.
	ID      string
	URL     string
	Posting *jobscrape.JobPosting
	Err     error
}

// Response returns the envelope for the result.
func (r Result) Response() *jobscrape.ScrapeResponse {
	return jobscrape.NewScrapeResponse(r.Posting, r.Err)
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
// It is never called concurrently.
type ProgressFunc func(event ProgressEvent)

// Batch scrapes many URLs with a shared Scraper.
type Batch struct {
	Scraper     jobscrape.Scraper
	Concurrency int
}

// Run scrapes every distinct URL in urls. Failures are recorded per URL
// and never stop the rest of the batch; only ctx cancellation does, and
// then the remaining URLs fail with the context error. Results keep the
// order of first occurrence in urls.
func (b *Batch) Run(ctx context.Context, urls []string, progress ProgressFunc) []Result {
	seen := bloom.NewFilter(uint(len(urls)), batchFalsePositiveRate)
	exact := make(map[string]struct{}, len(urls))
	var unique []string
	for _, u := range urls {
		// A bloom hit may be a false positive; only the exact set decides.
		if !seen.Visit(u) {
			if _, dup := exact[u]; dup {
				continue
			}
		}
		exact[u] = struct{}{}
		unique = append(unique, u)
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	total := len(unique)
	results := make([]Result, total)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	type done struct {
		position int
		result   Result
	}
	doneCh := make(chan done, total)

	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	go func() {
		for i, u := range unique {
			g.Go(func() error {
				r := Result{ID: uuid.NewString(), URL: u}
				if err := ctx.Err(); err != nil {
					r.Err = err
				} else {
					r.Posting, r.Err = b.Scraper.Scrape(ctx, u)
				}
				doneCh <- done{position: i, result: r}
				return nil
			})
		}
		_ = g.Wait()
		close(doneCh)
	}()

	completed := 0
	for d := range doneCh {
		results[d.position] = d.result
		completed++
		if progress == nil {
			continue
		}
		event := ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, URL: d.result.URL}
		if d.result.Err != nil {
			event.Type = ProgressFailed
			event.Error = d.result.Err
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return results
}

// Failed returns the number of results with an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
