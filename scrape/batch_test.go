package scrape_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/jobscrape"
	"github.com/fwojciec/jobscrape/mock"
	"github.com/fwojciec/jobscrape/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch_Run(t *testing.T) {
	t.Parallel()

	t.Run("scrapes each URL once in input order", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		calls := map[string]int{}
		scraper := &mock.Scraper{
			ScrapeFn: func(_ context.Context, url string) (*jobscrape.JobPosting, error) {
				mu.Lock()
				calls[url]++
				mu.Unlock()
				return &jobscrape.JobPosting{URL: url, Source: jobscrape.DetectSite(url)}, nil
			},
		}
		batch := &scrape.Batch{Scraper: scraper, Concurrency: 2}
		urls := []string{
			"https://www.indeed.com/viewjob?jk=1",
			"https://www.dice.com/job-detail/2",
			"https://www.indeed.com/viewjob?jk=1",
			"https://company.com/careers/3",
		}

		results := batch.Run(context.Background(), urls, nil)

		require.Len(t, results, 3)
		assert.Equal(t, "https://www.indeed.com/viewjob?jk=1", results[0].URL)
		assert.Equal(t, "https://www.dice.com/job-detail/2", results[1].URL)
		assert.Equal(t, "https://company.com/careers/3", results[2].URL)
		assert.Equal(t, 1, calls["https://www.indeed.com/viewjob?jk=1"])
		for _, r := range results {
			assert.NotEmpty(t, r.ID)
			assert.NoError(t, r.Err)
		}
		assert.Equal(t, 0, scrape.Failed(results))
	})

	t.Run("records failures without stopping the batch", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(_ context.Context, url string) (*jobscrape.JobPosting, error) {
				if url == "https://www.monster.com/job/bad" {
					return nil, errors.New("fetch failed")
				}
				return &jobscrape.JobPosting{URL: url, Source: jobscrape.SiteMonster}, nil
			},
		}
		batch := &scrape.Batch{Scraper: scraper}

		results := batch.Run(context.Background(), []string{
			"https://www.monster.com/job/bad",
			"https://www.monster.com/job/good",
		}, nil)

		require.Len(t, results, 2)
		assert.Equal(t, 1, scrape.Failed(results))

		failed := results[0].Response()
		assert.False(t, failed.Success)
		assert.Equal(t, "fetch failed", failed.Error)

		ok := results[1].Response()
		assert.True(t, ok.Success)
		assert.Equal(t, "https://www.monster.com/job/good", ok.Payload.URL)
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(_ context.Context, url string) (*jobscrape.JobPosting, error) {
				if url == "https://b.com/2" {
					return nil, errors.New("boom")
				}
				return &jobscrape.JobPosting{URL: url, Source: jobscrape.SiteDefault}, nil
			},
		}
		batch := &scrape.Batch{Scraper: scraper, Concurrency: 1}

		var events []scrape.ProgressEvent
		batch.Run(context.Background(), []string{"https://a.com/1", "https://b.com/2"}, func(e scrape.ProgressEvent) {
			events = append(events, e)
		})

		require.Len(t, events, 4)
		assert.Equal(t, scrape.ProgressStarted, events[0].Type)
		assert.Equal(t, 2, events[0].Total)
		assert.Equal(t, scrape.ProgressFinished, events[3].Type)

		var completed, failed int
		for _, e := range events[1:3] {
			switch e.Type {
			case scrape.ProgressCompleted:
				completed++
			case scrape.ProgressFailed:
				failed++
				assert.Equal(t, "https://b.com/2", e.URL)
				assert.EqualError(t, e.Error, "boom")
			}
		}
		assert.Equal(t, 1, completed)
		assert.Equal(t, 1, failed)
	})

	t.Run("fails remaining URLs once the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		scraper := &mock.Scraper{
			ScrapeFn: func(_ context.Context, _ string) (*jobscrape.JobPosting, error) {
				t.Error("scraper should not be called")
				return nil, nil
			},
		}
		batch := &scrape.Batch{Scraper: scraper}

		results := batch.Run(ctx, []string{"https://a.com/1", "https://a.com/2"}, nil)

		require.Len(t, results, 2)
		for _, r := range results {
			assert.ErrorIs(t, r.Err, context.Canceled)
		}
	})

	t.Run("returns no results for no URLs", func(t *testing.T) {
		t.Parallel()

		batch := &scrape.Batch{Scraper: &mock.Scraper{}}

		assert.Empty(t, batch.Run(context.Background(), nil, nil))
	})

	t.Run("keeps every distinct URL of a large batch", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(_ context.Context, url string) (*jobscrape.JobPosting, error) {
				return &jobscrape.JobPosting{URL: url}, nil
			},
		}
		batch := &scrape.Batch{Scraper: scraper, Concurrency: 8}
		urls := make([]string, 0, 20000)
		for trial := 0; trial < 5; trial++ {
			for i := 0; i < 4000; i++ {
				urls = append(urls, fmt.Sprintf("https://example.com/jobs/%d/%d", trial, i))
			}
		}

		results := batch.Run(context.Background(), urls, nil)

		require.Len(t, results, len(urls))
		for i, r := range results {
			assert.Equal(t, urls[i], r.URL)
			require.NoError(t, r.Err)
		}
	})
}
