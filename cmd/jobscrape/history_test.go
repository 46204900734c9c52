package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/jobscrape"
	"github.com/fwojciec/jobscrape/bluemonday"
	main "github.com/fwojciec/jobscrape/cmd/jobscrape"
	"github.com/fwojciec/jobscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists date, source, title and URL", func(t *testing.T) {
		t.Parallel()

		title := "Backend Engineer"
		var gotFilter jobscrape.PostingFilter
		history := &mock.HistoryService{
			FindPostingsFn: func(_ context.Context, filter jobscrape.PostingFilter) ([]*jobscrape.StoredPosting, error) {
				gotFilter = filter
				return []*jobscrape.StoredPosting{
					{
						Posting: &jobscrape.JobPosting{
							URL:                "https://www.indeed.com/viewjob?jk=1",
							JobDescriptionHTML: "<p>Ship &amp; run</p>",
							JobTitle:           &title,
							Source:             jobscrape.SiteIndeed,
						},
						ScrapedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			History:   history,
			Sanitizer: bluemonday.NewSanitizer(),
		}

		cmd := &main.HistoryCmd{Source: "Indeed", Limit: 5, Full: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.Source)
		assert.Equal(t, jobscrape.SiteIndeed, *gotFilter.Source)
		assert.Equal(t, 5, gotFilter.Limit)
		output := stdout.String()
		assert.Contains(t, output, "2026-01-15")
		assert.Contains(t, output, "Indeed")
		assert.Contains(t, output, "Backend Engineer")
		assert.Contains(t, output, "https://www.indeed.com/viewjob?jk=1")
		assert.Contains(t, output, "Ship & run")
	})

	t.Run("shows helpful message when history is empty", func(t *testing.T) {
		t.Parallel()

		history := &mock.HistoryService{
			FindPostingsFn: func(_ context.Context, _ jobscrape.PostingFilter) ([]*jobscrape.StoredPosting, error) {
				return nil, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			History: history,
		}

		err := (&main.HistoryCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No postings found")
	})
}

func TestMain_Run_History(t *testing.T) {
	t.Parallel()

	t.Run("records scraped postings and lists them", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "history.db")

		m := main.NewMain()
		m.Fetcher = fetcherFor(map[string]string{"https://jobs.example.com/1": jobPage})
		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"--db", dbPath, "scrape", "https://jobs.example.com/1"}, &stdout, &stderr)
		require.NoError(t, err)

		m = main.NewMain()
		stdout.Reset()
		err = m.Run(context.Background(), []string{"--db", dbPath, "history"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Go Developer")
		assert.Contains(t, stdout.String(), "https://jobs.example.com/1")
	})

	t.Run("requires a database path", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"history"}, &stdout, &stderr)

		assert.Equal(t, jobscrape.EINVALID, jobscrape.ErrorCode(err))
	})
}
