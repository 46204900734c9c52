package main

import (
	"fmt"

	"github.com/fwojciec/jobscrape"
	"github.com/fwojciec/jobscrape/scrape"
)

// Run executes the scrape command. Every URL is reported; the command
// fails when any of them failed.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	batch := &scrape.Batch{
		Scraper:     deps.Scraper,
		Concurrency: deps.Settings.Concurrency,
	}

	progress := func(e scrape.ProgressEvent) {
		switch e.Type {
		case scrape.ProgressCompleted, scrape.ProgressFailed:
			deps.Logger.Debug("progress",
				"completed", e.Completed,
				"total", e.Total,
				"url", e.URL,
				"err", e.Error,
			)
		}
	}

	results := batch.Run(deps.Ctx, c.URLs, progress)

	for _, r := range results {
		deps.Logger.Debug("result", "request", r.ID, "url", r.URL, "ok", r.Err == nil)
		if err := writeResult(deps, r.URL, r.Response()); err != nil {
			return err
		}
	}

	if deps.Store != nil {
		if err := c.save(deps, results); err != nil {
			return err
		}
	}

	if deps.History != nil {
		if err := c.record(deps, results); err != nil {
			return err
		}
	}

	if n := scrape.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d scrapes failed", n, len(results))
	}
	return nil
}

func (c *ScrapeCmd) save(deps *Dependencies, results []scrape.Result) error {
	saved := 0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if err := deps.Store.Save(deps.Ctx, r.Posting); err != nil {
			_ = deps.Store.Abort()
			fmt.Fprintf(deps.Stderr, "error saving %s: %s\n", r.URL, jobscrape.ErrorMessage(err))
			return err
		}
		saved++
	}

	if err := deps.Store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error committing: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stderr, "Saved %d postings to %s\n", saved, c.Out)
	return nil
}

func (c *ScrapeCmd) record(deps *Dependencies, results []scrape.Result) error {
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if _, err := deps.History.SavePosting(deps.Ctx, r.Posting); err != nil {
			fmt.Fprintf(deps.Stderr, "error recording %s: %s\n", r.URL, jobscrape.ErrorMessage(err))
			return err
		}
	}
	return nil
}
