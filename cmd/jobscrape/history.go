package main

import (
	"fmt"

	"github.com/fwojciec/jobscrape"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := jobscrape.PostingFilter{Limit: c.Limit}
	if c.Source != "" {
		source := jobscrape.Site(c.Source)
		filter.Source = &source
	}

	postings, err := deps.History.FindPostings(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobscrape.ErrorMessage(err))
		return err
	}

	if len(postings) == 0 {
		fmt.Fprintln(deps.Stdout, "No postings found. Use 'jobscrape --db PATH scrape' to record some.")
		return nil
	}

	for _, sp := range postings {
		p := sp.Posting
		title := p.Title()
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-13s  %s  %s\n", sp.ScrapedAt.Format("2006-01-02"), p.Source, title, p.URL)
		if c.Full {
			fmt.Fprintf(deps.Stdout, "\n%s\n\n", deps.Sanitizer.Text(p.JobDescriptionHTML))
		}
	}

	return nil
}
