package jobscrape

import "context"

// Fetcher retrieves the rendered HTML of a job listing page.
// Implementations may use browser automation for script-rendered boards.
type Fetcher interface {
	// Fetch returns the document HTML at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	Close() error
}
