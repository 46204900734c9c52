// Package rod provides a jobscrape.Fetcher that renders pages in headless
// Chrome. Most job boards build their posting views client-side, so this is
// the fetcher that sees what a user sees.
package rod

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/jobscrape"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page render.
const DefaultFetchTimeout = 15 * time.Second

// DefaultSettleTime is how long the DOM must stay unchanged after load
// before the HTML is captured.
const DefaultSettleTime = 500 * time.Millisecond

// Ensure Fetcher implements jobscrape.Fetcher at compile time.
var _ jobscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager    *BrowserManager
	timeout    time.Duration
	settle     time.Duration
	managerOpt []ManagerOption
	closed     atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout of a single fetch.
// Defaults to DefaultFetchTimeout if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithSettleTime sets how long the DOM must be quiet after load.
// Zero captures the HTML as soon as the load event fires.
func WithSettleTime(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settle = d
	}
}

// WithRecycleAfter recycles the browser after n rendered pages.
func WithRecycleAfter(n int64) Option {
	return func(f *Fetcher) {
		f.managerOpt = append(f.managerOpt, WithMaxPages(n))
	}
}

// WithUserAgent sets the browser's User-Agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.managerOpt = append(f.managerOpt, WithBrowserUserAgent(ua))
	}
}

// WithImages lets the browser load images.
func WithImages(enabled bool) Option {
	return func(f *Fetcher) {
		f.managerOpt = append(f.managerOpt, WithImageLoading(enabled))
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		settle:  DefaultSettleTime,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(f.managerOpt...)
	if err != nil {
		return nil, err
	}
	f.manager = manager
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", jobscrape.Errorf(jobscrape.EINVALID, "fetcher closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("waiting for %s: %w", url, err)
	}
	if f.settle > 0 {
		// Boards that keep polling never settle; render what is there.
		_ = page.Timeout(4*f.settle).WaitDOMStable(f.settle, 0)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	f.manager.PageRendered()

	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
