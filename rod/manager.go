package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the default number of rendered postings before Chrome
// is relaunched. Job boards ship heavy client bundles, so the memory of a
// long-lived browser grows quickly.
const DefaultMaxPages = 50

// launchFlags are passed to every Chrome launch. Background throttling is
// off so that tabs of a concurrent batch render at full speed.
var launchFlags = []string{
	"disable-background-timer-throttling",
	"disable-backgrounding-occluded-windows",
	"disable-renderer-backgrounding",
	"disable-dev-shm-usage",
	"disable-hang-monitor",
}

// BrowserManager owns the headless Chrome process shared by a Fetcher and
// relaunches it once enough postings have been rendered.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	maxPages  int64
	userAgent string
	images    bool

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	rendered atomic.Int64
	closed   atomic.Bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages relaunches Chrome after n rendered postings.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// WithBrowserUserAgent overrides the User-Agent Chrome sends.
func WithBrowserUserAgent(ua string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.userAgent = ua
	}
}

// WithImageLoading lets Chrome download images. Postings are text, so
// images are blocked unless enabled.
func WithImageLoading(enabled bool) ManagerOption {
	return func(bm *BrowserManager) {
		bm.images = enabled
	}
}

// NewBrowserManager launches headless Chrome. Close must be called to stop it.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(bm)
	}

	browser, l, err := bm.launch()
	if err != nil {
		return nil, err
	}
	bm.browser, bm.launcher = browser, l
	return bm, nil
}

// Browser returns the browser to render the next posting with. Chrome is
// relaunched first when the rendered count has reached the limit.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.rendered.Load() >= bm.maxPages {
		bm.relaunch()
	}
	return bm.browser
}

// PageRendered counts one rendered posting toward the relaunch limit.
func (bm *BrowserManager) PageRendered() {
	bm.rendered.Add(1)
}

// Close stops Chrome. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	err := shutdown(bm.browser, bm.launcher)
	bm.browser, bm.launcher = nil, nil
	return err
}

// LauncherPID returns the process ID of the running Chrome, or 0 once
// closed.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}

// launch starts and connects to a new Chrome process.
func (bm *BrowserManager) launch() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().Leakless(true).Headless(true)
	for _, flag := range launchFlags {
		l = l.Set(flag)
	}
	if !bm.images {
		l = l.Set("blink-settings", "imagesEnabled=false")
	}
	if bm.userAgent != "" {
		l = l.Set("user-agent", bm.userAgent)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return browser, l, nil
}

// relaunch swaps in a fresh Chrome. A failed launch keeps the current one
// and retries on the next call. Must be called with mu held.
func (bm *BrowserManager) relaunch() {
	browser, l, err := bm.launch()
	if err != nil {
		return
	}
	_ = shutdown(bm.browser, bm.launcher)
	bm.browser, bm.launcher = browser, l
	bm.rendered.Store(0)
}

func shutdown(browser *rod.Browser, l *launcher.Launcher) error {
	var err error
	if browser != nil {
		err = browser.Close()
	}
	if l != nil {
		l.Kill()
	}
	return err
}
