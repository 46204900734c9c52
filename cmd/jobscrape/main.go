package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobscrape"
	"github.com/fwojciec/jobscrape/bluemonday"
	"github.com/fwojciec/jobscrape/fs"
	"github.com/fwojciec/jobscrape/gemini"
	"github.com/fwojciec/jobscrape/goquery"
	"github.com/fwojciec/jobscrape/htmltomarkdown"
	jshttp "github.com/fwojciec/jobscrape/http"
	"github.com/fwojciec/jobscrape/readability"
	"github.com/fwojciec/jobscrape/rod"
	"github.com/fwojciec/jobscrape/scrape"
	jsslog "github.com/fwojciec/jobscrape/slog"
	"github.com/fwojciec/jobscrape/sqlite"
	"github.com/fwojciec/jobscrape/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read by the sanitize command.
	Stdin io.Reader

	// SQLite database backing the scrape history. Opened by Run when a
	// history path is configured.
	DB *sqlite.DB

	// Services for end-to-end testing. Built from flags when nil.
	Fetcher      jobscrape.Fetcher
	TokenCounter jobscrape.TokenCounter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobscrape"),
		kong.Description("Extract normalized job postings from job board pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobscrape --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set JOBSCRAPE_CONFIG or --config to a valid YAML file")
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)
	sanitizer := bluemonday.NewSanitizer()
	deps.Sanitizer = sanitizer
	deps.Converter = htmltomarkdown.NewConverter()

	cmd := strings.Fields(kongCtx.Command())[0]

	var (
		pipeline PipelineFlags
		fetch    FetchFlags
	)
	switch cmd {
	case "scrape":
		pipeline, fetch = cli.Scrape.PipelineFlags, cli.Scrape.FetchFlags
	case "extract":
		pipeline = cli.Extract.PipelineFlags
	}
	settings, err := ResolveSettings(pipeline, fetch, cfg)
	if err != nil {
		return err
	}
	deps.Settings = settings

	dbPath := firstString(cli.DB, cfg.DB)
	if cmd == "history" && dbPath == "" {
		return jobscrape.Errorf(jobscrape.EINVALID, "no history database: set --db or JOBSCRAPE_DB")
	}
	if dbPath != "" && (cmd == "history" || cmd == "scrape") {
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set JOBSCRAPE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()
		deps.History = sqlite.NewHistoryService(m.DB)
	}

	if cmd == "scrape" || cmd == "extract" {
		extractor, err := newExtractor(settings.Extractor)
		if err != nil {
			return err
		}
		registry := goquery.DefaultRegistry(extractor)
		deps.Builder = jsslog.NewLoggingPayloadBuilder(
			goquery.NewPayloadBuilder(registry, sanitizer),
			deps.Logger,
		)

		if settings.Tokens {
			deps.Tokens = m.TokenCounter
			if deps.Tokens == nil {
				tc, err := gemini.NewTokenCounter(gemini.DefaultModel)
				if err != nil {
					return fmt.Errorf("failed to create token counter: %w", err)
				}
				deps.Tokens = tc
			}
		}
	}

	if cmd == "scrape" {
		fetcher := m.Fetcher
		if fetcher == nil {
			fetcher, err = newFetcher(settings)
			if err != nil {
				if settings.Browser {
					fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				}
				return fmt.Errorf("failed to start fetcher: %w", err)
			}
			defer fetcher.Close()
		}

		deps.Scraper = jsslog.NewLoggingScraper(&scrape.Service{
			Fetcher:     jsslog.NewLoggingFetcher(fetcher, deps.Logger),
			Builder:     deps.Builder,
			RateLimiter: scrape.NewDomainLimiter(settings.Rate),
			RetryDelays: settings.RetryDelays,
			OnRetry: func(url string, attempt int, err error) {
				deps.Logger.Warn("retry", "url", url, "attempt", attempt, "err", err)
			},
		}, deps.Logger)

		if out := cli.Scrape.Out; out != "" {
			out = filepath.Clean(out)
			deps.Store = fs.NewFileStore(filepath.Dir(out), filepath.Base(out), deps.Converter)
		}
	}

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newFetcher(s Settings) (jobscrape.Fetcher, error) {
	if s.Browser {
		opts := []rod.Option{rod.WithFetchTimeout(s.Timeout), rod.WithImages(s.Images)}
		if s.UserAgent != "" {
			opts = append(opts, rod.WithUserAgent(s.UserAgent))
		}
		f, err := rod.NewFetcher(opts...)
		if err != nil {
			return nil, err
		}
		return f, nil
	}

	opts := []jshttp.Option{jshttp.WithTimeout(s.Timeout)}
	if s.UserAgent != "" {
		opts = append(opts, jshttp.WithUserAgent(s.UserAgent))
	}
	return jshttp.NewFetcher(opts...), nil
}

// newExtractor returns the main-content extractor used by the fallback
// strategy, or nil for "none".
func newExtractor(name string) (jobscrape.Extractor, error) {
	switch name {
	case ExtractorNone:
		return nil, nil
	case ExtractorReadability:
		return readability.NewExtractor(), nil
	case ExtractorTrafilatura:
		return trafilatura.NewExtractor(), nil
	}
	return nil, jobscrape.Errorf(jobscrape.EINVALID, "unknown extractor %q", name)
}

// Default settings used when neither a flag nor the config file sets a value.
const (
	defaultTimeout     = 15 * time.Second
	defaultConcurrency = 4
	defaultRate        = 1.0
	defaultExtractor   = ExtractorTrafilatura
)
