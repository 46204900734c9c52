package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/jobscrape"
	"github.com/fwojciec/jobscrape/bluemonday"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Settings  Settings
	History   jobscrape.HistoryService
	Sanitizer *bluemonday.Sanitizer
	Converter jobscrape.Converter
	Builder   jobscrape.PayloadBuilder
	Scraper   jobscrape.Scraper
	Tokens    jobscrape.TokenCounter
	Store     jobscrape.PostingStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `env:"JOBSCRAPE_CONFIG" help:"YAML config file"`
	DB      string `name:"db" env:"JOBSCRAPE_DB" help:"SQLite scrape history; scrape records postings here when set"`
	Verbose bool   `short:"v" help:"Log every fetch and extraction to stderr"`

	Scrape   ScrapeCmd   `cmd:"" help:"Fetch job pages and extract postings"`
	Extract  ExtractCmd  `cmd:"" help:"Extract a posting from a saved HTML file"`
	Classify ClassifyCmd `cmd:"" help:"Print the site tag of each URL"`
	Sanitize SanitizeCmd `cmd:"" help:"Sanitize HTML read from stdin"`
	History  HistoryCmd  `cmd:"" help:"List postings recorded in the scrape history"`
}

// Output formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatPrompt   = "prompt"
)

// Main-content extractors for the fallback strategy.
const (
	ExtractorNone        = "none"
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
)

// PipelineFlags are the flags shared by commands that build postings.
type PipelineFlags struct {
	Format    string `short:"f" enum:"json,markdown,prompt" default:"json" help:"Output format (json, markdown, prompt)"`
	Extractor string `short:"e" help:"Fallback content extractor: none, readability, trafilatura (default trafilatura)"`
	Tokens    bool   `help:"Report the prompt token count of each posting on stderr"`
}

// FetchFlags configure fetching. Zero values mean "not set" and fall back
// to the config file, then to defaults.
type FetchFlags struct {
	Browser     bool          `short:"b" help:"Render pages in headless Chrome"`
	Concurrency int           `short:"c" help:"Concurrent scrape limit (default 4)"`
	Timeout     time.Duration `short:"t" help:"Fetch timeout per page (default 15s)"`
	Rate        float64       `help:"Requests per second per domain (default 1)"`
	UserAgent   string        `help:"User-Agent sent with requests"`
	Images      bool          `help:"Load images when rendering with --browser"`
}

// Settings are the effective pipeline settings after merging flags, the
// config file and defaults.
type Settings struct {
	Format      string
	Extractor   string
	Tokens      bool
	Browser     bool
	Concurrency int
	Timeout     time.Duration
	Rate        float64
	UserAgent   string
	Images      bool
	RetryDelays []time.Duration
}

// ResolveSettings merges flags with cfg. Flags win over the file; the
// file wins over defaults.
func ResolveSettings(p PipelineFlags, f FetchFlags, cfg *Config) (Settings, error) {
	s := Settings{
		Format:      firstString(p.Format, FormatJSON),
		Extractor:   firstString(p.Extractor, cfg.Extractor, defaultExtractor),
		Tokens:      p.Tokens,
		Browser:     f.Browser || cfg.Browser,
		Concurrency: firstInt(f.Concurrency, cfg.Concurrency, defaultConcurrency),
		Timeout:     firstDuration(f.Timeout, cfg.Timeout, defaultTimeout),
		Rate:        defaultRate,
		UserAgent:   firstString(f.UserAgent, cfg.UserAgent),
		Images:      f.Images || cfg.Images,
		RetryDelays: cfg.RetryDelays,
	}
	switch {
	case f.Rate != 0:
		s.Rate = f.Rate
	case cfg.Rate != 0:
		s.Rate = cfg.Rate
	}

	switch s.Extractor {
	case ExtractorNone, ExtractorReadability, ExtractorTrafilatura:
	default:
		return Settings{}, jobscrape.Errorf(jobscrape.EINVALID, "unknown extractor %q", s.Extractor)
	}
	if s.Concurrency < 0 {
		return Settings{}, jobscrape.Errorf(jobscrape.EINVALID, "concurrency must be positive")
	}
	if s.Timeout < 0 {
		return Settings{}, jobscrape.Errorf(jobscrape.EINVALID, "timeout must be positive")
	}
	return s, nil
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstInt(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstDuration(values ...time.Duration) time.Duration {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	PipelineFlags `embed:""`
	FetchFlags    `embed:""`

	Out  string   `short:"o" help:"Also write postings as Markdown files to this directory (replaced atomically)"`
	URLs []string `arg:"" name:"url" help:"Job posting URLs"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	PipelineFlags `embed:""`

	URL  string `required:"" help:"URL the HTML was fetched from; selects the site strategy"`
	File string `arg:"" help:"Saved HTML file"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	URLs []string `arg:"" name:"url" help:"URLs to classify"`
}

// SanitizeCmd is the "sanitize" subcommand.
type SanitizeCmd struct {
	Text bool `help:"Print plain text instead of sanitized HTML"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Source string `short:"s" help:"Only show postings from this site tag (e.g. LinkedIn)"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of postings"`
	Full   bool   `help:"Show the description text of each posting"`
}
