package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobscrape"
)

// Ensure LoggingScraper implements jobscrape.Scraper.
var _ jobscrape.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
type LoggingScraper struct {
	next   jobscrape.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next jobscrape.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper. Failures are logged at error
// level with their code.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (p *jobscrape.JobPosting, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Error("scrape",
				"url", url,
				"code", jobscrape.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.Info("scrape",
			"url", url,
			"source", p.Source,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}
