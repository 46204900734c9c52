package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobscrape"
)

// Ensure LoggingPostingWriter implements jobscrape.PostingWriter.
var _ jobscrape.PostingWriter = (*LoggingPostingWriter)(nil)

// LoggingPostingWriter wraps a PostingWriter with debug logging.
type LoggingPostingWriter struct {
	next   jobscrape.PostingWriter
	logger *slog.Logger
}

// NewLoggingPostingWriter creates a new LoggingPostingWriter.
func NewLoggingPostingWriter(next jobscrape.PostingWriter, logger *slog.Logger) *LoggingPostingWriter {
	return &LoggingPostingWriter{next: next, logger: logger}
}

// WritePosting delegates to the wrapped writer and logs the operation.
func (w *LoggingPostingWriter) WritePosting(ctx context.Context, p *jobscrape.JobPosting) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write",
			"url", p.URL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WritePosting(ctx, p)
}
