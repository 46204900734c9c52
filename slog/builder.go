package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jobscrape"
)

// Ensure LoggingPayloadBuilder implements jobscrape.PayloadBuilder.
var _ jobscrape.PayloadBuilder = (*LoggingPayloadBuilder)(nil)

// LoggingPayloadBuilder wraps a PayloadBuilder and logs which fields were
// found on each page.
type LoggingPayloadBuilder struct {
	next   jobscrape.PayloadBuilder
	logger *slog.Logger
}

// NewLoggingPayloadBuilder creates a new LoggingPayloadBuilder.
func NewLoggingPayloadBuilder(next jobscrape.PayloadBuilder, logger *slog.Logger) *LoggingPayloadBuilder {
	return &LoggingPayloadBuilder{next: next, logger: logger}
}

// BuildPayload delegates to the wrapped builder and logs the extraction.
func (b *LoggingPayloadBuilder) BuildPayload(url string, html string) (p *jobscrape.JobPosting, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url}
		if p != nil {
			attrs = append(attrs,
				"source", p.Source,
				"title", p.JobTitle != nil,
				"company", p.CompanyName != nil,
				"location", p.Location != nil,
				"description", len(p.JobDescriptionHTML),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		b.logger.Info("extract", attrs...)
	}(time.Now())
	return b.next.BuildPayload(url, html)
}
