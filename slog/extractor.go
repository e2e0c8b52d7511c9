package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/distropop"
)

// Ensure LoggingExtractor implements distropop.Extractor.
var _ distropop.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   distropop.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next distropop.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs whether a record was produced.
func (e *LoggingExtractor) Extract(html string) (rec *distropop.PopularityRecord, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(html),
			"duration", time.Since(begin),
			"absent", rec == nil,
		}
		if err != nil {
			attrs = append(attrs, "code", distropop.ErrorCode(err), "err", err)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
