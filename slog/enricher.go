// Package slog provides logging decorators for webclip services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webclip"
)

// Ensure LoggingEnricher implements webclip.Enricher.
var _ webclip.Enricher = (*LoggingEnricher)(nil)

// LoggingEnricher wraps an Enricher and logs every attempt with the stage
// name, duration and outcome. Adapter failures escalate silently inside the
// pipeline, so this is where degraded enrichment quality becomes visible.
type LoggingEnricher struct {
	next   webclip.Enricher
	logger *slog.Logger
}

// NewLoggingEnricher creates a new LoggingEnricher.
func NewLoggingEnricher(next webclip.Enricher, logger *slog.Logger) *LoggingEnricher {
	return &LoggingEnricher{next: next, logger: logger}
}

// Name delegates to the wrapped enricher.
func (e *LoggingEnricher) Name() string {
	return e.next.Name()
}

// Enrich delegates to the wrapped enricher and logs the attempt.
func (e *LoggingEnricher) Enrich(ctx context.Context, text string) (enr *webclip.Enrichment, err error) {
	defer func(begin time.Time) {
		e.logger.Info("enrichment stage",
			"stage", e.next.Name(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Enrich(ctx, text)
}
