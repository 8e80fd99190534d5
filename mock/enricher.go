package mock

import (
	"context"

	"github.com/fwojciec/webclip"
)

var _ webclip.Enricher = (*Enricher)(nil)

// Enricher is a mock implementation of webclip.Enricher.
type Enricher struct {
	StageName string
	EnrichFn  func(ctx context.Context, text string) (*webclip.Enrichment, error)
}

func (e *Enricher) Name() string {
	if e.StageName == "" {
		return "mock"
	}
	return e.StageName
}

func (e *Enricher) Enrich(ctx context.Context, text string) (*webclip.Enrichment, error) {
	return e.EnrichFn(ctx, text)
}
