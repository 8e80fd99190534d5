package webclip

import (
	"context"
	"time"
)

// Enrichment is the partial document produced by a single enrichment
// strategy. Unset fields (zero values) are filled in by the structuring
// pipeline's merge step from the URL extractor's findings and the
// ingestion time.
type Enrichment struct {
	Title          string
	Summary        string
	Keywords       []string
	Emotions       []string
	SentimentScore *float64
	Timestamp      time.Time
	SourceURL      string
	MediaURLs      []string
	Embedding      []float64
	NLPProcessed   bool
	RawExcerpt     string
}

// Enricher produces an enrichment from raw captured text.
//
// A returned error means the strategy failed as a whole; callers escalate
// to the next strategy and must never use a partial result. Implementations
// make at most one network round-trip per call and honor context
// cancellation.
type Enricher interface {
	// Name identifies the enrichment stage in logs.
	Name() string

	// Enrich analyzes the raw text and returns a partial document.
	Enrich(ctx context.Context, text string) (*Enrichment, error)
}
