// Package pipeline provides structuring orchestration. It coordinates the
// URL extractor, the enrichment strategies and the heuristic fallback, and
// merges their output into exactly one document per raw capture.
package pipeline

import (
	"context"
	"time"

	"github.com/fwojciec/webclip"
)

// MinTextLen is the minimum raw capture length accepted for structuring.
// Shorter input is rejected before any enrichment strategy runs.
const MinTextLen = 20

// Structurer runs the enrichment fallback chain for raw captures.
//
// Enrichers are tried in order; the first success supplies every non-merge
// field of the document. When all of them fail (or none are configured),
// the heuristic structurer supplies the base instead, so valid input always
// yields a document.
type Structurer struct {
	Enrichers []webclip.Enricher

	// Now returns the ingestion timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Structure produces exactly one document for the raw text. Enricher
// failures escalate down the chain and never surface as errors; the only
// error is invalid input.
func (s *Structurer) Structure(ctx context.Context, text string) (*webclip.Document, error) {
	if len(text) < MinTextLen {
		return nil, webclip.Errorf(webclip.EINVALID, "insufficient text data")
	}

	capturedAt := s.now()
	findings := webclip.FindURLs(text)
	base := s.enrich(ctx, text)

	doc := &webclip.Document{
		Title:          base.Title,
		Summary:        base.Summary,
		Keywords:       base.Keywords,
		Emotions:       base.Emotions,
		SentimentScore: base.SentimentScore,
		SourceURL:      base.SourceURL,
		MediaURLs:      base.MediaURLs,
		CapturedAt:     base.Timestamp,
		Embedding:      base.Embedding,
		NLPProcessed:   base.NLPProcessed,
		RawExcerpt:     base.RawExcerpt,
	}

	// Merge step: the only place extractor findings and enrichment output
	// combine. Media lists union rather than overwrite; the enricher's
	// source URL takes precedence when set.
	doc.MediaURLs = mergeURLs(base.MediaURLs, findings.MediaURLs)
	if doc.SourceURL == "" {
		doc.SourceURL = findings.SourceURL
	}
	if doc.CapturedAt.IsZero() {
		doc.CapturedAt = capturedAt
	}
	if doc.Title == "" {
		doc.Title = webclip.ExtractTitle(text)
	}
	doc.Title = webclip.Truncate(doc.Title, webclip.MaxTitleLen)
	if doc.Keywords == nil {
		doc.Keywords = []string{}
	}
	if doc.Emotions == nil {
		doc.Emotions = []string{}
	}

	return doc, nil
}

// enrich returns the first successful enrichment, falling back to the
// heuristic structurer, which cannot fail.
func (s *Structurer) enrich(ctx context.Context, text string) *webclip.Enrichment {
	for _, e := range s.Enrichers {
		enr, err := e.Enrich(ctx, text)
		if err != nil || enr == nil {
			continue
		}
		return enr
	}
	return webclip.HeuristicEnrichment(text)
}

func (s *Structurer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// mergeURLs returns the deduplicated union of the given URL lists,
// preserving first-occurrence order.
func mergeURLs(lists ...[]string) []string {
	seen := make(map[string]struct{})
	merged := []string{}
	for _, list := range lists {
		for _, u := range list {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			merged = append(merged, u)
		}
	}
	return merged
}
