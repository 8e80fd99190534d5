// Package http provides the HTTP surfaces of webclip: the ingestion server,
// the client for the external NLP analysis service, and the page fetcher
// used for server-side capture.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/webclip"
)

// DefaultAnalyzeTimeout bounds a single call to the analysis service.
// The service runs transformer models and can be slow on first use.
const DefaultAnalyzeTimeout = 30 * time.Second

// Ensure Analyzer implements webclip.Enricher at compile time.
var _ webclip.Enricher = (*Analyzer)(nil)

// Analyzer enriches raw captures through an external NLP analysis service.
// Any transport error, non-2xx status, or malformed payload is reported as
// a uniform failure so callers never see a half-populated result.
type Analyzer struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithAnalyzeTimeout sets the per-call timeout.
// Defaults to DefaultAnalyzeTimeout if not specified.
func WithAnalyzeTimeout(d time.Duration) AnalyzerOption {
	return func(a *Analyzer) {
		a.timeout = d
	}
}

// NewAnalyzer creates an Analyzer for the analysis service at baseURL.
func NewAnalyzer(baseURL string, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: DefaultAnalyzeTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.client = &http.Client{Timeout: a.timeout}
	return a
}

// Name identifies the enrichment stage in logs.
func (a *Analyzer) Name() string { return "nlp" }

// analyzeResponse mirrors the analysis service's /analyze payload.
// All fields are optional; defaults are applied during mapping.
type analyzeResponse struct {
	Summary   string   `json:"summary"`
	Keywords  []string `json:"keywords"`
	Sentiment *struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	} `json:"sentiment"`
	Embedding []float64 `json:"embedding"`
}

// Enrich sends the raw text to the analysis service and maps the response
// into a partial document with nlp_processed provenance.
func (a *Analyzer) Enrich(ctx context.Context, text string) (*webclip.Enrichment, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("encode analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analyze request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, webclip.Errorf(webclip.EUNAVAILABLE, "analysis service returned %d", resp.StatusCode)
	}

	var payload analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode analyze response: %w", err)
	}

	summary := payload.Summary
	if summary == "" {
		summary = webclip.SummaryExcerpt(text)
	}
	keywords := payload.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	label := "NEUTRAL"
	var score float64
	if payload.Sentiment != nil {
		if payload.Sentiment.Label != "" {
			label = payload.Sentiment.Label
		}
		score = payload.Sentiment.Score
	}

	return &webclip.Enrichment{
		Summary:        summary,
		Keywords:       keywords,
		Emotions:       []string{label},
		SentimentScore: &score,
		Embedding:      payload.Embedding,
		NLPProcessed:   true,
	}, nil
}
