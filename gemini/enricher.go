// Package gemini implements generative enrichment backed by Google's Gemini
// models via google.golang.org/genai.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/fwojciec/webclip"
)

// DefaultGenerateTimeout bounds a single extraction call. A hung model call
// must never pin an ingestion request goroutine.
const DefaultGenerateTimeout = 60 * time.Second

// Ensure Enricher implements webclip.Enricher at compile time.
var _ webclip.Enricher = (*Enricher)(nil)

// Enricher structures raw captures by asking a Gemini model for a JSON
// extraction. The model is selected once at startup (see SelectModel);
// per-request calls never re-probe.
type Enricher struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	now     func() time.Time
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithGenerateTimeout sets the per-call timeout.
// Defaults to DefaultGenerateTimeout if not specified.
func WithGenerateTimeout(d time.Duration) Option {
	return func(e *Enricher) {
		e.timeout = d
	}
}

// NewEnricher creates an Enricher using the given pre-selected model.
func NewEnricher(client *genai.Client, model string, opts ...Option) *Enricher {
	e := &Enricher{
		client:  client,
		model:   model,
		timeout: DefaultGenerateTimeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name identifies the enrichment stage in logs.
func (e *Enricher) Name() string { return "gemini" }

// Enrich asks the model for a structured JSON extraction of the raw text.
func (e *Enricher) Enrich(ctx context.Context, text string) (*webclip.Enrichment, error) {
	if e.model == "" {
		return nil, webclip.Errorf(webclip.EUNAVAILABLE, "no generative model selected")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := BuildPrompt(text, e.now())
	result, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, webclip.Errorf(webclip.EINTERNAL, "gemini returned nil result")
	}

	return ParsePayload(result.Text())
}

// BuildConfig returns the GenerateContentConfig for extraction calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a structured JSON extraction engine. Analyze the raw text and output ONLY a valid JSON object. Return ONLY JSON. No extra commentary.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildPrompt builds the extraction prompt for the raw text. The current
// time is embedded so the model has a default for the timestamp key.
func BuildPrompt(text string, now time.Time) string {
	var sb strings.Builder
	sb.WriteString("Output keys:\n")
	sb.WriteString(`- "title": short title` + "\n")
	sb.WriteString(`- "summary": 2-3 sentence summary` + "\n")
	sb.WriteString(`- "keywords": array of 3-6 keywords` + "\n")
	sb.WriteString(`- "emotions": array of 1-3 tones/emotions` + "\n")
	fmt.Fprintf(&sb, `- "timestamp": ISO timestamp from text if found, otherwise %q`+"\n", now.Format(time.RFC3339))
	sb.WriteString(`- "source_url": main reference URL or null` + "\n")
	sb.WriteString(`- "media_urls": array of media URLs (may be empty)` + "\n")
	sb.WriteString("\nText:\n")
	sb.WriteString(text)
	return sb.String()
}

var (
	fenceOpen  = regexp.MustCompile("(?i)^```(?:json)?")
	fenceClose = regexp.MustCompile("```$")
)

// StripFences removes a Markdown code-fence wrapper from model output.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = fenceOpen.ReplaceAllString(s, "")
	s = fenceClose.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ParsePayload parses the model's (possibly fenced) JSON output into an
// enrichment. Unparsable output is an adapter failure.
//
// source_url is honored only when it is a non-empty JSON string; any other
// shape is treated as absent so the pipeline substitutes the extractor's
// candidate.
func ParsePayload(raw string) (*webclip.Enrichment, error) {
	var payload struct {
		Title     string   `json:"title"`
		Summary   string   `json:"summary"`
		Keywords  []string `json:"keywords"`
		Emotions  []string `json:"emotions"`
		Timestamp string   `json:"timestamp"`
		SourceURL any      `json:"source_url"`
		MediaURLs []string `json:"media_urls"`
	}
	if err := json.Unmarshal([]byte(StripFences(raw)), &payload); err != nil {
		return nil, webclip.Errorf(webclip.EINVALID, "unparsable model output: %v", err)
	}

	enr := &webclip.Enrichment{
		Title:     payload.Title,
		Summary:   payload.Summary,
		Keywords:  payload.Keywords,
		Emotions:  payload.Emotions,
		MediaURLs: payload.MediaURLs,
	}
	if s, ok := payload.SourceURL.(string); ok && s != "" {
		enr.SourceURL = s
	}
	if payload.Timestamp != "" {
		if ts, err := time.Parse(time.RFC3339, payload.Timestamp); err == nil {
			enr.Timestamp = ts
		}
	}
	return enr, nil
}
