package main

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/gemini"
	"github.com/fwojciec/webclip/goquery"
	webcliphttp "github.com/fwojciec/webclip/http"
	"github.com/fwojciec/webclip/htmltomarkdown"
	"github.com/fwojciec/webclip/pipeline"
	webclipslog "github.com/fwojciec/webclip/slog"
	"github.com/fwojciec/webclip/trafilatura"
)

// Run executes the serve command. Enrichment stages are wired according to
// configuration; the generative model probe completes before the server
// starts accepting requests.
func (c *ServeCmd) Run(deps *Dependencies) error {
	logger := deps.Logger

	var enrichers []webclip.Enricher

	if c.NLPURL != "" {
		analyzer := webcliphttp.NewAnalyzer(c.NLPURL)
		enrichers = append(enrichers, webclipslog.NewLoggingEnricher(analyzer, logger))
	} else {
		logger.Info("NLP analysis service not configured; stage disabled")
	}

	if !c.NoAI {
		if enricher := c.generativeEnricher(deps); enricher != nil {
			enrichers = append(enrichers, webclipslog.NewLoggingEnricher(enricher, logger))
		}
	} else {
		logger.Info("generative enrichment disabled by configuration")
	}

	fetcher := webcliphttp.NewFetcher()
	defer fetcher.Close()

	srv := webcliphttp.NewServer()
	srv.Addr = c.Addr
	srv.Structurer = &pipeline.Structurer{Enrichers: enrichers}
	srv.Capturer = &pipeline.Capturer{
		Fetcher:    fetcher,
		Extractors: []webclip.Extractor{trafilatura.NewExtractor(), goquery.NewExtractor()},
		Converter:  htmltomarkdown.NewConverter(),
	}
	srv.Documents = webclipslog.NewLoggingDocumentService(deps.Documents, logger)
	srv.Limiter = rate.NewLimiter(rate.Limit(c.RPS), c.Burst)
	srv.Logger = logger

	if err := srv.Open(); err != nil {
		return fmt.Errorf("failed to start server on %q: %w", c.Addr, err)
	}
	logger.Info("webclip server listening", "addr", c.Addr, "stages", len(enrichers))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		return srv.Close()
	})
	return g.Wait()
}

// generativeEnricher probes for a working Gemini model and returns the
// enricher, or nil when generative enrichment cannot be enabled. The probe
// result holds for the process lifetime.
func (c *ServeCmd) generativeEnricher(deps *Dependencies) webclip.Enricher {
	logger := deps.Logger

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY not set; generative enrichment disabled")
		return nil
	}

	client, err := genai.NewClient(deps.Ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Warn("gemini client initialization failed; generative enrichment disabled", "err", err)
		return nil
	}

	model, err := gemini.SelectModel(deps.Ctx, client, c.Model, logger)
	if err != nil {
		logger.Warn("no working generative model; generative enrichment disabled", "err", err)
		return nil
	}

	return gemini.NewEnricher(client, model)
}
