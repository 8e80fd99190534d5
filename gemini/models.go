package gemini

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/fwojciec/webclip"
)

// fallbackModels are probed in order when the preferred model is unset or
// fails. Ordered by preference: fast models first.
var fallbackModels = []string{
	"gemini-2.5-flash",
	"gemini-2.5-pro",
	"gemini-2.0-flash",
	"gemini-flash-latest",
}

// probePrompt is the trivial prompt used to verify a model responds.
const probePrompt = "Hello"

// probeTimeout bounds a single model probe so startup cannot hang on one
// unresponsive candidate.
const probeTimeout = 15 * time.Second

// CandidateModels returns the probe order: the preferred model, if any,
// followed by the fixed fallback list.
func CandidateModels(preferred string) []string {
	models := make([]string, 0, len(fallbackModels)+1)
	if p := strings.TrimSpace(preferred); p != "" {
		models = append(models, p)
	}
	return append(models, fallbackModels...)
}

// SelectModel probes candidate models with a trivial prompt and returns the
// first that responds. It is called once at startup, before requests are
// accepted; the result is process-wide state that is never re-derived per
// request. Returns EUNAVAILABLE when no candidate works, in which case
// generative enrichment stays disabled for the process lifetime.
func SelectModel(ctx context.Context, client *genai.Client, preferred string, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	for _, model := range CandidateModels(preferred) {
		result, err := probeModel(ctx, client, model)
		if err != nil || result == nil {
			logger.Warn("generative model probe failed", "model", model, "err", err)
			continue
		}
		logger.Info("generative model selected", "model", model)
		return model, nil
	}

	return "", webclip.Errorf(webclip.EUNAVAILABLE, "no working generative model found")
}

// probeModel sends the trivial prompt to one candidate under the probe
// timeout.
func probeModel(ctx context.Context, client *genai.Client, model string) (*genai.GenerateContentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	return client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: probePrompt}},
		}},
		nil,
	)
}
