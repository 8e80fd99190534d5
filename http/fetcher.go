package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/webclip"
)

// DefaultFetchTimeout bounds a single page download during capture.
const DefaultFetchTimeout = 15 * time.Second

// maxFetchBytes caps the size of a fetched page.
const maxFetchBytes = 12 << 20

// Ensure Fetcher implements webclip.Fetcher at compile time.
var _ webclip.Fetcher = (*Fetcher)(nil)

// Fetcher downloads page HTML over plain HTTP for server-side capture.
// It does not execute JavaScript; pages that require rendering should be
// captured client-side by the extension instead.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithFetchTimeout sets the timeout for page downloads.
// Defaults to DefaultFetchTimeout if not specified.
func WithFetchTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP page fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}
	f.client = &http.Client{Timeout: f.timeout}
	return f
}

// Fetch downloads the page at url and returns its HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "webclip/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. A no-op for the plain HTTP fetcher.
func (f *Fetcher) Close() error {
	return nil
}
