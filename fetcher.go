package webclip

import "context"

// Fetcher retrieves raw HTML for a page URL during server-side capture.
type Fetcher interface {
	// Fetch downloads the page and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
