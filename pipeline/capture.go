package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/webclip"
)

// Capturer performs server-side capture of a page by URL: fetch the HTML,
// extract the readable content, convert it to Markdown, and compose the
// raw text that feeds the structuring pipeline.
type Capturer struct {
	Fetcher    webclip.Fetcher
	Extractors []webclip.Extractor // tried in order, first readable result wins
	Converter  webclip.Converter
}

// CaptureText fetches the page and returns raw capture text in the same
// shape a browser-extension capture would produce: a Title: line, the page
// URL, and the content as Markdown.
func (c *Capturer) CaptureText(ctx context.Context, pageURL string) (string, error) {
	if err := validateCaptureURL(pageURL); err != nil {
		return "", err
	}

	html, err := c.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	result := c.extract(html)
	if result == nil {
		return "", webclip.Errorf(webclip.EUNAVAILABLE, "no readable content found at %s", pageURL)
	}

	markdown, err := c.Converter.Convert(result.ContentHTML, pageURL)
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", pageURL, err)
	}

	var sb strings.Builder
	if result.Title != "" {
		fmt.Fprintf(&sb, "Title: %s\n", result.Title)
	}
	fmt.Fprintf(&sb, "URL: %s\n\n", pageURL)
	sb.WriteString(markdown)
	return sb.String(), nil
}

// extract runs the extractor chain and returns the first result with
// non-blank content, or nil.
func (c *Capturer) extract(html string) *webclip.ExtractResult {
	for _, e := range c.Extractors {
		result, err := e.Extract(html)
		if err != nil || result == nil {
			continue
		}
		if strings.TrimSpace(result.ContentHTML) == "" {
			continue
		}
		return result
	}
	return nil
}

func validateCaptureURL(pageURL string) error {
	if pageURL == "" {
		return webclip.Errorf(webclip.EINVALID, "capture URL required")
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return webclip.Errorf(webclip.EINVALID, "invalid capture URL: %v", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return webclip.Errorf(webclip.EINVALID, "capture URL must be absolute http(s): %q", pageURL)
	}
	return nil
}
