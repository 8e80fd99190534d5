// Package goquery provides a selector-based fallback content extractor used
// when trafilatura cannot process a captured page.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/webclip"
)

// Ensure Extractor implements webclip.Extractor at compile time.
var _ webclip.Extractor = (*Extractor)(nil)

// Extractor extracts page content by trying common content selectors in
// order. It is deliberately simple: the goal is a usable text body for the
// structuring pipeline, not faithful readability extraction.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// contentSelectors are tried in order; the first non-empty match wins.
var contentSelectors = []string{
	"article",
	"main",
	"[role=main]",
	"#content",
	".content",
	"body",
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*webclip.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, webclip.Errorf(webclip.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, webclip.Errorf(webclip.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(og) != "" {
		title = strings.TrimSpace(og)
	}

	for _, sel := range contentSelectors {
		selection := doc.Find(sel).First()
		if selection.Length() == 0 {
			continue
		}

		// Drop page chrome before rendering.
		selection.Find("script, style, noscript, nav, header, footer, aside").Remove()

		if strings.TrimSpace(selection.Text()) == "" {
			continue
		}

		contentHTML, err := goquery.OuterHtml(selection)
		if err != nil {
			return nil, err
		}

		return &webclip.ExtractResult{
			Title:       title,
			ContentHTML: contentHTML,
		}, nil
	}

	return nil, webclip.Errorf(webclip.ENOTFOUND, "no readable content found")
}
