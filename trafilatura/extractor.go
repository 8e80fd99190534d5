// Package trafilatura provides the primary content extractor for captured
// pages, wrapping go-trafilatura's boilerplate removal.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"github.com/fwojciec/webclip"
)

// Ensure Extractor implements webclip.Extractor at compile time.
var _ webclip.Extractor = (*Extractor)(nil)

// Extractor extracts the main content of a captured page with
// go-trafilatura. Pages it cannot process fall through to the next
// extractor in the capture chain.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*webclip.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, webclip.Errorf(webclip.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &webclip.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
