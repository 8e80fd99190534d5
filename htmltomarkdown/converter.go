// Package htmltomarkdown converts extracted page content to Markdown so
// captured pages enter the structuring pipeline as plain text.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/fwojciec/webclip"
)

// Ensure Converter implements webclip.Converter at compile time.
var _ webclip.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown. Captured
// pages link images and videos relative to themselves; the conversion
// resolves those against the page URL so media extraction downstream sees
// absolute URLs.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown, resolving relative links
// against pageURL.
func (c *Converter) Convert(html, pageURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", webclip.Errorf(webclip.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html, converter.WithDomain(pageURL))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}
