package webclip

// Converter converts extracted HTML content to Markdown so captured pages
// enter the structuring pipeline as plain text. Relative links are resolved
// against pageURL so the URL scan downstream sees absolute media URLs.
type Converter interface {
	Convert(html, pageURL string) (markdown string, err error)
}
