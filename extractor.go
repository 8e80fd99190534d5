package webclip

// ExtractResult holds the readable content extracted from a captured page.
type ExtractResult struct {
	// Title is the page title taken from metadata.
	Title string

	// ContentHTML is the main content with boilerplate (navigation,
	// footers, sidebars, ads) removed.
	ContentHTML string
}

// Extractor extracts the main content from an HTML page. Implementations
// form a fallback chain during capture: when one cannot find readable
// content, the next is tried.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
