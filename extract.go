package webclip

import (
	"regexp"
	"strings"
)

// Field length bounds applied during structuring.
const (
	// MaxTitleLen bounds document titles.
	MaxTitleLen = 100

	// SummaryExcerptLen is the length of raw-text-derived summaries.
	SummaryExcerptLen = 300

	// RawExcerptLen is the length of the raw excerpt retained on the
	// heuristic fallback path.
	RawExcerptLen = 1000

	// StoredExcerptLen is the length of the raw excerpt retained by the
	// storage layer regardless of path.
	StoredExcerptLen = 5000
)

var (
	// urlPattern matches absolute http(s) URLs in free text. A URL runs
	// until whitespace, an angle bracket, a quote, or a closing paren.
	urlPattern = regexp.MustCompile(`(?i)https?://[^\s<>"')]+`)

	// mediaPattern matches URLs whose path ends in a known image or video
	// container extension, with an optional query string.
	mediaPattern = regexp.MustCompile(`(?i)\.(png|jpe?g|gif|svg|webp|mp4|webm|mov|avi|mkv|m4v)(\?.*)?$`)
)

// URLFindings holds the result of scanning raw text for URLs.
type URLFindings struct {
	// URLs lists every absolute URL in order of appearance.
	URLs []string

	// MediaURLs is the subset of URLs matching the media extension
	// allowlist, in order of appearance.
	MediaURLs []string

	// SourceURL is the first non-media URL, or empty if none exists.
	SourceURL string
}

// FindURLs scans text for absolute http(s) URLs and classifies them.
// It has no failure mode: text without URLs yields empty findings.
func FindURLs(text string) URLFindings {
	var f URLFindings
	for _, u := range urlPattern.FindAllString(text, -1) {
		f.URLs = append(f.URLs, u)
		if IsMediaURL(u) {
			f.MediaURLs = append(f.MediaURLs, u)
		} else if f.SourceURL == "" {
			f.SourceURL = u
		}
	}
	return f
}

// IsMediaURL reports whether the URL ends in a known media file extension.
func IsMediaURL(url string) bool {
	return mediaPattern.MatchString(url)
}

// ExtractTitle derives a best-effort title from raw text: the content of a
// line labeled "Title:", else the first non-empty line, else "Untitled".
// The result is bounded by MaxTitleLen and never empty.
func ExtractTitle(text string) string {
	var first string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(trimmed, "Title:"); ok {
			if t := strings.TrimSpace(rest); t != "" {
				return Truncate(t, MaxTitleLen)
			}
			continue
		}
		if first == "" {
			first = trimmed
		}
	}
	if first == "" {
		return "Untitled"
	}
	return Truncate(first, MaxTitleLen)
}

// SummaryExcerpt derives a summary from raw text alone: the leading
// SummaryExcerptLen runes, trimmed, with a continuation marker.
func SummaryExcerpt(text string) string {
	return strings.TrimSpace(Truncate(text, SummaryExcerptLen)) + "..."
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
