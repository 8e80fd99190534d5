package webclip_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/webclip"
)

func TestFindURLs(t *testing.T) {
	t.Parallel()

	t.Run("returns empty findings for text without URLs", func(t *testing.T) {
		t.Parallel()

		f := webclip.FindURLs("just some plain text, nothing else")

		assert.Empty(t, f.URLs)
		assert.Empty(t, f.MediaURLs)
		assert.Equal(t, "", f.SourceURL)
	})

	t.Run("classifies media and non-media URLs", func(t *testing.T) {
		t.Parallel()

		text := "see https://example.com/article and https://cdn.example.com/pic.png plus http://example.org/clip.mp4"

		f := webclip.FindURLs(text)

		assert.Equal(t, []string{
			"https://example.com/article",
			"https://cdn.example.com/pic.png",
			"http://example.org/clip.mp4",
		}, f.URLs)
		assert.Equal(t, []string{
			"https://cdn.example.com/pic.png",
			"http://example.org/clip.mp4",
		}, f.MediaURLs)
		assert.Equal(t, "https://example.com/article", f.SourceURL)
	})

	t.Run("source URL is the first non-media URL", func(t *testing.T) {
		t.Parallel()

		text := "https://a.com/x.jpg then https://b.com/post then https://c.com/other"

		f := webclip.FindURLs(text)

		assert.Equal(t, "https://b.com/post", f.SourceURL)
	})

	t.Run("source URL empty when all URLs are media", func(t *testing.T) {
		t.Parallel()

		f := webclip.FindURLs("https://a.com/x.jpg https://b.com/y.webm")

		assert.Equal(t, "", f.SourceURL)
		assert.Len(t, f.MediaURLs, 2)
	})

	t.Run("URLs terminate at quotes and angle brackets", func(t *testing.T) {
		t.Parallel()

		f := webclip.FindURLs(`<https://a.com/page> and "https://b.com/other"`)

		assert.Equal(t, []string{"https://a.com/page", "https://b.com/other"}, f.URLs)
	})

	t.Run("scheme matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		f := webclip.FindURLs("HTTPS://Example.com/page")

		assert.Len(t, f.URLs, 1)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		text := "https://a.com/p https://b.com/i.png https://a.com/p"

		first := webclip.FindURLs(text)
		second := webclip.FindURLs(text)

		assert.Equal(t, first, second)
	})
}

func TestIsMediaURL(t *testing.T) {
	t.Parallel()

	t.Run("matches media extensions case-insensitively", func(t *testing.T) {
		t.Parallel()

		assert.True(t, webclip.IsMediaURL("https://a.com/image.PNG"))
		assert.True(t, webclip.IsMediaURL("https://a.com/vid.webm"))
		assert.True(t, webclip.IsMediaURL("https://a.com/pic.jpeg"))
	})

	t.Run("matches media URLs with query strings", func(t *testing.T) {
		t.Parallel()

		assert.True(t, webclip.IsMediaURL("https://a.com/image.png?w=800&h=600"))
	})

	t.Run("rejects non-media URLs", func(t *testing.T) {
		t.Parallel()

		assert.False(t, webclip.IsMediaURL("https://a.com/page"))
		assert.False(t, webclip.IsMediaURL("https://a.com/doc.pdf"))
		assert.False(t, webclip.IsMediaURL("https://a.com/image.png/related"))
	})
}

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	t.Run("prefers a Title: labeled line", func(t *testing.T) {
		t.Parallel()

		text := "Some preamble\nTitle: The Real Title\nBody follows here."

		assert.Equal(t, "The Real Title", webclip.ExtractTitle(text))
	})

	t.Run("falls back to first non-empty line", func(t *testing.T) {
		t.Parallel()

		text := "\n\n  First visible line  \nsecond line"

		assert.Equal(t, "First visible line", webclip.ExtractTitle(text))
	})

	t.Run("returns Untitled for blank text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Untitled", webclip.ExtractTitle("   \n\n  "))
	})

	t.Run("skips a Title: label with no content", func(t *testing.T) {
		t.Parallel()

		text := "Title:\nActual heading"

		assert.Equal(t, "Actual heading", webclip.ExtractTitle(text))
	})

	t.Run("truncates long titles", func(t *testing.T) {
		t.Parallel()

		title := webclip.ExtractTitle("Title: " + strings.Repeat("x", 500))

		assert.Len(t, title, webclip.MaxTitleLen)
	})
}

func TestSummaryExcerpt(t *testing.T) {
	t.Parallel()

	t.Run("appends continuation marker", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "short text...", webclip.SummaryExcerpt("short text"))
	})

	t.Run("truncates and trims long text", func(t *testing.T) {
		t.Parallel()

		summary := webclip.SummaryExcerpt(strings.Repeat("word ", 200))

		assert.LessOrEqual(t, len(summary), webclip.SummaryExcerptLen+len("..."))
		assert.True(t, strings.HasSuffix(summary, "..."))
		assert.False(t, strings.HasSuffix(strings.TrimSuffix(summary, "..."), " "))
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("returns short strings unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "abc", webclip.Truncate("abc", 10))
	})

	t.Run("truncates on rune boundaries", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "héll", webclip.Truncate("héllo", 4))
	})

	t.Run("returns empty string for non-positive limits", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", webclip.Truncate("abc", 0))
	})
}
