package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/goquery"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prefers the article element", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Page Title</title></head>
			<body>
				<nav>menu</nav>
				<article><p>The article body.</p></article>
				<footer>footer</footer>
			</body></html>`

		result, err := goquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Page Title", result.Title)
		assert.Contains(t, result.ContentHTML, "The article body.")
		assert.NotContains(t, result.ContentHTML, "menu")
	})

	t.Run("og:title overrides the title element", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
				<title>Boring Title</title>
				<meta property="og:title" content="Social Title">
			</head>
			<body><article><p>body</p></article></body></html>`

		result, err := goquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Social Title", result.Title)
	})

	t.Run("falls back to the body", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Just a paragraph.</p></body></html>`

		result, err := goquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Just a paragraph.")
	})

	t.Run("strips page chrome", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
				<script>var x = 1;</script>
				<header>site header</header>
				<p>Real content.</p>
				<aside>related links</aside>
			</body></html>`

		result, err := goquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Real content.")
		assert.NotContains(t, result.ContentHTML, "var x = 1;")
		assert.NotContains(t, result.ContentHTML, "site header")
		assert.NotContains(t, result.ContentHTML, "related links")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor().Extract("   ")
		assert.Equal(t, webclip.EINVALID, webclip.ErrorCode(err))
	})

	t.Run("reports unreadable pages", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><script>only()</script></body></html>`

		_, err := goquery.NewExtractor().Extract(html)
		assert.Equal(t, webclip.ENOTFOUND, webclip.ErrorCode(err))
	})
}
