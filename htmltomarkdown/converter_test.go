package htmltomarkdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/htmltomarkdown"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and links", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(
			`<h1>Heading</h1><p>See <a href="http://example.com">the site</a>.</p>`,
			"http://example.com/page")
		require.NoError(t, err)
		assert.Contains(t, md, "# Heading")
		assert.Contains(t, md, "[the site](http://example.com)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(
			`<ul><li>first</li><li>second</li></ul>`,
			"http://example.com/page")
		require.NoError(t, err)
		assert.Contains(t, md, "- first")
		assert.Contains(t, md, "- second")
	})

	t.Run("resolves relative media links against the page URL", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(
			`<p>Shot: <img src="/img/shot.png" alt="shot"></p>`,
			"https://example.com/post")
		require.NoError(t, err)
		assert.Contains(t, md, "https://example.com/img/shot.png")
		assert.True(t, webclip.IsMediaURL("https://example.com/img/shot.png"))
	})

	t.Run("leaves absolute links untouched", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(
			`<img src="https://cdn.example.com/a.png" alt="a">`,
			"https://example.com/post")
		require.NoError(t, err)
		assert.Contains(t, md, "https://cdn.example.com/a.png")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  ", "http://example.com")
		assert.Equal(t, webclip.EINVALID, webclip.ErrorCode(err))
	})
}
