package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/mock"
	"github.com/fwojciec/webclip/pipeline"
)

func TestCapturer_CaptureText(t *testing.T) {
	t.Parallel()

	t.Run("composes title, url and markdown", func(t *testing.T) {
		t.Parallel()

		c := &pipeline.Capturer{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, pageURL string) (string, error) {
					assert.Equal(t, "https://example.com/post", pageURL)
					return "<html><body><p>hi</p></body></html>", nil
				},
			},
			Extractors: []webclip.Extractor{
				&mock.Extractor{
					ExtractFn: func(string) (*webclip.ExtractResult, error) {
						return &webclip.ExtractResult{Title: "A Post", ContentHTML: "<p>hi</p>"}, nil
					},
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html, pageURL string) (string, error) {
					assert.Equal(t, "<p>hi</p>", html)
					assert.Equal(t, "https://example.com/post", pageURL)
					return "hi", nil
				},
			},
		}

		text, err := c.CaptureText(context.Background(), "https://example.com/post")
		require.NoError(t, err)
		assert.Equal(t, "Title: A Post\nURL: https://example.com/post\n\nhi", text)
	})

	t.Run("omits the title line when extraction finds none", func(t *testing.T) {
		t.Parallel()

		c := &pipeline.Capturer{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "<html/>", nil },
			},
			Extractors: []webclip.Extractor{
				&mock.Extractor{
					ExtractFn: func(string) (*webclip.ExtractResult, error) {
						return &webclip.ExtractResult{ContentHTML: "<p>body</p>"}, nil
					},
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(string, string) (string, error) { return "body", nil },
			},
		}

		text, err := c.CaptureText(context.Background(), "http://example.com")
		require.NoError(t, err)
		assert.Equal(t, "URL: http://example.com\n\nbody", text)
	})

	t.Run("falls through to the next extractor", func(t *testing.T) {
		t.Parallel()

		c := &pipeline.Capturer{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "<html/>", nil },
			},
			Extractors: []webclip.Extractor{
				&mock.Extractor{
					ExtractFn: func(string) (*webclip.ExtractResult, error) {
						return nil, errors.New("boom")
					},
				},
				&mock.Extractor{
					ExtractFn: func(string) (*webclip.ExtractResult, error) {
						return &webclip.ExtractResult{ContentHTML: "   "}, nil
					},
				},
				&mock.Extractor{
					ExtractFn: func(string) (*webclip.ExtractResult, error) {
						return &webclip.ExtractResult{Title: "Fallback", ContentHTML: "<p>ok</p>"}, nil
					},
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(string, string) (string, error) { return "ok", nil },
			},
		}

		text, err := c.CaptureText(context.Background(), "http://example.com")
		require.NoError(t, err)
		assert.Contains(t, text, "Title: Fallback")
	})

	t.Run("reports unavailable when no extractor yields content", func(t *testing.T) {
		t.Parallel()

		c := &pipeline.Capturer{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "<html/>", nil },
			},
			Extractors: []webclip.Extractor{
				&mock.Extractor{
					ExtractFn: func(string) (*webclip.ExtractResult, error) { return nil, nil },
				},
			},
			Converter: &mock.Converter{},
		}

		_, err := c.CaptureText(context.Background(), "http://example.com")
		assert.Equal(t, webclip.EUNAVAILABLE, webclip.ErrorCode(err))
	})

	t.Run("propagates fetch failures", func(t *testing.T) {
		t.Parallel()

		c := &pipeline.Capturer{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return "", errors.New("connection refused")
				},
			},
		}

		_, err := c.CaptureText(context.Background(), "http://example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestCapturer_CaptureText_RejectsInvalidURLs(t *testing.T) {
	t.Parallel()

	for _, pageURL := range []string{"", "ftp://example.com/file", "not a url", "/relative/path"} {
		t.Run(pageURL, func(t *testing.T) {
			t.Parallel()

			c := &pipeline.Capturer{Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					t.Fatal("fetch must not run for an invalid URL")
					return "", nil
				},
			}}

			_, err := c.CaptureText(context.Background(), pageURL)
			assert.Equal(t, webclip.EINVALID, webclip.ErrorCode(err))
		})
	}
}
