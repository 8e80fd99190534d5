package webclip_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/webclip"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete document", func(t *testing.T) {
		t.Parallel()

		doc := &webclip.Document{
			Title:      "A Page",
			CapturedAt: time.Now(),
		}

		require.NoError(t, doc.Validate())
	})

	t.Run("requires a title", func(t *testing.T) {
		t.Parallel()

		doc := &webclip.Document{CapturedAt: time.Now()}

		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, webclip.EINVALID, webclip.ErrorCode(err))
	})

	t.Run("requires a capture time", func(t *testing.T) {
		t.Parallel()

		doc := &webclip.Document{Title: "A Page"}

		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, webclip.EINVALID, webclip.ErrorCode(err))
	})
}
