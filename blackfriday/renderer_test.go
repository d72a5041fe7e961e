package blackfriday_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/simplesearch"
	"github.com/fwojciec/simplesearch/blackfriday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderPage(t *testing.T) {
	t.Parallel()

	t.Run("renders title and markdown segments", func(t *testing.T) {
		t.Parallel()

		page := &simplesearch.Page{
			Title: "Welcome",
			Segments: []simplesearch.Segment{
				{Name: "default", Content: "Hello **world**"},
				{Name: "sidebar", Content: "- one\n- two\n"},
			},
		}

		html, err := blackfriday.NewRenderer().RenderPage(page)
		require.NoError(t, err)

		assert.Contains(t, html, "<h1>Welcome</h1>")
		assert.Contains(t, html, "<strong>world</strong>")
		assert.Contains(t, html, `<section class="segment segment-sidebar">`)
		assert.Contains(t, html, "<li>one</li>")
		assert.Less(t, strings.Index(html, "world"), strings.Index(html, "<li>one</li>"), "segments keep their order")
	})

	t.Run("escapes the title", func(t *testing.T) {
		t.Parallel()

		html, err := blackfriday.NewRenderer().RenderPage(&simplesearch.Page{Title: "Fish & <Chips>"})
		require.NoError(t, err)

		assert.Contains(t, html, "<h1>Fish &amp; &lt;Chips&gt;</h1>")
	})

	t.Run("returns EINVALID for nil page", func(t *testing.T) {
		t.Parallel()

		_, err := blackfriday.NewRenderer().RenderPage(nil)
		assert.Equal(t, simplesearch.EINVALID, simplesearch.ErrorCode(err))
	})
}
