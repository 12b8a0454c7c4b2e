package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ digest.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts paragraphs", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>The storm hit the coast.</p>`)

		require.NoError(t, err)
		assert.Equal(t, "The storm hit the coast.", md)
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>Storm</h1><h2>Aftermath</h2>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Storm")
		assert.Contains(t, md, "## Aftermath")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Read the <a href="https://example.com/report">full report</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[full report](https://example.com/report)")
	})

	t.Run("converts blockquotes", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<blockquote>We were not ready for this.</blockquote>`)

		require.NoError(t, err)
		assert.Contains(t, md, "> We were not ready for this.")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p><strong>Breaking</strong> and <em>developing</em></p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "**Breaking**")
		assert.Contains(t, md, "*developing*")
	})

	t.Run("converts strikethrough", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p><del>Corrected</del> figure</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "~~Corrected~~")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<table><thead><tr><th>Town</th><th>Rainfall</th></tr></thead><tbody><tr><td>Northport</td><td>120mm</td></tr></tbody></table>`)

		require.NoError(t, err)
		assert.Contains(t, md, "| Town")
		assert.Contains(t, md, "Northport")
	})

	t.Run("drops page furniture", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<article>
<p>Rivers rose overnight.</p>
<img src="/flood.jpg" alt="Flooded street">
<div class="share-buttons"><a href="/share">Share this</a></div>
<aside>Read more: election coverage</aside>
<script>track()</script>
<p>Schools stay closed.</p>
</article>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Rivers rose overnight.")
		assert.Contains(t, md, "Schools stay closed.")
		assert.NotContains(t, md, "Flooded street")
		assert.NotContains(t, md, "Share this")
		assert.NotContains(t, md, "election coverage")
		assert.NotContains(t, md, "track()")
	})

	t.Run("accepts a full document", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<!DOCTYPE html><html><head><title>Ignored</title></head><body><p>Body text.</p></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "Body text.", md)
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, digest.EINVALID, digest.ErrorCode(err))
	})
}
