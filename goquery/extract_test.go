package goquery_test

import (
	"testing"

	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ digest.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article content, title, authors and date", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Storm floods coastal towns</title>
<meta name="author" content="Jane Reporter, John Writer">
</head>
<body>
<nav class="site-nav"><p>Home World Sport Business Culture Opinion</p></nav>
<article>
<p>A powerful storm hit the northern coast on Monday, flooding several towns.</p>
<p>Officials said the river rose faster than expected after two days of rain.</p>
<div class="share-tools"><p>Share this story on every social network you use</p></div>
<p>Published 2024-03-11 by the regional desk.</p>
</article>
<footer><p>Copyright notice and other footer text here</p></footer>
</body>
</html>`

		ext := goquery.NewExtractor(nil)
		result, err := ext.Extract(html, "https://example.com/news/storm")

		require.NoError(t, err)
		assert.Equal(t, goquery.MethodCustom, result.Method)
		assert.Equal(t, "Storm floods coastal towns", result.Title)
		assert.Contains(t, result.Text, "A powerful storm hit the northern coast")
		assert.Contains(t, result.Text, "river rose faster")
		assert.NotContains(t, result.Text, "Share this story")
		assert.NotContains(t, result.Text, "Copyright notice")
		assert.Equal(t, []string{"Jane Reporter", "John Writer"}, result.Authors)
		assert.Equal(t, "2024-03-11", result.PublishDate)
		assert.Contains(t, result.ContentHTML, "<article>")
	})

	t.Run("uses academic selectors for known publishers", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>arXiv listing</title></head><body>
<h1 class="title">Sparse attention for long documents</h1>
<div class="authors"><a>Ada Researcher</a></div>
<blockquote class="abstract">We study sparse attention mechanisms for summarizing long documents and show that a simple windowed variant matches dense attention at a fraction of the cost.</blockquote>
</body></html>`

		ext := goquery.NewExtractor(nil)
		result, err := ext.Extract(html, "https://arxiv.org/abs/1234.5678")

		require.NoError(t, err)
		assert.Equal(t, goquery.MethodCustom, result.Method)
		assert.Equal(t, "Sparse attention for long documents", result.Title)
		assert.Contains(t, result.Text, "sparse attention mechanisms")
		assert.Contains(t, result.Authors, "Ada Researcher")
	})

	t.Run("falls back to joined paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Plain page</title></head><body>
<div><p>First short paragraph.</p></div>
<div><p>Second short paragraph.</p></div>
</body></html>`

		ext := goquery.NewExtractor(nil)
		result, err := ext.Extract(html, "https://example.com/plain")

		require.NoError(t, err)
		assert.Equal(t, goquery.MethodBasic, result.Method)
		assert.Equal(t, "First short paragraph. Second short paragraph.", result.Text)
		assert.Empty(t, result.ContentHTML)
	})

	t.Run("ignores scripts and styles", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><script>var secret = "tracking";</script><style>p{}</style>
<p>Only visible text should remain in the extracted output.</p></body></html>`

		ext := goquery.NewExtractor(nil)
		result, err := ext.Extract(html, "")

		require.NoError(t, err)
		assert.NotContains(t, result.Text, "tracking")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor(nil).Extract("  ", "")

		require.Error(t, err)
		assert.Equal(t, digest.EINVALID, digest.ErrorCode(err))
	})
}
