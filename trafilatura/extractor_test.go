package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements digest.Extractor at compile time.
var _ digest.Extractor = (*trafilatura.Extractor)(nil)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
<title>Storm floods coastal towns - Example News</title>
<meta property="og:title" content="Storm floods coastal towns">
<meta name="author" content="Jane Reporter">
</head>
<body>
<nav><a href="/">Home</a><a href="/world">World</a><a href="/sport">Sport</a></nav>
<article>
<h1>Storm floods coastal towns</h1>
<p>A powerful storm hit the northern coast on Monday, flooding several towns along the river and forcing hundreds of residents to leave their homes.</p>
<p>Officials said the river rose faster than expected after two days of heavy rain, and emergency crews worked through the night to reach stranded families.</p>
<p>Forecasters expect the storm to weaken by Wednesday, although more rain is likely across the region later in the week.</p>
</article>
<footer>Copyright 2024 Example News</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(articleHTML, "https://example.com/news/storm")

		require.NoError(t, err)
		assert.Contains(t, result.Title, "Storm floods coastal towns")
	})

	t.Run("extracts article text and HTML", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(articleHTML, "https://example.com/news/storm")

		require.NoError(t, err)
		assert.Contains(t, result.Text, "emergency crews worked through the night")
		assert.Contains(t, result.ContentHTML, "emergency crews worked through the night")
		assert.Equal(t, trafilatura.Method, result.Method)
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(articleHTML, "")

		require.NoError(t, err)
		assert.NotContains(t, result.Text, "Copyright 2024")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("", "")

		require.Error(t, err)
	})
}
