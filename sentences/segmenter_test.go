package sentences_test

import (
	"testing"

	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/sentences"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ digest.Segmenter = (*sentences.Segmenter)(nil)

func TestSegmenter_Segment(t *testing.T) {
	t.Parallel()

	seg, err := sentences.NewSegmenter()
	require.NoError(t, err)

	t.Run("splits on terminal punctuation", func(t *testing.T) {
		t.Parallel()

		got := seg.Segment("The cat sat. The cat slept. Dogs bark loudly outside the house.")

		assert.Equal(t, []string{
			"The cat sat.",
			"The cat slept.",
			"Dogs bark loudly outside the house.",
		}, got)
	})

	t.Run("handles question and exclamation marks", func(t *testing.T) {
		t.Parallel()

		got := seg.Segment("Is it raining? It is pouring! Take an umbrella.")

		assert.Len(t, got, 3)
		assert.Equal(t, "Take an umbrella.", got[2])
	})

	t.Run("returns nil for blank text", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, seg.Segment(""))
		assert.Nil(t, seg.Segment("   \n\t"))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		got := seg.Segment("  One sentence here.  ")

		assert.Equal(t, []string{"One sentence here."}, got)
	})
}
