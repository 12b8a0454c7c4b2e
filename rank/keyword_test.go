package rank_test

import (
	"testing"

	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func terms(keywords []digest.Keyword) []string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		out[i] = kw.Term
	}
	return out
}

func TestTFIDFKeywords(t *testing.T) {
	t.Parallel()

	t.Run("ranks terms spread across sentences first", func(t *testing.T) {
		t.Parallel()

		got, err := rank.TFIDFKeywords([][]string{
			{"storm", "coast"},
			{"storm", "river"},
			{"storm", "market"},
		}, 2)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "storm", got[0].Term)
		assert.Greater(t, got[0].Score, got[1].Score)
	})

	t.Run("ties keep alphabetical order", func(t *testing.T) {
		t.Parallel()

		got, err := rank.TFIDFKeywords([][]string{{"river", "bank"}}, 5)

		require.NoError(t, err)
		assert.Equal(t, []string{"bank", "river"}, terms(got))
	})

	t.Run("returns an error when there are no terms", func(t *testing.T) {
		t.Parallel()

		_, err := rank.TFIDFKeywords([][]string{{}, {}}, 5)

		assert.ErrorIs(t, err, rank.ErrEmptyVocabulary)
	})
}

func TestCooccurrenceKeywords(t *testing.T) {
	t.Parallel()

	stream := []string{"storm", "river", "bank", "storm", "flood", "river", "storm", "town"}

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			rank.CooccurrenceKeywords(stream, 10),
			rank.CooccurrenceKeywords(stream, 10),
		)
	})

	t.Run("uniform start is a fixed point and ties keep first occurrence", func(t *testing.T) {
		t.Parallel()

		got := rank.CooccurrenceKeywords(stream, 10)

		assert.Equal(t, []string{"storm", "river", "bank", "flood", "town"}, terms(got))
		for _, kw := range got {
			assert.InDelta(t, 1.0, kw.Score, 1e-9)
		}
	})

	t.Run("truncates to n", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, rank.CooccurrenceKeywords(stream, 2), 2)
	})

	t.Run("single repeated term keeps its initial score", func(t *testing.T) {
		t.Parallel()

		got := rank.CooccurrenceKeywords([]string{"storm", "storm"}, 5)

		require.Len(t, got, 1)
		assert.InDelta(t, 1.0, got[0].Score, 1e-9)
	})

	t.Run("empty stream", func(t *testing.T) {
		t.Parallel()

		got := rank.CooccurrenceKeywords(nil, 5)

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFrequencyKeywords(t *testing.T) {
	t.Parallel()

	t.Run("term in half the stream scores one half", func(t *testing.T) {
		t.Parallel()

		got := rank.FrequencyKeywords([]string{
			"storm", "river", "storm", "market", "storm", "forest", "storm", "bank",
		}, 3)

		require.Len(t, got, 3)
		assert.Equal(t, "storm", got[0].Term)
		assert.InDelta(t, 0.5, got[0].Score, 1e-9)
		assert.Equal(t, []string{"storm", "river", "market"}, terms(got))
	})

	t.Run("empty stream", func(t *testing.T) {
		t.Parallel()

		got := rank.FrequencyKeywords(nil, 5)

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
