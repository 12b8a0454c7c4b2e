package rank_test

import (
	"testing"

	"github.com/fwojciec/digest/rank"
	"github.com/stretchr/testify/assert"
)

func sentence(i int, tokens ...string) rank.Sentence {
	return rank.Sentence{Index: i, Tokens: rank.NewTokenSet(tokens)}
}

func indexes(sents []rank.Sentence) []int {
	out := make([]int, len(sents))
	for i, s := range sents {
		out[i] = s.Index
	}
	return out
}

func TestSelect(t *testing.T) {
	t.Parallel()

	t.Run("picks highest scores in acceptance order", func(t *testing.T) {
		t.Parallel()

		sents := []rank.Sentence{
			sentence(0, "storm", "hit"),
			sentence(1, "market", "rally"),
			sentence(2, "river", "flood"),
		}

		got := rank.Select(sents, []float64{0.2, 0.9, 0.5}, 2)

		assert.Equal(t, []int{1, 2}, indexes(got))
	})

	t.Run("rejects near-duplicates", func(t *testing.T) {
		t.Parallel()

		sents := []rank.Sentence{
			sentence(0, "storm", "hit", "the", "coast", "today"),
			sentence(1, "storm", "hit", "the", "coast", "today", "again"),
			sentence(2, "market", "rally"),
			sentence(3, "river", "flood"),
		}

		got := rank.Select(sents, []float64{0.9, 0.8, 0.5, 0.7}, 2)

		assert.Equal(t, []int{0, 3}, indexes(got))
	})

	t.Run("keeps sentences at the similarity threshold", func(t *testing.T) {
		t.Parallel()

		// Jaccard 0.5 does not exceed the threshold.
		sents := []rank.Sentence{
			sentence(0, "the", "cat", "sat"),
			sentence(1, "the", "cat", "slept"),
			sentence(2, "dogs", "bark"),
		}

		got := rank.Select(sents, []float64{0.9, 0.8, 0.1}, 2)

		assert.Equal(t, []int{0, 1}, indexes(got))
	})

	t.Run("equal scores prefer the earlier sentence", func(t *testing.T) {
		t.Parallel()

		sents := []rank.Sentence{
			sentence(0, "storm"),
			sentence(1, "market"),
			sentence(2, "river"),
		}

		got := rank.Select(sents, []float64{0.5, 0.5, 0.5}, 2)

		assert.Equal(t, []int{0, 1}, indexes(got))
	})

	t.Run("may return fewer than k when candidates run out", func(t *testing.T) {
		t.Parallel()

		sents := []rank.Sentence{
			sentence(0, "storm", "hit"),
			sentence(1, "storm", "hit"),
			sentence(2, "storm", "hit"),
		}

		got := rank.Select(sents, []float64{0.3, 0.2, 0.1}, 2)

		assert.Equal(t, []int{0}, indexes(got))
	})

	t.Run("returns every sentence when k covers the document", func(t *testing.T) {
		t.Parallel()

		sents := []rank.Sentence{sentence(0, "storm"), sentence(1, "storm")}

		got := rank.Select(sents, []float64{0.1, 0.9}, 5)

		assert.Equal(t, []int{0, 1}, indexes(got))
	})
}
