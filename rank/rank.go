// Package rank implements the extractive scoring and fusion engine: sentence
// importance signals, redundancy-aware sentence selection, three keyword
// scorers and the fusion of their rankings.
//
// Every function in this package is pure and allocates its working state per
// call. The only shared inputs are the digest.Normalizer and
// digest.Segmenter, which must be read-only after construction.
package rank

import (
	"strings"

	"github.com/fwojciec/digest"
)

// Sentence is one segmented unit of a document.
type Sentence struct {
	// Index is the 0-based position in the document.
	Index int

	// Text is the literal sentence as segmented.
	Text string

	// Tokens is the set of normalized tokens, stop words included.
	Tokens TokenSet

	// Content holds the normalized tokens that feed the TF-IDF vectorizer:
	// stop words and single characters removed, order preserved. Stop words
	// are removed before lemmatization, so no stem of one survives.
	Content []string
}

// NewSentences normalizes each sentence text once.
func NewSentences(texts []string, norm digest.Normalizer) []Sentence {
	sents := make([]Sentence, len(texts))
	for i, text := range texts {
		tokens := strings.Fields(norm.Normalize(text))
		sents[i] = Sentence{
			Index:   i,
			Text:    text,
			Tokens:  NewTokenSet(tokens),
			Content: norm.Content(text),
		}
	}
	return sents
}

// TokenSet is a set of normalized tokens.
type TokenSet map[string]struct{}

// NewTokenSet builds a set from tokens.
func NewTokenSet(tokens []string) TokenSet {
	set := make(TokenSet, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// Jaccard returns |a ∩ b| / |a ∪ b|, or 0 when both sets are empty.
func Jaccard(a, b TokenSet) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func uniform(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
