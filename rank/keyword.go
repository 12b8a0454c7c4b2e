package rank

import (
	"sort"

	"github.com/fwojciec/digest"
)

// Keyword scoring constants.
const (
	// KeywordMaxFeatures caps the TF-IDF keyword vocabulary.
	KeywordMaxFeatures = 100

	// Co-occurrence ranking parameters.
	CooccurrenceIterations = 5
	CooccurrenceWindow     = 5
	Damping                = 0.85
)

// TFIDFKeywords fits TF-IDF over the per-sentence term lists and scores each
// term by its column sum across sentences. It returns the top n terms; ties
// keep alphabetical order. Returns ErrEmptyVocabulary when there are no terms.
func TFIDFKeywords(sentenceTerms [][]string, n int) ([]digest.Keyword, error) {
	m, err := Fit(sentenceTerms, KeywordMaxFeatures)
	if err != nil {
		return nil, err
	}

	sums := make([]float64, len(m.Terms))
	for _, doc := range sentenceTerms {
		for i, w := range m.Transform(doc) {
			sums[i] += w
		}
	}

	keywords := make([]digest.Keyword, len(m.Terms))
	for i, t := range m.Terms {
		keywords[i] = digest.Keyword{Term: t, Score: sums[i]}
	}
	return top(keywords, n), nil
}

// CooccurrenceKeywords ranks terms by the scores of their neighbours.
//
// Every distinct term starts at 1.0. Each of CooccurrenceIterations rounds
// walks the term stream in order and, for every occurrence, sets the term's
// score to (1-Damping) + Damping*mean(score of the other terms within
// CooccurrenceWindow positions on either side). Occurrences of the same term
// inside the window are excluded. A round reads only the previous round's
// scores, so the walk order cannot leak updates into the same round; a later
// occurrence of a term overwrites an earlier one. Ties keep first-occurrence
// order.
func CooccurrenceKeywords(terms []string, n int) []digest.Keyword {
	index := make(map[string]int)
	var distinct []string
	ids := make([]int, len(terms))
	for i, t := range terms {
		id, ok := index[t]
		if !ok {
			id = len(distinct)
			index[t] = id
			distinct = append(distinct, t)
		}
		ids[i] = id
	}

	prev := uniform(len(distinct), 1.0)
	next := make([]float64, len(distinct))
	for iter := 0; iter < CooccurrenceIterations; iter++ {
		copy(next, prev)
		for i, id := range ids {
			lo := max(0, i-CooccurrenceWindow)
			hi := min(len(ids), i+CooccurrenceWindow+1)

			var sum float64
			var size int
			for j := lo; j < hi; j++ {
				if ids[j] == id {
					continue
				}
				sum += prev[ids[j]]
				size++
			}
			if size > 0 {
				next[id] = (1 - Damping) + Damping*(sum/float64(size))
			}
		}
		prev, next = next, prev
	}

	keywords := make([]digest.Keyword, len(distinct))
	for id, t := range distinct {
		keywords[id] = digest.Keyword{Term: t, Score: prev[id]}
	}
	return top(keywords, n)
}

// FrequencyKeywords scores each term by its share of the term stream.
// Ties keep first-occurrence order.
func FrequencyKeywords(terms []string, n int) []digest.Keyword {
	if len(terms) == 0 {
		return []digest.Keyword{}
	}

	index := make(map[string]int)
	var keywords []digest.Keyword
	for _, t := range terms {
		id, ok := index[t]
		if !ok {
			id = len(keywords)
			index[t] = id
			keywords = append(keywords, digest.Keyword{Term: t})
		}
		keywords[id].Score++
	}

	total := float64(len(terms))
	for i := range keywords {
		keywords[i].Score /= total
	}
	return top(keywords, n)
}

// top stable-sorts keywords by descending score and truncates to n.
func top(keywords []digest.Keyword, n int) []digest.Keyword {
	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Score > keywords[j].Score
	})
	if n >= 0 && len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords
}
