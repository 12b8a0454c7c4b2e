package rank

import (
	"math"
	"sort"

	"github.com/fwojciec/digest"
)

// ErrEmptyVocabulary is returned when no term survives tokenization.
var ErrEmptyVocabulary = digest.Errorf(digest.EINVALID, "empty vocabulary; documents contain only stop words or nothing")

// Model is a TF-IDF vocabulary fitted over a corpus of token lists.
//
// Weights follow the smoothed formulation: idf = ln((1+n)/(1+df)) + 1,
// tf is the raw count, and every transformed vector is L2-normalized.
type Model struct {
	// Terms is the vocabulary in alphabetical order.
	Terms []string

	// IDF holds the inverse document frequency of each term in Terms.
	IDF []float64

	index map[string]int
}

// Fit learns a vocabulary from docs. When maxFeatures > 0 only the
// maxFeatures terms with the highest corpus frequency are kept; ties keep
// the alphabetically smaller term.
func Fit(docs [][]string, maxFeatures int) (*Model, error) {
	counts := make(map[string]int)
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, t := range doc {
			counts[t]++
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}
	if len(counts) == 0 {
		return nil, ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(counts))
	for t := range counts {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	if maxFeatures > 0 && len(terms) > maxFeatures {
		sort.SliceStable(terms, func(i, j int) bool {
			return counts[terms[i]] > counts[terms[j]]
		})
		terms = terms[:maxFeatures]
		sort.Strings(terms)
	}

	n := float64(len(docs))
	m := &Model{
		Terms: terms,
		IDF:   make([]float64, len(terms)),
		index: make(map[string]int, len(terms)),
	}
	for i, t := range terms {
		m.index[t] = i
		m.IDF[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
	return m, nil
}

// Transform returns the L2-normalized TF-IDF vector of doc.
// Tokens outside the vocabulary are ignored.
func (m *Model) Transform(doc []string) []float64 {
	vec := make([]float64, len(m.Terms))
	for _, t := range doc {
		if i, ok := m.index[t]; ok {
			vec[i]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= m.IDF[i]
		norm += vec[i] * vec[i]
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// Cosine returns the cosine similarity of two equal-length vectors,
// or 0 if either is a zero vector.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
