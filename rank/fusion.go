package rank

import "github.com/fwojciec/digest"

// KeywordWeights weights the TF-IDF, co-occurrence and frequency rankings.
var KeywordWeights = []float64{0.4, 0.35, 0.25}

// DefaultKeywordWeight applies to any ranking beyond len(KeywordWeights).
const DefaultKeywordWeight = 0.2

// RankDecay is the bonus lost per rank position during fusion.
const RankDecay = 0.1

// Fuse merges ranked keyword lists into one list of at most n terms.
//
// The term at 0-based rank i of list m contributes
// score * weights[m] * (1 - RankDecay*i) to its total. The bonus is not
// clamped, so ranks past 10 contribute negatively. Totals are sorted in
// descending order; ties keep the order in which terms were first seen
// across the lists.
func Fuse(lists [][]digest.Keyword, weights []float64, n int) []digest.Keyword {
	index := make(map[string]int)
	fused := []digest.Keyword{}

	for m, list := range lists {
		weight := DefaultKeywordWeight
		if m < len(weights) {
			weight = weights[m]
		}

		for i, kw := range list {
			bonus := 1.0 - RankDecay*float64(i)
			id, ok := index[kw.Term]
			if !ok {
				id = len(fused)
				index[kw.Term] = id
				fused = append(fused, digest.Keyword{Term: kw.Term})
			}
			fused[id].Score += kw.Score * weight * bonus
		}
	}
	return top(fused, n)
}
