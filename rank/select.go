package rank

import "sort"

// MaxSimilarity is the Jaccard similarity above which a candidate is
// considered a near-duplicate of an already selected sentence.
const MaxSimilarity = 0.7

// Select picks up to k sentences by descending score, skipping any sentence
// whose token-set Jaccard similarity to an already accepted sentence
// exceeds MaxSimilarity. Equal scores prefer the earlier sentence.
//
// The result is in acceptance order, not document order. It may hold fewer
// than k sentences when candidates run out. When len(sents) <= k every
// sentence is returned in document order.
func Select(sents []Sentence, scores []float64, k int) []Sentence {
	if len(sents) <= k {
		return sents
	}

	order := make([]int, len(sents))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	selected := make([]Sentence, 0, k)
	for _, idx := range order {
		if len(selected) >= k {
			break
		}
		cand := sents[idx]
		if tooSimilar(cand, selected) {
			continue
		}
		selected = append(selected, cand)
	}
	return selected
}

func tooSimilar(cand Sentence, selected []Sentence) bool {
	for _, s := range selected {
		if Jaccard(cand.Tokens, s.Tokens) > MaxSimilarity {
			return true
		}
	}
	return false
}
