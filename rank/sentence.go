package rank

import (
	"math"
	"strings"
)

// Sentence scoring constants.
const (
	// CentralityMaxFeatures caps the vocabulary used for centrality.
	CentralityMaxFeatures = 1000

	// MinCentralitySentences is the smallest document for which centrality
	// is computed; shorter documents score 1.0 everywhere.
	MinCentralitySentences = 3

	// Position scores.
	IntroPositionScore  = 0.5
	EarlyPositionScore  = 1.0
	MiddlePositionScore = 0.7
	LatePositionScore   = 0.3

	// Position thresholds as fractions of the sentence count.
	EarlyFraction  = 0.3
	MiddleFraction = 0.7

	// Length scores and tolerances relative to the mean word count.
	TypicalLengthScore = 1.0
	LongLengthScore    = 0.5
	OtherLengthScore   = 0.8
	LengthTolerance    = 0.3
	LongLengthFactor   = 1.5
)

// SentenceWeights weights centrality, position, length and title overlap,
// in that order.
var SentenceWeights = [4]float64{0.4, 0.2, 0.2, 0.2}

// ScoreVector holds the signals computed for one sentence.
type ScoreVector struct {
	Centrality   float64 `json:"centrality"`
	Position     float64 `json:"position"`
	Length       float64 `json:"length"`
	TitleOverlap float64 `json:"titleOverlap"`
	Combined     float64 `json:"combined"`
}

// Combine returns the weighted sum of the four signals.
func Combine(v ScoreVector) float64 {
	return SentenceWeights[0]*v.Centrality +
		SentenceWeights[1]*v.Position +
		SentenceWeights[2]*v.Length +
		SentenceWeights[3]*v.TitleOverlap
}

// ScoreSentences computes every signal and the combined score for each sentence.
func ScoreSentences(sents []Sentence) []ScoreVector {
	docs := make([][]string, len(sents))
	texts := make([]string, len(sents))
	sets := make([]TokenSet, len(sents))
	for i, s := range sents {
		docs[i] = s.Content
		texts[i] = s.Text
		sets[i] = s.Tokens
	}

	centrality := Centrality(docs)
	position := Position(len(sents))
	length := Length(texts)
	title := TitleOverlap(sets)

	vectors := make([]ScoreVector, len(sents))
	for i := range sents {
		v := ScoreVector{
			Centrality:   centrality[i],
			Position:     position[i],
			Length:       length[i],
			TitleOverlap: title[i],
		}
		v.Combined = Combine(v)
		vectors[i] = v
	}
	return vectors
}

// Centrality scores each sentence by the cosine similarity of its TF-IDF
// vector to the vector of the whole document. The vocabulary is fitted over
// the sentences themselves. Documents with fewer than
// MinCentralitySentences sentences, or whose vocabulary is empty, score 1.0
// for every sentence.
func Centrality(docs [][]string) []float64 {
	if len(docs) < MinCentralitySentences {
		return uniform(len(docs), 1.0)
	}

	m, err := Fit(docs, CentralityMaxFeatures)
	if err != nil {
		return uniform(len(docs), 1.0)
	}

	var all []string
	for _, d := range docs {
		all = append(all, d...)
	}
	docVec := m.Transform(all)

	scores := make([]float64, len(docs))
	for i, d := range docs {
		scores[i] = Cosine(m.Transform(d), docVec)
	}
	return scores
}

// Position scores sentences by where they fall in a document of n
// sentences. The first sentence is treated as an introduction.
func Position(n int) []float64 {
	scores := make([]float64, n)
	for i := range scores {
		switch {
		case i == 0:
			scores[i] = IntroPositionScore
		case float64(i) < float64(n)*EarlyFraction:
			scores[i] = EarlyPositionScore
		case float64(i) < float64(n)*MiddleFraction:
			scores[i] = MiddlePositionScore
		default:
			scores[i] = LatePositionScore
		}
	}
	return scores
}

// Length scores sentences by how close their word count is to the mean.
func Length(texts []string) []float64 {
	if len(texts) == 0 {
		return nil
	}

	lengths := make([]float64, len(texts))
	var total float64
	for i, t := range texts {
		lengths[i] = float64(len(strings.Fields(t)))
		total += lengths[i]
	}
	avg := total / float64(len(texts))

	scores := make([]float64, len(texts))
	for i, l := range lengths {
		switch {
		case math.Abs(l-avg) < avg*LengthTolerance:
			scores[i] = TypicalLengthScore
		case l > avg*LongLengthFactor:
			scores[i] = LongLengthScore
		default:
			scores[i] = OtherLengthScore
		}
	}
	return scores
}

// TitleOverlap scores each sentence by the Jaccard similarity of its tokens
// with the tokens of the first sentence, which stands in for a title.
func TitleOverlap(sets []TokenSet) []float64 {
	if len(sets) == 0 {
		return nil
	}
	title := sets[0]
	scores := make([]float64, len(sets))
	for i, s := range sets {
		scores[i] = Jaccard(title, s)
	}
	return scores
}
