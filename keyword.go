package digest

// Keyword is a ranked term, shown as the word it most often appeared as.
type Keyword struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// KeywordMethods holds the per-method rankings that were fused.
// Scores from different methods are not on a comparable scale.
type KeywordMethods struct {
	TFIDF        []Keyword `json:"tfidf"`
	Cooccurrence []Keyword `json:"cooccurrence"`
	Frequency    []Keyword `json:"frequency"`
}

// Keywords is the result of keyword extraction.
type Keywords struct {
	Keywords []Keyword      `json:"keywords"`
	Methods  KeywordMethods `json:"methods"`

	// Error describes why extraction degraded, if it did.
	Error string `json:"error,omitempty"`
}

// Terms returns the fused keyword terms in rank order.
func (k *Keywords) Terms() []string {
	terms := make([]string, 0, len(k.Keywords))
	for _, kw := range k.Keywords {
		terms = append(terms, kw.Term)
	}
	return terms
}

// KeywordExtractor ranks the most salient terms of a text.
type KeywordExtractor interface {
	// Extract returns at most keywordCount deduplicated terms.
	// It never fails; problems are reported in the returned Keywords.
	Extract(text string, keywordCount int) *Keywords
}
