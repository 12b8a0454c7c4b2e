package digest

// Normalizer reduces raw text to canonical lemmas.
//
// Implementations hold a process-wide stop-word set and lemmatizer that are
// built once and never mutated, so a single Normalizer is safe for
// concurrent use.
type Normalizer interface {
	// Normalize lowercases text, strips everything that is not a word
	// character or whitespace, collapses whitespace and lemmatizes every
	// remaining token. It never fails: a token the lemmatizer cannot handle
	// is kept unchanged.
	Normalize(text string) string

	// Terms returns the candidate keyword terms of text in document order:
	// normalized tokens that are alphabetic, longer than MinTermLength and
	// not stop words.
	Terms(text string) []string

	// Content returns the lemmas of the tokens Normalize keeps, minus stop
	// words and single characters. Stop words are matched before and after
	// lemmatization, so "only" is dropped although it stems to "onli".
	Content(text string) []string

	// Forms maps each term Terms would return to the lowercase word it most
	// often came from in text. Ties go to the word seen first.
	Forms(text string) map[string]string

	// IsStopWord reports whether word is in the stop-word set.
	IsStopWord(word string) bool
}

// MinTermLength is the length a token must exceed to become a candidate term.
const MinTermLength = 3

// Segmenter splits a document into sentences.
type Segmenter interface {
	// Segment returns the sentences of text in document order.
	// Sentences are trimmed; empty sentences are dropped.
	Segment(text string) []string
}
