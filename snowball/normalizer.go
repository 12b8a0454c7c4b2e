// Package snowball implements digest.Normalizer using the Snowball stemmer
// as its lemmatizer.
package snowball

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/digest"
	"github.com/kljensen/snowball"
)

// DefaultLanguage is the stemmer language used when none is configured.
const DefaultLanguage = "english"

var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

// Ensure Normalizer implements digest.Normalizer at compile time.
var _ digest.Normalizer = (*Normalizer)(nil)

// Normalizer lowercases, strips and lemmatizes text.
// Its stop-word set is fixed at construction, so a Normalizer is safe for
// concurrent use by multiple goroutines.
type Normalizer struct {
	language  string
	stopWords StopWords
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithStopWords replaces the default English stop-word set.
func WithStopWords(sw StopWords) Option {
	return func(n *Normalizer) {
		n.stopWords = sw
	}
}

// WithLanguage sets the Snowball stemmer language.
func WithLanguage(lang string) Option {
	return func(n *Normalizer) {
		n.language = lang
	}
}

// NewNormalizer creates a Normalizer. Build one at startup and share it.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		language:  DefaultLanguage,
		stopWords: EnglishStopWords(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize lowercases text, removes non-word characters, collapses
// whitespace and lemmatizes each token in order.
func (n *Normalizer) Normalize(text string) string {
	text = nonWordRe.ReplaceAllString(strings.ToLower(text), "")
	tokens := strings.Fields(text)
	for i, tok := range tokens {
		tokens[i] = n.Lemma(tok)
	}
	return strings.Join(tokens, " ")
}

// Content returns the meaningful lemmas of text in order. Tokens split the
// same way as in Normalize.
func (n *Normalizer) Content(text string) []string {
	text = nonWordRe.ReplaceAllString(strings.ToLower(text), "")

	tokens := strings.Fields(text)
	content := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if n.stopWords.Contains(tok) {
			continue
		}
		lemma := n.Lemma(tok)
		if utf8.RuneCountInString(lemma) < 2 || n.stopWords.Contains(lemma) {
			continue
		}
		content = append(content, lemma)
	}
	return content
}

// Terms returns candidate keyword terms in document order. Punctuation
// separates tokens here, so "well-known" yields "well" and "known".
func (n *Normalizer) Terms(text string) []string {
	var terms []string
	n.eachTerm(text, func(_, lemma string) {
		terms = append(terms, lemma)
	})
	return terms
}

// Forms maps each term of text to its most frequent source word.
func (n *Normalizer) Forms(text string) map[string]string {
	counts := make(map[string]map[string]int)
	forms := make(map[string]string)
	n.eachTerm(text, func(word, lemma string) {
		if counts[lemma] == nil {
			counts[lemma] = make(map[string]int)
		}
		counts[lemma][word]++
		if best, ok := forms[lemma]; !ok || counts[lemma][word] > counts[lemma][best] {
			forms[lemma] = word
		}
	})
	return forms
}

// eachTerm calls fn with every candidate term of text and the word it came from.
func (n *Normalizer) eachTerm(text string, fn func(word, lemma string)) {
	text = nonWordRe.ReplaceAllString(strings.ToLower(text), " ")
	for _, tok := range strings.Fields(text) {
		if n.stopWords.Contains(tok) {
			continue
		}
		lemma := n.Lemma(tok)
		if utf8.RuneCountInString(lemma) <= digest.MinTermLength {
			continue
		}
		if !isAlpha(lemma) || n.stopWords.Contains(lemma) {
			continue
		}
		fn(tok, lemma)
	}
}

// IsStopWord reports whether word is in the stop-word set.
func (n *Normalizer) IsStopWord(word string) bool {
	return n.stopWords.Contains(strings.ToLower(word))
}

// Lemma reduces a single lowercase token to its stem.
// If stemming fails, the original token is returned.
func (n *Normalizer) Lemma(token string) string {
	stemmed, err := snowball.Stem(token, n.language, true)
	if err != nil || stemmed == "" {
		return token
	}
	return stemmed
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
