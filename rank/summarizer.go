package rank

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/digest"
)

// FallbackExcerptLength is the number of characters kept when summarization fails.
const FallbackExcerptLength = 500

// Ensure Summarizer implements digest.ExtractiveSummarizer at compile time.
var _ digest.ExtractiveSummarizer = (*Summarizer)(nil)

// Summarizer produces extractive summaries.
type Summarizer struct {
	segmenter  digest.Segmenter
	normalizer digest.Normalizer
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(segmenter digest.Segmenter, normalizer digest.Normalizer) *Summarizer {
	return &Summarizer{segmenter: segmenter, normalizer: normalizer}
}

// Summarize selects up to sentenceCount sentences of text. Documents with
// no more than sentenceCount sentences are returned verbatim without
// scoring. Any failure yields a MethodFallback summary holding the first
// FallbackExcerptLength characters of text.
func (s *Summarizer) Summarize(text string, sentenceCount int) (summary *digest.Summary) {
	defer func() {
		if r := recover(); r != nil {
			summary = Fallback(text, fmt.Errorf("summarizer panic: %v", r))
		}
	}()

	if strings.TrimSpace(text) == "" {
		return Fallback(text, digest.Errorf(digest.EINVALID, "text is empty"))
	}
	if sentenceCount < 1 {
		return Fallback(text, digest.Errorf(digest.EINVALID, "sentence count must be positive, got %d", sentenceCount))
	}

	texts := s.segmenter.Segment(text)
	if len(texts) <= sentenceCount {
		return &digest.Summary{
			Summary:               text,
			Method:                digest.MethodFullText,
			OriginalSentenceCount: len(texts),
			SummarySentenceCount:  len(texts),
			Sentences:             texts,
		}
	}

	sents := NewSentences(texts, s.normalizer)
	vectors := ScoreSentences(sents)

	scores := make([]float64, len(vectors))
	sentenceScores := make(map[int]float64, len(vectors))
	for i, v := range vectors {
		scores[i] = v.Combined
		sentenceScores[i] = v.Combined
	}

	selected := Select(sents, scores, sentenceCount)
	chosen := make([]string, len(selected))
	for i, sent := range selected {
		chosen[i] = sent.Text
	}

	return &digest.Summary{
		Summary:               strings.Join(chosen, " "),
		Method:                digest.MethodExtractive,
		OriginalSentenceCount: len(texts),
		SummarySentenceCount:  len(chosen),
		Sentences:             chosen,
		SentenceScores:        sentenceScores,
	}
}

// Fallback returns the degraded summary used when summarization fails.
func Fallback(text string, err error) *digest.Summary {
	return &digest.Summary{
		Summary: Excerpt(text, FallbackExcerptLength),
		Method:  digest.MethodFallback,
		Error:   errorText(err),
	}
}

// Excerpt returns the first limit characters of text followed by "..." when
// text is longer than limit.
func Excerpt(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit]) + "..."
}

// errorText prefers the human-readable message of application errors.
func errorText(err error) string {
	if err == nil {
		return ""
	}
	if digest.ErrorCode(err) != digest.EINTERNAL {
		return digest.ErrorMessage(err)
	}
	return err.Error()
}
