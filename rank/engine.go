package rank

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/digest"
)

// Ensure KeywordEngine implements digest.KeywordExtractor at compile time.
var _ digest.KeywordExtractor = (*KeywordEngine)(nil)

// KeywordEngine runs the three keyword scorers and fuses their rankings.
type KeywordEngine struct {
	segmenter  digest.Segmenter
	normalizer digest.Normalizer
}

// NewKeywordEngine creates a new KeywordEngine.
func NewKeywordEngine(segmenter digest.Segmenter, normalizer digest.Normalizer) *KeywordEngine {
	return &KeywordEngine{segmenter: segmenter, normalizer: normalizer}
}

// Extract returns at most keywordCount fused keywords of text. Each scorer
// is guarded on its own: a failing scorer contributes an empty ranking and
// the others are still fused. Error is set only when every scorer failed or
// the input was rejected.
func (e *KeywordEngine) Extract(text string, keywordCount int) (result *digest.Keywords) {
	defer func() {
		if r := recover(); r != nil {
			result = emptyKeywords(fmt.Errorf("keyword extraction panic: %v", r))
		}
	}()

	if strings.TrimSpace(text) == "" {
		return emptyKeywords(digest.Errorf(digest.EINVALID, "text is empty"))
	}
	if keywordCount < 1 {
		return emptyKeywords(digest.Errorf(digest.EINVALID, "keyword count must be positive, got %d", keywordCount))
	}

	tfidf, tfidfErr := guard(func() ([]digest.Keyword, error) {
		sents := e.segmenter.Segment(text)
		terms := make([][]string, len(sents))
		for i, s := range sents {
			terms[i] = e.normalizer.Terms(s)
		}
		return TFIDFKeywords(terms, keywordCount)
	})
	cooc, coocErr := guard(func() ([]digest.Keyword, error) {
		return CooccurrenceKeywords(e.normalizer.Terms(text), keywordCount), nil
	})
	freq, freqErr := guard(func() ([]digest.Keyword, error) {
		return FrequencyKeywords(e.normalizer.Terms(text), keywordCount), nil
	})

	fused := Fuse([][]digest.Keyword{tfidf, cooc, freq}, KeywordWeights, keywordCount)

	// Rankings are computed on lemmas and shown as words.
	forms := e.surfaceForms(text)
	result = &digest.Keywords{
		Keywords: relabel(fused, forms),
		Methods: digest.KeywordMethods{
			TFIDF:        relabel(tfidf, forms),
			Cooccurrence: relabel(cooc, forms),
			Frequency:    relabel(freq, forms),
		},
	}
	if tfidfErr != nil && coocErr != nil && freqErr != nil {
		result.Error = errorText(errors.Join(tfidfErr, coocErr, freqErr))
	}
	return result
}

// surfaceForms returns the display word of each term, or nil when the
// normalizer fails so that lemmas are shown instead.
func (e *KeywordEngine) surfaceForms(text string) (forms map[string]string) {
	defer func() {
		if recover() != nil {
			forms = nil
		}
	}()
	return e.normalizer.Forms(text)
}

// relabel returns keywords with each term replaced by its display word.
// Distinct lemmas always have distinct words, so terms stay unique.
func relabel(keywords []digest.Keyword, forms map[string]string) []digest.Keyword {
	out := make([]digest.Keyword, len(keywords))
	for i, kw := range keywords {
		if form, ok := forms[kw.Term]; ok {
			kw.Term = form
		}
		out[i] = kw
	}
	return out
}

// guard runs a scorer, converting a panic into an error. A failed scorer
// always yields an empty, non-nil ranking.
func guard(fn func() ([]digest.Keyword, error)) (keywords []digest.Keyword, err error) {
	defer func() {
		if r := recover(); r != nil {
			keywords, err = []digest.Keyword{}, fmt.Errorf("keyword scorer panic: %v", r)
		}
	}()

	keywords, err = fn()
	if err != nil || keywords == nil {
		return []digest.Keyword{}, err
	}
	return keywords, nil
}

func emptyKeywords(err error) *digest.Keywords {
	return &digest.Keywords{
		Keywords: []digest.Keyword{},
		Methods: digest.KeywordMethods{
			TFIDF:        []digest.Keyword{},
			Cooccurrence: []digest.Keyword{},
			Frequency:    []digest.Keyword{},
		},
		Error: errorText(err),
	}
}
