// Package sentences implements digest.Segmenter using the Punkt sentence
// boundary detector from neurosnap/sentences.
package sentences

import (
	"fmt"
	"strings"

	"github.com/fwojciec/digest"
	punkt "gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Ensure Segmenter implements digest.Segmenter at compile time.
var _ digest.Segmenter = (*Segmenter)(nil)

// Segmenter splits English prose into sentences. The trained Punkt model
// is loaded once in NewSegmenter and only read afterwards, so a Segmenter
// is safe for concurrent use.
type Segmenter struct {
	tok *punkt.DefaultSentenceTokenizer
}

// NewSegmenter loads the English Punkt model.
func NewSegmenter() (*Segmenter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("loading sentence model: %w", err)
	}
	return &Segmenter{tok: tok}, nil
}

// Segment returns the trimmed, non-empty sentences of text in order.
func (s *Segmenter) Segment(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []string
	for _, sent := range s.tok.Tokenize(text) {
		if t := strings.TrimSpace(sent.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}
