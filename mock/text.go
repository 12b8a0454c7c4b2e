package mock

import "github.com/fwojciec/digest"

var (
	_ digest.Normalizer = (*Normalizer)(nil)
	_ digest.Segmenter  = (*Segmenter)(nil)
)

// Normalizer is a mock implementation of digest.Normalizer.
type Normalizer struct {
	NormalizeFn  func(text string) string
	TermsFn      func(text string) []string
	ContentFn    func(text string) []string
	FormsFn      func(text string) map[string]string
	IsStopWordFn func(word string) bool
}

func (n *Normalizer) Normalize(text string) string {
	return n.NormalizeFn(text)
}

func (n *Normalizer) Terms(text string) []string {
	return n.TermsFn(text)
}

func (n *Normalizer) Content(text string) []string {
	return n.ContentFn(text)
}

func (n *Normalizer) Forms(text string) map[string]string {
	return n.FormsFn(text)
}

func (n *Normalizer) IsStopWord(word string) bool {
	return n.IsStopWordFn(word)
}

// Segmenter is a mock implementation of digest.Segmenter.
type Segmenter struct {
	SegmentFn func(text string) []string
}

func (s *Segmenter) Segment(text string) []string {
	return s.SegmentFn(text)
}
