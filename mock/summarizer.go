package mock

import (
	"context"

	"github.com/fwojciec/digest"
)

var (
	_ digest.ExtractiveSummarizer  = (*ExtractiveSummarizer)(nil)
	_ digest.AbstractiveSummarizer = (*AbstractiveSummarizer)(nil)
	_ digest.KeywordExtractor      = (*KeywordExtractor)(nil)
)

// ExtractiveSummarizer is a mock implementation of digest.ExtractiveSummarizer.
type ExtractiveSummarizer struct {
	SummarizeFn func(text string, sentenceCount int) *digest.Summary
}

func (s *ExtractiveSummarizer) Summarize(text string, sentenceCount int) *digest.Summary {
	return s.SummarizeFn(text, sentenceCount)
}

// AbstractiveSummarizer is a mock implementation of digest.AbstractiveSummarizer.
type AbstractiveSummarizer struct {
	SummarizeFn        func(ctx context.Context, text string, maxWords int) *digest.Summary
	GenerateTitleFn    func(ctx context.Context, text string) string
	ExtractKeyPointsFn func(ctx context.Context, text string, n int) []string
}

func (s *AbstractiveSummarizer) Summarize(ctx context.Context, text string, maxWords int) *digest.Summary {
	return s.SummarizeFn(ctx, text, maxWords)
}

func (s *AbstractiveSummarizer) GenerateTitle(ctx context.Context, text string) string {
	return s.GenerateTitleFn(ctx, text)
}

func (s *AbstractiveSummarizer) ExtractKeyPoints(ctx context.Context, text string, n int) []string {
	return s.ExtractKeyPointsFn(ctx, text, n)
}

// KeywordExtractor is a mock implementation of digest.KeywordExtractor.
type KeywordExtractor struct {
	ExtractFn func(text string, keywordCount int) *digest.Keywords
}

func (e *KeywordExtractor) Extract(text string, keywordCount int) *digest.Keywords {
	return e.ExtractFn(text, keywordCount)
}
