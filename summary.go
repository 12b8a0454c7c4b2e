package digest

import "context"

// SummaryMethod identifies how a summary was produced.
type SummaryMethod string

// SummaryMethod constants.
const (
	// MethodFullText means the document was short enough to be returned verbatim.
	MethodFullText SummaryMethod = "full_text"

	// MethodExtractive means sentences were scored and selected.
	MethodExtractive SummaryMethod = "extractive"

	// MethodFallback means the pipeline failed and a truncated excerpt was returned.
	MethodFallback SummaryMethod = "fallback"

	// MethodAbstractive means a generative model wrote the summary.
	MethodAbstractive SummaryMethod = "ai_abstractive"
)

// Summary is the result of a summarization call. A Summary is always
// returned, even on failure; degradation is reported through Method and Error.
type Summary struct {
	Summary               string          `json:"summary"`
	Method                SummaryMethod   `json:"method"`
	OriginalSentenceCount int             `json:"originalSentenceCount"`
	SummarySentenceCount  int             `json:"summarySentenceCount"`
	Sentences             []string        `json:"sentences,omitempty"`
	SentenceScores        map[int]float64 `json:"sentenceScores,omitempty"`

	// Model is set for abstractive summaries.
	Model string `json:"model,omitempty"`

	// Error describes why the summary degraded, if it did.
	Error string `json:"error,omitempty"`
}

// Degraded reports whether the summary is a fallback.
func (s *Summary) Degraded() bool {
	return s.Method == MethodFallback
}

// ExtractiveSummarizer selects the most representative sentences of a text.
type ExtractiveSummarizer interface {
	// Summarize returns at most sentenceCount literal sentences of text.
	// It never fails; problems are reported in the returned Summary.
	Summarize(text string, sentenceCount int) *Summary
}

// AbstractiveSummarizer writes new text about a document using a generative model.
type AbstractiveSummarizer interface {
	// Summarize returns a summary of at most maxWords words. Like the
	// extractive path it never fails; without a model it degrades to a
	// lead-sentence excerpt tagged MethodFallback.
	Summarize(ctx context.Context, text string, maxWords int) *Summary

	// GenerateTitle returns a short title for text.
	GenerateTitle(ctx context.Context, text string) string

	// ExtractKeyPoints returns up to n single-sentence key points.
	ExtractKeyPoints(ctx context.Context, text string, n int) []string
}
