// Package gemini implements digest.AbstractiveSummarizer and
// digest.TokenCounter with Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/digest"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for generation.
const DefaultModel = "gemini-2.5-flash"

// Fallback values used when the model is unavailable.
const (
	DefaultTitle     = "Article Summary"
	NoSummaryMessage = "Unable to generate summary."
)

// Generation limits.
const (
	MaxTitleLength     = 100
	TitleContextLength = 1000
	FallbackSentences  = 3
)

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	quoteRe         = regexp.MustCompile(`^["']|["']$`)
	titlePrefixRe   = regexp.MustCompile(`^Title:\s*`)
	pointRe         = regexp.MustCompile(`^\d+\.`)
	pointPrefixRe   = regexp.MustCompile(`^(\d+\.|•|-)\s*`)
)

// Ensure Summarizer implements digest.AbstractiveSummarizer at compile time.
var _ digest.AbstractiveSummarizer = (*Summarizer)(nil)

// Summarizer writes summaries, titles and key points with Gemini.
// A Summarizer without a client still works: every call returns its
// fallback result.
type Summarizer struct {
	client *genai.Client
	model  string
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithModel overrides DefaultModel.
func WithModel(model string) Option {
	return func(s *Summarizer) {
		s.model = model
	}
}

// NewSummarizer creates a new Summarizer. client may be nil.
func NewSummarizer(client *genai.Client, opts ...Option) *Summarizer {
	s := &Summarizer{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize asks the model for a summary of at most maxWords words.
func (s *Summarizer) Summarize(ctx context.Context, text string, maxWords int) *digest.Summary {
	if s.client == nil {
		return fallback(text, maxWords, "API key not configured")
	}

	out, err := s.generate(ctx, BuildSummaryPrompt(text, maxWords))
	if err != nil {
		return fallback(text, maxWords, err.Error())
	}
	return &digest.Summary{
		Summary: out,
		Method:  digest.MethodAbstractive,
		Model:   s.model,
	}
}

// GenerateTitle asks the model for a short headline. It returns
// DefaultTitle on any failure.
func (s *Summarizer) GenerateTitle(ctx context.Context, text string) string {
	if s.client == nil {
		return DefaultTitle
	}

	out, err := s.generate(ctx, BuildTitlePrompt(text))
	if err != nil {
		return DefaultTitle
	}
	if title := CleanTitle(out); title != "" {
		return title
	}
	return DefaultTitle
}

// ExtractKeyPoints asks the model for n single-sentence key points. It
// returns nil on any failure.
func (s *Summarizer) ExtractKeyPoints(ctx context.Context, text string, n int) []string {
	if s.client == nil || n < 1 {
		return nil
	}

	out, err := s.generate(ctx, BuildKeyPointsPrompt(text, n))
	if err != nil {
		return nil
	}
	return ParseKeyPoints(out, n)
}

func (s *Summarizer) generate(ctx context.Context, prompt string) (string, error) {
	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", digest.Errorf(digest.EINTERNAL, "gemini returned nil result")
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", digest.Errorf(digest.EUNAVAILABLE, "gemini returned an empty response")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a news editor. Be accurate and neutral. Use only information from the article provided.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildSummaryPrompt builds the summarization prompt.
func BuildSummaryPrompt(text string, maxWords int) string {
	return fmt.Sprintf(`Please provide a concise, accurate summary of the following article in %d words or less.
Focus on the key points, main events, and important information. Write in a neutral, journalistic style.

Article:
%s

Summary:`, maxWords, text)
}

// BuildTitlePrompt builds the title prompt from the start of the article.
func BuildTitlePrompt(text string) string {
	if utf8.RuneCountInString(text) > TitleContextLength {
		text = string([]rune(text)[:TitleContextLength]) + "..."
	}
	return fmt.Sprintf(`Based on the following article, generate a concise, engaging title (10 words or less).
Make it catchy and informative.

Article:
%s

Title:`, text)
}

// BuildKeyPointsPrompt builds the key points prompt.
func BuildKeyPointsPrompt(text string, n int) string {
	return fmt.Sprintf(`Extract %d key points from the following article.
Each point should be a single, clear sentence. Focus on the most important information.

Article:
%s

Key points (numbered):`, n, text)
}

// CleanTitle strips surrounding quotes and a "Title:" prefix and limits the
// result to MaxTitleLength characters.
func CleanTitle(s string) string {
	s = strings.TrimSpace(s)
	s = quoteRe.ReplaceAllString(s, "")
	s = titlePrefixRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxTitleLength {
		s = string([]rune(s)[:MaxTitleLength])
	}
	return s
}

// ParseKeyPoints returns up to n numbered or bulleted lines of s with their
// markers removed.
func ParseKeyPoints(s string, n int) []string {
	var points []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if !pointRe.MatchString(line) && !strings.HasPrefix(line, "•") && !strings.HasPrefix(line, "-") {
			continue
		}
		point := strings.TrimSpace(pointPrefixRe.ReplaceAllString(line, ""))
		if point == "" {
			continue
		}
		points = append(points, point)
		if len(points) == n {
			break
		}
	}
	return points
}

// FallbackSummary returns the first FallbackSentences sentences of text,
// cut to maxWords words.
func FallbackSummary(text string, maxWords int) string {
	var sentences []string
	for _, s := range sentenceSplitRe.Split(strings.TrimSpace(text), -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return NoSummaryMessage
	}
	if len(sentences) > FallbackSentences {
		sentences = sentences[:FallbackSentences]
	}

	summary := strings.Join(sentences, ". ") + "."
	if words := strings.Fields(summary); maxWords > 0 && len(words) > maxWords {
		summary = strings.Join(words[:maxWords], " ") + "..."
	}
	return summary
}

func fallback(text string, maxWords int, reason string) *digest.Summary {
	return &digest.Summary{
		Summary: FallbackSummary(text, maxWords),
		Method:  digest.MethodFallback,
		Error:   reason,
	}
}
