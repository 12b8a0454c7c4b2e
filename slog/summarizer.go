package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/digest"
)

// Ensure LoggingSummarizer implements digest.ExtractiveSummarizer.
var _ digest.ExtractiveSummarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps an ExtractiveSummarizer with logging.
type LoggingSummarizer struct {
	next   digest.ExtractiveSummarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next digest.ExtractiveSummarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates and logs the method used. Fallbacks log at warn level.
func (s *LoggingSummarizer) Summarize(text string, sentenceCount int) (summary *digest.Summary) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if summary.Degraded() {
			level = slog.LevelWarn
		}
		s.logger.Log(context.Background(), level, "extractive summary",
			"method", summary.Method,
			"sentences", summary.OriginalSentenceCount,
			"selected", summary.SummarySentenceCount,
			"duration", time.Since(begin),
			"err", summary.Error,
		)
	}(time.Now())
	return s.next.Summarize(text, sentenceCount)
}

// Ensure LoggingKeywordExtractor implements digest.KeywordExtractor.
var _ digest.KeywordExtractor = (*LoggingKeywordExtractor)(nil)

// LoggingKeywordExtractor wraps a KeywordExtractor with logging.
type LoggingKeywordExtractor struct {
	next   digest.KeywordExtractor
	logger *slog.Logger
}

// NewLoggingKeywordExtractor creates a new LoggingKeywordExtractor.
func NewLoggingKeywordExtractor(next digest.KeywordExtractor, logger *slog.Logger) *LoggingKeywordExtractor {
	return &LoggingKeywordExtractor{next: next, logger: logger}
}

// Extract delegates and logs the number of keywords found.
func (e *LoggingKeywordExtractor) Extract(text string, keywordCount int) (kw *digest.Keywords) {
	defer func(begin time.Time) {
		e.logger.Info("keywords",
			"count", len(kw.Keywords),
			"duration", time.Since(begin),
			"err", kw.Error,
		)
	}(time.Now())
	return e.next.Extract(text, keywordCount)
}

// Ensure LoggingAbstractiveSummarizer implements digest.AbstractiveSummarizer.
var _ digest.AbstractiveSummarizer = (*LoggingAbstractiveSummarizer)(nil)

// LoggingAbstractiveSummarizer wraps an AbstractiveSummarizer with logging.
type LoggingAbstractiveSummarizer struct {
	next   digest.AbstractiveSummarizer
	logger *slog.Logger
}

// NewLoggingAbstractiveSummarizer creates a new LoggingAbstractiveSummarizer.
func NewLoggingAbstractiveSummarizer(next digest.AbstractiveSummarizer, logger *slog.Logger) *LoggingAbstractiveSummarizer {
	return &LoggingAbstractiveSummarizer{next: next, logger: logger}
}

// Summarize delegates and logs the method and model used.
func (s *LoggingAbstractiveSummarizer) Summarize(ctx context.Context, text string, maxWords int) (summary *digest.Summary) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if summary.Degraded() {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "abstractive summary",
			"method", summary.Method,
			"model", summary.Model,
			"duration", time.Since(begin),
			"err", summary.Error,
		)
	}(time.Now())
	return s.next.Summarize(ctx, text, maxWords)
}

// GenerateTitle delegates and logs the generated title.
func (s *LoggingAbstractiveSummarizer) GenerateTitle(ctx context.Context, text string) (title string) {
	defer func(begin time.Time) {
		s.logger.Info("generate title", "title", title, "duration", time.Since(begin))
	}(time.Now())
	return s.next.GenerateTitle(ctx, text)
}

// ExtractKeyPoints delegates and logs the number of points.
func (s *LoggingAbstractiveSummarizer) ExtractKeyPoints(ctx context.Context, text string, n int) (points []string) {
	defer func(begin time.Time) {
		s.logger.Info("key points", "count", len(points), "duration", time.Since(begin))
	}(time.Now())
	return s.next.ExtractKeyPoints(ctx, text, n)
}
