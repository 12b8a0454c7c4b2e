package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/mock"
	digestslog "github.com/fwojciec/digest/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("logs method and counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ExtractiveSummarizer{
			SummarizeFn: func(text string, n int) *digest.Summary {
				return &digest.Summary{Method: digest.MethodExtractive, OriginalSentenceCount: 7, SummarySentenceCount: 3}
			},
		}

		s := digestslog.NewLoggingSummarizer(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		got := s.Summarize("text", 3)

		assert.Equal(t, digest.MethodExtractive, got.Method)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "method=extractive")
		assert.Contains(t, output, "sentences=7")
		assert.Contains(t, output, "selected=3")
	})

	t.Run("logs fallbacks as warnings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ExtractiveSummarizer{
			SummarizeFn: func(text string, n int) *digest.Summary {
				return &digest.Summary{Method: digest.MethodFallback, Error: "text is empty"}
			},
		}

		s := digestslog.NewLoggingSummarizer(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		s.Summarize("", 3)

		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "err=\"text is empty\"")
	})
}

func TestLoggingKeywordExtractor_Extract(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.KeywordExtractor{
		ExtractFn: func(text string, n int) *digest.Keywords {
			return &digest.Keywords{Keywords: []digest.Keyword{{Term: "storm", Score: 1}}}
		},
	}

	e := digestslog.NewLoggingKeywordExtractor(inner, slog.New(slog.NewTextHandler(&buf, nil)))
	got := e.Extract("storm", 5)

	assert.Equal(t, []string{"storm"}, got.Terms())
	assert.Contains(t, buf.String(), "count=1")
}

func TestLoggingAbstractiveSummarizer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.AbstractiveSummarizer{
		SummarizeFn: func(ctx context.Context, text string, maxWords int) *digest.Summary {
			return &digest.Summary{Method: digest.MethodAbstractive, Model: "gemini-2.5-flash"}
		},
		GenerateTitleFn: func(ctx context.Context, text string) string {
			return "Storm Floods Towns"
		},
		ExtractKeyPointsFn: func(ctx context.Context, text string, n int) []string {
			return []string{"a", "b"}
		},
	}

	s := digestslog.NewLoggingAbstractiveSummarizer(inner, slog.New(slog.NewTextHandler(&buf, nil)))
	ctx := context.Background()

	assert.Equal(t, digest.MethodAbstractive, s.Summarize(ctx, "text", 100).Method)
	assert.Equal(t, "Storm Floods Towns", s.GenerateTitle(ctx, "text"))
	assert.Len(t, s.ExtractKeyPoints(ctx, "text", 2), 2)

	output := buf.String()
	assert.Contains(t, output, "model=gemini-2.5-flash")
	assert.Contains(t, output, "title=\"Storm Floods Towns\"")
	assert.Contains(t, output, "count=2")
}
