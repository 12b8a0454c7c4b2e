package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		report  *digest.Report
		want    string
		wantErr bool
	}{
		{
			name:   "article path under host",
			report: &digest.Report{URL: "https://news.example.com/world/storm"},
			want:   filepath.Join("news.example.com", "world", "storm.md"),
		},
		{
			name:   "trailing slash is dropped",
			report: &digest.Report{URL: "https://news.example.com/world/storm/"},
			want:   filepath.Join("news.example.com", "world", "storm.md"),
		},
		{
			name:   "root path becomes index",
			report: &digest.Report{URL: "https://News.Example.com/"},
			want:   filepath.Join("news.example.com", "index.md"),
		},
		{
			name:   "html extension is replaced",
			report: &digest.Report{URL: "https://news.example.com/2025/storm.html?ref=rss#top"},
			want:   filepath.Join("news.example.com", "2025", "storm.md"),
		},
		{
			name:   "dotted slugs are kept",
			report: &digest.Report{URL: "https://news.example.com/v1.2-release"},
			want:   filepath.Join("news.example.com", "v1.2-release.md"),
		},
		{
			name:   "text report by ID",
			report: &digest.Report{ID: "abc-123"},
			want:   filepath.Join("text", "abc-123.md"),
		},
		{
			name:    "text report without ID",
			report:  &digest.Report{},
			wantErr: true,
		},
		{
			name:    "URL without host",
			report:  &digest.Report{URL: "/relative/path"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.ReportPath(tt.report)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, digest.EINVALID, digest.ErrorCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func testReport() *digest.Report {
	return &digest.Report{
		ID:        "report-1",
		URL:       "https://news.example.com/world/storm",
		Title:     "Storm Floods Coastal Towns",
		CreatedAt: time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC),
		Article: &digest.Article{
			Authors:     []string{"Jane Reporter"},
			PublishDate: "2025-06-02",
			Text:        "Plain text body.",
			Markdown:    "The storm **flooded** the coast.",
		},
		Extractive: &digest.Summary{Summary: "The storm flooded the coast.", Method: digest.MethodExtractive},
		Keywords:   &digest.Keywords{Keywords: []digest.Keyword{{Term: "storm"}, {Term: "coast"}}},
		Abstract:   &digest.Summary{Summary: "A storm hit.", Method: digest.MethodAbstractive},
	}
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	t.Run("writes frontmatter and sections", func(t *testing.T) {
		t.Parallel()

		got := fs.FormatReport(testReport())

		assert.Equal(t, `---
source: https://news.example.com/world/storm
title: "Storm Floods Coastal Towns"
report: report-1
analyzed: 2025-06-03
authors: ["Jane Reporter"]
published: 2025-06-02
keywords: ["storm", "coast"]
---

# Storm Floods Coastal Towns

## AI summary

A storm hit.

## Summary

The storm flooded the coast.

## Article

The storm **flooded** the coast.
`, got)
	})

	t.Run("omits fallback AI summary and uses text without markdown", func(t *testing.T) {
		t.Parallel()

		r := testReport()
		r.Abstract = &digest.Summary{Summary: "Lead sentence.", Method: digest.MethodFallback}
		r.Article.Markdown = ""

		got := fs.FormatReport(r)

		assert.NotContains(t, got, "## AI summary")
		assert.Contains(t, got, "## Article\n\nPlain text body.\n")
	})
}

func TestWriter_WriteReport(t *testing.T) {
	t.Parallel()

	t.Run("writes report file", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		w := fs.NewWriter(base)

		path, err := w.WriteReport(context.Background(), testReport())
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(base, "news.example.com", "world", "storm.md"), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "# Storm Floods Coastal Towns")

		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err), "temporary file should be renamed")
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		w := fs.NewWriter(base)
		r := testReport()
		_, err := w.WriteReport(context.Background(), r)
		require.NoError(t, err)

		r.Title = "Updated Title"
		path, err := w.WriteReport(context.Background(), r)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "# Updated Title")
	})

	t.Run("returns error for invalid report", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteReport(context.Background(), &digest.Report{})

		assert.Equal(t, digest.EINVALID, digest.ErrorCode(err))
	})

	t.Run("returns context error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewWriter(t.TempDir()).WriteReport(ctx, testReport())

		require.ErrorIs(t, err, context.Canceled)
	})
}
