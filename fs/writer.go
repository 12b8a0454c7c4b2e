// Package fs exports reports as Markdown files.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/digest"
)

// Ensure Writer implements digest.ReportWriter at compile time.
var _ digest.ReportWriter = (*Writer)(nil)

// ReportPath converts a report to a relative file path. Article reports are
// laid out by host and URL path, text reports by ID.
// Example: https://news.example.com/world/storm → news.example.com/world/storm.md
func ReportPath(report *digest.Report) (string, error) {
	if report.URL == "" {
		if report.ID == "" {
			return "", digest.Errorf(digest.EINVALID, "report needs a URL or an ID")
		}
		return filepath.Join("text", report.ID+".md"), nil
	}

	u, err := url.Parse(report.URL)
	if err != nil {
		return "", digest.Errorf(digest.EINVALID, "invalid report URL: %v", err)
	}
	if u.Host == "" {
		return "", digest.Errorf(digest.EINVALID, "report URL has no host")
	}

	path := strings.Trim(u.Path, "/")
	if path == "" {
		path = "index"
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".html", ".htm", ".php", ".asp", ".aspx", ".shtml":
		path = path[:len(path)-len(ext)]
	}
	return filepath.Join(strings.ToLower(u.Host), filepath.FromSlash(path)+".md"), nil
}

// FormatReport formats a report as Markdown with YAML frontmatter.
func FormatReport(report *digest.Report) string {
	var b strings.Builder
	b.WriteString("---\n")
	if report.URL != "" {
		fmt.Fprintf(&b, "source: %s\n", report.URL)
	}
	fmt.Fprintf(&b, "title: %q\n", report.Title)
	if report.ID != "" {
		fmt.Fprintf(&b, "report: %s\n", report.ID)
	}
	if !report.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "analyzed: %s\n", report.CreatedAt.Format("2006-01-02"))
	}
	if a := report.Article; a != nil {
		if len(a.Authors) > 0 {
			fmt.Fprintf(&b, "authors: [%s]\n", quoteAll(a.Authors))
		}
		if a.PublishDate != "" {
			fmt.Fprintf(&b, "published: %s\n", a.PublishDate)
		}
	}
	if report.Keywords != nil && len(report.Keywords.Keywords) > 0 {
		fmt.Fprintf(&b, "keywords: [%s]\n", quoteAll(report.Keywords.Terms()))
	}
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %s\n", report.Title)
	if s := report.Abstract; s != nil && !s.Degraded() && s.Summary != "" {
		fmt.Fprintf(&b, "\n## AI summary\n\n%s\n", s.Summary)
	}
	if s := report.Extractive; s != nil && s.Summary != "" {
		fmt.Fprintf(&b, "\n## Summary\n\n%s\n", s.Summary)
	}
	if a := report.Article; a != nil {
		body := a.Markdown
		if body == "" {
			body = a.Text
		}
		if body != "" {
			fmt.Fprintf(&b, "\n## Article\n\n%s\n", strings.TrimSpace(body))
		}
	}
	return b.String()
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

// Writer writes reports as Markdown files below a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteReport writes report to disk and returns the file path. The file is
// written to a temporary name and renamed, so readers never see a partial file.
func (w *Writer) WriteReport(ctx context.Context, report *digest.Report) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	relPath, err := ReportPath(report)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	tmp := fullPath + ".tmp"
	if err := os.WriteFile(tmp, []byte(FormatReport(report)), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return fullPath, nil
}
