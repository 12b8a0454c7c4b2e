// Package analyze runs the full article analysis pipeline. It coordinates
// scraping, content validation, extractive and abstractive summarization,
// keyword extraction and storage of the resulting reports.
package analyze

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/bloom"
	"golang.org/x/sync/errgroup"
)

// Pipeline defaults.
const (
	DefaultSentenceCount = 5
	DefaultKeywordCount  = 10
	DefaultSummaryWords  = 150
	DefaultConcurrency   = 4

	// MinTitleLength is the shortest scraped title kept as-is; shorter ones
	// are replaced with a generated title.
	MinTitleLength = 10
)

// Analyzer produces reports for articles. Abstract, Reports and TokenCounter
// are optional.
type Analyzer struct {
	Source       digest.ArticleSource
	Summarizer   digest.ExtractiveSummarizer
	Keywords     digest.KeywordExtractor
	Abstract     digest.AbstractiveSummarizer
	Reports      digest.ReportService
	TokenCounter digest.TokenCounter

	// Known holds URLs with stored reports, typically loaded from history.
	// AnalyzeAll skips a URL the filter knows once Reports confirms a stored
	// report for it, so a false positive only costs a lookup.
	Known *bloom.Filter

	SentenceCount int
	KeywordCount  int
	SummaryWords  int
	Concurrency   int
}

// Result holds the outcome of an AnalyzeAll operation.
type Result struct {
	Reports []*digest.Report
	Failed  int
	Skipped int
}

// ProgressEvent reports progress during AnalyzeAll.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Report    *digest.Report
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting analysis progress.
type ProgressFunc func(event ProgressEvent)

// AnalyzeURL scrapes url and analyzes its article. Scraping errors are
// returned as-is; everything after scraping degrades instead of failing.
// The report is saved when Reports is set.
func (a *Analyzer) AnalyzeURL(ctx context.Context, url string) (*digest.Report, error) {
	article, err := a.Source.Scrape(ctx, url)
	if err != nil {
		return nil, err
	}

	report := a.analyze(ctx, article)
	if err := a.save(ctx, report); err != nil {
		return report, err
	}
	return report, nil
}

// AnalyzeText analyzes raw text. When a report for identical text is already
// stored it is returned instead of running the pipeline again.
func (a *Analyzer) AnalyzeText(ctx context.Context, title, text string) (*digest.Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, digest.Errorf(digest.EINVALID, "text cannot be empty")
	}

	if a.Reports != nil {
		hash := HashContent(text)
		existing, err := a.Reports.FindReports(ctx, digest.ReportFilter{ContentHash: &hash, Limit: 1})
		if err != nil {
			return nil, fmt.Errorf("looking up stored report: %w", err)
		}
		if len(existing) > 0 {
			return existing[0], nil
		}
	}

	article := &digest.Article{
		Title:     strings.TrimSpace(title),
		Text:      text,
		Authors:   []string{},
		WordCount: len(strings.Fields(text)),
		Method:    "text",
	}
	report := a.analyze(ctx, article)
	if err := a.save(ctx, report); err != nil {
		return report, err
	}
	return report, nil
}

// AnalyzeAll analyzes urls concurrently. Duplicate and known URLs are
// skipped and per-URL failures are reported through progress rather than
// returned. Reports are returned in input order.
func (a *Analyzer) AnalyzeAll(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	seen := make(map[string]struct{}, len(urls))
	var unique []string
	for _, u := range urls {
		key := bloom.Canonical(u)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if a.known(ctx, u) {
			continue
		}
		unique = append(unique, u)
	}

	result := &Result{Skipped: len(urls) - len(unique)}
	total := len(unique)
	notify := func(e ProgressEvent) {
		if progress != nil {
			progress(e)
		}
	}

	notify(ProgressEvent{Type: ProgressStarted, Total: total})

	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type outcome struct {
		position int
		url      string
		report   *digest.Report
		err      error
	}
	outcomes := make(chan outcome, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range unique {
			g.Go(func() error {
				report, err := a.AnalyzeURL(gctx, u)
				outcomes <- outcome{position: i, url: u, report: report, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(outcomes)
	}()

	reports := make([]*digest.Report, total)
	var completed atomic.Int64
	for o := range outcomes {
		n := int(completed.Add(1))
		if o.err != nil {
			result.Failed++
			notify(ProgressEvent{Type: ProgressFailed, Completed: n, Total: total, URL: o.url, Error: o.err})
			continue
		}
		reports[o.position] = o.report
		if a.Known != nil {
			a.Known.Seen(o.url)
		}
		notify(ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, URL: o.url, Report: o.report})
	}

	result.Reports = make([]*digest.Report, 0, total-result.Failed)
	for _, r := range reports {
		if r != nil {
			result.Reports = append(result.Reports, r)
		}
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// known reports whether url already has a stored report.
func (a *Analyzer) known(ctx context.Context, url string) bool {
	if a.Known == nil || a.Reports == nil || !a.Known.Test(url) {
		return false
	}
	stored, err := a.Reports.FindReports(ctx, digest.ReportFilter{URL: &url, Limit: 1})
	return err == nil && len(stored) > 0
}

// analyze runs validation, summarization and keyword extraction on article.
func (a *Analyzer) analyze(ctx context.Context, article *digest.Article) *digest.Report {
	report := &digest.Report{
		URL:         article.URL,
		ContentHash: HashContent(article.Text),
		Article:     article,
		Validation:  digest.ValidateContent(article.Title, article.Text),
		Extractive:  a.Summarizer.Summarize(article.Text, orDefault(a.SentenceCount, DefaultSentenceCount)),
		Keywords:    a.Keywords.Extract(article.Text, orDefault(a.KeywordCount, DefaultKeywordCount)),
	}

	if a.Abstract != nil {
		report.Abstract = a.Abstract.Summarize(ctx, article.Text, orDefault(a.SummaryWords, DefaultSummaryWords))
		if len(strings.TrimSpace(article.Title)) < MinTitleLength {
			article.Title = a.Abstract.GenerateTitle(ctx, article.Text)
		}
	}
	report.Title = article.Title

	if a.TokenCounter != nil {
		if tokens, err := a.TokenCounter.CountTokens(ctx, article.Text); err == nil {
			report.Tokens = tokens
		}
	}

	return report
}

func (a *Analyzer) save(ctx context.Context, report *digest.Report) error {
	if a.Reports == nil {
		return nil
	}
	if err := a.Reports.CreateReport(ctx, report); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// HashContent returns the hex xxHash of text, matching the hash stored with reports.
func HashContent(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
