package main

import (
	"fmt"

	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/analyze"
	"github.com/fwojciec/digest/fs"
)

// Run executes the feed command.
func (c *FeedCmd) Run(deps *Dependencies) error {
	items, err := deps.Feeds.ReadFeed(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", digest.ErrorMessage(err))
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "Feed has no articles.")
		return nil
	}

	limit := c.Limit
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}
	urls := make([]string, 0, limit)
	for _, item := range items[:limit] {
		urls = append(urls, item.Link)
	}

	progress := func(e analyze.ProgressEvent) {
		switch e.Type {
		case analyze.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", e.Completed, e.Total, e.URL, digest.FriendlyError(e.Error))
		case analyze.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", e.Completed, e.Total, e.URL)
		}
	}

	result, err := deps.Analyzer.AnalyzeAll(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if c.Out != "" {
		w := fs.NewWriter(c.Out)
		for _, report := range result.Reports {
			if _, err := w.WriteReport(deps.Ctx, report); err != nil {
				fmt.Fprintf(deps.Stderr, "error: writing %s: %s\n", report.URL, err)
				return err
			}
		}
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, result.Reports)
	}
	for i, report := range result.Reports {
		if i > 0 {
			fmt.Fprintln(deps.Stdout, "\n---")
		}
		fmt.Fprintln(deps.Stdout)
		printReport(deps.Stdout, report)
	}
	fmt.Fprintf(deps.Stdout, "\nSummarized %d of %d articles", len(result.Reports), len(urls))
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed)", result.Failed)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}
