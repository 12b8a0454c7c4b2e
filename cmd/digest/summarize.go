package main

import (
	"fmt"

	"github.com/fwojciec/digest"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	report, err := deps.Analyzer.AnalyzeURL(deps.Ctx, c.URL)
	if report == nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", digest.FriendlyError(err))
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "warning: report not saved: %s\n", digest.ErrorMessage(err))
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, report)
	}
	printReport(deps.Stdout, report)
	return nil
}
