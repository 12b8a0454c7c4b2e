package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/digest"
)

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	text, err := c.read(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	report, err := deps.Analyzer.AnalyzeText(deps.Ctx, c.Title, text)
	if report == nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", digest.ErrorMessage(err))
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

func (c *TextCmd) read(stdin io.Reader) (string, error) {
	if c.File == "" || c.File == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(c.File)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", c.File, err)
	}
	return string(b), nil
}
