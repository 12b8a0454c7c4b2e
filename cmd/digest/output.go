package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/digest"
)

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printReport prints a human-readable report.
func printReport(w io.Writer, r *digest.Report) {
	fmt.Fprintln(w, r.Title)
	if r.URL != "" {
		fmt.Fprintln(w, r.URL)
	}

	if a := r.Article; a != nil {
		meta := []string{fmt.Sprintf("%d words", a.WordCount)}
		if len(a.Authors) > 0 {
			meta = append(meta, "by "+strings.Join(a.Authors, ", "))
		}
		if a.PublishDate != "" {
			meta = append(meta, a.PublishDate)
		}
		if r.Tokens > 0 {
			meta = append(meta, fmt.Sprintf("%d tokens", r.Tokens))
		}
		fmt.Fprintln(w, strings.Join(meta, " | "))
	}

	if s := r.Extractive; s != nil {
		fmt.Fprintf(w, "\nSummary (%s, %d of %d sentences):\n", s.Method, s.SummarySentenceCount, s.OriginalSentenceCount)
		fmt.Fprintln(w, indent(s.Summary))
	}
	if s := r.Abstract; s != nil {
		fmt.Fprintf(w, "\nAI summary (%s):\n", s.Method)
		fmt.Fprintln(w, indent(s.Summary))
	}
	if k := r.Keywords; k != nil && len(k.Keywords) > 0 {
		fmt.Fprintf(w, "\nKeywords: %s\n", strings.Join(k.Terms(), ", "))
	}
	if v := r.Validation; v != nil {
		for _, msg := range v.Errors {
			fmt.Fprintf(w, "Validation error: %s\n", msg)
		}
		for _, msg := range v.Warnings {
			fmt.Fprintf(w, "Warning: %s\n", msg)
		}
	}
	if r.ID != "" {
		fmt.Fprintf(w, "\nReport: %s\n", r.ID)
	}
}

func indent(text string) string {
	return "  " + strings.ReplaceAll(strings.TrimSpace(text), "\n", "\n  ")
}
