package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/analyze"
)

// Analyzer runs the analysis pipeline. Satisfied by *analyze.Analyzer.
type Analyzer interface {
	AnalyzeURL(ctx context.Context, url string) (*digest.Report, error)
	AnalyzeText(ctx context.Context, title, text string) (*digest.Report, error)
	AnalyzeAll(ctx context.Context, urls []string, progress analyze.ProgressFunc) (*analyze.Result, error)
}

// Server serves the HTTP API until closed.
type Server interface {
	Open() error
	Close() error
	URL() string
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	JSON     bool
	Analyzer Analyzer
	Reports  digest.ReportService
	Feeds    digest.FeedReader
	Server   Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB          string        `name:"db" env:"DIGEST_DB" help:"History database path"`
	GeminiKey   string        `name:"gemini-key" env:"GEMINI_API_KEY" help:"Gemini API key for AI summaries"`
	JSON        bool          `name:"json" help:"Print results as JSON"`
	Verbose     bool          `short:"v" help:"Log pipeline steps to stderr"`
	Browser     bool          `help:"Fetch pages with headless Chrome"`
	Sentences   int           `default:"5" help:"Sentences in the extractive summary"`
	Keywords    int           `default:"10" help:"Number of keywords"`
	MaxWords    int           `name:"max-words" default:"150" help:"Word limit of the AI summary"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent article limit"`
	RPS         float64       `name:"rps" default:"1" help:"Requests per second per domain"`
	Timeout     time.Duration `default:"15s" help:"Fetch timeout per page"`

	Summarize SummarizeCmd `cmd:"" help:"Summarize the article at a URL"`
	Text      TextCmd      `cmd:"" help:"Summarize text from a file or stdin"`
	Feed      FeedCmd      `cmd:"" help:"Summarize the latest articles of an RSS or Atom feed"`
	History   HistoryCmd   `cmd:"" help:"List saved reports"`
	Show      ShowCmd      `cmd:"" help:"Show a saved report"`
	Export    ExportCmd    `cmd:"" help:"Export a saved report as Markdown"`
	Serve     ServeCmd     `cmd:"" help:"Serve the HTTP API"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL string `arg:"" help:"Article URL"`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	File  string `arg:"" optional:"" default:"-" help:"File to read, or - for stdin"`
	Title string `short:"t" help:"Title of the text"`
}

// FeedCmd is the "feed" subcommand.
type FeedCmd struct {
	URL   string `arg:"" help:"Feed URL"`
	Limit int    `short:"n" default:"5" help:"Maximum number of articles"`
	Out   string `short:"o" help:"Also write each report as Markdown below this directory"`

	SkipKnown bool `name:"skip-known" help:"Skip articles that already have a saved report"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL   string `help:"Only reports for this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of reports"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Report ID"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID  string `arg:"" help:"Report ID"`
	Dir string `short:"o" default:"." help:"Output directory"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `env:"DIGEST_ADDR" default:"127.0.0.1:8000" help:"Listen address"`
}
