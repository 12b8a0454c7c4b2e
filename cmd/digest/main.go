package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/analyze"
	"github.com/fwojciec/digest/bloom"
	"github.com/fwojciec/digest/gemini"
	digestgin "github.com/fwojciec/digest/gin"
	"github.com/fwojciec/digest/gofeed"
	"github.com/fwojciec/digest/goquery"
	"github.com/fwojciec/digest/htmltomarkdown"
	digesthttp "github.com/fwojciec/digest/http"
	"github.com/fwojciec/digest/rank"
	"github.com/fwojciec/digest/readability"
	"github.com/fwojciec/digest/rod"
	"github.com/fwojciec/digest/scrape"
	"github.com/fwojciec/digest/sentences"
	digestslog "github.com/fwojciec/digest/slog"
	"github.com/fwojciec/digest/snowball"
	"github.com/fwojciec/digest/sqlite"
	"github.com/fwojciec/digest/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database holding report history.
	DB *sqlite.DB

	// Services for end-to-end testing. When set they replace the real ones.
	Analyzer Analyzer
	Reports  digest.ReportService
	Feeds    digest.FeedReader

	closers []io.Closer
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var errs []error
	for i := len(m.closers) - 1; i >= 0; i-- {
		errs = append(errs, m.closers[i].Close())
	}
	m.closers = nil
	return errors.Join(errs...)
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("digest"),
		kong.Description("Summarize news articles and extract their keywords."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'digest --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}
	deps.JSON = cli.JSON

	if err := m.wire(ctx, cli, deps); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}
	defer m.Close()

	return kongCtx.Run(deps)
}

// wire builds the services the commands need.
func (m *Main) wire(ctx context.Context, cli *CLI, deps *Dependencies) error {
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))

	if m.Reports == nil {
		path := cli.DB
		if path == "" {
			path = defaultDBPath()
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Set DIGEST_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		m.closers = append(m.closers, m.DB)
		m.Reports = sqlite.NewReportService(m.DB)
	}
	deps.Reports = m.Reports

	var fetcher digest.Fetcher
	if m.Analyzer == nil || m.Feeds == nil {
		var err error
		fetcher, err = newFetcher(cli)
		if err != nil {
			return err
		}
		m.closers = append(m.closers, fetcher)
		fetcher = digestslog.NewLoggingFetcher(fetcher, logger)
	}

	if m.Feeds == nil {
		m.Feeds = gofeed.NewReader(fetcher)
	}
	deps.Feeds = m.Feeds

	normalizer := snowball.NewNormalizer()
	segmenter, err := sentences.NewSegmenter()
	if err != nil {
		return fmt.Errorf("failed to load sentence tokenizer: %w", err)
	}
	summarizer := digestslog.NewLoggingSummarizer(rank.NewSummarizer(segmenter, normalizer), logger)
	keywords := digestslog.NewLoggingKeywordExtractor(rank.NewKeywordEngine(segmenter, normalizer), logger)

	if m.Analyzer == nil {
		a := &analyze.Analyzer{
			Source: &scrape.Scraper{
				Fetcher: fetcher,
				Extractors: []digest.Extractor{
					digestslog.NewLoggingExtractor(trafilatura.NewExtractor(), logger),
					digestslog.NewLoggingExtractor(readability.NewExtractor(), logger),
					digestslog.NewLoggingExtractor(goquery.NewExtractor(nil), logger),
				},
				Converter:   htmltomarkdown.NewConverter(),
				RateLimiter: scrape.NewDomainLimiter(cli.RPS),
				Logger:      logger,
			},
			Summarizer:    summarizer,
			Keywords:      keywords,
			Reports:       m.Reports,
			SentenceCount: cli.Sentences,
			KeywordCount:  cli.Keywords,
			SummaryWords:  cli.MaxWords,
			Concurrency:   cli.Concurrency,
		}

		abstract, err := newAbstractSummarizer(ctx, cli.GeminiKey)
		if err != nil {
			return err
		}
		a.Abstract = digestslog.NewLoggingAbstractiveSummarizer(abstract, logger)

		if cli.Feed.SkipKnown {
			known, err := LoadKnownURLs(ctx, m.Reports)
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}
			a.Known = known
		}

		if tc, err := gemini.NewTokenCounter(gemini.DefaultModel); err == nil {
			a.TokenCounter = tc
		} else {
			logger.Warn("token counting disabled", "err", err)
		}
		m.Analyzer = a
	}
	deps.Analyzer = m.Analyzer

	server := digestgin.NewServer()
	server.Addr = cli.Serve.Addr
	server.Analyzer = m.Analyzer
	server.Summarizer = summarizer
	server.Keywords = keywords
	server.Reports = m.Reports
	server.Logger = logger
	deps.Server = server

	return nil
}

func newFetcher(cli *CLI) (digest.Fetcher, error) {
	if cli.Browser {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return f, nil
	}
	return digesthttp.NewFetcher(digesthttp.WithTimeout(cli.Timeout)), nil
}

// newAbstractSummarizer returns a Gemini summarizer. Without an API key it
// still works but always falls back to a lead-sentence excerpt.
func newAbstractSummarizer(ctx context.Context, apiKey string) (*gemini.Summarizer, error) {
	if apiKey == "" {
		return gemini.NewSummarizer(nil), nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Gemini API (check GEMINI_API_KEY): %w", err)
	}
	return gemini.NewSummarizer(client), nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "digest.db"
	}
	dir := filepath.Join(home, ".digest")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "digest.db")
}

// knownHeadroom sizes the known-URL filter for articles added this run.
const knownHeadroom = 1000

// LoadKnownURLs fills a filter with the URLs of saved reports. It returns nil
// when reports cannot list its URLs.
func LoadKnownURLs(ctx context.Context, reports digest.ReportService) (*bloom.Filter, error) {
	lister, ok := reports.(interface {
		ReportURLs(ctx context.Context) ([]string, error)
	})
	if !ok {
		return nil, nil
	}
	urls, err := lister.ReportURLs(ctx)
	if err != nil {
		return nil, err
	}

	known := bloom.NewFilter(uint(len(urls)+knownHeadroom), 0.001)
	for _, u := range urls {
		known.Seen(u)
	}
	return known, nil
}
