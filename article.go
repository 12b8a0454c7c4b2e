package digest

import (
	"context"
	"strings"
)

// Article is a scraped news article.
type Article struct {
	URL         string   `json:"url"`
	Domain      string   `json:"domain"`
	Title       string   `json:"title"`
	Text        string   `json:"text"`
	Markdown    string   `json:"markdown,omitempty"`
	Authors     []string `json:"authors"`
	PublishDate string   `json:"publishDate,omitempty"`
	WordCount   int      `json:"wordCount"`

	// Method names the extractor that produced the article.
	Method string `json:"scraperMethod"`
}

// Validate returns an error if the article is missing required fields.
func (a *Article) Validate() error {
	if strings.TrimSpace(a.URL) == "" {
		return Errorf(EINVALID, "article URL required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return Errorf(EINVALID, "article title required")
	}
	if len(strings.TrimSpace(a.Text)) < MinArticleChars {
		return Errorf(EINVALID, "article text too short (min %d characters)", MinArticleChars)
	}
	return nil
}

// MinArticleChars is the minimum amount of text an extraction must yield.
const MinArticleChars = 100

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch returns the HTML served at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// ExtractResult holds the content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata or headings.
	Title string

	// ContentHTML is the main content as clean HTML, when available.
	ContentHTML string

	// Text is the main content as plain prose.
	Text string

	Authors     []string
	PublishDate string

	// Method names the extraction strategy that succeeded.
	Method string
}

// Extractor extracts the main article content from HTML, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML fetched from pageURL and returns the main content.
	Extract(html string, pageURL string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// ArticleSource retrieves articles by URL.
type ArticleSource interface {
	// Scrape fetches url and extracts its article.
	// Returns EINVALID if no valid article content could be extracted.
	Scrape(ctx context.Context, url string) (*Article, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
