// Package readability implements digest.Extractor with go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/digest"
	"github.com/go-shiori/go-readability"
)

// Method is the extraction method name reported in results.
const Method = "readability"

// Ensure Extractor implements digest.Extractor at compile time.
var _ digest.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract article content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article body and metadata.
func (e *Extractor) Extract(rawHTML, pageURL string) (*digest.ExtractResult, error) {
	if rawHTML == "" {
		return nil, digest.Errorf(digest.EINVALID, "empty HTML input")
	}

	var u *url.URL
	if parsed, err := url.Parse(pageURL); err == nil && parsed.Host != "" {
		u = parsed
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), u)
	if err != nil {
		return nil, err
	}

	out := &digest.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
		Text:        strings.TrimSpace(article.TextContent),
		Authors:     []string{},
		Method:      Method,
	}
	if byline := strings.TrimSpace(article.Byline); byline != "" {
		out.Authors = append(out.Authors, strings.TrimPrefix(byline, "By "))
	}
	if article.PublishedTime != nil {
		out.PublishDate = article.PublishedTime.Format("2006-01-02")
	}
	return out, nil
}
