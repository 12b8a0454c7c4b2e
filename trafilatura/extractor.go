// Package trafilatura implements digest.Extractor with go-trafilatura.
package trafilatura

import (
	"bytes"
	"errors"
	"net/url"
	"strings"

	"github.com/fwojciec/digest"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Method is the extraction method name reported in results.
const Method = "trafilatura"

// Ensure Extractor implements digest.Extractor at compile time.
var _ digest.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract article content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article body and metadata.
func (e *Extractor) Extract(rawHTML, pageURL string) (*digest.ExtractResult, error) {
	if rawHTML == "" {
		return nil, errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	out := &digest.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		ContentHTML: contentHTML,
		Text:        strings.TrimSpace(result.ContentText),
		Authors:     splitAuthors(result.Metadata.Author),
		Method:      Method,
	}
	if !result.Metadata.Date.IsZero() {
		out.PublishDate = result.Metadata.Date.Format("2006-01-02")
	}
	return out, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// splitAuthors splits trafilatura's semicolon-joined author list.
func splitAuthors(s string) []string {
	authors := []string{}
	for _, a := range strings.Split(s, ";") {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}
	return authors
}
