// Package scrape turns article URLs into digest.Articles. It coordinates
// URL validation, per-domain rate limiting, fetching with retry, a chain of
// content extractors, and Markdown rendering.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/digest"
)

var _ digest.ArticleSource = (*Scraper)(nil)

// Scraper fetches and extracts articles.
type Scraper struct {
	Fetcher digest.Fetcher

	// Extractors are tried in order; the first valid result wins.
	Extractors []digest.Extractor

	// Converter renders the extracted HTML as Markdown. Optional.
	Converter digest.Converter

	// RateLimiter throttles requests per domain. Optional.
	RateLimiter digest.DomainLimiter

	// RetryDelays overrides DefaultRetryDelays.
	RetryDelays []time.Duration

	Logger *slog.Logger
}

// Scrape validates rawURL, fetches it and returns the first extraction that
// has a title and at least digest.MinArticleChars characters of text.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*digest.Article, error) {
	if err := digest.ValidateURL(rawURL); err != nil {
		return nil, err
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, digest.Errorf(digest.EINVALID, "invalid URL: %v", err)
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, rawURL, s.Fetcher.Fetch, s.Logger, delays)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}

	for _, ext := range s.Extractors {
		res, err := ext.Extract(html, rawURL)
		if err != nil {
			s.debug("extractor failed", "url", rawURL, "err", err)
			continue
		}
		if !valid(res) {
			s.debug("extraction rejected", "url", rawURL, "method", res.Method, "chars", len(strings.TrimSpace(res.Text)))
			continue
		}
		return s.article(u, res), nil
	}

	return nil, digest.Errorf(digest.EINVALID, "could not extract valid article content")
}

func (s *Scraper) article(u *url.URL, res *digest.ExtractResult) *digest.Article {
	text := strings.TrimSpace(res.Text)
	authors := res.Authors
	if authors == nil {
		authors = []string{}
	}

	a := &digest.Article{
		URL:         u.String(),
		Domain:      u.Host,
		Title:       strings.TrimSpace(res.Title),
		Text:        text,
		Authors:     authors,
		PublishDate: res.PublishDate,
		WordCount:   len(strings.Fields(text)),
		Method:      res.Method,
	}
	if s.Converter != nil && res.ContentHTML != "" {
		md, err := s.Converter.Convert(res.ContentHTML)
		if err == nil {
			a.Markdown = md
		} else {
			s.debug("markdown conversion failed", "url", a.URL, "err", err)
		}
	}
	return a
}

func (s *Scraper) debug(msg string, args ...any) {
	if s.Logger != nil {
		s.Logger.Debug(msg, args...)
	}
}

func valid(res *digest.ExtractResult) bool {
	return res != nil &&
		strings.TrimSpace(res.Title) != "" &&
		len(strings.TrimSpace(res.Text)) >= digest.MinArticleChars
}
