package mock

import (
	"context"

	"github.com/fwojciec/digest"
)

var (
	_ digest.ArticleSource = (*ArticleSource)(nil)
	_ digest.DomainLimiter = (*DomainLimiter)(nil)
	_ digest.FeedReader    = (*FeedReader)(nil)
)

// ArticleSource is a mock implementation of digest.ArticleSource.
type ArticleSource struct {
	ScrapeFn func(ctx context.Context, url string) (*digest.Article, error)
}

func (s *ArticleSource) Scrape(ctx context.Context, url string) (*digest.Article, error) {
	return s.ScrapeFn(ctx, url)
}

// DomainLimiter is a mock implementation of digest.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

// FeedReader is a mock implementation of digest.FeedReader.
type FeedReader struct {
	ReadFeedFn func(ctx context.Context, url string) ([]*digest.FeedItem, error)
}

func (r *FeedReader) ReadFeed(ctx context.Context, url string) ([]*digest.FeedItem, error) {
	return r.ReadFeedFn(ctx, url)
}
