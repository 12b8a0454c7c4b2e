package digest

import (
	"context"
	"time"
)

// FeedItem is one entry of an RSS or Atom feed.
type FeedItem struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Excerpt   string    `json:"excerpt,omitempty"`
	Published time.Time `json:"published,omitempty"`
}

// FeedReader reads syndication feeds.
type FeedReader interface {
	// ReadFeed returns the items of the feed at url, newest first.
	ReadFeed(ctx context.Context, url string) ([]*FeedItem, error)
}
