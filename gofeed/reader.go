// Package gofeed reads RSS and Atom feeds using mmcdole/gofeed.
package gofeed

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/digest"
	"github.com/mmcdole/gofeed"
)

// Compile-time interface verification.
var _ digest.FeedReader = (*Reader)(nil)

// MaxExcerptLength bounds the excerpt kept for each item, in runes.
const MaxExcerptLength = 300

// Reader implements digest.FeedReader. Feeds are downloaded with the same
// Fetcher used for articles, so they share its user agents and retries.
type Reader struct {
	fetcher digest.Fetcher
	parser  *gofeed.Parser
}

// NewReader creates a Reader that downloads feeds with fetcher.
func NewReader(fetcher digest.Fetcher) *Reader {
	return &Reader{fetcher: fetcher, parser: gofeed.NewParser()}
}

// ReadFeed returns the items of the feed at url that have a link, newest first.
// Items without a publication date keep their feed order after dated ones.
func (r *Reader) ReadFeed(ctx context.Context, url string) ([]*digest.FeedItem, error) {
	if err := digest.ValidateURL(url); err != nil {
		return nil, err
	}

	body, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching feed %s: %w", url, err)
	}

	feed, err := r.parser.ParseString(body)
	if err != nil {
		return nil, digest.Errorf(digest.EINVALID, "could not parse feed: %v", err)
	}

	items := make([]*digest.FeedItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		link := strings.TrimSpace(it.Link)
		if link == "" {
			continue
		}
		item := &digest.FeedItem{
			Title:   strings.TrimSpace(it.Title),
			Link:    link,
			Excerpt: excerpt(it),
		}
		switch {
		case it.PublishedParsed != nil:
			item.Published = *it.PublishedParsed
		case it.UpdatedParsed != nil:
			item.Published = *it.UpdatedParsed
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Published, items[j].Published
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.After(b)
	})

	return items, nil
}

// excerpt returns the item's description or content as plain text.
func excerpt(item *gofeed.Item) string {
	raw := item.Description
	if raw == "" {
		raw = item.Content
	}
	if raw == "" {
		return ""
	}

	text := raw
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw)); err == nil {
		text = doc.Text()
	}
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) > MaxExcerptLength {
		return strings.TrimSpace(string(runes[:MaxExcerptLength])) + "..."
	}
	return text
}
