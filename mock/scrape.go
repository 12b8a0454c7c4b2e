package mock

import (
	"context"

	"github.com/fwojciec/digest"
)

var (
	_ digest.Fetcher   = (*Fetcher)(nil)
	_ digest.Extractor = (*Extractor)(nil)
	_ digest.Converter = (*Converter)(nil)
)

// Fetcher is a mock implementation of digest.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

// Close returns nil when CloseFn is unset since most tests never close.
func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

// Extractor is a mock implementation of digest.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*digest.ExtractResult, error)
}

func (e *Extractor) Extract(html, pageURL string) (*digest.ExtractResult, error) {
	return e.ExtractFn(html, pageURL)
}

// Converter is a mock implementation of digest.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
