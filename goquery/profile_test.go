package goquery_test

import (
	"testing"

	"github.com/fwojciec/digest/goquery"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_ForHost(t *testing.T) {
	t.Parallel()

	t.Run("puts matching profile selectors before generic ones", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry(
			goquery.Profile{Content: []string{"article"}},
			goquery.Profile{Domain: "journal.org", Content: []string{".paper"}},
		)

		got := r.ForHost("www.journal.org")

		assert.Equal(t, []string{".paper", "article"}, got.Content)
	})

	t.Run("uses only generic selectors for unknown hosts", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry(
			goquery.Profile{Content: []string{"article"}},
			goquery.Profile{Domain: "journal.org", Content: []string{".paper"}},
		)

		got := r.ForHost("example.com")

		assert.Equal(t, []string{"article"}, got.Content)
	})

	t.Run("earlier profiles win", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry(goquery.Profile{})
		r.Register(goquery.Profile{Domain: "news.org", Title: []string{".first"}})
		r.Register(goquery.Profile{Domain: "news.org", Title: []string{".second"}})

		got := r.ForHost("news.org")

		assert.Equal(t, []string{".first"}, got.Title)
	})

	t.Run("default registry knows arxiv", func(t *testing.T) {
		t.Parallel()

		got := goquery.DefaultRegistry().ForHost("arxiv.org")

		assert.Equal(t, ".abstract", got.Content[0])
		assert.Contains(t, got.Content, "article")
	})
}
