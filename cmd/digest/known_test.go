package main_test

import (
	"context"
	"testing"

	main "github.com/fwojciec/digest/cmd/digest"
	"github.com/fwojciec/digest/mock"
	"github.com/fwojciec/digest/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKnownURLs(t *testing.T) {
	t.Parallel()

	t.Run("loads saved report URLs", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		require.NoError(t, db.Open())
		t.Cleanup(func() { db.Close() })
		reports := sqlite.NewReportService(db)
		ctx := context.Background()
		require.NoError(t, reports.CreateReport(ctx, sampleReport("https://news.example.com/storm")))

		known, err := main.LoadKnownURLs(ctx, reports)
		require.NoError(t, err)

		require.NotNil(t, known)
		assert.True(t, known.Test("https://news.example.com/storm"))
	})

	t.Run("returns nil for services that cannot list URLs", func(t *testing.T) {
		t.Parallel()

		known, err := main.LoadKnownURLs(context.Background(), &mock.ReportService{})

		require.NoError(t, err)
		assert.Nil(t, known)
	})
}
