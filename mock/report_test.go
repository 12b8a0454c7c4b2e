package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_CreateReport(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateReportFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *digest.Report
		s := &mock.ReportService{
			CreateReportFn: func(_ context.Context, r *digest.Report) error {
				calledWith = r
				return nil
			},
		}

		report := &digest.Report{URL: "https://example.com/news/a", Title: "A"}

		err := s.CreateReport(context.Background(), report)

		require.NoError(t, err)
		assert.Equal(t, report, calledWith)
	})
}
