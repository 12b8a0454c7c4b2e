package mock

import (
	"context"

	"github.com/fwojciec/digest"
)

var _ digest.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of digest.ReportService.
type ReportService struct {
	CreateReportFn   func(ctx context.Context, report *digest.Report) error
	FindReportByIDFn func(ctx context.Context, id string) (*digest.Report, error)
	FindReportsFn    func(ctx context.Context, filter digest.ReportFilter) ([]*digest.Report, error)
	DeleteReportFn   func(ctx context.Context, id string) error
}

func (s *ReportService) CreateReport(ctx context.Context, report *digest.Report) error {
	return s.CreateReportFn(ctx, report)
}

func (s *ReportService) FindReportByID(ctx context.Context, id string) (*digest.Report, error) {
	return s.FindReportByIDFn(ctx, id)
}

func (s *ReportService) FindReports(ctx context.Context, filter digest.ReportFilter) ([]*digest.Report, error) {
	return s.FindReportsFn(ctx, filter)
}

func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	return s.DeleteReportFn(ctx, id)
}
