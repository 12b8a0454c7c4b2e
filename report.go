package digest

import (
	"context"
	"time"
)

// Report bundles everything produced for one analyzed article.
type Report struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	ContentHash string    `json:"contentHash"`
	Tokens      int       `json:"tokens,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`

	Article    *Article           `json:"article"`
	Extractive *Summary           `json:"extractiveSummary"`
	Keywords   *Keywords          `json:"keywords"`
	Abstract   *Summary           `json:"aiSummary,omitempty"`
	Validation *ContentValidation `json:"validation,omitempty"`
}

// Validate returns an error if the report contains invalid fields.
func (r *Report) Validate() error {
	if r.Article == nil {
		return Errorf(EINVALID, "report article required")
	}
	if r.Extractive == nil {
		return Errorf(EINVALID, "report extractive summary required")
	}
	if r.Keywords == nil {
		return Errorf(EINVALID, "report keywords required")
	}
	return nil
}

// ReportService represents a service for managing analysis reports.
type ReportService interface {
	// CreateReport stores a new report, assigning its ID, content hash and
	// creation time.
	CreateReport(ctx context.Context, report *Report) error

	// FindReportByID retrieves a report by ID.
	// Returns ENOTFOUND if the report does not exist.
	FindReportByID(ctx context.Context, id string) (*Report, error)

	// FindReports retrieves reports matching the filter, newest first.
	FindReports(ctx context.Context, filter ReportFilter) ([]*Report, error)

	// DeleteReport permanently removes a report.
	// Returns ENOTFOUND if the report does not exist.
	DeleteReport(ctx context.Context, id string) error
}

// ReportFilter represents a filter for FindReports.
type ReportFilter struct {
	ID          *string `json:"id"`
	URL         *string `json:"url"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ReportWriter exports reports outside the history database.
type ReportWriter interface {
	// WriteReport writes report and returns where it was written.
	WriteReport(ctx context.Context, report *Report) (string, error)
}

// TokenCounter counts the tokens a model would see for text. Reports record
// the count so users can judge the cost of a generated summary.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
