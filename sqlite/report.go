package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/digest"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ digest.ReportService = (*ReportService)(nil)

// timeLayout keeps fractional seconds fixed-width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const reportColumns = "id, url, title, content_hash, tokens, article, extractive, keywords, abstract, validation, created_at"

// ReportService implements digest.ReportService using SQLite.
// Nested results are stored as JSON columns.
type ReportService struct {
	db *DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

// CreateReport stores a new report.
func (s *ReportService) CreateReport(ctx context.Context, report *digest.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}

	report.ID = uuid.New().String()
	report.CreatedAt = time.Now().UTC()
	report.ContentHash = HashContent(report.Article.Text)
	if report.URL == "" {
		report.URL = report.Article.URL
	}
	if report.Title == "" {
		report.Title = report.Article.Title
	}

	article, err := marshalColumn(report.Article, "article")
	if err != nil {
		return err
	}
	extractive, err := marshalColumn(report.Extractive, "extractive")
	if err != nil {
		return err
	}
	keywords, err := marshalColumn(report.Keywords, "keywords")
	if err != nil {
		return err
	}
	abstract, err := marshalColumn(report.Abstract, "abstract")
	if err != nil {
		return err
	}
	validation, err := marshalColumn(report.Validation, "validation")
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (`+reportColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, report.ID, report.URL, report.Title, report.ContentHash, report.Tokens,
		article, extractive, keywords, abstract, validation,
		report.CreatedAt.Format(timeLayout))

	return err
}

// FindReportByID retrieves a report by ID.
func (s *ReportService) FindReportByID(ctx context.Context, id string) (*digest.Report, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+reportColumns+" FROM reports WHERE id = ?", id)
	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, digest.Errorf(digest.ENOTFOUND, "report not found")
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// FindReports retrieves reports matching the filter, newest first.
func (s *ReportService) FindReports(ctx context.Context, filter digest.ReportFilter) ([]*digest.Report, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + reportColumns + " FROM reports WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []*digest.Report{}
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

// ReportURLs returns every distinct article URL that has a stored report.
func (s *ReportService) ReportURLs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT url FROM reports WHERE url != '' ORDER BY url")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	urls := []string{}
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}

// DeleteReport permanently removes a report.
func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reports WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return digest.Errorf(digest.ENOTFOUND, "report not found")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (*digest.Report, error) {
	var report digest.Report
	var article, extractive, keywords, abstract, validation, createdAt string

	if err := row.Scan(&report.ID, &report.URL, &report.Title, &report.ContentHash, &report.Tokens,
		&article, &extractive, &keywords, &abstract, &validation, &createdAt); err != nil {
		return nil, err
	}

	var err error
	report.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	report.Article = &digest.Article{}
	if err := unmarshalColumn(article, "article", report.Article); err != nil {
		return nil, err
	}
	report.Extractive = &digest.Summary{}
	if err := unmarshalColumn(extractive, "extractive", report.Extractive); err != nil {
		return nil, err
	}
	report.Keywords = &digest.Keywords{}
	if err := unmarshalColumn(keywords, "keywords", report.Keywords); err != nil {
		return nil, err
	}
	if abstract != "" {
		report.Abstract = &digest.Summary{}
		if err := unmarshalColumn(abstract, "abstract", report.Abstract); err != nil {
			return nil, err
		}
	}
	if validation != "" {
		report.Validation = &digest.ContentValidation{}
		if err := unmarshalColumn(validation, "validation", report.Validation); err != nil {
			return nil, err
		}
	}

	return &report, nil
}
