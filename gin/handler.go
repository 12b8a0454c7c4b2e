package gin

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/digest"
	"github.com/gin-gonic/gin"
)

// Limits on caller-chosen counts for /analyze.
const (
	MaxSentenceCount = 20
	MaxKeywordCount  = 50
)

// MaxBodyBytes bounds POST bodies. Scoring cost grows faster than the text,
// so oversized input is refused before it is read.
const MaxBodyBytes = 1 << 20

// SummarizeRequest is the body of POST /summarize.
type SummarizeRequest struct {
	URL string `json:"url"`
}

// SummarizeResponse is the body returned by POST /summarize. Analysis
// failures are reported with Success false rather than an error status.
type SummarizeResponse struct {
	ReportID   string           `json:"reportId,omitempty"`
	Article    *digest.Article  `json:"article"`
	Extractive *digest.Summary  `json:"extractiveSummary"`
	Keywords   *digest.Keywords `json:"keywords"`
	Abstract   *digest.Summary  `json:"aiSummary"`
	Success    bool             `json:"success"`
	Error      string           `json:"error,omitempty"`
}

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	Sentences int    `json:"sentences"`
	Keywords  int    `json:"keywords"`
}

// AnalyzeResponse is the body returned by POST /analyze.
type AnalyzeResponse struct {
	Title      string                    `json:"title"`
	Extractive *digest.Summary           `json:"extractiveSummary"`
	Keywords   *digest.Keywords          `json:"keywords"`
	Validation *digest.ContentValidation `json:"validation"`
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.POST("/summarize", limitBody(MaxBodyBytes), s.handleSummarize)
	s.engine.POST("/analyze", limitBody(MaxBodyBytes), s.handleAnalyze)

	reports := s.engine.Group("/reports")
	{
		reports.GET("", s.handleReportIndex)
		reports.GET("/:id", s.handleReportView)
		reports.DELETE("/:id", s.handleReportDelete)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "digest is running"})
}

func (s *Server) handleSummarize(c *gin.Context) {
	var req SummarizeRequest
	if !s.bindJSON(c, &req) {
		return
	}

	report, err := s.Analyzer.AnalyzeURL(c.Request.Context(), req.URL)
	if report == nil {
		s.Logger.Warn("summarize", "url", req.URL, "err", err)
		c.JSON(http.StatusOK, &SummarizeResponse{
			Article:    &digest.Article{Title: "Error", Text: "", URL: req.URL, Authors: []string{}},
			Extractive: &digest.Summary{Summary: "Error occurred during processing"},
			Keywords:   &digest.Keywords{Keywords: []digest.Keyword{}},
			Abstract:   &digest.Summary{Summary: "Error occurred during AI summarization"},
			Error:      digest.FriendlyError(err),
		})
		return
	}
	if err != nil {
		s.Logger.Error("summarize", "url", req.URL, "err", err)
	}

	c.JSON(http.StatusOK, &SummarizeResponse{
		ReportID:   report.ID,
		Article:    report.Article,
		Extractive: report.Extractive,
		Keywords:   report.Keywords,
		Abstract:   report.Abstract,
		Success:    true,
	})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if !s.bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.Error(c, digest.Errorf(digest.EINVALID, "text cannot be empty"))
		return
	}
	if utf8.RuneCountInString(req.Text) > digest.MaxTextLength {
		s.Error(c, digest.Errorf(digest.EINVALID, "text is too long (max %d characters)", digest.MaxTextLength))
		return
	}

	sentences := clamp(req.Sentences, 5, MaxSentenceCount)
	keywords := clamp(req.Keywords, 10, MaxKeywordCount)

	c.JSON(http.StatusOK, &AnalyzeResponse{
		Title:      req.Title,
		Extractive: s.Summarizer.Summarize(req.Text, sentences),
		Keywords:   s.Keywords.Extract(req.Text, keywords),
		Validation: digest.ValidateContent(req.Title, req.Text),
	})
}

func (s *Server) handleReportIndex(c *gin.Context) {
	if s.Reports == nil {
		s.Error(c, digest.Errorf(digest.ENOTIMPLEMENTED, "history is disabled"))
		return
	}

	filter := digest.ReportFilter{Limit: 20}
	if v := c.Query("url"); v != "" {
		filter.URL = &v
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.Error(c, digest.Errorf(digest.EINVALID, "invalid limit"))
			return
		}
		filter.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.Error(c, digest.Errorf(digest.EINVALID, "invalid offset"))
			return
		}
		filter.Offset = n
	}

	reports, err := s.Reports.FindReports(c.Request.Context(), filter)
	if err != nil {
		s.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (s *Server) handleReportView(c *gin.Context) {
	if s.Reports == nil {
		s.Error(c, digest.Errorf(digest.ENOTIMPLEMENTED, "history is disabled"))
		return
	}

	report, err := s.Reports.FindReportByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleReportDelete(c *gin.Context) {
	if s.Reports == nil {
		s.Error(c, digest.Errorf(digest.ENOTIMPLEMENTED, "history is disabled"))
		return
	}

	if err := s.Reports.DeleteReport(c.Request.Context(), c.Param("id")); err != nil {
		s.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Error writes err as a JSON error body with the matching status code.
// Internal errors are logged and hidden from the caller.
func (s *Server) Error(c *gin.Context, err error) {
	code, message := digest.ErrorCode(err), digest.ErrorMessage(err)
	if code == digest.EINTERNAL {
		s.Logger.Error("http error", "method", c.Request.Method, "path", c.Request.URL.Path, "err", err)
	}
	c.AbortWithStatusJSON(ErrorStatusCode(code), gin.H{"success": false, "error": message})
}

// bindJSON decodes the request body into v. On failure it writes the error
// response and returns false.
func (s *Server) bindJSON(c *gin.Context, v any) bool {
	err := c.ShouldBindJSON(v)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
			"success": false,
			"error":   fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
		})
		return false
	}
	s.Error(c, digest.Errorf(digest.EINVALID, "invalid JSON body"))
	return false
}

// limitBody caps the bytes a handler can read from the request body.
func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}

func clamp(v, def, limit int) int {
	if v <= 0 {
		return def
	}
	if v > limit {
		return limit
	}
	return v
}
