// Package gin serves the digest pipeline over HTTP using gin-gonic/gin.
package gin

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/digest"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server defaults.
const (
	DefaultAddr          = "127.0.0.1:8000"
	DefaultWriteTimeout  = 120 * time.Second
	DefaultReadTimeout   = 30 * time.Second
	DefaultShutdownGrace = 10 * time.Second
)

// ArticleAnalyzer produces a report for the article at a URL.
type ArticleAnalyzer interface {
	AnalyzeURL(ctx context.Context, url string) (*digest.Report, error)
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// Server is the HTTP API. Reports is optional; without it the history
// routes answer 501.
type Server struct {
	ln     net.Listener
	server *http.Server
	engine *gin.Engine

	Addr string

	Analyzer   ArticleAnalyzer
	Summarizer digest.ExtractiveSummarizer
	Keywords   digest.KeywordExtractor
	Reports    digest.ReportService
	Logger     *slog.Logger
}

// NewServer returns a Server with routes registered. Dependencies are set on
// the returned value before Open or Handler are used.
func NewServer() *Server {
	s := &Server{
		Addr:   DefaultAddr,
		engine: gin.New(),
		Logger: slog.New(slog.DiscardHandler),
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(s.logRequests())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	s.engine.Use(cors.New(corsConfig))

	s.registerRoutes()

	s.server = &http.Server{
		Handler:      s.engine,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
	}
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Open starts listening on Addr and serves requests in the background.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("serve", "err", err)
		}
	}()
	return nil
}

// URL returns the base URL of the listening server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownGrace)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// logRequests logs one line per request.
func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
