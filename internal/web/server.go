// Package web serves the calculator form, the HTML results page and the CSV
// export over HTTP.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/homecalc/homeownership-calculator/internal/calculation"
	"github.com/homecalc/homeownership-calculator/internal/config"
	"github.com/homecalc/homeownership-calculator/internal/output"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// Server routes requests to the projection engine.
type Server struct {
	engine  *calculation.CalculationEngine
	logger  *zap.Logger
	metrics *Metrics
	now     func() time.Time
	mux     *http.ServeMux
}

// NewServer wires the routes. metrics may be nil to disable /metrics.
func NewServer(engine *calculation.CalculationEngine, logger *zap.Logger, metrics *Metrics) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		engine:  engine,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /results", s.handleResults)
	s.mux.HandleFunc("GET /download.csv", s.handleDownloadCSV)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	if metrics != nil {
		s.mux.Handle("GET /metrics", metrics.Handler())
	}
	return s
}

// Handler returns the routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return requestLogging(s.logger, s.metrics)(s.mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, newIndexPage()); err != nil {
		s.logger.Error("render index", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	in, err := config.ParseValues(r.PostForm)
	if err != nil {
		s.logger.Warn("rejecting results request", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := s.engine.Run(r.Context(), in)
	if err != nil {
		s.logger.Error("projection aborted", zap.Error(err))
		http.Error(w, "request cancelled", http.StatusServiceUnavailable)
		return
	}
	s.metrics.observeProjection("results", len(p.Rows))

	// The export link carries the submitted fields so the CSV is recomputed
	// from the same inputs.
	page, err := output.HTMLFormatter{DownloadURL: "/download.csv?" + r.PostForm.Encode()}.Format(p)
	if err != nil {
		s.logger.Error("render results", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) handleDownloadCSV(w http.ResponseWriter, r *http.Request) {
	in, err := config.ParseValues(r.URL.Query())
	if err != nil {
		s.metrics.exportFailed()
		s.logger.Warn("abandoning csv export", zap.Error(err))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	rows, _ := calculation.BuildYearlySchedule(in)
	s.metrics.observeProjection("download", len(rows))

	var buf bytes.Buffer
	if err := output.WriteCSV(&buf, rows); err != nil {
		s.logger.Error("write csv", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", output.DownloadFilename(s.now(), "csv")))
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
