package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/arunpathak904/univaegis-assignment/internal/entity"
	"github.com/arunpathak904/univaegis-assignment/internal/pipeline"
	"github.com/arunpathak904/univaegis-assignment/internal/repository"
	"github.com/arunpathak904/univaegis-assignment/internal/storage"
)

// DocumentProcessor is the upload pipeline the handlers depend on.
type DocumentProcessor interface {
	Process(ctx context.Context, doc *entity.Document) (pipeline.Outcome, error)
}

// CheckExporter renders eligibility-check history as XLSX bytes.
type CheckExporter interface {
	ExportChecksXLSX(ctx context.Context, documentID *uint) ([]byte, error)
}

// Server wires the HTTP surface to storage, pipeline, and repositories.
type Server struct {
	docs           repository.DocumentRepository
	checks         repository.EligibilityCheckRepository
	store          *storage.Store
	processor      DocumentProcessor
	exporter       CheckExporter
	health         func(ctx context.Context) error
	maxUploadBytes int64
	logger         *slog.Logger
}

type Options struct {
	Docs           repository.DocumentRepository
	Checks         repository.EligibilityCheckRepository
	Store          *storage.Store
	Processor      DocumentProcessor
	Exporter       CheckExporter
	Health         func(ctx context.Context) error
	MaxUploadBytes int64
	Logger         *slog.Logger
}

func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 20 << 20
	}
	if opts.Health == nil {
		opts.Health = func(context.Context) error { return nil }
	}
	return &Server{
		docs:           opts.Docs,
		checks:         opts.Checks,
		store:          opts.Store,
		processor:      opts.Processor,
		exporter:       opts.Exporter,
		health:         opts.Health,
		maxUploadBytes: opts.MaxUploadBytes,
		logger:         opts.Logger,
	}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/documents/upload", s.handleUploadDocument)
		r.Get("/documents/{id}", s.handleGetDocument)
		r.Patch("/documents/{id}/extracted", s.handleUpdateExtracted)

		r.Post("/eligibility/check", s.handleEligibilityCheck)
		r.Get("/eligibility/checks", s.handleListChecks)
		r.Get("/eligibility/export", s.handleExportChecks)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.health(r.Context()); err != nil {
		s.logger.Error("health check failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// requestLogger logs one line per request with status and latency.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
