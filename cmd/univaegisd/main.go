package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/arunpathak904/univaegis-assignment/internal/common"
	"github.com/arunpathak904/univaegis-assignment/internal/export"
	"github.com/arunpathak904/univaegis-assignment/internal/ocr"
	"github.com/arunpathak904/univaegis-assignment/internal/pipeline"
	"github.com/arunpathak904/univaegis-assignment/internal/repository"
	"github.com/arunpathak904/univaegis-assignment/internal/server"
	"github.com/arunpathak904/univaegis-assignment/internal/storage"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(cfg.Database, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repository.Close(db, logger)

	if err := repository.HealthCheck(ctx, db, cfg.Database.HealthTimeout); err != nil {
		logger.Error("db health failed", "error", err)
		os.Exit(1)
	}
	logger.Info("db health OK")

	store, err := storage.NewStore(cfg.Storage.UploadDir, logger)
	if err != nil {
		logger.Error("init upload storage", "dir", cfg.Storage.UploadDir, "error", err)
		os.Exit(1)
	}

	docs := repository.NewDocumentRepository(db, logger)
	checks := repository.NewEligibilityCheckRepository(db, logger)

	adapter := ocr.NewAdapter(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

	processor := pipeline.NewProcessor(docs, adapter, logger)
	exporter := export.NewService(checks, logger)

	srv := server.New(server.Options{
		Docs:      docs,
		Checks:    checks,
		Store:     store,
		Processor: processor,
		Exporter:  exporter,
		Health: func(ctx context.Context) error {
			return repository.HealthCheck(ctx, db, cfg.Database.HealthTimeout)
		},
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		Logger:         logger,
	})

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Routes(),
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	logger.Info("stopped")
}
