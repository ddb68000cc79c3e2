package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/arunpathak904/univaegis-assignment/constants"
	"github.com/arunpathak904/univaegis-assignment/internal/extract"
	"github.com/arunpathak904/univaegis-assignment/internal/ocr"
)

// docscan runs OCR and field extraction against a local file without
// touching the database. Useful for tuning patterns against sample
// documents.
func main() {
	docType := flag.String("type", "academic", "document type (academic|financial)")
	lang := flag.String("lang", "eng", "tesseract language")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "docscan [-type academic|financial] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	dt, ok := constants.ParseDocType(*docType)
	if !ok {
		logger.Error("invalid document type", "type", *docType)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	adapter := ocr.NewAdapter(ocr.Config{TesseractLang: *lang}, logger)

	start := time.Now()
	res := adapter.ExtractText(ctx, path)
	fields := extract.Extract(dt, res.Text)
	confidence := extract.Confidence(res.Text)

	logger.Info("scan complete",
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"confidence", confidence,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	out, err := json.MarshalIndent(map[string]any{
		"doc_type":   string(dt),
		"confidence": confidence,
		"extracted":  fields,
	}, "", "  ")
	if err != nil {
		logger.Error("marshal output", "error", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}
