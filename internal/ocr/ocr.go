package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/arunpathak904/univaegis-assignment/constants"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 200
	MaxPages      int    // cost-control page cap for PDFs; 0 = no limit
}

// Result is the outcome of one extraction. A failed run carries the
// underlying cause in Err and an empty Text; callers that only care
// about the text can ignore Err entirely.
type Result struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE
	Method     string // "pdf-ocr" | "image-ocr"
	Duration   time.Duration
	Err        error
}

// OK reports whether text recognition ran without error.
func (r Result) OK() bool { return r.Err == nil }

// Adapter turns stored document files into plain text via tesseract.
type Adapter struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewAdapter(cfg Config, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 200
	}
	return &Adapter{cfg: cfg, runner: execRunner{}, logger: logger}
}

// ExtractText picks a strategy based on file extension and runs OCR.
// PDFs are rasterized page by page; everything else takes the image
// path. Decode and recognition failures are absorbed here: the result
// then has empty text and the cause in Err, logged for operators but
// never returned as a hard error.
func (a *Adapter) ExtractText(ctx context.Context, path string) Result {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	a.logger.Debug("starting ocr extraction", "path", path, "ext", ext)

	var res Result
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res = a.extractPDF(ctx, path)
	default:
		res = a.extractImage(ctx, path)
	}
	res.Duration = time.Since(start)

	if res.Err != nil {
		a.logger.Error("ocr extraction failed; returning empty text",
			"path", path,
			"source_type", res.SourceType,
			"error", res.Err,
			"duration_ms", res.Duration.Milliseconds(),
		)
		res.Text = ""
		return res
	}

	a.logger.Info("ocr extraction ok",
		"path", path,
		"source_type", res.SourceType,
		"method", res.Method,
		"pages", res.Pages,
		"text_bytes", len(res.Text),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res
}

func (a *Adapter) tesseractOCR(ctx context.Context, path string) (string, error) {
	// tesseract <file> stdout -l <lang>
	out, _, err := a.runner.Run(ctx, a.cfg.Tesseract, path, "stdout", "-l", a.cfg.TesseractLang)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil
}
