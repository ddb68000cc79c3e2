// Package pipeline runs the synchronous upload pipeline:
// OCR -> field extraction -> confidence -> persist.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/arunpathak904/univaegis-assignment/constants"
	"github.com/arunpathak904/univaegis-assignment/internal/entity"
	"github.com/arunpathak904/univaegis-assignment/internal/extract"
	"github.com/arunpathak904/univaegis-assignment/internal/ocr"
	"github.com/arunpathak904/univaegis-assignment/internal/repository"
)

// ReviewConfidenceThreshold flags low-confidence extractions for a
// human pass over the parsed fields.
const ReviewConfidenceThreshold = 0.6

// TextExtractor is the OCR capability the processor depends on.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) ocr.Result
}

// Outcome summarizes one processed document for the API response.
type Outcome struct {
	Fields     extract.Fields
	Confidence float64
	OCRText    string
}

type Processor struct {
	docs   repository.DocumentRepository
	ocr    TextExtractor
	logger *slog.Logger
}

func NewProcessor(docs repository.DocumentRepository, ocr TextExtractor, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{docs: docs, ocr: ocr, logger: logger}
}

// Process OCRs the stored file, extracts category fields, scores
// confidence, and persists all of it on the document row. OCR failure
// is not an error here: the document is still marked processed, with
// empty text, the no-text sentinel in its fields, and zero confidence.
func (p *Processor) Process(ctx context.Context, doc *entity.Document) (Outcome, error) {
	res := p.ocr.ExtractText(ctx, doc.StoredPath)
	if !res.OK() {
		p.logger.Warn("ocr failed; continuing with empty text",
			"document_id", doc.ID, "path", doc.StoredPath, "error", res.Err)
	}

	fields := extract.Extract(constants.DocType(doc.DocType), res.Text)
	confidence := extract.Confidence(res.Text)
	needsReview := fields.HasError() || confidence < ReviewConfidenceThreshold

	upd := repository.ExtractionUpdate{
		OCRText:     res.Text,
		Extracted:   entity.JSONMap(fields),
		Confidence:  confidence,
		Status:      string(constants.DocStatusProcessed),
		NeedsReview: needsReview,
	}
	if err := p.docs.FinishExtraction(ctx, doc.ID, upd); err != nil {
		return Outcome{}, err
	}

	p.logger.Info("document processed",
		"document_id", doc.ID,
		"doc_type", doc.DocType,
		"ocr_ok", res.OK(),
		"pages", res.Pages,
		"text_bytes", len(res.Text),
		"confidence", confidence,
		"needs_review", needsReview,
	)
	return Outcome{Fields: fields, Confidence: confidence, OCRText: res.Text}, nil
}
