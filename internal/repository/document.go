package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/arunpathak904/univaegis-assignment/internal/common"
	"github.com/arunpathak904/univaegis-assignment/internal/entity"
)

// ExtractionUpdate carries everything the pipeline persists after
// running OCR and field extraction for a document.
type ExtractionUpdate struct {
	OCRText     string
	Extracted   entity.JSONMap
	Confidence  float64
	Status      string
	NeedsReview bool
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	GetByID(ctx context.Context, id uint) (*entity.Document, error)
	FinishExtraction(ctx context.Context, id uint, upd ExtractionUpdate) error
	UpdateExtracted(ctx context.Context, id uint, extracted entity.JSONMap) error
}

type documentRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewDocumentRepository(db *gorm.DB, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepository{db: db, logger: logger}
}

func (r *documentRepository) Create(ctx context.Context, doc *entity.Document) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		r.logger.Error("failed to create document", "error", err)
		return common.WrapError(err, "create document")
	}
	return nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uint) (*entity.Document, error) {
	var doc entity.Document
	err := r.db.WithContext(ctx).First(&doc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to load document", "document_id", id, "error", err)
		return nil, common.WrapError(err, "load document")
	}
	return &doc, nil
}

func (r *documentRepository) FinishExtraction(ctx context.Context, id uint, upd ExtractionUpdate) error {
	now := time.Now().UTC()
	err := r.db.WithContext(ctx).
		Model(&entity.Document{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"ocr_text":       upd.OCRText,
			"extracted":      upd.Extracted,
			"ocr_confidence": upd.Confidence,
			"status":         upd.Status,
			"needs_review":   upd.NeedsReview,
			"processed_at":   &now,
		}).Error
	if err != nil {
		r.logger.Error("failed to persist extraction", "document_id", id, "error", err)
		return common.WrapError(err, "persist extraction")
	}
	return nil
}

func (r *documentRepository) UpdateExtracted(ctx context.Context, id uint, extracted entity.JSONMap) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Document{}).
		Where("id = ?", id).
		Update("extracted", extracted).Error
	if err != nil {
		r.logger.Error("failed to update extracted data", "document_id", id, "error", err)
		return common.WrapError(err, "update extracted data")
	}
	return nil
}
