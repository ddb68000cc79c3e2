package repository

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/arunpathak904/univaegis-assignment/internal/common"
	"github.com/arunpathak904/univaegis-assignment/internal/entity"
)

type EligibilityCheckRepository interface {
	Create(ctx context.Context, check *entity.EligibilityCheck) error
	// List returns checks newest-first; documentID == nil lists all.
	List(ctx context.Context, documentID *uint) ([]*entity.EligibilityCheck, error)
}

type eligibilityCheckRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewEligibilityCheckRepository(db *gorm.DB, logger *slog.Logger) EligibilityCheckRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &eligibilityCheckRepository{db: db, logger: logger}
}

func (r *eligibilityCheckRepository) Create(ctx context.Context, check *entity.EligibilityCheck) error {
	if err := r.db.WithContext(ctx).Create(check).Error; err != nil {
		r.logger.Error("failed to create eligibility check", "document_id", check.DocumentID, "error", err)
		return common.WrapError(err, "create eligibility check")
	}
	return nil
}

func (r *eligibilityCheckRepository) List(ctx context.Context, documentID *uint) ([]*entity.EligibilityCheck, error) {
	q := r.db.WithContext(ctx).Model(&entity.EligibilityCheck{}).Order("created_at DESC")
	if documentID != nil {
		q = q.Where("document_id = ?", *documentID)
	}
	var checks []*entity.EligibilityCheck
	if err := q.Find(&checks).Error; err != nil {
		r.logger.Error("failed to list eligibility checks", "error", err)
		return nil, common.WrapError(err, "list eligibility checks")
	}
	return checks, nil
}
