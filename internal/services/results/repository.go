package results

import (
	"context"
	"errors"

	"github.com/killallgit/featureviz-api/internal/models"
	"gorm.io/gorm"
)

// repository implements ResultRepository
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new result repository
func NewRepository(db *gorm.DB) ResultRepository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, result *models.ClassificationResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *repository) GetByResultID(ctx context.Context, resultID string) (*models.ClassificationResult, error) {
	var result models.ClassificationResult
	err := r.db.WithContext(ctx).
		Where("result_id = ?", resultID).
		First(&result).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}

	return &result, nil
}

// ListRecent returns results without their payloads
func (r *repository) ListRecent(ctx context.Context, limit int) ([]models.ClassificationResult, error) {
	var out []models.ClassificationResult
	err := r.db.WithContext(ctx).
		Omit("payload").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *repository) DeleteByResultID(ctx context.Context, resultID string) error {
	result := r.db.WithContext(ctx).
		Where("result_id = ?", resultID).
		Delete(&models.ClassificationResult{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrResultNotFound
	}

	return nil
}
