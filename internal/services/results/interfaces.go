package results

import (
	"context"

	"github.com/killallgit/featureviz-api/internal/models"
)

// ResultService defines the operations on stored classification results
type ResultService interface {
	// Save stores resp and returns the new record with its ResultID set
	Save(ctx context.Context, fileName string, resp *models.APIResponse) (*models.ClassificationResult, error)

	// Get retrieves a result by its public ID
	Get(ctx context.Context, resultID string) (*models.ClassificationResult, error)

	// List returns the most recent results, newest first
	List(ctx context.Context, limit int) ([]models.ClassificationResult, error)

	// Delete removes a result by its public ID
	Delete(ctx context.Context, resultID string) error
}

// ResultRepository defines data access for classification results
type ResultRepository interface {
	Create(ctx context.Context, result *models.ClassificationResult) error
	GetByResultID(ctx context.Context, resultID string) (*models.ClassificationResult, error)
	ListRecent(ctx context.Context, limit int) ([]models.ClassificationResult, error)
	DeleteByResultID(ctx context.Context, resultID string) error
}
