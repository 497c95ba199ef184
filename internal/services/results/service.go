package results

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/killallgit/featureviz-api/internal/models"
	log "github.com/sirupsen/logrus"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// service implements ResultService
type service struct {
	repo ResultRepository
}

// NewService creates a new result service
func NewService(repo ResultRepository) ResultService {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, fileName string, resp *models.APIResponse) (*models.ClassificationResult, error) {
	if resp == nil {
		return nil, ErrNilResponse
	}

	result := &models.ClassificationResult{
		ResultID: uuid.NewString(),
		FileName: fileName,
	}
	if err := result.SetResponse(resp); err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}

	if err := s.repo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("saving result: %w", err)
	}

	log.WithFields(log.Fields{
		"result_id": result.ResultID,
		"file":      fileName,
		"top_class": result.TopClass,
		"layers":    result.LayerCount,
	}).Debug("Stored classification result")

	return result, nil
}

func (s *service) Get(ctx context.Context, resultID string) (*models.ClassificationResult, error) {
	if err := validateID(resultID); err != nil {
		return nil, err
	}
	return s.repo.GetByResultID(ctx, resultID)
}

// List clamps limit to [1, 100], defaulting to 20
func (s *service) List(ctx context.Context, limit int) ([]models.ClassificationResult, error) {
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *service) Delete(ctx context.Context, resultID string) error {
	if err := validateID(resultID); err != nil {
		return err
	}
	log.WithField("result_id", resultID).Debug("Deleting classification result")
	return s.repo.DeleteByResultID(ctx, resultID)
}

func validateID(resultID string) error {
	if _, err := uuid.Parse(resultID); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidResultID, resultID)
	}
	return nil
}
