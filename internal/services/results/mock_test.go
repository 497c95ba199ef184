package results

import (
	"context"
	"errors"
	"testing"

	"github.com/killallgit/featureviz-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockResultRepository is a mock implementation of ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Create(ctx context.Context, result *models.ClassificationResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepository) GetByResultID(ctx context.Context, resultID string) (*models.ClassificationResult, error) {
	args := m.Called(ctx, resultID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClassificationResult), args.Error(1)
}

func (m *MockResultRepository) ListRecent(ctx context.Context, limit int) ([]models.ClassificationResult, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ClassificationResult), args.Error(1)
}

func (m *MockResultRepository) DeleteByResultID(ctx context.Context, resultID string) error {
	args := m.Called(ctx, resultID)
	return args.Error(0)
}

func TestService_ListClampsLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "zero uses default", limit: 0, wantLimit: defaultListLimit},
		{name: "negative uses default", limit: -4, wantLimit: defaultListLimit},
		{name: "in range", limit: 7, wantLimit: 7},
		{name: "above max", limit: 500, wantLimit: maxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockResultRepository)
			repo.On("ListRecent", mock.Anything, tt.wantLimit).Return([]models.ClassificationResult{}, nil)

			svc := NewService(repo)
			_, err := svc.List(context.Background(), tt.limit)
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_SaveRepositoryError(t *testing.T) {
	repo := new(MockResultRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *models.ClassificationResult) bool {
		return r.FileName == "rain.wav" && r.ResultID != "" && r.TopClass == "rain"
	})).Return(errors.New("disk full"))

	svc := NewService(repo)
	_, err := svc.Save(context.Background(), "rain.wav", testResponse())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	repo.AssertExpectations(t)
}

func TestService_InvalidIDNeverReachesRepository(t *testing.T) {
	repo := new(MockResultRepository)
	svc := NewService(repo)

	_, err := svc.Get(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidResultID)
	assert.ErrorIs(t, svc.Delete(context.Background(), "1"), ErrInvalidResultID)

	repo.AssertNotCalled(t, "GetByResultID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteByResultID", mock.Anything, mock.Anything)
}
