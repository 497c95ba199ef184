package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/internal/models"
	"github.com/killallgit/featureviz-api/internal/services/results"
	"github.com/killallgit/featureviz-api/internal/services/session"
	apperrors "github.com/killallgit/featureviz-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDependencies_UploadLimit(t *testing.T) {
	var nilDeps *Dependencies
	assert.Equal(t, DefaultMaxUploadBytes, nilDeps.UploadLimit())
	assert.Equal(t, DefaultMaxUploadBytes, (&Dependencies{}).UploadLimit())
	assert.Equal(t, int64(1024), (&Dependencies{MaxUploadBytes: 1024}).UploadLimit())
}

func TestSendError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "pending", err: session.ErrRequestPending, wantStatus: http.StatusConflict, wantCode: "CONFLICT"},
		{name: "not found", err: fmt.Errorf("get: %w", results.ErrResultNotFound), wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "bad id", err: results.ErrInvalidResultID, wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{name: "invalid prediction", err: models.ErrInvalidPrediction, wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{name: "too large", err: &http.MaxBytesError{Limit: 10}, wantStatus: http.StatusRequestEntityTooLarge, wantCode: "PAYLOAD_TOO_LARGE"},
		{name: "upstream", err: apperrors.ExternalServiceError("classifier", errors.New("502")), wantStatus: http.StatusBadGateway, wantCode: "EXTERNAL_SERVICE"},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			SendError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestSendBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SendBadRequest(c, "Invalid request body", "unexpected EOF")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unexpected EOF")
}

func TestSummarize(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := Summarize(models.ClassificationResult{
		Model:      gorm.Model{CreatedAt: created},
		ResultID:   "abc",
		FileName:   "dog.wav",
		TopClass:   "dog",
		Confidence: 0.8,
		LayerCount: 4,
	})

	assert.Equal(t, "abc", s.ResultID)
	assert.Equal(t, "2025-03-01T12:00:00Z", s.CreatedAt)
	assert.Equal(t, 4, s.LayerCount)
}
