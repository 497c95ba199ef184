package types

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/internal/models"
	"github.com/killallgit/featureviz-api/internal/services/results"
	"github.com/killallgit/featureviz-api/internal/services/session"
	apperrors "github.com/killallgit/featureviz-api/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Handler utility functions to reduce duplication across handlers

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string, details any) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.ErrCodeInvalidInput),
		Details: details,
	})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.ErrCodeNotFound),
	})
}

// SendError maps err to a status code and an ErrorResponse. Service
// sentinels are translated first, then AppErrors anywhere in the chain.
func SendError(c *gin.Context, err error) {
	appErr := ToAppError(err)
	status := appErr.GetHTTPCode()

	entry := log.WithFields(log.Fields{
		"path":   c.Request.URL.Path,
		"status": status,
		"code":   appErr.Code,
	}).WithError(err)
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Debug("Request rejected")
	}

	c.JSON(status, ErrorResponse{
		Status:  StatusError,
		Message: appErr.Message,
		Error:   string(appErr.Code),
		Details: appErr.Details,
	})
}

// ToAppError converts service errors into AppErrors
func ToAppError(err error) *apperrors.AppError {
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.Is(err, session.ErrRequestPending):
		return apperrors.Conflict(err.Error())
	case errors.Is(err, results.ErrResultNotFound):
		return apperrors.NotFound("result", nil)
	case errors.Is(err, results.ErrInvalidResultID):
		return apperrors.InvalidInput("invalid result ID", err)
	case errors.Is(err, models.ErrInvalidPrediction), errors.Is(err, models.ErrInvalidVisualizations):
		return apperrors.InvalidInput(err.Error(), err)
	case errors.As(err, &maxBytesErr):
		return apperrors.New(apperrors.ErrCodePayloadTooLarge, "request body too large").
			WithDetail("limit", maxBytesErr.Limit)
	}

	if appErr, ok := apperrors.As(err); ok {
		return appErr
	}
	return apperrors.Wrap(err, apperrors.ErrCodeInternal, "internal server error")
}

// Summarize converts a stored result into its API summary
func Summarize(r models.ClassificationResult) ResultSummary {
	return ResultSummary{
		ResultID:   r.ResultID,
		FileName:   r.FileName,
		TopClass:   r.TopClass,
		Confidence: r.Confidence,
		LayerCount: r.LayerCount,
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
