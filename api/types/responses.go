package types

import (
	"github.com/killallgit/featureviz-api/internal/models"
	"github.com/killallgit/featureviz-api/internal/services/session"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`   // Error code
	Details any    `json:"details,omitempty"` // Additional error details
}

// ClassifyResponse is returned by the classify endpoint
type ClassifyResponse struct {
	BaseResponse
	ResultID string              `json:"result_id,omitempty"`
	FileName string              `json:"file_name"`
	Result   *models.APIResponse `json:"result"`
}

// StateResponse is the lifecycle snapshot
type StateResponse struct {
	BaseResponse
	session.Snapshot
}

// PartitionResponse splits layer names into main layers and internals.
// Main keeps response order; each internals list is sorted by name.
type PartitionResponse struct {
	BaseResponse
	Main      []string            `json:"main"`
	Internals map[string][]string `json:"internals"`
}

// ResultSummary is a stored result without its payload
type ResultSummary struct {
	ResultID   string  `json:"result_id"`
	FileName   string  `json:"file_name"`
	TopClass   string  `json:"top_class"`
	Confidence float64 `json:"confidence"`
	LayerCount int     `json:"layer_count"`
	CreatedAt  string  `json:"created_at"`
}

// ResultsResponse lists stored results
type ResultsResponse struct {
	BaseResponse
	Results []ResultSummary `json:"results"`
	Count   int             `json:"count"`
}

// ResultResponse is a single stored result with its payload
type ResultResponse struct {
	BaseResponse
	ResultSummary
	Result *models.APIResponse `json:"result"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Services  map[string]any `json:"services"`
}
