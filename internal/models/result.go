package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// ClassificationResult is a stored classifier response
type ClassificationResult struct {
	gorm.Model
	ResultID   string  `json:"result_id" gorm:"size:36;not null;uniqueIndex"`
	FileName   string  `json:"file_name"`
	TopClass   string  `json:"top_class"`
	Confidence float64 `json:"confidence"`
	LayerCount int     `json:"layer_count"`
	Payload    []byte  `json:"-" gorm:"type:blob;not null"` // JSON-encoded APIResponse
}

// Response returns the decoded classifier response
func (r *ClassificationResult) Response() (*APIResponse, error) {
	var resp APIResponse
	if err := json.Unmarshal(r.Payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetResponse encodes resp into the payload and refreshes the summary columns
func (r *ClassificationResult) SetResponse(resp *APIResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	r.Payload = data
	r.LayerCount = resp.Visualizations.Len()
	r.TopClass = ""
	r.Confidence = 0
	if len(resp.Predictions) > 0 {
		r.TopClass = resp.Predictions[0].Class
		r.Confidence = resp.Predictions[0].Confidence
	}
	return nil
}
