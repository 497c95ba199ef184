// Package inference talks to the remote audio classifier.
package inference

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/killallgit/featureviz-api/internal/models"
	apperrors "github.com/killallgit/featureviz-api/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	serviceName = "classifier"

	// maxErrorBody bounds how much of an error response is kept for the message
	maxErrorBody = 512
)

// Classifier sends audio to the classifier and returns its response
type Classifier interface {
	Classify(ctx context.Context, audio []byte) (*models.APIResponse, error)
}

// Config holds configuration for the classifier client
type Config struct {
	URL       string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables the limiter
	Burst     int
	UserAgent string
}

// Client posts base64-encoded audio to the classifier endpoint
type Client struct {
	httpClient *http.Client
	url        string
	userAgent  string
	limiter    *rate.Limiter
}

type classifyRequest struct {
	AudioData string `json:"audio_data"`
}

// NewClient creates a new classifier client
func NewClient(cfg Config) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = "featureviz/1.0"
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		url:        cfg.URL,
		userAgent:  cfg.UserAgent,
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst)
	}
	return c
}

// Classify uploads audio and decodes the reply. Transport failures, non-2xx
// statuses and undecodable bodies come back as EXTERNAL_SERVICE AppErrors;
// deadline overruns as API_TIMEOUT.
func (c *Client) Classify(ctx context.Context, audio []byte) (*models.APIResponse, error) {
	if c.url == "" {
		return nil, apperrors.Wrap(ErrNoEndpoint, apperrors.ErrCodeConfigRequired, "inference.url is required")
	}
	if len(audio) == 0 {
		return nil, apperrors.InvalidInput("audio file is empty", ErrEmptyAudio)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeAPIRateLimit, "classifier rate limit wait aborted")
		}
	}

	body, err := json.Marshal(classifyRequest{AudioData: base64.StdEncoding.EncodeToString(audio)})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, apperrors.TimeoutError("classify", err)
		}
		return nil, apperrors.ExternalServiceError(serviceName, err)
	}
	defer resp.Body.Close()

	logger := log.WithFields(log.Fields{
		"status":      resp.StatusCode,
		"audio_bytes": len(audio),
		"elapsed":     time.Since(start).Round(time.Millisecond),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logger.WithField("body", string(snippet)).Warn("Classifier returned an error status")
		err := fmt.Errorf("%w: %s", ErrUpstreamStatus, resp.Status)
		return nil, apperrors.ExternalServiceError(serviceName, err).
			WithDetail("status", resp.StatusCode)
	}

	result, err := models.DecodeResponse(resp.Body)
	if err != nil {
		logger.WithError(err).Warn("Classifier returned an undecodable body")
		return nil, apperrors.ExternalServiceError(serviceName, err)
	}
	if err := result.Validate(); err != nil {
		return nil, apperrors.ExternalServiceError(serviceName, err)
	}

	logger.WithField("layers", result.Visualizations.Len()).Debug("Classification received")
	return result, nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
