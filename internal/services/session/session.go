// Package session holds the single current classification and its
// request lifecycle.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/killallgit/featureviz-api/internal/models"
	"github.com/killallgit/featureviz-api/internal/services/inference"
	log "github.com/sirupsen/logrus"
)

// ErrRequestPending is returned when a submit arrives while one is in flight
var ErrRequestPending = errors.New("a classification request is already pending")

// State is the lifecycle state
type State string

const (
	StateIdle     State = "idle"
	StatePending  State = "pending"
	StateResolved State = "resolved"
	StateFailed   State = "failed"
)

// ResultSaver persists resolved responses
type ResultSaver interface {
	Save(ctx context.Context, fileName string, resp *models.APIResponse) (*models.ClassificationResult, error)
}

// Snapshot is a point-in-time copy of the session. Result is shared with the
// session but never mutated; a new submit replaces it.
type Snapshot struct {
	State       State               `json:"state"`
	FileName    string              `json:"file_name,omitempty"`
	Error       string              `json:"error,omitempty"`
	ResultID    string              `json:"result_id,omitempty"`
	Result      *models.APIResponse `json:"result,omitempty"`
	SubmittedAt time.Time           `json:"submitted_at,omitempty"`
	CompletedAt time.Time           `json:"completed_at,omitempty"`
}

// Session runs at most one classification at a time
type Session struct {
	classifier inference.Classifier
	saver      ResultSaver

	mu   sync.RWMutex
	snap Snapshot
}

// New creates an idle session. saver may be nil.
func New(classifier inference.Classifier, saver ResultSaver) *Session {
	return &Session{
		classifier: classifier,
		saver:      saver,
		snap:       Snapshot{State: StateIdle},
	}
}

// Snapshot returns the current state
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Submit clears the previous result and error, classifies audio and ends
// resolved or failed. It blocks until the classifier answers.
func (s *Session) Submit(ctx context.Context, fileName string, audio []byte) (Snapshot, error) {
	s.mu.Lock()
	if s.snap.State == StatePending {
		s.mu.Unlock()
		return Snapshot{}, ErrRequestPending
	}
	s.snap = Snapshot{
		State:       StatePending,
		FileName:    fileName,
		SubmittedAt: time.Now().UTC(),
	}
	s.mu.Unlock()

	logger := log.WithField("file", fileName)
	logger.Info("Classification started")

	resp, err := s.classifier.Classify(ctx, audio)
	if err != nil {
		logger.WithError(err).Warn("Classification failed")
		return s.finish(Snapshot{State: StateFailed, Error: err.Error()}), err
	}

	final := Snapshot{State: StateResolved, Result: resp}
	if s.saver != nil {
		saved, err := s.saver.Save(ctx, fileName, resp)
		if err != nil {
			logger.WithError(err).Error("Failed to store classification result")
		} else {
			final.ResultID = saved.ResultID
		}
	}

	logger.WithField("result_id", final.ResultID).Info("Classification resolved")
	return s.finish(final), nil
}

// Reset returns an idle session. A pending request is left alone.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.State == StatePending {
		return ErrRequestPending
	}
	s.snap = Snapshot{State: StateIdle}
	return nil
}

func (s *Session) finish(final Snapshot) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	final.FileName = s.snap.FileName
	final.SubmittedAt = s.snap.SubmittedAt
	final.CompletedAt = time.Now().UTC()
	s.snap = final
	return final
}
