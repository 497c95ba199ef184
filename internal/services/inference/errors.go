package inference

import "errors"

var (
	// ErrUpstreamStatus is returned when the classifier answers with a non-2xx status
	ErrUpstreamStatus = errors.New("classifier returned an error status")

	// ErrEmptyAudio is returned when there is nothing to classify
	ErrEmptyAudio = errors.New("audio payload is empty")

	// ErrNoEndpoint is returned when the classifier URL is not configured
	ErrNoEndpoint = errors.New("classifier URL is not configured")
)
