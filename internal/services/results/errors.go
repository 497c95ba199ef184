package results

import "errors"

var (
	// ErrResultNotFound is returned when no result has the requested ID
	ErrResultNotFound = errors.New("result not found")

	// ErrInvalidResultID is returned when a result ID is empty or not a UUID
	ErrInvalidResultID = errors.New("invalid result ID")

	// ErrNilResponse is returned when saving without a classifier response
	ErrNilResponse = errors.New("response is nil")
)
