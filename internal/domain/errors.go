package domain

import "errors"

var (
	// ErrInvalidCoordinates reports coordinate text that is not "latitude, longitude".
	ErrInvalidCoordinates = errors.New("invalid coordinates format, use: latitude, longitude")
	// ErrInvalidSchedule reports a malformed scheduled date or time.
	ErrInvalidSchedule = errors.New("invalid schedule")
)

// IsFormatError reports whether err was caused by malformed user input.
// Format errors are recoverable: the caller rejects the submission and
// leaves the store unchanged.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrInvalidCoordinates) || errors.Is(err, ErrInvalidSchedule)
}
