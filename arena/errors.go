package arena

import "errors"

// Sentinel errors for arena operations.
var (
	// ErrBadBlockSize indicates a non-positive block size was requested.
	ErrBadBlockSize = errors.New("arena: block size must be positive")

	// ErrMarkOutOfRange indicates a Mark value that does not belong to
	// this arena's current lifetime (negative, or past the live tip).
	ErrMarkOutOfRange = errors.New("arena: mark out of range")
)
