package services

import "errors"

// Error kinds surfaced by the record stores. Callers match them with
// errors.Is; the messages wrapped around them carry the specifics.
var (
	// ErrNotFound means a referenced file or directory does not exist.
	ErrNotFound = errors.New("not found")
	// ErrMalformedData means a collection file exists but does not hold valid JSON.
	ErrMalformedData = errors.New("malformed data")
	// ErrInvalidFormat means a caller-supplied value failed a format or range check.
	ErrInvalidFormat = errors.New("invalid format")
)
