package api

import "errors"

var (
	// ErrUnavailable indicates the TeleTrack server is unreachable.
	ErrUnavailable = errors.New("teletrack server unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("api request timed out")

	// ErrUnauthorized indicates a missing, expired or rejected token.
	ErrUnauthorized = errors.New("not authenticated")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidResponse indicates a response body that could not be
	// decoded into the expected envelope.
	ErrInvalidResponse = errors.New("invalid api response format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("api retry attempts exhausted")
)
