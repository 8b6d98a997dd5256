package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrFileNotFound indicates a requested file does not exist in storage.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidSource indicates a source descriptor with zero or more than
	// one populated variant. Resolving such a descriptor is a programming
	// error, not a content problem.
	ErrInvalidSource = errors.New("invalid source descriptor")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown component type.
	ErrUnsupportedType = errors.New("unsupported component type")

	// ErrStorageClosed indicates the storage backend has been closed.
	ErrStorageClosed = errors.New("storage closed")

	// Authentication errors.

	// ErrAuthRequired indicates the storage backend requires authentication
	// but none is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the authentication credentials are invalid.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
