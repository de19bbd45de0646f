package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoCurrentBatch indicates no batch has been registered or selected.
	ErrNoCurrentBatch = errors.New("no current batch")

	// ErrRenderFailed indicates report rendering failed.
	// No partial artifact is kept when this is returned.
	ErrRenderFailed = errors.New("report rendering failed")

	// ErrDeliveryFailed indicates the email webhook rejected the report.
	// Stored snapshots and artifacts are unaffected.
	ErrDeliveryFailed = errors.New("report delivery failed")

	// ErrExtractorUnavailable indicates the extraction backend is not configured.
	ErrExtractorUnavailable = errors.New("extraction backend unavailable")

	// ErrRateLimited indicates the extraction backend rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
