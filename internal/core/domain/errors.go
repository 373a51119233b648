package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a filter matched no hero. This is a normal
	// outcome for first-match lookups, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoFragment indicates a feed key has no matching fragment in the
	// heroes page. The merge surfaces this rather than silently skipping.
	ErrNoFragment = errors.New("no matching page fragment")

	// ErrFetchFailed indicates an upstream fetch failed or returned a
	// non-success status. Adapters wrap the underlying cause.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrSnapshotUnavailable indicates the on-disk snapshot is missing or
	// unreadable. Callers treat this as a cache miss and fall back to the
	// network.
	ErrSnapshotUnavailable = errors.New("snapshot unavailable")
)
