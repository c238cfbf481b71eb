package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrDanglingReference indicates a stored record points at a museum,
	// category or product id that no longer exists. Nothing in the exposed
	// write surface deletes those entities, so hitting this is an internal
	// invariant break, not a recoverable condition.
	ErrDanglingReference = errors.New("dangling entity reference")
)
