package domain

import "errors"

// Sentinel errors used across all layers.
var (
	// ErrNotFound is returned when a referenced row does not exist, e.g. a
	// verification pointing at a deleted account. The pipeline treats it as
	// fatal rather than skipping records, so counts are never silently wrong.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned for malformed caller input, e.g. an
	// unparsable window override timestamp.
	ErrInvalidInput = errors.New("invalid input")
)
