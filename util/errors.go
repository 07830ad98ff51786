// Package util provides utility functions for dendra-utils.
package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File errors
	ErrExpectedFile = errors.New("expected file, got directory")

	// Hashing errors
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")
	ErrInvalidChunkSize     = errors.New("chunk size must be positive")

	// Revision errors
	ErrNonASCIIOutput = errors.New("revision output is not ASCII")
	ErrEmptyRevision  = errors.New("revision output is empty")

	// Chunking errors
	ErrInvalidChunkLength = errors.New("maximum chunk length must be positive")

	// Mapping document errors
	ErrUnsupportedFormat = errors.New("unsupported mapping format")
	ErrNotMapping        = errors.New("document is not a mapping")
)
