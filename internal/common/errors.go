// Package common defines shared sentinel errors used across the tracker.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Registration and form validation errors.
	ErrValidation    = errors.New("validation error")
	ErrDuplicateUser = errors.New("username or email already exists")

	// Auth errors (no matching credential pair).
	ErrUnauthorized = errors.New("unauthorized")

	// Catalog fetch/parse failures. Never surfaced to the user directly;
	// the loader falls back to the built-in set.
	ErrCatalogLoad = errors.New("catalog load error")

	// Import failures. The wrapped message carries the underlying parse
	// failure text.
	ErrImportParse = errors.New("import parse error")
)
