package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs is returned when no database DSN was provided.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")

	// ErrInvalidServerConfigs is returned when the HTTP listen address is missing.
	ErrInvalidServerConfigs = errors.New("invalid server configs: HTTP address is required")

	// ErrInvalidAppConfigs is returned when the bcrypt cost factor is out of range.
	ErrInvalidAppConfigs = errors.New("invalid app configs: bcrypt cost out of range")
)
