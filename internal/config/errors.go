package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN, unsupported in-memory DSN, or a missing
	// vault directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidBillingConfigs indicates invalid billing settings
	// (for example, missing base URL, zero timeout, or a non-positive
	// retry/listener setting).
	ErrInvalidBillingConfigs = errors.New("invalid billing configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
