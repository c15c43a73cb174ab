package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing token settings (sign key,
	// issuer or a positive token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCookieConfigs indicates an invalid identity cookie policy
	// (empty name, unknown SameSite value or negative refresh window).
	ErrInvalidCookieConfigs = errors.New("invalid cookie configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
