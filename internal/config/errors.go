package config

import "errors"

// Sentinel errors returned by configuration validation. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoTokenSignKey is returned when no JWT signing key was provided by
	// any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrNoDatabaseDSN is returned when no database connection string was
	// provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")

	// ErrUnknownStorageEngine is returned when the storage engine is not
	// one of "postgres" or "sqlite".
	ErrUnknownStorageEngine = errors.New("unknown storage engine")
)
