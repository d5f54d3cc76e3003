package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnsupportedDBDriver indicates that the configured database driver
	// is neither "postgres" nor "sqlite3".
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
	// ErrInvalidSessionConfigs indicates invalid session settings
	// (for example, a missing session sign key).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
