package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The process must fail fast when required secrets or connection settings
// are absent, so missing values here are fatal rather than degraded-mode.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Driver != "postgres" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrUnsupportedDBDriver
	}

	if cfg.Session.SignKey == "" {
		return ErrInvalidSessionConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
