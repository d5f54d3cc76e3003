package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Session: Session{
			SignKey:  "jwt_secret",
			Issuer:   "booknotes",
			Duration: 24 * time.Hour,
		},
		Storage: Storage{
			DB: DB{Driver: "postgres", DSN: "postgres://localhost/booknotes"},
		},
		Server: Server{HTTPAddress: ":3001", RequestTimeout: 30 * time.Second},
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validConfig().validate())
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_UnsupportedDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.Driver = "oracle"

	assert.ErrorIs(t, cfg.validate(), ErrUnsupportedDBDriver)
}

func TestValidate_MissingSignKey(t *testing.T) {
	cfg := validConfig()
	cfg.Session.SignKey = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidSessionConfigs)
}

func TestValidate_MissingAddress(t *testing.T) {
	cfg := validConfig()
	cfg.Server.HTTPAddress = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}
