package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "config-test-secret-that-is-long-enough!!"

// setRequiredEnv supplies the settings that have no defaults.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BLOOM_DATABASE_URL", "postgres://localhost:5432/bloom")
	t.Setenv("BLOOM_AUTH_JWT_SECRET", testSecret)
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply when only required settings are set", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Server.LogLevel)
		assert.Equal(t, 30, cfg.Auth.TokenLifetimeMinutes)
		assert.Equal(t, "uploads", cfg.Uploads.Dir)
		assert.Equal(t, "postgres://localhost:5432/bloom", cfg.Database.URL)
		assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BLOOM_SERVER_PORT", "9090")
		t.Setenv("BLOOM_SERVER_LOG_LEVEL", "debug")
		t.Setenv("BLOOM_AUTH_TOKEN_LIFETIME_MINUTES", "45")
		t.Setenv("BLOOM_UPLOADS_DIR", "/var/lib/bloom/uploads")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Server.LogLevel)
		assert.Equal(t, 45, cfg.Auth.TokenLifetimeMinutes)
		assert.Equal(t, "/var/lib/bloom/uploads", cfg.Uploads.Dir)
	})

	t.Run("missing database url fails validation", func(t *testing.T) {
		t.Setenv("BLOOM_AUTH_JWT_SECRET", testSecret)

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("short jwt secret fails validation", func(t *testing.T) {
		t.Setenv("BLOOM_DATABASE_URL", "postgres://localhost:5432/bloom")
		t.Setenv("BLOOM_AUTH_JWT_SECRET", "too-short")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid log level fails validation", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BLOOM_SERVER_LOG_LEVEL", "verbose")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive token lifetime fails validation", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BLOOM_AUTH_TOKEN_LIFETIME_MINUTES", "0")

		_, err := Load()
		assert.Error(t, err)
	})
}
