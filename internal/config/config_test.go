package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "school-service", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "RS256", cfg.Auth.Algorithm)
	assert.Equal(t, 15, cfg.Auth.AccessTokenTTLMinutes)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 5*time.Minute, cfg.Auth.LoginWindow())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("AUTH_JWT_ALGORITHM", "ES256")
	t.Setenv("AUTH_JWT_PRIVATE_KEY_PATH", "/keys/jwt.key")
	t.Setenv("AUTH_JWT_PUBLIC_KEY_PATH", "/keys/jwt.pub")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "ES256", cfg.Auth.Algorithm)
	assert.Equal(t, "/keys/jwt.key", cfg.Auth.PrivateKeyPath)
	assert.Equal(t, "/keys/jwt.pub", cfg.Auth.PublicKeyPath)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL())
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}

func TestAccessTokenTTL_Fallback(t *testing.T) {
	cfg := AuthConfig{AccessTokenTTLMinutes: 0}
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL())

	cfg.AccessTokenTTLMinutes = -5
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL())
}
