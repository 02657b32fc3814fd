package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/hotel_test")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsProduction)
	assert.Equal(t, ":3001", cfg.HTTPAddr)
	assert.Equal(t, 12*time.Hour, cfg.JWTAccessTokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "./media", cfg.MediaDir)
	assert.False(t, cfg.CookieSecure)
}

func TestLoadRequiresDSN(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_DSN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadProduction(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PROD_ORIGINS", "https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, "https://admin.example.com", cfg.ProdOrigins)
}

func TestLoadRejectsBadTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_ACCESS_TOKEN_TTL", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadBcryptCost(t *testing.T) {
	setRequired(t)
	t.Setenv("BCRYPT_COST", "cheap")

	_, err := Load()
	assert.Error(t, err)
}
