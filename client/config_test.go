package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("API_URL", "")
	t.Setenv("AUTH_URL", "")
	t.Setenv("SSE_URL", "")

	cfg := ConfigFromEnv()

	assert.Equal(t, "http://localhost:3001", cfg.APIURL)
	assert.Equal(t, "http://localhost:3001/api/auth", cfg.AuthURL)
	assert.Equal(t, "http://localhost:3001/api/v1/stream/events", cfg.SSEURL)
}

func TestConfigFromEnvDerivesFromAPIURL(t *testing.T) {
	t.Setenv("API_URL", "https://api.grand.example")
	t.Setenv("AUTH_URL", "")
	t.Setenv("SSE_URL", "")

	cfg := ConfigFromEnv()

	assert.Equal(t, "https://api.grand.example/api/auth", cfg.AuthURL)
	assert.Equal(t, "https://api.grand.example/api/v1/stream/events", cfg.SSEURL)
}

func TestConfigFromEnvExplicitOverrides(t *testing.T) {
	t.Setenv("API_URL", "https://api.grand.example")
	t.Setenv("AUTH_URL", "https://auth.grand.example")
	t.Setenv("SSE_URL", "https://push.grand.example/events")

	cfg := ConfigFromEnv()

	assert.Equal(t, "https://auth.grand.example", cfg.AuthURL)
	assert.Equal(t, "https://push.grand.example/events", cfg.SSEURL)
}
