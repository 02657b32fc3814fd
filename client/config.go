package client

import "os"

// Config resolves the base URLs the SDK talks to. It is the single source
// of endpoint construction: callers never concatenate paths themselves.
type Config struct {
	// APIURL is the server origin, e.g. "http://localhost:3001".
	APIURL string
	// AuthURL is the authentication surface, defaults to APIURL + "/api/auth".
	AuthURL string
	// SSEURL is the live event stream, defaults to APIURL + "/api/v1/stream/events".
	SSEURL string
}

// ConfigFromEnv reads API_URL, AUTH_URL and SSE_URL from the environment,
// falling back to the local development defaults.
func ConfigFromEnv() Config {
	cfg := Config{
		APIURL:  getEnv("API_URL", "http://localhost:3001"),
		AuthURL: os.Getenv("AUTH_URL"),
		SSEURL:  os.Getenv("SSE_URL"),
	}
	return cfg.withDefaults()
}

// withDefaults fills the derived URLs that were left empty.
func (c Config) withDefaults() Config {
	if c.APIURL == "" {
		c.APIURL = "http://localhost:3001"
	}
	if c.AuthURL == "" {
		c.AuthURL = c.APIURL + "/api/auth"
	}
	if c.SSEURL == "" {
		c.SSEURL = c.APIURL + "/api/v1/stream/events"
	}
	return c
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
