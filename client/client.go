// Package client is a Go SDK for the hotel administration API. It mirrors
// the dashboard's data layer: one credentialed session fetch that feeds a
// permission gate, filter-state-derived cache keys for list views, and a
// server-sent-event stream that patches the cache in place.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"
)

// Client is the entry point of the SDK. It owns the cookie jar that holds
// the session, the query cache and the session snapshot. All methods are
// safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client

	cache *Cache

	sessionMu sync.Mutex
	session   *Session
	loading   bool
}

// New builds a client against the given endpoints. The underlying HTTP
// client carries a cookie jar so a sign-in primes every later call.
func New(cfg Config) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &Client{
		cfg: cfg.withDefaults(),
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
		cache: NewCache(),
	}, nil
}

// Cache exposes the query cache, mainly so callers can observe or clear it.
func (c *Client) Cache() *Cache {
	return c.cache
}

// envelope is the uniform response wrapper the API uses.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  Meta            `json:"meta"`
	Error *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta carries the request identifier and, on list responses, pagination.
type Meta struct {
	RequestID string `json:"requestId"`
	Page      int    `json:"page"`
	PageSize  int    `json:"pageSize"`
	Total     int    `json:"total"`
}

// APIError is the single failure shape callers see, regardless of whether
// the server rejected the request at the HTTP layer or inside the envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// IsUnauthorized reports whether err is an APIError with HTTP status 401.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// do issues a JSON request and decodes the envelope. Error precedence
// follows the dashboard contract: a non-2xx status wins first, using the
// body's message when one is present and fallback otherwise; only for 2xx
// responses is the envelope's own error field consulted.
func (c *Client) do(ctx context.Context, method, url string, body any, fallback string) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: fallback}
		if decodeErr == nil && env.Error != nil && env.Error.Message != "" {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}

	if resp.StatusCode == http.StatusNoContent || len(raw) == 0 {
		return &envelope{}, nil
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	if env.Error != nil {
		return nil, &APIError{Status: resp.StatusCode, Code: env.Error.Code, Message: env.Error.Message}
	}
	return &env, nil
}
