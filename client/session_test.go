package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, ts *httptest.Server) *Client {
	t.Helper()
	c, err := New(Config{APIURL: ts.URL})
	require.NoError(t, err)
	return c
}

const sessionDoc = `{
	"data": {
		"user": {"id": "u1", "email": "owner@grand.test", "isSuperAdmin": false},
		"hotels": [{"id": "h1", "name": "Grand", "timezone": "Europe/Berlin"}],
		"activeHotel": {"id": "h1", "name": "Grand", "timezone": "Europe/Berlin"},
		"activeMember": {"userId": "u1", "hotelId": "h1", "role": "owner"},
		"permissions": {"orders": ["read", "create"]}
	},
	"meta": {"requestId": "r1"},
	"error": null
}`

func TestLoadSessionSuccess(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/api/v1/session", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sessionDoc))
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	s, err := c.LoadSession(context.Background())
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "u1", s.User.ID)
	assert.Equal(t, "h1", s.ActiveHotel.ID)
	assert.Equal(t, "owner", s.ActiveMember.Role)
	assert.True(t, c.Can("orders", "create"))
	assert.False(t, c.SessionLoading())
	assert.Equal(t, 1, calls)
}

func TestLoadSessionUnauthorized(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"data": null, "meta": {"requestId": "r1"}, "error": {"code": "UNAUTHENTICATED", "message": "missing token"}}`))
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	c.storeSession(&Session{User: User{ID: "stale"}})

	s, err := c.LoadSession(context.Background())

	// Signed out is a normal outcome, not an error.
	assert.NoError(t, err)
	assert.Nil(t, s)
	assert.Nil(t, c.Session())
	assert.False(t, c.SessionLoading())
	assert.Equal(t, 1, calls, "a 401 must not be retried")
}

func TestLoadSessionServerError(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"data": null, "meta": {"requestId": "r1"}, "error": {"code": "INTERNAL", "message": "internal server error"}}`))
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	c.storeSession(&Session{User: User{ID: "stale"}})

	s, err := c.LoadSession(context.Background())

	require.Error(t, err)
	assert.Nil(t, s)
	assert.Nil(t, c.Session(), "failure clears the stale snapshot")
	assert.False(t, c.SessionLoading())
	assert.Equal(t, 1, calls, "a failed load must not be retried")
}

func TestLoadSessionCopiesPermissions(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sessionDoc))
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	s, err := c.LoadSession(context.Background())
	require.NoError(t, err)

	s.Permissions["orders"][0] = "delete"
	s2, err := c.LoadSession(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "read", s2.Permissions["orders"][0])
}

func TestSetActiveHotelClearsCache(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/session/active-hotel", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sessionDoc))
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	c.cache.Put(DetailKey("orders", "o1"), map[string]any{"status": "pending"})

	s, err := c.SetActiveHotel(context.Background(), "h1")
	require.NoError(t, err)
	assert.Equal(t, "h1", s.ActiveHotel.ID)

	_, ok := c.cache.Get(DetailKey("orders", "o1"))
	assert.False(t, ok, "tenant switch invalidates everything")
}
