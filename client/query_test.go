package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeSession() *Session {
	return &Session{
		User:        User{ID: "u1"},
		ActiveHotel: &HotelSummary{ID: "h1", Name: "Grand"},
		Permissions: PermissionMap{"orders": {"read"}},
	}
}

func TestListDisabledWithoutActiveHotel(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("hotel-scoped query must not fetch without an active hotel")
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	f := NewOrderFilters()

	result, err := c.List(context.Background(), "orders", &f)
	assert.NoError(t, err)
	assert.Nil(t, result)

	detail, err := c.Detail(context.Background(), "orders", "o1")
	assert.NoError(t, err)
	assert.Nil(t, detail)
}

func TestListFetchesAndCaches(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/api/v1/orders", r.URL.Path)
		assert.Equal(t, "paid", r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [{"id": "o1", "status": "paid"}],
			"meta": {"requestId": "r1", "page": 1, "pageSize": 20, "total": 1},
			"error": null
		}`))
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	c.storeSession(activeSession())

	f := NewOrderFilters()
	f.SetStatus("paid")

	result, err := c.List(context.Background(), "orders", &f)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "o1", result.Items[0]["id"])
	assert.Equal(t, 1, result.Total)

	// A deeply equal snapshot hits the cache.
	again := NewOrderFilters()
	again.SetStatus("paid")
	_, err = c.List(context.Background(), "orders", &again)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// Changing any field forces a fresh fetch.
	f.SetPage(2)
	_, err = c.List(context.Background(), "orders", &f)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestListErrorUsesBodyMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"data": null, "meta": {"requestId": "r1"}, "error": {"code": "FORBIDDEN", "message": "missing permission"}}`))
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	c.storeSession(activeSession())

	f := NewOrderFilters()
	_, err := c.List(context.Background(), "orders", &f)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "missing permission", apiErr.Message)
}

func TestListErrorFallbackMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream blew up"))
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	c.storeSession(activeSession())

	f := NewOrderFilters()
	_, err := c.List(context.Background(), "orders", &f)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "failed to load orders", apiErr.Message)
}

func TestListEnvelopeErrorOn2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": null, "meta": {"requestId": "r1"}, "error": {"code": "INTERNAL", "message": "query failed"}}`))
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	c.storeSession(activeSession())

	f := NewOrderFilters()
	_, err := c.List(context.Background(), "orders", &f)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "query failed", apiErr.Message)
}

func TestDetailFetchesAndCaches(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/api/v1/orders/o1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"id": "o1", "status": "pending"}, "meta": {"requestId": "r1"}, "error": null}`))
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	c.storeSession(activeSession())

	detail, err := c.Detail(context.Background(), "orders", "o1")
	require.NoError(t, err)
	assert.Equal(t, "pending", detail["status"])

	_, err = c.Detail(context.Background(), "orders", "o1")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestUserScopedListWithoutActiveHotel(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/api/v1/hotels", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [], "meta": {"requestId": "r1"}, "error": null}`))
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	c.storeSession(&Session{User: User{ID: "u1"}})

	f := NewOrderFilters()
	result, err := c.List(context.Background(), "hotels", &f)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, calls)
}
