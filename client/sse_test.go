package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoffDelaySchedule(t *testing.T) {
	tests := []struct {
		attempts int
		want     time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second},
		{6, 30 * time.Second},
		{50, 30 * time.Second},
		{-1, time.Second},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempts=%d", tt.attempts), func(t *testing.T) {
			assert.Equal(t, tt.want, backoffDelay(tt.attempts))
		})
	}
}

func TestParseStreamEvent(t *testing.T) {
	evt, err := parseStreamEvent([]byte(`{"type": "order.updated", "id": "o1", "patch": {"status": "paid"}}`))
	require.NoError(t, err)
	assert.Equal(t, "order.updated", evt.Type)
	assert.Equal(t, "o1", evt.Entity)
	assert.Equal(t, "paid", evt.Patch["status"])
}

func TestParseStreamEventRejectsIncompletePayloads(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `status changed`},
		{"missing type", `{"id": "o1", "patch": {}}`},
		{"missing id", `{"type": "order.updated", "patch": {}}`},
		{"missing patch", `{"type": "order.updated", "id": "o1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseStreamEvent([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestResourceForEvent(t *testing.T) {
	assert.Equal(t, "orders", resourceForEvent("order.updated"))
	assert.Equal(t, "reservations", resourceForEvent("reservation.updated"))
	assert.Equal(t, "", resourceForEvent("guest.updated"))
}

func TestDispatchAppliesPatch(t *testing.T) {
	c, err := New(Config{})
	require.NoError(t, err)
	c.cache.Put(DetailKey("orders", "o1"), map[string]any{"status": "pending", "guestName": "Annika"})
	c.cache.Put(ListKey("orders", defaultOrderParams()), "orders page")

	var seen []StreamEvent
	s := &Stream{client: c, handler: func(evt StreamEvent) { seen = append(seen, evt) }}

	s.dispatch("01A", "message", `{"type": "order.updated", "id": "o1", "patch": {"status": "paid"}}`)

	cached, ok := c.cache.Get(DetailKey("orders", "o1"))
	require.True(t, ok)
	detail := cached.(map[string]any)
	assert.Equal(t, "paid", detail["status"])
	assert.Equal(t, "Annika", detail["guestName"])

	_, ok = c.cache.Get(ListKey("orders", defaultOrderParams()))
	assert.False(t, ok)

	require.Len(t, seen, 1)
	assert.Equal(t, "01A", s.LastEventID())
}

func TestDispatchDropsMalformedEvent(t *testing.T) {
	c, err := New(Config{})
	require.NoError(t, err)
	c.cache.Put(DetailKey("orders", "o1"), map[string]any{"status": "pending"})
	c.cache.Put(ListKey("orders", defaultOrderParams()), "orders page")

	var called bool
	s := &Stream{client: c, handler: func(StreamEvent) { called = true }}

	s.dispatch("01B", "message", `{"type": "order.updated"}`)

	cached, ok := c.cache.Get(DetailKey("orders", "o1"))
	require.True(t, ok)
	assert.Equal(t, "pending", cached.(map[string]any)["status"])

	_, ok = c.cache.Get(ListKey("orders", defaultOrderParams()))
	assert.True(t, ok, "a dropped event must leave all caches untouched")

	assert.False(t, called)
	assert.Equal(t, "01B", s.LastEventID(), "id-bearing frames still move the cursor")
}

func TestDispatchIgnoresPingAndConnected(t *testing.T) {
	c, err := New(Config{})
	require.NoError(t, err)

	var called bool
	s := &Stream{client: c, handler: func(StreamEvent) { called = true }}

	s.dispatch("", "connected", `{"at": "2026-08-31T10:00:00Z"}`)
	s.dispatch("01C", "ping", `{"lastEventId": "01C"}`)

	assert.False(t, called)
	assert.Equal(t, "01C", s.LastEventID())
}

func TestStreamConsumesLiveConnection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)

		fmt.Fprint(w, "event: connected\ndata: {\"at\": \"now\"}\n\n")
		fmt.Fprint(w, "id: 01D\nevent: message\ndata: {\"type\": \"order.updated\", \"id\": \"o1\", \"patch\": {\"status\": \"paid\"}}\n\n")
		flusher.Flush()

		<-r.Context().Done()
	}))
	defer ts.Close()

	c, err := New(Config{SSEURL: ts.URL})
	require.NoError(t, err)
	c.cache.Put(DetailKey("orders", "o1"), map[string]any{"status": "pending"})

	events := make(chan StreamEvent, 1)
	s := &Stream{client: c, http: ts.Client(), handler: func(evt StreamEvent) { events <- evt }}
	s.attempts = 4
	s.Connect(context.Background())
	defer s.Close()

	select {
	case evt := <-events:
		assert.Equal(t, "order.updated", evt.Type)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for stream event")
	}

	assert.Equal(t, StateConnected, s.State())
	assert.Equal(t, "01D", s.LastEventID())

	s.mu.Lock()
	attempts := s.attempts
	s.mu.Unlock()
	assert.Equal(t, 0, attempts, "a successful open resets the backoff")

	cached, ok := c.cache.Get(DetailKey("orders", "o1"))
	require.True(t, ok)
	assert.Equal(t, "paid", cached.(map[string]any)["status"])

	s.Close()
	assert.Equal(t, StateDisconnected, s.State())
}

func TestConnectWhileRunningIsNoOp(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	defer ts.Close()

	c, err := New(Config{SSEURL: ts.URL})
	require.NoError(t, err)

	s := &Stream{client: c, http: ts.Client()}
	s.Connect(context.Background())
	defer s.Close()

	done := s.done
	s.Connect(context.Background())
	assert.Equal(t, done, s.done, "a second connect must not spawn another loop")
}
