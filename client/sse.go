package client

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

// StreamState is the connection phase of the event stream.
type StreamState int

const (
	StateDisconnected StreamState = iota
	StateConnecting
	StateConnected
)

func (s StreamState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

const (
	baseBackoff = time.Second
	maxBackoff  = 30 * time.Second
)

// backoffDelay returns the reconnect delay after the given number of
// consecutive failures: the base delay doubled per attempt, capped.
func backoffDelay(attempts int) time.Duration {
	if attempts < 0 {
		attempts = 0
	}
	// 1s << 5 already exceeds the cap
	if attempts >= 5 {
		return maxBackoff
	}
	d := baseBackoff << attempts
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

// StreamEvent is one validated update pushed by the server.
type StreamEvent struct {
	Type   string         `json:"type"`
	Entity string         `json:"id"`
	Patch  map[string]any `json:"patch"`
}

// parseStreamEvent decodes and validates an event payload. Anything that
// does not carry the full {type, id, patch} shape is rejected.
func parseStreamEvent(data []byte) (*StreamEvent, error) {
	var evt StreamEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, err
	}
	if evt.Type == "" {
		return nil, errors.New("event missing type")
	}
	if evt.Entity == "" {
		return nil, errors.New("event missing id")
	}
	if evt.Patch == nil {
		return nil, errors.New("event missing patch")
	}
	return &evt, nil
}

// resourceForEvent maps an event type to the cached resource it affects.
// Unknown types return "" and are ignored.
func resourceForEvent(eventType string) string {
	switch {
	case strings.HasPrefix(eventType, "order."):
		return "orders"
	case strings.HasPrefix(eventType, "reservation."):
		return "reservations"
	default:
		return ""
	}
}

// Stream is a live server-sent-event connection. It reconnects with
// exponential backoff, tracks the last seen event id so a reconnect
// resumes where it left off, and applies validated events to the query
// cache. At most one connection is live per Stream.
type Stream struct {
	client  *Client
	http    *http.Client
	handler func(StreamEvent)

	mu          sync.Mutex
	state       StreamState
	attempts    int
	lastEventID string
	running     bool
	cancel      context.CancelFunc
	done        chan struct{}
}

// OpenStream connects to the event stream and starts consuming it. The
// optional handler observes every validated event after it has been
// applied to the cache. Callers must Close the stream when done.
func (c *Client) OpenStream(ctx context.Context, handler func(StreamEvent)) *Stream {
	s := &Stream{
		client: c,
		// The shared client enforces a request timeout, which would cut a
		// long-lived stream. Only the cookie jar is reused.
		http:    &http.Client{Jar: c.http.Jar},
		handler: handler,
	}
	s.Connect(ctx)
	return s
}

// State returns the current connection phase.
func (s *Stream) State() StreamState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastEventID returns the resume cursor from the latest id-bearing frame.
func (s *Stream) LastEventID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastEventID
}

// Connect starts the consume loop. Calling it while a loop is already
// running is a no-op.
func (s *Stream) Connect(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.running = true
	s.done = make(chan struct{})
	s.mu.Unlock()

	go s.run(ctx)
}

// Close tears the connection down and cancels any pending reconnect. It
// blocks until the consume loop has exited.
func (s *Stream) Close() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Stream) run(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.state = StateDisconnected
		s.running = false
		s.mu.Unlock()
		close(s.done)
	}()

	for {
		s.setState(StateConnecting)

		err := s.consume(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			log.Printf("event stream disconnected: %v", err)
		}

		s.mu.Lock()
		delay := backoffDelay(s.attempts)
		s.attempts++
		s.state = StateDisconnected
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

// consume opens one connection and reads frames until it breaks.
func (s *Stream) consume(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.client.cfg.SSEURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if cursor := s.LastEventID(); cursor != "" {
		req.Header.Set("Last-Event-ID", cursor)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("event stream returned status %d", resp.StatusCode)
	}

	// The transport is open: a fresh failure starts backoff from scratch.
	s.mu.Lock()
	s.state = StateConnected
	s.attempts = 0
	s.mu.Unlock()

	var id, event, data string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()

		// A blank line terminates the frame.
		if strings.TrimSpace(line) == "" {
			s.dispatch(id, event, data)
			id, event, data = "", "", ""
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "id:"):
			id = strings.TrimPrefix(strings.TrimPrefix(line, "id:"), " ")
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimPrefix(strings.TrimPrefix(line, "event:"), " ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		case strings.HasPrefix(line, "data:"):
			data = strings.TrimPrefix(line, "data:")
		}
	}
	return scanner.Err()
}

// dispatch handles one complete frame. Validation failures are logged and
// dropped without touching the cache or the connection.
func (s *Stream) dispatch(id, event, data string) {
	if id != "" {
		s.mu.Lock()
		s.lastEventID = id
		s.mu.Unlock()
	}

	// "connected" greets, "ping" keeps the connection alive.
	if event != "message" || data == "" {
		return
	}

	evt, err := parseStreamEvent([]byte(data))
	if err != nil {
		log.Printf("dropping malformed stream event: %v", err)
		return
	}

	if resource := resourceForEvent(evt.Type); resource != "" {
		s.client.cache.ApplyPatch(resource, evt.Entity, evt.Patch)
	}
	if s.handler != nil {
		s.handler(*evt)
	}
}

func (s *Stream) setState(state StreamState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
