package stream

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case evt, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestPublishReachesHotelSubscribers(t *testing.T) {
	b := NewBroker()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	grand := b.Subscribe(ctx, "grand", "")
	plaza := b.Subscribe(ctx, "plaza", "")

	b.Publish("grand", "order.updated", "o1", map[string]any{"status": "paid"})

	evt := receive(t, grand)
	assert.Equal(t, "order.updated", evt.Type)
	assert.Equal(t, "o1", evt.Entity)
	assert.NotEmpty(t, evt.ID)

	select {
	case evt := <-plaza:
		t.Fatalf("event for another hotel leaked: %+v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscribeClosesOnContextEnd(t *testing.T) {
	b := NewBroker()
	ctx, cancel := context.WithCancel(context.Background())

	ch := b.Subscribe(ctx, "grand", "")
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel was not closed after context end")
	}

	// Publishing after unsubscribe must not panic or block.
	b.Publish("grand", "order.updated", "o1", nil)
}

func TestReplayFromLastEventID(t *testing.T) {
	b := NewBroker()

	b.Publish("grand", "order.updated", "o1", map[string]any{"status": "paid"})

	first := b.replayedIDs("grand")
	require.Len(t, first, 1)

	b.Publish("grand", "order.updated", "o2", map[string]any{"status": "paid"})
	b.Publish("plaza", "order.updated", "o3", map[string]any{"status": "paid"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx, "grand", first[0])

	evt := receive(t, ch)
	assert.Equal(t, "o2", evt.Entity, "resume must skip already seen events and other hotels")

	select {
	case evt := <-ch:
		t.Fatalf("unexpected extra replay event: %+v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestReplayRingIsBounded(t *testing.T) {
	b := NewBroker()

	for i := 0; i < replayCapacity+10; i++ {
		b.Publish("grand", "order.updated", "o", nil)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	assert.Len(t, b.replay, replayCapacity)
}

func TestEventIDsAreOrdered(t *testing.T) {
	b := NewBroker()

	b.Publish("grand", "order.updated", "o1", nil)
	b.Publish("grand", "order.updated", "o2", nil)

	ids := b.replayedIDs("grand")
	require.Len(t, ids, 2)
	assert.Less(t, ids[0], ids[1], "event ids must sort by publish order")
}

// replayedIDs lists the ids currently buffered for a hotel, oldest first.
func (b *Broker) replayedIDs(hotelID string) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []string
	for _, evt := range b.replay {
		if evt.HotelID == hotelID {
			out = append(out, evt.ID)
		}
	}
	return out
}
