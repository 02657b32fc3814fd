package stream

import (
	"context"
	"sync"

	"github.com/veranolabs/hotel-admin-backend/internal/pkg/ids"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/obs"
)

// Event is one change notification pushed to dashboard clients.
// ID is a ULID, so ids order lexicographically by publish time and
// double as the Last-Event-ID resume cursor.
type Event struct {
	ID      string         `json:"-"`
	HotelID string         `json:"-"`
	Type    string         `json:"type"`
	Entity  string         `json:"id"`
	Patch   map[string]any `json:"patch"`
}

const (
	subscriberBuffer = 16
	replayCapacity   = 256
)

// Broker fan-outs events to the subscribers of each hotel. A bounded
// replay ring lets reconnecting clients catch up from their last seen
// event id instead of silently missing changes.
type Broker struct {
	mu     sync.RWMutex
	subs   map[int]*subscriber
	next   int
	replay []Event // oldest first, at most replayCapacity
}

type subscriber struct {
	hotelID string
	ch      chan Event
}

// NewBroker initialises an empty broker.
func NewBroker() *Broker {
	return &Broker{
		subs: make(map[int]*subscriber),
	}
}

// Subscribe registers a subscriber for one hotel and returns the channel
// events arrive on. Events published after lastEventID (when non-empty and
// still in the replay window) are delivered first. The channel is closed
// when the provided context ends.
func (b *Broker) Subscribe(ctx context.Context, hotelID string, lastEventID string) <-chan Event {
	ch := make(chan Event, subscriberBuffer)

	b.mu.Lock()
	if lastEventID != "" {
		for _, evt := range b.replay {
			if evt.HotelID == hotelID && evt.ID > lastEventID {
				select {
				case ch <- evt:
				default:
				}
			}
		}
	}
	id := b.next
	b.next++
	b.subs[id] = &subscriber{hotelID: hotelID, ch: ch}
	b.mu.Unlock()

	obs.StreamSubscriberAdd(1)

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, id)
		close(ch)
		b.mu.Unlock()
		obs.StreamSubscriberAdd(-1)
	}()

	return ch
}

// Publish assigns the event an id and fan-outs it to the hotel's subscribers.
func (b *Broker) Publish(hotelID, eventType, entityID string, patch map[string]any) {
	evt := Event{
		ID:      ids.New(),
		HotelID: hotelID,
		Type:    eventType,
		Entity:  entityID,
		Patch:   patch,
	}

	b.mu.Lock()
	b.replay = append(b.replay, evt)
	if len(b.replay) > replayCapacity {
		b.replay = b.replay[len(b.replay)-replayCapacity:]
	}
	for _, sub := range b.subs {
		if sub.hotelID != hotelID {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
			// Drop when subscriber is slow to avoid blocking.
		}
	}
	b.mu.Unlock()
}
