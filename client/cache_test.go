package client

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

// defaultOrderParams materializes a default OrderFilters value so its
// pointer-receiver Params method can be called.
func defaultOrderParams() url.Values {
	f := NewOrderFilters()
	return f.Params()
}

// defaultReservationParams is the ReservationFilters counterpart of
// defaultOrderParams.
func defaultReservationParams() url.Values {
	f := NewReservationFilters()
	return f.Params()
}

func TestListKeyDeterministic(t *testing.T) {
	a := NewOrderFilters()
	a.SetStatus("paid")
	a.SetGuest("annika")

	// Same snapshot built through a different mutation order.
	b := NewOrderFilters()
	b.SetGuest("annika")
	b.SetStatus("paid")

	assert.Equal(t, ListKey("orders", a.Params()), ListKey("orders", b.Params()))
}

func TestListKeySensitiveToEveryField(t *testing.T) {
	a := NewOrderFilters()
	b := NewOrderFilters()
	b.SetSort("-total")

	assert.NotEqual(t, ListKey("orders", a.Params()), ListKey("orders", b.Params()))
}

func TestInvalidateListsIsPrefixScoped(t *testing.T) {
	cache := NewCache()
	cache.Put(ListKey("orders", defaultOrderParams()), "orders page")
	cache.Put(ListKey("reservations", defaultReservationParams()), "reservations page")
	cache.Put(DetailKey("orders", "o1"), map[string]any{"status": "pending"})

	cache.InvalidateLists("orders")

	_, ok := cache.Get(ListKey("orders", defaultOrderParams()))
	assert.False(t, ok)

	_, ok = cache.Get(ListKey("reservations", defaultReservationParams()))
	assert.True(t, ok)

	_, ok = cache.Get(DetailKey("orders", "o1"))
	assert.True(t, ok)
}

func TestApplyPatchShallowMergesDetail(t *testing.T) {
	cache := NewCache()
	cache.Put(DetailKey("orders", "o1"), map[string]any{
		"status":     "pending",
		"guestName":  "Annika",
		"totalCents": float64(5000),
	})
	cache.Put(ListKey("orders", defaultOrderParams()), "orders page")

	cache.ApplyPatch("orders", "o1", map[string]any{"status": "paid"})

	cached, ok := cache.Get(DetailKey("orders", "o1"))
	assert.True(t, ok)
	detail := cached.(map[string]any)
	assert.Equal(t, "paid", detail["status"])
	assert.Equal(t, "Annika", detail["guestName"])

	_, ok = cache.Get(ListKey("orders", defaultOrderParams()))
	assert.False(t, ok, "list entries should go stale on patch")
}

func TestApplyPatchWithoutDetailEntry(t *testing.T) {
	cache := NewCache()
	cache.Put(ListKey("orders", defaultOrderParams()), "orders page")

	cache.ApplyPatch("orders", "missing", map[string]any{"status": "paid"})

	_, ok := cache.Get(DetailKey("orders", "missing"))
	assert.False(t, ok)

	_, ok = cache.Get(ListKey("orders", defaultOrderParams()))
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	cache := NewCache()
	cache.Put(DetailKey("orders", "o1"), map[string]any{"status": "pending"})

	cache.Clear()

	_, ok := cache.Get(DetailKey("orders", "o1"))
	assert.False(t, ok)
}
