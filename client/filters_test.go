package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderFiltersNarrowingResetsPage(t *testing.T) {
	tests := []struct {
		name  string
		apply func(f *OrderFilters)
	}{
		{"search", func(f *OrderFilters) { f.SetSearch("kay") }},
		{"status", func(f *OrderFilters) { f.SetStatus("paid") }},
		{"activity type", func(f *OrderFilters) { f.SetActivityType("a1") }},
		{"guest", func(f *OrderFilters) { f.SetGuest("annika") }},
		{"scheduled range", func(f *OrderFilters) { f.SetScheduledRange("2026-09-01", "2026-09-07") }},
		{"page size", func(f *OrderFilters) { f.SetPageSize(50) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewOrderFilters()
			f.SetPage(7)
			tt.apply(&f)
			assert.Equal(t, 1, f.Page)
		})
	}
}

func TestSetSortKeepsPage(t *testing.T) {
	f := NewReservationFilters()
	f.SetPage(4)
	f.SetSort("-check_in")

	assert.Equal(t, 4, f.Page)
	assert.Equal(t, "-check_in", f.Sort)
}

func TestResetRestoresDefaults(t *testing.T) {
	f := NewReservationFilters()
	f.SetSearch("smith")
	f.SetStatus("confirmed")
	f.SetRoomType("rt1")
	f.SetCheckInRange("2026-09-01", "2026-09-05")
	f.SetSort("-created_at")
	f.SetPage(3)

	f.Reset()

	assert.Equal(t, NewReservationFilters(), f)
}

func TestSetPageClampsToOne(t *testing.T) {
	f := NewOrderFilters()
	f.SetPage(0)
	assert.Equal(t, 1, f.Page)

	f.SetPage(-3)
	assert.Equal(t, 1, f.Page)
}

func TestParamsOmitEmptyFields(t *testing.T) {
	f := NewOrderFilters()
	f.SetStatus("pending")

	v := f.Params()
	assert.Equal(t, "pending", v.Get("status"))
	assert.Equal(t, "1", v.Get("page"))
	assert.Equal(t, "20", v.Get("page_size"))
	assert.False(t, v.Has("search"))
	assert.False(t, v.Has("guest"))
	assert.False(t, v.Has("from"))
	assert.False(t, v.Has("sort"))
}

func TestAvailabilityParams(t *testing.T) {
	f := NewAvailabilityFilters()
	f.SetStay("2026-09-01", "2026-09-04")
	f.SetRoomType("rt1")

	v := f.Params()
	assert.Equal(t, "2026-09-01", v.Get("check_in"))
	assert.Equal(t, "2026-09-04", v.Get("check_out"))
	assert.Equal(t, "rt1", v.Get("room_type_id"))

	f.Reset()
	assert.Empty(t, f.Params())
}
