package audit

import (
	"time"
)

// Entry records one mutating action performed by a dashboard user.
type Entry struct {
	ID         string
	HotelID    string
	ActorID    string
	ActorEmail string
	Action     string // e.g. "reservation.cancel"
	EntityType string
	EntityID   *string
	Detail     map[string]any
	CreatedAt  time.Time
}

// Filter defines parameters for listing audit entries.
type Filter struct {
	HotelID    string
	ActorID    string
	EntityType string
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}
