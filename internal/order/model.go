package order

import (
	"net/http"
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "ORDER_NOT_FOUND", "order not found")
	ErrInvalidQuantity   = apperror.New(http.StatusBadRequest, "INVALID_QUANTITY", "quantity must be positive")
	ErrOverCapacity      = apperror.New(http.StatusConflict, "OVER_CAPACITY", "quantity exceeds the activity capacity")
	ErrActivityInactive  = apperror.New(http.StatusConflict, "ACTIVITY_INACTIVE", "activity is not open for orders")
	ErrInvalidTransition = apperror.New(http.StatusConflict, "INVALID_TRANSITION", "order cannot move to the requested status")
)

// Order statuses.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusFulfilled = "fulfilled"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPaid, StatusFulfilled, StatusCancelled:
		return true
	}
	return false
}

var transitions = map[string][]string{
	StatusPending: {StatusPaid, StatusCancelled},
	StatusPaid:    {StatusFulfilled, StatusCancelled},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order books seats on an activity for a guest.
type Order struct {
	ID             string
	HotelID        string
	GuestID        string
	ActivityTypeID string
	Status         string
	ScheduledAt    time.Time
	Quantity       int
	UnitPriceCents int64
	DiscountCents  int64
	TotalCents     int64
	PromoCode      *string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined for list views.
	GuestName    string
	ActivityName string
}

// Filter defines parameters for listing orders.
type Filter struct {
	HotelID        string
	Status         string
	ActivityTypeID string
	GuestSearch    string
	From           *time.Time
	To             *time.Time
	Page           int
	PageSize       int
	SortBy         string
	SortOrder      string
}
