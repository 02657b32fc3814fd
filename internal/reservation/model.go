package reservation

import (
	"net/http"
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "RESERVATION_NOT_FOUND", "reservation not found")
	ErrInvalidDateRange  = apperror.New(http.StatusBadRequest, "INVALID_DATE_RANGE", "check-in must be before check-out")
	ErrRoomUnavailable   = apperror.New(http.StatusConflict, "ROOM_UNAVAILABLE", "room is not available for the requested dates")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "INVALID_STATUS", "invalid reservation status")
	ErrInvalidTransition = apperror.New(http.StatusConflict, "INVALID_TRANSITION", "reservation cannot move to the requested status")
	ErrAlreadyCheckedIn  = apperror.New(http.StatusConflict, "ALREADY_CHECKED_IN", "reservation cannot be cancelled after check-in")
)

// Reservation statuses.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

// ValidStatus reports whether s is a known reservation status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}

// transitions maps each status to the statuses it may move to.
// Cancellation is only possible before check-in.
var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

// CanTransition reports whether a reservation may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Reservation is a stay booked for one room and one guest.
// Check-in and check-out are dates; the night of check-out is not occupied.
type Reservation struct {
	ID            string
	HotelID       string
	RoomID        string
	GuestID       string
	Status        string
	CheckIn       time.Time
	CheckOut      time.Time
	SubtotalCents int64
	DiscountCents int64
	TotalCents    int64
	PromoCode     *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined for list views.
	GuestName  string
	RoomNumber string
	RoomTypeID string
}

// Filter defines parameters for listing reservations.
type Filter struct {
	HotelID     string
	Status      string
	RoomTypeID  string
	GuestSearch string
	CheckInFrom *time.Time
	CheckInTo   *time.Time
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}
