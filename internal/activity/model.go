package activity

import (
	"net/http"
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "ACTIVITY_TYPE_NOT_FOUND", "activity type not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "NAME_REQUIRED", "name is required")
)

// ActivityType is a bookable activity a hotel offers (spa slot, tour, class).
type ActivityType struct {
	ID              string
	HotelID         string
	Name            string
	Description     *string
	DurationMinutes int
	Capacity        int
	PriceCents      int64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Filter defines parameters for listing activity types.
type Filter struct {
	HotelID  string
	Search   string
	Page     int
	PageSize int
}
