package metrics

import (
	"net/http"
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
)

var ErrInvalidRange = apperror.New(http.StatusBadRequest, "INVALID_RANGE", "from must not be after to")

// Overview is the dashboard snapshot for one hotel on one date.
type Overview struct {
	Date                time.Time `json:"date"`
	TotalRooms          int       `json:"totalRooms"`
	OccupiedRooms       int       `json:"occupiedRooms"`
	OccupancyPercent    float64   `json:"occupancyPercent"`
	Arrivals            int       `json:"arrivals"`
	Departures          int       `json:"departures"`
	PendingReservations int       `json:"pendingReservations"`
	OpenOrders          int       `json:"openOrders"`
}

// RevenuePoint is revenue booked on one day, split by source.
type RevenuePoint struct {
	Date                    time.Time `json:"date"`
	ReservationRevenueCents int64     `json:"reservationRevenueCents"`
	OrderRevenueCents       int64     `json:"orderRevenueCents"`
}
