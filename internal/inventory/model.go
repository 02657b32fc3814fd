package inventory

import (
	"net/http"
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
)

var (
	ErrRoomTypeNotFound = apperror.New(http.StatusNotFound, "ROOM_TYPE_NOT_FOUND", "room type not found")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "ROOM_NOT_FOUND", "room not found")
	ErrNameRequired     = apperror.New(http.StatusBadRequest, "NAME_REQUIRED", "name is required")
	ErrNumberTaken      = apperror.New(http.StatusConflict, "ROOM_NUMBER_TAKEN", "room number already exists in this hotel")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "INVALID_STATUS", "invalid room status")
	ErrRoomTypeInUse    = apperror.New(http.StatusConflict, "ROOM_TYPE_IN_USE", "room type still has rooms assigned")
	ErrWrongHotel       = apperror.New(http.StatusNotFound, "ROOM_TYPE_NOT_FOUND", "room type belongs to another hotel")
)

// RoomType describes a bookable category of rooms within a hotel.
type RoomType struct {
	ID            string
	HotelID       string
	Name          string
	Description   *string
	Capacity      int
	BaseRateCents int64 // nightly rate before pricing rules
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Room statuses.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// ValidRoomStatus reports whether s is a known room status.
func ValidRoomStatus(s RoomStatus) bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

// Room is a physical room belonging to a room type.
type Room struct {
	ID           string
	HotelID      string
	RoomTypeID   string
	RoomTypeName string
	Number       string
	Floor        int
	Status       RoomStatus
	PhotoPath    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoomFilter defines parameters for listing rooms.
type RoomFilter struct {
	HotelID    string
	RoomTypeID string
	Status     string
	Search     string // matches room number
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

// RoomTypeFilter defines parameters for listing room types.
type RoomTypeFilter struct {
	HotelID  string
	Search   string
	Page     int
	PageSize int
}
