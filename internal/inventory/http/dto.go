package http

import (
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/inventory"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/request"
)

type RoomTypeResponse struct {
	ID            string    `json:"id"`
	HotelID       string    `json:"hotelId"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	Capacity      int       `json:"capacity"`
	BaseRateCents int64     `json:"baseRateCents"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewRoomTypeResponse(rt *inventory.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:            rt.ID,
		HotelID:       rt.HotelID,
		Name:          rt.Name,
		Description:   rt.Description,
		Capacity:      rt.Capacity,
		BaseRateCents: rt.BaseRateCents,
		CreatedAt:     rt.CreatedAt,
		UpdatedAt:     rt.UpdatedAt,
	}
}

type RoomResponse struct {
	ID           string    `json:"id"`
	HotelID      string    `json:"hotelId"`
	RoomTypeID   string    `json:"roomTypeId"`
	RoomTypeName string    `json:"roomTypeName"`
	Number       string    `json:"number"`
	Floor        int       `json:"floor"`
	Status       string    `json:"status"`
	PhotoPath    *string   `json:"photoPath"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewRoomResponse(r *inventory.Room) RoomResponse {
	return RoomResponse{
		ID:           r.ID,
		HotelID:      r.HotelID,
		RoomTypeID:   r.RoomTypeID,
		RoomTypeName: r.RoomTypeName,
		Number:       r.Number,
		Floor:        r.Floor,
		Status:       string(r.Status),
		PhotoPath:    r.PhotoPath,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type CreateRoomTypeRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   *string `json:"description"`
	Capacity      int     `json:"capacity" binding:"omitempty,min=1"`
	BaseRateCents int64   `json:"baseRateCents" binding:"omitempty,min=0"`
}

type UpdateRoomTypeRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Capacity      *int    `json:"capacity" binding:"omitempty,min=1"`
	BaseRateCents *int64  `json:"baseRateCents" binding:"omitempty,min=0"`
}

type CreateRoomRequest struct {
	RoomTypeID string `json:"roomTypeId" binding:"required,uuid"`
	Number     string `json:"number" binding:"required"`
	Floor      int    `json:"floor"`
}

type UpdateRoomRequest struct {
	RoomTypeID *string `json:"roomTypeId" binding:"omitempty,uuid"`
	Number     *string `json:"number"`
	Floor      *int    `json:"floor"`
	Status     *string `json:"status" binding:"omitempty,oneof=available occupied maintenance"`
}

// ListRoomsRequest defines query parameters for listing rooms.
type ListRoomsRequest struct {
	request.ListParams
	RoomTypeID string `form:"room_type_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=available occupied maintenance"`
}
