package http

import (
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/inventory"
	"github.com/veranolabs/hotel-admin-backend/internal/reservation"
)

const dateLayout = "2006-01-02"

type ReservationResponse struct {
	ID            string    `json:"id"`
	HotelID       string    `json:"hotelId"`
	RoomID        string    `json:"roomId"`
	RoomNumber    string    `json:"roomNumber"`
	RoomTypeID    string    `json:"roomTypeId"`
	GuestID       string    `json:"guestId"`
	GuestName     string    `json:"guestName"`
	Status        string    `json:"status"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	SubtotalCents int64     `json:"subtotalCents"`
	DiscountCents int64     `json:"discountCents"`
	TotalCents    int64     `json:"totalCents"`
	PromoCode     *string   `json:"promoCode"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:            r.ID,
		HotelID:       r.HotelID,
		RoomID:        r.RoomID,
		RoomNumber:    r.RoomNumber,
		RoomTypeID:    r.RoomTypeID,
		GuestID:       r.GuestID,
		GuestName:     r.GuestName,
		Status:        r.Status,
		CheckIn:       r.CheckIn.Format(dateLayout),
		CheckOut:      r.CheckOut.Format(dateLayout),
		SubtotalCents: r.SubtotalCents,
		DiscountCents: r.DiscountCents,
		TotalCents:    r.TotalCents,
		PromoCode:     r.PromoCode,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type CreateReservationRequest struct {
	RoomID    string  `json:"roomId" binding:"required,uuid"`
	GuestID   string  `json:"guestId" binding:"required,uuid"`
	CheckIn   string  `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut  string  `json:"checkOut" binding:"required,datetime=2006-01-02"`
	PromoCode string  `json:"promoCode"`
	Notes     *string `json:"notes"`
}

type UpdateReservationRequest struct {
	RoomID   *string `json:"roomId" binding:"omitempty,uuid"`
	CheckIn  *string `json:"checkIn" binding:"omitempty,datetime=2006-01-02"`
	CheckOut *string `json:"checkOut" binding:"omitempty,datetime=2006-01-02"`
	Notes    *string `json:"notes"`
}

type ListReservationsQuery struct {
	Status      string `form:"status" binding:"omitempty,oneof=pending confirmed checked_in checked_out cancelled"`
	RoomTypeID  string `form:"room_type_id" binding:"omitempty,uuid"`
	Guest       string `form:"guest"`
	CheckInFrom string `form:"check_in_from" binding:"omitempty,datetime=2006-01-02"`
	CheckInTo   string `form:"check_in_to" binding:"omitempty,datetime=2006-01-02"`
}

type AvailabilityQuery struct {
	RoomTypeID string `form:"room_type_id" binding:"omitempty,uuid"`
	CheckIn    string `form:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut   string `form:"check_out" binding:"required,datetime=2006-01-02"`
}

type AvailableRoomResponse struct {
	ID           string `json:"id"`
	RoomTypeID   string `json:"roomTypeId"`
	RoomTypeName string `json:"roomTypeName"`
	Number       string `json:"number"`
	Floor        int    `json:"floor"`
}

func NewAvailableRoomResponse(r *inventory.Room) AvailableRoomResponse {
	return AvailableRoomResponse{
		ID:           r.ID,
		RoomTypeID:   r.RoomTypeID,
		RoomTypeName: r.RoomTypeName,
		Number:       r.Number,
		Floor:        r.Floor,
	}
}
