package http

import (
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/guest"
)

type GuestResponse struct {
	ID        string    `json:"id"`
	HotelID   string    `json:"hotelId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewGuestResponse(g *guest.Guest) GuestResponse {
	return GuestResponse{
		ID:        g.ID,
		HotelID:   g.HotelID,
		Name:      g.Name,
		Email:     g.Email,
		Phone:     g.Phone,
		Notes:     g.Notes,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

type CreateGuestRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

type UpdateGuestRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}
