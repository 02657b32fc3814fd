package http

import (
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/hotel"
)

// HotelTag holds minimal hotel info for embedding in other responses.
type HotelTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type HotelResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	Timezone  string    `json:"timezone"`
	PhotoPath *string   `json:"photoPath"`
	CreatedAt time.Time `json:"createdAt"`
	IsActive  bool      `json:"isActive"`
}

func NewHotelResponse(h *hotel.Hotel) HotelResponse {
	return HotelResponse{
		ID:        h.ID,
		Name:      h.Name,
		Address:   h.Address,
		Timezone:  h.Timezone,
		PhotoPath: h.PhotoPath,
		CreatedAt: h.CreatedAt,
		IsActive:  h.IsActive,
	}
}

type MemberResponse struct {
	UserID    string    `json:"userId"`
	HotelID   string    `json:"hotelId"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewMemberResponse(m *hotel.Member) MemberResponse {
	return MemberResponse{
		UserID:    m.UserID,
		HotelID:   m.HotelID,
		Email:     m.Email,
		Name:      m.Name,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}

type InvitationResponse struct {
	ID        string    `json:"id"`
	HotelID   string    `json:"hotelId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewInvitationResponse(inv *hotel.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:        inv.ID,
		HotelID:   inv.HotelID,
		Email:     inv.Email,
		Role:      inv.Role,
		Status:    inv.Status,
		ExpiresAt: inv.ExpiresAt,
		CreatedAt: inv.CreatedAt,
	}
}

type CreateHotelRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateHotelRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
	IsActive *bool   `json:"isActive"`
}

type UpdateMemberRequest struct {
	Role string `json:"role" binding:"required,oneof=owner admin manager staff viewer"`
}

type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=admin manager staff viewer"`
}
