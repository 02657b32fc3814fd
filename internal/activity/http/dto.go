package http

import (
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/activity"
)

type ActivityTypeResponse struct {
	ID              string    `json:"id"`
	HotelID         string    `json:"hotelId"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	DurationMinutes int       `json:"durationMinutes"`
	Capacity        int       `json:"capacity"`
	PriceCents      int64     `json:"priceCents"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func NewActivityTypeResponse(at *activity.ActivityType) ActivityTypeResponse {
	return ActivityTypeResponse{
		ID:              at.ID,
		HotelID:         at.HotelID,
		Name:            at.Name,
		Description:     at.Description,
		DurationMinutes: at.DurationMinutes,
		Capacity:        at.Capacity,
		PriceCents:      at.PriceCents,
		IsActive:        at.IsActive,
		CreatedAt:       at.CreatedAt,
		UpdatedAt:       at.UpdatedAt,
	}
}

type CreateActivityTypeRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     *string `json:"description"`
	DurationMinutes int     `json:"durationMinutes" binding:"omitempty,min=1"`
	Capacity        int     `json:"capacity" binding:"omitempty,min=1"`
	PriceCents      int64   `json:"priceCents" binding:"omitempty,min=0"`
}

type UpdateActivityTypeRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	DurationMinutes *int    `json:"durationMinutes" binding:"omitempty,min=1"`
	Capacity        *int    `json:"capacity" binding:"omitempty,min=1"`
	PriceCents      *int64  `json:"priceCents" binding:"omitempty,min=0"`
	IsActive        *bool   `json:"isActive"`
}
