package http

import (
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/order"
)

type OrderResponse struct {
	ID             string    `json:"id"`
	HotelID        string    `json:"hotelId"`
	GuestID        string    `json:"guestId"`
	GuestName      string    `json:"guestName"`
	ActivityTypeID string    `json:"activityTypeId"`
	ActivityName   string    `json:"activityName"`
	Status         string    `json:"status"`
	ScheduledAt    time.Time `json:"scheduledAt"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	DiscountCents  int64     `json:"discountCents"`
	TotalCents     int64     `json:"totalCents"`
	PromoCode      *string   `json:"promoCode"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func NewOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		HotelID:        o.HotelID,
		GuestID:        o.GuestID,
		GuestName:      o.GuestName,
		ActivityTypeID: o.ActivityTypeID,
		ActivityName:   o.ActivityName,
		Status:         o.Status,
		ScheduledAt:    o.ScheduledAt,
		Quantity:       o.Quantity,
		UnitPriceCents: o.UnitPriceCents,
		DiscountCents:  o.DiscountCents,
		TotalCents:     o.TotalCents,
		PromoCode:      o.PromoCode,
		Notes:          o.Notes,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

type CreateOrderRequest struct {
	GuestID        string    `json:"guestId" binding:"required,uuid"`
	ActivityTypeID string    `json:"activityTypeId" binding:"required,uuid"`
	ScheduledAt    time.Time `json:"scheduledAt" binding:"required"`
	Quantity       int       `json:"quantity" binding:"required,min=1"`
	PromoCode      string    `json:"promoCode"`
	Notes          *string   `json:"notes"`
}

type UpdateOrderRequest struct {
	ScheduledAt *time.Time `json:"scheduledAt"`
	Quantity    *int       `json:"quantity" binding:"omitempty,min=1"`
	Notes       *string    `json:"notes"`
}

type ListOrdersQuery struct {
	Status         string `form:"status" binding:"omitempty,oneof=pending paid fulfilled cancelled"`
	ActivityTypeID string `form:"activity_type_id" binding:"omitempty,uuid"`
	Guest          string `form:"guest"`
	From           string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To             string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}
