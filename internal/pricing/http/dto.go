package http

import (
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/pricing"
)

type RuleResponse struct {
	ID         string    `json:"id"`
	HotelID    string    `json:"hotelId"`
	RoomTypeID *string   `json:"roomTypeId"`
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	Value      int64     `json:"value"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Priority   int       `json:"priority"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

const dateLayout = "2006-01-02"

func NewRuleResponse(r *pricing.Rule) RuleResponse {
	return RuleResponse{
		ID:         r.ID,
		HotelID:    r.HotelID,
		RoomTypeID: r.RoomTypeID,
		Name:       r.Name,
		Kind:       string(r.Kind),
		Value:      r.Value,
		StartDate:  r.StartDate.Format(dateLayout),
		EndDate:    r.EndDate.Format(dateLayout),
		Priority:   r.Priority,
		IsActive:   r.IsActive,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type CreateRuleRequest struct {
	RoomTypeID *string `json:"roomTypeId" binding:"omitempty,uuid"`
	Name       string  `json:"name" binding:"required"`
	Kind       string  `json:"kind" binding:"required,oneof=multiplier override"`
	Value      int64   `json:"value" binding:"required,min=1"`
	StartDate  string  `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate    string  `json:"endDate" binding:"required,datetime=2006-01-02"`
	Priority   int     `json:"priority"`
}

type UpdateRuleRequest struct {
	RoomTypeID *string `json:"roomTypeId" binding:"omitempty,uuid"`
	Name       *string `json:"name"`
	Kind       *string `json:"kind" binding:"omitempty,oneof=multiplier override"`
	Value      *int64  `json:"value" binding:"omitempty,min=1"`
	StartDate  *string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate    *string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Priority   *int    `json:"priority"`
	IsActive   *bool   `json:"isActive"`
}

type QuoteRequest struct {
	RoomTypeID string `json:"roomTypeId" binding:"required,uuid"`
	CheckIn    string `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut   string `json:"checkOut" binding:"required,datetime=2006-01-02"`
	PromoCode  string `json:"promoCode"`
}

type QuoteResponse struct {
	RoomTypeID    string          `json:"roomTypeId"`
	Nights        []NightResponse `json:"nights"`
	SubtotalCents int64           `json:"subtotalCents"`
	DiscountCents int64           `json:"discountCents"`
	TotalCents    int64           `json:"totalCents"`
	PromoCode     *string         `json:"promoCode"`
}

type NightResponse struct {
	Date      string  `json:"date"`
	RateCents int64   `json:"rateCents"`
	RuleID    *string `json:"ruleId"`
}

func NewQuoteResponse(q *pricing.Quote) QuoteResponse {
	nights := make([]NightResponse, len(q.Nights))
	for i, n := range q.Nights {
		nights[i] = NightResponse{
			Date:      n.Date.Format(dateLayout),
			RateCents: n.RateCents,
			RuleID:    n.RuleID,
		}
	}
	return QuoteResponse{
		RoomTypeID:    q.RoomTypeID,
		Nights:        nights,
		SubtotalCents: q.SubtotalCents,
		DiscountCents: q.DiscountCents,
		TotalCents:    q.TotalCents,
		PromoCode:     q.PromoCode,
	}
}
