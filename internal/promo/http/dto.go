package http

import (
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/promo"
)

type PromoCodeResponse struct {
	ID        string    `json:"id"`
	HotelID   string    `json:"hotelId"`
	Code      string    `json:"code"`
	Kind      string    `json:"kind"`
	Value     int64     `json:"value"`
	MaxUses   *int      `json:"maxUses"`
	Uses      int       `json:"uses"`
	ValidFrom time.Time `json:"validFrom"`
	ValidTo   time.Time `json:"validTo"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewPromoCodeResponse(p *promo.PromoCode) PromoCodeResponse {
	return PromoCodeResponse{
		ID:        p.ID,
		HotelID:   p.HotelID,
		Code:      p.Code,
		Kind:      string(p.Kind),
		Value:     p.Value,
		MaxUses:   p.MaxUses,
		Uses:      p.Uses,
		ValidFrom: p.ValidFrom,
		ValidTo:   p.ValidTo,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type CreatePromoCodeRequest struct {
	Code      string    `json:"code" binding:"required"`
	Kind      string    `json:"kind" binding:"required,oneof=percent fixed"`
	Value     int64     `json:"value" binding:"required,min=1"`
	MaxUses   *int      `json:"maxUses" binding:"omitempty,min=1"`
	ValidFrom time.Time `json:"validFrom" binding:"required"`
	ValidTo   time.Time `json:"validTo" binding:"required"`
}

type UpdatePromoCodeRequest struct {
	Code      *string    `json:"code"`
	Kind      *string    `json:"kind" binding:"omitempty,oneof=percent fixed"`
	Value     *int64     `json:"value" binding:"omitempty,min=1"`
	MaxUses   *int       `json:"maxUses" binding:"omitempty,min=1"`
	ValidFrom *time.Time `json:"validFrom"`
	ValidTo   *time.Time `json:"validTo"`
	IsActive  *bool      `json:"isActive"`
}

type ValidatePromoCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
