package promo

import (
	"net/http"
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "PROMO_NOT_FOUND", "promo code not found")
	ErrCodeRequired = apperror.New(http.StatusBadRequest, "CODE_REQUIRED", "code is required")
	ErrCodeTaken    = apperror.New(http.StatusConflict, "PROMO_CODE_TAKEN", "promo code already exists for this hotel")
	ErrInvalidKind  = apperror.New(http.StatusBadRequest, "INVALID_KIND", "invalid promo kind")
	ErrInvalidValue = apperror.New(http.StatusBadRequest, "INVALID_VALUE", "invalid promo value")
	ErrNotStarted   = apperror.New(http.StatusConflict, "PROMO_NOT_STARTED", "promo code is not yet valid")
	ErrExpired      = apperror.New(http.StatusConflict, "PROMO_EXPIRED", "promo code has expired")
	ErrExhausted    = apperror.New(http.StatusConflict, "PROMO_EXHAUSTED", "promo code usage limit reached")
	ErrInactive     = apperror.New(http.StatusConflict, "PROMO_INACTIVE", "promo code is disabled")
)

// Promo kinds.
type Kind string

const (
	// KindPercent discounts a percentage of the subtotal; value is whole percent (15 = 15%).
	KindPercent Kind = "percent"
	// KindFixed discounts a fixed amount; value is cents.
	KindFixed Kind = "fixed"
)

// ValidKind reports whether k is a known promo kind.
func ValidKind(k Kind) bool {
	return k == KindPercent || k == KindFixed
}

// PromoCode is a discount code scoped to one hotel.
type PromoCode struct {
	ID        string
	HotelID   string
	Code      string
	Kind      Kind
	Value     int64
	MaxUses   *int // nil = unlimited
	Uses      int
	ValidFrom time.Time
	ValidTo   time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Discount returns the discount in cents for the given subtotal,
// never exceeding the subtotal itself.
func (p *PromoCode) Discount(subtotalCents int64) int64 {
	var d int64
	switch p.Kind {
	case KindPercent:
		d = subtotalCents * p.Value / 100
	case KindFixed:
		d = p.Value
	}
	if d > subtotalCents {
		d = subtotalCents
	}
	if d < 0 {
		d = 0
	}
	return d
}

// Filter defines parameters for listing promo codes.
type Filter struct {
	HotelID    string
	Search     string
	ActiveOnly bool
	Page       int
	PageSize   int
}
