package pricing

import (
	"net/http"
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "PRICING_RULE_NOT_FOUND", "pricing rule not found")
	ErrNameRequired     = apperror.New(http.StatusBadRequest, "NAME_REQUIRED", "name is required")
	ErrInvalidKind      = apperror.New(http.StatusBadRequest, "INVALID_KIND", "invalid pricing rule kind")
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "INVALID_DATE_RANGE", "start date must be before end date")
	ErrInvalidValue     = apperror.New(http.StatusBadRequest, "INVALID_VALUE", "pricing rule value must be positive")
)

// Rule kinds.
type Kind string

const (
	// KindMultiplier scales the base rate; value is in basis points (12000 = 1.2x).
	KindMultiplier Kind = "multiplier"
	// KindOverride replaces the base rate; value is the nightly rate in cents.
	KindOverride Kind = "override"
)

// ValidKind reports whether k is a known rule kind.
func ValidKind(k Kind) bool {
	return k == KindMultiplier || k == KindOverride
}

// Rule adjusts the nightly rate for a date range. A nil RoomTypeID applies
// the rule to every room type in the hotel. When several rules match a night,
// the highest priority wins; ties break toward the most recently created.
type Rule struct {
	ID         string
	HotelID    string
	RoomTypeID *string
	Name       string
	Kind       Kind
	Value      int64 // basis points for multiplier, cents for override
	StartDate  time.Time
	EndDate    time.Time
	Priority   int
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Filter defines parameters for listing pricing rules.
type Filter struct {
	HotelID    string
	RoomTypeID string
	Search     string
	ActiveOnly bool
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

// NightRate is the resolved price of a single night in a quote.
type NightRate struct {
	Date      time.Time `json:"date"`
	RateCents int64     `json:"rateCents"`
	RuleID    *string   `json:"ruleId"` // nil when the base rate applied
}

// Quote is the priced breakdown of a stay.
type Quote struct {
	RoomTypeID    string      `json:"roomTypeId"`
	Nights        []NightRate `json:"nights"`
	SubtotalCents int64       `json:"subtotalCents"`
	DiscountCents int64       `json:"discountCents"`
	TotalCents    int64       `json:"totalCents"`
	PromoCode     *string     `json:"promoCode"`
}
