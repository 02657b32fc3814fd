package guest

import (
	"net/http"
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "GUEST_NOT_FOUND", "guest not found")
	ErrNameRequired  = apperror.New(http.StatusBadRequest, "NAME_REQUIRED", "name is required")
	ErrEmailRequired = apperror.New(http.StatusBadRequest, "EMAIL_REQUIRED", "email is required")
	ErrEmailTaken    = apperror.New(http.StatusConflict, "GUEST_EMAIL_TAKEN", "a guest with this email already exists in this hotel")
)

// Guest is a person staying at or booking with one hotel.
type Guest struct {
	ID        string
	HotelID   string
	Name      string
	Email     string
	Phone     *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing guests. Search matches
// name and email.
type Filter struct {
	HotelID   string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
