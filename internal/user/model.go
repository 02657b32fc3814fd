package user

import (
	"net/http"
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "USER_NOT_FOUND", "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "EMAIL_TAKEN", "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	ErrInactiveUser       = apperror.New(http.StatusForbidden, "USER_INACTIVE", "user is inactive")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "EMAIL_REQUIRED", "email is required")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "PASSWORD_TOO_SHORT", "password is too short")
)

// User represents an admin dashboard account.
type User struct {
	ID            string // UUID
	Email         string
	PasswordHash  string
	Name          *string
	Image         *string
	ActiveHotelID *string // currently selected tenant, nil until first selection
	CreatedAt     time.Time
	LastLoginAt   *time.Time
	IsActive      bool
	IsSuperAdmin  bool
}
