package hotel

import (
	"net/http"
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "HOTEL_NOT_FOUND", "hotel not found")
	ErrNameRequired      = apperror.New(http.StatusBadRequest, "NAME_REQUIRED", "name is required")
	ErrMemberNotFound    = apperror.New(http.StatusNotFound, "MEMBER_NOT_FOUND", "member not found")
	ErrAlreadyMember     = apperror.New(http.StatusConflict, "ALREADY_MEMBER", "user is already a member of this hotel")
	ErrInvalidRole       = apperror.New(http.StatusBadRequest, "INVALID_ROLE", "invalid role")
	ErrLastOwner         = apperror.New(http.StatusConflict, "LAST_OWNER", "cannot remove the last owner")
	ErrInviteNotFound    = apperror.New(http.StatusNotFound, "INVITE_NOT_FOUND", "invitation not found")
	ErrInviteNotPending  = apperror.New(http.StatusConflict, "INVITE_NOT_PENDING", "invitation is no longer pending")
	ErrInviteExpired     = apperror.New(http.StatusGone, "INVITE_EXPIRED", "invitation has expired")
	ErrInviteEmail       = apperror.New(http.StatusForbidden, "INVITE_EMAIL_MISMATCH", "invitation was issued for a different email")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "PERMISSION_DENIED", "permission denied")
	ErrNotMember         = apperror.New(http.StatusForbidden, "NOT_MEMBER", "not a member of this hotel")
)

// Hotel is the multi-tenancy unit. Every managed resource belongs to one hotel.
type Hotel struct {
	ID        string
	Name      string
	Address   *string
	Timezone  string
	PhotoPath *string
	CreatedAt time.Time
	IsActive  bool
}

// Filter defines parameters for listing hotels.
type Filter struct {
	Search   string
	Page     int
	PageSize int
}

// Roles matching the database enum, strongest first.
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
	RoleViewer  = "viewer"
)

// ValidRole reports whether role is one of the known membership roles.
func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleManager, RoleStaff, RoleViewer:
		return true
	}
	return false
}

// Member represents a user with a specific role within a hotel.
// It joins data from hotel_members and users tables.
type Member struct {
	UserID    string
	HotelID   string
	Email     string
	Name      *string
	Role      string
	CreatedAt time.Time
}

// MemberFilter defines filter options for listing members.
type MemberFilter struct {
	Page     int
	PageSize int
}

// Invitation statuses.
const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusRevoked  = "revoked"
)

// Invitation invites an email address into a hotel with a preassigned role.
type Invitation struct {
	ID        string
	HotelID   string
	Email     string
	Role      string
	Status    string
	InvitedBy string
	ExpiresAt time.Time
	CreatedAt time.Time
}
