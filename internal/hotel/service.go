package hotel

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/user"
)

// UpdateRequest defines the hotel fields that can be updated.
type UpdateRequest struct {
	Name     *string
	Address  *string
	Timezone *string
	IsActive *bool
}

// InviteRequest defines fields for creating an invitation.
type InviteRequest struct {
	Email string
	Role  string
}

// Service defines business logic for hotels, memberships and invitations.
type Service interface {
	// Hotel methods
	Create(ctx context.Context, name string, creatorUserID string) (*Hotel, error)
	GetByID(ctx context.Context, id string) (*Hotel, error)
	List(ctx context.Context, filter Filter) ([]*Hotel, int, error)
	ListForUser(ctx context.Context, userID string) ([]*Hotel, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Hotel, error)
	Delete(ctx context.Context, id string) error
	SetPhoto(ctx context.Context, id string, photoPath string) error
	// Member methods
	GetMember(ctx context.Context, hotelID string, userID string) (*Member, error)
	ListMembers(ctx context.Context, hotelID string, filter MemberFilter) ([]*Member, int, error)
	UpdateMemberRole(ctx context.Context, hotelID string, userID string, role string) error
	RemoveMember(ctx context.Context, hotelID string, userID string) error
	// Invitation methods
	Invite(ctx context.Context, hotelID string, inviterUserID string, req InviteRequest) (*Invitation, error)
	ListInvitations(ctx context.Context, hotelID string) ([]*Invitation, error)
	AcceptInvitation(ctx context.Context, invitationID string, userID string) (*Member, error)
	RevokeInvitation(ctx context.Context, hotelID string, invitationID string) error
	// Permission methods
	PermissionsFor(ctx context.Context, hotelID string, userID string) (PermissionMap, *Member, error)
}

type service struct {
	repo        Repository
	userService user.Service

	inviteTTL time.Duration
}

// NewService creates a new hotel service.
func NewService(repo Repository, userService user.Service) Service {
	return &service{
		repo:        repo,
		userService: userService,
		inviteTTL:   7 * 24 * time.Hour,
	}
}

// ------------------------
//   Hotel methods
// ------------------------

func (s *service) Create(ctx context.Context, name string, creatorUserID string) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	h := &Hotel{
		Name:     name,
		Timezone: "UTC",
		IsActive: true,
	}

	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}

	// The creator becomes the owner of the new hotel.
	if err := s.repo.AddMember(ctx, h.ID, creatorUserID, RoleOwner); err != nil {
		return nil, err
	}

	return h, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Hotel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Hotel, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]*Hotel, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Hotel, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		newName := strings.TrimSpace(*req.Name)
		if newName == "" {
			return nil, ErrNameRequired
		}
		h.Name = newName
	}
	if req.Address != nil {
		h.Address = req.Address
	}
	if req.Timezone != nil && *req.Timezone != "" {
		h.Timezone = *req.Timezone
	}
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) SetPhoto(ctx context.Context, id string, photoPath string) error {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	h.PhotoPath = &photoPath
	return s.repo.Update(ctx, h)
}

// ------------------------
//   Member methods
// ------------------------

func (s *service) GetMember(ctx context.Context, hotelID string, userID string) (*Member, error) {
	return s.repo.GetMember(ctx, hotelID, userID)
}

func (s *service) ListMembers(ctx context.Context, hotelID string, filter MemberFilter) ([]*Member, int, error) {
	return s.repo.ListMembers(ctx, hotelID, filter)
}

func (s *service) UpdateMemberRole(ctx context.Context, hotelID string, userID string, role string) error {
	if !ValidRole(role) {
		return ErrInvalidRole
	}

	m, err := s.repo.GetMember(ctx, hotelID, userID)
	if err != nil {
		return err
	}

	// Demoting the last owner would leave the hotel unmanageable.
	if m.Role == RoleOwner && role != RoleOwner {
		owners, err := s.repo.CountMembersByRole(ctx, hotelID, RoleOwner)
		if err != nil {
			return err
		}
		if owners <= 1 {
			return ErrLastOwner
		}
	}

	return s.repo.UpdateMemberRole(ctx, hotelID, userID, role)
}

func (s *service) RemoveMember(ctx context.Context, hotelID string, userID string) error {
	m, err := s.repo.GetMember(ctx, hotelID, userID)
	if err != nil {
		return err
	}

	if m.Role == RoleOwner {
		owners, err := s.repo.CountMembersByRole(ctx, hotelID, RoleOwner)
		if err != nil {
			return err
		}
		if owners <= 1 {
			return ErrLastOwner
		}
	}

	return s.repo.RemoveMember(ctx, hotelID, userID)
}

// ------------------------
//   Invitation methods
// ------------------------

func (s *service) Invite(ctx context.Context, hotelID string, inviterUserID string, req InviteRequest) (*Invitation, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, user.ErrEmailRequired
	}
	if !ValidRole(req.Role) || req.Role == RoleOwner {
		// Ownership is transferred through member role updates, not invitations.
		return nil, ErrInvalidRole
	}

	if _, err := s.repo.GetByID(ctx, hotelID); err != nil {
		return nil, err
	}

	inv := &Invitation{
		HotelID:   hotelID,
		Email:     email,
		Role:      req.Role,
		Status:    InviteStatusPending,
		InvitedBy: inviterUserID,
		ExpiresAt: time.Now().UTC().Add(s.inviteTTL),
	}

	if err := s.repo.CreateInvitation(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *service) ListInvitations(ctx context.Context, hotelID string) ([]*Invitation, error) {
	return s.repo.ListInvitations(ctx, hotelID)
}

func (s *service) AcceptInvitation(ctx context.Context, invitationID string, userID string) (*Member, error) {
	inv, err := s.repo.GetInvitation(ctx, invitationID)
	if err != nil {
		return nil, err
	}

	if inv.Status != InviteStatusPending {
		return nil, ErrInviteNotPending
	}
	if time.Now().UTC().After(inv.ExpiresAt) {
		return nil, ErrInviteExpired
	}

	u, err := s.userService.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(u.Email, inv.Email) {
		return nil, ErrInviteEmail
	}

	if err := s.repo.AddMember(ctx, inv.HotelID, userID, inv.Role); err != nil {
		if errors.Is(err, ErrAlreadyMember) {
			// Membership already exists; still settle the invitation.
			_ = s.repo.UpdateInvitationStatus(ctx, inv.ID, InviteStatusAccepted)
		}
		return nil, err
	}

	if err := s.repo.UpdateInvitationStatus(ctx, inv.ID, InviteStatusAccepted); err != nil {
		return nil, err
	}

	return s.repo.GetMember(ctx, inv.HotelID, userID)
}

func (s *service) RevokeInvitation(ctx context.Context, hotelID string, invitationID string) error {
	inv, err := s.repo.GetInvitation(ctx, invitationID)
	if err != nil {
		return err
	}
	if inv.HotelID != hotelID {
		return ErrInviteNotFound
	}
	if inv.Status != InviteStatusPending {
		return ErrInviteNotPending
	}
	return s.repo.UpdateInvitationStatus(ctx, invitationID, InviteStatusRevoked)
}

// ------------------------
//   Permission methods
// ------------------------

// PermissionsFor resolves the caller's membership in the hotel and derives
// the permission map from the member's role.
func (s *service) PermissionsFor(ctx context.Context, hotelID string, userID string) (PermissionMap, *Member, error) {
	m, err := s.repo.GetMember(ctx, hotelID, userID)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return nil, nil, ErrNotMember
		}
		return nil, nil, err
	}
	return PermissionsForRole(m.Role), m, nil
}
