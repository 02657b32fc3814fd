package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/veranolabs/hotel-admin-backend/internal/auth"
	"github.com/veranolabs/hotel-admin-backend/internal/hotel"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/response"
	"github.com/veranolabs/hotel-admin-backend/internal/user"
)

// SessionHandler serves the dashboard bootstrap document: the user, their
// hotels, the active hotel and the permissions their role grants there.
// Clients call it once on load and again whenever the active hotel changes.
type SessionHandler struct {
	userService  user.Service
	hotelService hotel.Service
}

func NewSessionHandler(userService user.Service, hotelService hotel.Service) *SessionHandler {
	return &SessionHandler{
		userService:  userService,
		hotelService: hotelService,
	}
}

type HotelSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Timezone string  `json:"timezone"`
	Photo    *string `json:"photo"`
}

func newHotelSummary(h *hotel.Hotel) HotelSummary {
	return HotelSummary{
		ID:       h.ID,
		Name:     h.Name,
		Timezone: h.Timezone,
		Photo:    h.PhotoPath,
	}
}

type MemberSummary struct {
	UserID   string    `json:"userId"`
	HotelID  string    `json:"hotelId"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

type SessionResponse struct {
	User         UserResponse        `json:"user"`
	Hotels       []HotelSummary      `json:"hotels"`
	ActiveHotel  *HotelSummary       `json:"activeHotel"`
	ActiveMember *MemberSummary      `json:"activeMember"`
	Permissions  hotel.PermissionMap `json:"permissions"`
}

// Get returns the full session document. A missing or expired token is a
// plain 401 before this handler runs; a user whose active hotel vanished
// still gets a session, just without an active scope.
func (h *SessionHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	u, err := h.userService.GetByID(ctx, auth.GetUserID(c))
	if err != nil {
		response.Error(c, apperror.New(http.StatusUnauthorized, "UNAUTHENTICATED", "user not found"))
		return
	}

	hotels, err := h.hotelService.ListForUser(ctx, u.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := SessionResponse{
		User:        NewUserResponse(u),
		Hotels:      make([]HotelSummary, len(hotels)),
		Permissions: hotel.PermissionMap{},
	}
	for i, ht := range hotels {
		resp.Hotels[i] = newHotelSummary(ht)
	}

	if u.ActiveHotelID != nil {
		active, err := h.hotelService.GetByID(ctx, *u.ActiveHotelID)
		if err == nil {
			summary := newHotelSummary(active)
			resp.ActiveHotel = &summary

			perms, member, permErr := h.hotelService.PermissionsFor(ctx, active.ID, u.ID)
			switch {
			case permErr == nil:
				resp.Permissions = perms
				resp.ActiveMember = &MemberSummary{
					UserID:   member.UserID,
					HotelID:  member.HotelID,
					Role:     member.Role,
					JoinedAt: member.CreatedAt,
				}
			case errors.Is(permErr, hotel.ErrNotMember):
				// Membership revoked since the hotel was selected. The
				// session still loads with empty permissions.
			default:
				response.Error(c, permErr)
				return
			}
		}
	}

	response.OK(c, resp)
}

type SetActiveHotelRequest struct {
	HotelID string `json:"hotelId" binding:"required,uuid"`
}

// SetActiveHotel switches the user's tenant scope. Membership is verified
// before the switch is stored, so a user cannot scope into a hotel they do
// not belong to. The refreshed session document is returned.
func (h *SessionHandler) SetActiveHotel(c *gin.Context) {
	var req SetActiveHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	ctx := c.Request.Context()
	userID := auth.GetUserID(c)

	u, err := h.userService.GetByID(ctx, userID)
	if err != nil {
		response.Error(c, apperror.New(http.StatusUnauthorized, "UNAUTHENTICATED", "user not found"))
		return
	}

	if !u.IsSuperAdmin {
		if _, _, err := h.hotelService.PermissionsFor(ctx, req.HotelID, userID); err != nil {
			response.Error(c, err)
			return
		}
	}

	if err := h.userService.SetActiveHotel(ctx, userID, req.HotelID); err != nil {
		response.Error(c, err)
		return
	}

	h.Get(c)
}
