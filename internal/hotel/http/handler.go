package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veranolabs/hotel-admin-backend/internal/auth"
	"github.com/veranolabs/hotel-admin-backend/internal/hotel"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/request"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/response"
)

var errInvalidID = apperror.New(http.StatusBadRequest, "INVALID_ID", "invalid UUID")

type Handler struct {
	service hotel.Service
}

func NewHandler(service hotel.Service) *Handler {
	return &Handler{service: service}
}

func pathUUID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, errInvalidID)
		return "", false
	}
	return id, true
}

// List returns the hotels the caller is a member of.
func (h *Handler) List(c *gin.Context) {
	userID := auth.GetUserID(c)

	hotels, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]HotelResponse, len(hotels))
	for i, ht := range hotels {
		items[i] = NewHotelResponse(ht)
	}
	response.OK(c, items)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	ht, err := h.service.Create(c.Request.Context(), req.Name, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, NewHotelResponse(ht))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "hotelID")
	if !ok {
		return
	}

	ht, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, NewHotelResponse(ht))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "hotelID")
	if !ok {
		return
	}

	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	ht, err := h.service.Update(c.Request.Context(), id, hotel.UpdateRequest{
		Name:     req.Name,
		Address:  req.Address,
		Timezone: req.Timezone,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, NewHotelResponse(ht))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "hotelID")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------
//   Members
// ------------------------

func (h *Handler) ListMembers(c *gin.Context) {
	id, ok := pathUUID(c, "hotelID")
	if !ok {
		return
	}

	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters"))
		return
	}
	params.Normalize()

	members, total, err := h.service.ListMembers(c.Request.Context(), id, hotel.MemberFilter{
		Page:     params.Page,
		PageSize: params.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]MemberResponse, len(members))
	for i, m := range members {
		items[i] = NewMemberResponse(m)
	}
	response.Page(c, items, params.Page, params.PageSize, total)
}

func (h *Handler) UpdateMember(c *gin.Context) {
	hotelID, ok := pathUUID(c, "hotelID")
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "userID")
	if !ok {
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	if err := h.service.UpdateMemberRole(c.Request.Context(), hotelID, userID, req.Role); err != nil {
		response.Error(c, err)
		return
	}

	m, err := h.service.GetMember(c.Request.Context(), hotelID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, NewMemberResponse(m))
}

func (h *Handler) RemoveMember(c *gin.Context) {
	hotelID, ok := pathUUID(c, "hotelID")
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "userID")
	if !ok {
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), hotelID, userID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------
//   Invitations
// ------------------------

func (h *Handler) Invite(c *gin.Context) {
	hotelID, ok := pathUUID(c, "hotelID")
	if !ok {
		return
	}

	var req InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	inv, err := h.service.Invite(c.Request.Context(), hotelID, auth.GetUserID(c), hotel.InviteRequest{
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, NewInvitationResponse(inv))
}

func (h *Handler) ListInvitations(c *gin.Context) {
	hotelID, ok := pathUUID(c, "hotelID")
	if !ok {
		return
	}

	invitations, err := h.service.ListInvitations(c.Request.Context(), hotelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]InvitationResponse, len(invitations))
	for i, inv := range invitations {
		items[i] = NewInvitationResponse(inv)
	}
	response.OK(c, items)
}

func (h *Handler) RevokeInvitation(c *gin.Context) {
	hotelID, ok := pathUUID(c, "hotelID")
	if !ok {
		return
	}
	invID, ok := pathUUID(c, "invitationID")
	if !ok {
		return
	}

	if err := h.service.RevokeInvitation(c.Request.Context(), hotelID, invID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AcceptInvitation is not hotel-scoped: the invited user accepts by ID.
func (h *Handler) AcceptInvitation(c *gin.Context) {
	invID, ok := pathUUID(c, "invitationID")
	if !ok {
		return
	}

	m, err := h.service.AcceptInvitation(c.Request.Context(), invID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, NewMemberResponse(m))
}
