package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veranolabs/hotel-admin-backend/internal/auth"
	"github.com/veranolabs/hotel-admin-backend/internal/guest"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/request"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/response"
)

type Handler struct {
	service guest.Service
}

func NewHandler(service guest.Service) *Handler {
	return &Handler{service: service}
}

// getScoped loads the guest and hides it when it belongs to another hotel.
func (h *Handler) getScoped(c *gin.Context) (*guest.Guest, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_ID", "invalid UUID"))
		return nil, false
	}

	g, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	if g.HotelID != auth.GetHotelID(c) {
		response.Error(c, guest.ErrNotFound)
		return nil, false
	}
	return g, true
}

func (h *Handler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters"))
		return
	}
	params.Normalize()
	sortBy, sortOrder := params.SortColumn("created_at", "DESC")

	guests, total, err := h.service.List(c.Request.Context(), guest.Filter{
		HotelID:   auth.GetHotelID(c),
		Search:    params.Search,
		Page:      params.Page,
		PageSize:  params.PageSize,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]GuestResponse, len(guests))
	for i, g := range guests {
		items[i] = NewGuestResponse(g)
	}
	response.Page(c, items, params.Page, params.PageSize, total)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	g, err := h.service.Create(c.Request.Context(), guest.CreateRequest{
		HotelID: auth.GetHotelID(c),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Notes:   req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, NewGuestResponse(g))
}

func (h *Handler) Get(c *gin.Context) {
	g, ok := h.getScoped(c)
	if !ok {
		return
	}
	response.OK(c, NewGuestResponse(g))
}

func (h *Handler) Update(c *gin.Context) {
	g, ok := h.getScoped(c)
	if !ok {
		return
	}

	var req UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), g.ID, guest.UpdateRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, NewGuestResponse(updated))
}

func (h *Handler) Delete(c *gin.Context) {
	g, ok := h.getScoped(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), g.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
