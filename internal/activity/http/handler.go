package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veranolabs/hotel-admin-backend/internal/activity"
	"github.com/veranolabs/hotel-admin-backend/internal/auth"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/request"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/response"
)

type Handler struct {
	service activity.Service
}

func NewHandler(service activity.Service) *Handler {
	return &Handler{service: service}
}

// getScoped loads the activity type and hides it when it belongs to another hotel.
func (h *Handler) getScoped(c *gin.Context) (*activity.ActivityType, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_ID", "invalid UUID"))
		return nil, false
	}

	at, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	if at.HotelID != auth.GetHotelID(c) {
		response.Error(c, activity.ErrNotFound)
		return nil, false
	}
	return at, true
}

func (h *Handler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters"))
		return
	}
	params.Normalize()

	types, total, err := h.service.List(c.Request.Context(), activity.Filter{
		HotelID:  auth.GetHotelID(c),
		Search:   params.Search,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ActivityTypeResponse, len(types))
	for i, at := range types {
		items[i] = NewActivityTypeResponse(at)
	}
	response.Page(c, items, params.Page, params.PageSize, total)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateActivityTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	at, err := h.service.Create(c.Request.Context(), activity.CreateRequest{
		HotelID:         auth.GetHotelID(c),
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Capacity:        req.Capacity,
		PriceCents:      req.PriceCents,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, NewActivityTypeResponse(at))
}

func (h *Handler) Get(c *gin.Context) {
	at, ok := h.getScoped(c)
	if !ok {
		return
	}
	response.OK(c, NewActivityTypeResponse(at))
}

func (h *Handler) Update(c *gin.Context) {
	at, ok := h.getScoped(c)
	if !ok {
		return
	}

	var req UpdateActivityTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), at.ID, activity.UpdateRequest{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Capacity:        req.Capacity,
		PriceCents:      req.PriceCents,
		IsActive:        req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, NewActivityTypeResponse(updated))
}

func (h *Handler) Delete(c *gin.Context) {
	at, ok := h.getScoped(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), at.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
