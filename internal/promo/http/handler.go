package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veranolabs/hotel-admin-backend/internal/auth"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/request"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/response"
	"github.com/veranolabs/hotel-admin-backend/internal/promo"
)

type Handler struct {
	service promo.Service
}

func NewHandler(service promo.Service) *Handler {
	return &Handler{service: service}
}

// getScoped loads the promo code and hides it when it belongs to another hotel.
func (h *Handler) getScoped(c *gin.Context) (*promo.PromoCode, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_ID", "invalid UUID"))
		return nil, false
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	if p.HotelID != auth.GetHotelID(c) {
		response.Error(c, promo.ErrNotFound)
		return nil, false
	}
	return p, true
}

func (h *Handler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters"))
		return
	}
	params.Normalize()

	codes, total, err := h.service.List(c.Request.Context(), promo.Filter{
		HotelID:    auth.GetHotelID(c),
		Search:     params.Search,
		ActiveOnly: c.Query("active") == "true",
		Page:       params.Page,
		PageSize:   params.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PromoCodeResponse, len(codes))
	for i, p := range codes {
		items[i] = NewPromoCodeResponse(p)
	}
	response.Page(c, items, params.Page, params.PageSize, total)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	p, err := h.service.Create(c.Request.Context(), promo.CreateRequest{
		HotelID:   auth.GetHotelID(c),
		Code:      req.Code,
		Kind:      promo.Kind(req.Kind),
		Value:     req.Value,
		MaxUses:   req.MaxUses,
		ValidFrom: req.ValidFrom,
		ValidTo:   req.ValidTo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, NewPromoCodeResponse(p))
}

func (h *Handler) Get(c *gin.Context) {
	p, ok := h.getScoped(c)
	if !ok {
		return
	}
	response.OK(c, NewPromoCodeResponse(p))
}

func (h *Handler) Update(c *gin.Context) {
	p, ok := h.getScoped(c)
	if !ok {
		return
	}

	var req UpdatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	upd := promo.UpdateRequest{
		Code:      req.Code,
		Value:     req.Value,
		MaxUses:   req.MaxUses,
		ValidFrom: req.ValidFrom,
		ValidTo:   req.ValidTo,
		IsActive:  req.IsActive,
	}
	if req.Kind != nil {
		k := promo.Kind(*req.Kind)
		upd.Kind = &k
	}

	updated, err := h.service.Update(c.Request.Context(), p.ID, upd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, NewPromoCodeResponse(updated))
}

func (h *Handler) Delete(c *gin.Context) {
	p, ok := h.getScoped(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), p.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Validate checks a code without consuming a use, for form-side feedback.
func (h *Handler) Validate(c *gin.Context) {
	var req ValidatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	p, err := h.service.Validate(c.Request.Context(), auth.GetHotelID(c), req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, NewPromoCodeResponse(p))
}
