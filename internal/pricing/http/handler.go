package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veranolabs/hotel-admin-backend/internal/auth"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/request"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/response"
	"github.com/veranolabs/hotel-admin-backend/internal/pricing"
)

type Handler struct {
	service pricing.Service
}

func NewHandler(service pricing.Service) *Handler {
	return &Handler{service: service}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// getScoped loads the rule and hides it when it belongs to another hotel.
func (h *Handler) getScoped(c *gin.Context) (*pricing.Rule, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_ID", "invalid UUID"))
		return nil, false
	}

	rule, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	if rule.HotelID != auth.GetHotelID(c) {
		response.Error(c, pricing.ErrNotFound)
		return nil, false
	}
	return rule, true
}

func (h *Handler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters"))
		return
	}
	params.Normalize()
	sortBy, sortOrder := params.SortColumn("priority", "DESC")

	rules, total, err := h.service.List(c.Request.Context(), pricing.Filter{
		HotelID:    auth.GetHotelID(c),
		RoomTypeID: c.Query("room_type_id"),
		Search:     params.Search,
		ActiveOnly: c.Query("active") == "true",
		Page:       params.Page,
		PageSize:   params.PageSize,
		SortBy:     sortBy,
		SortOrder:  sortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RuleResponse, len(rules))
	for i, r := range rules {
		items[i] = NewRuleResponse(r)
	}
	response.Page(c, items, params.Page, params.PageSize, total)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		response.Error(c, pricing.ErrInvalidDateRange)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		response.Error(c, pricing.ErrInvalidDateRange)
		return
	}

	rule, err := h.service.Create(c.Request.Context(), pricing.CreateRequest{
		HotelID:    auth.GetHotelID(c),
		RoomTypeID: req.RoomTypeID,
		Name:       req.Name,
		Kind:       pricing.Kind(req.Kind),
		Value:      req.Value,
		StartDate:  start,
		EndDate:    end,
		Priority:   req.Priority,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, NewRuleResponse(rule))
}

func (h *Handler) Get(c *gin.Context) {
	rule, ok := h.getScoped(c)
	if !ok {
		return
	}
	response.OK(c, NewRuleResponse(rule))
}

func (h *Handler) Update(c *gin.Context) {
	rule, ok := h.getScoped(c)
	if !ok {
		return
	}

	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	upd := pricing.UpdateRequest{
		RoomTypeID: req.RoomTypeID,
		Name:       req.Name,
		Value:      req.Value,
		Priority:   req.Priority,
		IsActive:   req.IsActive,
	}
	if req.Kind != nil {
		k := pricing.Kind(*req.Kind)
		upd.Kind = &k
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			response.Error(c, pricing.ErrInvalidDateRange)
			return
		}
		upd.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			response.Error(c, pricing.ErrInvalidDateRange)
			return
		}
		upd.EndDate = &end
	}

	updated, err := h.service.Update(c.Request.Context(), rule.ID, upd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, NewRuleResponse(updated))
}

func (h *Handler) Delete(c *gin.Context) {
	rule, ok := h.getScoped(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), rule.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		response.Error(c, pricing.ErrInvalidDateRange)
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		response.Error(c, pricing.ErrInvalidDateRange)
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), pricing.QuoteRequest{
		HotelID:    auth.GetHotelID(c),
		RoomTypeID: req.RoomTypeID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		PromoCode:  req.PromoCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, NewQuoteResponse(quote))
}
