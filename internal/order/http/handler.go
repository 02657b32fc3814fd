package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veranolabs/hotel-admin-backend/internal/auth"
	"github.com/veranolabs/hotel-admin-backend/internal/order"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/request"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/response"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service order.Service
}

func NewHandler(service order.Service) *Handler {
	return &Handler{service: service}
}

// getScoped loads the order and hides it when it belongs to another hotel.
func (h *Handler) getScoped(c *gin.Context) (*order.Order, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_ID", "invalid UUID"))
		return nil, false
	}

	o, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	if o.HotelID != auth.GetHotelID(c) {
		response.Error(c, order.ErrNotFound)
		return nil, false
	}
	return o, true
}

func (h *Handler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters"))
		return
	}
	var q ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters"))
		return
	}
	params.Normalize()
	sortBy, sortOrder := params.SortColumn("scheduled_at", "DESC")

	filter := order.Filter{
		HotelID:        auth.GetHotelID(c),
		Status:         q.Status,
		ActivityTypeID: q.ActivityTypeID,
		GuestSearch:    q.Guest,
		Page:           params.Page,
		PageSize:       params.PageSize,
		SortBy:         sortBy,
		SortOrder:      sortOrder,
	}
	if q.From != "" {
		from, _ := time.Parse(dateLayout, q.From)
		filter.From = &from
	}
	if q.To != "" {
		to, _ := time.Parse(dateLayout, q.To)
		filter.To = &to
	}

	orders, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]OrderResponse, len(orders))
	for i, o := range orders {
		items[i] = NewOrderResponse(o)
	}
	response.Page(c, items, params.Page, params.PageSize, total)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	o, err := h.service.Create(c.Request.Context(), order.CreateRequest{
		HotelID:        auth.GetHotelID(c),
		GuestID:        req.GuestID,
		ActivityTypeID: req.ActivityTypeID,
		ScheduledAt:    req.ScheduledAt,
		Quantity:       req.Quantity,
		PromoCode:      req.PromoCode,
		Notes:          req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, NewOrderResponse(o))
}

func (h *Handler) Get(c *gin.Context) {
	o, ok := h.getScoped(c)
	if !ok {
		return
	}
	response.OK(c, NewOrderResponse(o))
}

func (h *Handler) Update(c *gin.Context) {
	o, ok := h.getScoped(c)
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), o.ID, order.UpdateRequest{
		ScheduledAt: req.ScheduledAt,
		Quantity:    req.Quantity,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, NewOrderResponse(updated))
}

func (h *Handler) action(c *gin.Context, do func(*gin.Context, string) (*order.Order, error)) {
	o, ok := h.getScoped(c)
	if !ok {
		return
	}

	updated, err := do(c, o.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, NewOrderResponse(updated))
}

func (h *Handler) MarkPaid(c *gin.Context) {
	h.action(c, func(c *gin.Context, id string) (*order.Order, error) {
		return h.service.MarkPaid(c.Request.Context(), id)
	})
}

func (h *Handler) Fulfill(c *gin.Context) {
	h.action(c, func(c *gin.Context, id string) (*order.Order, error) {
		return h.service.Fulfill(c.Request.Context(), id)
	})
}

func (h *Handler) Cancel(c *gin.Context) {
	h.action(c, func(c *gin.Context, id string) (*order.Order, error) {
		return h.service.Cancel(c.Request.Context(), id)
	})
}
