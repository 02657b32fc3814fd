package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/veranolabs/hotel-admin-backend/internal/auth"
	"github.com/veranolabs/hotel-admin-backend/internal/metrics"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/response"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service metrics.Service
}

func NewHandler(service metrics.Service) *Handler {
	return &Handler{service: service}
}

type overviewQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

type revenueQuery struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

func (h *Handler) Overview(c *gin.Context) {
	var q overviewQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters"))
		return
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if q.Date != "" {
		date, _ = time.Parse(dateLayout, q.Date)
	}

	ov, err := h.service.Overview(c.Request.Context(), auth.GetHotelID(c), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, ov)
}

func (h *Handler) Revenue(c *gin.Context) {
	var q revenueQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters"))
		return
	}

	from, _ := time.Parse(dateLayout, q.From)
	to, _ := time.Parse(dateLayout, q.To)

	points, err := h.service.Revenue(c.Request.Context(), auth.GetHotelID(c), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	if points == nil {
		points = []metrics.RevenuePoint{}
	}
	response.OK(c, points)
}
