package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/veranolabs/hotel-admin-backend/internal/audit"
	"github.com/veranolabs/hotel-admin-backend/internal/auth"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/request"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/response"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service audit.Service
}

func NewHandler(service audit.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters"))
		return
	}
	var q ListEntriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters"))
		return
	}
	params.Normalize()

	filter := audit.Filter{
		HotelID:    auth.GetHotelID(c),
		ActorID:    q.ActorID,
		EntityType: q.EntityType,
		Page:       params.Page,
		PageSize:   params.PageSize,
	}
	if q.From != "" {
		from, _ := time.Parse(dateLayout, q.From)
		filter.From = &from
	}
	if q.To != "" {
		// Include the whole end day.
		to, _ := time.Parse(dateLayout, q.To)
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &to
	}

	entries, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]EntryResponse, len(entries))
	for i, e := range entries {
		items[i] = NewEntryResponse(e)
	}
	response.Page(c, items, params.Page, params.PageSize, total)
}
