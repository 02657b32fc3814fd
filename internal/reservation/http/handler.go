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
	"github.com/veranolabs/hotel-admin-backend/internal/reservation"
)

type Handler struct {
	service reservation.Service
}

func NewHandler(service reservation.Service) *Handler {
	return &Handler{service: service}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// getScoped loads the reservation and hides it when it belongs to another hotel.
func (h *Handler) getScoped(c *gin.Context) (*reservation.Reservation, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_ID", "invalid UUID"))
		return nil, false
	}

	res, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	if res.HotelID != auth.GetHotelID(c) {
		response.Error(c, reservation.ErrNotFound)
		return nil, false
	}
	return res, true
}

func (h *Handler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters"))
		return
	}
	var q ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters"))
		return
	}
	params.Normalize()
	sortBy, sortOrder := params.SortColumn("check_in", "DESC")

	filter := reservation.Filter{
		HotelID:     auth.GetHotelID(c),
		Status:      q.Status,
		RoomTypeID:  q.RoomTypeID,
		GuestSearch: q.Guest,
		Page:        params.Page,
		PageSize:    params.PageSize,
		SortBy:      sortBy,
		SortOrder:   sortOrder,
	}
	if q.CheckInFrom != "" {
		from, _ := parseDate(q.CheckInFrom)
		filter.CheckInFrom = &from
	}
	if q.CheckInTo != "" {
		to, _ := parseDate(q.CheckInTo)
		filter.CheckInTo = &to
	}

	reservations, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		items[i] = NewReservationResponse(r)
	}
	response.Page(c, items, params.Page, params.PageSize, total)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	checkIn, _ := parseDate(req.CheckIn)
	checkOut, _ := parseDate(req.CheckOut)

	res, err := h.service.Create(c.Request.Context(), reservation.CreateRequest{
		HotelID:   auth.GetHotelID(c),
		RoomID:    req.RoomID,
		GuestID:   req.GuestID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		PromoCode: req.PromoCode,
		Notes:     req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, NewReservationResponse(res))
}

func (h *Handler) Get(c *gin.Context) {
	res, ok := h.getScoped(c)
	if !ok {
		return
	}
	response.OK(c, NewReservationResponse(res))
}

func (h *Handler) Update(c *gin.Context) {
	res, ok := h.getScoped(c)
	if !ok {
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	upd := reservation.UpdateRequest{
		RoomID: req.RoomID,
		Notes:  req.Notes,
	}
	if req.CheckIn != nil {
		checkIn, _ := parseDate(*req.CheckIn)
		upd.CheckIn = &checkIn
	}
	if req.CheckOut != nil {
		checkOut, _ := parseDate(*req.CheckOut)
		upd.CheckOut = &checkOut
	}

	updated, err := h.service.Update(c.Request.Context(), res.ID, upd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, NewReservationResponse(updated))
}

func (h *Handler) action(c *gin.Context, do func(*gin.Context, string) (*reservation.Reservation, error)) {
	res, ok := h.getScoped(c)
	if !ok {
		return
	}

	updated, err := do(c, res.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, NewReservationResponse(updated))
}

func (h *Handler) Confirm(c *gin.Context) {
	h.action(c, func(c *gin.Context, id string) (*reservation.Reservation, error) {
		return h.service.Confirm(c.Request.Context(), id)
	})
}

func (h *Handler) CheckIn(c *gin.Context) {
	h.action(c, func(c *gin.Context, id string) (*reservation.Reservation, error) {
		return h.service.CheckIn(c.Request.Context(), id)
	})
}

func (h *Handler) CheckOut(c *gin.Context) {
	h.action(c, func(c *gin.Context, id string) (*reservation.Reservation, error) {
		return h.service.CheckOut(c.Request.Context(), id)
	})
}

func (h *Handler) Cancel(c *gin.Context) {
	h.action(c, func(c *gin.Context, id string) (*reservation.Reservation, error) {
		return h.service.Cancel(c.Request.Context(), id)
	})
}

func (h *Handler) Availability(c *gin.Context) {
	var q AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters"))
		return
	}

	checkIn, _ := parseDate(q.CheckIn)
	checkOut, _ := parseDate(q.CheckOut)

	rooms, err := h.service.AvailableRooms(c.Request.Context(), auth.GetHotelID(c), q.RoomTypeID, checkIn, checkOut)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]AvailableRoomResponse, len(rooms))
	for i, r := range rooms {
		items[i] = NewAvailableRoomResponse(r)
	}
	response.OK(c, items)
}
