package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veranolabs/hotel-admin-backend/internal/auth"
	"github.com/veranolabs/hotel-admin-backend/internal/inventory"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/response"
)

var (
	errInvalidID    = apperror.New(http.StatusBadRequest, "INVALID_ID", "invalid UUID")
	errInvalidBody  = apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body")
	errInvalidQuery = apperror.New(http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters")
)

type Handler struct {
	service inventory.Service
}

func NewHandler(service inventory.Service) *Handler {
	return &Handler{service: service}
}

func pathUUID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, errInvalidID)
		return "", false
	}
	return id, true
}

// ------------------------
//   Room types
// ------------------------

func (h *Handler) ListRoomTypes(c *gin.Context) {
	var req ListRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, errInvalidQuery)
		return
	}
	req.Normalize()

	types, total, err := h.service.ListRoomTypes(c.Request.Context(), inventory.RoomTypeFilter{
		HotelID:  auth.GetHotelID(c),
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomTypeResponse, len(types))
	for i, rt := range types {
		items[i] = NewRoomTypeResponse(rt)
	}
	response.Page(c, items, req.Page, req.PageSize, total)
}

func (h *Handler) CreateRoomType(c *gin.Context) {
	var req CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidBody)
		return
	}

	rt, err := h.service.CreateRoomType(c.Request.Context(), inventory.CreateRoomTypeRequest{
		HotelID:       auth.GetHotelID(c),
		Name:          req.Name,
		Description:   req.Description,
		Capacity:      req.Capacity,
		BaseRateCents: req.BaseRateCents,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, NewRoomTypeResponse(rt))
}

func (h *Handler) GetRoomType(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}

	rt, err := h.service.GetRoomType(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if rt.HotelID != auth.GetHotelID(c) {
		response.Error(c, inventory.ErrRoomTypeNotFound)
		return
	}
	response.OK(c, NewRoomTypeResponse(rt))
}

func (h *Handler) UpdateRoomType(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}

	var req UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidBody)
		return
	}

	rt, err := h.service.GetRoomType(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if rt.HotelID != auth.GetHotelID(c) {
		response.Error(c, inventory.ErrRoomTypeNotFound)
		return
	}

	rt, err = h.service.UpdateRoomType(c.Request.Context(), id, inventory.UpdateRoomTypeRequest{
		Name:          req.Name,
		Description:   req.Description,
		Capacity:      req.Capacity,
		BaseRateCents: req.BaseRateCents,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, NewRoomTypeResponse(rt))
}

func (h *Handler) DeleteRoomType(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}

	rt, err := h.service.GetRoomType(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if rt.HotelID != auth.GetHotelID(c) {
		response.Error(c, inventory.ErrRoomTypeNotFound)
		return
	}

	if err := h.service.DeleteRoomType(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------
//   Rooms
// ------------------------

func (h *Handler) ListRooms(c *gin.Context) {
	var req ListRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, errInvalidQuery)
		return
	}
	req.Normalize()
	sortBy, sortOrder := req.SortColumn("number", "ASC")

	rooms, total, err := h.service.ListRooms(c.Request.Context(), inventory.RoomFilter{
		HotelID:    auth.GetHotelID(c),
		RoomTypeID: req.RoomTypeID,
		Status:     req.Status,
		Search:     req.Search,
		Page:       req.Page,
		PageSize:   req.PageSize,
		SortBy:     sortBy,
		SortOrder:  sortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		items[i] = NewRoomResponse(room)
	}
	response.Page(c, items, req.Page, req.PageSize, total)
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidBody)
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), inventory.CreateRoomRequest{
		HotelID:    auth.GetHotelID(c),
		RoomTypeID: req.RoomTypeID,
		Number:     req.Number,
		Floor:      req.Floor,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, NewRoomResponse(room))
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if room.HotelID != auth.GetHotelID(c) {
		response.Error(c, inventory.ErrRoomNotFound)
		return
	}
	response.OK(c, NewRoomResponse(room))
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidBody)
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if room.HotelID != auth.GetHotelID(c) {
		response.Error(c, inventory.ErrRoomNotFound)
		return
	}

	room, err = h.service.UpdateRoom(c.Request.Context(), id, inventory.UpdateRoomRequest{
		RoomTypeID: req.RoomTypeID,
		Number:     req.Number,
		Floor:      req.Floor,
		Status:     req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, NewRoomResponse(room))
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if room.HotelID != auth.GetHotelID(c) {
		response.Error(c, inventory.ErrRoomNotFound)
		return
	}

	if err := h.service.DeleteRoom(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
