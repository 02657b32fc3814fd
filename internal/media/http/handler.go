package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veranolabs/hotel-admin-backend/internal/auth"
	"github.com/veranolabs/hotel-admin-backend/internal/hotel"
	"github.com/veranolabs/hotel-admin-backend/internal/inventory"
	"github.com/veranolabs/hotel-admin-backend/internal/media"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/response"
)

type Handler struct {
	service      media.Service
	hotelService hotel.Service
	invService   inventory.Service
}

func NewHandler(service media.Service, hotelService hotel.Service, invService inventory.Service) *Handler {
	return &Handler{
		service:      service,
		hotelService: hotelService,
		invService:   invService,
	}
}

func pathUUID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_ID", "invalid UUID"))
		return "", false
	}
	return id, true
}

// upload stores the photo, then attaches it to the owner. A failed attach
// rolls the upload back so no orphan files accumulate.
func (h *Handler) upload(c *gin.Context, ownerType, ownerID string, attach func(url string) error) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "PHOTO_REQUIRED", "photo file is required"))
		return
	}

	p, err := h.service.Upload(c.Request.Context(), media.UploadInput{
		HotelID:    auth.GetHotelID(c),
		OwnerType:  ownerType,
		OwnerID:    ownerID,
		FileHeader: fileHeader,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := attach(media.URL(p.ID)); err != nil {
		_ = h.service.Delete(c.Request.Context(), p.ID)
		response.Error(c, err)
		return
	}

	response.Created(c, NewPhotoResponse(p))
}

func (h *Handler) UploadHotelPhoto(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if id != auth.GetHotelID(c) {
		response.Error(c, hotel.ErrNotFound)
		return
	}

	h.upload(c, media.OwnerHotel, id, func(url string) error {
		return h.hotelService.SetPhoto(c.Request.Context(), id, url)
	})
}

func (h *Handler) UploadRoomPhoto(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	room, err := h.invService.GetRoom(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if room.HotelID != auth.GetHotelID(c) {
		response.Error(c, inventory.ErrRoomNotFound)
		return
	}

	h.upload(c, media.OwnerRoom, id, func(url string) error {
		return h.invService.SetRoomPhoto(c.Request.Context(), id, url)
	})
}

func (h *Handler) Download(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	rc, _, err := h.service.Download(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Header("Cache-Control", "public, max-age=86400")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

func (h *Handler) DownloadThumbnail(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	rc, _, err := h.service.DownloadThumbnail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Header("Cache-Control", "public, max-age=86400")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}
