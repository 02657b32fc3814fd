package media

import (
	"net/http"
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "PHOTO_NOT_FOUND", "photo not found")
	ErrNotAnImage   = apperror.New(http.StatusBadRequest, "NOT_AN_IMAGE", "uploaded file is not an image")
	ErrTooLarge     = apperror.New(http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "uploaded file exceeds the size limit")
	ErrInvalidOwner = apperror.New(http.StatusBadRequest, "INVALID_OWNER", "unknown photo owner type")
)

// Photo owner kinds.
const (
	OwnerHotel = "hotel"
	OwnerRoom  = "room"
)

// ValidOwner reports whether t is a known photo owner kind.
func ValidOwner(t string) bool {
	return t == OwnerHotel || t == OwnerRoom
}

// Photo is an uploaded image attached to a hotel or a room.
// Stored files are normalized JPEGs; a thumbnail is kept alongside.
type Photo struct {
	ID            string
	HotelID       string
	OwnerType     string
	OwnerID       string
	StoragePath   string
	ThumbnailPath string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public path for the full-size photo.
func URL(id string) string {
	return "/api/v1/media/photos/" + id
}

// ThumbnailURL returns the public path for the photo's thumbnail.
func ThumbnailURL(id string) string {
	return "/api/v1/media/photos/" + id + "/thumbnail"
}
