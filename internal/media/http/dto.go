package http

import (
	"github.com/veranolabs/hotel-admin-backend/internal/media"
)

type PhotoResponse struct {
	ID           string `json:"id"`
	OwnerType    string `json:"ownerType"`
	OwnerID      string `json:"ownerId"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

func NewPhotoResponse(p *media.Photo) PhotoResponse {
	return PhotoResponse{
		ID:           p.ID,
		OwnerType:    p.OwnerType,
		OwnerID:      p.OwnerID,
		URL:          media.URL(p.ID),
		ThumbnailURL: media.ThumbnailURL(p.ID),
	}
}
