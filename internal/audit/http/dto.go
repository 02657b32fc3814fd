package http

import (
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/audit"
)

type EntryResponse struct {
	ID         string         `json:"id"`
	HotelID    string         `json:"hotelId"`
	ActorID    string         `json:"actorId"`
	ActorEmail string         `json:"actorEmail"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   *string        `json:"entityId"`
	Detail     map[string]any `json:"detail"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func NewEntryResponse(e *audit.Entry) EntryResponse {
	return EntryResponse{
		ID:         e.ID,
		HotelID:    e.HotelID,
		ActorID:    e.ActorID,
		ActorEmail: e.ActorEmail,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Detail:     e.Detail,
		CreatedAt:  e.CreatedAt,
	}
}

type ListEntriesQuery struct {
	ActorID    string `form:"actor_id" binding:"omitempty,uuid"`
	EntityType string `form:"entity_type"`
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}
