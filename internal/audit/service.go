package audit

import (
	"context"
	"log"
	"time"
)

type RecordRequest struct {
	HotelID    string
	ActorID    string
	ActorEmail string
	Action     string
	EntityType string
	EntityID   *string
	Detail     map[string]any
}

// Service records and lists the audit trail.
type Service interface {
	// Record stores an entry. Failures are logged, never surfaced, so a
	// broken audit store cannot block the mutation it describes.
	Record(ctx context.Context, req RecordRequest)
	List(ctx context.Context, filter Filter) ([]*Entry, int, error)
}

type service struct {
	repo Repository
}

// NewService creates a new audit service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, req RecordRequest) {
	e := &Entry{
		HotelID:    req.HotelID,
		ActorID:    req.ActorID,
		ActorEmail: req.ActorEmail,
		Action:     req.Action,
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		Detail:     req.Detail,
	}

	// Detached from the request context so cancellation of the HTTP
	// request does not drop the entry.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := s.repo.Insert(ctx, e); err != nil {
		log.Printf("audit record failed for %s: %v", req.Action, err)
	}
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Entry, int, error) {
	return s.repo.List(ctx, filter)
}
