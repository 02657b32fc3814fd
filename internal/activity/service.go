package activity

import (
	"context"
	"strings"
)

type CreateRequest struct {
	HotelID         string
	Name            string
	Description     *string
	DurationMinutes int
	Capacity        int
	PriceCents      int64
}

type UpdateRequest struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	Capacity        *int
	PriceCents      *int64
	IsActive        *bool
}

// Service defines business logic for activity types.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*ActivityType, error)
	GetByID(ctx context.Context, id string) (*ActivityType, error)
	List(ctx context.Context, filter Filter) ([]*ActivityType, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*ActivityType, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new activity type service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*ActivityType, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if req.DurationMinutes < 1 {
		req.DurationMinutes = 60
	}
	if req.Capacity < 1 {
		req.Capacity = 1
	}

	at := &ActivityType{
		HotelID:         req.HotelID,
		Name:            name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Capacity:        req.Capacity,
		PriceCents:      req.PriceCents,
		IsActive:        true,
	}

	if err := s.repo.Create(ctx, at); err != nil {
		return nil, err
	}
	return at, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*ActivityType, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*ActivityType, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*ActivityType, error) {
	at, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		at.Name = name
	}
	if req.Description != nil {
		at.Description = req.Description
	}
	if req.DurationMinutes != nil && *req.DurationMinutes > 0 {
		at.DurationMinutes = *req.DurationMinutes
	}
	if req.Capacity != nil && *req.Capacity > 0 {
		at.Capacity = *req.Capacity
	}
	if req.PriceCents != nil {
		at.PriceCents = *req.PriceCents
	}
	if req.IsActive != nil {
		at.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, at); err != nil {
		return nil, err
	}
	return at, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
