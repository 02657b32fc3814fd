package guest

import (
	"context"
	"strings"
)

type CreateRequest struct {
	HotelID string
	Name    string
	Email   string
	Phone   *string
	Notes   *string
}

type UpdateRequest struct {
	Name  *string
	Email *string
	Phone *string
	Notes *string
}

// Service defines business logic for guests.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Guest, error)
	GetByID(ctx context.Context, id string) (*Guest, error)
	List(ctx context.Context, filter Filter) ([]*Guest, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Guest, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new guest service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Guest, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, ErrEmailRequired
	}

	g := &Guest{
		HotelID: req.HotelID,
		Name:    name,
		Email:   email,
		Phone:   req.Phone,
		Notes:   req.Notes,
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Guest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Guest, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Guest, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		g.Name = name
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email == "" {
			return nil, ErrEmailRequired
		}
		g.Email = email
	}
	if req.Phone != nil {
		g.Phone = req.Phone
	}
	if req.Notes != nil {
		g.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
