package promo

import (
	"context"
	"strings"
	"time"
)

type CreateRequest struct {
	HotelID   string
	Code      string
	Kind      Kind
	Value     int64
	MaxUses   *int
	ValidFrom time.Time
	ValidTo   time.Time
}

type UpdateRequest struct {
	Code      *string
	Kind      *Kind
	Value     *int64
	MaxUses   *int
	ValidFrom *time.Time
	ValidTo   *time.Time
	IsActive  *bool
}

// Service defines business logic for promo codes.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*PromoCode, error)
	GetByID(ctx context.Context, id string) (*PromoCode, error)
	List(ctx context.Context, filter Filter) ([]*PromoCode, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*PromoCode, error)
	Delete(ctx context.Context, id string) error

	// Validate checks that the code can be applied right now and returns it.
	Validate(ctx context.Context, hotelID string, code string) (*PromoCode, error)
	// Redeem validates the code and consumes one use.
	Redeem(ctx context.Context, hotelID string, code string) (*PromoCode, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new promo code service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func validateValue(kind Kind, value int64) error {
	if !ValidKind(kind) {
		return ErrInvalidKind
	}
	if value <= 0 {
		return ErrInvalidValue
	}
	if kind == KindPercent && value > 100 {
		return ErrInvalidValue
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*PromoCode, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, ErrCodeRequired
	}
	if err := validateValue(req.Kind, req.Value); err != nil {
		return nil, err
	}

	p := &PromoCode{
		HotelID:   req.HotelID,
		Code:      code,
		Kind:      req.Kind,
		Value:     req.Value,
		MaxUses:   req.MaxUses,
		ValidFrom: req.ValidFrom,
		ValidTo:   req.ValidTo,
		IsActive:  true,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*PromoCode, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*PromoCode, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*PromoCode, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.Code))
		if code == "" {
			return nil, ErrCodeRequired
		}
		p.Code = code
	}
	if req.Kind != nil {
		p.Kind = *req.Kind
	}
	if req.Value != nil {
		p.Value = *req.Value
	}
	if err := validateValue(p.Kind, p.Value); err != nil {
		return nil, err
	}
	if req.MaxUses != nil {
		p.MaxUses = req.MaxUses
	}
	if req.ValidFrom != nil {
		p.ValidFrom = *req.ValidFrom
	}
	if req.ValidTo != nil {
		p.ValidTo = *req.ValidTo
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Validate(ctx context.Context, hotelID string, code string) (*PromoCode, error) {
	p, err := s.repo.GetByCode(ctx, hotelID, strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	switch {
	case !p.IsActive:
		return nil, ErrInactive
	case now.Before(p.ValidFrom):
		return nil, ErrNotStarted
	case now.After(p.ValidTo):
		return nil, ErrExpired
	case p.MaxUses != nil && p.Uses >= *p.MaxUses:
		return nil, ErrExhausted
	}

	return p, nil
}

func (s *service) Redeem(ctx context.Context, hotelID string, code string) (*PromoCode, error) {
	p, err := s.Validate(ctx, hotelID, code)
	if err != nil {
		return nil, err
	}
	if err := s.repo.IncrementUses(ctx, p.ID); err != nil {
		return nil, err
	}
	p.Uses++
	return p, nil
}
