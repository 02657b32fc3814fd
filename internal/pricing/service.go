package pricing

import (
	"context"
	"strings"
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/inventory"
	"github.com/veranolabs/hotel-admin-backend/internal/promo"
)

type CreateRequest struct {
	HotelID    string
	RoomTypeID *string
	Name       string
	Kind       Kind
	Value      int64
	StartDate  time.Time
	EndDate    time.Time
	Priority   int
}

type UpdateRequest struct {
	RoomTypeID *string
	Name       *string
	Kind       *Kind
	Value      *int64
	StartDate  *time.Time
	EndDate    *time.Time
	Priority   *int
	IsActive   *bool
}

// QuoteRequest prices a stay for one room type, optionally with a promo code.
type QuoteRequest struct {
	HotelID    string
	RoomTypeID string
	CheckIn    time.Time
	CheckOut   time.Time
	PromoCode  string
}

// Service defines business logic for pricing rules and quotes.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Rule, error)
	GetByID(ctx context.Context, id string) (*Rule, error)
	List(ctx context.Context, filter Filter) ([]*Rule, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Rule, error)
	Delete(ctx context.Context, id string) error

	// Quote resolves the nightly rates of [CheckIn, CheckOut) through the
	// active rules and applies the promo discount to the subtotal.
	Quote(ctx context.Context, req QuoteRequest) (*Quote, error)
}

type service struct {
	repo         Repository
	invService   inventory.Service
	promoService promo.Service
}

// NewService creates a new pricing service.
func NewService(repo Repository, invService inventory.Service, promoService promo.Service) Service {
	return &service{
		repo:         repo,
		invService:   invService,
		promoService: promoService,
	}
}

func validateRule(kind Kind, value int64, start, end time.Time) error {
	if !ValidKind(kind) {
		return ErrInvalidKind
	}
	if value <= 0 {
		return ErrInvalidValue
	}
	if !start.Before(end) {
		return ErrInvalidDateRange
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Rule, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if err := validateRule(req.Kind, req.Value, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	// A type-scoped rule must point at a room type of the same hotel.
	if req.RoomTypeID != nil {
		rt, err := s.invService.GetRoomType(ctx, *req.RoomTypeID)
		if err != nil {
			return nil, err
		}
		if rt.HotelID != req.HotelID {
			return nil, inventory.ErrRoomTypeNotFound
		}
	}

	rule := &Rule{
		HotelID:    req.HotelID,
		RoomTypeID: req.RoomTypeID,
		Name:       name,
		Kind:       req.Kind,
		Value:      req.Value,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Priority:   req.Priority,
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Rule, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Rule, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Rule, error) {
	rule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoomTypeID != nil {
		rt, err := s.invService.GetRoomType(ctx, *req.RoomTypeID)
		if err != nil {
			return nil, err
		}
		if rt.HotelID != rule.HotelID {
			return nil, inventory.ErrRoomTypeNotFound
		}
		rule.RoomTypeID = req.RoomTypeID
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		rule.Name = name
	}
	if req.Kind != nil {
		rule.Kind = *req.Kind
	}
	if req.Value != nil {
		rule.Value = *req.Value
	}
	if req.StartDate != nil {
		rule.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		rule.EndDate = *req.EndDate
	}
	if err := validateRule(rule.Kind, rule.Value, rule.StartDate, rule.EndDate); err != nil {
		return nil, err
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	if !req.CheckIn.Before(req.CheckOut) {
		return nil, ErrInvalidDateRange
	}

	rt, err := s.invService.GetRoomType(ctx, req.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if rt.HotelID != req.HotelID {
		return nil, inventory.ErrRoomTypeNotFound
	}

	rules, err := s.repo.ListForRange(ctx, req.HotelID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	q := ComputeStay(rules, rt.ID, rt.BaseRateCents, req.CheckIn, req.CheckOut)

	if code := strings.TrimSpace(req.PromoCode); code != "" {
		p, err := s.promoService.Validate(ctx, req.HotelID, code)
		if err != nil {
			return nil, err
		}
		q.DiscountCents = p.Discount(q.SubtotalCents)
		q.TotalCents = q.SubtotalCents - q.DiscountCents
		q.PromoCode = &p.Code
	}

	return &q, nil
}
