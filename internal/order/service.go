package order

import (
	"context"
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/activity"
	"github.com/veranolabs/hotel-admin-backend/internal/guest"
	"github.com/veranolabs/hotel-admin-backend/internal/promo"
)

type CreateRequest struct {
	HotelID        string
	GuestID        string
	ActivityTypeID string
	ScheduledAt    time.Time
	Quantity       int
	PromoCode      string
	Notes          *string
}

type UpdateRequest struct {
	ScheduledAt *time.Time
	Quantity    *int
	Notes       *string
}

// Publisher pushes change events to connected dashboard clients of one hotel.
type Publisher interface {
	Publish(hotelID, eventType, entityID string, patch map[string]any)
}

// NopPublisher discards events.
type NopPublisher struct{}

func (NopPublisher) Publish(string, string, string, map[string]any) {}

// Service defines business logic for activity orders.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, filter Filter) ([]*Order, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Order, error)

	// Status actions. Each enforces the transition rules.
	MarkPaid(ctx context.Context, id string) (*Order, error)
	Fulfill(ctx context.Context, id string) (*Order, error)
	Cancel(ctx context.Context, id string) (*Order, error)
}

type service struct {
	repo         Repository
	actService   activity.Service
	guestService guest.Service
	promoService promo.Service
	publisher    Publisher
}

// NewService creates a new order service.
func NewService(repo Repository, actService activity.Service, guestService guest.Service, promoService promo.Service, publisher Publisher) Service {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &service{
		repo:         repo,
		actService:   actService,
		guestService: guestService,
		promoService: promoService,
		publisher:    publisher,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Order, error) {
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	at, err := s.actService.GetByID(ctx, req.ActivityTypeID)
	if err != nil {
		return nil, err
	}
	if at.HotelID != req.HotelID {
		return nil, activity.ErrNotFound
	}
	if !at.IsActive {
		return nil, ErrActivityInactive
	}
	if req.Quantity > at.Capacity {
		return nil, ErrOverCapacity
	}

	g, err := s.guestService.GetByID(ctx, req.GuestID)
	if err != nil {
		return nil, err
	}
	if g.HotelID != req.HotelID {
		return nil, guest.ErrNotFound
	}

	subtotal := at.PriceCents * int64(req.Quantity)
	var discount int64
	var code *string
	if req.PromoCode != "" {
		p, err := s.promoService.Redeem(ctx, req.HotelID, req.PromoCode)
		if err != nil {
			return nil, err
		}
		discount = p.Discount(subtotal)
		code = &p.Code
	}

	o := &Order{
		HotelID:        req.HotelID,
		GuestID:        g.ID,
		ActivityTypeID: at.ID,
		Status:         StatusPending,
		ScheduledAt:    req.ScheduledAt,
		Quantity:       req.Quantity,
		UnitPriceCents: at.PriceCents,
		DiscountCents:  discount,
		TotalCents:     subtotal - discount,
		PromoCode:      code,
		Notes:          req.Notes,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	o.GuestName = g.Name
	o.ActivityName = at.Name

	s.publisher.Publish(o.HotelID, "order.updated", o.ID, map[string]any{
		"status":     o.Status,
		"totalCents": o.TotalCents,
	})
	return o, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Order, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Schedule and size can only change while the order is open.
	if (req.ScheduledAt != nil || req.Quantity != nil) && o.Status != StatusPending {
		return nil, ErrInvalidTransition
	}

	if req.ScheduledAt != nil {
		o.ScheduledAt = *req.ScheduledAt
	}
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		at, err := s.actService.GetByID(ctx, o.ActivityTypeID)
		if err != nil {
			return nil, err
		}
		if *req.Quantity > at.Capacity {
			return nil, ErrOverCapacity
		}
		o.Quantity = *req.Quantity

		subtotal := o.UnitPriceCents * int64(o.Quantity)
		if o.DiscountCents > subtotal {
			o.DiscountCents = subtotal
		}
		o.TotalCents = subtotal - o.DiscountCents
	}
	if req.Notes != nil {
		o.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	s.publisher.Publish(o.HotelID, "order.updated", o.ID, map[string]any{
		"status":     o.Status,
		"totalCents": o.TotalCents,
	})
	return o, nil
}

func (s *service) transition(ctx context.Context, id string, to string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(o.Status, to) {
		return nil, ErrInvalidTransition
	}
	o.Status = to

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	s.publisher.Publish(o.HotelID, "order.updated", o.ID, map[string]any{
		"status": o.Status,
	})
	return o, nil
}

func (s *service) MarkPaid(ctx context.Context, id string) (*Order, error) {
	return s.transition(ctx, id, StatusPaid)
}

func (s *service) Fulfill(ctx context.Context, id string) (*Order, error) {
	return s.transition(ctx, id, StatusFulfilled)
}

func (s *service) Cancel(ctx context.Context, id string) (*Order, error) {
	return s.transition(ctx, id, StatusCancelled)
}
