package reservation

import (
	"context"
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/guest"
	"github.com/veranolabs/hotel-admin-backend/internal/inventory"
	"github.com/veranolabs/hotel-admin-backend/internal/pricing"
)

type CreateRequest struct {
	HotelID   string
	RoomID    string
	GuestID   string
	CheckIn   time.Time
	CheckOut  time.Time
	PromoCode string
	Notes     *string
}

type UpdateRequest struct {
	RoomID   *string
	CheckIn  *time.Time
	CheckOut *time.Time
	Notes    *string
}

// Publisher pushes change events to connected dashboard clients of one hotel.
type Publisher interface {
	Publish(hotelID, eventType, entityID string, patch map[string]any)
}

// NopPublisher discards events.
type NopPublisher struct{}

func (NopPublisher) Publish(string, string, string, map[string]any) {}

// Service defines business logic for reservations.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Reservation, error)

	// Status actions. Each enforces the transition rules.
	Confirm(ctx context.Context, id string) (*Reservation, error)
	CheckIn(ctx context.Context, id string) (*Reservation, error)
	CheckOut(ctx context.Context, id string) (*Reservation, error)
	Cancel(ctx context.Context, id string) (*Reservation, error)

	// AvailableRooms lists rooms free for every night of [checkIn, checkOut).
	AvailableRooms(ctx context.Context, hotelID string, roomTypeID string, checkIn, checkOut time.Time) ([]*inventory.Room, error)
}

type service struct {
	repo           Repository
	invService     inventory.Service
	guestService   guest.Service
	pricingService pricing.Service
	publisher      Publisher
}

// NewService creates a new reservation service.
func NewService(repo Repository, invService inventory.Service, guestService guest.Service, pricingService pricing.Service, publisher Publisher) Service {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &service{
		repo:           repo,
		invService:     invService,
		guestService:   guestService,
		pricingService: pricingService,
		publisher:      publisher,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	if !req.CheckIn.Before(req.CheckOut) {
		return nil, ErrInvalidDateRange
	}

	room, err := s.invService.GetRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if room.HotelID != req.HotelID {
		return nil, inventory.ErrRoomNotFound
	}

	g, err := s.guestService.GetByID(ctx, req.GuestID)
	if err != nil {
		return nil, err
	}
	if g.HotelID != req.HotelID {
		return nil, guest.ErrNotFound
	}

	taken, err := s.repo.HasOverlap(ctx, room.ID, req.CheckIn, req.CheckOut, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrRoomUnavailable
	}

	quote, err := s.pricingService.Quote(ctx, pricing.QuoteRequest{
		HotelID:    req.HotelID,
		RoomTypeID: room.RoomTypeID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		PromoCode:  req.PromoCode,
	})
	if err != nil {
		return nil, err
	}

	res := &Reservation{
		HotelID:       req.HotelID,
		RoomID:        room.ID,
		GuestID:       g.ID,
		Status:        StatusPending,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		SubtotalCents: quote.SubtotalCents,
		DiscountCents: quote.DiscountCents,
		TotalCents:    quote.TotalCents,
		PromoCode:     quote.PromoCode,
		Notes:         req.Notes,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	res.GuestName = g.Name
	res.RoomNumber = room.Number
	res.RoomTypeID = room.RoomTypeID

	s.publisher.Publish(res.HotelID, "reservation.updated", res.ID, map[string]any{
		"status":     res.Status,
		"totalCents": res.TotalCents,
	})
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Dates and room can only change before the stay begins.
	datesChanged := req.CheckIn != nil || req.CheckOut != nil || req.RoomID != nil
	if datesChanged && res.Status != StatusPending && res.Status != StatusConfirmed {
		return nil, ErrInvalidTransition
	}

	room := (*inventory.Room)(nil)
	if req.RoomID != nil {
		room, err = s.invService.GetRoom(ctx, *req.RoomID)
		if err != nil {
			return nil, err
		}
		if room.HotelID != res.HotelID {
			return nil, inventory.ErrRoomNotFound
		}
		res.RoomID = room.ID
	}
	if req.CheckIn != nil {
		res.CheckIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		res.CheckOut = *req.CheckOut
	}
	if req.Notes != nil {
		res.Notes = req.Notes
	}

	if datesChanged {
		if !res.CheckIn.Before(res.CheckOut) {
			return nil, ErrInvalidDateRange
		}

		taken, err := s.repo.HasOverlap(ctx, res.RoomID, res.CheckIn, res.CheckOut, res.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrRoomUnavailable
		}

		if room == nil {
			room, err = s.invService.GetRoom(ctx, res.RoomID)
			if err != nil {
				return nil, err
			}
		}

		// Reprice the stay; the stored promo code carries over.
		code := ""
		if res.PromoCode != nil {
			code = *res.PromoCode
		}
		quote, err := s.pricingService.Quote(ctx, pricing.QuoteRequest{
			HotelID:    res.HotelID,
			RoomTypeID: room.RoomTypeID,
			CheckIn:    res.CheckIn,
			CheckOut:   res.CheckOut,
			PromoCode:  code,
		})
		if err != nil {
			return nil, err
		}
		res.SubtotalCents = quote.SubtotalCents
		res.DiscountCents = quote.DiscountCents
		res.TotalCents = quote.TotalCents
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}

	s.publisher.Publish(res.HotelID, "reservation.updated", res.ID, map[string]any{
		"status":     res.Status,
		"totalCents": res.TotalCents,
	})
	return res, nil
}

func (s *service) transition(ctx context.Context, id string, to string) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(res.Status, to) {
		if to == StatusCancelled && (res.Status == StatusCheckedIn || res.Status == StatusCheckedOut) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, ErrInvalidTransition
	}
	res.Status = to

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}

	s.publisher.Publish(res.HotelID, "reservation.updated", res.ID, map[string]any{
		"status": res.Status,
	})
	return res, nil
}

func (s *service) Confirm(ctx context.Context, id string) (*Reservation, error) {
	return s.transition(ctx, id, StatusConfirmed)
}

func (s *service) CheckIn(ctx context.Context, id string) (*Reservation, error) {
	return s.transition(ctx, id, StatusCheckedIn)
}

func (s *service) CheckOut(ctx context.Context, id string) (*Reservation, error) {
	return s.transition(ctx, id, StatusCheckedOut)
}

func (s *service) Cancel(ctx context.Context, id string) (*Reservation, error) {
	return s.transition(ctx, id, StatusCancelled)
}

func (s *service) AvailableRooms(ctx context.Context, hotelID string, roomTypeID string, checkIn, checkOut time.Time) ([]*inventory.Room, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}

	ids, err := s.repo.AvailableRoomIDs(ctx, hotelID, roomTypeID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	rooms := make([]*inventory.Room, 0, len(ids))
	for _, id := range ids {
		room, err := s.invService.GetRoom(ctx, id)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}
