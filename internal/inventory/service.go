package inventory

import (
	"context"
	"strings"
)

type CreateRoomTypeRequest struct {
	HotelID       string
	Name          string
	Description   *string
	Capacity      int
	BaseRateCents int64
}

type UpdateRoomTypeRequest struct {
	Name          *string
	Description   *string
	Capacity      *int
	BaseRateCents *int64
}

type CreateRoomRequest struct {
	HotelID    string
	RoomTypeID string
	Number     string
	Floor      int
}

type UpdateRoomRequest struct {
	RoomTypeID *string
	Number     *string
	Floor      *int
	Status     *string
}

// Service defines business logic for room types and rooms.
type Service interface {
	CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (*RoomType, error)
	GetRoomType(ctx context.Context, id string) (*RoomType, error)
	ListRoomTypes(ctx context.Context, filter RoomTypeFilter) ([]*RoomType, int, error)
	UpdateRoomType(ctx context.Context, id string, req UpdateRoomTypeRequest) (*RoomType, error)
	DeleteRoomType(ctx context.Context, id string) error

	CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error)
	GetRoom(ctx context.Context, id string) (*Room, error)
	ListRooms(ctx context.Context, filter RoomFilter) ([]*Room, int, error)
	UpdateRoom(ctx context.Context, id string, req UpdateRoomRequest) (*Room, error)
	DeleteRoom(ctx context.Context, id string) error
	SetRoomPhoto(ctx context.Context, id string, photoPath string) error
}

type service struct {
	repo Repository
}

// NewService creates a new inventory service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (*RoomType, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if req.Capacity < 1 {
		req.Capacity = 1
	}

	rt := &RoomType{
		HotelID:       req.HotelID,
		Name:          name,
		Description:   req.Description,
		Capacity:      req.Capacity,
		BaseRateCents: req.BaseRateCents,
	}

	if err := s.repo.CreateRoomType(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *service) GetRoomType(ctx context.Context, id string) (*RoomType, error) {
	return s.repo.GetRoomType(ctx, id)
}

func (s *service) ListRoomTypes(ctx context.Context, filter RoomTypeFilter) ([]*RoomType, int, error) {
	return s.repo.ListRoomTypes(ctx, filter)
}

func (s *service) UpdateRoomType(ctx context.Context, id string, req UpdateRoomTypeRequest) (*RoomType, error) {
	rt, err := s.repo.GetRoomType(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		rt.Name = name
	}
	if req.Description != nil {
		rt.Description = req.Description
	}
	if req.Capacity != nil && *req.Capacity > 0 {
		rt.Capacity = *req.Capacity
	}
	if req.BaseRateCents != nil {
		rt.BaseRateCents = *req.BaseRateCents
	}

	if err := s.repo.UpdateRoomType(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *service) DeleteRoomType(ctx context.Context, id string) error {
	count, err := s.repo.CountRoomsOfType(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrRoomTypeInUse
	}
	return s.repo.DeleteRoomType(ctx, id)
}

func (s *service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error) {
	number := strings.TrimSpace(req.Number)
	if number == "" {
		return nil, ErrNameRequired
	}

	// The room type must belong to the same hotel.
	rt, err := s.repo.GetRoomType(ctx, req.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if rt.HotelID != req.HotelID {
		return nil, ErrWrongHotel
	}

	room := &Room{
		HotelID:    req.HotelID,
		RoomTypeID: req.RoomTypeID,
		Number:     number,
		Floor:      req.Floor,
		Status:     RoomAvailable,
	}

	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	room.RoomTypeName = rt.Name
	return room, nil
}

func (s *service) GetRoom(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetRoom(ctx, id)
}

func (s *service) ListRooms(ctx context.Context, filter RoomFilter) ([]*Room, int, error) {
	return s.repo.ListRooms(ctx, filter)
}

func (s *service) UpdateRoom(ctx context.Context, id string, req UpdateRoomRequest) (*Room, error) {
	room, err := s.repo.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoomTypeID != nil {
		rt, err := s.repo.GetRoomType(ctx, *req.RoomTypeID)
		if err != nil {
			return nil, err
		}
		if rt.HotelID != room.HotelID {
			return nil, ErrWrongHotel
		}
		room.RoomTypeID = rt.ID
		room.RoomTypeName = rt.Name
	}
	if req.Number != nil {
		number := strings.TrimSpace(*req.Number)
		if number == "" {
			return nil, ErrNameRequired
		}
		room.Number = number
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.Status != nil {
		st := RoomStatus(*req.Status)
		if !ValidRoomStatus(st) {
			return nil, ErrInvalidStatus
		}
		room.Status = st
	}

	if err := s.repo.UpdateRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *service) DeleteRoom(ctx context.Context, id string) error {
	return s.repo.DeleteRoom(ctx, id)
}

func (s *service) SetRoomPhoto(ctx context.Context, id string, photoPath string) error {
	room, err := s.repo.GetRoom(ctx, id)
	if err != nil {
		return err
	}
	room.PhotoPath = &photoPath
	return s.repo.UpdateRoom(ctx, room)
}
