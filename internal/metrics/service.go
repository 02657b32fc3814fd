package metrics

import (
	"context"
	"time"
)

// Service defines read operations for dashboard metrics.
type Service interface {
	Overview(ctx context.Context, hotelID string, date time.Time) (*Overview, error)
	Revenue(ctx context.Context, hotelID string, from, to time.Time) ([]RevenuePoint, error)
}

type service struct {
	repo Repository
}

// NewService creates a new metrics service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Overview(ctx context.Context, hotelID string, date time.Time) (*Overview, error) {
	return s.repo.Overview(ctx, hotelID, date)
}

func (s *service) Revenue(ctx context.Context, hotelID string, from, to time.Time) ([]RevenuePoint, error) {
	if from.After(to) {
		return nil, ErrInvalidRange
	}
	// Cap the series at one year to keep the query bounded.
	if to.Sub(from) > 366*24*time.Hour {
		return nil, ErrInvalidRange
	}
	return s.repo.Revenue(ctx, hotelID, from, to)
}
