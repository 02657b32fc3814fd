package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository runs the aggregate queries backing the dashboard.
type Repository interface {
	Overview(ctx context.Context, hotelID string, date time.Time) (*Overview, error)
	Revenue(ctx context.Context, hotelID string, from, to time.Time) ([]RevenuePoint, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new metrics repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Overview(ctx context.Context, hotelID string, date time.Time) (*Overview, error) {
	// Occupied means a non-cancelled stay covering the night of the date.
	const query = `
		SELECT
			(SELECT count(*) FROM public.rooms
				WHERE hotel_id = $1 AND status <> 'maintenance'),
			(SELECT count(DISTINCT room_id) FROM public.reservations
				WHERE hotel_id = $1 AND status IN ('confirmed', 'checked_in')
				AND check_in <= $2 AND check_out > $2),
			(SELECT count(*) FROM public.reservations
				WHERE hotel_id = $1 AND status IN ('pending', 'confirmed') AND check_in = $2),
			(SELECT count(*) FROM public.reservations
				WHERE hotel_id = $1 AND status = 'checked_in' AND check_out = $2),
			(SELECT count(*) FROM public.reservations
				WHERE hotel_id = $1 AND status = 'pending'),
			(SELECT count(*) FROM public.orders
				WHERE hotel_id = $1 AND status IN ('pending', 'paid'))`

	ov := &Overview{Date: date}
	err := r.pool.QueryRow(ctx, query, hotelID, date).Scan(
		&ov.TotalRooms,
		&ov.OccupiedRooms,
		&ov.Arrivals,
		&ov.Departures,
		&ov.PendingReservations,
		&ov.OpenOrders,
	)
	if err != nil {
		return nil, fmt.Errorf("overview query failed: %w", err)
	}

	if ov.TotalRooms > 0 {
		ov.OccupancyPercent = float64(ov.OccupiedRooms) / float64(ov.TotalRooms) * 100
	}
	return ov, nil
}

func (r *pgxRepository) Revenue(ctx context.Context, hotelID string, from, to time.Time) ([]RevenuePoint, error) {
	const query = `
		SELECT day::date,
			COALESCE((SELECT sum(total_cents) FROM public.reservations
				WHERE hotel_id = $1 AND status <> 'cancelled' AND check_in = day::date), 0),
			COALESCE((SELECT sum(total_cents) FROM public.orders
				WHERE hotel_id = $1 AND status <> 'cancelled' AND scheduled_at::date = day::date), 0)
		FROM generate_series($2::date, $3::date, interval '1 day') AS day
		ORDER BY day`

	rows, err := r.pool.Query(ctx, query, hotelID, from, to)
	if err != nil {
		return nil, fmt.Errorf("revenue query failed: %w", err)
	}
	defer rows.Close()

	var points []RevenuePoint
	for rows.Next() {
		var p RevenuePoint
		if err := rows.Scan(&p.Date, &p.ReservationRevenueCents, &p.OrderRevenueCents); err != nil {
			return nil, fmt.Errorf("scan revenue point failed: %w", err)
		}
		points = append(points, p)
	}
	return points, nil
}
