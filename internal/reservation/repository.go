package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing reservations.
type Repository interface {
	Create(ctx context.Context, res *Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	Update(ctx context.Context, res *Reservation) error
	Delete(ctx context.Context, id string) error

	// HasOverlap checks if there is any non-cancelled reservation occupying
	// the room for any night of [checkIn, checkOut).
	HasOverlap(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (bool, error)

	// AvailableRoomIDs returns the ids of rooms in the hotel free for every
	// night of [checkIn, checkOut). Rooms under maintenance are excluded.
	AvailableRoomIDs(ctx context.Context, hotelID string, roomTypeID string, checkIn, checkOut time.Time) ([]string, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new reservation repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

const columns = `r.id, r.hotel_id, r.room_id, r.guest_id, r.status, r.check_in, r.check_out,
	r.subtotal_cents, r.discount_cents, r.total_cents, r.promo_code, r.notes, r.created_at, r.updated_at,
	g.name, rm.number, rm.room_type_id`

func scanReservation(row pgx.Row, extra ...any) (*Reservation, error) {
	var res Reservation
	dest := []any{&res.ID, &res.HotelID, &res.RoomID, &res.GuestID, &res.Status, &res.CheckIn, &res.CheckOut,
		&res.SubtotalCents, &res.DiscountCents, &res.TotalCents, &res.PromoCode, &res.Notes, &res.CreatedAt, &res.UpdatedAt,
		&res.GuestName, &res.RoomNumber, &res.RoomTypeID}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan reservation failed: %w", err)
	}
	return &res, nil
}

func base() squirrel.SelectBuilder {
	return builder().Select(columns).
		From("public.reservations r").
		Join("public.guests g ON g.id = r.guest_id").
		Join("public.rooms rm ON rm.id = r.room_id")
}

func (r *pgxRepository) Create(ctx context.Context, res *Reservation) error {
	query, args, err := builder().Insert("public.reservations").
		Columns("hotel_id", "room_id", "guest_id", "status", "check_in", "check_out",
			"subtotal_cents", "discount_cents", "total_cents", "promo_code", "notes").
		Values(res.HotelID, res.RoomID, res.GuestID, res.Status, res.CheckIn, res.CheckOut,
			res.SubtotalCents, res.DiscountCents, res.TotalCents, res.PromoCode, res.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create reservation query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return fmt.Errorf("create reservation failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	query, args, err := base().
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query failed: %w", err)
	}

	return scanReservation(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	query := builder().Select(columns + ", count(*) OVER() as total_count").
		From("public.reservations r").
		Join("public.guests g ON g.id = r.guest_id").
		Join("public.rooms rm ON rm.id = r.room_id").
		Where(squirrel.Eq{"r.hotel_id": filter.HotelID})

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"r.status": filter.Status})
	}
	if filter.RoomTypeID != "" {
		query = query.Where(squirrel.Eq{"rm.room_type_id": filter.RoomTypeID})
	}
	if filter.GuestSearch != "" {
		pattern := "%" + filter.GuestSearch + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"g.name": pattern},
			squirrel.ILike{"g.email": pattern},
		})
	}
	if filter.CheckInFrom != nil {
		query = query.Where(squirrel.GtOrEq{"r.check_in": *filter.CheckInFrom})
	}
	if filter.CheckInTo != nil {
		query = query.Where(squirrel.LtOrEq{"r.check_in": *filter.CheckInTo})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	orderBy := "r.check_in DESC"
	switch filter.SortBy {
	case "check_in", "check_out", "created_at", "status", "total_cents":
		orderBy = "r." + filter.SortBy + " " + filter.SortOrder
	}
	query = query.OrderBy(orderBy).
		Limit(uint64(filter.PageSize)).
		Offset(uint64((filter.Page - 1) * filter.PageSize))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	var total int
	for rows.Next() {
		res, err := scanReservation(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		reservations = append(reservations, res)
	}

	return reservations, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, res *Reservation) error {
	query, args, err := builder().Update("public.reservations").
		Set("room_id", res.RoomID).
		Set("status", res.Status).
		Set("check_in", res.CheckIn).
		Set("check_out", res.CheckOut).
		Set("subtotal_cents", res.SubtotalCents).
		Set("discount_cents", res.DiscountCents).
		Set("total_cents", res.TotalCents).
		Set("promo_code", res.PromoCode).
		Set("notes", res.Notes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update reservation query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := builder().Delete("public.reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete reservation query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (bool, error) {
	// A reservation occupies the nights [check_in, check_out), so two stays
	// conflict when each starts before the other ends.
	subQuery := builder().Select("1").
		From("public.reservations").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.NotEq{"status": StatusCancelled}).
		Where(squirrel.Lt{"check_in": checkOut}).
		Where(squirrel.Gt{"check_out": checkIn})

	if excludeID != "" {
		subQuery = subQuery.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build check overlap query failed: %w", err)
	}

	query := "SELECT EXISTS (" + sql + ")"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) AvailableRoomIDs(ctx context.Context, hotelID string, roomTypeID string, checkIn, checkOut time.Time) ([]string, error) {
	// Built with question placeholders so the outer dollar conversion
	// renumbers the embedded arguments.
	occupied := squirrel.StatementBuilder.Select("1").
		From("public.reservations res").
		Where(squirrel.Expr("res.room_id = rm.id")).
		Where(squirrel.NotEq{"res.status": StatusCancelled}).
		Where(squirrel.Lt{"res.check_in": checkOut}).
		Where(squirrel.Gt{"res.check_out": checkIn})

	occupiedSQL, occupiedArgs, err := occupied.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build occupied subquery failed: %w", err)
	}

	query := builder().Select("rm.id").
		From("public.rooms rm").
		Where(squirrel.Eq{"rm.hotel_id": hotelID}).
		Where(squirrel.NotEq{"rm.status": "maintenance"}).
		Where(squirrel.Expr("NOT EXISTS ("+occupiedSQL+")", occupiedArgs...))

	if roomTypeID != "" {
		query = query.Where(squirrel.Eq{"rm.room_type_id": roomTypeID})
	}
	query = query.OrderBy("rm.number ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build available rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list available rooms failed: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan available room failed: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
