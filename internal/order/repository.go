package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing orders.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, filter Filter) ([]*Order, int, error)
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new order repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

const columns = `o.id, o.hotel_id, o.guest_id, o.activity_type_id, o.status, o.scheduled_at,
	o.quantity, o.unit_price_cents, o.discount_cents, o.total_cents, o.promo_code, o.notes,
	o.created_at, o.updated_at, g.name, at.name`

func scanOrder(row pgx.Row, extra ...any) (*Order, error) {
	var o Order
	dest := []any{&o.ID, &o.HotelID, &o.GuestID, &o.ActivityTypeID, &o.Status, &o.ScheduledAt,
		&o.Quantity, &o.UnitPriceCents, &o.DiscountCents, &o.TotalCents, &o.PromoCode, &o.Notes,
		&o.CreatedAt, &o.UpdatedAt, &o.GuestName, &o.ActivityName}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan order failed: %w", err)
	}
	return &o, nil
}

func (r *pgxRepository) Create(ctx context.Context, o *Order) error {
	query, args, err := builder().Insert("public.orders").
		Columns("hotel_id", "guest_id", "activity_type_id", "status", "scheduled_at",
			"quantity", "unit_price_cents", "discount_cents", "total_cents", "promo_code", "notes").
		Values(o.HotelID, o.GuestID, o.ActivityTypeID, o.Status, o.ScheduledAt,
			o.Quantity, o.UnitPriceCents, o.DiscountCents, o.TotalCents, o.PromoCode, o.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create order query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return fmt.Errorf("create order failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	query, args, err := builder().Select(columns).
		From("public.orders o").
		Join("public.guests g ON g.id = o.guest_id").
		Join("public.activity_types at ON at.id = o.activity_type_id").
		Where(squirrel.Eq{"o.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get order query failed: %w", err)
	}

	return scanOrder(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Order, int, error) {
	query := builder().Select(columns + ", count(*) OVER() as total_count").
		From("public.orders o").
		Join("public.guests g ON g.id = o.guest_id").
		Join("public.activity_types at ON at.id = o.activity_type_id").
		Where(squirrel.Eq{"o.hotel_id": filter.HotelID})

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"o.status": filter.Status})
	}
	if filter.ActivityTypeID != "" {
		query = query.Where(squirrel.Eq{"o.activity_type_id": filter.ActivityTypeID})
	}
	if filter.GuestSearch != "" {
		pattern := "%" + filter.GuestSearch + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"g.name": pattern},
			squirrel.ILike{"g.email": pattern},
		})
	}
	if filter.From != nil {
		query = query.Where(squirrel.GtOrEq{"o.scheduled_at": *filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.LtOrEq{"o.scheduled_at": *filter.To})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	orderBy := "o.scheduled_at DESC"
	switch filter.SortBy {
	case "scheduled_at", "created_at", "status", "total_cents":
		orderBy = "o." + filter.SortBy + " " + filter.SortOrder
	}
	query = query.OrderBy(orderBy).
		Limit(uint64(filter.PageSize)).
		Offset(uint64((filter.Page - 1) * filter.PageSize))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list orders query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders failed: %w", err)
	}
	defer rows.Close()

	var orders []*Order
	var total int
	for rows.Next() {
		o, err := scanOrder(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}

	return orders, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, o *Order) error {
	query, args, err := builder().Update("public.orders").
		Set("status", o.Status).
		Set("scheduled_at", o.ScheduledAt).
		Set("quantity", o.Quantity).
		Set("unit_price_cents", o.UnitPriceCents).
		Set("discount_cents", o.DiscountCents).
		Set("total_cents", o.TotalCents).
		Set("promo_code", o.PromoCode).
		Set("notes", o.Notes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": o.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update order query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update order failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := builder().Delete("public.orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete order query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete order failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
