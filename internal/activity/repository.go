package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing activity types.
type Repository interface {
	Create(ctx context.Context, at *ActivityType) error
	GetByID(ctx context.Context, id string) (*ActivityType, error)
	List(ctx context.Context, filter Filter) ([]*ActivityType, int, error)
	Update(ctx context.Context, at *ActivityType) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new activity type repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

const columns = "id, hotel_id, name, description, duration_minutes, capacity, price_cents, is_active, created_at, updated_at"

func (r *pgxRepository) Create(ctx context.Context, at *ActivityType) error {
	query, args, err := builder().Insert("public.activity_types").
		Columns("hotel_id", "name", "description", "duration_minutes", "capacity", "price_cents", "is_active").
		Values(at.HotelID, at.Name, at.Description, at.DurationMinutes, at.Capacity, at.PriceCents, at.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create activity type query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&at.ID, &at.CreatedAt, &at.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*ActivityType, error) {
	query, args, err := builder().Select(columns).
		From("public.activity_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get activity type query failed: %w", err)
	}

	var at ActivityType
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&at.ID, &at.HotelID, &at.Name, &at.Description, &at.DurationMinutes,
			&at.Capacity, &at.PriceCents, &at.IsActive, &at.CreatedAt, &at.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get activity type failed: %w", err)
	}
	return &at, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*ActivityType, int, error) {
	query := builder().
		Select(columns + ", count(*) OVER() as total_count").
		From("public.activity_types").
		Where(squirrel.Eq{"hotel_id": filter.HotelID})

	if filter.Search != "" {
		query = query.Where(squirrel.ILike{"name": "%" + filter.Search + "%"})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	query = query.OrderBy("name ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64((filter.Page - 1) * filter.PageSize))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list activity types query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list activity types failed: %w", err)
	}
	defer rows.Close()

	var types []*ActivityType
	var total int
	for rows.Next() {
		var at ActivityType
		if err := rows.Scan(&at.ID, &at.HotelID, &at.Name, &at.Description, &at.DurationMinutes,
			&at.Capacity, &at.PriceCents, &at.IsActive, &at.CreatedAt, &at.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan activity type failed: %w", err)
		}
		types = append(types, &at)
	}

	return types, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, at *ActivityType) error {
	query, args, err := builder().Update("public.activity_types").
		Set("name", at.Name).
		Set("description", at.Description).
		Set("duration_minutes", at.DurationMinutes).
		Set("capacity", at.Capacity).
		Set("price_cents", at.PriceCents).
		Set("is_active", at.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": at.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update activity type query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update activity type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := builder().Delete("public.activity_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete activity type query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete activity type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
