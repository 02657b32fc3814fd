package promo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing promo codes.
type Repository interface {
	Create(ctx context.Context, p *PromoCode) error
	GetByID(ctx context.Context, id string) (*PromoCode, error)
	GetByCode(ctx context.Context, hotelID string, code string) (*PromoCode, error)
	List(ctx context.Context, filter Filter) ([]*PromoCode, int, error)
	Update(ctx context.Context, p *PromoCode) error
	Delete(ctx context.Context, id string) error
	IncrementUses(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new promo code repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

const columns = "id, hotel_id, code, kind, value, max_uses, uses, valid_from, valid_to, is_active, created_at, updated_at"

func scanPromo(row pgx.Row, extra ...any) (*PromoCode, error) {
	var p PromoCode
	dest := []any{&p.ID, &p.HotelID, &p.Code, &p.Kind, &p.Value, &p.MaxUses, &p.Uses,
		&p.ValidFrom, &p.ValidTo, &p.IsActive, &p.CreatedAt, &p.UpdatedAt}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan promo code failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) Create(ctx context.Context, p *PromoCode) error {
	query, args, err := builder().Insert("public.promo_codes").
		Columns("hotel_id", "code", "kind", "value", "max_uses", "valid_from", "valid_to", "is_active").
		Values(p.HotelID, p.Code, p.Kind, p.Value, p.MaxUses, p.ValidFrom, p.ValidTo, p.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create promo code query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrCodeTaken
		}
		return fmt.Errorf("create promo code failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*PromoCode, error) {
	query, args, err := builder().Select(columns).
		From("public.promo_codes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get promo code query failed: %w", err)
	}

	return scanPromo(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) GetByCode(ctx context.Context, hotelID string, code string) (*PromoCode, error) {
	query, args, err := builder().Select(columns).
		From("public.promo_codes").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		Where(squirrel.Expr("upper(code) = upper(?)", code)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get promo by code query failed: %w", err)
	}

	return scanPromo(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*PromoCode, int, error) {
	query := builder().
		Select(columns + ", count(*) OVER() as total_count").
		From("public.promo_codes").
		Where(squirrel.Eq{"hotel_id": filter.HotelID})

	if filter.Search != "" {
		query = query.Where(squirrel.ILike{"code": "%" + filter.Search + "%"})
	}
	if filter.ActiveOnly {
		query = query.Where(squirrel.Eq{"is_active": true})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	query = query.OrderBy("created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64((filter.Page - 1) * filter.PageSize))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list promo codes query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list promo codes failed: %w", err)
	}
	defer rows.Close()

	var promos []*PromoCode
	var total int
	for rows.Next() {
		p, err := scanPromo(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		promos = append(promos, p)
	}

	return promos, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, p *PromoCode) error {
	query, args, err := builder().Update("public.promo_codes").
		Set("code", p.Code).
		Set("kind", p.Kind).
		Set("value", p.Value).
		Set("max_uses", p.MaxUses).
		Set("valid_from", p.ValidFrom).
		Set("valid_to", p.ValidTo).
		Set("is_active", p.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update promo code query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrCodeTaken
		}
		return fmt.Errorf("update promo code failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := builder().Delete("public.promo_codes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete promo code query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete promo code failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) IncrementUses(ctx context.Context, id string) error {
	query, args, err := builder().Update("public.promo_codes").
		Set("uses", squirrel.Expr("uses + 1")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build increment uses query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("increment uses failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
