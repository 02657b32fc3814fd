package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing pricing rules.
type Repository interface {
	Create(ctx context.Context, rule *Rule) error
	GetByID(ctx context.Context, id string) (*Rule, error)
	List(ctx context.Context, filter Filter) ([]*Rule, int, error)
	Update(ctx context.Context, rule *Rule) error
	Delete(ctx context.Context, id string) error

	// ListForRange returns the active rules of a hotel that overlap the
	// [from, to) window, for quote computation.
	ListForRange(ctx context.Context, hotelID string, from, to time.Time) ([]*Rule, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new pricing rule repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

const columns = "id, hotel_id, room_type_id, name, kind, value, start_date, end_date, priority, is_active, created_at, updated_at"

func scanRule(row pgx.Row, extra ...any) (*Rule, error) {
	var r Rule
	dest := []any{&r.ID, &r.HotelID, &r.RoomTypeID, &r.Name, &r.Kind, &r.Value,
		&r.StartDate, &r.EndDate, &r.Priority, &r.IsActive, &r.CreatedAt, &r.UpdatedAt}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan pricing rule failed: %w", err)
	}
	return &r, nil
}

func (r *pgxRepository) Create(ctx context.Context, rule *Rule) error {
	query, args, err := builder().Insert("public.pricing_rules").
		Columns("hotel_id", "room_type_id", "name", "kind", "value", "start_date", "end_date", "priority", "is_active").
		Values(rule.HotelID, rule.RoomTypeID, rule.Name, rule.Kind, rule.Value,
			rule.StartDate, rule.EndDate, rule.Priority, rule.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create pricing rule query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Rule, error) {
	query, args, err := builder().Select(columns).
		From("public.pricing_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get pricing rule query failed: %w", err)
	}

	return scanRule(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Rule, int, error) {
	query := builder().
		Select(columns + ", count(*) OVER() as total_count").
		From("public.pricing_rules").
		Where(squirrel.Eq{"hotel_id": filter.HotelID})

	if filter.RoomTypeID != "" {
		// Include hotel-wide rules alongside type-specific ones.
		query = query.Where(squirrel.Or{
			squirrel.Eq{"room_type_id": filter.RoomTypeID},
			squirrel.Eq{"room_type_id": nil},
		})
	}
	if filter.Search != "" {
		query = query.Where(squirrel.ILike{"name": "%" + filter.Search + "%"})
	}
	if filter.ActiveOnly {
		query = query.Where(squirrel.Eq{"is_active": true})
	}

	orderBy := "priority"
	if filter.SortBy != "" {
		orderBy = filter.SortBy
	}
	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	query = query.Limit(uint64(filter.PageSize)).
		Offset(uint64((filter.Page - 1) * filter.PageSize))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list pricing rules query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list pricing rules failed: %w", err)
	}
	defer rows.Close()

	var rules []*Rule
	var total int
	for rows.Next() {
		rule, err := scanRule(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		rules = append(rules, rule)
	}

	return rules, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, rule *Rule) error {
	query, args, err := builder().Update("public.pricing_rules").
		Set("room_type_id", rule.RoomTypeID).
		Set("name", rule.Name).
		Set("kind", rule.Kind).
		Set("value", rule.Value).
		Set("start_date", rule.StartDate).
		Set("end_date", rule.EndDate).
		Set("priority", rule.Priority).
		Set("is_active", rule.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": rule.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update pricing rule query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update pricing rule failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := builder().Delete("public.pricing_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete pricing rule query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete pricing rule failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListForRange(ctx context.Context, hotelID string, from, to time.Time) ([]*Rule, error) {
	query, args, err := builder().Select(columns).
		From("public.pricing_rules").
		Where(squirrel.Eq{"hotel_id": hotelID, "is_active": true}).
		Where(squirrel.Lt{"start_date": to}).
		Where(squirrel.Gt{"end_date": from}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list rules for range query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rules for range failed: %w", err)
	}
	defer rows.Close()

	var rules []*Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
