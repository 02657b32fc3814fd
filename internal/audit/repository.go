package audit

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for storing and reading audit entries.
type Repository interface {
	Insert(ctx context.Context, e *Entry) error
	List(ctx context.Context, filter Filter) ([]*Entry, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new audit repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *pgxRepository) Insert(ctx context.Context, e *Entry) error {
	query, args, err := builder().Insert("public.audit_logs").
		Columns("hotel_id", "actor_id", "actor_email", "action", "entity_type", "entity_id", "detail").
		Values(e.HotelID, e.ActorID, e.ActorEmail, e.Action, e.EntityType, e.EntityID, e.Detail).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert audit entry query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&e.ID, &e.CreatedAt); err != nil {
		return fmt.Errorf("insert audit entry failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Entry, int, error) {
	query := builder().
		Select("id, hotel_id, actor_id, actor_email, action, entity_type, entity_id, detail, created_at, count(*) OVER() as total_count").
		From("public.audit_logs").
		Where(squirrel.Eq{"hotel_id": filter.HotelID})

	if filter.ActorID != "" {
		query = query.Where(squirrel.Eq{"actor_id": filter.ActorID})
	}
	if filter.EntityType != "" {
		query = query.Where(squirrel.Eq{"entity_type": filter.EntityType})
	}
	if filter.From != nil {
		query = query.Where(squirrel.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.LtOrEq{"created_at": *filter.To})
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
		return nil, 0, fmt.Errorf("build list audit entries query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit entries failed: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	var total int
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.HotelID, &e.ActorID, &e.ActorEmail, &e.Action,
			&e.EntityType, &e.EntityID, &e.Detail, &e.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan audit entry failed: %w", err)
		}
		entries = append(entries, &e)
	}

	return entries, total, nil
}
