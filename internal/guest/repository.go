package guest

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

// Repository defines methods for accessing guests.
type Repository interface {
	Create(ctx context.Context, g *Guest) error
	GetByID(ctx context.Context, id string) (*Guest, error)
	List(ctx context.Context, filter Filter) ([]*Guest, int, error)
	Update(ctx context.Context, g *Guest) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new guest repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

const columns = "id, hotel_id, name, email, phone, notes, created_at, updated_at"

func scanGuest(row pgx.Row, extra ...any) (*Guest, error) {
	var g Guest
	dest := []any{&g.ID, &g.HotelID, &g.Name, &g.Email, &g.Phone, &g.Notes, &g.CreatedAt, &g.UpdatedAt}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan guest failed: %w", err)
	}
	return &g, nil
}

func (r *pgxRepository) Create(ctx context.Context, g *Guest) error {
	query, args, err := builder().Insert("public.guests").
		Columns("hotel_id", "name", "email", "phone", "notes").
		Values(g.HotelID, g.Name, g.Email, g.Phone, g.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create guest query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("create guest failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Guest, error) {
	query, args, err := builder().Select(columns).
		From("public.guests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get guest query failed: %w", err)
	}

	return scanGuest(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Guest, int, error) {
	query := builder().
		Select(columns + ", count(*) OVER() as total_count").
		From("public.guests").
		Where(squirrel.Eq{"hotel_id": filter.HotelID})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	orderBy := "created_at DESC"
	switch filter.SortBy {
	case "name", "email", "created_at":
		orderBy = filter.SortBy + " " + filter.SortOrder
	}
	query = query.OrderBy(orderBy).
		Limit(uint64(filter.PageSize)).
		Offset(uint64((filter.Page - 1) * filter.PageSize))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list guests query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list guests failed: %w", err)
	}
	defer rows.Close()

	var guests []*Guest
	var total int
	for rows.Next() {
		g, err := scanGuest(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		guests = append(guests, g)
	}

	return guests, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, g *Guest) error {
	query, args, err := builder().Update("public.guests").
		Set("name", g.Name).
		Set("email", g.Email).
		Set("phone", g.Phone).
		Set("notes", g.Notes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": g.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update guest query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("update guest failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := builder().Delete("public.guests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete guest query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete guest failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
