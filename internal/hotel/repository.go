package hotel

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

// Repository defines methods for accessing hotel data.
type Repository interface {
	// Hotel methods
	Create(ctx context.Context, h *Hotel) error
	GetByID(ctx context.Context, id string) (*Hotel, error)
	List(ctx context.Context, filter Filter) ([]*Hotel, int, error)
	ListForUser(ctx context.Context, userID string) ([]*Hotel, error)
	Update(ctx context.Context, h *Hotel) error
	Delete(ctx context.Context, id string) error
	// Member methods
	GetMember(ctx context.Context, hotelID string, userID string) (*Member, error)
	AddMember(ctx context.Context, hotelID string, userID string, role string) error
	RemoveMember(ctx context.Context, hotelID string, userID string) error
	UpdateMemberRole(ctx context.Context, hotelID string, userID string, role string) error
	ListMembers(ctx context.Context, hotelID string, filter MemberFilter) ([]*Member, int, error)
	CountMembersByRole(ctx context.Context, hotelID string, role string) (int, error)
	// Invitation methods
	CreateInvitation(ctx context.Context, inv *Invitation) error
	GetInvitation(ctx context.Context, id string) (*Invitation, error)
	ListInvitations(ctx context.Context, hotelID string) ([]*Invitation, error)
	UpdateInvitationStatus(ctx context.Context, id string, status string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new hotel repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// ------------------------
//   Hotel methods
// ------------------------

func (r *pgxRepository) Create(ctx context.Context, h *Hotel) error {
	query, args, err := builder().Insert("public.hotels").
		Columns("name", "address", "timezone", "is_active").
		Values(h.Name, h.Address, h.Timezone, h.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create hotel query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&h.ID, &h.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Hotel, error) {
	query, args, err := builder().
		Select("id", "name", "address", "timezone", "photo_path", "created_at", "is_active").
		From("public.hotels").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get hotel query failed: %w", err)
	}

	var h Hotel
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&h.ID, &h.Name, &h.Address, &h.Timezone, &h.PhotoPath, &h.CreatedAt, &h.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get hotel failed: %w", err)
	}
	return &h, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Hotel, int, error) {
	query := builder().
		Select("id", "name", "address", "timezone", "photo_path", "created_at", "is_active",
			"count(*) OVER() as total_count").
		From("public.hotels").
		Where(squirrel.Eq{"is_active": true})

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
		return nil, 0, fmt.Errorf("build list hotels query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list hotels failed: %w", err)
	}
	defer rows.Close()

	var hotels []*Hotel
	var total int
	for rows.Next() {
		var h Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.Timezone, &h.PhotoPath,
			&h.CreatedAt, &h.IsActive, &total); err != nil {
			return nil, 0, fmt.Errorf("scan hotel failed: %w", err)
		}
		hotels = append(hotels, &h)
	}

	return hotels, total, nil
}

func (r *pgxRepository) ListForUser(ctx context.Context, userID string) ([]*Hotel, error) {
	query, args, err := builder().
		Select("h.id", "h.name", "h.address", "h.timezone", "h.photo_path", "h.created_at", "h.is_active").
		From("public.hotels h").
		Join("public.hotel_members m ON m.hotel_id = h.id").
		Where(squirrel.Eq{"m.user_id": userID, "h.is_active": true}).
		OrderBy("h.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list user hotels query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list user hotels failed: %w", err)
	}
	defer rows.Close()

	var hotels []*Hotel
	for rows.Next() {
		var h Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.Timezone, &h.PhotoPath,
			&h.CreatedAt, &h.IsActive); err != nil {
			return nil, fmt.Errorf("scan hotel failed: %w", err)
		}
		hotels = append(hotels, &h)
	}

	return hotels, nil
}

func (r *pgxRepository) Update(ctx context.Context, h *Hotel) error {
	query, args, err := builder().Update("public.hotels").
		Set("name", h.Name).
		Set("address", h.Address).
		Set("timezone", h.Timezone).
		Set("photo_path", h.PhotoPath).
		Set("is_active", h.IsActive).
		Where(squirrel.Eq{"id": h.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update hotel query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update hotel failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	// Soft delete: reservations and orders keep their history.
	query, args, err := builder().Update("public.hotels").
		Set("is_active", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete hotel query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete hotel failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ------------------------
//   Member methods
// ------------------------

func (r *pgxRepository) GetMember(ctx context.Context, hotelID string, userID string) (*Member, error) {
	query, args, err := builder().
		Select("m.user_id", "m.hotel_id", "u.email", "u.name", "m.role", "m.created_at").
		From("public.hotel_members m").
		Join("public.users u ON u.id = m.user_id").
		Where(squirrel.Eq{"m.hotel_id": hotelID, "m.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get member query failed: %w", err)
	}

	var m Member
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&m.UserID, &m.HotelID, &m.Email, &m.Name, &m.Role, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member failed: %w", err)
	}
	return &m, nil
}

func (r *pgxRepository) AddMember(ctx context.Context, hotelID string, userID string, role string) error {
	query, args, err := builder().Insert("public.hotel_members").
		Columns("hotel_id", "user_id", "role").
		Values(hotelID, userID, role).
		ToSql()
	if err != nil {
		return fmt.Errorf("build add member query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyMember
		}
		return fmt.Errorf("add member failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) RemoveMember(ctx context.Context, hotelID string, userID string) error {
	query, args, err := builder().Delete("public.hotel_members").
		Where(squirrel.Eq{"hotel_id": hotelID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove member query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("remove member failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *pgxRepository) UpdateMemberRole(ctx context.Context, hotelID string, userID string, role string) error {
	query, args, err := builder().Update("public.hotel_members").
		Set("role", role).
		Where(squirrel.Eq{"hotel_id": hotelID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update member role query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update member role failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *pgxRepository) ListMembers(ctx context.Context, hotelID string, filter MemberFilter) ([]*Member, int, error) {
	query := builder().
		Select("m.user_id", "m.hotel_id", "u.email", "u.name", "m.role", "m.created_at",
			"count(*) OVER() as total_count").
		From("public.hotel_members m").
		Join("public.users u ON u.id = m.user_id").
		Where(squirrel.Eq{"m.hotel_id": hotelID})

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	query = query.OrderBy("m.created_at ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64((filter.Page - 1) * filter.PageSize))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list members query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list members failed: %w", err)
	}
	defer rows.Close()

	var members []*Member
	var total int
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.UserID, &m.HotelID, &m.Email, &m.Name, &m.Role, &m.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan member failed: %w", err)
		}
		members = append(members, &m)
	}

	return members, total, nil
}

func (r *pgxRepository) CountMembersByRole(ctx context.Context, hotelID string, role string) (int, error) {
	query, args, err := builder().Select("count(*)").
		From("public.hotel_members").
		Where(squirrel.Eq{"hotel_id": hotelID, "role": role}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count members query failed: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count members failed: %w", err)
	}
	return count, nil
}

// ------------------------
//   Invitation methods
// ------------------------

func (r *pgxRepository) CreateInvitation(ctx context.Context, inv *Invitation) error {
	query, args, err := builder().Insert("public.hotel_invitations").
		Columns("hotel_id", "email", "role", "status", "invited_by", "expires_at").
		Values(inv.HotelID, inv.Email, inv.Role, inv.Status, inv.InvitedBy, inv.ExpiresAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create invitation query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&inv.ID, &inv.CreatedAt)
}

func (r *pgxRepository) GetInvitation(ctx context.Context, id string) (*Invitation, error) {
	query, args, err := builder().
		Select("id", "hotel_id", "email", "role", "status", "invited_by", "expires_at", "created_at").
		From("public.hotel_invitations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get invitation query failed: %w", err)
	}

	var inv Invitation
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&inv.ID, &inv.HotelID, &inv.Email, &inv.Role, &inv.Status, &inv.InvitedBy,
			&inv.ExpiresAt, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInviteNotFound
		}
		return nil, fmt.Errorf("get invitation failed: %w", err)
	}
	return &inv, nil
}

func (r *pgxRepository) ListInvitations(ctx context.Context, hotelID string) ([]*Invitation, error) {
	query, args, err := builder().
		Select("id", "hotel_id", "email", "role", "status", "invited_by", "expires_at", "created_at").
		From("public.hotel_invitations").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list invitations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invitations failed: %w", err)
	}
	defer rows.Close()

	var invitations []*Invitation
	for rows.Next() {
		var inv Invitation
		if err := rows.Scan(&inv.ID, &inv.HotelID, &inv.Email, &inv.Role, &inv.Status,
			&inv.InvitedBy, &inv.ExpiresAt, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invitation failed: %w", err)
		}
		invitations = append(invitations, &inv)
	}

	return invitations, nil
}

func (r *pgxRepository) UpdateInvitationStatus(ctx context.Context, id string, status string) error {
	query, args, err := builder().Update("public.hotel_invitations").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update invitation query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update invitation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrInviteNotFound
	}
	return nil
}
