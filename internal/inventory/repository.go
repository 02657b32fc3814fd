package inventory

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

// Repository defines methods for accessing room types and rooms.
type Repository interface {
	// Room type methods
	CreateRoomType(ctx context.Context, rt *RoomType) error
	GetRoomType(ctx context.Context, id string) (*RoomType, error)
	ListRoomTypes(ctx context.Context, filter RoomTypeFilter) ([]*RoomType, int, error)
	UpdateRoomType(ctx context.Context, rt *RoomType) error
	DeleteRoomType(ctx context.Context, id string) error
	CountRoomsOfType(ctx context.Context, roomTypeID string) (int, error)
	// Room methods
	CreateRoom(ctx context.Context, room *Room) error
	GetRoom(ctx context.Context, id string) (*Room, error)
	ListRooms(ctx context.Context, filter RoomFilter) ([]*Room, int, error)
	UpdateRoom(ctx context.Context, room *Room) error
	DeleteRoom(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new inventory repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// ------------------------
//   Room type methods
// ------------------------

func (r *pgxRepository) CreateRoomType(ctx context.Context, rt *RoomType) error {
	query, args, err := builder().Insert("public.room_types").
		Columns("hotel_id", "name", "description", "capacity", "base_rate_cents").
		Values(rt.HotelID, rt.Name, rt.Description, rt.Capacity, rt.BaseRateCents).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create room type query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&rt.ID, &rt.CreatedAt, &rt.UpdatedAt)
}

func (r *pgxRepository) GetRoomType(ctx context.Context, id string) (*RoomType, error) {
	query, args, err := builder().
		Select("id", "hotel_id", "name", "description", "capacity", "base_rate_cents",
			"created_at", "updated_at").
		From("public.room_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get room type query failed: %w", err)
	}

	var rt RoomType
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&rt.ID, &rt.HotelID, &rt.Name, &rt.Description, &rt.Capacity, &rt.BaseRateCents,
			&rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("get room type failed: %w", err)
	}
	return &rt, nil
}

func (r *pgxRepository) ListRoomTypes(ctx context.Context, filter RoomTypeFilter) ([]*RoomType, int, error) {
	query := builder().
		Select("id", "hotel_id", "name", "description", "capacity", "base_rate_cents",
			"created_at", "updated_at", "count(*) OVER() as total_count").
		From("public.room_types").
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
		return nil, 0, fmt.Errorf("build list room types query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list room types failed: %w", err)
	}
	defer rows.Close()

	var types []*RoomType
	var total int
	for rows.Next() {
		var rt RoomType
		if err := rows.Scan(&rt.ID, &rt.HotelID, &rt.Name, &rt.Description, &rt.Capacity,
			&rt.BaseRateCents, &rt.CreatedAt, &rt.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan room type failed: %w", err)
		}
		types = append(types, &rt)
	}

	return types, total, nil
}

func (r *pgxRepository) UpdateRoomType(ctx context.Context, rt *RoomType) error {
	query, args, err := builder().Update("public.room_types").
		Set("name", rt.Name).
		Set("description", rt.Description).
		Set("capacity", rt.Capacity).
		Set("base_rate_cents", rt.BaseRateCents).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": rt.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update room type query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update room type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrRoomTypeNotFound
	}
	return nil
}

func (r *pgxRepository) DeleteRoomType(ctx context.Context, id string) error {
	query, args, err := builder().Delete("public.room_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete room type query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete room type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrRoomTypeNotFound
	}
	return nil
}

func (r *pgxRepository) CountRoomsOfType(ctx context.Context, roomTypeID string) (int, error) {
	query, args, err := builder().Select("count(*)").
		From("public.rooms").
		Where(squirrel.Eq{"room_type_id": roomTypeID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count rooms query failed: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count rooms failed: %w", err)
	}
	return count, nil
}

// ------------------------
//   Room methods
// ------------------------

func (r *pgxRepository) CreateRoom(ctx context.Context, room *Room) error {
	query, args, err := builder().Insert("public.rooms").
		Columns("hotel_id", "room_type_id", "number", "floor", "status").
		Values(room.HotelID, room.RoomTypeID, room.Number, room.Floor, room.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create room query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrNumberTaken
		}
		return fmt.Errorf("create room failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetRoom(ctx context.Context, id string) (*Room, error) {
	query, args, err := builder().
		Select("r.id", "r.hotel_id", "r.room_type_id", "rt.name", "r.number", "r.floor",
			"r.status", "r.photo_path", "r.created_at", "r.updated_at").
		From("public.rooms r").
		Join("public.room_types rt ON rt.id = r.room_type_id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get room query failed: %w", err)
	}

	var room Room
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&room.ID, &room.HotelID, &room.RoomTypeID, &room.RoomTypeName, &room.Number,
			&room.Floor, &room.Status, &room.PhotoPath, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	return &room, nil
}

func (r *pgxRepository) ListRooms(ctx context.Context, filter RoomFilter) ([]*Room, int, error) {
	query := builder().
		Select("r.id", "r.hotel_id", "r.room_type_id", "rt.name", "r.number", "r.floor",
			"r.status", "r.photo_path", "r.created_at", "r.updated_at",
			"count(*) OVER() as total_count").
		From("public.rooms r").
		Join("public.room_types rt ON rt.id = r.room_type_id").
		Where(squirrel.Eq{"r.hotel_id": filter.HotelID})

	if filter.RoomTypeID != "" {
		query = query.Where(squirrel.Eq{"r.room_type_id": filter.RoomTypeID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"r.status": filter.Status})
	}
	if filter.Search != "" {
		query = query.Where(squirrel.ILike{"r.number": "%" + filter.Search + "%"})
	}

	orderBy := "r.number"
	if filter.SortBy != "" {
		orderBy = "r." + filter.SortBy
	}
	orderDir := "ASC"
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
		return nil, 0, fmt.Errorf("build list rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	var total int
	for rows.Next() {
		var room Room
		if err := rows.Scan(&room.ID, &room.HotelID, &room.RoomTypeID, &room.RoomTypeName,
			&room.Number, &room.Floor, &room.Status, &room.PhotoPath, &room.CreatedAt,
			&room.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan room failed: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, total, nil
}

func (r *pgxRepository) UpdateRoom(ctx context.Context, room *Room) error {
	query, args, err := builder().Update("public.rooms").
		Set("room_type_id", room.RoomTypeID).
		Set("number", room.Number).
		Set("floor", room.Floor).
		Set("status", room.Status).
		Set("photo_path", room.PhotoPath).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrNumberTaken
		}
		return fmt.Errorf("update room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (r *pgxRepository) DeleteRoom(ctx context.Context, id string) error {
	query, args, err := builder().Delete("public.rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrRoomNotFound
	}
	return nil
}
