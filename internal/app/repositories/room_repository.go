package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prabal/classhub/internal/app/models"
	"github.com/prabal/classhub/internal/pkg/apperrors"
	"github.com/prabal/classhub/internal/pkg/dberrors"
)

// RoomRepository handles database operations for room metadata.
type RoomRepository struct {
	db *pgxpool.Pool
}

// NewRoomRepository creates a new RoomRepository.
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create inserts a room and returns its creation time.
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	query := squirrel.Insert("rooms").
		Columns("code", "title", "teacher", "description").
		Values(room.Code, room.Title, room.Teacher, room.Description).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&room.CreatedAt); err != nil {
		if dberrors.IsUniqueViolation(err) {
			// Generated codes are random; a collision means the caller
			// should retry with a fresh code.
			return fmt.Errorf("room code already taken: %w", err)
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// FindByCode retrieves a room by its code. Returns
// apperrors.ErrRoomNotFound when no such room exists.
func (r *RoomRepository) FindByCode(ctx context.Context, code string) (*models.Room, error) {
	query := squirrel.Select("code", "title", "teacher", "description", "created_at").
		From("rooms").
		Where("code = ?", code).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var room models.Room
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&room.Code,
		&room.Title,
		&room.Teacher,
		&room.Description,
		&room.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &room, nil
}

// FindByCodes retrieves the rooms for the given codes. Codes that do not
// resolve to a room are dropped, not errored.
func (r *RoomRepository) FindByCodes(ctx context.Context, codes []string) ([]*models.Room, error) {
	if len(codes) == 0 {
		return []*models.Room{}, nil
	}

	query := squirrel.Select("code", "title", "teacher", "description", "created_at").
		From("rooms").
		Where(squirrel.Eq{"code": codes}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	rooms := []*models.Room{}
	for rows.Next() {
		var room models.Room
		err := rows.Scan(
			&room.Code,
			&room.Title,
			&room.Teacher,
			&room.Description,
			&room.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}
