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
)

// UserRepository handles database operations for user records and their
// room memberships.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user record with an empty room set. Creating a user
// that already exists is a no-op; existing memberships are never reset.
func (r *UserRepository) Create(ctx context.Context, username string) error {
	query := squirrel.Insert("users").
		Columns("username").
		Values(username).
		Suffix("ON CONFLICT (username) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// FindByUsername retrieves a user record with its membership set. Returns
// apperrors.ErrUserNotFound when no record exists.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := squirrel.Select("username", "rooms").
		From("users").
		Where("username = ?", username).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var user models.User
	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.Username, &user.Rooms)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	if user.Rooms == nil {
		user.Rooms = []string{}
	}

	return &user, nil
}

// AddRoom appends code to the user's membership set if not already
// present. The append is a single atomic statement, so concurrent joins of
// the same room by the same user cannot duplicate the entry. Joining a
// room the user already belongs to is a no-op.
func (r *UserRepository) AddRoom(ctx context.Context, username, code string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET rooms = array_append(rooms, $2) WHERE username = $1 AND NOT ($2 = ANY(rooms))`,
		username, code)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if tag.RowsAffected() == 0 {
		// Either the user is already a member or no such user exists.
		if _, err := r.FindByUsername(ctx, username); err != nil {
			return err
		}
	}

	return nil
}

// IsMember reports whether code is in the user's membership set. An
// unknown user is simply not a member.
func (r *UserRepository) IsMember(ctx context.Context, username, code string) (bool, error) {
	query := squirrel.Select("1").
		From("users").
		Where("username = ? AND ? = ANY(rooms)", username, code).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var exists int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return true, nil
}
