package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prabal/classhub/internal/app/models"
)

// AnnouncementRepository handles database operations for the per-room
// announcement ledger, independent from the post ledger.
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new AnnouncementRepository.
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Insert appends an announcement to the room's ledger with a
// server-assigned timestamp.
func (r *AnnouncementRepository) Insert(ctx context.Context, announcement *models.Announcement) error {
	query := squirrel.Insert("announcements").
		Columns("room_code", "title", "description", "author").
		Values(announcement.RoomCode, announcement.Title, announcement.Description, announcement.Author).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&announcement.ID, &announcement.Timestamp); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// ListByRoom retrieves all announcements for a room ordered by timestamp
// descending, id descending on ties.
func (r *AnnouncementRepository) ListByRoom(ctx context.Context, code string) ([]*models.Announcement, error) {
	query := squirrel.Select("id", "room_code", "title", "description", "author", "created_at").
		From("announcements").
		Where("room_code = ?", code).
		OrderBy("created_at DESC", "id DESC").
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

	announcements := []*models.Announcement{}
	for rows.Next() {
		var announcement models.Announcement
		err := rows.Scan(
			&announcement.ID,
			&announcement.RoomCode,
			&announcement.Title,
			&announcement.Description,
			&announcement.Author,
			&announcement.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		announcements = append(announcements, &announcement)
	}

	return announcements, nil
}
