package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prabal/classhub/internal/app/models"
)

// PostRepository handles database operations for the per-room post ledger.
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository.
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

// Insert appends a post to the room's ledger. The timestamp is assigned by
// the database, never by the client.
func (r *PostRepository) Insert(ctx context.Context, post *models.Post) error {
	query := squirrel.Insert("posts").
		Columns("room_code", "content", "file_url", "author").
		Values(post.RoomCode, post.Content, post.FileURL, post.Author).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&post.ID, &post.Timestamp); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// ListByRoom retrieves all posts for a room ordered by timestamp
// descending. Entries with equal timestamps fall back to id order so the
// result is stable.
func (r *PostRepository) ListByRoom(ctx context.Context, code string) ([]*models.Post, error) {
	query := squirrel.Select("id", "room_code", "content", "file_url", "author", "created_at").
		From("posts").
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

	posts := []*models.Post{}
	for rows.Next() {
		var post models.Post
		err := rows.Scan(
			&post.ID,
			&post.RoomCode,
			&post.Content,
			&post.FileURL,
			&post.Author,
			&post.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		posts = append(posts, &post)
	}

	return posts, nil
}
