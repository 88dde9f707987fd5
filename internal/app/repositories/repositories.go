package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles all repository instances.
type Repositories struct {
	UserRepository         *UserRepository
	RoomRepository         *RoomRepository
	PostRepository         *PostRepository
	AnnouncementRepository *AnnouncementRepository
}

// NewRepositories creates all repositories backed by the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		RoomRepository:         NewRoomRepository(db),
		PostRepository:         NewPostRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
	}
}
