package services

import (
	"context"

	"github.com/prabal/classhub/internal/app/models"
)

// UserStore is the user persistence surface the services need.
// Implemented by repositories.UserRepository.
type UserStore interface {
	Create(ctx context.Context, username string) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	AddRoom(ctx context.Context, username, code string) error
}

// RoomStore is the room persistence surface.
// Implemented by repositories.RoomRepository.
type RoomStore interface {
	Create(ctx context.Context, room *models.Room) error
	FindByCode(ctx context.Context, code string) (*models.Room, error)
	FindByCodes(ctx context.Context, codes []string) ([]*models.Room, error)
}

// PostStore is the post ledger surface.
// Implemented by repositories.PostRepository.
type PostStore interface {
	Insert(ctx context.Context, post *models.Post) error
	ListByRoom(ctx context.Context, code string) ([]*models.Post, error)
}

// AnnouncementStore is the announcement ledger surface.
// Implemented by repositories.AnnouncementRepository.
type AnnouncementStore interface {
	Insert(ctx context.Context, announcement *models.Announcement) error
	ListByRoom(ctx context.Context, code string) ([]*models.Announcement, error)
}

// RoomAuthorizer gates room content operations on membership and join
// operations on principal identity.
// Implemented by auth.AuthorizationService.
type RoomAuthorizer interface {
	AuthorizeRoomAccess(ctx context.Context, principal, code string) error
	AuthorizeSelf(principal, username string) error
}
