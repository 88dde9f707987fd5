package services_test

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"github.com/prabal/classhub/internal/app/models"
)

// Testify mocks for the store and authorizer interfaces the services
// depend on.

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Create(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *mockUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) AddRoom(ctx context.Context, username, code string) error {
	args := m.Called(ctx, username, code)
	return args.Error(0)
}

type mockRoomStore struct {
	mock.Mock
}

func (m *mockRoomStore) Create(ctx context.Context, room *models.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *mockRoomStore) FindByCode(ctx context.Context, code string) (*models.Room, error) {
	args := m.Called(ctx, code)
	if room := args.Get(0); room != nil {
		return room.(*models.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomStore) FindByCodes(ctx context.Context, codes []string) ([]*models.Room, error) {
	args := m.Called(ctx, codes)
	if rooms := args.Get(0); rooms != nil {
		return rooms.([]*models.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPostStore struct {
	mock.Mock
}

func (m *mockPostStore) Insert(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostStore) ListByRoom(ctx context.Context, code string) ([]*models.Post, error) {
	args := m.Called(ctx, code)
	if posts := args.Get(0); posts != nil {
		return posts.([]*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAnnouncementStore struct {
	mock.Mock
}

func (m *mockAnnouncementStore) Insert(ctx context.Context, announcement *models.Announcement) error {
	args := m.Called(ctx, announcement)
	return args.Error(0)
}

func (m *mockAnnouncementStore) ListByRoom(ctx context.Context, code string) ([]*models.Announcement, error) {
	args := m.Called(ctx, code)
	if announcements := args.Get(0); announcements != nil {
		return announcements.([]*models.Announcement), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAuthorizer struct {
	mock.Mock
}

func (m *mockAuthorizer) AuthorizeRoomAccess(ctx context.Context, principal, code string) error {
	args := m.Called(ctx, principal, code)
	return args.Error(0)
}

func (m *mockAuthorizer) AuthorizeSelf(principal, username string) error {
	args := m.Called(principal, username)
	return args.Error(0)
}

type mockFileStorage struct {
	mock.Mock
}

func (m *mockFileStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	args := m.Called(fileHeader)
	return args.String(0), args.Error(1)
}
