package services_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabal/classhub/internal/app/auth"
	"github.com/prabal/classhub/internal/app/models"
	"github.com/prabal/classhub/internal/app/models/dto"
	"github.com/prabal/classhub/internal/app/services"
	"github.com/prabal/classhub/internal/pkg/apperrors"
)

// memStore is an in-memory implementation of the store interfaces, used to
// exercise the services against the real authorization flow instead of
// per-call mocks.
type memStore struct {
	mu     sync.Mutex
	users  map[string][]string
	rooms  map[string]*models.Room
	posts  []*models.Post
	nextID int64
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[string][]string),
		rooms: make(map[string]*models.Room),
	}
}

func (s *memStore) Create(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; !ok {
		s.users[username] = []string{}
	}
	return nil
}

func (s *memStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms, ok := s.users[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &models.User{Username: username, Rooms: rooms}, nil
}

func (s *memStore) AddRoom(ctx context.Context, username, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms, ok := s.users[username]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	for _, existing := range rooms {
		if existing == code {
			return nil
		}
	}
	s.users[username] = append(rooms, code)
	return nil
}

func (s *memStore) IsMember(ctx context.Context, username, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users[username] {
		if existing == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) CreateRoom(ctx context.Context, room *models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room.CreatedAt = time.Now()
	s.rooms[room.Code] = room
	return nil
}

func (s *memStore) FindByCode(ctx context.Context, code string) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[code]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	return room, nil
}

func (s *memStore) FindByCodes(ctx context.Context, codes []string) ([]*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*models.Room, 0, len(codes))
	for _, code := range codes {
		if room, ok := s.rooms[code]; ok {
			result = append(result, room)
		}
	}
	return result, nil
}

func (s *memStore) Insert(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	post.ID = s.nextID
	post.Timestamp = time.Now()
	s.posts = append(s.posts, post)
	return nil
}

func (s *memStore) ListByRoom(ctx context.Context, code string) ([]*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*models.Post, 0)
	for _, post := range s.posts {
		if post.RoomCode == code {
			result = append(result, post)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// roomStoreAdapter maps the memStore's room methods onto services.RoomStore,
// whose Create collides with the user Create.
type roomStoreAdapter struct{ *memStore }

func (a roomStoreAdapter) Create(ctx context.Context, room *models.Room) error {
	return a.CreateRoom(ctx, room)
}

func createRoomReq(title, teacher, description string) *dto.CreateRoomRequest {
	return &dto.CreateRoomRequest{Title: title, Teacher: teacher, Description: description}
}

// Walks the full membership flow: a fresh user cannot write into a room
// until they join it, and once joined their posts come back attributed to
// them.
func TestMembershipFlow(t *testing.T) {
	store := newMemStore()
	authz := auth.NewAuthorizationService(store)
	logger := zerolog.Nop()

	userSvc := services.NewUserService(store, roomStoreAdapter{store}, authz, logger)
	roomSvc := services.NewRoomService(roomStoreAdapter{store}, logger)
	contentSvc := services.NewContentService(store, new(mockAnnouncementStore), new(mockFileStorage), authz, logger)

	ctx := context.Background()
	const alice = "alice@example.com"

	require.NoError(t, userSvc.AddUser(ctx, alice))

	created, err := roomSvc.CreateRoom(ctx, createRoomReq("Biology", "Dr. Chen", "Intro course"))
	require.NoError(t, err)
	require.NotEmpty(t, created.Code)

	// Not yet a member: the write is rejected and the ledger stays empty.
	err = contentSvc.WritePost(ctx, alice, created.Code, "hi", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))

	_, err = contentSvc.ListPosts(ctx, alice, created.Code)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))

	require.NoError(t, userSvc.JoinRoom(ctx, alice, alice, created.Code))

	// Joining twice is a no-op.
	require.NoError(t, userSvc.JoinRoom(ctx, alice, alice, created.Code))

	require.NoError(t, contentSvc.WritePost(ctx, alice, created.Code, "hi", nil))

	posts, err := contentSvc.ListPosts(ctx, alice, created.Code)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "hi", posts[0].Content)
	assert.Equal(t, alice, posts[0].Author)
	assert.Nil(t, posts[0].FileURL)

	rooms, err := userSvc.ListRoomsOf(ctx, alice)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, created.Code, rooms[0].Code)
	assert.Equal(t, "Biology", rooms[0].Title)

	// Another registered user still cannot read the room.
	const bob = "bob@example.com"
	require.NoError(t, userSvc.AddUser(ctx, bob))
	_, err = contentSvc.ListPosts(ctx, bob, created.Code)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
}

func TestMembershipFlow_PostsOrderedNewestFirst(t *testing.T) {
	store := newMemStore()
	authz := auth.NewAuthorizationService(store)
	logger := zerolog.Nop()

	userSvc := services.NewUserService(store, roomStoreAdapter{store}, authz, logger)
	roomSvc := services.NewRoomService(roomStoreAdapter{store}, logger)
	contentSvc := services.NewContentService(store, new(mockAnnouncementStore), new(mockFileStorage), authz, logger)

	ctx := context.Background()
	const alice = "alice@example.com"

	require.NoError(t, userSvc.AddUser(ctx, alice))
	created, err := roomSvc.CreateRoom(ctx, createRoomReq("History", "Mr. Okafor", "Modern history"))
	require.NoError(t, err)
	require.NoError(t, userSvc.JoinRoom(ctx, alice, alice, created.Code))

	for _, content := range []string{"first", "second", "third"} {
		require.NoError(t, contentSvc.WritePost(ctx, alice, created.Code, content, nil))
	}

	posts, err := contentSvc.ListPosts(ctx, alice, created.Code)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "third", posts[0].Content)
	assert.Equal(t, "second", posts[1].Content)
	assert.Equal(t, "first", posts[2].Content)
}
