package services_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prabal/classhub/internal/app/models"
	"github.com/prabal/classhub/internal/app/models/dto"
	"github.com/prabal/classhub/internal/app/services"
	"github.com/prabal/classhub/internal/pkg/apperrors"
)

func newContentService(posts *mockPostStore, announcements *mockAnnouncementStore, storage *mockFileStorage, authz *mockAuthorizer) services.ContentService {
	return services.NewContentService(posts, announcements, storage, authz, zerolog.Nop())
}

func TestWritePost_NotAMember(t *testing.T) {
	posts := new(mockPostStore)
	storage := new(mockFileStorage)
	authz := new(mockAuthorizer)
	svc := newContentService(posts, new(mockAnnouncementStore), storage, authz)
	ctx := context.Background()

	authz.On("AuthorizeRoomAccess", ctx, "alice@example.com", "room-1").
		Return(apperrors.ErrForbidden).Once()

	err := svc.WritePost(ctx, "alice@example.com", "room-1", "hi", nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	posts.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	storage.AssertNotCalled(t, "SaveFile", mock.Anything)
}

func TestWritePost_WithoutAttachment(t *testing.T) {
	posts := new(mockPostStore)
	storage := new(mockFileStorage)
	authz := new(mockAuthorizer)
	svc := newContentService(posts, new(mockAnnouncementStore), storage, authz)
	ctx := context.Background()

	authz.On("AuthorizeRoomAccess", ctx, "alice@example.com", "room-1").Return(nil).Once()
	posts.On("Insert", ctx, mock.MatchedBy(func(post *models.Post) bool {
		assert.Equal(t, "room-1", post.RoomCode)
		assert.Equal(t, "hi", post.Content)
		assert.Equal(t, "alice@example.com", post.Author)
		assert.Nil(t, post.FileURL)
		return true
	})).Return(nil).Once()

	err := svc.WritePost(ctx, "alice@example.com", "room-1", "hi", nil)

	assert.NoError(t, err)
	posts.AssertExpectations(t)
	storage.AssertNotCalled(t, "SaveFile", mock.Anything)
}

func TestWritePost_WithAttachment(t *testing.T) {
	posts := new(mockPostStore)
	storage := new(mockFileStorage)
	authz := new(mockAuthorizer)
	svc := newContentService(posts, new(mockAnnouncementStore), storage, authz)
	ctx := context.Background()

	attachment := &multipart.FileHeader{Filename: "notes.pdf"}

	authz.On("AuthorizeRoomAccess", ctx, "alice@example.com", "room-1").Return(nil).Once()
	storage.On("SaveFile", attachment).Return("http://localhost:61060/uploads/123_notes.pdf", nil).Once()
	posts.On("Insert", ctx, mock.MatchedBy(func(post *models.Post) bool {
		require.NotNil(t, post.FileURL)
		assert.Equal(t, "http://localhost:61060/uploads/123_notes.pdf", *post.FileURL)
		return true
	})).Return(nil).Once()

	err := svc.WritePost(ctx, "alice@example.com", "room-1", "see attachment", attachment)

	assert.NoError(t, err)
	posts.AssertExpectations(t)
	storage.AssertExpectations(t)
}

// When the attachment bind fails no ledger entry may be written; a post
// must never reference a file that was not durably stored.
func TestWritePost_AttachmentFailureWritesNothing(t *testing.T) {
	posts := new(mockPostStore)
	storage := new(mockFileStorage)
	authz := new(mockAuthorizer)
	svc := newContentService(posts, new(mockAnnouncementStore), storage, authz)
	ctx := context.Background()

	attachment := &multipart.FileHeader{Filename: "notes.pdf"}

	authz.On("AuthorizeRoomAccess", ctx, "alice@example.com", "room-1").Return(nil).Once()
	storage.On("SaveFile", attachment).Return("", errors.New("disk full")).Once()

	err := svc.WritePost(ctx, "alice@example.com", "room-1", "see attachment", attachment)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAttachmentWrite))
	posts.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestListPosts_NewestFirst(t *testing.T) {
	posts := new(mockPostStore)
	authz := new(mockAuthorizer)
	svc := newContentService(posts, new(mockAnnouncementStore), new(mockFileStorage), authz)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	authz.On("AuthorizeRoomAccess", ctx, "alice@example.com", "room-1").Return(nil).Once()
	posts.On("ListByRoom", ctx, "room-1").Return([]*models.Post{
		{ID: 3, Content: "third", Author: "alice@example.com", Timestamp: base.Add(2 * time.Minute)},
		{ID: 2, Content: "second", Author: "bob@example.com", Timestamp: base.Add(time.Minute)},
		{ID: 1, Content: "first", Author: "alice@example.com", Timestamp: base},
	}, nil).Once()

	result, err := svc.ListPosts(ctx, "alice@example.com", "room-1")

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "third", result[0].Content)
	assert.Equal(t, "second", result[1].Content)
	assert.Equal(t, "first", result[2].Content)
	assert.True(t, result[0].Timestamp.After(result[1].Timestamp))
}

func TestListPosts_NotAMember(t *testing.T) {
	posts := new(mockPostStore)
	authz := new(mockAuthorizer)
	svc := newContentService(posts, new(mockAnnouncementStore), new(mockFileStorage), authz)
	ctx := context.Background()

	authz.On("AuthorizeRoomAccess", ctx, "bob@example.com", "room-1").
		Return(apperrors.ErrForbidden).Once()

	_, err := svc.ListPosts(ctx, "bob@example.com", "room-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	posts.AssertNotCalled(t, "ListByRoom", mock.Anything, mock.Anything)
}

func TestWriteAnnouncement_Success(t *testing.T) {
	announcements := new(mockAnnouncementStore)
	authz := new(mockAuthorizer)
	svc := newContentService(new(mockPostStore), announcements, new(mockFileStorage), authz)
	ctx := context.Background()

	authz.On("AuthorizeRoomAccess", ctx, "alice@example.com", "room-1").Return(nil).Once()
	announcements.On("Insert", ctx, mock.MatchedBy(func(a *models.Announcement) bool {
		assert.Equal(t, "Exam", a.Title)
		assert.Equal(t, "alice@example.com", a.Author)
		return true
	})).Return(nil).Once()

	err := svc.WriteAnnouncement(ctx, "alice@example.com", "room-1", &dto.CreateAnnouncementRequest{
		Title:       "Exam",
		Description: "Friday, room 204",
	})

	assert.NoError(t, err)
	announcements.AssertExpectations(t)
}

// Announcement reads are gated on membership the same way post reads are.
func TestListAnnouncements_NotAMember(t *testing.T) {
	announcements := new(mockAnnouncementStore)
	authz := new(mockAuthorizer)
	svc := newContentService(new(mockPostStore), announcements, new(mockFileStorage), authz)
	ctx := context.Background()

	authz.On("AuthorizeRoomAccess", ctx, "bob@example.com", "room-1").
		Return(apperrors.ErrForbidden).Once()

	_, err := svc.ListAnnouncements(ctx, "bob@example.com", "room-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	announcements.AssertNotCalled(t, "ListByRoom", mock.Anything, mock.Anything)
}
