package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/prabal/classhub/internal/app/models"
	"github.com/prabal/classhub/internal/app/models/dto"
	"github.com/prabal/classhub/internal/pkg/apperrors"
	"github.com/prabal/classhub/internal/pkg/filestorage"
)

// ContentService defines the interface for room ledger operations. Every
// operation is gated on the principal's membership in the room.
type ContentService interface {
	WritePost(ctx context.Context, principal, code, content string, attachment *multipart.FileHeader) error
	ListPosts(ctx context.Context, principal, code string) ([]dto.PostResponse, error)
	WriteAnnouncement(ctx context.Context, principal, code string, req *dto.CreateAnnouncementRequest) error
	ListAnnouncements(ctx context.Context, principal, code string) ([]dto.AnnouncementResponse, error)
}

// contentServiceImpl implements ContentService.
type contentServiceImpl struct {
	postStore         PostStore
	announcementStore AnnouncementStore
	fileStorage       filestorage.Storage
	authz             RoomAuthorizer
	logger            zerolog.Logger
}

// NewContentService creates a new ContentService.
func NewContentService(
	postStore PostStore,
	announcementStore AnnouncementStore,
	fileStorage filestorage.Storage,
	authz RoomAuthorizer,
	logger zerolog.Logger,
) ContentService {
	return &contentServiceImpl{
		postStore:         postStore,
		announcementStore: announcementStore,
		fileStorage:       fileStorage,
		authz:             authz,
		logger:            logger,
	}
}

// WritePost appends a post to the room's ledger. When an attachment is
// present it is bound to a URL first; the ledger entry is only written
// after the bind succeeds, so a failed upload never leaves post metadata
// pointing at a file that was never stored. The entry's author is always
// the verified principal and its timestamp is assigned by the store.
func (s *contentServiceImpl) WritePost(ctx context.Context, principal, code, content string, attachment *multipart.FileHeader) error {
	if err := s.authz.AuthorizeRoomAccess(ctx, principal, code); err != nil {
		return err
	}

	var fileURL *string
	if attachment != nil {
		url, err := s.fileStorage.SaveFile(attachment)
		if err != nil {
			s.logger.Error().Err(err).
				Str("principal", principal).
				Str("roomCode", code).
				Str("filename", attachment.Filename).
				Msg("Attachment bind failed, post not written")
			return &apperrors.CustomError{Err: apperrors.ErrAttachmentWrite, Message: "failed to store attachment"}
		}
		fileURL = &url
	}

	post := &models.Post{
		RoomCode: code,
		Content:  content,
		FileURL:  fileURL,
		Author:   principal,
	}

	if err := s.postStore.Insert(ctx, post); err != nil {
		s.logger.Error().Err(err).
			Str("principal", principal).
			Str("roomCode", code).
			Msg("Failed to write post")
		return apperrors.NewStoreError(err)
	}

	return nil
}

// ListPosts returns the room's posts newest first.
func (s *contentServiceImpl) ListPosts(ctx context.Context, principal, code string) ([]dto.PostResponse, error) {
	if err := s.authz.AuthorizeRoomAccess(ctx, principal, code); err != nil {
		return nil, err
	}

	posts, err := s.postStore.ListByRoom(ctx, code)
	if err != nil {
		s.logger.Error().Err(err).
			Str("principal", principal).
			Str("roomCode", code).
			Msg("Failed to list posts")
		return nil, apperrors.NewStoreError(err)
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, dto.PostResponse{
			ID:        post.ID,
			Content:   post.Content,
			FileURL:   post.FileURL,
			Author:    post.Author,
			Timestamp: post.Timestamp,
		})
	}

	return responses, nil
}

// WriteAnnouncement appends an announcement to the room's announcement
// ledger, gated identically to posts.
func (s *contentServiceImpl) WriteAnnouncement(ctx context.Context, principal, code string, req *dto.CreateAnnouncementRequest) error {
	if err := s.authz.AuthorizeRoomAccess(ctx, principal, code); err != nil {
		return err
	}

	announcement := &models.Announcement{
		RoomCode:    code,
		Title:       req.Title,
		Description: req.Description,
		Author:      principal,
	}

	if err := s.announcementStore.Insert(ctx, announcement); err != nil {
		s.logger.Error().Err(err).
			Str("principal", principal).
			Str("roomCode", code).
			Msg("Failed to write announcement")
		return apperrors.NewStoreError(err)
	}

	return nil
}

// ListAnnouncements returns the room's announcements newest first. Reads
// are membership-gated the same way post reads are.
func (s *contentServiceImpl) ListAnnouncements(ctx context.Context, principal, code string) ([]dto.AnnouncementResponse, error) {
	if err := s.authz.AuthorizeRoomAccess(ctx, principal, code); err != nil {
		return nil, err
	}

	announcements, err := s.announcementStore.ListByRoom(ctx, code)
	if err != nil {
		s.logger.Error().Err(err).
			Str("principal", principal).
			Str("roomCode", code).
			Msg("Failed to list announcements")
		return nil, apperrors.NewStoreError(err)
	}

	responses := make([]dto.AnnouncementResponse, 0, len(announcements))
	for _, announcement := range announcements {
		responses = append(responses, dto.AnnouncementResponse{
			ID:          announcement.ID,
			Title:       announcement.Title,
			Description: announcement.Description,
			Author:      announcement.Author,
			Timestamp:   announcement.Timestamp,
		})
	}

	return responses, nil
}
