package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/prabal/classhub/internal/app/models/dto"
	"github.com/prabal/classhub/internal/pkg/apperrors"
)

// UserService defines the interface for user and membership operations.
type UserService interface {
	AddUser(ctx context.Context, username string) error
	JoinRoom(ctx context.Context, principal, username, code string) error
	ListRoomsOf(ctx context.Context, username string) ([]dto.RoomResponse, error)
}

// userServiceImpl implements UserService.
type userServiceImpl struct {
	userStore UserStore
	roomStore RoomStore
	authz     RoomAuthorizer
	logger    zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userStore UserStore, roomStore RoomStore, authz RoomAuthorizer, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userStore: userStore,
		roomStore: roomStore,
		authz:     authz,
		logger:    logger,
	}
}

// AddUser creates a user record with an empty membership set. Adding a
// username that already exists is a no-op.
func (s *userServiceImpl) AddUser(ctx context.Context, username string) error {
	if err := s.userStore.Create(ctx, username); err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("Failed to create user")
		return apperrors.NewStoreError(err)
	}

	return nil
}

// JoinRoom adds the room code to the user's membership set. The caller may
// only join rooms on their own behalf, so the supplied username must match
// the verified principal. The user need not already be a member of
// anything; duplicate joins are no-ops.
func (s *userServiceImpl) JoinRoom(ctx context.Context, principal, username, code string) error {
	if err := s.authz.AuthorizeSelf(principal, username); err != nil {
		return err
	}

	if err := s.userStore.AddRoom(ctx, username, code); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// Joining with a username that has no record mirrors a failed
			// document update in the membership store.
			s.logger.Warn().Str("username", username).Str("roomCode", code).Msg("Join for unknown user")
			return apperrors.NewStoreError(err)
		}
		s.logger.Error().Err(err).Str("username", username).Str("roomCode", code).Msg("Failed to join room")
		return apperrors.NewStoreError(err)
	}

	return nil
}

// ListRoomsOf resolves the user's membership set to full room metadata.
// Codes that no longer resolve to a room are dropped silently. An unknown
// user surfaces as not found.
func (s *userServiceImpl) ListRoomsOf(ctx context.Context, username string) ([]dto.RoomResponse, error) {
	user, err := s.userStore.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("username", username).Msg("Failed to load user")
		return nil, apperrors.NewStoreError(err)
	}

	if len(user.Rooms) == 0 {
		return []dto.RoomResponse{}, nil
	}

	rooms, err := s.roomStore.FindByCodes(ctx, user.Rooms)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("Failed to resolve rooms")
		return nil, apperrors.NewStoreError(err)
	}

	responses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		responses = append(responses, dto.RoomResponse{
			Code:        room.Code,
			Title:       room.Title,
			Teacher:     room.Teacher,
			Description: room.Description,
		})
	}

	return responses, nil
}
