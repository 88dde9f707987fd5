package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/prabal/classhub/internal/app/models"
	"github.com/prabal/classhub/internal/app/models/dto"
	"github.com/prabal/classhub/internal/pkg/apperrors"
)

// RoomService defines the interface for room registry operations.
type RoomService interface {
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.CreateRoomResponse, error)
	GetRoom(ctx context.Context, code string) (*dto.RoomResponse, error)
}

// roomServiceImpl implements RoomService.
type roomServiceImpl struct {
	roomStore RoomStore
	logger    zerolog.Logger
}

// NewRoomService creates a new RoomService.
func NewRoomService(roomStore RoomStore, logger zerolog.Logger) RoomService {
	return &roomServiceImpl{roomStore: roomStore, logger: logger}
}

// CreateRoom registers a room under a freshly generated code and returns
// the code. Rooms are immutable after creation.
func (s *roomServiceImpl) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.CreateRoomResponse, error) {
	room := &models.Room{
		Code:        uuid.New().String(),
		Title:       req.Title,
		Teacher:     req.Teacher,
		Description: req.Description,
	}

	if err := s.roomStore.Create(ctx, room); err != nil {
		s.logger.Error().Err(err).Str("title", req.Title).Msg("Failed to create room")
		return nil, apperrors.NewStoreError(err)
	}

	s.logger.Info().Str("roomCode", room.Code).Str("teacher", room.Teacher).Msg("Room created")
	return &dto.CreateRoomResponse{Code: room.Code}, nil
}

// GetRoom returns a room's public metadata.
func (s *roomServiceImpl) GetRoom(ctx context.Context, code string) (*dto.RoomResponse, error) {
	room, err := s.roomStore.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoomNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("roomCode", code).Msg("Failed to load room")
		return nil, apperrors.NewStoreError(err)
	}

	return &dto.RoomResponse{
		Title:       room.Title,
		Teacher:     room.Teacher,
		Description: room.Description,
	}, nil
}
