package auth

import (
	"context"

	"github.com/prabal/classhub/internal/pkg/apperrors"
	"github.com/prabal/classhub/internal/pkg/logger"
)

// MembershipStore is the membership lookup the authorization service needs.
// Implemented by repositories.UserRepository.
type MembershipStore interface {
	IsMember(ctx context.Context, username, code string) (bool, error)
}

// AuthorizationService decides whether a verified principal may operate on
// a room's content. Authentication happens earlier, in the middleware; by
// the time this service runs the principal is already resolved, so a
// caller can never see a membership decision without having authenticated
// first.
type AuthorizationService struct {
	memberships MembershipStore
}

// NewAuthorizationService creates a new AuthorizationService.
func NewAuthorizationService(memberships MembershipStore) *AuthorizationService {
	return &AuthorizationService{memberships: memberships}
}

// AuthorizeRoomAccess permits the operation iff the room code is in the
// principal's membership set at the time of the call. A missing user
// record, a nonexistent room, and a plain non-membership all produce the
// same forbidden error so callers cannot probe which rooms exist.
func (s *AuthorizationService) AuthorizeRoomAccess(ctx context.Context, principal, code string) error {
	member, err := s.memberships.IsMember(ctx, principal, code)
	if err != nil {
		logger.Error().Err(err).
			Str("principal", principal).
			Str("roomCode", code).
			Msg("Membership lookup failed")
		return apperrors.NewStoreError(err)
	}

	if !member {
		return apperrors.ErrForbidden
	}

	return nil
}

// AuthorizeSelf permits the operation iff the username supplied in the
// request matches the verified principal. A caller may only act on their
// own account, even when the target username exists.
func (s *AuthorizationService) AuthorizeSelf(principal, username string) error {
	if principal != username {
		return apperrors.ErrForbidden
	}
	return nil
}
