package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabal/classhub/internal/pkg/apperrors"
	"github.com/prabal/classhub/internal/pkg/auth"
)

func newTokenService(secret string) *auth.TokenService {
	return auth.NewTokenService(auth.TokenConfig{
		SecretKey: secret,
		Issuer:    "classhub.test",
	})
}

func TestVerify_RoundTrip(t *testing.T) {
	svc := newTokenService("test-secret")

	token, err := svc.IssueToken("alice@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", principal)
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc := newTokenService("test-secret")

	token, err := svc.IssueToken("alice@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTokenExpired))
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := newTokenService("secret-a")
	verifier := newTokenService("secret-b")

	token, err := issuer.IssueToken("alice@example.com", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))
}

func TestVerify_EmptyAndGarbageTokens(t *testing.T) {
	svc := newTokenService("test-secret")

	_, err := svc.Verify("")
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))

	_, err = svc.Verify("not.a.token")
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))
}

func TestExtractBearerToken(t *testing.T) {
	token, err := auth.ExtractBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	cases := []string{
		"",
		"abc123",
		"bearer abc123",
		"Bearer ",
		"Basic abc123",
	}
	for _, header := range cases {
		_, err := auth.ExtractBearerToken(header)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidFormat), "header %q", header)
	}
}
