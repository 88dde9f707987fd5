package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/prabal/classhub/internal/pkg/apperrors"
)

// IdentityVerifier resolves a bearer credential to a verified principal.
// The principal is an email-like identity string and is never taken from
// the request body.
type IdentityVerifier interface {
	Verify(tokenString string) (string, error)
}

// TokenConfig defines token verification settings.
type TokenConfig struct {
	SecretKey string
	Issuer    string
}

// TokenService verifies HS256-signed identity tokens. It also issues
// tokens, which is used by tests and local tooling; in production tokens
// come from the identity provider that shares the secret.
type TokenService struct {
	config TokenConfig
}

// NewTokenService creates a new TokenService.
func NewTokenService(config TokenConfig) *TokenService {
	return &TokenService{config: config}
}

// Claims defines the identity token content.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verify validates tokenString and returns the principal it asserts.
func (s *TokenService) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", apperrors.ErrTokenInvalid
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperrors.ErrTokenExpired
		}
		return "", apperrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return "", apperrors.ErrTokenInvalid
	}

	return claims.Email, nil
}

// IssueToken creates a signed identity token for the given principal.
func (s *TokenService) IssueToken(email string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.config.Issuer,
			Subject:   email,
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ExtractBearerToken extracts the token from an Authorization header value.
// The "Bearer " prefix is required.
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", apperrors.ErrInvalidFormat
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", apperrors.ErrInvalidFormat
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", apperrors.ErrInvalidFormat
	}

	return token, nil
}
