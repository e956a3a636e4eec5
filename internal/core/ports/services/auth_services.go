package services

import (
	"context"

	"github.com/khatapana/khata_backend/internal/core/domain"
)

// TokenPair is the pair of credentials handed to the client on login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthSvcFacade owns the session lifecycle: login, refresh validation,
// access renewal and logout.
type AuthSvcFacade interface {
	// Login verifies the credentials, issues a fresh token pair and
	// overwrites the user's stored refresh token, invalidating any prior
	// session for that account. Failures are reported as
	// apperrors.ErrInvalidCredentials without distinguishing the cause.
	Login(ctx context.Context, username, password string) (*domain.User, TokenPair, error)

	// ValidateRefreshToken checks a presented refresh credential
	// cryptographically and then byte-for-byte against the stored copy of
	// the user it names. The equality check is the revocation mechanism:
	// a cleared or replaced stored token rejects the presented one with
	// apperrors.ErrSessionRevoked even if it has not expired.
	ValidateRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error)

	// IssueAccessToken mints a new short-lived access token for the user.
	IssueAccessToken(ctx context.Context, user *domain.User) (string, error)

	// Logout clears the stored refresh token matching the presented value.
	// It succeeds even when the value matches no user.
	Logout(ctx context.Context, refreshToken string) error
}
