package repositories

import (
	"context"

	"github.com/khatapana/khata_backend/internal/core/domain"
)

// UserReader defines read operations against the credential store.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	// Returns apperrors.ErrNotFound if no such user exists.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a specific user by their unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// RefreshTokenWriter defines the single-field refresh-token updates used by
// the session manager. Each call is one atomic write of the stored token.
type RefreshTokenWriter interface {
	// SetRefreshToken overwrites the stored refresh token for a user.
	// Passing nil clears it.
	SetRefreshToken(ctx context.Context, userID string, token *string) error

	// ClearRefreshTokenByValue clears the stored refresh token on whichever
	// user currently holds the given value. Clearing a value no user holds
	// is not an error (logout is idempotent).
	ClearRefreshTokenByValue(ctx context.Context, token string) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	RefreshTokenWriter
}
