package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/khatapana/khata_backend/internal/apperrors"
	"github.com/khatapana/khata_backend/internal/core/domain"
	portsrepo "github.com/khatapana/khata_backend/internal/core/ports/repositories"
	portssvc "github.com/khatapana/khata_backend/internal/core/ports/services"
	"github.com/khatapana/khata_backend/internal/platform/config"
	"github.com/khatapana/khata_backend/internal/utils"
)

// authService implements the session state machine over the credential store.
// Access tokens are stateless; refresh tokens are mirrored on the user row,
// one live value per account.
type authService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates a new authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the credentials and opens a session. An unknown username
// and a wrong password collapse into the same ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, portssvc.TokenPair, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, portssvc.TokenPair{}, apperrors.ErrInvalidCredentials
		}
		return nil, portssvc.TokenPair{}, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, portssvc.TokenPair{}, apperrors.ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(user.UserID, user.Username, s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiry, s.cfg.JWTIssuer)
	if err != nil {
		return nil, portssvc.TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := utils.GenerateRefreshToken(user.UserID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiry, s.cfg.JWTIssuer)
	if err != nil {
		return nil, portssvc.TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	// Overwriting the stored token invalidates any earlier session for this
	// account: one session slot per user.
	if err := s.userRepo.SetRefreshToken(ctx, user.UserID, &refreshToken); err != nil {
		return nil, portssvc.TokenPair{}, fmt.Errorf("failed to store refresh token: %w", err)
	}
	user.RefreshToken = &refreshToken

	return user, portssvc.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// ValidateRefreshToken runs the REFRESH_CHECK step: cryptographic
// verification first, then an exact comparison against the freshly loaded
// stored value. The comparison is never served from a cached user.
func (s *authService) ValidateRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	claims, err := utils.ParseRefreshToken(refreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSessionExpired, err)
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrSessionRevoked
		}
		return nil, fmt.Errorf("failed to look up user for refresh: %w", err)
	}

	// The stored copy is the sole revocation mechanism: cleared on logout,
	// replaced by a later login. Anything but an exact match rejects the
	// presented token even though it verified above.
	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, apperrors.ErrSessionRevoked
	}

	return user, nil
}

// IssueAccessToken mints a renewed access token. The refresh token itself is
// deliberately not rotated here; only the access credential renews.
func (s *authService) IssueAccessToken(ctx context.Context, user *domain.User) (string, error) {
	return utils.GenerateAccessToken(user.UserID, user.Username, s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiry, s.cfg.JWTIssuer)
}

// Logout clears the stored refresh token holding the presented value.
// A value no user holds is not an error, which makes logout idempotent.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.userRepo.ClearRefreshTokenByValue(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}
