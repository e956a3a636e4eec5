package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khatapana/khata_backend/internal/apperrors"
	"github.com/khatapana/khata_backend/internal/core/domain"
	portsrepo "github.com/khatapana/khata_backend/internal/core/ports/repositories"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository over the users table.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, password_hash, refresh_token, created_at, updated_at`

func (r *PgxUserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.RefreshToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	return r.scanUser(r.Pool.QueryRow(ctx, query, userID))
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	return r.scanUser(r.Pool.QueryRow(ctx, query, username))
}

// SetRefreshToken overwrites the stored refresh token in a single statement,
// so concurrent logins against the same account resolve last-writer-wins.
func (r *PgxUserRepository) SetRefreshToken(ctx context.Context, userID string, token *string) error {
	query := `
        UPDATE users
        SET refresh_token = $1, updated_at = now()
        WHERE user_id = $2;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, token, userID)
	if err != nil {
		return fmt.Errorf("failed to set refresh token for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ClearRefreshTokenByValue clears the stored token on whichever user holds
// the presented value. Matching zero rows is fine: logout is idempotent.
func (r *PgxUserRepository) ClearRefreshTokenByValue(ctx context.Context, token string) error {
	query := `
        UPDATE users
        SET refresh_token = NULL, updated_at = now()
        WHERE refresh_token = $1;
    `
	if _, err := r.Pool.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}
