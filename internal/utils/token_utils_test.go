package utils_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khatapana/khata_backend/internal/apperrors"
	"github.com/khatapana/khata_backend/internal/utils"
)

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
	testIssuer        = "khata-backend-test"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	userID := uuid.NewString()

	tokenStr, err := utils.GenerateAccessToken(userID, "ramesh", testAccessSecret, 15*time.Minute, testIssuer)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := utils.ParseAccessToken(tokenStr, testAccessSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "ramesh", claims.Username)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	userID := uuid.NewString()

	tokenStr, err := utils.GenerateRefreshToken(userID, testRefreshSecret, 7*24*time.Hour, testIssuer)
	require.NoError(t, err)

	claims, err := utils.ParseRefreshToken(tokenStr, testRefreshSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseAccessToken_Expired(t *testing.T) {
	tokenStr, err := utils.GenerateAccessToken(uuid.NewString(), "ramesh", testAccessSecret, -1*time.Minute, testIssuer)
	require.NoError(t, err)

	_, err = utils.ParseAccessToken(tokenStr, testAccessSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestParseRefreshToken_Expired(t *testing.T) {
	tokenStr, err := utils.GenerateRefreshToken(uuid.NewString(), testRefreshSecret, -1*time.Minute, testIssuer)
	require.NoError(t, err)

	_, err = utils.ParseRefreshToken(tokenStr, testRefreshSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	tokenStr, err := utils.GenerateAccessToken(uuid.NewString(), "ramesh", testAccessSecret, 15*time.Minute, testIssuer)
	require.NoError(t, err)

	_, err = utils.ParseAccessToken(tokenStr, "some-other-secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

// Each token kind is signed with its own secret, so one kind can never be
// presented as the other.
func TestTokenKinds_NotInterchangeable(t *testing.T) {
	userID := uuid.NewString()

	refreshStr, err := utils.GenerateRefreshToken(userID, testRefreshSecret, 7*24*time.Hour, testIssuer)
	require.NoError(t, err)
	_, err = utils.ParseAccessToken(refreshStr, testAccessSecret)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	accessStr, err := utils.GenerateAccessToken(userID, "ramesh", testAccessSecret, 15*time.Minute, testIssuer)
	require.NoError(t, err)
	_, err = utils.ParseRefreshToken(accessStr, testRefreshSecret)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestParseAccessToken_Garbage(t *testing.T) {
	_, err := utils.ParseAccessToken("not.a.jwt", testAccessSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
