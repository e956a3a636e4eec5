package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/khatapana/khata_backend/internal/apperrors"
	"github.com/khatapana/khata_backend/internal/core/domain"
	portssvc "github.com/khatapana/khata_backend/internal/core/ports/services"
	"github.com/khatapana/khata_backend/internal/core/services"
	"github.com/khatapana/khata_backend/internal/platform/config"
	"github.com/khatapana/khata_backend/internal/utils"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SetRefreshToken(ctx context.Context, userID string, token *string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshTokenByValue(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AuthServiceTestSuite struct {
	suite.Suite
	cfg      *config.Config
	mockRepo *MockUserRepository
	service  portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		AccessTokenSecret:  "test-access-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenSecret: "test-refresh-secret",
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		JWTIssuer:          "khata-backend-test",
	}
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewAuthService(suite.cfg, suite.mockRepo)
}

func (suite *AuthServiceTestSuite) newStoredUser(username, password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}
}

// --- Login ---

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	user := suite.newStoredUser("ramesh", "correct-horse")

	suite.mockRepo.On("FindUserByUsername", ctx, "ramesh").Return(user, nil).Once()
	suite.mockRepo.On("SetRefreshToken", ctx, user.UserID, mock.AnythingOfType("*string")).Return(nil).Once()

	loggedIn, tokens, err := suite.service.Login(ctx, "ramesh", "correct-horse")

	suite.Require().NoError(err)
	suite.Require().NotNil(loggedIn)
	suite.Equal(user.UserID, loggedIn.UserID)
	suite.NotEmpty(tokens.AccessToken)
	suite.NotEmpty(tokens.RefreshToken)

	// Both credentials must verify against their own secret.
	accessClaims, err := utils.ParseAccessToken(tokens.AccessToken, suite.cfg.AccessTokenSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, accessClaims.Subject)
	suite.Equal("ramesh", accessClaims.Username)

	refreshClaims, err := utils.ParseRefreshToken(tokens.RefreshToken, suite.cfg.RefreshTokenSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, refreshClaims.Subject)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_StoresRefreshTokenVerbatim() {
	ctx := context.Background()
	user := suite.newStoredUser("ramesh", "correct-horse")

	var stored *string
	suite.mockRepo.On("FindUserByUsername", ctx, "ramesh").Return(user, nil).Once()
	suite.mockRepo.On("SetRefreshToken", ctx, user.UserID, mock.AnythingOfType("*string")).
		Run(func(args mock.Arguments) {
			stored = args.Get(2).(*string)
		}).Return(nil).Once()

	_, tokens, err := suite.service.Login(ctx, "ramesh", "correct-horse")

	suite.Require().NoError(err)
	suite.Require().NotNil(stored)
	// The stored copy is compared byte for byte later, so it must be the
	// exact issued value, not a hash or derivative.
	suite.Equal(tokens.RefreshToken, *stored)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, tokens, err := suite.service.Login(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.Nil(user)
	suite.Empty(tokens.AccessToken)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	user := suite.newStoredUser("ramesh", "correct-horse")

	suite.mockRepo.On("FindUserByUsername", ctx, "ramesh").Return(user, nil).Once()

	_, _, err := suite.service.Login(ctx, "ramesh", "wrong-horse")

	// Wrong password and unknown user must be indistinguishable to the caller.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_SecondLoginReplacesSession() {
	ctx := context.Background()
	user := suite.newStoredUser("ramesh", "correct-horse")

	var first, second string
	suite.mockRepo.On("FindUserByUsername", ctx, "ramesh").Return(user, nil).Twice()
	suite.mockRepo.On("SetRefreshToken", ctx, user.UserID, mock.AnythingOfType("*string")).
		Run(func(args mock.Arguments) {
			token := args.Get(2).(*string)
			if first == "" {
				first = *token
			} else {
				second = *token
			}
		}).Return(nil).Twice()

	_, _, err := suite.service.Login(ctx, "ramesh", "correct-horse")
	suite.Require().NoError(err)
	time.Sleep(1100 * time.Millisecond) // distinct iat second for a distinct token
	_, _, err = suite.service.Login(ctx, "ramesh", "correct-horse")
	suite.Require().NoError(err)

	// One session slot: the second login overwrote the first token, which is
	// exactly what revokes the earlier session.
	suite.NotEmpty(first)
	suite.NotEmpty(second)
	suite.NotEqual(first, second)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- ValidateRefreshToken ---

func (suite *AuthServiceTestSuite) issueRefreshFor(userID string) string {
	token, err := utils.GenerateRefreshToken(userID, suite.cfg.RefreshTokenSecret, suite.cfg.RefreshTokenExpiry, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return token
}

func (suite *AuthServiceTestSuite) TestValidateRefreshToken_Success() {
	ctx := context.Background()
	user := suite.newStoredUser("ramesh", "correct-horse")
	token := suite.issueRefreshFor(user.UserID)
	user.RefreshToken = &token

	suite.mockRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	validated, err := suite.service.ValidateRefreshToken(ctx, token)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, validated.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestValidateRefreshToken_Expired() {
	ctx := context.Background()
	userID := uuid.NewString()
	expired, err := utils.GenerateRefreshToken(userID, suite.cfg.RefreshTokenSecret, -1*time.Minute, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	_, err = suite.service.ValidateRefreshToken(ctx, expired)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSessionExpired)
	// Verification failed, so the store is never consulted.
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestValidateRefreshToken_Tampered() {
	ctx := context.Background()
	forged, err := utils.GenerateRefreshToken(uuid.NewString(), "attacker-secret", time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	_, err = suite.service.ValidateRefreshToken(ctx, forged)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSessionExpired)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestValidateRefreshToken_StoredMismatch() {
	ctx := context.Background()
	user := suite.newStoredUser("ramesh", "correct-horse")
	presented := suite.issueRefreshFor(user.UserID)
	other := presented + "x"
	user.RefreshToken = &other

	suite.mockRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	_, err := suite.service.ValidateRefreshToken(ctx, presented)

	// Cryptographically valid but superseded by a later login.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSessionRevoked)
}

func (suite *AuthServiceTestSuite) TestValidateRefreshToken_StoredCleared() {
	ctx := context.Background()
	user := suite.newStoredUser("ramesh", "correct-horse")
	presented := suite.issueRefreshFor(user.UserID)
	user.RefreshToken = nil

	suite.mockRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	_, err := suite.service.ValidateRefreshToken(ctx, presented)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSessionRevoked)
}

func (suite *AuthServiceTestSuite) TestValidateRefreshToken_UserGone() {
	ctx := context.Background()
	presented := suite.issueRefreshFor(uuid.NewString())

	suite.mockRepo.On("FindUserByID", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ValidateRefreshToken(ctx, presented)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSessionRevoked)
}

// --- IssueAccessToken / Logout ---

func (suite *AuthServiceTestSuite) TestIssueAccessToken_DoesNotTouchStore() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Username: "ramesh"}

	token, err := suite.service.IssueAccessToken(ctx, user)

	suite.Require().NoError(err)
	claims, err := utils.ParseAccessToken(token, suite.cfg.AccessTokenSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)

	// Renewal never rotates the refresh token.
	suite.mockRepo.AssertNotCalled(suite.T(), "SetRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogout_ClearsByValue() {
	ctx := context.Background()
	token := suite.issueRefreshFor(uuid.NewString())

	suite.mockRepo.On("ClearRefreshTokenByValue", ctx, token).Return(nil).Once()

	err := suite.service.Logout(ctx, token)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogout_EmptyTokenIsNoop() {
	ctx := context.Background()

	err := suite.service.Logout(ctx, "")

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "ClearRefreshTokenByValue", mock.Anything, mock.Anything)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
