package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"entrega/internal/config"
	"entrega/internal/domain"
	"entrega/internal/service"
	"entrega/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		Issuer:             "entrega-test",
	}
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		FirstName:    "Ana",
		Role:         domain.RoleUser,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())
	user := activeUser(t, "correct-password")

	userRepo.On("GetByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	out, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "ana@example.com",
		Password: "correct-password",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)
	assert.NotEmpty(t, out.Tokens.AccessToken)
	assert.NotEmpty(t, out.Tokens.RefreshToken)
	assert.NotEqual(t, out.Tokens.AccessToken, out.Tokens.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())
	user := activeUser(t, "correct-password")

	userRepo.On("GetByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "ana@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_SocialOnlyAccount(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())
	user := &domain.User{
		ID: uuid.New(), Email: "social@example.com",
		PasswordHash: "", Role: domain.RoleUser, IsActive: true,
	}

	userRepo.On("GetByEmail", mock.Anything, "social@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "social@example.com",
		Password: "anything",
	})
	assert.ErrorIs(t, err, domain.ErrPasswordLoginNotAllowed)
}

func TestLogin_InactiveUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())
	user := activeUser(t, "correct-password")
	user.IsActive = false

	userRepo.On("GetByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "ana@example.com",
		Password: "correct-password",
	})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())
	user := activeUser(t, "pw")

	tokens, err := svc.GenerateTokenPairForUser(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestValidateToken_RejectsRefreshToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())
	user := activeUser(t, "pw")

	tokens, err := svc.GenerateTokenPairForUser(user)
	require.NoError(t, err)

	// A refresh token must not pass access-token validation.
	_, err = svc.ValidateToken(tokens.RefreshToken)
	assert.Error(t, err)
}

func TestRefreshToken_IssuesNewPair(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())
	user := activeUser(t, "pw")

	tokens, err := svc.GenerateTokenPairForUser(user)
	require.NoError(t, err)

	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	fresh, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())
	user := activeUser(t, "pw")

	tokens, err := svc.GenerateTokenPairForUser(user)
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), tokens.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefreshToken_Garbage(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
