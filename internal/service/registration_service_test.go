package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"entrega/internal/domain"
	"entrega/internal/service"
	"entrega/mocks"
)

func TestRegister_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	authSvc := new(mocks.MockAuthService)
	svc := service.NewRegistrationService(userRepo, authSvc)

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		if u.Email != "carlos@example.com" || u.FirstName != "Carlos" || u.LastName != "Mendoza Ruiz" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("str0ng-password")) == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = uuid.New()
	}).Return(nil)
	authSvc.On("GenerateTokenPairForUser", mock.Anything).Return(testTokens(), nil)

	out, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "carlos@example.com",
		Password: "str0ng-password",
		Name:     "Carlos Mendoza Ruiz",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, out.User.Role)
	assert.True(t, out.User.IsActive)
	assert.NotEmpty(t, out.Tokens.AccessToken)
}

func TestRegister_SingleWordName(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	authSvc := new(mocks.MockAuthService)
	svc := service.NewRegistrationService(userRepo, authSvc)

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.FirstName == "Cher" && u.LastName == ""
	})).Return(nil)
	authSvc.On("GenerateTokenPairForUser", mock.Anything).Return(testTokens(), nil)

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "cher@example.com",
		Password: "str0ng-password",
		Name:     "Cher",
	})
	assert.NoError(t, err)
}

func TestRegister_DriverRole(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	authSvc := new(mocks.MockAuthService)
	svc := service.NewRegistrationService(userRepo, authSvc)

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleDriver
	})).Return(nil)
	authSvc.On("GenerateTokenPairForUser", mock.Anything).Return(testTokens(), nil)

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "driver@example.com",
		Password: "str0ng-password",
		Name:     "Luis Perez",
		Role:     "driver",
	})
	assert.NoError(t, err)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	authSvc := new(mocks.MockAuthService)
	svc := service.NewRegistrationService(userRepo, authSvc)

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "mallory@example.com",
		Password: "str0ng-password",
		Name:     "Mallory",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	authSvc := new(mocks.MockAuthService)
	svc := service.NewRegistrationService(userRepo, authSvc)

	userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "taken@example.com",
		Password: "str0ng-password",
		Name:     "Taken Name",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	authSvc.AssertNotCalled(t, "GenerateTokenPairForUser", mock.Anything)
}
