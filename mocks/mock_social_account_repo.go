package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"entrega/internal/domain"
)

// MockSocialAccountRepo is a mock implementation of port.SocialAccountRepository.
type MockSocialAccountRepo struct {
	mock.Mock
}

func (m *MockSocialAccountRepo) Create(ctx context.Context, account *domain.SocialAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockSocialAccountRepo) GetByProviderSubject(ctx context.Context, provider domain.AuthProvider, subject string) (*domain.SocialAccount, error) {
	args := m.Called(ctx, provider, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SocialAccount), args.Error(1)
}

func (m *MockSocialAccountRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SocialAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SocialAccount), args.Error(1)
}

func (m *MockSocialAccountRepo) Relink(ctx context.Context, accountID, userID uuid.UUID) error {
	args := m.Called(ctx, accountID, userID)
	return args.Error(0)
}
