package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"entrega/internal/domain"
	"entrega/internal/port"
)

// MockSocialTokenVerifier is a mock implementation of port.SocialTokenVerifier.
type MockSocialTokenVerifier struct {
	mock.Mock
	ProviderName domain.AuthProvider
}

func (m *MockSocialTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*port.SocialProfile, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.SocialProfile), args.Error(1)
}

func (m *MockSocialTokenVerifier) Provider() domain.AuthProvider {
	return m.ProviderName
}
