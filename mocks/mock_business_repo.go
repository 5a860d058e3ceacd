package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"entrega/internal/domain"
)

// MockBusinessRepo is a mock implementation of port.BusinessRepository.
type MockBusinessRepo struct {
	mock.Mock
}

func (m *MockBusinessRepo) Create(ctx context.Context, business *domain.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepo) GetByID(ctx context.Context, businessID uuid.UUID) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessRepo) List(ctx context.Context, offset, limit int) ([]domain.Business, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Business), args.Int(1), args.Error(2)
}

func (m *MockBusinessRepo) ListFeatured(ctx context.Context, limit int) ([]domain.Business, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

func (m *MockBusinessRepo) ListByDeliveryETA(ctx context.Context, limit int) ([]domain.Business, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

func (m *MockBusinessRepo) Update(ctx context.Context, business *domain.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepo) Delete(ctx context.Context, businessID uuid.UUID) error {
	args := m.Called(ctx, businessID)
	return args.Error(0)
}

func (m *MockBusinessRepo) ListCategories(ctx context.Context) ([]domain.BusinessCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusinessCategory), args.Error(1)
}

func (m *MockBusinessRepo) ListHours(ctx context.Context, businessID uuid.UUID) ([]domain.BusinessHours, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusinessHours), args.Error(1)
}

func (m *MockBusinessRepo) ReplaceHours(ctx context.Context, businessID uuid.UUID, hours []domain.BusinessHours) error {
	args := m.Called(ctx, businessID, hours)
	return args.Error(0)
}
