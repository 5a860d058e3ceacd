package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"entrega/internal/domain"
)

// MockMenuRepo is a mock implementation of port.MenuRepository.
type MockMenuRepo struct {
	mock.Mock
}

func (m *MockMenuRepo) CreateSection(ctx context.Context, section *domain.MenuSection) error {
	args := m.Called(ctx, section)
	return args.Error(0)
}

func (m *MockMenuRepo) ListSections(ctx context.Context, businessID uuid.UUID) ([]domain.MenuSection, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuSection), args.Error(1)
}

func (m *MockMenuRepo) CreateItem(ctx context.Context, item *domain.FoodItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepo) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.FoodItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FoodItem), args.Error(1)
}

func (m *MockMenuRepo) ListItemsByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.FoodItem, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FoodItem), args.Error(1)
}

func (m *MockMenuRepo) ListAvailableItems(ctx context.Context, offset, limit int) ([]domain.FoodItem, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.FoodItem), args.Int(1), args.Error(2)
}

func (m *MockMenuRepo) ListMostOrdered(ctx context.Context, limit int) ([]domain.FoodItem, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FoodItem), args.Error(1)
}

func (m *MockMenuRepo) ListFeaturedProducts(ctx context.Context, limit int) ([]domain.FoodItem, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FoodItem), args.Error(1)
}

func (m *MockMenuRepo) UpdateItem(ctx context.Context, item *domain.FoodItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepo) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockMenuRepo) ListVariants(ctx context.Context, itemID uuid.UUID) ([]domain.FoodVariant, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FoodVariant), args.Error(1)
}

func (m *MockMenuRepo) ReplaceVariants(ctx context.Context, itemID uuid.UUID, variants []domain.FoodVariant) error {
	args := m.Called(ctx, itemID, variants)
	return args.Error(0)
}
