package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"entrega/internal/domain"
	"entrega/internal/service"
	"entrega/mocks"
)

func TestGetProduct_IncludesVariants(t *testing.T) {
	menuRepo := new(mocks.MockMenuRepo)
	businessRepo := new(mocks.MockBusinessRepo)
	svc := service.NewMenuService(menuRepo, businessRepo)

	itemID := uuid.New()
	item := &domain.FoodItem{ID: itemID, Name: "Margherita", Price: 250, Currency: "NIO"}
	variants := []domain.FoodVariant{{ID: uuid.New(), FoodItemID: itemID, Name: "Familiar"}}

	menuRepo.On("GetItem", mock.Anything, itemID).Return(item, nil)
	menuRepo.On("ListVariants", mock.Anything, itemID).Return(variants, nil)

	detail, err := svc.GetProduct(context.Background(), itemID)
	require.NoError(t, err)
	assert.Equal(t, item, detail.Item)
	assert.Equal(t, variants, detail.Variants)
}

func TestCreateItem_UnknownBusiness(t *testing.T) {
	menuRepo := new(mocks.MockMenuRepo)
	businessRepo := new(mocks.MockBusinessRepo)
	svc := service.NewMenuService(menuRepo, businessRepo)

	businessID := uuid.New()
	businessRepo.On("GetByID", mock.Anything, businessID).Return(nil, domain.ErrNotFound)

	_, err := svc.CreateItem(context.Background(), businessID, service.FoodItemInput{
		Name:  "Margherita",
		Price: 250,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	menuRepo.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestUpdateItem_KeepsBusinessAndCurrency(t *testing.T) {
	menuRepo := new(mocks.MockMenuRepo)
	businessRepo := new(mocks.MockBusinessRepo)
	svc := service.NewMenuService(menuRepo, businessRepo)

	itemID := uuid.New()
	businessID := uuid.New()
	existing := &domain.FoodItem{ID: itemID, BusinessID: businessID, Name: "Margherita", Price: 250, Currency: "NIO"}

	menuRepo.On("GetItem", mock.Anything, itemID).Return(existing, nil)
	menuRepo.On("UpdateItem", mock.Anything, mock.MatchedBy(func(i *domain.FoodItem) bool {
		return i.ID == itemID && i.BusinessID == businessID && i.Currency == "NIO" && i.Price == 300
	})).Return(nil)

	_, err := svc.UpdateItem(context.Background(), itemID, service.FoodItemInput{
		Name:  "Margherita Grande",
		Price: 300,
	})
	require.NoError(t, err)
	menuRepo.AssertExpectations(t)
}

func TestReplaceVariants_UnknownItem(t *testing.T) {
	menuRepo := new(mocks.MockMenuRepo)
	businessRepo := new(mocks.MockBusinessRepo)
	svc := service.NewMenuService(menuRepo, businessRepo)

	itemID := uuid.New()
	menuRepo.On("GetItem", mock.Anything, itemID).Return(nil, domain.ErrNotFound)

	err := svc.ReplaceVariants(context.Background(), itemID, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	menuRepo.AssertNotCalled(t, "ReplaceVariants", mock.Anything, mock.Anything, mock.Anything)
}
