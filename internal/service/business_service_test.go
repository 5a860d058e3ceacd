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

func TestHome_AggregatesShelves(t *testing.T) {
	businessRepo := new(mocks.MockBusinessRepo)
	menuRepo := new(mocks.MockMenuRepo)
	svc := service.NewBusinessService(businessRepo, menuRepo)

	categories := []domain.BusinessCategory{{ID: uuid.New(), Name: "Pizza"}}
	featured := []domain.Business{{ID: uuid.New(), Name: "Pizzeria Roma"}}
	fastest := []domain.Business{{ID: uuid.New(), Name: "Quick Bites"}}
	mostOrdered := []domain.FoodItem{{ID: uuid.New(), Name: "Margherita"}}
	featuredProducts := []domain.FoodItem{{ID: uuid.New(), Name: "Calzone"}}

	businessRepo.On("ListCategories", mock.Anything).Return(categories, nil)
	businessRepo.On("ListFeatured", mock.Anything, mock.Anything).Return(featured, nil)
	businessRepo.On("ListByDeliveryETA", mock.Anything, mock.Anything).Return(fastest, nil)
	menuRepo.On("ListMostOrdered", mock.Anything, mock.Anything).Return(mostOrdered, nil)
	menuRepo.On("ListFeaturedProducts", mock.Anything, mock.Anything).Return(featuredProducts, nil)

	feed, err := svc.Home(context.Background())
	require.NoError(t, err)
	assert.Equal(t, categories, feed.Categories)
	assert.Equal(t, featured, feed.FeaturedBusinesses)
	assert.Equal(t, fastest, feed.FastestDelivery)
	assert.Equal(t, mostOrdered, feed.MostOrdered)
	assert.Equal(t, featuredProducts, feed.FeaturedProducts)
}

func TestGetBusinessDetail_IncludesHoursAndMenu(t *testing.T) {
	businessRepo := new(mocks.MockBusinessRepo)
	menuRepo := new(mocks.MockMenuRepo)
	svc := service.NewBusinessService(businessRepo, menuRepo)

	businessID := uuid.New()
	minETA, maxETA := 20, 35
	business := &domain.Business{
		ID: businessID, Name: "Pizzeria Roma",
		DeliveryTimeMinutesMin: &minETA, DeliveryTimeMinutesMax: &maxETA,
	}
	hours := []domain.BusinessHours{{ID: uuid.New(), BusinessID: businessID, DayOfWeek: 1}}
	sections := []domain.MenuSection{{ID: uuid.New(), BusinessID: businessID, Name: "Pizzas"}}
	items := []domain.FoodItem{{ID: uuid.New(), BusinessID: businessID, Name: "Margherita"}}

	businessRepo.On("GetByID", mock.Anything, businessID).Return(business, nil)
	businessRepo.On("ListHours", mock.Anything, businessID).Return(hours, nil)
	menuRepo.On("ListSections", mock.Anything, businessID).Return(sections, nil)
	menuRepo.On("ListItemsByBusiness", mock.Anything, businessID).Return(items, nil)

	detail, err := svc.GetBusinessDetail(context.Background(), businessID)
	require.NoError(t, err)
	assert.Equal(t, "20-35 min", detail.ETA)
	assert.Equal(t, hours, detail.Hours)
	assert.Equal(t, sections, detail.Sections)
	assert.Equal(t, items, detail.Items)
}

func TestGetBusinessDetail_NotFound(t *testing.T) {
	businessRepo := new(mocks.MockBusinessRepo)
	menuRepo := new(mocks.MockMenuRepo)
	svc := service.NewBusinessService(businessRepo, menuRepo)

	businessID := uuid.New()
	businessRepo.On("GetByID", mock.Anything, businessID).Return(nil, domain.ErrNotFound)

	_, err := svc.GetBusinessDetail(context.Background(), businessID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	menuRepo.AssertNotCalled(t, "ListSections", mock.Anything, mock.Anything)
}

func TestListBusinesses_ClampsPagination(t *testing.T) {
	businessRepo := new(mocks.MockBusinessRepo)
	menuRepo := new(mocks.MockMenuRepo)
	svc := service.NewBusinessService(businessRepo, menuRepo)

	businessRepo.On("List", mock.Anything, 0, 20).Return([]domain.Business{}, 0, nil)

	_, _, err := svc.ListBusinesses(context.Background(), -5, 1000)
	require.NoError(t, err)
	businessRepo.AssertExpectations(t)
}
