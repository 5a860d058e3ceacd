package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"entrega/internal/domain"
	"entrega/internal/service"
	"entrega/mocks"
)

func TestFeed_GroupsByCategory(t *testing.T) {
	offerRepo := new(mocks.MockOfferRepo)
	businessRepo := new(mocks.MockBusinessRepo)
	svc := service.NewOfferService(offerRepo, businessRepo)

	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-time.Hour)
	offers := []domain.Offer{
		{ID: uuid.New(), Title: "Big Banner", Category: domain.OfferCategoryHero, IsActive: true},
		{ID: uuid.New(), Title: "2x1 Pizza", Category: domain.OfferCategoryFlash, IsActive: true, ExpiresAt: &future},
		{ID: uuid.New(), Title: "Old Deal", Category: domain.OfferCategoryFlash, IsActive: true, ExpiresAt: &past},
		{ID: uuid.New(), Title: "Chef Picks", Category: domain.OfferCategoryCurated, IsActive: true},
	}
	tags := []domain.OfferInterestTag{{ID: uuid.New(), Name: "Pizza", Position: 1}}

	offerRepo.On("ListActive", mock.Anything).Return(offers, nil)
	offerRepo.On("ListInterestTags", mock.Anything).Return(tags, nil)

	feed, err := svc.Feed(context.Background())
	require.NoError(t, err)
	assert.Len(t, feed.Hero, 1)
	require.Len(t, feed.Flash, 1)
	assert.Equal(t, "2x1 Pizza", feed.Flash[0].Title)
	assert.Len(t, feed.Curated, 1)
	assert.Equal(t, tags, feed.InterestTags)
}

func TestFeed_EmptyShelvesAreNotNil(t *testing.T) {
	offerRepo := new(mocks.MockOfferRepo)
	businessRepo := new(mocks.MockBusinessRepo)
	svc := service.NewOfferService(offerRepo, businessRepo)

	offerRepo.On("ListActive", mock.Anything).Return([]domain.Offer{}, nil)
	offerRepo.On("ListInterestTags", mock.Anything).Return([]domain.OfferInterestTag{}, nil)

	feed, err := svc.Feed(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, feed.Hero)
	assert.NotNil(t, feed.Flash)
	assert.NotNil(t, feed.Curated)
}

func TestCreateOffer_UnknownCategory(t *testing.T) {
	offerRepo := new(mocks.MockOfferRepo)
	businessRepo := new(mocks.MockBusinessRepo)
	svc := service.NewOfferService(offerRepo, businessRepo)

	_, err := svc.CreateOffer(context.Background(), service.OfferInput{
		BusinessID: uuid.New(),
		Title:      "Mystery Deal",
		Category:   "mystery",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidOfferCategory)
	offerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOffer_UnknownBusiness(t *testing.T) {
	offerRepo := new(mocks.MockOfferRepo)
	businessRepo := new(mocks.MockBusinessRepo)
	svc := service.NewOfferService(offerRepo, businessRepo)

	businessID := uuid.New()
	businessRepo.On("GetByID", mock.Anything, businessID).Return(nil, domain.ErrNotFound)

	_, err := svc.CreateOffer(context.Background(), service.OfferInput{
		BusinessID: businessID,
		Title:      "Deal",
		Category:   "hero",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateOffer_Success(t *testing.T) {
	offerRepo := new(mocks.MockOfferRepo)
	businessRepo := new(mocks.MockBusinessRepo)
	svc := service.NewOfferService(offerRepo, businessRepo)

	businessID := uuid.New()
	businessRepo.On("GetByID", mock.Anything, businessID).
		Return(&domain.Business{ID: businessID, Name: "Pizzeria Roma"}, nil)
	offerRepo.On("Create", mock.Anything, mock.MatchedBy(func(o *domain.Offer) bool {
		return o.BusinessID == businessID && o.Category == domain.OfferCategoryFlash
	})).Return(nil)

	offer, err := svc.CreateOffer(context.Background(), service.OfferInput{
		BusinessID: businessID,
		Title:      "2x1 Margherita",
		Category:   "flash",
		IsActive:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OfferCategoryFlash, offer.Category)
}
