package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"entrega/internal/domain"
	"entrega/internal/port"
)

const homeShelfSize = 10

// BusinessDetail is a business together with its hours and full menu.
type BusinessDetail struct {
	Business *domain.Business       `json:"business"`
	ETA      string                 `json:"delivery_eta"`
	Hours    []domain.BusinessHours `json:"hours"`
	Sections []domain.MenuSection   `json:"sections"`
	Items    []domain.FoodItem      `json:"items"`
}

// HomeFeed aggregates the discovery shelves shown on the home screen.
type HomeFeed struct {
	Categories         []domain.BusinessCategory `json:"categories"`
	FeaturedBusinesses []domain.Business         `json:"featured_businesses"`
	FastestDelivery    []domain.Business         `json:"fastest_delivery"`
	MostOrdered        []domain.FoodItem         `json:"most_ordered"`
	FeaturedProducts   []domain.FoodItem         `json:"featured_products"`
}

// BusinessInput carries the writable business fields.
type BusinessInput struct {
	CategoryID             *uuid.UUID `json:"category_id"`
	Name                   string     `json:"name" binding:"required"`
	Tagline                string     `json:"tagline"`
	Description            string     `json:"description"`
	Address                string     `json:"address"`
	Latitude               *float64   `json:"latitude"`
	Longitude              *float64   `json:"longitude"`
	ImageURL               string     `json:"image_url"`
	HeroImageURL           string     `json:"hero_image_url"`
	DeliveryAvailable      bool       `json:"delivery_available"`
	DeliveryTimeMinutesMin *int       `json:"delivery_time_minutes_min"`
	DeliveryTimeMinutesMax *int       `json:"delivery_time_minutes_max"`
}

// BusinessService exposes catalogue and discovery operations.
type BusinessService interface {
	Home(ctx context.Context) (*HomeFeed, error)
	ListBusinesses(ctx context.Context, offset, limit int) ([]domain.Business, int, error)
	GetBusinessDetail(ctx context.Context, businessID uuid.UUID) (*BusinessDetail, error)
	ListCategories(ctx context.Context) ([]domain.BusinessCategory, error)

	CreateBusiness(ctx context.Context, input BusinessInput) (*domain.Business, error)
	UpdateBusiness(ctx context.Context, businessID uuid.UUID, input BusinessInput) (*domain.Business, error)
	DeleteBusiness(ctx context.Context, businessID uuid.UUID) error
	ReplaceHours(ctx context.Context, businessID uuid.UUID, hours []domain.BusinessHours) error
}

type businessService struct {
	businessRepo port.BusinessRepository
	menuRepo     port.MenuRepository
}

// NewBusinessService creates a new BusinessService implementation.
func NewBusinessService(businessRepo port.BusinessRepository, menuRepo port.MenuRepository) BusinessService {
	return &businessService{businessRepo: businessRepo, menuRepo: menuRepo}
}

func (s *businessService) Home(ctx context.Context) (*HomeFeed, error) {
	categories, err := s.businessRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("business.Home categories: %w", err)
	}
	featured, err := s.businessRepo.ListFeatured(ctx, homeShelfSize)
	if err != nil {
		return nil, fmt.Errorf("business.Home featured: %w", err)
	}
	fastest, err := s.businessRepo.ListByDeliveryETA(ctx, homeShelfSize)
	if err != nil {
		return nil, fmt.Errorf("business.Home fastest: %w", err)
	}
	mostOrdered, err := s.menuRepo.ListMostOrdered(ctx, homeShelfSize)
	if err != nil {
		return nil, fmt.Errorf("business.Home most ordered: %w", err)
	}
	featuredProducts, err := s.menuRepo.ListFeaturedProducts(ctx, homeShelfSize)
	if err != nil {
		return nil, fmt.Errorf("business.Home featured products: %w", err)
	}
	return &HomeFeed{
		Categories:         categories,
		FeaturedBusinesses: featured,
		FastestDelivery:    fastest,
		MostOrdered:        mostOrdered,
		FeaturedProducts:   featuredProducts,
	}, nil
}

func (s *businessService) ListBusinesses(ctx context.Context, offset, limit int) ([]domain.Business, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.businessRepo.List(ctx, offset, limit)
}

func (s *businessService) GetBusinessDetail(ctx context.Context, businessID uuid.UUID) (*BusinessDetail, error) {
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	hours, err := s.businessRepo.ListHours(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("business.GetBusinessDetail hours: %w", err)
	}
	sections, err := s.menuRepo.ListSections(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("business.GetBusinessDetail sections: %w", err)
	}
	items, err := s.menuRepo.ListItemsByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("business.GetBusinessDetail items: %w", err)
	}
	return &BusinessDetail{
		Business: business,
		ETA:      business.DeliveryETA(),
		Hours:    hours,
		Sections: sections,
		Items:    items,
	}, nil
}

func (s *businessService) ListCategories(ctx context.Context) ([]domain.BusinessCategory, error) {
	return s.businessRepo.ListCategories(ctx)
}

func (s *businessService) CreateBusiness(ctx context.Context, input BusinessInput) (*domain.Business, error) {
	business := businessFromInput(input)
	if err := s.businessRepo.Create(ctx, business); err != nil {
		return nil, err
	}
	return business, nil
}

func (s *businessService) UpdateBusiness(ctx context.Context, businessID uuid.UUID, input BusinessInput) (*domain.Business, error) {
	existing, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	business := businessFromInput(input)
	business.ID = existing.ID
	business.AverageRating = existing.AverageRating
	business.ReviewCount = existing.ReviewCount
	if err := s.businessRepo.Update(ctx, business); err != nil {
		return nil, err
	}
	return s.businessRepo.GetByID(ctx, businessID)
}

func (s *businessService) DeleteBusiness(ctx context.Context, businessID uuid.UUID) error {
	return s.businessRepo.Delete(ctx, businessID)
}

func (s *businessService) ReplaceHours(ctx context.Context, businessID uuid.UUID, hours []domain.BusinessHours) error {
	if _, err := s.businessRepo.GetByID(ctx, businessID); err != nil {
		return err
	}
	return s.businessRepo.ReplaceHours(ctx, businessID, hours)
}

func businessFromInput(input BusinessInput) *domain.Business {
	return &domain.Business{
		CategoryID:             input.CategoryID,
		Name:                   input.Name,
		Tagline:                input.Tagline,
		Description:            input.Description,
		Address:                input.Address,
		Latitude:               input.Latitude,
		Longitude:              input.Longitude,
		ImageURL:               input.ImageURL,
		HeroImageURL:           input.HeroImageURL,
		DeliveryAvailable:      input.DeliveryAvailable,
		DeliveryTimeMinutesMin: input.DeliveryTimeMinutesMin,
		DeliveryTimeMinutesMax: input.DeliveryTimeMinutesMax,
	}
}
