package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"entrega/internal/domain"
	"entrega/internal/port"
)

// FoodItemDetail is a food item together with its variants.
type FoodItemDetail struct {
	Item     *domain.FoodItem     `json:"item"`
	Variants []domain.FoodVariant `json:"variants"`
}

// MenuSectionInput carries the writable menu section fields.
type MenuSectionInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

// FoodItemInput carries the writable food item fields.
type FoodItemInput struct {
	SectionID              *uuid.UUID `json:"section_id"`
	Name                   string     `json:"name" binding:"required"`
	Description            string     `json:"description"`
	ImageURL               string     `json:"image_url"`
	Price                  float64    `json:"price" binding:"required,gt=0"`
	Currency               string     `json:"currency"`
	PreparationTimeMinutes *int       `json:"preparation_time_minutes"`
	IsAvailable            bool       `json:"is_available"`
	IsDiscounted           bool       `json:"is_discounted"`
	DiscountPercentage     *float64   `json:"discount_percentage"`
	OriginalPrice          *float64   `json:"original_price"`
}

// MenuService exposes menu browsing and management.
type MenuService interface {
	ListProducts(ctx context.Context, offset, limit int) ([]domain.FoodItem, int, error)
	GetProduct(ctx context.Context, itemID uuid.UUID) (*FoodItemDetail, error)

	CreateSection(ctx context.Context, businessID uuid.UUID, input MenuSectionInput) (*domain.MenuSection, error)
	CreateItem(ctx context.Context, businessID uuid.UUID, input FoodItemInput) (*domain.FoodItem, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, input FoodItemInput) (*domain.FoodItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	ReplaceVariants(ctx context.Context, itemID uuid.UUID, variants []domain.FoodVariant) error
}

type menuService struct {
	menuRepo     port.MenuRepository
	businessRepo port.BusinessRepository
}

// NewMenuService creates a new MenuService implementation.
func NewMenuService(menuRepo port.MenuRepository, businessRepo port.BusinessRepository) MenuService {
	return &menuService{menuRepo: menuRepo, businessRepo: businessRepo}
}

func (s *menuService) ListProducts(ctx context.Context, offset, limit int) ([]domain.FoodItem, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.menuRepo.ListAvailableItems(ctx, offset, limit)
}

func (s *menuService) GetProduct(ctx context.Context, itemID uuid.UUID) (*FoodItemDetail, error) {
	item, err := s.menuRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	variants, err := s.menuRepo.ListVariants(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("menu.GetProduct variants: %w", err)
	}
	return &FoodItemDetail{Item: item, Variants: variants}, nil
}

func (s *menuService) CreateSection(ctx context.Context, businessID uuid.UUID, input MenuSectionInput) (*domain.MenuSection, error) {
	if _, err := s.businessRepo.GetByID(ctx, businessID); err != nil {
		return nil, err
	}
	section := &domain.MenuSection{
		BusinessID:  businessID,
		Name:        input.Name,
		Description: input.Description,
		Position:    input.Position,
	}
	if err := s.menuRepo.CreateSection(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *menuService) CreateItem(ctx context.Context, businessID uuid.UUID, input FoodItemInput) (*domain.FoodItem, error) {
	if _, err := s.businessRepo.GetByID(ctx, businessID); err != nil {
		return nil, err
	}
	item := itemFromInput(input)
	item.BusinessID = businessID
	if err := s.menuRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *menuService) UpdateItem(ctx context.Context, itemID uuid.UUID, input FoodItemInput) (*domain.FoodItem, error) {
	existing, err := s.menuRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	item := itemFromInput(input)
	item.ID = existing.ID
	item.BusinessID = existing.BusinessID
	if item.Currency == "" {
		item.Currency = existing.Currency
	}
	if err := s.menuRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return s.menuRepo.GetItem(ctx, itemID)
}

func (s *menuService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return s.menuRepo.DeleteItem(ctx, itemID)
}

func (s *menuService) ReplaceVariants(ctx context.Context, itemID uuid.UUID, variants []domain.FoodVariant) error {
	if _, err := s.menuRepo.GetItem(ctx, itemID); err != nil {
		return err
	}
	return s.menuRepo.ReplaceVariants(ctx, itemID, variants)
}

func itemFromInput(input FoodItemInput) *domain.FoodItem {
	return &domain.FoodItem{
		SectionID:              input.SectionID,
		Name:                   input.Name,
		Description:            input.Description,
		ImageURL:               input.ImageURL,
		Price:                  input.Price,
		Currency:               input.Currency,
		PreparationTimeMinutes: input.PreparationTimeMinutes,
		IsAvailable:            input.IsAvailable,
		IsDiscounted:           input.IsDiscounted,
		DiscountPercentage:     input.DiscountPercentage,
		OriginalPrice:          input.OriginalPrice,
	}
}
