package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"entrega/internal/domain"
	"entrega/internal/port"
)

// OfferFeed groups the active offers by shelf for the offers screen.
type OfferFeed struct {
	Hero         []domain.Offer            `json:"hero"`
	Flash        []domain.Offer            `json:"flash"`
	Curated      []domain.Offer            `json:"curated"`
	InterestTags []domain.OfferInterestTag `json:"interest_tags"`
}

// OfferInput carries the writable offer fields.
type OfferInput struct {
	BusinessID   uuid.UUID  `json:"business_id" binding:"required"`
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"image_url"`
	SavingsLabel string     `json:"savings_label"`
	Highlight    string     `json:"highlight"`
	Tag          string     `json:"tag"`
	ExpiresAt    *time.Time `json:"expires_at"`
	Category     string     `json:"category" binding:"required"`
	IsActive     bool       `json:"is_active"`
	Position     int        `json:"position"`
}

// OfferService exposes promotional offer browsing and management.
type OfferService interface {
	Feed(ctx context.Context) (*OfferFeed, error)
	GetOffer(ctx context.Context, offerID uuid.UUID) (*domain.Offer, error)

	CreateOffer(ctx context.Context, input OfferInput) (*domain.Offer, error)
	UpdateOffer(ctx context.Context, offerID uuid.UUID, input OfferInput) (*domain.Offer, error)
	DeleteOffer(ctx context.Context, offerID uuid.UUID) error
}

type offerService struct {
	offerRepo    port.OfferRepository
	businessRepo port.BusinessRepository
	now          func() time.Time
}

// NewOfferService creates a new OfferService implementation.
func NewOfferService(offerRepo port.OfferRepository, businessRepo port.BusinessRepository) OfferService {
	return &offerService{offerRepo: offerRepo, businessRepo: businessRepo, now: time.Now}
}

// Feed returns active, unexpired offers bucketed by shelf. Expired offers are
// filtered out even when still flagged active in the database.
func (s *offerService) Feed(ctx context.Context) (*OfferFeed, error) {
	offers, err := s.offerRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("offer.Feed: %w", err)
	}
	tags, err := s.offerRepo.ListInterestTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("offer.Feed tags: %w", err)
	}

	feed := &OfferFeed{
		Hero:         []domain.Offer{},
		Flash:        []domain.Offer{},
		Curated:      []domain.Offer{},
		InterestTags: tags,
	}
	now := s.now()
	for _, offer := range offers {
		if offer.ExpiresAt != nil && offer.ExpiresAt.Before(now) {
			continue
		}
		switch offer.Category {
		case domain.OfferCategoryHero:
			feed.Hero = append(feed.Hero, offer)
		case domain.OfferCategoryFlash:
			feed.Flash = append(feed.Flash, offer)
		case domain.OfferCategoryCurated:
			feed.Curated = append(feed.Curated, offer)
		}
	}
	return feed, nil
}

func (s *offerService) GetOffer(ctx context.Context, offerID uuid.UUID) (*domain.Offer, error) {
	return s.offerRepo.GetByID(ctx, offerID)
}

func (s *offerService) CreateOffer(ctx context.Context, input OfferInput) (*domain.Offer, error) {
	category := domain.OfferCategory(input.Category)
	if !domain.ValidOfferCategories[category] {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidOfferCategory, input.Category)
	}
	if _, err := s.businessRepo.GetByID(ctx, input.BusinessID); err != nil {
		return nil, err
	}
	offer := offerFromInput(input, category)
	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (s *offerService) UpdateOffer(ctx context.Context, offerID uuid.UUID, input OfferInput) (*domain.Offer, error) {
	category := domain.OfferCategory(input.Category)
	if !domain.ValidOfferCategories[category] {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidOfferCategory, input.Category)
	}
	existing, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	offer := offerFromInput(input, category)
	offer.ID = existing.ID
	offer.BusinessID = existing.BusinessID
	if err := s.offerRepo.Update(ctx, offer); err != nil {
		return nil, err
	}
	return s.offerRepo.GetByID(ctx, offerID)
}

func (s *offerService) DeleteOffer(ctx context.Context, offerID uuid.UUID) error {
	return s.offerRepo.Delete(ctx, offerID)
}

func offerFromInput(input OfferInput, category domain.OfferCategory) *domain.Offer {
	return &domain.Offer{
		BusinessID:   input.BusinessID,
		Title:        input.Title,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		SavingsLabel: input.SavingsLabel,
		Highlight:    input.Highlight,
		Tag:          input.Tag,
		ExpiresAt:    input.ExpiresAt,
		Category:     category,
		IsActive:     input.IsActive,
		Position:     input.Position,
	}
}
