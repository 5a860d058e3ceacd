package port

import (
	"context"

	"github.com/google/uuid"

	"entrega/internal/domain"
)

// UserRepository defines the contract for user persistence.
// Email lookups are case-insensitive.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	// UpdateNames writes only the name columns passed as non-nil.
	UpdateNames(ctx context.Context, userID uuid.UUID, firstName, lastName *string) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// SocialAccountRepository defines the contract for provider-link persistence.
// Create surfaces domain.ErrDuplicateSocialAccount on a (provider, subject)
// unique-constraint violation so callers can retry as a lookup.
type SocialAccountRepository interface {
	Create(ctx context.Context, account *domain.SocialAccount) error
	GetByProviderSubject(ctx context.Context, provider domain.AuthProvider, subject string) (*domain.SocialAccount, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SocialAccount, error)
	// Relink repairs the user reference of an existing account. The
	// (provider, subject) key itself is immutable.
	Relink(ctx context.Context, accountID, userID uuid.UUID) error
}

// BusinessRepository defines the contract for business catalogue persistence.
type BusinessRepository interface {
	Create(ctx context.Context, business *domain.Business) error
	GetByID(ctx context.Context, businessID uuid.UUID) (*domain.Business, error)
	List(ctx context.Context, offset, limit int) ([]domain.Business, int, error)
	ListFeatured(ctx context.Context, limit int) ([]domain.Business, error)
	ListByDeliveryETA(ctx context.Context, limit int) ([]domain.Business, error)
	Update(ctx context.Context, business *domain.Business) error
	Delete(ctx context.Context, businessID uuid.UUID) error

	ListCategories(ctx context.Context) ([]domain.BusinessCategory, error)
	ListHours(ctx context.Context, businessID uuid.UUID) ([]domain.BusinessHours, error)
	ReplaceHours(ctx context.Context, businessID uuid.UUID, hours []domain.BusinessHours) error
}

// MenuRepository defines the contract for menu persistence.
type MenuRepository interface {
	CreateSection(ctx context.Context, section *domain.MenuSection) error
	ListSections(ctx context.Context, businessID uuid.UUID) ([]domain.MenuSection, error)

	CreateItem(ctx context.Context, item *domain.FoodItem) error
	GetItem(ctx context.Context, itemID uuid.UUID) (*domain.FoodItem, error)
	ListItemsByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.FoodItem, error)
	ListAvailableItems(ctx context.Context, offset, limit int) ([]domain.FoodItem, int, error)
	ListMostOrdered(ctx context.Context, limit int) ([]domain.FoodItem, error)
	ListFeaturedProducts(ctx context.Context, limit int) ([]domain.FoodItem, error)
	UpdateItem(ctx context.Context, item *domain.FoodItem) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	ListVariants(ctx context.Context, itemID uuid.UUID) ([]domain.FoodVariant, error)
	ReplaceVariants(ctx context.Context, itemID uuid.UUID, variants []domain.FoodVariant) error
}

// OfferRepository defines the contract for offer persistence.
type OfferRepository interface {
	Create(ctx context.Context, offer *domain.Offer) error
	GetByID(ctx context.Context, offerID uuid.UUID) (*domain.Offer, error)
	ListActive(ctx context.Context) ([]domain.Offer, error)
	Update(ctx context.Context, offer *domain.Offer) error
	Delete(ctx context.Context, offerID uuid.UUID) error

	ListInterestTags(ctx context.Context) ([]domain.OfferInterestTag, error)
}
