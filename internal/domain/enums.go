package domain

// UserRole defines the account roles on the marketplace.
type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleDriver   UserRole = "driver"
	RoleBusiness UserRole = "business"
	RoleAdmin    UserRole = "admin"
)

// SelfServeRoles are the roles a caller may request at registration or
// social login. Admin accounts are never self-assignable.
var SelfServeRoles = map[UserRole]bool{
	RoleUser:     true,
	RoleDriver:   true,
	RoleBusiness: true,
}

// AuthProvider identifies an external identity provider.
type AuthProvider string

const (
	AuthProviderGoogle AuthProvider = "google"
	AuthProviderApple  AuthProvider = "apple"
)

// OfferCategory places an offer on one of the discovery shelves.
type OfferCategory string

const (
	OfferCategoryHero    OfferCategory = "hero"
	OfferCategoryFlash   OfferCategory = "flash"
	OfferCategoryCurated OfferCategory = "curated"
)

// ValidOfferCategories lists the accepted offer categories.
var ValidOfferCategories = map[OfferCategory]bool{
	OfferCategoryHero:    true,
	OfferCategoryFlash:   true,
	OfferCategoryCurated: true,
}

// ImageType represents the allowed media upload types.
type ImageType string

const (
	ImageTypeJPG ImageType = "jpg"
	ImageTypePNG ImageType = "png"
)

// AllowedImageContentTypes maps MIME content types back to ImageType.
var AllowedImageContentTypes = map[string]ImageType{
	"image/jpeg": ImageTypeJPG,
	"image/png":  ImageTypePNG,
}

// CurrencyFallback is the currency assumed when a menu item has none.
const CurrencyFallback = "NIO"
