package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User is an account holder on the marketplace.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// FullName returns the display name assembled from first and last name.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// SocialAccount links an external identity-provider account to a local user.
// The (provider, subject) pair is unique: one external identity maps to
// exactly one user per provider.
type SocialAccount struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	UserID    uuid.UUID    `db:"user_id" json:"user_id"`
	Provider  AuthProvider `db:"provider" json:"provider"`
	Subject   string       `db:"subject" json:"subject"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}

// BusinessCategory groups businesses for discovery (e.g. "Pizza", "Bakery").
type BusinessCategory struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
}

// Business is a merchant storefront on the marketplace.
type Business struct {
	ID                     uuid.UUID  `db:"id" json:"id"`
	CategoryID             *uuid.UUID `db:"category_id" json:"category_id"`
	CategoryName           *string    `db:"category_name" json:"category_name,omitempty"`
	Name                   string     `db:"name" json:"name"`
	Tagline                string     `db:"tagline" json:"tagline"`
	Description            string     `db:"description" json:"description"`
	Address                string     `db:"address" json:"address"`
	Latitude               *float64   `db:"latitude" json:"latitude"`
	Longitude              *float64   `db:"longitude" json:"longitude"`
	ImageURL               string     `db:"image_url" json:"image_url"`
	HeroImageURL           string     `db:"hero_image_url" json:"hero_image_url"`
	AverageRating          *float64   `db:"average_rating" json:"average_rating"`
	ReviewCount            int        `db:"review_count" json:"review_count"`
	DeliveryAvailable      bool       `db:"delivery_available" json:"delivery_available"`
	DeliveryTimeMinutesMin *int       `db:"delivery_time_minutes_min" json:"delivery_time_minutes_min"`
	DeliveryTimeMinutesMax *int       `db:"delivery_time_minutes_max" json:"delivery_time_minutes_max"`
	CreatedAt              time.Time  `db:"created_at" json:"created_at"`
}

// DeliveryETA renders the delivery window as a label like "20-35 min".
// Empty when no window is configured.
func (b *Business) DeliveryETA() string {
	switch {
	case b.DeliveryTimeMinutesMin != nil && b.DeliveryTimeMinutesMax != nil:
		return fmt.Sprintf("%d-%d min", *b.DeliveryTimeMinutesMin, *b.DeliveryTimeMinutesMax)
	case b.DeliveryTimeMinutesMin != nil:
		return fmt.Sprintf("%d min", *b.DeliveryTimeMinutesMin)
	case b.DeliveryTimeMinutesMax != nil:
		return fmt.Sprintf("%d min", *b.DeliveryTimeMinutesMax)
	default:
		return ""
	}
}

// BusinessHours is one weekday's opening window for a business.
// Times are stored as "HH:MM" strings.
type BusinessHours struct {
	ID         uuid.UUID `db:"id" json:"id"`
	BusinessID uuid.UUID `db:"business_id" json:"business_id"`
	DayOfWeek  int       `db:"day_of_week" json:"day_of_week"`
	OpenTime   string    `db:"open_time" json:"open_time"`
	CloseTime  string    `db:"close_time" json:"close_time"`
}

// MenuSection is an ordered grouping of food items within a business menu.
type MenuSection struct {
	ID          uuid.UUID `db:"id" json:"id"`
	BusinessID  uuid.UUID `db:"business_id" json:"business_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Position    int       `db:"position" json:"position"`
}

// FoodItem is a sellable product on a business menu.
type FoodItem struct {
	ID                     uuid.UUID  `db:"id" json:"id"`
	BusinessID             uuid.UUID  `db:"business_id" json:"business_id"`
	BusinessName           string     `db:"business_name" json:"business_name,omitempty"`
	SectionID              *uuid.UUID `db:"section_id" json:"section_id"`
	Name                   string     `db:"name" json:"name"`
	Description            string     `db:"description" json:"description"`
	ImageURL               string     `db:"image_url" json:"image_url"`
	Price                  float64    `db:"price" json:"price"`
	Currency               string     `db:"currency" json:"currency"`
	PreparationTimeMinutes *int       `db:"preparation_time_minutes" json:"preparation_time_minutes"`
	IsAvailable            bool       `db:"is_available" json:"is_available"`
	IsDiscounted           bool       `db:"is_discounted" json:"is_discounted"`
	DiscountPercentage     *float64   `db:"discount_percentage" json:"discount_percentage"`
	OriginalPrice          *float64   `db:"original_price" json:"original_price"`
	CreatedAt              time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time  `db:"updated_at" json:"updated_at"`
}

// FoodVariant is a size or portion option of a food item (e.g. Small, Large).
type FoodVariant struct {
	ID          uuid.UUID `db:"id" json:"id"`
	FoodItemID  uuid.UUID `db:"food_item_id" json:"food_item_id"`
	Name        string    `db:"name" json:"name"`
	Price       float64   `db:"price" json:"price"`
	IsAvailable bool      `db:"is_available" json:"is_available"`
}

// Offer is a promotional placement on the discovery surfaces.
type Offer struct {
	ID           uuid.UUID     `db:"id" json:"id"`
	BusinessID   uuid.UUID     `db:"business_id" json:"business_id"`
	BusinessName string        `db:"business_name" json:"business_name,omitempty"`
	Title        string        `db:"title" json:"title"`
	Description  string        `db:"description" json:"description"`
	ImageURL     string        `db:"image_url" json:"image_url"`
	SavingsLabel string        `db:"savings_label" json:"savings_label"`
	Highlight    string        `db:"highlight" json:"highlight"`
	Tag          string        `db:"tag" json:"tag"`
	ExpiresAt    *time.Time    `db:"expires_at" json:"expires_at"`
	Category     OfferCategory `db:"category" json:"category"`
	IsActive     bool          `db:"is_active" json:"is_active"`
	Position     int           `db:"position" json:"position"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}

// OfferInterestTag is a browsable interest label shown alongside offers.
type OfferInterestTag struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Name     string    `db:"name" json:"name"`
	Position int       `db:"position" json:"position"`
}
