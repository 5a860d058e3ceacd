package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"entrega/internal/domain"
	"entrega/internal/port"
)

const foodItemColumns = `f.id, f.business_id, b.name AS business_name, f.section_id, f.name,
	f.description, f.image_url, f.price, f.currency, f.preparation_time_minutes,
	f.is_available, f.is_discounted, f.discount_percentage, f.original_price,
	f.created_at, f.updated_at`

type menuRepo struct {
	db *sqlx.DB
}

// NewMenuRepo creates a new PostgreSQL-backed MenuRepository.
func NewMenuRepo(db *sqlx.DB) port.MenuRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) CreateSection(ctx context.Context, section *domain.MenuSection) error {
	if section.ID == uuid.Nil {
		section.ID = uuid.New()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO menu_sections (id, business_id, name, description, position)
		 VALUES ($1, $2, $3, $4, $5)`,
		section.ID, section.BusinessID, section.Name, section.Description, section.Position)
	if err != nil {
		return fmt.Errorf("menuRepo.CreateSection: %w", err)
	}
	return nil
}

func (r *menuRepo) ListSections(ctx context.Context, businessID uuid.UUID) ([]domain.MenuSection, error) {
	var sections []domain.MenuSection
	err := r.db.SelectContext(ctx, &sections,
		"SELECT * FROM menu_sections WHERE business_id = $1 ORDER BY position, id", businessID)
	if err != nil {
		return nil, fmt.Errorf("menuRepo.ListSections: %w", err)
	}
	return sections, nil
}

func (r *menuRepo) CreateItem(ctx context.Context, item *domain.FoodItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.Currency == "" {
		item.Currency = domain.CurrencyFallback
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `INSERT INTO food_items (id, business_id, section_id, name, description, image_url,
		price, currency, preparation_time_minutes, is_available, is_discounted,
		discount_percentage, original_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.BusinessID, item.SectionID, item.Name, item.Description,
		item.ImageURL, item.Price, item.Currency, item.PreparationTimeMinutes,
		item.IsAvailable, item.IsDiscounted, item.DiscountPercentage,
		item.OriginalPrice, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("menuRepo.CreateItem: %w", err)
	}
	return nil
}

func (r *menuRepo) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.FoodItem, error) {
	var item domain.FoodItem
	query := fmt.Sprintf(`SELECT %s FROM food_items f
		JOIN businesses b ON b.id = f.business_id
		WHERE f.id = $1`, foodItemColumns)
	err := r.db.GetContext(ctx, &item, query, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("menuRepo.GetItem: %w", err)
	}
	return &item, nil
}

func (r *menuRepo) ListItemsByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.FoodItem, error) {
	var items []domain.FoodItem
	query := fmt.Sprintf(`SELECT %s FROM food_items f
		JOIN businesses b ON b.id = f.business_id
		WHERE f.business_id = $1 ORDER BY f.section_id, f.name`, foodItemColumns)
	if err := r.db.SelectContext(ctx, &items, query, businessID); err != nil {
		return nil, fmt.Errorf("menuRepo.ListItemsByBusiness: %w", err)
	}
	return items, nil
}

func (r *menuRepo) ListAvailableItems(ctx context.Context, offset, limit int) ([]domain.FoodItem, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM food_items WHERE is_available")
	if err != nil {
		return nil, 0, fmt.Errorf("menuRepo.ListAvailableItems count: %w", err)
	}

	var items []domain.FoodItem
	query := fmt.Sprintf(`SELECT %s FROM food_items f
		JOIN businesses b ON b.id = f.business_id
		WHERE f.is_available ORDER BY f.name LIMIT $1 OFFSET $2`, foodItemColumns)
	if err := r.db.SelectContext(ctx, &items, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("menuRepo.ListAvailableItems: %w", err)
	}
	return items, total, nil
}

func (r *menuRepo) ListMostOrdered(ctx context.Context, limit int) ([]domain.FoodItem, error) {
	var items []domain.FoodItem
	query := fmt.Sprintf(`SELECT %s FROM food_items f
		JOIN businesses b ON b.id = f.business_id
		WHERE f.is_available
		ORDER BY f.is_discounted DESC, f.discount_percentage DESC NULLS LAST, f.created_at DESC
		LIMIT $1`, foodItemColumns)
	if err := r.db.SelectContext(ctx, &items, query, limit); err != nil {
		return nil, fmt.Errorf("menuRepo.ListMostOrdered: %w", err)
	}
	return items, nil
}

func (r *menuRepo) ListFeaturedProducts(ctx context.Context, limit int) ([]domain.FoodItem, error) {
	var items []domain.FoodItem
	query := fmt.Sprintf(`SELECT %s FROM food_items f
		JOIN businesses b ON b.id = f.business_id
		WHERE f.is_available
		ORDER BY f.discount_percentage DESC NULLS LAST, f.is_discounted DESC, f.name
		LIMIT $1`, foodItemColumns)
	if err := r.db.SelectContext(ctx, &items, query, limit); err != nil {
		return nil, fmt.Errorf("menuRepo.ListFeaturedProducts: %w", err)
	}
	return items, nil
}

func (r *menuRepo) UpdateItem(ctx context.Context, item *domain.FoodItem) error {
	item.UpdatedAt = time.Now().UTC()
	query := `UPDATE food_items SET section_id = $1, name = $2, description = $3, image_url = $4,
		price = $5, currency = $6, preparation_time_minutes = $7, is_available = $8,
		is_discounted = $9, discount_percentage = $10, original_price = $11, updated_at = $12
		WHERE id = $13`
	result, err := r.db.ExecContext(ctx, query,
		item.SectionID, item.Name, item.Description, item.ImageURL, item.Price,
		item.Currency, item.PreparationTimeMinutes, item.IsAvailable, item.IsDiscounted,
		item.DiscountPercentage, item.OriginalPrice, item.UpdatedAt, item.ID)
	if err != nil {
		return fmt.Errorf("menuRepo.UpdateItem: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *menuRepo) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM food_items WHERE id = $1", itemID)
	if err != nil {
		return fmt.Errorf("menuRepo.DeleteItem: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *menuRepo) ListVariants(ctx context.Context, itemID uuid.UUID) ([]domain.FoodVariant, error) {
	var variants []domain.FoodVariant
	err := r.db.SelectContext(ctx, &variants,
		"SELECT * FROM food_variants WHERE food_item_id = $1 ORDER BY id", itemID)
	if err != nil {
		return nil, fmt.Errorf("menuRepo.ListVariants: %w", err)
	}
	return variants, nil
}

func (r *menuRepo) ReplaceVariants(ctx context.Context, itemID uuid.UUID, variants []domain.FoodVariant) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("menuRepo.ReplaceVariants begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM food_variants WHERE food_item_id = $1", itemID); err != nil {
		return fmt.Errorf("menuRepo.ReplaceVariants delete: %w", err)
	}
	for i := range variants {
		v := &variants[i]
		if v.ID == uuid.Nil {
			v.ID = uuid.New()
		}
		v.FoodItemID = itemID
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO food_variants (id, food_item_id, name, price, is_available)
			 VALUES ($1, $2, $3, $4, $5)`,
			v.ID, v.FoodItemID, v.Name, v.Price, v.IsAvailable); err != nil {
			return fmt.Errorf("menuRepo.ReplaceVariants insert: %w", err)
		}
	}
	return tx.Commit()
}
