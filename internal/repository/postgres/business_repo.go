package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"entrega/internal/domain"
	"entrega/internal/port"
)

const businessColumns = `b.id, b.category_id, c.name AS category_name, b.name, b.tagline,
	b.description, b.address, b.latitude, b.longitude, b.image_url, b.hero_image_url,
	b.average_rating, b.review_count, b.delivery_available,
	b.delivery_time_minutes_min, b.delivery_time_minutes_max, b.created_at`

type businessRepo struct {
	db *sqlx.DB
}

// NewBusinessRepo creates a new PostgreSQL-backed BusinessRepository.
func NewBusinessRepo(db *sqlx.DB) port.BusinessRepository {
	return &businessRepo{db: db}
}

func (r *businessRepo) Create(ctx context.Context, business *domain.Business) error {
	if business.ID == uuid.Nil {
		business.ID = uuid.New()
	}
	query := `INSERT INTO businesses (id, category_id, name, tagline, description, address,
		latitude, longitude, image_url, hero_image_url, average_rating, review_count,
		delivery_available, delivery_time_minutes_min, delivery_time_minutes_max, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())`

	_, err := r.db.ExecContext(ctx, query,
		business.ID, business.CategoryID, business.Name, business.Tagline,
		business.Description, business.Address, business.Latitude, business.Longitude,
		business.ImageURL, business.HeroImageURL, business.AverageRating,
		business.ReviewCount, business.DeliveryAvailable,
		business.DeliveryTimeMinutesMin, business.DeliveryTimeMinutesMax)
	if err != nil {
		return fmt.Errorf("businessRepo.Create: %w", err)
	}
	return nil
}

func (r *businessRepo) GetByID(ctx context.Context, businessID uuid.UUID) (*domain.Business, error) {
	var business domain.Business
	query := fmt.Sprintf(`SELECT %s FROM businesses b
		LEFT JOIN business_categories c ON c.id = b.category_id
		WHERE b.id = $1`, businessColumns)
	err := r.db.GetContext(ctx, &business, query, businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("businessRepo.GetByID: %w", err)
	}
	return &business, nil
}

func (r *businessRepo) List(ctx context.Context, offset, limit int) ([]domain.Business, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM businesses"); err != nil {
		return nil, 0, fmt.Errorf("businessRepo.List count: %w", err)
	}

	var businesses []domain.Business
	query := fmt.Sprintf(`SELECT %s FROM businesses b
		LEFT JOIN business_categories c ON c.id = b.category_id
		ORDER BY b.name LIMIT $1 OFFSET $2`, businessColumns)
	if err := r.db.SelectContext(ctx, &businesses, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("businessRepo.List: %w", err)
	}
	return businesses, total, nil
}

func (r *businessRepo) ListFeatured(ctx context.Context, limit int) ([]domain.Business, error) {
	var businesses []domain.Business
	query := fmt.Sprintf(`SELECT %s FROM businesses b
		LEFT JOIN business_categories c ON c.id = b.category_id
		ORDER BY b.average_rating DESC NULLS LAST, b.review_count DESC LIMIT $1`, businessColumns)
	if err := r.db.SelectContext(ctx, &businesses, query, limit); err != nil {
		return nil, fmt.Errorf("businessRepo.ListFeatured: %w", err)
	}
	return businesses, nil
}

func (r *businessRepo) ListByDeliveryETA(ctx context.Context, limit int) ([]domain.Business, error) {
	var businesses []domain.Business
	query := fmt.Sprintf(`SELECT %s FROM businesses b
		LEFT JOIN business_categories c ON c.id = b.category_id
		ORDER BY b.delivery_time_minutes_min ASC NULLS LAST, b.name LIMIT $1`, businessColumns)
	if err := r.db.SelectContext(ctx, &businesses, query, limit); err != nil {
		return nil, fmt.Errorf("businessRepo.ListByDeliveryETA: %w", err)
	}
	return businesses, nil
}

func (r *businessRepo) Update(ctx context.Context, business *domain.Business) error {
	query := `UPDATE businesses SET category_id = $1, name = $2, tagline = $3, description = $4,
		address = $5, latitude = $6, longitude = $7, image_url = $8, hero_image_url = $9,
		average_rating = $10, review_count = $11, delivery_available = $12,
		delivery_time_minutes_min = $13, delivery_time_minutes_max = $14
		WHERE id = $15`
	result, err := r.db.ExecContext(ctx, query,
		business.CategoryID, business.Name, business.Tagline, business.Description,
		business.Address, business.Latitude, business.Longitude, business.ImageURL,
		business.HeroImageURL, business.AverageRating, business.ReviewCount,
		business.DeliveryAvailable, business.DeliveryTimeMinutesMin,
		business.DeliveryTimeMinutesMax, business.ID)
	if err != nil {
		return fmt.Errorf("businessRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *businessRepo) Delete(ctx context.Context, businessID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM businesses WHERE id = $1", businessID)
	if err != nil {
		return fmt.Errorf("businessRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *businessRepo) ListCategories(ctx context.Context) ([]domain.BusinessCategory, error) {
	var categories []domain.BusinessCategory
	err := r.db.SelectContext(ctx, &categories,
		"SELECT * FROM business_categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("businessRepo.ListCategories: %w", err)
	}
	return categories, nil
}

func (r *businessRepo) ListHours(ctx context.Context, businessID uuid.UUID) ([]domain.BusinessHours, error) {
	var hours []domain.BusinessHours
	err := r.db.SelectContext(ctx, &hours,
		"SELECT * FROM business_hours WHERE business_id = $1 ORDER BY day_of_week", businessID)
	if err != nil {
		return nil, fmt.Errorf("businessRepo.ListHours: %w", err)
	}
	return hours, nil
}

func (r *businessRepo) ReplaceHours(ctx context.Context, businessID uuid.UUID, hours []domain.BusinessHours) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("businessRepo.ReplaceHours begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM business_hours WHERE business_id = $1", businessID); err != nil {
		return fmt.Errorf("businessRepo.ReplaceHours delete: %w", err)
	}
	for i := range hours {
		h := &hours[i]
		if h.ID == uuid.Nil {
			h.ID = uuid.New()
		}
		h.BusinessID = businessID
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO business_hours (id, business_id, day_of_week, open_time, close_time)
			 VALUES ($1, $2, $3, $4, $5)`,
			h.ID, h.BusinessID, h.DayOfWeek, h.OpenTime, h.CloseTime); err != nil {
			return fmt.Errorf("businessRepo.ReplaceHours insert: %w", err)
		}
	}
	return tx.Commit()
}
