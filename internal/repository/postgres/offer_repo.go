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

const offerColumns = `o.id, o.business_id, b.name AS business_name, o.title, o.description,
	o.image_url, o.savings_label, o.highlight, o.tag, o.expires_at, o.category,
	o.is_active, o.position, o.created_at, o.updated_at`

type offerRepo struct {
	db *sqlx.DB
}

// NewOfferRepo creates a new PostgreSQL-backed OfferRepository.
func NewOfferRepo(db *sqlx.DB) port.OfferRepository {
	return &offerRepo{db: db}
}

func (r *offerRepo) Create(ctx context.Context, offer *domain.Offer) error {
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	now := time.Now().UTC()
	offer.CreatedAt = now
	offer.UpdatedAt = now

	query := `INSERT INTO offers (id, business_id, title, description, image_url, savings_label,
		highlight, tag, expires_at, category, is_active, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecContext(ctx, query,
		offer.ID, offer.BusinessID, offer.Title, offer.Description, offer.ImageURL,
		offer.SavingsLabel, offer.Highlight, offer.Tag, offer.ExpiresAt, offer.Category,
		offer.IsActive, offer.Position, offer.CreatedAt, offer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("offerRepo.Create: %w", err)
	}
	return nil
}

func (r *offerRepo) GetByID(ctx context.Context, offerID uuid.UUID) (*domain.Offer, error) {
	var offer domain.Offer
	query := fmt.Sprintf(`SELECT %s FROM offers o
		JOIN businesses b ON b.id = o.business_id
		WHERE o.id = $1`, offerColumns)
	err := r.db.GetContext(ctx, &offer, query, offerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("offerRepo.GetByID: %w", err)
	}
	return &offer, nil
}

func (r *offerRepo) ListActive(ctx context.Context) ([]domain.Offer, error) {
	var offers []domain.Offer
	query := fmt.Sprintf(`SELECT %s FROM offers o
		JOIN businesses b ON b.id = o.business_id
		WHERE o.is_active ORDER BY o.position, o.id`, offerColumns)
	if err := r.db.SelectContext(ctx, &offers, query); err != nil {
		return nil, fmt.Errorf("offerRepo.ListActive: %w", err)
	}
	return offers, nil
}

func (r *offerRepo) Update(ctx context.Context, offer *domain.Offer) error {
	offer.UpdatedAt = time.Now().UTC()
	query := `UPDATE offers SET title = $1, description = $2, image_url = $3, savings_label = $4,
		highlight = $5, tag = $6, expires_at = $7, category = $8, is_active = $9,
		position = $10, updated_at = $11
		WHERE id = $12`
	result, err := r.db.ExecContext(ctx, query,
		offer.Title, offer.Description, offer.ImageURL, offer.SavingsLabel,
		offer.Highlight, offer.Tag, offer.ExpiresAt, offer.Category, offer.IsActive,
		offer.Position, offer.UpdatedAt, offer.ID)
	if err != nil {
		return fmt.Errorf("offerRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *offerRepo) Delete(ctx context.Context, offerID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM offers WHERE id = $1", offerID)
	if err != nil {
		return fmt.Errorf("offerRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *offerRepo) ListInterestTags(ctx context.Context) ([]domain.OfferInterestTag, error) {
	var tags []domain.OfferInterestTag
	err := r.db.SelectContext(ctx, &tags,
		"SELECT * FROM offer_interest_tags ORDER BY position, name")
	if err != nil {
		return nil, fmt.Errorf("offerRepo.ListInterestTags: %w", err)
	}
	return tags, nil
}
