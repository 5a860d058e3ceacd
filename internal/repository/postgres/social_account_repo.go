package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"entrega/internal/domain"
	"entrega/internal/port"
)

type socialAccountRepo struct {
	db *sqlx.DB
}

// NewSocialAccountRepo creates a new PostgreSQL-backed SocialAccountRepository.
func NewSocialAccountRepo(db *sqlx.DB) port.SocialAccountRepository {
	return &socialAccountRepo{db: db}
}

func (r *socialAccountRepo) Create(ctx context.Context, account *domain.SocialAccount) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	query := `INSERT INTO social_accounts (id, user_id, provider, subject, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.UserID, account.Provider, account.Subject,
		account.CreatedAt, account.UpdatedAt)
	if err != nil {
		// The (provider, subject) unique constraint decides races between
		// concurrent first logins; losers retry as a lookup.
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateSocialAccount
		}
		return fmt.Errorf("socialAccountRepo.Create: %w", err)
	}
	return nil
}

func (r *socialAccountRepo) GetByProviderSubject(ctx context.Context, provider domain.AuthProvider, subject string) (*domain.SocialAccount, error) {
	var account domain.SocialAccount
	err := r.db.GetContext(ctx, &account,
		"SELECT * FROM social_accounts WHERE provider = $1 AND subject = $2", provider, subject)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("socialAccountRepo.GetByProviderSubject: %w", err)
	}
	return &account, nil
}

func (r *socialAccountRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SocialAccount, error) {
	var accounts []domain.SocialAccount
	err := r.db.SelectContext(ctx, &accounts,
		"SELECT * FROM social_accounts WHERE user_id = $1 ORDER BY created_at", userID)
	if err != nil {
		return nil, fmt.Errorf("socialAccountRepo.ListByUser: %w", err)
	}
	return accounts, nil
}

func (r *socialAccountRepo) Relink(ctx context.Context, accountID, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE social_accounts SET user_id = $1, updated_at = NOW() WHERE id = $2",
		userID, accountID)
	if err != nil {
		return fmt.Errorf("socialAccountRepo.Relink: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
