package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"entrega/internal/domain"
	"entrega/internal/port"
)

// UpdateProfileInput carries the mutable profile fields. Nil fields are left
// untouched.
type UpdateProfileInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// ProfileOutput is a user together with their linked social accounts.
type ProfileOutput struct {
	User           *domain.User           `json:"user"`
	SocialAccounts []domain.SocialAccount `json:"social_accounts"`
}

// UserService exposes profile operations.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	DeactivateUser(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	userRepo   port.UserRepository
	socialRepo port.SocialAccountRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(userRepo port.UserRepository, socialRepo port.SocialAccountRepository) UserService {
	return &userService{userRepo: userRepo, socialRepo: socialRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	accounts, err := s.socialRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}
	return &ProfileOutput{User: user, SocialAccounts: accounts}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	if input.FirstName != nil || input.LastName != nil {
		if err := s.userRepo.UpdateNames(ctx, userID, input.FirstName, input.LastName); err != nil {
			return nil, err
		}
	}
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context, offset, limit int) ([]domain.User, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.List(ctx, offset, limit)
}

func (s *userService) DeactivateUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.IsActive = false
	return s.userRepo.Update(ctx, user)
}
