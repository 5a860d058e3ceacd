package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"entrega/internal/domain"
	"entrega/internal/port"
)

const bcryptCost = 12

// RegisterInput is the DTO for registration requests.
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
}

// RegisterOutput contains the results of a registration.
type RegisterOutput struct {
	User   *domain.User `json:"user"`
	Tokens *TokenPair   `json:"tokens"`
}

// RegistrationService creates password-backed accounts.
type RegistrationService interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
}

type registrationService struct {
	userRepo    port.UserRepository
	authService AuthService
}

// NewRegistrationService creates a new RegistrationService implementation.
func NewRegistrationService(userRepo port.UserRepository, authService AuthService) RegistrationService {
	return &registrationService{userRepo: userRepo, authService: authService}
}

func (s *registrationService) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	role := domain.UserRole(input.Role)
	if input.Role == "" {
		role = domain.RoleUser
	}
	if !domain.SelfServeRoles[role] {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("registration.Register hash: %w", err)
	}

	first, last := splitName(input.Name)
	user := &domain.User{
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: string(hash),
		FirstName:    first,
		LastName:     last,
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.authService.GenerateTokenPairForUser(user)
	if err != nil {
		return nil, err
	}
	return &RegisterOutput{User: user, Tokens: tokens}, nil
}

// splitName breaks a display name into first and last name at the first
// space. Everything after the first word becomes the last name.
func splitName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}
