package service

import (
	"context"
	"errors"
	"fmt"

	"entrega/internal/auth"
	"entrega/internal/domain"
	"entrega/internal/port"
)

// SocialLoginInput is the DTO for social login requests. FirstName and
// LastName are fallbacks used only when the provider profile omits them.
// AccessToken is accepted for wire compatibility; both supported providers
// verify the ID token.
type SocialLoginInput struct {
	Provider    string `json:"provider" binding:"required"`
	IDToken     string `json:"id_token"`
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

// SocialLoginOutput contains the results of a social login.
type SocialLoginOutput struct {
	User      *domain.User        `json:"user"`
	Tokens    *TokenPair          `json:"tokens"`
	Provider  domain.AuthProvider `json:"provider"`
	IsNewUser bool                `json:"is_new"`
}

// SocialAuthService verifies provider ID tokens and reconciles the verified
// identity against local accounts.
type SocialAuthService interface {
	SocialLogin(ctx context.Context, input SocialLoginInput) (*SocialLoginOutput, error)
}

type socialAuthService struct {
	dispatcher  *auth.Dispatcher
	userRepo    port.UserRepository
	socialRepo  port.SocialAccountRepository
	authService AuthService
}

// NewSocialAuthService creates a new SocialAuthService implementation.
func NewSocialAuthService(
	dispatcher *auth.Dispatcher,
	userRepo port.UserRepository,
	socialRepo port.SocialAccountRepository,
	authService AuthService,
) SocialAuthService {
	return &socialAuthService{
		dispatcher:  dispatcher,
		userRepo:    userRepo,
		socialRepo:  socialRepo,
		authService: authService,
	}
}

func (s *socialAuthService) SocialLogin(ctx context.Context, input SocialLoginInput) (*SocialLoginOutput, error) {
	role := domain.UserRole(input.Role)
	if input.Role == "" {
		role = domain.RoleUser
	}
	if !domain.SelfServeRoles[role] {
		return nil, domain.ErrInvalidRole
	}

	profile, err := s.dispatcher.Verify(ctx, input.Provider, input.IDToken)
	if err != nil {
		return nil, err
	}
	if profile.FirstName == "" {
		profile.FirstName = input.FirstName
	}
	if profile.LastName == "" {
		profile.LastName = input.LastName
	}

	user, isNew, err := s.reconcile(ctx, profile, role)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	tokens, err := s.authService.GenerateTokenPairForUser(user)
	if err != nil {
		return nil, err
	}
	return &SocialLoginOutput{User: user, Tokens: tokens, Provider: profile.Provider, IsNewUser: isNew}, nil
}

// reconcile maps a verified provider identity onto a local account. The
// verified email resolves the user; the (provider, subject) link is then
// found-or-created, and an existing link pointing at a different user is
// repaired onto the email-resolved one. Races between concurrent first
// logins are decided by the unique constraints, with the loser retrying as
// a lookup.
func (s *socialAuthService) reconcile(ctx context.Context, profile *port.SocialProfile, role domain.UserRole) (*domain.User, bool, error) {
	user, isNew, err := s.userForEmail(ctx, profile, role)
	if err != nil {
		return nil, false, err
	}

	account, err := s.socialRepo.GetByProviderSubject(ctx, profile.Provider, profile.Subject)
	switch {
	case err == nil:
		if account.UserID != user.ID {
			if err := s.socialRepo.Relink(ctx, account.ID, user.ID); err != nil {
				return nil, false, fmt.Errorf("socialAuth.reconcile relink: %w", err)
			}
		}
		return user, isNew, nil

	case errors.Is(err, domain.ErrNotFound):
		link := &domain.SocialAccount{
			UserID:   user.ID,
			Provider: profile.Provider,
			Subject:  profile.Subject,
		}
		if err := s.socialRepo.Create(ctx, link); err != nil {
			if errors.Is(err, domain.ErrDuplicateSocialAccount) {
				// Lost the insert race to a concurrent login with the
				// same identity. The winner's row exists now; repair it
				// if it points elsewhere.
				if err := s.relinkExisting(ctx, profile, user); err != nil {
					return nil, false, err
				}
				return user, isNew, nil
			}
			return nil, false, fmt.Errorf("socialAuth.reconcile link: %w", err)
		}
		return user, isNew, nil

	default:
		return nil, false, fmt.Errorf("socialAuth.reconcile: %w", err)
	}
}

func (s *socialAuthService) relinkExisting(ctx context.Context, profile *port.SocialProfile, user *domain.User) error {
	account, err := s.socialRepo.GetByProviderSubject(ctx, profile.Provider, profile.Subject)
	if err != nil {
		return fmt.Errorf("socialAuth.relinkExisting: %w", err)
	}
	if account.UserID == user.ID {
		return nil
	}
	if err := s.socialRepo.Relink(ctx, account.ID, user.ID); err != nil {
		return fmt.Errorf("socialAuth.relinkExisting: %w", err)
	}
	return nil
}

// userForEmail finds the account holding the verified email, or creates a
// social-only account when none exists. Created accounts carry no password
// hash, so password login stays disabled for them.
func (s *socialAuthService) userForEmail(ctx context.Context, profile *port.SocialProfile, role domain.UserRole) (*domain.User, bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, profile.Email)
	if err == nil {
		s.backfillNames(ctx, user, profile)
		return user, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("socialAuth.userForEmail: %w", err)
	}

	user = &domain.User{
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Role:      role,
		IsActive:  true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			// A concurrent registration won the email. Adopt that account.
			existing, err := s.userRepo.GetByEmail(ctx, profile.Email)
			if err != nil {
				return nil, false, fmt.Errorf("socialAuth.userForEmail: %w", err)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("socialAuth.userForEmail: %w", err)
	}
	return user, true, nil
}

// backfillNames fills blank name fields from the provider profile. Names the
// user already has are never overwritten; a failed backfill never fails the
// login.
func (s *socialAuthService) backfillNames(ctx context.Context, user *domain.User, profile *port.SocialProfile) {
	var first, last *string
	if user.FirstName == "" && profile.FirstName != "" {
		first = &profile.FirstName
	}
	if user.LastName == "" && profile.LastName != "" {
		last = &profile.LastName
	}
	if first == nil && last == nil {
		return
	}
	if err := s.userRepo.UpdateNames(ctx, user.ID, first, last); err != nil {
		return
	}
	if first != nil {
		user.FirstName = *first
	}
	if last != nil {
		user.LastName = *last
	}
}
