package port

import (
	"context"

	"entrega/internal/domain"
)

// SocialProfile is the normalized output of a provider verifier. It is
// produced per verification call and never persisted.
type SocialProfile struct {
	Provider  domain.AuthProvider
	Subject   string
	Email     string
	FirstName string
	LastName  string
}

// SocialTokenVerifier validates an ID token from a social identity provider
// against that provider's trust anchors. Implementations return only
// *domain.SocialVerificationError on failure; no underlying library or
// network error type crosses this boundary.
type SocialTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*SocialProfile, error)
	Provider() domain.AuthProvider
}
