package auth

import (
	"context"
	"fmt"

	"entrega/internal/domain"
	"entrega/internal/port"
)

// Dispatcher selects the verification strategy for a social provider and
// enforces provider-independent preconditions before any strategy runs.
// It holds no state beyond the verifier table and performs no I/O itself.
type Dispatcher struct {
	verifiers map[domain.AuthProvider]port.SocialTokenVerifier
}

// NewDispatcher registers the given verifiers keyed by provider name.
func NewDispatcher(verifiers ...port.SocialTokenVerifier) *Dispatcher {
	m := make(map[domain.AuthProvider]port.SocialTokenVerifier, len(verifiers))
	for _, v := range verifiers {
		m[v.Provider()] = v
	}
	return &Dispatcher{verifiers: m}
}

// Verify validates the raw bearer token for the named provider and returns
// the normalized profile. Missing tokens and unknown providers fail here,
// before any verifier runs, so they are distinguishable from cryptographic
// failures.
func (d *Dispatcher) Verify(ctx context.Context, provider, idToken string) (*port.SocialProfile, error) {
	v, ok := d.verifiers[domain.AuthProvider(provider)]
	if !ok {
		return nil, domain.NewSocialVerificationError(
			provider, domain.SocialErrUnsupportedProvider, "provider is not supported")
	}
	if idToken == "" {
		return nil, domain.NewSocialVerificationError(
			provider, domain.SocialErrMissingToken,
			fmt.Sprintf("%s login requires an identity token", provider))
	}
	return v.VerifyIDToken(ctx, idToken)
}
