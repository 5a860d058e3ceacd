package apple

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"entrega/internal/domain"
	"entrega/internal/port"
)

const (
	defaultKeysURL = "https://appleid.apple.com/auth/keys"
	appleIssuer    = "https://appleid.apple.com"

	defaultKeysTimeout = 5 * time.Second
	defaultKeysTTL     = time.Hour
)

// Verifier validates Apple identity tokens. Apple publishes no managed
// verification endpoint, so verification is done locally: the signing key is
// looked up by kid in Apple's JWKS and the token's signature, expiry,
// audience, and issuer are checked against it.
type Verifier struct {
	clientID string
	keys     *keyCache
}

// NewVerifier creates an Apple identity token verifier. keysTimeout bounds
// the JWKS fetch; keysTTL bounds how long fetched keys are trusted.
func NewVerifier(clientID string, keysTimeout, keysTTL time.Duration) *Verifier {
	if keysTimeout <= 0 {
		keysTimeout = defaultKeysTimeout
	}
	if keysTTL <= 0 {
		keysTTL = defaultKeysTTL
	}
	return &Verifier{
		clientID: clientID,
		keys:     newKeyCache(defaultKeysURL, keysTimeout, keysTTL),
	}
}

func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*port.SocialProfile, error) {
	// Configuration is checked before any network call.
	if v.clientID == "" {
		return nil, v.fail(domain.SocialErrMisconfigured, "apple client identifier is not configured")
	}

	// Unverified header parse to learn which published key signed the token.
	token, _, err := jwt.NewParser().ParseUnverified(idToken, jwt.MapClaims{})
	if err != nil {
		return nil, v.fail(domain.SocialErrMalformedToken, "invalid apple identity token header")
	}
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return nil, v.fail(domain.SocialErrMalformedToken, "apple identity token missing key id")
	}

	key, err := v.keys.get(ctx, kid)
	if err != nil {
		return nil, v.fail(domain.SocialErrFetchFailed, "unable to fetch apple public keys")
	}
	if key == nil {
		return nil, v.fail(domain.SocialErrInvalidToken, "unable to match apple signing key")
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(v.clientID),
		jwt.WithIssuer(appleIssuer),
		jwt.WithExpirationRequired(),
	)
	claims := jwt.MapClaims{}
	if _, err := parser.ParseWithClaims(idToken, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	}); err != nil {
		return nil, v.fail(domain.SocialErrInvalidToken, "apple token validation failed")
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, v.fail(domain.SocialErrInvalidToken, "apple token did not include an email address")
	}
	subject, _ := claims["sub"].(string)
	if subject == "" {
		return nil, v.fail(domain.SocialErrInvalidToken, "apple token missing subject identifier")
	}
	firstName, _ := claims["given_name"].(string)
	lastName, _ := claims["family_name"].(string)

	return &port.SocialProfile{
		Provider:  domain.AuthProviderApple,
		Subject:   subject,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

func (v *Verifier) Provider() domain.AuthProvider {
	return domain.AuthProviderApple
}

func (v *Verifier) fail(kind, msg string) *domain.SocialVerificationError {
	return domain.NewSocialVerificationError(string(domain.AuthProviderApple), kind, msg)
}

// Compile-time check.
var _ port.SocialTokenVerifier = (*Verifier)(nil)
