package apple

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entrega/internal/domain"
)

const testClientID = "com.example.entrega"

type appleFixture struct {
	key      *rsa.PrivateKey
	kid      string
	server   *httptest.Server
	requests int
	verifier *Verifier
}

func newAppleFixture(t *testing.T, clientID string) *appleFixture {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	f := &appleFixture{key: key, kid: "test-kid-1"}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests++
		_ = json.NewEncoder(w).Encode(jwkSet{Keys: []jwk{{
			Kty: "RSA",
			Kid: f.kid,
			Use: "sig",
			Alg: "RS256",
			N:   base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.PublicKey.E)).Bytes()),
		}}})
	}))
	t.Cleanup(f.server.Close)

	f.verifier = NewVerifier(clientID, time.Second, time.Hour)
	f.verifier.keys = newKeyCache(f.server.URL, time.Second, time.Hour)
	return f
}

func (f *appleFixture) signToken(t *testing.T, kid string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	signed, err := token.SignedString(f.key)
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"iss":         "https://appleid.apple.com",
		"aud":         testClientID,
		"sub":         "apple-uid-9",
		"email":       "maria@example.com",
		"given_name":  "Maria",
		"family_name": "Reyes",
		"exp":         time.Now().Add(time.Hour).Unix(),
		"iat":         time.Now().Unix(),
	}
}

func TestVerifyIDToken_Valid(t *testing.T) {
	f := newAppleFixture(t, testClientID)
	idToken := f.signToken(t, f.kid, validClaims())

	profile, err := f.verifier.VerifyIDToken(context.Background(), idToken)
	require.NoError(t, err)
	assert.Equal(t, domain.AuthProviderApple, profile.Provider)
	assert.Equal(t, "apple-uid-9", profile.Subject)
	assert.Equal(t, "maria@example.com", profile.Email)
	assert.Equal(t, "Maria", profile.FirstName)
	assert.Equal(t, "Reyes", profile.LastName)
}

func TestVerifyIDToken_Misconfigured(t *testing.T) {
	f := newAppleFixture(t, "")
	idToken := f.signToken(t, f.kid, validClaims())

	_, err := f.verifier.VerifyIDToken(context.Background(), idToken)
	requireAppleError(t, err, domain.SocialErrMisconfigured)
	// Configuration errors never reach the network.
	assert.Zero(t, f.requests)
}

func TestVerifyIDToken_Malformed(t *testing.T) {
	f := newAppleFixture(t, testClientID)

	_, err := f.verifier.VerifyIDToken(context.Background(), "not-a-jwt")
	requireAppleError(t, err, domain.SocialErrMalformedToken)
	assert.Zero(t, f.requests)
}

func TestVerifyIDToken_MissingKid(t *testing.T) {
	f := newAppleFixture(t, testClientID)
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, validClaims())
	delete(token.Header, "kid")
	signed, err := token.SignedString(f.key)
	require.NoError(t, err)

	_, err = f.verifier.VerifyIDToken(context.Background(), signed)
	requireAppleError(t, err, domain.SocialErrMalformedToken)
}

func TestVerifyIDToken_UnknownKid(t *testing.T) {
	f := newAppleFixture(t, testClientID)
	idToken := f.signToken(t, "rotated-away-kid", validClaims())

	_, err := f.verifier.VerifyIDToken(context.Background(), idToken)
	requireAppleError(t, err, domain.SocialErrInvalidToken)
	// The cache refetched once trying to find the unknown kid.
	assert.Equal(t, 1, f.requests)
}

func TestVerifyIDToken_KeysUnreachable(t *testing.T) {
	f := newAppleFixture(t, testClientID)
	idToken := f.signToken(t, f.kid, validClaims())
	f.server.Close()

	_, err := f.verifier.VerifyIDToken(context.Background(), idToken)
	requireAppleError(t, err, domain.SocialErrFetchFailed)
}

func TestVerifyIDToken_Expired(t *testing.T) {
	f := newAppleFixture(t, testClientID)
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	idToken := f.signToken(t, f.kid, claims)

	_, err := f.verifier.VerifyIDToken(context.Background(), idToken)
	requireAppleError(t, err, domain.SocialErrInvalidToken)
}

func TestVerifyIDToken_WrongAudience(t *testing.T) {
	f := newAppleFixture(t, testClientID)
	claims := validClaims()
	claims["aud"] = "some.other.app"
	idToken := f.signToken(t, f.kid, claims)

	_, err := f.verifier.VerifyIDToken(context.Background(), idToken)
	requireAppleError(t, err, domain.SocialErrInvalidToken)
}

func TestVerifyIDToken_WrongIssuer(t *testing.T) {
	f := newAppleFixture(t, testClientID)
	claims := validClaims()
	claims["iss"] = "https://evil.example.com"
	idToken := f.signToken(t, f.kid, claims)

	_, err := f.verifier.VerifyIDToken(context.Background(), idToken)
	requireAppleError(t, err, domain.SocialErrInvalidToken)
}

func TestVerifyIDToken_MissingEmail(t *testing.T) {
	f := newAppleFixture(t, testClientID)
	claims := validClaims()
	delete(claims, "email")
	idToken := f.signToken(t, f.kid, claims)

	_, err := f.verifier.VerifyIDToken(context.Background(), idToken)
	requireAppleError(t, err, domain.SocialErrInvalidToken)
}

func TestKeyCache_ServesFromCacheWithinTTL(t *testing.T) {
	f := newAppleFixture(t, testClientID)
	idToken := f.signToken(t, f.kid, validClaims())

	_, err := f.verifier.VerifyIDToken(context.Background(), idToken)
	require.NoError(t, err)
	_, err = f.verifier.VerifyIDToken(context.Background(), idToken)
	require.NoError(t, err)

	assert.Equal(t, 1, f.requests)
}

func requireAppleError(t *testing.T, err error, kind string) {
	t.Helper()
	var verr *domain.SocialVerificationError
	require.True(t, errors.As(err, &verr), "expected SocialVerificationError, got %v", err)
	assert.Equal(t, kind, verr.Kind)
	assert.Equal(t, "apple", verr.Provider)
}
