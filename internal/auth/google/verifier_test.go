package google

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entrega/internal/domain"
)

func newTestVerifier(t *testing.T, handler http.HandlerFunc, clientID string) *Verifier {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	v := NewVerifier(clientID)
	v.endpoint = server.URL
	return v
}

func tokenInfoHandler(info map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(info)
	}
}

func TestVerifyIDToken_Valid(t *testing.T) {
	v := newTestVerifier(t, tokenInfoHandler(map[string]string{
		"iss":         "https://accounts.google.com",
		"aud":         "client-123",
		"sub":         "google-uid-42",
		"email":       "ana@example.com",
		"given_name":  "Ana",
		"family_name": "Lopez",
	}), "client-123")

	profile, err := v.VerifyIDToken(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, domain.AuthProviderGoogle, profile.Provider)
	assert.Equal(t, "google-uid-42", profile.Subject)
	assert.Equal(t, "ana@example.com", profile.Email)
	assert.Equal(t, "Ana", profile.FirstName)
	assert.Equal(t, "Lopez", profile.LastName)
}

func TestVerifyIDToken_ShortIssuerForm(t *testing.T) {
	v := newTestVerifier(t, tokenInfoHandler(map[string]string{
		"iss":   "accounts.google.com",
		"sub":   "google-uid-42",
		"email": "ana@example.com",
	}), "")

	profile, err := v.VerifyIDToken(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "google-uid-42", profile.Subject)
}

func TestVerifyIDToken_WrongIssuer(t *testing.T) {
	v := newTestVerifier(t, tokenInfoHandler(map[string]string{
		"iss":   "https://evil.example.com",
		"sub":   "google-uid-42",
		"email": "ana@example.com",
	}), "")

	_, err := v.VerifyIDToken(context.Background(), "bad-issuer-token")
	requireVerificationError(t, err, domain.SocialErrInvalidToken)
}

func TestVerifyIDToken_WrongAudience(t *testing.T) {
	v := newTestVerifier(t, tokenInfoHandler(map[string]string{
		"iss":   "https://accounts.google.com",
		"aud":   "someone-else",
		"sub":   "google-uid-42",
		"email": "ana@example.com",
	}), "client-123")

	_, err := v.VerifyIDToken(context.Background(), "bad-aud-token")
	requireVerificationError(t, err, domain.SocialErrInvalidToken)
}

func TestVerifyIDToken_AudienceSkippedWithoutClientID(t *testing.T) {
	v := newTestVerifier(t, tokenInfoHandler(map[string]string{
		"iss":   "https://accounts.google.com",
		"aud":   "whatever",
		"sub":   "google-uid-42",
		"email": "ana@example.com",
	}), "")

	_, err := v.VerifyIDToken(context.Background(), "good-token")
	assert.NoError(t, err)
}

func TestVerifyIDToken_MissingEmail(t *testing.T) {
	v := newTestVerifier(t, tokenInfoHandler(map[string]string{
		"iss": "https://accounts.google.com",
		"sub": "google-uid-42",
	}), "")

	_, err := v.VerifyIDToken(context.Background(), "no-email-token")
	requireVerificationError(t, err, domain.SocialErrInvalidToken)
}

func TestVerifyIDToken_MissingSubject(t *testing.T) {
	v := newTestVerifier(t, tokenInfoHandler(map[string]string{
		"iss":   "https://accounts.google.com",
		"email": "ana@example.com",
	}), "")

	_, err := v.VerifyIDToken(context.Background(), "no-sub-token")
	requireVerificationError(t, err, domain.SocialErrInvalidToken)
}

func TestVerifyIDToken_Rejected(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}, "")

	_, err := v.VerifyIDToken(context.Background(), "expired-token")
	requireVerificationError(t, err, domain.SocialErrInvalidToken)
}

func requireVerificationError(t *testing.T, err error, kind string) {
	t.Helper()
	var verr *domain.SocialVerificationError
	require.True(t, errors.As(err, &verr), "expected SocialVerificationError, got %v", err)
	assert.Equal(t, kind, verr.Kind)
	assert.Equal(t, "google", verr.Provider)
}
