package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"entrega/internal/auth"
	"entrega/internal/domain"
	"entrega/internal/port"
	"entrega/mocks"
)

func TestVerify_DispatchesToMatchingVerifier(t *testing.T) {
	google := &mocks.MockSocialTokenVerifier{ProviderName: domain.AuthProviderGoogle}
	apple := &mocks.MockSocialTokenVerifier{ProviderName: domain.AuthProviderApple}
	d := auth.NewDispatcher(google, apple)

	profile := &port.SocialProfile{
		Provider: domain.AuthProviderApple,
		Subject:  "apple-uid",
		Email:    "user@example.com",
	}
	apple.On("VerifyIDToken", mock.Anything, "apple-token").Return(profile, nil)

	got, err := d.Verify(context.Background(), "apple", "apple-token")
	require.NoError(t, err)
	assert.Equal(t, profile, got)
	google.AssertNotCalled(t, "VerifyIDToken", mock.Anything, mock.Anything)
}

func TestVerify_UnsupportedProvider(t *testing.T) {
	google := &mocks.MockSocialTokenVerifier{ProviderName: domain.AuthProviderGoogle}
	d := auth.NewDispatcher(google)

	_, err := d.Verify(context.Background(), "facebook", "some-token")

	var verr *domain.SocialVerificationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.SocialErrUnsupportedProvider, verr.Kind)
	assert.Equal(t, "facebook", verr.Provider)
	google.AssertNotCalled(t, "VerifyIDToken", mock.Anything, mock.Anything)
}

func TestVerify_MissingToken(t *testing.T) {
	google := &mocks.MockSocialTokenVerifier{ProviderName: domain.AuthProviderGoogle}
	d := auth.NewDispatcher(google)

	_, err := d.Verify(context.Background(), "google", "")

	var verr *domain.SocialVerificationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.SocialErrMissingToken, verr.Kind)
	google.AssertNotCalled(t, "VerifyIDToken", mock.Anything, mock.Anything)
}

func TestVerify_VerifierErrorPassesThrough(t *testing.T) {
	google := &mocks.MockSocialTokenVerifier{ProviderName: domain.AuthProviderGoogle}
	d := auth.NewDispatcher(google)

	want := domain.NewSocialVerificationError("google", domain.SocialErrInvalidToken, "google token validation failed")
	google.On("VerifyIDToken", mock.Anything, "bad-token").Return(nil, want)

	_, err := d.Verify(context.Background(), "google", "bad-token")
	assert.Equal(t, want, err)
}
