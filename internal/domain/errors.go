package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound                = errors.New("resource not found")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrUserInactive            = errors.New("user is inactive")
	ErrInvalidRole             = errors.New("requested role is not allowed")
	ErrDuplicateEmail          = errors.New("email already registered")
	ErrDuplicateSocialAccount  = errors.New("social account already exists")
	ErrPasswordLoginNotAllowed = errors.New("account uses social login only")
	ErrInvalidOfferCategory    = errors.New("unknown offer category")
	ErrUnsupportedImageType    = errors.New("unsupported image type")
	ErrImageTooLarge           = errors.New("image exceeds maximum allowed size")
)

// Social verification failure kinds. Every verifier-internal failure is
// converted to exactly one of these before it crosses the verifier boundary.
const (
	SocialErrUnsupportedProvider = "unsupported-provider"
	SocialErrMissingToken        = "missing-token"
	SocialErrMisconfigured       = "misconfigured"
	SocialErrFetchFailed         = "fetch-failed"
	SocialErrMalformedToken      = "malformed-token"
	SocialErrInvalidToken        = "signature-or-claim-invalid"
)

// SocialVerificationError is the single error type surfaced by social token
// verification. It carries the provider tag, a failure kind, and a human
// message safe to return to clients.
type SocialVerificationError struct {
	Provider string
	Kind     string
	Message  string
}

func (e *SocialVerificationError) Error() string {
	return fmt.Sprintf("social verification failed (%s/%s): %s", e.Provider, e.Kind, e.Message)
}

// NewSocialVerificationError builds a SocialVerificationError.
func NewSocialVerificationError(provider, kind, message string) *SocialVerificationError {
	return &SocialVerificationError{Provider: provider, Kind: kind, Message: message}
}
