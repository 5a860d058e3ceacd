package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"entrega/internal/domain"
	"entrega/internal/handler"
	"entrega/internal/service"
	"entrega/mocks"
)

func setupAuthRouter(authSvc *mocks.MockAuthService, regSvc *mocks.MockRegistrationService, socialSvc *mocks.MockSocialAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewAuthHandler(authSvc, regSvc, socialSvc)
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.RefreshToken)
	r.POST("/auth/social", h.SocialLogin)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSocialLogin_NewUserReturns201(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	regSvc := new(mocks.MockRegistrationService)
	socialSvc := new(mocks.MockSocialAuthService)
	r := setupAuthRouter(authSvc, regSvc, socialSvc)

	socialSvc.On("SocialLogin", mock.Anything, mock.Anything).Return(&service.SocialLoginOutput{
		User:      &domain.User{ID: uuid.New(), Email: "new@example.com"},
		Tokens:    &service.TokenPair{AccessToken: "a", RefreshToken: "r"},
		IsNewUser: true,
	}, nil)

	w := postJSON(t, r, "/auth/social", gin.H{"provider": "google", "id_token": "tok"})
	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
}

func TestSocialLogin_ExistingUserReturns200(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	regSvc := new(mocks.MockRegistrationService)
	socialSvc := new(mocks.MockSocialAuthService)
	r := setupAuthRouter(authSvc, regSvc, socialSvc)

	socialSvc.On("SocialLogin", mock.Anything, mock.Anything).Return(&service.SocialLoginOutput{
		User:      &domain.User{ID: uuid.New(), Email: "old@example.com"},
		Tokens:    &service.TokenPair{AccessToken: "a", RefreshToken: "r"},
		IsNewUser: false,
	}, nil)

	w := postJSON(t, r, "/auth/social", gin.H{"provider": "google", "id_token": "tok"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSocialLogin_VerificationFailureReturns400(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	regSvc := new(mocks.MockRegistrationService)
	socialSvc := new(mocks.MockSocialAuthService)
	r := setupAuthRouter(authSvc, regSvc, socialSvc)

	socialSvc.On("SocialLogin", mock.Anything, mock.Anything).Return(nil,
		domain.NewSocialVerificationError("google", domain.SocialErrMissingToken, "google login requires an identity token"))

	w := postJSON(t, r, "/auth/social", gin.H{"provider": "google"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	// The provider/kind internals never leak; only the human message does.
	assert.Equal(t, "google login requires an identity token", resp.Error.Message)
}

func TestSocialLogin_MissingProviderReturns400(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	regSvc := new(mocks.MockRegistrationService)
	socialSvc := new(mocks.MockSocialAuthService)
	r := setupAuthRouter(authSvc, regSvc, socialSvc)

	w := postJSON(t, r, "/auth/social", gin.H{"id_token": "tok"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	socialSvc.AssertNotCalled(t, "SocialLogin", mock.Anything, mock.Anything)
}

func TestLogin_SocialOnlyAccountReturns400(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	regSvc := new(mocks.MockRegistrationService)
	socialSvc := new(mocks.MockSocialAuthService)
	r := setupAuthRouter(authSvc, regSvc, socialSvc)

	authSvc.On("Login", mock.Anything, mock.Anything).Return(nil, domain.ErrPasswordLoginNotAllowed)

	w := postJSON(t, r, "/auth/login", gin.H{"email": "social@example.com", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "PASSWORD_LOGIN_NOT_ALLOWED", resp.Error.Code)
}

func TestRegister_Returns201(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	regSvc := new(mocks.MockRegistrationService)
	socialSvc := new(mocks.MockSocialAuthService)
	r := setupAuthRouter(authSvc, regSvc, socialSvc)

	regSvc.On("Register", mock.Anything, mock.Anything).Return(&service.RegisterOutput{
		User:   &domain.User{ID: uuid.New(), Email: "carlos@example.com"},
		Tokens: &service.TokenPair{AccessToken: "a", RefreshToken: "r"},
	}, nil)

	w := postJSON(t, r, "/auth/register", gin.H{
		"email":    "carlos@example.com",
		"password": "str0ng-password",
		"name":     "Carlos Mendoza",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}
