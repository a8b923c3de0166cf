package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"employee-admin/internal/auth"
	"employee-admin/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedEngine(signer *auth.TokenSigner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.Authenticate(signer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin_id": c.GetString(middleware.CtxAdminID)})
	})
	return r
}

func TestAuthenticateMissingToken(t *testing.T) {
	r := guardedEngine(auth.NewTokenSigner("s", time.Hour))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateBearerToken(t *testing.T) {
	signer := auth.NewTokenSigner("s", time.Hour)
	r := guardedEngine(signer)

	token, err := signer.Issue("admin-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin-1")
}

func TestAuthenticateLegacyHeader(t *testing.T) {
	signer := auth.NewTokenSigner("s", time.Hour)
	r := guardedEngine(signer)

	token, err := signer.Issue("admin-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("x-auth-token", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	signer := auth.NewTokenSigner("s", time.Hour)
	r := guardedEngine(signer)

	token, err := signer.Issue("admin-1")
	require.NoError(t, err)

	// token without the Bearer prefix is rejected
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	expired := auth.NewTokenSigner("s", -time.Minute)
	r := guardedEngine(auth.NewTokenSigner("s", time.Hour))

	token, err := expired.Issue("admin-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateTamperedToken(t *testing.T) {
	other := auth.NewTokenSigner("another-secret", time.Hour)
	r := guardedEngine(auth.NewTokenSigner("s", time.Hour))

	token, err := other.Issue("admin-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
