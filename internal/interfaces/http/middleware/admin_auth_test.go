package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainerrors "mintfire.backend/internal/domain/errors"
	"mintfire.backend/pkg/jwt"
)

type stubVerifier struct {
	claims *jwt.Claims
	err    error
}

func (v *stubVerifier) Verify(ctx context.Context, token string) (*jwt.Claims, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

func validClaims() *jwt.Claims {
	return &jwt.Claims{AdminID: uuid.New(), Email: "ops@mintfire.dev", SessionID: "sess-1"}
}

func apiRouter(v SessionVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/admin/ping", AdminAuthMiddleware(v), func(c *gin.Context) {
		email, _ := GetAdminEmail(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return r
}

func TestAdminAuthNoCookie(t *testing.T) {
	r := apiRouter(&stubVerifier{claims: validClaims()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/ping", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestAdminAuthInvalidToken(t *testing.T) {
	r := apiRouter(&stubVerifier{err: domainerrors.ErrUnauthorized})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuthExpiredToken(t *testing.T) {
	r := apiRouter(&stubVerifier{err: domainerrors.ErrTokenExpired})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuthValidSession(t *testing.T) {
	claims := validClaims()
	r := apiRouter(&stubVerifier{claims: claims})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good-token"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ops@mintfire.dev", body["email"])
}

func TestRequireSessionPageRedirectsToLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/dashboard", RequireSessionPage(&stubVerifier{err: domainerrors.ErrUnauthorized}, "/admin/login"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestRequireSessionPagePassesWithSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/dashboard", RequireSessionPage(&stubVerifier{claims: validClaims()}, "/admin/login"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good-token"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRedirectIfAuthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/login", RedirectIfAuthenticated(&stubVerifier{claims: validClaims()}, "/admin/dashboard"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Authenticated visitor is bounced to the dashboard
	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good-token"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	// No cookie falls through to the login page
	req = httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetAdminIDMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetAdminID(c)
	assert.False(t, ok)
}
