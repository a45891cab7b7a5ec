package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mintfire.backend/internal/domain/entities"
	domainerrors "mintfire.backend/internal/domain/errors"
	"mintfire.backend/internal/interfaces/http/middleware"
	"mintfire.backend/internal/usecases"
	"mintfire.backend/pkg/crypto"
	"mintfire.backend/pkg/jwt"
	"mintfire.backend/pkg/logger"
	"mintfire.backend/pkg/redis"
)

const testSessionKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

type adminRepoStub struct {
	byEmail map[string]*entities.AdminCredential
}

func (r *adminRepoStub) Create(_ context.Context, input *entities.CreateAdminInput, passwordHash string) (*entities.AdminCredential, error) {
	if _, ok := r.byEmail[input.Email]; ok {
		return nil, domainerrors.ErrAlreadyExists
	}
	admin := &entities.AdminCredential{ID: uuid.New(), Email: input.Email, PasswordHash: passwordHash}
	r.byEmail[input.Email] = admin
	return admin, nil
}

func (r *adminRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.AdminCredential, error) {
	for _, a := range r.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *adminRepoStub) GetByEmail(_ context.Context, email string) (*entities.AdminCredential, error) {
	if a, ok := r.byEmail[email]; ok {
		return a, nil
	}
	return nil, domainerrors.ErrNotFound
}

type superRepoStub struct{}

func (superRepoStub) Create(context.Context, string) (*entities.SuperActionCode, error) {
	return &entities.SuperActionCode{ID: uuid.New()}, nil
}
func (superRepoStub) ListUnused(context.Context) ([]*entities.SuperActionCode, error) {
	return nil, nil
}
func (superRepoStub) MarkUsed(context.Context, uuid.UUID) error { return nil }

type auditRepoStub struct{}

func (auditRepoStub) Record(context.Context, string, string, string) error { return nil }
func (auditRepoStub) List(context.Context, int) ([]*entities.AuditEntry, error) {
	return nil, nil
}

func newAuthRouter(t *testing.T) (*gin.Engine, *adminRepoStub) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init("test")

	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	sessions, err := redis.NewSessionStore(testSessionKey)
	require.NoError(t, err)

	admins := &adminRepoStub{byEmail: map[string]*entities.AdminCredential{}}
	jwtService := jwt.NewService("test-secret", time.Hour)
	uc := usecases.NewAuthUsecase(admins, superRepoStub{}, auditRepoStub{}, jwtService, sessions, 5, 15*time.Minute)

	h := NewAuthHandler(uc, admins, auditRepoStub{}, false)

	r := gin.New()
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/me", middleware.AdminAuthMiddleware(uc), h.Me)
	return r, admins
}

func seedAdmin(t *testing.T, admins *adminRepoStub, email, password string) {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)
	admins.byEmail[email] = &entities.AdminCredential{ID: uuid.New(), Email: email, PasswordHash: hash}
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r, admins := newAuthRouter(t)
	seedAdmin(t, admins, "ops@mintfire.dev", "correct-password")

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"ops@mintfire.dev","password":"correct-password"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie, "session cookie must be set")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	admin := data["admin"].(map[string]interface{})
	assert.Equal(t, "ops@mintfire.dev", admin["email"])
	// The bcrypt hash never leaves the server
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestLoginBadCredentialsEnvelope(t *testing.T) {
	r, admins := newAuthRouter(t)
	seedAdmin(t, admins, "ops@mintfire.dev", "correct-password")

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"ops@mintfire.dev","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, sessionCookie(rec))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "invalid credentials", body["error"])
}

func TestMeWithSessionCookie(t *testing.T) {
	r, admins := newAuthRouter(t)
	seedAdmin(t, admins, "ops@mintfire.dev", "correct-password")

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"ops@mintfire.dev","password":"correct-password"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "ops@mintfire.dev", data["email"])
}

func TestLogoutRevokesSession(t *testing.T) {
	r, admins := newAuthRouter(t)
	seedAdmin(t, admins, "ops@mintfire.dev", "correct-password")

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"ops@mintfire.dev","password":"correct-password"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)

	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	cleared := sessionCookie(rec)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)

	// The original token is dead even though its signature is intact
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
