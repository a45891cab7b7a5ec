package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"mintfire.backend/internal/domain/entities"
	domainerrors "mintfire.backend/internal/domain/errors"
	"mintfire.backend/internal/domain/repositories"
	"mintfire.backend/internal/interfaces/http/middleware"
	"mintfire.backend/internal/interfaces/http/response"
	"mintfire.backend/internal/usecases"
)

type AuthHandler struct {
	auth         *usecases.AuthUsecase
	adminRepo    repositories.AdminRepository
	auditRepo    repositories.AuditRepository
	cookieSecure bool
}

func NewAuthHandler(auth *usecases.AuthUsecase, adminRepo repositories.AdminRepository, auditRepo repositories.AuditRepository, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		adminRepo:    adminRepo,
		auditRepo:    auditRepo,
		cookieSecure: cookieSecure,
	}
}

// Login authenticates an admin and sets the session cookie.
// POST /api/v1/admin/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	session, err := h.auth.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, session.Token, maxAge, "/", "", h.cookieSecure, true)

	response.Success(c, http.StatusOK, gin.H{
		"admin":     session.Admin,
		"expiresAt": session.ExpiresAt,
	})
}

// Logout revokes the server-side session and clears the cookie.
// POST /api/v1/admin/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && token != "" {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			response.Error(c, err)
			return
		}
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cookieSecure, true)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the authenticated admin's profile.
// GET /api/v1/admin/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := middleware.GetAdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	admin, err := h.adminRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, admin)
}

// SuperAction redeems a one-time code to clear a login lockout. Public
// by necessity: a locked-out admin has no session.
// POST /api/v1/admin/auth/super-action
func (h *AuthHandler) SuperAction(c *gin.Context) {
	var input entities.SuperActionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.auth.SuperAction(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Lockout cleared"})
}

// CreateAdmin provisions a new admin credential.
// POST /api/v1/admin/auth/admins
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var input entities.CreateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actor, _ := middleware.GetAdminEmail(c)
	admin, err := h.auth.CreateAdmin(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, admin)
}

// ProvisionSuperActionCode mints a one-time lockout-bypass code. The
// plaintext appears in this response and nowhere else.
// POST /api/v1/admin/auth/super-action/codes
func (h *AuthHandler) ProvisionSuperActionCode(c *gin.Context) {
	actor, _ := middleware.GetAdminEmail(c)
	code, err := h.auth.ProvisionSuperActionCode(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"code": code})
}

// AuditLog returns recent privileged actions, newest first.
// GET /api/v1/admin/auth/audit
func (h *AuthHandler) AuditLog(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	entries, err := h.auditRepo.List(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": entries})
}
