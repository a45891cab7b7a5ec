package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "mintfire.backend/internal/domain/errors"
	"mintfire.backend/pkg/jwt"
)

const (
	// SessionCookieName is the admin session cookie
	SessionCookieName = "mintfire_admin_session"
	// AdminIDKey is the context key for the authenticated admin ID
	AdminIDKey = "adminId"
	// AdminEmailKey is the context key for the authenticated admin email
	AdminEmailKey = "adminEmail"
)

// SessionVerifier verifies a presented session token. The token must
// carry a valid signature, be unexpired, and resolve to a live
// server-side session: cookie presence alone never authenticates.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*jwt.Claims, error)
}

// AdminAuthMiddleware gates admin API routes on a verified session
// cookie, answering 401 JSON on failure.
func AdminAuthMiddleware(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verifySessionCookie(c, verifier)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "authentication required",
			})
			return
		}

		c.Set(AdminIDKey, claims.AdminID)
		c.Set(AdminEmailKey, claims.Email)
		c.Next()
	}
}

// RequireSessionPage gates admin dashboard pages: an absent or
// unverifiable session redirects to the login boundary.
func RequireSessionPage(verifier SessionVerifier, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verifySessionCookie(c, verifier)
		if !ok {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Set(AdminIDKey, claims.AdminID)
		c.Set(AdminEmailKey, claims.Email)
		c.Next()
	}
}

// RedirectIfAuthenticated sends a visitor with a verified session away
// from the login boundary to the dashboard. A stale or forged cookie
// falls through to the login page.
func RedirectIfAuthenticated(verifier SessionVerifier, dashboardPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := verifySessionCookie(c, verifier); ok {
			c.Redirect(http.StatusFound, dashboardPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func verifySessionCookie(c *gin.Context, verifier SessionVerifier) (*jwt.Claims, bool) {
	token, err := c.Cookie(SessionCookieName)
	if err != nil || token == "" {
		return nil, false
	}

	claims, err := verifier.Verify(c.Request.Context(), token)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrUnauthorized) && !errors.Is(err, domainerrors.ErrTokenExpired) {
			// Unexpected verifier failure still fails closed
			return nil, false
		}
		return nil, false
	}
	return claims, true
}

// GetAdminID gets the authenticated admin ID from context
func GetAdminID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(AdminIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetAdminEmail gets the authenticated admin email from context
func GetAdminEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(AdminEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
