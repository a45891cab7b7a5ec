package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "mintfire.backend/internal/domain/errors"
)

// Success sends the uniform success envelope
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error translates any error into the uniform failure envelope. Nothing
// below the handler boundary is allowed to leak a raw error to the
// client: unknown errors become a generic internal failure.
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)

	body := gin.H{
		"success": false,
		"error":   appErr.Message,
	}
	if len(appErr.Fields) > 0 {
		body["fields"] = appErr.Fields
	}
	c.JSON(appErr.Code, body)
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("already exists")
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusUnauthorized, "invalid credentials", err)
	case errors.Is(err, domainerrors.ErrAccountLocked):
		return domainerrors.Locked("too many failed attempts, try again later")
	case errors.Is(err, domainerrors.ErrTokenExpired):
		return domainerrors.NewAppError(http.StatusUnauthorized, "session expired", err)
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("authentication required")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("forbidden")
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.BadRequest(err.Error())
	default:
		// Storage and corrupt-record failures surface as generic errors
		return domainerrors.InternalError(err)
	}
}
