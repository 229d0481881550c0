package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geniesugar/geniesugar/internal/apperrors"
	"github.com/geniesugar/geniesugar/internal/database"
	"github.com/geniesugar/geniesugar/internal/logger"
)

// SessionCookie is the name of the login session cookie.
const SessionCookie = "geniesugar_session"

const userContextKey = "currentUser"

// SetUser stores the authenticated user on the request context. The auth
// middleware calls this after resolving the session.
func SetUser(c *gin.Context, user *database.User) {
	c.Set(userContextKey, user)
}

// User returns the authenticated user, or nil on unauthenticated routes.
func User(c *gin.Context) *database.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := v.(*database.User)
	if !ok {
		return nil
	}
	return user
}

// respondError writes an error response. Application errors map to their HTTP
// status with their message; anything else is logged and hidden behind a 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus(), gin.H{"message": appErr.Message})
		return
	}
	logger.Error("Request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
