package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-recipe-api/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/response"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/validation"
)

// SessionStore records which users are signed in. A nil store disables sessions.
type SessionStore interface {
	Save(ctx context.Context, userID, name, email string, ttl time.Duration) error
	Delete(ctx context.Context, userID string) error
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.JSONError(c, http.StatusBadRequest, "invalid payload", response.ErrorBody{
			Type:    "validation",
			Details: validation.ToDetails(err),
		})
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		response.JSONError(c, http.StatusBadRequest, "invalid query", response.ErrorBody{
			Type:    "validation",
			Details: validation.ToDetails(err),
		})
		return false
	}
	return true
}

// currentUserID returns the id set by the auth middleware and writes a 401 when absent.
func currentUserID(c *gin.Context) (string, bool) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if uid == "" {
		response.JSONError(c, http.StatusUnauthorized, "unauthorized", response.ErrorBody{Type: "authentication"})
		return "", false
	}
	return uid, true
}
