package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-recipe-api/internal/application/ports"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/helpers"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// SessionChecker reports whether a user still holds a live session.
type SessionChecker interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

// Auth validates the access token from the Authorization header, or the
// access_token cookie when no header is sent. With a non-nil sessions the
// user must also have an active session, so logout revokes issued tokens.
// On success it sets userID and userEmail in the Gin context.
func Auth(tokens ports.TokenService, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			unauthorized(c, "missing access token")
			return
		}
		claims, err := tokens.Validate(token)
		if err != nil {
			unauthorized(c, "invalid access token")
			return
		}

		if sessions != nil {
			ok, err := sessions.Exists(c.Request.Context(), claims.UserID)
			if err != nil || !ok {
				unauthorized(c, "session not found")
				return
			}
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if h := strings.TrimSpace(c.GetHeader("Authorization")); h != "" {
		scheme, tok, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(tok)
		}
		return ""
	}
	tok, err := c.Cookie(helpers.AccessTokenCookie)
	if err != nil {
		return ""
	}
	return tok
}

func unauthorized(c *gin.Context, msg string) {
	response.JSONError(c, http.StatusUnauthorized, msg, response.ErrorBody{Type: "authentication"})
}
