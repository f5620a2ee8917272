package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/go-ddd-recipe-api/internal/application/user"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/helpers"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/response"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

type UserHandler struct {
	Profile  *userapp.GetProfileHandler
	Cookies  *helpers.Manager
	Sessions SessionStore
	Logger   logrus.FieldLogger
}

// GetProfile GET /api/auth/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	res := h.Profile.Handle(c.Request.Context(), userapp.GetProfileQuery{UserID: uid})
	response.FromResult(c, res, http.StatusOK, "profile")
}

// Logout POST /api/auth/logout
// Ends the session and clears the access token cookie.
func (h *UserHandler) Logout(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	if h.Sessions != nil {
		if err := h.Sessions.Delete(c.Request.Context(), uid); err != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Warn("delete session failed")
		}
	}
	h.Cookies.Clear(c)
	response.FromResult(c, result.Success(result.Unit{}), http.StatusOK, "logged out")
}
