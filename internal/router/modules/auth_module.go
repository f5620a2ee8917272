package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-ddd-recipe-api/internal/interface/http"
	"github.com/oksasatya/go-ddd-recipe-api/internal/interface/middleware"
)

// AuthModule wires the public account endpoints under /auth.
// Public: POST signup, login, forgot-password, reset-password
type AuthModule struct {
	Handler *handlers.AuthHandler
	RDB     *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, RDB: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	perRoute := func(n int) gin.HandlerFunc {
		return middleware.RateLimit(m.RDB, middleware.Limit{Name: "auth", Max: n, Window: time.Minute, Key: middleware.KeyByIPAndPath()})
	}

	g := rg.Group("/auth")
	g.POST("/signup", perRoute(10), m.Handler.SignupUser)
	g.POST("/login", perRoute(10), m.Handler.LoginUser)
	// reset mails are the expensive side effect
	g.POST("/forgot-password", perRoute(5), m.Handler.ForgotPassword)
	g.POST("/reset-password", perRoute(30), m.Handler.ResetPassword)
}
