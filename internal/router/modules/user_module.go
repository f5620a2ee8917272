package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-ddd-recipe-api/internal/interface/http"
	"github.com/oksasatya/go-ddd-recipe-api/internal/interface/middleware"
)

// UserModule wires the signed-in account endpoints.
// Protected: GET /auth/profile, POST /auth/logout
type UserModule struct {
	Handler *handlers.UserHandler
	Guard   gin.HandlerFunc
	RDB     *redis.Client
}

func NewUserModule(h *handlers.UserHandler, guard gin.HandlerFunc, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Guard: guard, RDB: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.Use(m.Guard)
	auth.Use(middleware.RateLimit(m.RDB, middleware.Limit{Name: "account", Max: 120, Window: time.Minute, Key: middleware.KeyByUserID()}))
	{
		auth.GET("/profile", m.Handler.GetProfile)
		auth.POST("/logout", m.Handler.Logout)
	}
}
