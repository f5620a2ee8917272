package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-ddd-recipe-api/internal/interface/http"
	"github.com/oksasatya/go-ddd-recipe-api/internal/interface/middleware"
)

const (
	// PhotoBodyThreshold separates photo-bearing recipe writes from plain ones.
	PhotoBodyThreshold    = 64 << 10
	PhotoUploadsPerWindow = 20
)

// RecipeModule wires the recipe endpoints; all of them need a signed-in user.
type RecipeModule struct {
	Handler *handlers.RecipeHandler
	Guard   gin.HandlerFunc
	RDB     *redis.Client
}

func NewRecipeModule(h *handlers.RecipeHandler, guard gin.HandlerFunc, rdb *redis.Client) *RecipeModule {
	return &RecipeModule{Handler: h, Guard: guard, RDB: rdb}
}

func (m *RecipeModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/recipes")
	g.Use(m.Guard)
	g.Use(
		middleware.RateLimit(m.RDB, middleware.Limit{Name: "recipes", Max: 300, Window: time.Minute, Key: middleware.KeyByIP()}),
		middleware.RateLimit(m.RDB, middleware.Limit{Name: "recipes", Max: 120, Window: time.Minute, Key: middleware.KeyByUserID()}),
		middleware.RateLimit(m.RDB, middleware.Limit{
			Name: "recipe-writes", Max: 30, Window: time.Minute,
			Key: middleware.KeyByUserID(), Applies: middleware.IsWrite,
		}),
		middleware.RateLimit(m.RDB, middleware.Limit{
			Name: "recipe-photos", Max: PhotoUploadsPerWindow, Window: 10 * time.Minute,
			Key: middleware.KeyByUserID(), Applies: middleware.LargeWrite(PhotoBodyThreshold),
		}),
	)
	{
		g.GET("", m.Handler.ListRecipes)
		g.POST("", m.Handler.CreateRecipe)
		g.GET("/:id", m.Handler.GetRecipe)
		g.PUT("/:id", m.Handler.UpdateRecipe)
		g.DELETE("/:id", m.Handler.DeleteRecipe)
		g.POST("/:id/favorite", m.Handler.AddFavorite)
		g.DELETE("/:id/favorite", m.Handler.RemoveFavorite)
	}
}
