package router

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-recipe-api/config"
	"github.com/oksasatya/go-ddd-recipe-api/internal/application/auth"
	"github.com/oksasatya/go-ddd-recipe-api/internal/application/ports"
	recipeapp "github.com/oksasatya/go-ddd-recipe-api/internal/application/recipe"
	userapp "github.com/oksasatya/go-ddd-recipe-api/internal/application/user"
	"github.com/oksasatya/go-ddd-recipe-api/internal/container"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/go-ddd-recipe-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-recipe-api/internal/infrastructure/services"
	handlers "github.com/oksasatya/go-ddd-recipe-api/internal/interface/http"
	"github.com/oksasatya/go-ddd-recipe-api/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-recipe-api/internal/router/modules"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/helpers"
)

// Dependencies is everything the HTTP modules need. Sessions and RDB may be nil.
type Dependencies struct {
	Cfg       *config.Config
	Logger    logrus.FieldLogger
	Users     repository.UserRepository
	Recipes   repository.RecipeRepository
	Passwords ports.PasswordService
	Tokens    ports.TokenService
	Emails    ports.EmailService
	Images    ports.ImageStorage
	Sessions  *services.RedisSessionStore
	RDB       *redis.Client
	Health    map[string]func(*gin.Context) error
}

// BuildRepositories picks the storage backend named by STORAGE_DRIVER.
func BuildRepositories(cfg *config.Config) (repository.UserRepository, repository.RecipeRepository, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return memory.NewUserRepository(), memory.NewRecipeRepository(), nil
	case config.StoragePostgres:
		pool := container.GetPGPool()
		if pool == nil {
			return nil, nil, errors.New("postgres storage selected but no pool is configured")
		}
		return pginfra.NewUserRepository(pool), pginfra.NewRecipeRepository(pool), nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// BuildDependencies assembles Dependencies from the container singletons.
func BuildDependencies() (Dependencies, error) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	users, recipes, err := BuildRepositories(cfg)
	if err != nil {
		return Dependencies{}, err
	}

	var store services.ObjectStore
	if gcs := container.GetGCS(); gcs != nil && cfg.GCSBucket != "" {
		store = services.NewGCSObjectStore(gcs, cfg.GCSBucket)
	} else {
		logger.Warn("GCS not configured; recipe photos are kept in memory")
		store = services.NewMemoryObjectStore()
	}

	var pub services.JobPublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}

	d := Dependencies{
		Cfg:       cfg,
		Logger:    logger,
		Users:     users,
		Recipes:   recipes,
		Passwords: services.NewBcryptPasswordService(cfg.BcryptCost),
		Tokens:    services.NewJWTTokenService(container.GetJWT()),
		Emails:    services.NewQueueEmailService(pub, cfg, logger),
		Images:    services.NewImageStorage(store, cfg.GCSObjectPrefix),
		RDB:       container.GetRedis(),
		Health:    map[string]func(*gin.Context) error{},
	}
	if d.RDB != nil {
		d.Sessions = services.NewRedisSessionStore(d.RDB)
		d.Health["redis"] = func(c *gin.Context) error { return d.RDB.Ping(c.Request.Context()).Err() }
	}
	if pool := container.GetPGPool(); pool != nil {
		d.Health["postgres"] = func(c *gin.Context) error { return pool.Ping(c.Request.Context()) }
	}
	return d, nil
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry, d Dependencies) {
	var (
		checker  middleware.SessionChecker
		sessions handlers.SessionStore
	)
	if d.Sessions != nil {
		checker, sessions = d.Sessions, d.Sessions
	}
	guard := middleware.Auth(d.Tokens, checker)
	cookies := helpers.NewCookie(d.Cfg.CookieDomain, d.Cfg.CookieSecure)

	authHandler := &handlers.AuthHandler{
		Signup:   auth.NewSignupHandler(d.Users, d.Passwords, d.Tokens, d.Logger),
		Login:    auth.NewLoginHandler(d.Users, d.Passwords, d.Tokens, d.Logger),
		Forgot:   auth.NewForgotPasswordHandler(d.Users, d.Emails, d.Logger, d.Cfg.PasswordResetTTL),
		Reset:    auth.NewResetPasswordHandler(d.Users, d.Passwords, d.Logger),
		Cookies:  cookies,
		Sessions: sessions,
		TokenTTL: d.Cfg.JWTTTL,
		Logger:   d.Logger,
	}
	userHandler := &handlers.UserHandler{
		Profile:  userapp.NewGetProfileHandler(d.Users, d.Logger),
		Cookies:  cookies,
		Sessions: sessions,
		Logger:   d.Logger,
	}
	recipeHandler := &handlers.RecipeHandler{
		Create:   recipeapp.NewCreateRecipeHandler(d.Recipes, d.Images, d.Logger),
		Update:   recipeapp.NewUpdateRecipeHandler(d.Recipes, d.Images, d.Logger),
		Delete:   recipeapp.NewDeleteRecipeHandler(d.Recipes, d.Images, d.Logger),
		Get:      recipeapp.NewGetRecipeByIDHandler(d.Recipes, d.Logger),
		List:     recipeapp.NewListRecipesHandler(d.Recipes, d.Logger),
		Favorite: recipeapp.NewToggleFavoriteHandler(d.Recipes, d.Logger),
	}

	if d.Cfg.HTTPLogEnabled {
		r.Use(middleware.AccessLog(d.Logger))
	}
	r.Add(modules.NewAuthModule(authHandler, d.RDB))
	r.Add(modules.NewUserModule(userHandler, guard, d.RDB))
	r.Add(modules.NewRecipeModule(recipeHandler, guard, d.RDB))

	debug := modules.NewDebugModule(d.RDB, d.Cfg.DebugMetricsEnabled)
	debug.HealthChecks = d.Health
	r.Add(debug)
}
