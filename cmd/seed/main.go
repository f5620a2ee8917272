package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-ddd-recipe-api/config"
	"github.com/oksasatya/go-ddd-recipe-api/internal/container"
	pginfra "github.com/oksasatya/go-ddd-recipe-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-recipe-api/internal/infrastructure/seed"
	"github.com/oksasatya/go-ddd-recipe-api/internal/infrastructure/services"
	"github.com/oksasatya/go-ddd-recipe-api/internal/router"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/helpers"
)

// seed always runs when invoked directly; SEED_ONLY_IF_EMPTY still applies.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)
	ctx := context.Background()

	if cfg.StorageDriver != config.StoragePostgres {
		logger.Fatalf("seed command needs STORAGE_DRIVER=postgres, got %q", cfg.StorageDriver)
	}
	if err := pginfra.Migrate(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		logger.Fatalf("migration failed: %v", err)
	}
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{MaxConns: 2})
	if err != nil {
		logger.Fatalf("failed to open db: %v", err)
	}
	defer pool.Close()
	container.SetPGPool(pool)

	users, recipes, err := router.BuildRepositories(cfg)
	if err != nil {
		logger.Fatalf("repositories: %v", err)
	}

	s := seed.NewSeeder(users, recipes, services.NewBcryptPasswordService(cfg.BcryptCost), seed.Options{
		Enabled:     true,
		OnlyIfEmpty: cfg.SeedOnlyIfEmpty,
	}, logger)
	if err := s.Seed(ctx); err != nil {
		logger.Fatalf("seed failed: %v", err)
	}
	fmt.Printf("demo login: email=%s password=%s\n", seed.DemoEmail, seed.DemoPassword)
}
