package recipe

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

// ToggleFavoriteCommand sets the favorite state of a recipe for a user to IsFavorite.
type ToggleFavoriteCommand struct {
	RecipeID   string
	UserID     string
	IsFavorite bool
}

type ToggleFavoriteHandler struct {
	Recipes repository.RecipeRepository
	Logger  logrus.FieldLogger
}

func NewToggleFavoriteHandler(recipes repository.RecipeRepository, logger logrus.FieldLogger) *ToggleFavoriteHandler {
	return &ToggleFavoriteHandler{Recipes: recipes, Logger: logger}
}

func (h *ToggleFavoriteHandler) Handle(ctx context.Context, cmd ToggleFavoriteCommand) result.Result[result.Unit] {
	log := h.Logger.WithFields(logrus.Fields{"recipe_id": cmd.RecipeID, "user_id": cmd.UserID})

	r, err := h.Recipes.GetByID(ctx, cmd.RecipeID)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && r == nil) {
		return result.NotFound[result.Unit](msgNotFound)
	}
	if err != nil {
		log.WithError(err).Error("toggle favorite: load failed")
		return result.Unexpected[result.Unit](msgUnexpected)
	}

	exists, err := h.Recipes.FavoriteExists(ctx, cmd.UserID, cmd.RecipeID)
	if err != nil {
		log.WithError(err).Error("toggle favorite: probe failed")
		return result.Unexpected[result.Unit](msgUnexpected)
	}

	switch {
	case cmd.IsFavorite && !exists:
		err = h.Recipes.AddFavorite(ctx, cmd.UserID, cmd.RecipeID)
	case !cmd.IsFavorite && exists:
		err = h.Recipes.RemoveFavorite(ctx, cmd.UserID, cmd.RecipeID)
	}
	if err != nil {
		log.WithError(err).Error("toggle favorite: persist failed")
		return result.Unexpected[result.Unit](msgUnexpected)
	}
	return result.Success(result.Unit{})
}
