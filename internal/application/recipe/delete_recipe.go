package recipe

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-recipe-api/internal/application/ports"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

type DeleteRecipeCommand struct {
	RecipeID string
	UserID   string
}

type DeleteRecipeHandler struct {
	Recipes repository.RecipeRepository
	Images  ports.ImageStorage
	Logger  logrus.FieldLogger
}

func NewDeleteRecipeHandler(recipes repository.RecipeRepository, images ports.ImageStorage, logger logrus.FieldLogger) *DeleteRecipeHandler {
	return &DeleteRecipeHandler{Recipes: recipes, Images: images, Logger: logger}
}

func (h *DeleteRecipeHandler) Handle(ctx context.Context, cmd DeleteRecipeCommand) result.Result[result.Unit] {
	r, err := h.Recipes.GetByID(ctx, cmd.RecipeID)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && r == nil) {
		return result.NotFound[result.Unit](msgNotFound)
	}
	if err != nil {
		h.Logger.WithError(err).WithField("recipe_id", cmd.RecipeID).Error("delete recipe: load failed")
		return result.Unexpected[result.Unit](msgUnexpected)
	}
	if !r.IsOwnedBy(cmd.UserID) {
		return result.Forbidden[result.Unit](msgAccessDenied)
	}

	if r.PhotoURL != nil && *r.PhotoURL != "" {
		if err := h.Images.Delete(ctx, *r.PhotoURL); err != nil {
			h.Logger.WithError(err).WithFields(logrus.Fields{"recipe_id": r.ID, "photo_url": *r.PhotoURL}).Warn("delete recipe: photo delete failed")
		}
	}

	if err := h.Recipes.Delete(ctx, r.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[result.Unit](msgNotFound)
		}
		h.Logger.WithError(err).WithField("recipe_id", r.ID).Error("delete recipe: persist failed")
		return result.Unexpected[result.Unit](msgUnexpected)
	}
	return result.Success(result.Unit{})
}
