package recipe

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-recipe-api/internal/application/ports"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

type UpdateRecipeCommand struct {
	RecipeID    string
	UserID      string
	Title       string
	Description string
	Category    string
	// Photo replaces the current photo when non-empty.
	Photo       string
	Ingredients []IngredientInput
	Steps       []StepInput
}

type UpdateRecipeHandler struct {
	Recipes repository.RecipeRepository
	Images  ports.ImageStorage
	Logger  logrus.FieldLogger
}

func NewUpdateRecipeHandler(recipes repository.RecipeRepository, images ports.ImageStorage, logger logrus.FieldLogger) *UpdateRecipeHandler {
	return &UpdateRecipeHandler{Recipes: recipes, Images: images, Logger: logger}
}

func (h *UpdateRecipeHandler) Handle(ctx context.Context, cmd UpdateRecipeCommand) result.Result[RecipeDTO] {
	r, err := h.Recipes.GetByID(ctx, cmd.RecipeID)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && r == nil) {
		return result.NotFound[RecipeDTO](msgNotFound)
	}
	if err != nil {
		h.Logger.WithError(err).WithField("recipe_id", cmd.RecipeID).Error("update recipe: load failed")
		return result.Unexpected[RecipeDTO](msgUnexpected)
	}
	if !r.IsOwnedBy(cmd.UserID) {
		return result.Forbidden[RecipeDTO](msgAccessDenied)
	}

	if msg := validateBasics(cmd.Title, cmd.Category); msg != "" {
		return result.Validation[RecipeDTO](msg)
	}
	ingredients, err := buildIngredients(cmd.Ingredients)
	if err != nil {
		return result.Validation[RecipeDTO](err.Error())
	}
	steps, err := buildSteps(cmd.Steps)
	if err != nil {
		return result.Validation[RecipeDTO](err.Error())
	}

	photo := r.PhotoURL
	var (
		replaced *string
		uploaded bool
	)
	if strings.TrimSpace(cmd.Photo) != "" {
		hint := r.ID + "-" + uuid.NewString()[:8]
		url, err := h.Images.Upload(ctx, cmd.Photo, hint)
		if err != nil {
			h.Logger.WithError(err).WithField("recipe_id", r.ID).Warn("update recipe: photo upload failed, keeping current photo")
		} else {
			replaced = r.PhotoURL
			photo = &url
			uploaded = true
		}
	}

	r.UpdateBasicInfo(strings.TrimSpace(cmd.Title), strings.TrimSpace(cmd.Description), strings.TrimSpace(cmd.Category), photo)
	r.ReplaceIngredients(ingredients)
	r.ReplaceSteps(steps)

	if err := h.Recipes.Update(ctx, r); err != nil {
		if uploaded {
			h.deleteImage(ctx, *photo, r.ID, "update recipe: delete unsaved photo failed")
		}
		if errors.Is(err, repository.ErrConcurrentUpdate) {
			return result.Conflict[RecipeDTO](msgConflict)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[RecipeDTO](msgNotFound)
		}
		h.Logger.WithError(err).WithField("recipe_id", r.ID).Error("update recipe: persist failed")
		return result.Unexpected[RecipeDTO](msgUnexpected)
	}

	if replaced != nil && photo != nil && *replaced != *photo {
		h.deleteImage(ctx, *replaced, r.ID, "update recipe: delete previous photo failed")
	}
	return result.Success(ToRecipeDTO(r, false))
}

func (h *UpdateRecipeHandler) deleteImage(ctx context.Context, url, recipeID, msg string) {
	if err := h.Images.Delete(ctx, url); err != nil {
		h.Logger.WithError(err).WithFields(logrus.Fields{"recipe_id": recipeID, "photo_url": url}).Warn(msg)
	}
}
