package recipe

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-recipe-api/internal/application/ports"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

type CreateRecipeCommand struct {
	UserID      string
	Title       string
	Description string
	Category    string
	// Photo is an optional base64 payload or data URL.
	Photo       string
	Ingredients []IngredientInput
	Steps       []StepInput
}

type CreateRecipeHandler struct {
	Recipes repository.RecipeRepository
	Images  ports.ImageStorage
	Logger  logrus.FieldLogger
}

func NewCreateRecipeHandler(recipes repository.RecipeRepository, images ports.ImageStorage, logger logrus.FieldLogger) *CreateRecipeHandler {
	return &CreateRecipeHandler{Recipes: recipes, Images: images, Logger: logger}
}

func (h *CreateRecipeHandler) Handle(ctx context.Context, cmd CreateRecipeCommand) result.Result[RecipeDTO] {
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

	r := entity.NewRecipe(strings.TrimSpace(cmd.Title), strings.TrimSpace(cmd.Description), strings.TrimSpace(cmd.Category), cmd.UserID, nil)

	// A failed upload does not block creation; the recipe is saved without a photo.
	if strings.TrimSpace(cmd.Photo) != "" {
		url, err := h.Images.Upload(ctx, cmd.Photo, r.ID)
		if err != nil {
			h.Logger.WithError(err).WithField("recipe_id", r.ID).Warn("create recipe: photo upload failed")
		} else {
			r.PhotoURL = &url
		}
	}

	for _, in := range ingredients {
		r.AddIngredient(in)
	}
	for _, s := range steps {
		r.AddStep(s)
	}

	if err := h.Recipes.Add(ctx, r); err != nil {
		h.Logger.WithError(err).WithField("recipe_id", r.ID).Error("create recipe: persist failed")
		if r.PhotoURL != nil {
			h.deleteImage(ctx, *r.PhotoURL, r.ID)
		}
		return result.Unexpected[RecipeDTO](msgUnexpected)
	}
	return result.Success(ToRecipeDTO(r, false))
}

func (h *CreateRecipeHandler) deleteImage(ctx context.Context, url, recipeID string) {
	if err := h.Images.Delete(ctx, url); err != nil {
		h.Logger.WithError(err).WithFields(logrus.Fields{"recipe_id": recipeID, "photo_url": url}).Warn("delete orphaned photo failed")
	}
}
