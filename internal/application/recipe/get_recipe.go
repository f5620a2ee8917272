package recipe

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

type GetRecipeByIDQuery struct {
	RecipeID string
	UserID   string
}

type GetRecipeByIDHandler struct {
	Recipes repository.RecipeRepository
	Logger  logrus.FieldLogger
}

func NewGetRecipeByIDHandler(recipes repository.RecipeRepository, logger logrus.FieldLogger) *GetRecipeByIDHandler {
	return &GetRecipeByIDHandler{Recipes: recipes, Logger: logger}
}

func (h *GetRecipeByIDHandler) Handle(ctx context.Context, q GetRecipeByIDQuery) result.Result[RecipeDTO] {
	log := h.Logger.WithField("recipe_id", q.RecipeID)

	exists, err := h.Recipes.Exists(ctx, q.RecipeID)
	if err != nil {
		log.WithError(err).Error("get recipe: existence probe failed")
		return result.Unexpected[RecipeDTO](msgUnexpected)
	}
	if !exists {
		return result.NotFound[RecipeDTO](msgNotFound)
	}

	r, err := h.Recipes.GetByID(ctx, q.RecipeID)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && r == nil) {
		return result.NotFound[RecipeDTO](msgNotFound)
	}
	if err != nil {
		log.WithError(err).Error("get recipe: load failed")
		return result.Unexpected[RecipeDTO](msgUnexpected)
	}

	fav := false
	if q.UserID != "" {
		fav, err = h.Recipes.FavoriteExists(ctx, q.UserID, r.ID)
		if err != nil {
			log.WithError(err).Error("get recipe: favorite probe failed")
			return result.Unexpected[RecipeDTO](msgUnexpected)
		}
	}
	return result.Success(ToRecipeDTO(r, fav))
}
