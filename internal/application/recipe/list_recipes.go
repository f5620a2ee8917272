package recipe

import (
	"context"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

// ListRecipesQuery lists the requester's recipes. Category and Search are optional.
type ListRecipesQuery struct {
	UserID   string
	Category string
	Search   string
	Page     int
	Limit    int
}

type ListRecipesHandler struct {
	Recipes repository.RecipeRepository
	Logger  logrus.FieldLogger
}

func NewListRecipesHandler(recipes repository.RecipeRepository, logger logrus.FieldLogger) *ListRecipesHandler {
	return &ListRecipesHandler{Recipes: recipes, Logger: logger}
}

// MaxPage keeps (page-1)*limit inside int for every accepted limit.
const MaxPage = math.MaxInt / MaxPageSize

// ClampPage normalizes page and limit to the accepted ranges.
func ClampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

func (h *ListRecipesHandler) Handle(ctx context.Context, q ListRecipesQuery) result.Result[RecipeListDTO] {
	page, limit := ClampPage(q.Page, q.Limit)
	empty := RecipeListDTO{Items: []RecipeDTO{}, Page: page, Limit: limit}

	total, err := h.Recipes.TotalCount(ctx)
	if err != nil {
		h.Logger.WithError(err).Error("list recipes: count failed")
		return result.Unexpected[RecipeListDTO](msgUnexpected)
	}
	if total == 0 {
		return result.Success(empty)
	}

	res, err := h.Recipes.GetPage(ctx, repository.RecipeFilter{
		UserID:   q.UserID,
		Category: strings.TrimSpace(q.Category),
		Search:   strings.TrimSpace(q.Search),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		h.Logger.WithError(err).Error("list recipes: page query failed")
		return result.Unexpected[RecipeListDTO](msgUnexpected)
	}

	items := make([]RecipeDTO, 0, len(res.Items))
	for _, r := range res.Items {
		fav, err := h.Recipes.FavoriteExists(ctx, q.UserID, r.ID)
		if err != nil {
			h.Logger.WithError(err).WithField("recipe_id", r.ID).Error("list recipes: favorite probe failed")
			return result.Unexpected[RecipeListDTO](msgUnexpected)
		}
		items = append(items, ToRecipeDTO(r, fav))
	}

	out := empty
	out.Items = items
	out.Total = res.Total
	out.TotalPages = (res.Total + limit - 1) / limit
	return result.Success(out)
}
