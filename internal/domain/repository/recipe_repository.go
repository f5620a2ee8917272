package repository

import (
	"context"
	"math"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
)

// RecipeFilter scopes a page query to one owner with optional category and search.
type RecipeFilter struct {
	UserID   string
	Category string
	Search   string
	Page     int
	Limit    int
}

// Offset is the number of rows skipped before this page. It saturates at
// math.MaxInt instead of overflowing, which reads as past the end.
func (f RecipeFilter) Offset() int {
	if f.Page < 1 || f.Limit <= 0 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.Limit {
		return math.MaxInt
	}
	return (f.Page - 1) * f.Limit
}

// RecipePage is one page of recipes plus the total number of matches.
type RecipePage struct {
	Items []*entity.Recipe
	Total int
}

// RecipeRepository persists recipe aggregates and the favorites association.
// GetByID loads ingredients and steps; Update replaces them wholesale and
// returns ErrConcurrentUpdate when the stored version moved on.
type RecipeRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Recipe, error)
	Exists(ctx context.Context, id string) (bool, error)
	TotalCount(ctx context.Context) (int, error)
	GetPage(ctx context.Context, filter RecipeFilter) (RecipePage, error)
	Add(ctx context.Context, r *entity.Recipe) error
	Update(ctx context.Context, r *entity.Recipe) error
	Delete(ctx context.Context, id string) error

	FavoriteExists(ctx context.Context, userID, recipeID string) (bool, error)
	AddFavorite(ctx context.Context, userID, recipeID string) error
	RemoveFavorite(ctx context.Context, userID, recipeID string) error
}
