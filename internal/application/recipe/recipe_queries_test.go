package recipe

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/internal/infrastructure/memory"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

func TestGetRecipeByIDHandler(t *testing.T) {
	ctx := context.Background()
	r := ownedRecipe("u1", nil)

	t.Run("missing recipe", func(t *testing.T) {
		repo := &mockRecipeRepository{}
		res := NewGetRecipeByIDHandler(repo, nullLogger()).Handle(ctx, GetRecipeByIDQuery{RecipeID: "x", UserID: "u1"})
		require.True(t, res.IsFailure())
		assert.Equal(t, result.KindNotFound, res.Kind())
		assert.Contains(t, res.Message(), "not found")
	})

	t.Run("exists but fetch returns nothing", func(t *testing.T) {
		repo := &mockRecipeRepository{
			ExistsFunc:  func(ctx context.Context, id string) (bool, error) { return true, nil },
			GetByIDFunc: func(ctx context.Context, id string) (*entity.Recipe, error) { return nil, nil },
		}
		res := NewGetRecipeByIDHandler(repo, nullLogger()).Handle(ctx, GetRecipeByIDQuery{RecipeID: r.ID, UserID: "u1"})
		require.True(t, res.IsFailure())
		assert.Equal(t, result.KindNotFound, res.Kind())
	})

	t.Run("fetch error is reported as failure", func(t *testing.T) {
		repo := &mockRecipeRepository{
			ExistsFunc:  func(ctx context.Context, id string) (bool, error) { return true, nil },
			GetByIDFunc: func(ctx context.Context, id string) (*entity.Recipe, error) { return nil, errors.New("db down") },
		}
		res := NewGetRecipeByIDHandler(repo, nullLogger()).Handle(ctx, GetRecipeByIDQuery{RecipeID: r.ID, UserID: "u1"})
		require.True(t, res.IsFailure())
		assert.Equal(t, result.KindUnexpected, res.Kind())
	})

	t.Run("resolves favorite flag", func(t *testing.T) {
		repo := &mockRecipeRepository{
			ExistsFunc:         func(ctx context.Context, id string) (bool, error) { return true, nil },
			GetByIDFunc:        func(ctx context.Context, id string) (*entity.Recipe, error) { return r, nil },
			FavoriteExistsFunc: func(ctx context.Context, userID, recipeID string) (bool, error) { return userID == "u1", nil },
		}
		res := NewGetRecipeByIDHandler(repo, nullLogger()).Handle(ctx, GetRecipeByIDQuery{RecipeID: r.ID, UserID: "u1"})
		require.True(t, res.IsSuccess())
		assert.True(t, res.Value().IsFavorite)
		assert.Equal(t, r.ID, res.Value().ID)
		assert.Len(t, res.Value().Ingredients, 1)
	})
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 10, 1, 10},
		{-3, 10, 1, 10},
		{2, 0, 2, DefaultPageSize},
		{1, -5, 1, DefaultPageSize},
		{1, 1000, 1, MaxPageSize},
		{4, 100, 4, 100},
		{math.MaxInt64 / 10, 20, MaxPage, 20},
	}
	for _, tc := range cases {
		p, l := ClampPage(tc.page, tc.limit)
		assert.Equal(t, tc.wantPage, p)
		assert.Equal(t, tc.wantLimit, l)
	}
}

func TestListRecipesHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store short-circuits", func(t *testing.T) {
		repo := &mockRecipeRepository{}
		res := NewListRecipesHandler(repo, nullLogger()).Handle(ctx, ListRecipesQuery{UserID: "u1", Page: 1, Limit: 10})
		require.True(t, res.IsSuccess())
		assert.Empty(t, res.Value().Items)
		assert.NotNil(t, res.Value().Items)
		assert.Equal(t, 0, res.Value().Total)
		assert.Equal(t, 0, repo.pageCalls)
	})

	t.Run("clamps page and limit", func(t *testing.T) {
		repo := &mockRecipeRepository{
			TotalCountFunc: func(ctx context.Context) (int, error) { return 1, nil },
		}
		res := NewListRecipesHandler(repo, nullLogger()).Handle(ctx, ListRecipesQuery{UserID: "u1", Page: 0, Limit: 1000})
		require.True(t, res.IsSuccess())
		assert.Equal(t, 1, repo.lastFilter.Page)
		assert.Equal(t, MaxPageSize, repo.lastFilter.Limit)
		assert.Equal(t, 1, res.Value().Page)
		assert.Equal(t, MaxPageSize, res.Value().Limit)
	})

	t.Run("resolves favorite per item and computes pages", func(t *testing.T) {
		a := ownedRecipe("u1", nil)
		b := ownedRecipe("u1", nil)
		repo := &mockRecipeRepository{
			TotalCountFunc: func(ctx context.Context) (int, error) { return 5, nil },
			GetPageFunc: func(ctx context.Context, f repository.RecipeFilter) (repository.RecipePage, error) {
				return repository.RecipePage{Items: []*entity.Recipe{a, b}, Total: 5}, nil
			},
			FavoriteExistsFunc: func(ctx context.Context, userID, recipeID string) (bool, error) { return recipeID == b.ID, nil },
		}
		res := NewListRecipesHandler(repo, nullLogger()).Handle(ctx, ListRecipesQuery{UserID: "u1", Category: " Dessert ", Search: "pie", Page: 1, Limit: 2})
		require.True(t, res.IsSuccess())
		items := res.Value().Items
		require.Len(t, items, 2)
		assert.False(t, items[0].IsFavorite)
		assert.True(t, items[1].IsFavorite)
		assert.Equal(t, 2, repo.favoriteCalls)
		assert.Equal(t, 5, res.Value().Total)
		assert.Equal(t, 3, res.Value().TotalPages)
		assert.Equal(t, "Dessert", repo.lastFilter.Category)
		assert.Equal(t, "u1", repo.lastFilter.UserID)
	})

	t.Run("count failure", func(t *testing.T) {
		repo := &mockRecipeRepository{
			TotalCountFunc: func(ctx context.Context) (int, error) { return 0, errors.New("db down") },
		}
		res := NewListRecipesHandler(repo, nullLogger()).Handle(ctx, ListRecipesQuery{UserID: "u1"})
		require.True(t, res.IsFailure())
		assert.Equal(t, result.KindUnexpected, res.Kind())
	})
}

func TestListRecipesHandler_HugePage(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRecipeRepository()
	require.NoError(t, repo.Add(ctx, ownedRecipe("u1", nil)))

	res := NewListRecipesHandler(repo, nullLogger()).Handle(ctx, ListRecipesQuery{UserID: "u1", Page: math.MaxInt64 / 10, Limit: 20})
	require.True(t, res.IsSuccess(), res.Message())
	assert.Empty(t, res.Value().Items)
	assert.Equal(t, 1, res.Value().Total)
	assert.Equal(t, MaxPage, res.Value().Page)
}
