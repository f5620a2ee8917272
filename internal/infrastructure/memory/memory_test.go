package memory

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/valueobject"
)

func email(t *testing.T, raw string) valueobject.Email {
	t.Helper()
	r := valueobject.CreateEmail(raw)
	require.True(t, r.IsSuccess(), r.Message())
	return r.Value()
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	u := entity.NewUser("Cook", email(t, "cook@example.com"), "hash")
	require.NoError(t, repo.Add(ctx, u))

	t.Run("lookup by email ignores case", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, email(t, "COOK@Example.com"))
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("exists and count", func(t *testing.T) {
		ok, err := repo.ExistsByEmail(ctx, email(t, "cook@example.com"))
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = repo.ExistsByEmail(ctx, email(t, "nobody@example.com"))
		require.NoError(t, err)
		assert.False(t, ok)
		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		err := repo.Add(ctx, entity.NewUser("Other", email(t, "Cook@example.com"), "h"))
		assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	})

	t.Run("lookup by reset token", func(t *testing.T) {
		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		got.SetPasswordResetToken("tok", time.Now().Add(time.Hour))
		require.NoError(t, repo.Update(ctx, got))

		byToken, err := repo.GetByPasswordResetToken(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byToken.ID)

		_, err = repo.GetByPasswordResetToken(ctx, "nope")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("returned users are copies", func(t *testing.T) {
		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		got.Name = "changed"
		again, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Cook", again.Name)
	})

	t.Run("update unknown user", func(t *testing.T) {
		err := repo.Update(ctx, entity.NewUser("x", email(t, "x@example.com"), "h"))
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.GetByID(cctx, u.ID)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func seedRecipe(t *testing.T, repo *RecipeRepository, title, desc, category, owner string) *entity.Recipe {
	t.Helper()
	r := entity.NewRecipe(title, desc, category, owner, nil)
	r.AddIngredient(entity.NewIngredient("Thing", "1", ""))
	r.AddStep(entity.NewStep(1, "Do it"))
	require.NoError(t, repo.Add(context.Background(), r))
	return r
}

func TestRecipeRepository_GetPage(t *testing.T) {
	ctx := context.Background()
	repo := NewRecipeRepository()
	seedRecipe(t, repo, "Apple Pie", "Classic", "Dessert", "u1")
	banana := seedRecipe(t, repo, "Banana Bread", "Moist", "Dessert", "u1")
	seedRecipe(t, repo, "Caesar Salad", "Crunchy", "Salad", "u1")
	burger := seedRecipe(t, repo, "Burger", "Juicy", "Dinner", "u2")

	t.Run("category and search scoped to owner", func(t *testing.T) {
		page, err := repo.GetPage(ctx, repository.RecipeFilter{UserID: "u1", Category: "Dessert", Search: "Banana", Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, banana.ID, page.Items[0].ID)
		assert.Equal(t, 1, page.Total)
	})

	t.Run("category is case insensitive", func(t *testing.T) {
		page, err := repo.GetPage(ctx, repository.RecipeFilter{UserID: "u1", Category: "dessert", Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)
	})

	t.Run("search matches description", func(t *testing.T) {
		page, err := repo.GetPage(ctx, repository.RecipeFilter{UserID: "u1", Search: "crunch", Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Caesar Salad", page.Items[0].Title)
	})

	t.Run("other owner sees only their recipes", func(t *testing.T) {
		page, err := repo.GetPage(ctx, repository.RecipeFilter{UserID: "u2", Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, burger.ID, page.Items[0].ID)
	})

	t.Run("limit one reports full total", func(t *testing.T) {
		page, err := repo.GetPage(ctx, repository.RecipeFilter{UserID: "u1", Page: 1, Limit: 1})
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, 3, page.Total)
	})

	t.Run("page beyond range is empty", func(t *testing.T) {
		page, err := repo.GetPage(ctx, repository.RecipeFilter{UserID: "u1", Page: 9, Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 3, page.Total)
	})

	t.Run("huge page does not overflow the offset", func(t *testing.T) {
		page, err := repo.GetPage(ctx, repository.RecipeFilter{UserID: "u1", Page: math.MaxInt64 / 10, Limit: 20})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 3, page.Total)
	})
}

func TestRecipeRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewRecipeRepository()
	r := seedRecipe(t, repo, "Soup", "Warm", "Dinner", "u1")

	ok, err := repo.Exists(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := repo.TotalCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	t.Run("update replaces children", func(t *testing.T) {
		got, err := repo.GetByID(ctx, r.ID)
		require.NoError(t, err)
		got.ReplaceSteps([]entity.Step{entity.NewStep(2, "Second"), entity.NewStep(1, "First")})
		require.NoError(t, repo.Update(ctx, got))

		again, err := repo.GetByID(ctx, r.ID)
		require.NoError(t, err)
		require.Len(t, again.Steps, 2)
		assert.Equal(t, "First", again.Steps[0].InstructionText)
	})

	t.Run("stale write is a conflict", func(t *testing.T) {
		a, err := repo.GetByID(ctx, r.ID)
		require.NoError(t, err)
		b, err := repo.GetByID(ctx, r.ID)
		require.NoError(t, err)
		a.UpdateBasicInfo("A", "", "Dinner", nil)
		require.NoError(t, repo.Update(ctx, a))
		b.UpdateBasicInfo("B", "", "Dinner", nil)
		assert.ErrorIs(t, repo.Update(ctx, b), repository.ErrConcurrentUpdate)
	})

	t.Run("favorites", func(t *testing.T) {
		require.NoError(t, repo.AddFavorite(ctx, "u2", r.ID))
		require.NoError(t, repo.AddFavorite(ctx, "u2", r.ID))
		fav, err := repo.FavoriteExists(ctx, "u2", r.ID)
		require.NoError(t, err)
		assert.True(t, fav)

		require.NoError(t, repo.RemoveFavorite(ctx, "u2", r.ID))
		fav, err = repo.FavoriteExists(ctx, "u2", r.ID)
		require.NoError(t, err)
		assert.False(t, fav)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.AddFavorite(ctx, "u2", r.ID))
		require.NoError(t, repo.Delete(ctx, r.ID))
		ok, err := repo.Exists(ctx, r.ID)
		require.NoError(t, err)
		assert.False(t, ok)
		fav, err := repo.FavoriteExists(ctx, "u2", r.ID)
		require.NoError(t, err)
		assert.False(t, fav)
		assert.ErrorIs(t, repo.Delete(ctx, r.ID), repository.ErrNotFound)
	})
}
