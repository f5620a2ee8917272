package recipe

import (
	"context"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
)

// mockRecipeRepository simulates repository.RecipeRepository.
// Unset funcs return "not found" for lookups and succeed for writes.
type mockRecipeRepository struct {
	GetByIDFunc        func(ctx context.Context, id string) (*entity.Recipe, error)
	ExistsFunc         func(ctx context.Context, id string) (bool, error)
	TotalCountFunc     func(ctx context.Context) (int, error)
	GetPageFunc        func(ctx context.Context, f repository.RecipeFilter) (repository.RecipePage, error)
	AddFunc            func(ctx context.Context, r *entity.Recipe) error
	UpdateFunc         func(ctx context.Context, r *entity.Recipe) error
	DeleteFunc         func(ctx context.Context, id string) error
	FavoriteExistsFunc func(ctx context.Context, userID, recipeID string) (bool, error)

	added, updated           []*entity.Recipe
	deleted                  []string
	favAdded, favRemoved     int
	pageCalls, favoriteCalls int
	lastFilter               repository.RecipeFilter
}

func (m *mockRecipeRepository) GetByID(ctx context.Context, id string) (*entity.Recipe, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockRecipeRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockRecipeRepository) TotalCount(ctx context.Context) (int, error) {
	if m.TotalCountFunc != nil {
		return m.TotalCountFunc(ctx)
	}
	return 0, nil
}

func (m *mockRecipeRepository) GetPage(ctx context.Context, f repository.RecipeFilter) (repository.RecipePage, error) {
	m.pageCalls++
	m.lastFilter = f
	if m.GetPageFunc != nil {
		return m.GetPageFunc(ctx, f)
	}
	return repository.RecipePage{}, nil
}

func (m *mockRecipeRepository) Add(ctx context.Context, r *entity.Recipe) error {
	m.added = append(m.added, r)
	if m.AddFunc != nil {
		return m.AddFunc(ctx, r)
	}
	return nil
}

func (m *mockRecipeRepository) Update(ctx context.Context, r *entity.Recipe) error {
	m.updated = append(m.updated, r)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRecipeRepository) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRecipeRepository) FavoriteExists(ctx context.Context, userID, recipeID string) (bool, error) {
	m.favoriteCalls++
	if m.FavoriteExistsFunc != nil {
		return m.FavoriteExistsFunc(ctx, userID, recipeID)
	}
	return false, nil
}

func (m *mockRecipeRepository) AddFavorite(ctx context.Context, userID, recipeID string) error {
	m.favAdded++
	return nil
}

func (m *mockRecipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	m.favRemoved++
	return nil
}

// mockImageStorage records uploads and deletes.
type mockImageStorage struct {
	UploadFunc func(ctx context.Context, data, nameHint string) (string, error)
	DeleteFunc func(ctx context.Context, url string) error

	uploads []string
	deletes []string
}

func (m *mockImageStorage) Upload(ctx context.Context, data, nameHint string) (string, error) {
	m.uploads = append(m.uploads, nameHint)
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, data, nameHint)
	}
	return "http://img/" + nameHint + ".jpg", nil
}

func (m *mockImageStorage) Delete(ctx context.Context, url string) error {
	m.deletes = append(m.deletes, url)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, url)
	}
	return nil
}

func nullLogger() *logrus.Logger {
	l, _ := logtest.NewNullLogger()
	return l
}

func ptr(s string) *string { return &s }

func ownedRecipe(owner string, photo *string) *entity.Recipe {
	r := entity.NewRecipe("Soup", "Warm", "Dinner", owner, photo)
	r.AddIngredient(entity.NewIngredient("Salt", "1", "tsp"))
	r.AddStep(entity.NewStep(1, "Boil"))
	return r
}

func validIngredients() []IngredientInput {
	return []IngredientInput{{Name: "Flour", Quantity: "200", Unit: "g"}}
}

func validSteps() []StepInput {
	return []StepInput{{StepNumber: 1, InstructionText: "Mix"}}
}
