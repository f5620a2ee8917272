package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
)

type favoriteKey struct{ userID, recipeID string }

type RecipeRepository struct {
	mu        sync.RWMutex
	recipes   map[string]*entity.Recipe
	favorites map[favoriteKey]struct{}
}

func NewRecipeRepository() *RecipeRepository {
	return &RecipeRepository{
		recipes:   map[string]*entity.Recipe{},
		favorites: map[favoriteKey]struct{}{},
	}
}

func cloneRecipe(r *entity.Recipe) *entity.Recipe {
	c := *r
	if r.PhotoURL != nil {
		s := *r.PhotoURL
		c.PhotoURL = &s
	}
	if r.UpdatedAt != nil {
		t := *r.UpdatedAt
		c.UpdatedAt = &t
	}
	c.Ingredients = append([]entity.Ingredient(nil), r.Ingredients...)
	c.Steps = append([]entity.Step(nil), r.Steps...)
	sort.SliceStable(c.Steps, func(i, j int) bool { return c.Steps[i].StepNumber < c.Steps[j].StepNumber })
	return &c
}

func (m *RecipeRepository) GetByID(ctx context.Context, id string) (*entity.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.recipes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneRecipe(r), nil
}

func (m *RecipeRepository) Exists(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.recipes[id]
	return ok, nil
}

func (m *RecipeRepository) TotalCount(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.recipes), nil
}

func matches(r *entity.Recipe, f repository.RecipeFilter) bool {
	if f.UserID != "" && r.UserID != f.UserID {
		return false
	}
	if f.Category != "" && !strings.EqualFold(r.Category, f.Category) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(r.Title), q) && !strings.Contains(strings.ToLower(r.Description), q) {
			return false
		}
	}
	return true
}

// GetPage orders newest first, ties broken by title.
func (m *RecipeRepository) GetPage(ctx context.Context, f repository.RecipeFilter) (repository.RecipePage, error) {
	if err := ctx.Err(); err != nil {
		return repository.RecipePage{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var hits []*entity.Recipe
	for _, r := range m.recipes {
		if matches(r, f) {
			hits = append(hits, r)
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if !hits[i].CreatedAt.Equal(hits[j].CreatedAt) {
			return hits[i].CreatedAt.After(hits[j].CreatedAt)
		}
		return hits[i].Title < hits[j].Title
	})

	page := repository.RecipePage{Items: []*entity.Recipe{}, Total: len(hits)}
	start := f.Offset()
	if start >= len(hits) || f.Limit <= 0 {
		return page, nil
	}
	end := start + f.Limit
	if end > len(hits) {
		end = len(hits)
	}
	for _, r := range hits[start:end] {
		page.Items = append(page.Items, cloneRecipe(r))
	}
	return page, nil
}

func (m *RecipeRepository) Add(ctx context.Context, r *entity.Recipe) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r.Version = 1
	m.recipes[r.ID] = cloneRecipe(r)
	return nil
}

// Update rejects writes based on a stale Version with ErrConcurrentUpdate.
func (m *RecipeRepository) Update(ctx context.Context, r *entity.Recipe) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.recipes[r.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if cur.Version != r.Version {
		return repository.ErrConcurrentUpdate
	}
	r.Version++
	m.recipes[r.ID] = cloneRecipe(r)
	return nil
}

func (m *RecipeRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.recipes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.recipes, id)
	for k := range m.favorites {
		if k.recipeID == id {
			delete(m.favorites, k)
		}
	}
	return nil
}

func (m *RecipeRepository) FavoriteExists(ctx context.Context, userID, recipeID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.favorites[favoriteKey{userID, recipeID}]
	return ok, nil
}

func (m *RecipeRepository) AddFavorite(ctx context.Context, userID, recipeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.recipes[recipeID]; !ok {
		return repository.ErrNotFound
	}
	m.favorites[favoriteKey{userID, recipeID}] = struct{}{}
	return nil
}

func (m *RecipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.favorites, favoriteKey{userID, recipeID})
	return nil
}

var _ repository.RecipeRepository = (*RecipeRepository)(nil)
