package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
)

type RecipeRepository struct {
	pool *pgxpool.Pool
}

func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{pool: pool}
}

const recipeColumns = `id, user_id, title, description, category, photo_url, version, created_at, updated_at`

func scanRecipe(row pgx.Row) (*entity.Recipe, error) {
	var r entity.Recipe
	if err := row.Scan(&r.ID, &r.UserID, &r.Title, &r.Description, &r.Category,
		&r.PhotoURL, &r.Version, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

func (m *RecipeRepository) loadChildren(ctx context.Context, recipes ...*entity.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	ids := make([]string, 0, len(recipes))
	byID := make(map[string]*entity.Recipe, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
		byID[r.ID] = r
		r.Ingredients = []entity.Ingredient{}
		r.Steps = []entity.Step{}
	}

	rows, err := m.pool.Query(ctx, `
		SELECT id, recipe_id, name, quantity, unit, created_at, updated_at
		FROM ingredients WHERE recipe_id = ANY($1::uuid[]) ORDER BY recipe_id, position
	`, ids)
	if err != nil {
		return err
	}
	ingredients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Ingredient, error) {
		var in entity.Ingredient
		err := row.Scan(&in.ID, &in.RecipeID, &in.Name, &in.Quantity, &in.Unit, &in.CreatedAt, &in.UpdatedAt)
		return in, err
	})
	if err != nil {
		return err
	}
	for _, in := range ingredients {
		r := byID[in.RecipeID]
		r.Ingredients = append(r.Ingredients, in)
	}

	rows, err = m.pool.Query(ctx, `
		SELECT id, recipe_id, step_number, instruction_text, created_at, updated_at
		FROM steps WHERE recipe_id = ANY($1::uuid[]) ORDER BY recipe_id, step_number
	`, ids)
	if err != nil {
		return err
	}
	steps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Step, error) {
		var s entity.Step
		err := row.Scan(&s.ID, &s.RecipeID, &s.StepNumber, &s.InstructionText, &s.CreatedAt, &s.UpdatedAt)
		return s, err
	})
	if err != nil {
		return err
	}
	for _, s := range steps {
		r := byID[s.RecipeID]
		r.Steps = append(r.Steps, s)
	}
	return nil
}

func (m *RecipeRepository) GetByID(ctx context.Context, id string) (*entity.Recipe, error) {
	if !isUUID(id) {
		return nil, repository.ErrNotFound
	}
	r, err := scanRecipe(m.pool.QueryRow(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	if err := m.loadChildren(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (m *RecipeRepository) Exists(ctx context.Context, id string) (bool, error) {
	if !isUUID(id) {
		return false, nil
	}
	var exists bool
	err := m.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM recipes WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (m *RecipeRepository) TotalCount(ctx context.Context) (int, error) {
	var n int
	err := m.pool.QueryRow(ctx, `SELECT count(*) FROM recipes`).Scan(&n)
	return n, err
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (m *RecipeRepository) GetPage(ctx context.Context, f repository.RecipeFilter) (repository.RecipePage, error) {
	where := []string{"TRUE"}
	var args []any
	if f.UserID != "" {
		args = append(args, f.UserID)
		where = append(where, "user_id = $"+strconv.Itoa(len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		where = append(where, "lower(category) = lower($"+strconv.Itoa(len(args))+")")
	}
	if f.Search != "" {
		args = append(args, "%"+escapeLike(f.Search)+"%")
		n := strconv.Itoa(len(args))
		where = append(where, "(title ILIKE $"+n+" OR description ILIKE $"+n+")")
	}
	cond := strings.Join(where, " AND ")

	page := repository.RecipePage{Items: []*entity.Recipe{}}
	if err := m.pool.QueryRow(ctx, `SELECT count(*) FROM recipes WHERE `+cond, args...).Scan(&page.Total); err != nil {
		return page, err
	}
	if page.Total == 0 || f.Limit <= 0 {
		return page, nil
	}

	args = append(args, f.Limit, f.Offset())
	rows, err := m.pool.Query(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE `+cond+
		` ORDER BY created_at DESC, title ASC LIMIT $`+strconv.Itoa(len(args)-1)+` OFFSET $`+strconv.Itoa(len(args)), args...)
	if err != nil {
		return page, err
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Recipe, error) {
		return scanRecipe(row)
	})
	if err != nil {
		return page, err
	}
	if err := m.loadChildren(ctx, items...); err != nil {
		return page, err
	}
	page.Items = items
	return page, nil
}

func insertChildren(ctx context.Context, tx pgx.Tx, r *entity.Recipe) error {
	batch := &pgx.Batch{}
	for i, in := range r.Ingredients {
		batch.Queue(`
			INSERT INTO ingredients (id, recipe_id, position, name, quantity, unit, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, in.ID, r.ID, i, in.Name, in.Quantity, in.Unit, in.CreatedAt, in.UpdatedAt)
	}
	for _, s := range r.Steps {
		batch.Queue(`
			INSERT INTO steps (id, recipe_id, step_number, instruction_text, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, s.ID, r.ID, s.StepNumber, s.InstructionText, s.CreatedAt, s.UpdatedAt)
	}
	if batch.Len() == 0 {
		return nil
	}
	return tx.SendBatch(ctx, batch).Close()
}

func (m *RecipeRepository) Add(ctx context.Context, r *entity.Recipe) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return pgx.BeginFunc(ctx, m.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO recipes (id, user_id, title, description, category, photo_url, version, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $8)
		`, r.ID, r.UserID, r.Title, r.Description, r.Category, r.PhotoURL, r.CreatedAt, r.UpdatedAt)
		if err != nil {
			return translate(err)
		}
		if err := insertChildren(ctx, tx, r); err != nil {
			return translate(err)
		}
		r.Version = 1
		return nil
	})
}

// Update writes the recipe row guarded by its version and replaces all
// ingredients and steps in the same transaction.
func (m *RecipeRepository) Update(ctx context.Context, r *entity.Recipe) error {
	err := pgx.BeginFunc(ctx, m.pool, func(tx pgx.Tx) error {
		res, err := tx.Exec(ctx, `
			UPDATE recipes
			SET title = $1, description = $2, category = $3, photo_url = $4, updated_at = $5, version = version + 1
			WHERE id = $6 AND version = $7
		`, r.Title, r.Description, r.Category, r.PhotoURL, r.UpdatedAt, r.ID, r.Version)
		if err != nil {
			return translate(err)
		}
		if res.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM recipes WHERE id = $1)`, r.ID).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return repository.ErrNotFound
			}
			return repository.ErrConcurrentUpdate
		}
		if _, err := tx.Exec(ctx, `DELETE FROM ingredients WHERE recipe_id = $1`, r.ID); err != nil {
			return translate(err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM steps WHERE recipe_id = $1`, r.ID); err != nil {
			return translate(err)
		}
		return translate(insertChildren(ctx, tx, r))
	})
	if err != nil {
		return err
	}
	r.Version++
	return nil
}

func (m *RecipeRepository) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return repository.ErrNotFound
	}
	res, err := m.pool.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (m *RecipeRepository) FavoriteExists(ctx context.Context, userID, recipeID string) (bool, error) {
	if !isUUID(userID) || !isUUID(recipeID) {
		return false, nil
	}
	var exists bool
	err := m.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND recipe_id = $2)`, userID, recipeID).Scan(&exists)
	return exists, err
}

func (m *RecipeRepository) AddFavorite(ctx context.Context, userID, recipeID string) error {
	_, err := m.pool.Exec(ctx, `
		INSERT INTO favorites (user_id, recipe_id) VALUES ($1, $2)
		ON CONFLICT (user_id, recipe_id) DO NOTHING
	`, userID, recipeID)
	return translate(err)
}

func (m *RecipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	_, err := m.pool.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND recipe_id = $2`, userID, recipeID)
	return translate(err)
}

var _ repository.RecipeRepository = (*RecipeRepository)(nil)
