// Package seed loads a demo account and a handful of recipes into an empty store.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-recipe-api/internal/application/ports"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/valueobject"
)

const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "Demo123!"
	DemoName     = "Demo User"
)

type Options struct {
	Enabled     bool
	OnlyIfEmpty bool
}

type Seeder struct {
	Users     repository.UserRepository
	Recipes   repository.RecipeRepository
	Passwords ports.PasswordService
	Opts      Options
	Logger    logrus.FieldLogger
}

func NewSeeder(users repository.UserRepository, recipes repository.RecipeRepository, passwords ports.PasswordService, opts Options, logger logrus.FieldLogger) *Seeder {
	return &Seeder{Users: users, Recipes: recipes, Passwords: passwords, Opts: opts, Logger: logger}
}

// IsDatabaseEmpty reports whether there are no users and no recipes.
func (s *Seeder) IsDatabaseEmpty(ctx context.Context) (bool, error) {
	users, err := s.Users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if users > 0 {
		return false, nil
	}
	recipes, err := s.Recipes.TotalCount(ctx)
	if err != nil {
		return false, fmt.Errorf("count recipes: %w", err)
	}
	return recipes == 0, nil
}

func (s *Seeder) Seed(ctx context.Context) error {
	if !s.Opts.Enabled {
		s.Logger.Debug("seeding disabled")
		return nil
	}
	if s.Opts.OnlyIfEmpty {
		empty, err := s.IsDatabaseEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			s.Logger.Info("database not empty; skipping seed")
			return nil
		}
	}

	user, err := s.demoUser(ctx)
	if err != nil {
		return err
	}
	for _, r := range demoRecipes(user.ID) {
		if err := s.Recipes.Add(ctx, r); err != nil {
			return fmt.Errorf("seed recipe %q: %w", r.Title, err)
		}
	}
	s.Logger.WithFields(logrus.Fields{"user_id": user.ID, "email": DemoEmail}).Info("demo data seeded")
	return nil
}

func (s *Seeder) demoUser(ctx context.Context) (*entity.User, error) {
	email := valueobject.CreateEmail(DemoEmail).Value()
	existing, err := s.Users.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup demo user: %w", err)
	}

	hash, err := s.Passwords.Hash(DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	u := entity.NewUser(DemoName, email, hash)
	u.VerifyEmail()
	if err := s.Users.Add(ctx, u); err != nil {
		return nil, fmt.Errorf("seed demo user: %w", err)
	}
	return u, nil
}

type demoIngredient struct{ name, qty, unit string }

type demoRecipe struct {
	title, description, category string
	ingredients                  []demoIngredient
	steps                        []string
}

var demoData = []demoRecipe{
	{
		title:       "Classic Pancakes",
		description: "Fluffy weekend pancakes.",
		category:    "Breakfast",
		ingredients: []demoIngredient{{"Flour", "200", "g"}, {"Milk", "300", "ml"}, {"Egg", "1", "pc"}, {"Sugar", "2", "tbsp"}},
		steps:       []string{"Whisk the dry ingredients.", "Add milk and egg and mix until smooth.", "Cook on a hot buttered pan until golden."},
	},
	{
		title:       "Caesar Salad",
		description: "Crisp romaine with a garlicky dressing.",
		category:    "Salad",
		ingredients: []demoIngredient{{"Romaine lettuce", "1", "head"}, {"Parmesan", "50", "g"}, {"Croutons", "1", "cup"}},
		steps:       []string{"Chop the lettuce.", "Toss with dressing, parmesan and croutons."},
	},
	{
		title:       "Spaghetti Bolognese",
		description: "Slow simmered meat sauce over pasta.",
		category:    "Dinner",
		ingredients: []demoIngredient{{"Spaghetti", "400", "g"}, {"Minced beef", "500", "g"}, {"Tomato passata", "700", "ml"}, {"Onion", "1", "pc"}},
		steps:       []string{"Brown the onion and beef.", "Add passata and simmer for 45 minutes.", "Cook the spaghetti and serve with the sauce."},
	},
	{
		title:       "Banana Bread",
		description: "Moist loaf for overripe bananas.",
		category:    "Dessert",
		ingredients: []demoIngredient{{"Banana", "3", "pc"}, {"Flour", "250", "g"}, {"Butter", "100", "g"}, {"Brown sugar", "150", "g"}},
		steps:       []string{"Mash the bananas.", "Mix in melted butter, sugar and flour.", "Bake at 175C for 60 minutes."},
	},
	{
		title:       "Tomato Soup",
		description: "Quick soup from pantry staples.",
		category:    "Lunch",
		ingredients: []demoIngredient{{"Canned tomatoes", "800", "g"}, {"Vegetable stock", "500", "ml"}, {"Garlic", "2", "cloves"}},
		steps:       []string{"Saute the garlic.", "Add tomatoes and stock and simmer for 20 minutes.", "Blend until smooth."},
	},
}

func demoRecipes(userID string) []*entity.Recipe {
	out := make([]*entity.Recipe, 0, len(demoData))
	for _, d := range demoData {
		r := entity.NewRecipe(d.title, d.description, d.category, userID, nil)
		for _, in := range d.ingredients {
			r.AddIngredient(entity.NewIngredient(in.name, in.qty, in.unit))
		}
		for i, text := range d.steps {
			r.AddStep(entity.NewStep(i+1, text))
		}
		out = append(out, r)
	}
	return out
}
