package entity

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient belongs to exactly one Recipe.
type Ingredient struct {
	ID        string
	RecipeID  string
	Name      string
	Quantity  string
	Unit      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewIngredient(name, quantity, unit string) Ingredient {
	return Ingredient{
		ID:        uuid.NewString(),
		Name:      name,
		Quantity:  quantity,
		Unit:      unit,
		CreatedAt: time.Now().UTC(),
	}
}

func (i *Ingredient) Update(name, quantity, unit string) {
	i.Name = name
	i.Quantity = quantity
	i.Unit = unit
	now := time.Now().UTC()
	i.UpdatedAt = &now
}

// Step is one numbered instruction of a Recipe. StepNumber is positive and unique per recipe.
type Step struct {
	ID              string
	RecipeID        string
	StepNumber      int
	InstructionText string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

func NewStep(number int, instruction string) Step {
	return Step{
		ID:              uuid.NewString(),
		StepNumber:      number,
		InstructionText: instruction,
		CreatedAt:       time.Now().UTC(),
	}
}

func (s *Step) Update(number int, instruction string) {
	s.StepNumber = number
	s.InstructionText = instruction
	now := time.Now().UTC()
	s.UpdatedAt = &now
}

// Recipe is the aggregate root owning its ingredients and steps.
type Recipe struct {
	ID          string
	Title       string
	Description string
	Category    string
	PhotoURL    *string
	UserID      string
	Ingredients []Ingredient
	Steps       []Step
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	// Version is bumped by the store on every successful write.
	Version int
}

func NewRecipe(title, description, category, userID string, photoURL *string) *Recipe {
	return &Recipe{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Category:    category,
		PhotoURL:    photoURL,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}
}

func (r *Recipe) touch() {
	now := time.Now().UTC()
	r.UpdatedAt = &now
}

func (r *Recipe) UpdateBasicInfo(title, description, category string, photoURL *string) {
	r.Title = title
	r.Description = description
	r.Category = category
	r.PhotoURL = photoURL
	r.touch()
}

func (r *Recipe) AddIngredient(in Ingredient) {
	in.RecipeID = r.ID
	r.Ingredients = append(r.Ingredients, in)
	r.touch()
}

func (r *Recipe) AddStep(s Step) {
	s.RecipeID = r.ID
	r.Steps = append(r.Steps, s)
	r.touch()
}

// ReplaceIngredients discards the current ingredients in favour of items.
func (r *Recipe) ReplaceIngredients(items []Ingredient) {
	out := make([]Ingredient, len(items))
	for i, in := range items {
		in.RecipeID = r.ID
		out[i] = in
	}
	r.Ingredients = out
	r.touch()
}

// ReplaceSteps discards the current steps in favour of items.
func (r *Recipe) ReplaceSteps(items []Step) {
	out := make([]Step, len(items))
	for i, s := range items {
		s.RecipeID = r.ID
		out[i] = s
	}
	r.Steps = out
	r.touch()
}

func (r *Recipe) IsOwnedBy(userID string) bool {
	return userID != "" && r.UserID == userID
}
