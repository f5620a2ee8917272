package recipe

import (
	"time"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

const (
	msgNotFound     = "Recipe not found"
	msgAccessDenied = "Access denied"
	msgUnexpected   = "An unexpected error occurred"
	msgConflict     = "Recipe was modified by another user. Please refresh and try again."
)

// IngredientInput is one ingredient as submitted by a client.
type IngredientInput struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// StepInput is one step as submitted by a client. StepNumber may be zero or
// repeated, in which case steps are renumbered in list order.
type StepInput struct {
	StepNumber      int    `json:"step_number"`
	InstructionText string `json:"instruction_text"`
}

type IngredientDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

type StepDTO struct {
	ID              string `json:"id"`
	StepNumber      int    `json:"step_number"`
	InstructionText string `json:"instruction_text"`
}

type RecipeDTO struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	PhotoURL    *string         `json:"photo_url"`
	UserID      string          `json:"user_id"`
	IsFavorite  bool            `json:"is_favorite"`
	Ingredients []IngredientDTO `json:"ingredients"`
	Steps       []StepDTO       `json:"steps"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

func ToRecipeDTO(r *entity.Recipe, isFavorite bool) RecipeDTO {
	ingredients := make([]IngredientDTO, 0, len(r.Ingredients))
	for _, in := range r.Ingredients {
		ingredients = append(ingredients, IngredientDTO{ID: in.ID, Name: in.Name, Quantity: in.Quantity, Unit: in.Unit})
	}
	steps := make([]StepDTO, 0, len(r.Steps))
	for _, s := range r.Steps {
		steps = append(steps, StepDTO{ID: s.ID, StepNumber: s.StepNumber, InstructionText: s.InstructionText})
	}
	return RecipeDTO{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		PhotoURL:    r.PhotoURL,
		UserID:      r.UserID,
		IsFavorite:  isFavorite,
		Ingredients: ingredients,
		Steps:       steps,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// RecipeListDTO is one page of recipes.
type RecipeListDTO struct {
	Items      []RecipeDTO `json:"items"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}
