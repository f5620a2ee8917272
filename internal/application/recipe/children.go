package recipe

import (
	"sort"
	"strings"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
)

type childError string

func (e childError) Error() string { return string(e) }

func validateBasics(title, category string) string {
	if strings.TrimSpace(title) == "" {
		return "Title is required"
	}
	if strings.TrimSpace(category) == "" {
		return "Category is required"
	}
	return ""
}

func buildIngredients(in []IngredientInput) ([]entity.Ingredient, error) {
	if len(in) == 0 {
		return nil, childError("At least one ingredient is required")
	}
	out := make([]entity.Ingredient, 0, len(in))
	for _, i := range in {
		name := strings.TrimSpace(i.Name)
		if name == "" {
			return nil, childError("Each ingredient must have a name")
		}
		out = append(out, entity.NewIngredient(name, strings.TrimSpace(i.Quantity), strings.TrimSpace(i.Unit)))
	}
	return out, nil
}

// buildSteps keeps client step numbers when they are all positive and distinct,
// and otherwise renumbers 1..N in list order.
func buildSteps(in []StepInput) ([]entity.Step, error) {
	if len(in) == 0 {
		return nil, childError("At least one step is required")
	}
	renumber := false
	seen := make(map[int]struct{}, len(in))
	for _, s := range in {
		if strings.TrimSpace(s.InstructionText) == "" {
			return nil, childError("Each step must have instruction text")
		}
		if _, dup := seen[s.StepNumber]; s.StepNumber <= 0 || dup {
			renumber = true
		}
		seen[s.StepNumber] = struct{}{}
	}
	out := make([]entity.Step, 0, len(in))
	for idx, s := range in {
		n := s.StepNumber
		if renumber {
			n = idx + 1
		}
		out = append(out, entity.NewStep(n, strings.TrimSpace(s.InstructionText)))
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].StepNumber < out[b].StepNumber })
	return out, nil
}
