package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/valueobject"
)

func newTestUser(t *testing.T) *User {
	t.Helper()
	email := valueobject.CreateEmail("cook@example.com")
	require.True(t, email.IsSuccess())
	return NewUser("Cook", email.Value(), "hash")
}

func TestUser(t *testing.T) {
	t.Run("new user has id and no updated timestamp", func(t *testing.T) {
		u := newTestUser(t)
		assert.NotEmpty(t, u.ID)
		assert.Nil(t, u.UpdatedAt)
		assert.False(t, u.IsEmailVerified())
	})

	t.Run("update name sets updated timestamp", func(t *testing.T) {
		u := newTestUser(t)
		u.UpdateName("Chef")
		assert.Equal(t, "Chef", u.Name)
		assert.NotNil(t, u.UpdatedAt)
	})

	t.Run("verify email", func(t *testing.T) {
		u := newTestUser(t)
		u.VerifyEmail()
		assert.True(t, u.IsEmailVerified())
	})

	t.Run("reset token lifecycle", func(t *testing.T) {
		u := newTestUser(t)
		u.SetPasswordResetToken("tok", time.Now().Add(time.Hour))
		assert.True(t, u.IsPasswordResetTokenValid("tok"))
		assert.False(t, u.IsPasswordResetTokenValid("other"))

		u.UpdatePassword("newhash")
		assert.Equal(t, "newhash", u.PasswordHash)
		assert.Nil(t, u.PasswordResetToken)
		assert.Nil(t, u.PasswordResetTokenExpiresAt)
		assert.False(t, u.IsPasswordResetTokenValid("tok"))
	})

	t.Run("expired token is invalid", func(t *testing.T) {
		u := newTestUser(t)
		u.SetPasswordResetToken("tok", time.Now().Add(-time.Minute))
		assert.False(t, u.IsPasswordResetTokenValid("tok"))
	})

	t.Run("clear token", func(t *testing.T) {
		u := newTestUser(t)
		u.SetPasswordResetToken("tok", time.Now().Add(time.Hour))
		u.ClearPasswordResetToken()
		assert.False(t, u.IsPasswordResetTokenValid("tok"))
	})
}

func TestRecipe(t *testing.T) {
	t.Run("new recipe", func(t *testing.T) {
		r := NewRecipe("Soup", "Warm", "Dinner", "u1", nil)
		assert.NotEmpty(t, r.ID)
		assert.Nil(t, r.UpdatedAt)
		assert.True(t, r.IsOwnedBy("u1"))
		assert.False(t, r.IsOwnedBy("u2"))
		assert.False(t, r.IsOwnedBy(""))
	})

	t.Run("update basic info", func(t *testing.T) {
		r := NewRecipe("Soup", "Warm", "Dinner", "u1", nil)
		photo := "http://img"
		r.UpdateBasicInfo("Stew", "Hearty", "Lunch", &photo)
		assert.Equal(t, "Stew", r.Title)
		assert.Equal(t, "Hearty", r.Description)
		assert.Equal(t, "Lunch", r.Category)
		require.NotNil(t, r.PhotoURL)
		assert.Equal(t, photo, *r.PhotoURL)
		assert.NotNil(t, r.UpdatedAt)
	})

	t.Run("add children points them at the recipe", func(t *testing.T) {
		r := NewRecipe("Soup", "", "Dinner", "u1", nil)
		r.AddIngredient(NewIngredient("Salt", "1", "tsp"))
		r.AddStep(NewStep(1, "Boil"))
		require.Len(t, r.Ingredients, 1)
		require.Len(t, r.Steps, 1)
		assert.Equal(t, r.ID, r.Ingredients[0].RecipeID)
		assert.Equal(t, r.ID, r.Steps[0].RecipeID)
		assert.NotNil(t, r.UpdatedAt)
	})

	t.Run("replace all children", func(t *testing.T) {
		r := NewRecipe("Soup", "", "Dinner", "u1", nil)
		r.AddIngredient(NewIngredient("Salt", "1", "tsp"))
		r.AddStep(NewStep(1, "Boil"))

		r.ReplaceIngredients([]Ingredient{NewIngredient("Pepper", "2", "g"), NewIngredient("Water", "1", "l")})
		r.ReplaceSteps([]Step{NewStep(1, "Heat")})

		require.Len(t, r.Ingredients, 2)
		assert.Equal(t, "Pepper", r.Ingredients[0].Name)
		assert.Equal(t, r.ID, r.Ingredients[1].RecipeID)
		require.Len(t, r.Steps, 1)
		assert.Equal(t, "Heat", r.Steps[0].InstructionText)
	})

	t.Run("child updates set their own timestamps", func(t *testing.T) {
		in := NewIngredient("Salt", "1", "tsp")
		in.Update("Sea salt", "2", "g")
		assert.Equal(t, "Sea salt", in.Name)
		assert.NotNil(t, in.UpdatedAt)

		s := NewStep(1, "Boil")
		s.Update(2, "Simmer")
		assert.Equal(t, 2, s.StepNumber)
		assert.NotNil(t, s.UpdatedAt)
	})
}
