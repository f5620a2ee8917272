package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	recipeapp "github.com/oksasatya/go-ddd-recipe-api/internal/application/recipe"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/response"
)

type RecipeHandler struct {
	Create   *recipeapp.CreateRecipeHandler
	Update   *recipeapp.UpdateRecipeHandler
	Delete   *recipeapp.DeleteRecipeHandler
	Get      *recipeapp.GetRecipeByIDHandler
	List     *recipeapp.ListRecipesHandler
	Favorite *recipeapp.ToggleFavoriteHandler
}

type recipeRequest struct {
	Title       string                      `json:"title" binding:"title"`
	Description string                      `json:"description" binding:"max=2000"`
	Category    string                      `json:"category" binding:"category"`
	Photo       string                      `json:"photo"`
	Ingredients []recipeapp.IngredientInput `json:"ingredients"`
	Steps       []recipeapp.StepInput       `json:"steps"`
}

type listRecipesRequest struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Category string `form:"category"`
	Search   string `form:"search"`
}

type pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type recipeListResponse struct {
	Recipes    []recipeapp.RecipeDTO `json:"recipes"`
	Pagination pagination            `json:"pagination"`
}

// ListRecipes GET /api/recipes?page=&limit=&category=&search=
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var req listRecipesRequest
	if !bindQuery(c, &req) {
		return
	}
	res := h.List.Handle(c.Request.Context(), recipeapp.ListRecipesQuery{
		UserID:   uid,
		Category: req.Category,
		Search:   req.Search,
		Page:     req.Page,
		Limit:    req.Limit,
	})
	if res.IsFailure() {
		response.FromResult(c, res, http.StatusOK, "")
		return
	}
	list := res.Value()
	out := recipeListResponse{
		Recipes: list.Items,
		Pagination: pagination{
			Page:       list.Page,
			Limit:      list.Limit,
			Total:      list.Total,
			TotalPages: list.TotalPages,
		},
	}
	c.JSON(http.StatusOK, response.Success(c, http.StatusOK, out, "recipes", nil))
}

// GetRecipe GET /api/recipes/:id
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	res := h.Get.Handle(c.Request.Context(), recipeapp.GetRecipeByIDQuery{RecipeID: c.Param("id"), UserID: uid})
	response.FromResult(c, res, http.StatusOK, "recipe")
}

// CreateRecipe POST /api/recipes
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var req recipeRequest
	if !bindJSON(c, &req) {
		return
	}
	res := h.Create.Handle(c.Request.Context(), recipeapp.CreateRecipeCommand{
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Photo:       req.Photo,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
	})
	response.FromResult(c, res, http.StatusCreated, "recipe created")
}

// UpdateRecipe PUT /api/recipes/:id
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var req recipeRequest
	if !bindJSON(c, &req) {
		return
	}
	res := h.Update.Handle(c.Request.Context(), recipeapp.UpdateRecipeCommand{
		RecipeID:    c.Param("id"),
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Photo:       req.Photo,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
	})
	response.FromResult(c, res, http.StatusOK, "recipe updated")
}

// DeleteRecipe DELETE /api/recipes/:id
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	res := h.Delete.Handle(c.Request.Context(), recipeapp.DeleteRecipeCommand{RecipeID: c.Param("id"), UserID: uid})
	response.FromResult(c, res, http.StatusOK, "recipe deleted")
}

// AddFavorite POST /api/recipes/:id/favorite
func (h *RecipeHandler) AddFavorite(c *gin.Context) { h.toggleFavorite(c, true) }

// RemoveFavorite DELETE /api/recipes/:id/favorite
func (h *RecipeHandler) RemoveFavorite(c *gin.Context) { h.toggleFavorite(c, false) }

func (h *RecipeHandler) toggleFavorite(c *gin.Context, fav bool) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")
	res := h.Favorite.Handle(c.Request.Context(), recipeapp.ToggleFavoriteCommand{RecipeID: id, UserID: uid, IsFavorite: fav})
	if res.IsFailure() {
		response.FromResult(c, res, http.StatusOK, "")
		return
	}
	c.JSON(http.StatusOK, response.Success(c, http.StatusOK, gin.H{"recipe_id": id, "is_favorite": fav}, "favorite updated", nil))
}
