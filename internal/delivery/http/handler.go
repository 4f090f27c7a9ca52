package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mealweek/backend/internal/domain"
	"github.com/mealweek/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	plans *usecase.MealPlanService
	lists *usecase.ShoppingListService
}

// NewHandler creates a new HTTP handler
func NewHandler(plans *usecase.MealPlanService, lists *usecase.ShoppingListService) *Handler {
	return &Handler{
		plans: plans,
		lists: lists,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "mealweek-backend",
		"version": "1.0.0",
	})
}

type createRecipeRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Ingredients []domain.IngredientLine `json:"ingredients"`
}

// CreateRecipe stores a new recipe
func (h *Handler) CreateRecipe(c *gin.Context) {
	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.plans.CreateRecipe(c.Request.Context(), req.Name, req.Ingredients)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// ListRecipes returns all recipes
func (h *Handler) ListRecipes(c *gin.Context) {
	recipes, err := h.plans.ListRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GetRecipe returns one recipe by ID
func (h *Handler) GetRecipe(c *gin.Context) {
	recipe, err := h.plans.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe removes a recipe and its plan assignments
func (h *Handler) DeleteRecipe(c *gin.Context) {
	if err := h.plans.DeleteRecipe(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type assignRecipeRequest struct {
	Day      int    `json:"day"`
	Slot     string `json:"slot" binding:"required"`
	RecipeID string `json:"recipeId" binding:"required"`
}

// AssignRecipe places a recipe into a week's plan
func (h *Handler) AssignRecipe(c *gin.Context) {
	var req assignRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.plans.AssignRecipe(c.Request.Context(), c.Param("week"), req.Day, req.Slot, req.RecipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetWeekPlan returns all plan entries for a week
func (h *Handler) GetWeekPlan(c *gin.Context) {
	entries, err := h.plans.GetWeek(c.Request.Context(), c.Param("week"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// RemovePlanEntry deletes one plan entry
func (h *Handler) RemovePlanEntry(c *gin.Context) {
	if err := h.plans.RemoveEntry(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GenerateShoppingList rebuilds the generated lines for a week and returns
// the full list
func (h *Handler) GenerateShoppingList(c *gin.Context) {
	items, err := h.lists.Generate(c.Request.Context(), c.Param("week"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetShoppingList returns a week's full shopping list
func (h *Handler) GetShoppingList(c *gin.Context) {
	items, err := h.lists.Get(c.Request.Context(), c.Param("week"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type manualItemRequest struct {
	Item           string  `json:"item" binding:"required"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	GrocerySection string  `json:"grocerySection"`
}

// AddManualItem appends a user-owned line to a week's list
func (h *Handler) AddManualItem(c *gin.Context) {
	var req manualItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.lists.AddManualItem(c.Request.Context(), c.Param("week"), domain.IngredientLine{
		Item:           req.Item,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		GrocerySection: req.GrocerySection,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

type updateItemRequest struct {
	Checked *bool `json:"checked" binding:"required"`
}

// UpdateItem toggles the checked state of a line
func (h *Handler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.lists.SetChecked(c.Request.Context(), c.Param("id"), *req.Checked); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveItem deletes a manual line
func (h *Handler) RemoveItem(c *gin.Context) {
	if err := h.lists.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// respondError maps domain errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrPlanEntryNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrGeneratedImmutable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
