package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mealweek/backend/internal/domain"
)

// validSlots enumerates the accepted meal slots.
var validSlots = map[string]bool{
	domain.SlotBreakfast: true,
	domain.SlotLunch:     true,
	domain.SlotDinner:    true,
}

// validWeekStart reports whether week is a YYYY-MM-DD date.
func validWeekStart(week string) bool {
	_, err := time.Parse("2006-01-02", week)
	return err == nil
}

// MealPlanService handles recipe CRUD and weekly plan assignment
type MealPlanService struct {
	recipes domain.RecipeRepository
	plans   domain.MealPlanRepository
}

// NewMealPlanService creates a new meal plan service with dependencies
func NewMealPlanService(recipes domain.RecipeRepository, plans domain.MealPlanRepository) *MealPlanService {
	return &MealPlanService{
		recipes: recipes,
		plans:   plans,
	}
}

// CreateRecipe validates and stores a recipe. Ingredient lines saved without
// a grocery section get one suggested from the item name so that generated
// lists are sectioned without the caller having to tag every line.
func (s *MealPlanService) CreateRecipe(ctx context.Context, name string, ingredients []domain.IngredientLine) (*domain.Recipe, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: recipe name is required", domain.ErrInvalidRequest)
	}

	for i := range ingredients {
		if ingredients[i].Item == "" {
			return nil, fmt.Errorf("%w: ingredient %d has no item name", domain.ErrInvalidRequest, i)
		}
		if ingredients[i].Quantity < 0 {
			return nil, fmt.Errorf("%w: ingredient %q has negative quantity", domain.ErrInvalidRequest, ingredients[i].Item)
		}
		if ingredients[i].GrocerySection == "" {
			ingredients[i].GrocerySection = ClassifySection(ingredients[i].Item)
		}
	}

	recipe := &domain.Recipe{
		ID:          uuid.NewString(),
		Name:        name,
		Ingredients: ingredients,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}
	return recipe, nil
}

// GetRecipe returns one recipe by ID.
func (s *MealPlanService) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.recipes.GetByID(ctx, id)
}

// ListRecipes returns all recipes.
func (s *MealPlanService) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return s.recipes.List(ctx)
}

// DeleteRecipe removes a recipe. The store also removes any plan entries
// referencing it.
func (s *MealPlanService) DeleteRecipe(ctx context.Context, id string) error {
	return s.recipes.Delete(ctx, id)
}

// AssignRecipe places a recipe into one slot of one day in a week. The same
// recipe may be assigned any number of times; every assignment contributes
// its ingredients to that week's shopping list.
func (s *MealPlanService) AssignRecipe(ctx context.Context, weekStart string, day int, slot, recipeID string) (*domain.MealPlanEntry, error) {
	if !validWeekStart(weekStart) {
		return nil, fmt.Errorf("%w: week must be YYYY-MM-DD", domain.ErrInvalidRequest)
	}
	if day < 0 || day > 6 {
		return nil, fmt.Errorf("%w: day must be 0-6", domain.ErrInvalidRequest)
	}
	if !validSlots[slot] {
		return nil, fmt.Errorf("%w: unknown slot %q", domain.ErrInvalidRequest, slot)
	}

	// Reject dangling recipe references up front.
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		return nil, err
	}

	entry := &domain.MealPlanEntry{
		ID:        uuid.NewString(),
		WeekStart: weekStart,
		Day:       day,
		Slot:      slot,
		RecipeID:  recipeID,
	}

	if err := s.plans.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}
	return entry, nil
}

// RemoveEntry deletes one plan entry by ID.
func (s *MealPlanService) RemoveEntry(ctx context.Context, id string) error {
	return s.plans.Remove(ctx, id)
}

// GetWeek returns all plan entries for a week.
func (s *MealPlanService) GetWeek(ctx context.Context, weekStart string) ([]domain.MealPlanEntry, error) {
	if !validWeekStart(weekStart) {
		return nil, fmt.Errorf("%w: week must be YYYY-MM-DD", domain.ErrInvalidRequest)
	}
	return s.plans.ListWeek(ctx, weekStart)
}
