package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mealweek/backend/internal/domain"
)

// ShoppingListServiceConfig holds configuration for the shopping list service
type ShoppingListServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// ShoppingListService orchestrates list generation: it collects every
// ingredient line planned for a week, runs the grocery engine, and swaps the
// generated rows in storage while leaving manual rows alone.
type ShoppingListService struct {
	recipes            domain.RecipeRepository
	plans              domain.MealPlanRepository
	lists              domain.ShoppingListRepository
	cache              domain.CacheRepository
	engine             *GroceryEngine
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewShoppingListService creates a new shopping list service with dependencies
func NewShoppingListService(
	recipes domain.RecipeRepository,
	plans domain.MealPlanRepository,
	lists domain.ShoppingListRepository,
	cache domain.CacheRepository,
	config ShoppingListServiceConfig,
) *ShoppingListService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &ShoppingListService{
		recipes:            recipes,
		plans:              plans,
		lists:              lists,
		cache:              cache,
		engine:             NewGroceryEngine(EngineConfig{EnableDebugLogging: config.EnableDebugLogging}),
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Generate rebuilds the generated portion of a week's shopping list.
// Flow: load plan entries -> load referenced recipes (duplicates included) ->
// engine -> replace generated rows -> return the full list.
func (s *ShoppingListService) Generate(ctx context.Context, weekStart string) ([]domain.ShoppingListItem, error) {
	if !validWeekStart(weekStart) {
		return nil, fmt.Errorf("%w: week must be YYYY-MM-DD", domain.ErrInvalidRequest)
	}

	entries, err := s.plans.ListWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}

	// Every assignment contributes its full ingredient list. A recipe
	// planned three times feeds the aggregator three times.
	var lines []domain.IngredientLine
	for _, entry := range entries {
		recipe, err := s.recipes.GetByID(ctx, entry.RecipeID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, recipe.Ingredients...)
	}

	if s.enableDebugLogging {
		log.Printf("[GENERATE] week=%s entries=%d raw lines=%d", weekStart, len(entries), len(lines))
	}

	rendered := s.engine.BuildList(lines)
	sortLines(rendered)

	now := time.Now().UTC()
	items := make([]domain.ShoppingListItem, 0, len(rendered))
	for _, line := range rendered {
		items = append(items, domain.ShoppingListItem{
			ID:             uuid.NewString(),
			WeekStart:      weekStart,
			Item:           line.Item,
			Quantity:       line.Quantity,
			Unit:           line.Unit,
			GrocerySection: line.GrocerySection,
			Source:         line.Source,
			CreatedAt:      now,
		})
	}

	if err := s.lists.ReplaceGenerated(ctx, weekStart, items); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}

	s.invalidate(ctx, weekStart)
	return s.Get(ctx, weekStart)
}

// Get returns a week's full shopping list (generated and manual rows),
// serving from cache when possible.
func (s *ShoppingListService) Get(ctx context.Context, weekStart string) ([]domain.ShoppingListItem, error) {
	if !validWeekStart(weekStart) {
		return nil, fmt.Errorf("%w: week must be YYYY-MM-DD", domain.ErrInvalidRequest)
	}

	key := listCacheKey(weekStart)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		return cached, nil
	}

	items, err := s.lists.ListWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}

	if err := s.cache.Set(ctx, key, items, s.cacheTTL); err != nil && s.enableDebugLogging {
		log.Printf("[GENERATE] cache set failed for %s: %v", weekStart, err)
	}
	return items, nil
}

// AddManualItem appends a user-owned line to a week's list. Manual lines
// bypass the engine entirely: quantity and unit are stored as given, and the
// grocery section defaults to "other" when omitted. Regeneration never
// touches them.
func (s *ShoppingListService) AddManualItem(ctx context.Context, weekStart string, line domain.IngredientLine) (*domain.ShoppingListItem, error) {
	if !validWeekStart(weekStart) {
		return nil, fmt.Errorf("%w: week must be YYYY-MM-DD", domain.ErrInvalidRequest)
	}
	if line.Item == "" {
		return nil, fmt.Errorf("%w: item name is required", domain.ErrInvalidRequest)
	}

	section := line.GrocerySection
	if section == "" {
		section = DefaultSection
	}

	item := &domain.ShoppingListItem{
		ID:             uuid.NewString(),
		WeekStart:      weekStart,
		Item:           line.Item,
		Quantity:       line.Quantity,
		Unit:           line.Unit,
		GrocerySection: section,
		Source:         domain.SourceManual,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.lists.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}

	s.invalidate(ctx, weekStart)
	return item, nil
}

// SetChecked toggles the checked state of one line.
func (s *ShoppingListService) SetChecked(ctx context.Context, id string, checked bool) error {
	item, err := s.lists.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.lists.SetChecked(ctx, id, checked); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}
	s.invalidate(ctx, item.WeekStart)
	return nil
}

// RemoveItem deletes a manual line. Generated lines are refused: the way to
// change them is to change the plan and regenerate.
func (s *ShoppingListService) RemoveItem(ctx context.Context, id string) error {
	item, err := s.lists.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item.Source == domain.SourceGenerated {
		return domain.ErrGeneratedImmutable
	}
	if err := s.lists.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}
	s.invalidate(ctx, item.WeekStart)
	return nil
}

func (s *ShoppingListService) invalidate(ctx context.Context, weekStart string) {
	if err := s.cache.Delete(ctx, listCacheKey(weekStart)); err != nil && s.enableDebugLogging {
		log.Printf("[GENERATE] cache invalidation failed for %s: %v", weekStart, err)
	}
}

// listCacheKey builds the cache key for one week's rendered list.
func listCacheKey(weekStart string) string {
	return fmt.Sprintf("shoppinglist:%s", weekStart)
}

// sortLines orders lines by grocery section then item name so persisted and
// served lists are stable. The sort is stable so the engine's coarse-to-fine
// unit order within one item (cup before tbsp before tsp) is preserved.
func sortLines(lines []domain.ShoppingListLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].GrocerySection != lines[j].GrocerySection {
			return lines[i].GrocerySection < lines[j].GrocerySection
		}
		return lines[i].Item < lines[j].Item
	})
}
