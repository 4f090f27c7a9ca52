package domain

import (
	"context"
	"time"
)

// RecipeRepository defines the interface for recipe persistence
type RecipeRepository interface {
	Create(ctx context.Context, recipe *Recipe) error
	GetByID(ctx context.Context, id string) (*Recipe, error)
	List(ctx context.Context) ([]Recipe, error)
	Delete(ctx context.Context, id string) error
}

// MealPlanRepository defines the interface for weekly meal plan persistence
type MealPlanRepository interface {
	Add(ctx context.Context, entry *MealPlanEntry) error
	Remove(ctx context.Context, id string) error
	ListWeek(ctx context.Context, weekStart string) ([]MealPlanEntry, error)
}

// ShoppingListRepository defines the interface for shopping list persistence.
// ReplaceGenerated must atomically swap all generated rows for a week,
// leaving manual rows untouched.
type ShoppingListRepository interface {
	ReplaceGenerated(ctx context.Context, weekStart string, items []ShoppingListItem) error
	Insert(ctx context.Context, item *ShoppingListItem) error
	ListWeek(ctx context.Context, weekStart string) ([]ShoppingListItem, error)
	GetByID(ctx context.Context, id string) (*ShoppingListItem, error)
	SetChecked(ctx context.Context, id string, checked bool) error
	Delete(ctx context.Context, id string) error
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]ShoppingListItem, error)
	Set(ctx context.Context, key string, items []ShoppingListItem, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
