package domain

import "time"

// IngredientLine is one raw requirement pulled from a recipe. Quantities are
// assumed to be valid non-negative numbers by the time they reach the engine;
// input validation happens at the delivery layer.
type IngredientLine struct {
	Item           string  `json:"item" binding:"required"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	GrocerySection string  `json:"grocerySection,omitempty"`
}

// FamilyKind identifies a group of inter-convertible units.
type FamilyKind string

const (
	FamilyVolume FamilyKind = "volume"
	FamilyWeight FamilyKind = "weight"
	FamilyCount  FamilyKind = "count"
	FamilyOther  FamilyKind = "other"
)

// UnitFamily is the classification of a unit string. For FamilyOther the
// Other field carries the canonical unit string, making each unrecognized
// unit its own singleton family. The struct is comparable so it can key maps.
type UnitFamily struct {
	Kind  FamilyKind
	Other string
}

// ShoppingListLine is one line of a rendered shopping list as produced by the
// engine: quantity already rounded for display, unit already up-converted.
type ShoppingListLine struct {
	Item           string  `json:"item"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	GrocerySection string  `json:"grocerySection"`
	Source         string  `json:"source"`
}

// Line sources. Generated lines are replaced wholesale on every regeneration;
// manual lines are owned by the user and survive it.
const (
	SourceGenerated = "generated"
	SourceManual    = "manual"
)

// ShoppingListItem is the persisted form of a shopping list line.
type ShoppingListItem struct {
	ID             string    `json:"id"`
	WeekStart      string    `json:"weekStart"`
	Item           string    `json:"item"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit"`
	GrocerySection string    `json:"grocerySection"`
	Source         string    `json:"source"`
	Checked        bool      `json:"checked"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Recipe is a named set of ingredient lines.
type Recipe struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Ingredients []IngredientLine `json:"ingredients"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// Meal slots for a plan entry.
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
)

// MealPlanEntry assigns a recipe to one slot of one day in a week. WeekStart
// is the Monday of the week in YYYY-MM-DD form; Day is 0 (Monday) through 6.
// The same recipe may appear in any number of entries.
type MealPlanEntry struct {
	ID        string `json:"id"`
	WeekStart string `json:"weekStart"`
	Day       int    `json:"day"`
	Slot      string `json:"slot"`
	RecipeID  string `json:"recipeId"`
}
