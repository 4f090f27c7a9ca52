package domain

import "errors"

var (
	// ErrRecipeNotFound is returned when a recipe ID does not exist
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrPlanEntryNotFound is returned when a meal plan entry ID does not exist
	ErrPlanEntryNotFound = errors.New("meal plan entry not found")

	// ErrItemNotFound is returned when a shopping list item ID does not exist
	ErrItemNotFound = errors.New("shopping list item not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrGeneratedImmutable is returned on attempts to delete a generated
	// line directly; generated lines only change through regeneration
	ErrGeneratedImmutable = errors.New("generated lines cannot be removed directly")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrStoreFailure is returned when the underlying store fails
	ErrStoreFailure = errors.New("store operation failed")
)
