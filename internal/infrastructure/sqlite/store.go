package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mealweek/backend/internal/domain"
)

// Store owns the sqlite connection and hands out the typed repositories.
type Store struct {
	db      *sql.DB
	recipes *RecipeStore
	plans   *MealPlanStore
	lists   *ShoppingListStore
}

// Open opens (or creates) the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	s.recipes = &RecipeStore{db: db}
	s.plans = &MealPlanStore{db: db}
	s.lists = &ShoppingListStore{db: db}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Recipes returns the recipe repository.
func (s *Store) Recipes() *RecipeStore { return s.recipes }

// Plans returns the meal plan repository.
func (s *Store) Plans() *MealPlanStore { return s.plans }

// Lists returns the shopping list repository.
func (s *Store) Lists() *ShoppingListStore { return s.lists }

func (s *Store) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS recipes (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS recipe_ingredients (
			recipe_id TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			item TEXT NOT NULL,
			quantity REAL NOT NULL,
			unit TEXT NOT NULL,
			grocery_section TEXT NOT NULL,
			PRIMARY KEY (recipe_id, position)
		);`,
		`CREATE TABLE IF NOT EXISTS meal_plan_entries (
			id TEXT PRIMARY KEY,
			week_start TEXT NOT NULL,
			day INTEGER NOT NULL,
			slot TEXT NOT NULL,
			recipe_id TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_plan_week ON meal_plan_entries(week_start);`,
		`CREATE TABLE IF NOT EXISTS shopping_list_items (
			id TEXT PRIMARY KEY,
			week_start TEXT NOT NULL,
			item TEXT NOT NULL,
			quantity REAL NOT NULL,
			unit TEXT NOT NULL,
			grocery_section TEXT NOT NULL,
			source TEXT NOT NULL,
			checked INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_list_week ON shopping_list_items(week_start);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// RecipeStore implements domain.RecipeRepository
type RecipeStore struct {
	db *sql.DB
}

func (r *RecipeStore) Create(ctx context.Context, recipe *domain.Recipe) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO recipes (id, name, created_at) VALUES (?, ?, ?)`,
		recipe.ID, recipe.Name, recipe.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, ing := range recipe.Ingredients {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, position, item, quantity, unit, grocery_section)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			recipe.ID, i, ing.Item, ing.Quantity, ing.Unit, ing.GrocerySection)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *RecipeStore) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	var recipe domain.Recipe
	var createdAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM recipes WHERE id = ?`, id).
		Scan(&recipe.ID, &recipe.Name, &createdAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}
	recipe.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	rows, err := r.db.QueryContext(ctx,
		`SELECT item, quantity, unit, grocery_section
		 FROM recipe_ingredients WHERE recipe_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ing domain.IngredientLine
		if err := rows.Scan(&ing.Item, &ing.Quantity, &ing.Unit, &ing.GrocerySection); err != nil {
			return nil, err
		}
		recipe.Ingredients = append(recipe.Ingredients, ing)
	}
	return &recipe, rows.Err()
}

func (r *RecipeStore) List(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM recipes ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		var recipe domain.Recipe
		var createdAt string
		if err := rows.Scan(&recipe.ID, &recipe.Name, &createdAt); err != nil {
			return nil, err
		}
		recipe.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Attach ingredients per recipe; recipe counts are small enough that a
	// query per recipe beats the bookkeeping of a join here.
	for i := range recipes {
		full, err := r.GetByID(ctx, recipes[i].ID)
		if err != nil {
			return nil, err
		}
		recipes[i].Ingredients = full.Ingredients
	}
	return recipes, nil
}

func (r *RecipeStore) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRecipeNotFound
	}
	// Ingredients and plan entries go with it via ON DELETE CASCADE.
	return nil
}

// MealPlanStore implements domain.MealPlanRepository
type MealPlanStore struct {
	db *sql.DB
}

func (m *MealPlanStore) Add(ctx context.Context, entry *domain.MealPlanEntry) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO meal_plan_entries (id, week_start, day, slot, recipe_id)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.WeekStart, entry.Day, entry.Slot, entry.RecipeID)
	return err
}

func (m *MealPlanStore) Remove(ctx context.Context, id string) error {
	res, err := m.db.ExecContext(ctx, `DELETE FROM meal_plan_entries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrPlanEntryNotFound
	}
	return nil
}

func (m *MealPlanStore) ListWeek(ctx context.Context, weekStart string) ([]domain.MealPlanEntry, error) {
	rows, err := m.db.QueryContext(ctx,
		`SELECT id, week_start, day, slot, recipe_id
		 FROM meal_plan_entries WHERE week_start = ? ORDER BY day, slot`, weekStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.MealPlanEntry
	for rows.Next() {
		var e domain.MealPlanEntry
		if err := rows.Scan(&e.ID, &e.WeekStart, &e.Day, &e.Slot, &e.RecipeID); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ShoppingListStore implements domain.ShoppingListRepository
type ShoppingListStore struct {
	db *sql.DB
}

// ReplaceGenerated swaps all generated rows for a week inside one
// transaction, so a failed regeneration leaves the previous list intact and
// manual rows are never touched.
func (l *ShoppingListStore) ReplaceGenerated(ctx context.Context, weekStart string, items []domain.ShoppingListItem) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM shopping_list_items WHERE week_start = ? AND source = ?`,
		weekStart, domain.SourceGenerated)
	if err != nil {
		return err
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO shopping_list_items (id, week_start, item, quantity, unit, grocery_section, source, checked, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			item.ID, item.WeekStart, item.Item, item.Quantity, item.Unit,
			item.GrocerySection, item.Source, boolToInt(item.Checked),
			item.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (l *ShoppingListStore) Insert(ctx context.Context, item *domain.ShoppingListItem) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO shopping_list_items (id, week_start, item, quantity, unit, grocery_section, source, checked, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.WeekStart, item.Item, item.Quantity, item.Unit,
		item.GrocerySection, item.Source, boolToInt(item.Checked),
		item.CreatedAt.Format(time.RFC3339))
	return err
}

func (l *ShoppingListStore) ListWeek(ctx context.Context, weekStart string) ([]domain.ShoppingListItem, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, week_start, item, quantity, unit, grocery_section, source, checked, created_at
		 FROM shopping_list_items WHERE week_start = ?
		 ORDER BY grocery_section, item, source`, weekStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ShoppingListItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (l *ShoppingListStore) GetByID(ctx context.Context, id string) (*domain.ShoppingListItem, error) {
	row := l.db.QueryRowContext(ctx,
		`SELECT id, week_start, item, quantity, unit, grocery_section, source, checked, created_at
		 FROM shopping_list_items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (l *ShoppingListStore) SetChecked(ctx context.Context, id string, checked bool) error {
	res, err := l.db.ExecContext(ctx,
		`UPDATE shopping_list_items SET checked = ? WHERE id = ?`, boolToInt(checked), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (l *ShoppingListStore) Delete(ctx context.Context, id string) error {
	res, err := l.db.ExecContext(ctx, `DELETE FROM shopping_list_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.ShoppingListItem, error) {
	var item domain.ShoppingListItem
	var checked int
	var createdAt string
	err := row.Scan(&item.ID, &item.WeekStart, &item.Item, &item.Quantity,
		&item.Unit, &item.GrocerySection, &item.Source, &checked, &createdAt)
	if err != nil {
		return nil, err
	}
	item.Checked = checked != 0
	item.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &item, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
