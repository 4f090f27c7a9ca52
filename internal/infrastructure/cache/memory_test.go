package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mealweek/backend/internal/domain"
)

func items(names ...string) []domain.ShoppingListItem {
	out := make([]domain.ShoppingListItem, 0, len(names))
	for _, n := range names {
		out = append(out, domain.ShoppingListItem{ID: n, Item: n})
	}
	return out
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("get returns stored list before expiry", func(t *testing.T) {
		c := NewMemoryCache()
		if err := c.Set(ctx, "week:2026-08-24", items("flour", "milk"), time.Minute); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		got, err := c.Get(ctx, "week:2026-08-24")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("got %d items, want 2", len(got))
		}
	})

	t.Run("get misses unknown key", func(t *testing.T) {
		c := NewMemoryCache()
		_, err := c.Get(ctx, "nope")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss", err)
		}
	})

	t.Run("get misses expired entry", func(t *testing.T) {
		c := NewMemoryCache()
		if err := c.Set(ctx, "k", items("flour"), -time.Second); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		_, err := c.Get(ctx, "k")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss", err)
		}
	})

	t.Run("delete removes entry", func(t *testing.T) {
		c := NewMemoryCache()
		c.Set(ctx, "k", items("flour"), time.Minute)
		if err := c.Delete(ctx, "k"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := c.Get(ctx, "k"); !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss after delete", err)
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		c := NewMemoryCache()
		c.Set(ctx, "k", items("flour"), time.Minute)

		got, _ := c.Get(ctx, "k")
		got[0].Item = "mutated"

		again, _ := c.Get(ctx, "k")
		if again[0].Item != "flour" {
			t.Errorf("cached entry mutated through returned slice: %q", again[0].Item)
		}
	})

	t.Run("stored slice is a copy", func(t *testing.T) {
		c := NewMemoryCache()
		src := items("flour")
		c.Set(ctx, "k", src, time.Minute)
		src[0].Item = "mutated"

		got, _ := c.Get(ctx, "k")
		if got[0].Item != "flour" {
			t.Errorf("cached entry aliased caller slice: %q", got[0].Item)
		}
	})

	t.Run("size and clear", func(t *testing.T) {
		c := NewMemoryCache()
		c.Set(ctx, "a", items("x"), time.Minute)
		c.Set(ctx, "b", items("y"), time.Minute)
		if c.Size() != 2 {
			t.Errorf("Size() = %d, want 2", c.Size())
		}
		c.Clear()
		if c.Size() != 0 {
			t.Errorf("Size() = %d after Clear, want 0", c.Size())
		}
	})
}
