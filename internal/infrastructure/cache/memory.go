package cache

import (
	"context"
	"sync"
	"time"

	"github.com/mealweek/backend/internal/domain"
)

// cacheItem represents a single cached list with expiration
type cacheItem struct {
	Items      []domain.ShoppingListItem
	Expiration time.Time
}

// MemoryCache is a thread-safe in-memory cache for rendered shopping lists,
// keyed by week. Entries expire on TTL and are also dropped explicitly when
// a week's list changes.
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		data: make(map[string]cacheItem),
	}

	// Cleanup goroutine removes expired entries every 10 minutes
	go cache.cleanupExpired()

	return cache
}

// Get retrieves a cached list. Returns a copy so callers cannot mutate the
// cached slice.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]domain.ShoppingListItem, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	if time.Now().After(item.Expiration) {
		return nil, domain.ErrCacheMiss
	}

	out := make([]domain.ShoppingListItem, len(item.Items))
	copy(out, item.Items)
	return out, nil
}

// Set stores a list with TTL. The slice is copied on the way in.
func (c *MemoryCache) Set(ctx context.Context, key string, items []domain.ShoppingListItem, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	stored := make([]domain.ShoppingListItem, len(items))
	copy(stored, items)

	c.data[key] = cacheItem{
		Items:      stored,
		Expiration: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a cached list
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// cleanupExpired removes expired entries from the cache periodically
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if now.After(item.Expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the current number of cached lists (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all cached lists
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]cacheItem)
}
