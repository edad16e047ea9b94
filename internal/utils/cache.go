package utils

import (
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheItem wraps cached data with its expiry time.
type cacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// TTLCache is a small in-process LRU cache with per-entry TTL, used
// for the explore-map pin payload.
type TTLCache struct {
	lruCache *lru.Cache[string, cacheItem]
}

var cacheInstance *TTLCache

// GetCache returns the shared cache instance.
func GetCache() *TTLCache {
	if cacheInstance == nil {
		l, err := lru.New[string, cacheItem](256)
		if err != nil {
			log.Fatalf("Failed to create LRU cache: %v", err)
		}
		cacheInstance = &TTLCache{
			lruCache: l,
		}
	}
	return cacheInstance
}

// Set stores data under key for the given TTL.
func (c *TTLCache) Set(key string, data interface{}, ttl time.Duration) {
	c.lruCache.Add(key, cacheItem{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	})
}

// Get returns the cached data, or nil when missing or expired.
func (c *TTLCache) Get(key string) interface{} {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil
	}
	return val.Data
}

// Delete drops the entry for key.
func (c *TTLCache) Delete(key string) {
	c.lruCache.Remove(key)
}
