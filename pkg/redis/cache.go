package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache provides named, JSON-serialized caching on top of a Client.
// Keys are stored as CacheName::key. The TTL comes from the client
// configuration for the cache name, falling back to the default TTL.
type Cache struct {
	client *Client
	name   string
}

// NewCache creates a cache bound to the given cache name
func NewCache(client *Client, name string) *Cache {
	return &Cache{
		client: client,
		name:   name,
	}
}

// buildKey constructs the full cache key using CacheName::key format
func (c *Cache) buildKey(key string) string {
	if c.name != "" {
		return c.name + "::" + key
	}
	return key
}

// ttl returns the TTL configured for this cache name
func (c *Cache) ttl() time.Duration {
	if t, exists := c.client.config.CacheTTLs[c.name]; exists {
		return t
	}
	return c.client.config.DefaultCacheTTL
}

// Get retrieves a value from cache and unmarshals it into dest.
// Returns ErrCacheMiss when the key is absent.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.GetBytes(ctx, c.buildKey(key))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Set marshals value to JSON and stores it with the configured TTL
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.buildKey(key), data, c.ttl())
}

// Delete removes a value from cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildKey(key))
}

// Clear removes all keys of this cache matching the given pattern
func (c *Cache) Clear(ctx context.Context, pattern string) error {
	keys, err := c.client.Keys(ctx, c.buildKey(pattern))
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return c.client.Delete(ctx, keys...)
	}
	return nil
}
