package cache

import (
	"encoding/json"
	"fmt"
	"time"
)

const keyPrefix = "kisanbhai_cache_"

// Category TTLs for gateway side effects.
const (
	WeatherTTL = 15 * time.Minute
	AlertsTTL  = 30 * time.Minute
	SchemesTTL = 24 * time.Hour
)

// entry is the persisted envelope: the cached value plus the moment it was
// written and how long it stays valid.
type entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"` // unix millis
	Expiry    int64           `json:"expiry"`    // millis
}

// Cache is a TTL wrapper over a Store. Expiry is lazy: a read of a stale
// entry deletes it and reports a miss. There is no sweep and no eviction
// beyond TTL; unbounded growth is accepted at this scale.
type Cache struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Cache {
	return &Cache{store: store, now: time.Now}
}

// Key builds a namespaced cache key from a category and request parameters,
// so e.g. weather for two locations never cross-contaminate.
func Key(namespace string, params ...string) string {
	k := namespace
	for _, p := range params {
		k += "_" + p
	}
	return k
}

// Get unmarshals the cached value for key into out. It fails soft: a missing,
// malformed, or expired entry is a miss, and stale or corrupt entries are
// removed in the same call.
func (c *Cache) Get(key string, out any) bool {
	raw, err := c.store.Get(keyPrefix + key)
	if err != nil {
		return false
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		_ = c.store.Delete(keyPrefix + key)
		return false
	}

	age := c.now().UnixMilli() - e.Timestamp
	if age >= e.Expiry {
		_ = c.store.Delete(keyPrefix + key)
		return false
	}

	if err := json.Unmarshal(e.Data, out); err != nil {
		_ = c.store.Delete(keyPrefix + key)
		return false
	}
	return true
}

// Set stores value under key with the given ttl.
func (c *Cache) Set(key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: marshal value: %w", err)
	}
	e := entry{
		Data:      data,
		Timestamp: c.now().UnixMilli(),
		Expiry:    ttl.Milliseconds(),
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache: marshal entry: %w", err)
	}
	return c.store.Set(keyPrefix+key, raw)
}
