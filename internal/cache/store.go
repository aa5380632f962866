package cache

import (
	"errors"
	"sync"

	"github.com/go-redis/redis"
)

// ErrNotFound reports a key with no stored value.
var ErrNotFound = errors.New("cache: key not found")

// Store is the raw persisted key-value layer the TTL cache sits on.
// Implementations hold opaque bytes; expiry bookkeeping lives above.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

type redisStore struct {
	rc *redis.Client
}

// NewRedisStore wraps a redis client as a Store. Entries are written without
// a server-side TTL; the cache layer owns expiry so a read can observe and
// remove a stale entry itself.
func NewRedisStore(rc *redis.Client) Store {
	return &redisStore{rc: rc}
}

func (s *redisStore) Get(key string) ([]byte, error) {
	raw, err := s.rc.Get(key).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(raw), nil
}

func (s *redisStore) Set(key string, value []byte) error {
	return s.rc.Set(key, value, 0).Err()
}

func (s *redisStore) Delete(key string) error {
	return s.rc.Del(key).Err()
}

type memoryStore struct {
	mu sync.RWMutex
	m  map[string][]byte
}

// NewMemoryStore returns a process-local Store, used in tests and when no
// redis address is configured.
func NewMemoryStore() Store {
	return &memoryStore{m: make(map[string][]byte)}
}

func (s *memoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (s *memoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	s.m[key] = cp
	return nil
}

func (s *memoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}
