package access

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/sitehub-erp/sitehub/internal/shared"
)

// roleKey is the storage key holding the persisted role assignment.
const roleKey = "sitehub:role"

// KV is the opaque key-value string store the gate persists roles to.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// RedisKV persists values in Redis without expiry.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV wraps a Redis client as a KV store.
func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

// Get implements KV.
func (s *RedisKV) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", shared.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// Set implements KV.
func (s *RedisKV) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// MemoryKV is a process-local KV store.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get implements KV.
func (s *MemoryKV) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return "", shared.ErrNotFound
	}
	return value, nil
}

// Set implements KV.
func (s *MemoryKV) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// DualStore writes two independent stores for redundancy and reads the
// first that answers. A write failure on either side never propagates
// past Set's joined error; callers treat persistence as best effort.
type DualStore struct {
	primary  KV
	fallback KV
}

// NewDualStore composes primary and fallback stores. Either may be nil.
func NewDualStore(primary, fallback KV) *DualStore {
	return &DualStore{primary: primary, fallback: fallback}
}

// Get returns the value from the primary store, falling back to the
// secondary when the primary errors or misses.
func (d *DualStore) Get(ctx context.Context, key string) (string, error) {
	if d.primary != nil {
		if value, err := d.primary.Get(ctx, key); err == nil && value != "" {
			return value, nil
		}
	}
	if d.fallback != nil {
		return d.fallback.Get(ctx, key)
	}
	return "", shared.ErrNotFound
}

// Set writes both stores. Individual failures are joined so callers can
// log them; a partial write still counts as persisted.
func (d *DualStore) Set(ctx context.Context, key, value string) error {
	var errs []error
	if d.primary != nil {
		if err := d.primary.Set(ctx, key, value); err != nil {
			errs = append(errs, err)
		}
	}
	if d.fallback != nil {
		if err := d.fallback.Set(ctx, key, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
