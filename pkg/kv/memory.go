package kv

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps values in-process. Entries share the session lifetime:
// they expire after an hour of inactivity, same as the session repository.
type MemoryStore struct {
	cache *cache.Cache
}

var _ Store = &MemoryStore{}

func NewMemoryStore() *MemoryStore {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &MemoryStore{cache: c}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	if x, found := m.cache.Get(key); found {
		return x.(string), nil
	}
	return "", ErrNotFound
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.cache.Set(key, value, cache.DefaultExpiration)
	return nil
}
