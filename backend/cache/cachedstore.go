package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Ndacyayisenga-droid/hedera-services/backend"
	"github.com/Ndacyayisenga-droid/hedera-services/common"
)

// Store wraps a cache and a store. It keeps recently accessed records in
// an LRU cache to reduce reads against the (potentially disk-backed)
// underlying store.
type Store[I common.Identifier, V any] struct {
	store backend.Store[I, V]
	cache *lru.Cache[I, V]
}

// NewStore creates a new store wrapping the input one, caching up to
// capacity records.
func NewStore[I common.Identifier, V any](store backend.Store[I, V], capacity int) (*Store[I, V], error) {
	cache, err := lru.New[I, V](capacity)
	if err != nil {
		return nil, err
	}
	return &Store[I, V]{store, cache}, nil
}

// Set a value of an item - writes through the cache
func (m *Store[I, V]) Set(id I, value V) error {
	m.cache.Add(id, value)
	return m.store.Set(id, value)
}

// Get a value of the item - provides the cached value when available
func (m *Store[I, V]) Get(id I) (V, error) {
	if value, exists := m.cache.Get(id); exists {
		return value, nil
	}
	value, err := m.store.Get(id)
	if err == nil {
		m.cache.Add(id, value)
	}
	return value, err
}

// Flush the underlying store
func (m *Store[I, V]) Flush() error {
	return m.store.Flush()
}

// GetSizeOnDisk provides the underlying store size on disk
func (m *Store[I, V]) GetSizeOnDisk() (int64, error) {
	return m.store.GetSizeOnDisk()
}

// Close the underlying store
func (m *Store[I, V]) Close() error {
	m.cache.Purge()
	return m.store.Close()
}
