package memory

import (
	"github.com/Ndacyayisenga-droid/hedera-services/common"
)

// Store is an in-memory backend.Store implementation - it holds the mapping
// of ids to values entirely in process memory. There is no flush cost and no
// on-disk footprint; the store is bounded only by available memory.
type Store[I common.Identifier, V any] struct {
	data        map[I]V
	itemDefault V
}

// NewStore constructs a new instance of the in-memory Store.
// It needs the default value reported for ids that were never set.
func NewStore[I common.Identifier, V any](itemDefault V) *Store[I, V] {
	return &Store[I, V]{
		data:        make(map[I]V),
		itemDefault: itemDefault,
	}
}

// Set a value of an item
func (m *Store[I, V]) Set(id I, value V) error {
	m.data[id] = value
	return nil
}

// Get a value of the item (or the itemDefault, if not set)
func (m *Store[I, V]) Get(id I) (V, error) {
	if value, exists := m.data[id]; exists {
		return value, nil
	}
	return m.itemDefault, nil
}

// Flush the store - a no-op for the in-memory variant
func (m *Store[I, V]) Flush() error {
	return nil
}

// GetSizeOnDisk provides the store size on disk - always zero for this variant
func (m *Store[I, V]) GetSizeOnDisk() (int64, error) {
	return 0, nil
}

// Close the store
func (m *Store[I, V]) Close() error {
	return nil
}
