package memory

import (
	"github.com/Ndacyayisenga-droid/hedera-services/common"
)

// KeyIndex is an in-memory index.KeyIndex implementation - it maps keys to
// ordinal numbers using a plain process-resident map.
type KeyIndex[K comparable, I common.Identifier] struct {
	data map[K]I
}

// NewKeyIndex constructs a new instance of the in-memory KeyIndex.
func NewKeyIndex[K comparable, I common.Identifier]() *KeyIndex[K, I] {
	return &KeyIndex[K, I]{
		data: make(map[K]I),
	}
}

// GetOrAdd returns an index mapping for the key, or creates the new index
func (m *KeyIndex[K, I]) GetOrAdd(key K) (I, error) {
	idx, exists := m.data[key]
	if !exists {
		idx = I(len(m.data))
		m.data[key] = idx
	}
	return idx, nil
}

// Get returns an index mapping for the key if it exists
func (m *KeyIndex[K, I]) Get(key K) (I, bool, error) {
	idx, exists := m.data[key]
	return idx, exists, nil
}

// Contains returns a bool flag to test existence of the key in the mapping
func (m *KeyIndex[K, I]) Contains(key K) bool {
	_, exists := m.data[key]
	return exists
}

// Size returns the number of indexed keys
func (m *KeyIndex[K, I]) Size() (I, error) {
	return I(len(m.data)), nil
}

// Flush the index - a no-op for the in-memory variant
func (m *KeyIndex[K, I]) Flush() error {
	return nil
}

// Close the index
func (m *KeyIndex[K, I]) Close() error {
	return nil
}
