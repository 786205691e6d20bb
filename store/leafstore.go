package store

import (
	"errors"

	"github.com/Ndacyayisenga-droid/hedera-services/backend"
	"github.com/Ndacyayisenga-droid/hedera-services/common"
	"github.com/Ndacyayisenga-droid/hedera-services/index"
)

// LeafRecord is one key/value pair stored at a leaf path of the virtual map.
type LeafRecord[K comparable, V any] struct {
	Key   K
	Value V
}

// LeafRecordSerializer serializes leaf records as the concatenation of the
// key and the value encoding. The same encoding feeds the leaf digests, so
// identical records produce identical digests in every configuration.
type LeafRecordSerializer[K comparable, V any] struct {
	keys   common.Serializer[K]
	values common.Serializer[V]
}

// NewLeafRecordSerializer combines a key and a value serializer.
func NewLeafRecordSerializer[K comparable, V any](keys common.Serializer[K], values common.Serializer[V]) LeafRecordSerializer[K, V] {
	return LeafRecordSerializer[K, V]{keys, values}
}

func (s LeafRecordSerializer[K, V]) ToBytes(record LeafRecord[K, V]) []byte {
	bytes := make([]byte, 0, s.Size())
	bytes = append(bytes, s.keys.ToBytes(record.Key)...)
	return append(bytes, s.values.ToBytes(record.Value)...)
}

func (s LeafRecordSerializer[K, V]) FromBytes(bytes []byte) LeafRecord[K, V] {
	return LeafRecord[K, V]{
		Key:   s.keys.FromBytes(bytes[:s.keys.Size()]),
		Value: s.values.FromBytes(bytes[s.keys.Size():]),
	}
}

func (s LeafRecordSerializer[K, V]) Size() int {
	return s.keys.Size() + s.values.Size()
}

// LeafStore maintains the leaf records of a virtual map lineage: a versioned
// store of key/value records addressed by leaf paths, together with the
// key to leaf-path index needed for lookups. Leaf paths are assigned
// monotonically and are never reused.
type LeafStore[K comparable, V any] struct {
	keys    index.KeyIndex[K, uint64]
	records *Versioned[uint64, LeafRecord[K, V]]
}

// NewLeafStore combines a key index and a backing store of leaf records.
func NewLeafStore[K comparable, V any](keys index.KeyIndex[K, uint64], records backend.Store[uint64, LeafRecord[K, V]]) *LeafStore[K, V] {
	return &LeafStore[K, V]{
		keys:    keys,
		records: NewVersioned[uint64, LeafRecord[K, V]](records),
	}
}

// PathOf provides the leaf path assigned to the key, if any.
func (s *LeafStore[K, V]) PathOf(key K) (uint64, bool, error) {
	return s.keys.Get(key)
}

// Assign provides the leaf path of the key, assigning the next free path
// to keys not seen before.
func (s *LeafStore[K, V]) Assign(key K) (uint64, error) {
	return s.keys.GetOrAdd(key)
}

// KeyCount provides the number of leaf paths assigned so far.
func (s *LeafStore[K, V]) KeyCount() (uint64, error) {
	return s.keys.Size()
}

// ReadAt provides the leaf record at the given path as visible to the version.
func (s *LeafStore[K, V]) ReadAt(path uint64, version uint64) (LeafRecord[K, V], error) {
	return s.records.ReadAt(path, version)
}

// WriteAt records a mutation of the leaf record issued by the given version.
func (s *LeafStore[K, V]) WriteAt(path uint64, record LeafRecord[K, V], version uint64) error {
	return s.records.WriteAt(path, record, version)
}

// Flush materializes queued mutations up to the given version boundary.
func (s *LeafStore[K, V]) Flush(upTo uint64) error {
	return errors.Join(
		s.records.Flush(upTo),
		s.keys.Flush(),
	)
}

// GetSizeOnDisk provides the size of the leaf records on disk.
func (s *LeafStore[K, V]) GetSizeOnDisk() (int64, error) {
	return s.records.GetSizeOnDisk()
}

// Close flushes and closes the records and the index.
func (s *LeafStore[K, V]) Close() error {
	return errors.Join(
		s.records.Close(),
		s.keys.Close(),
	)
}
