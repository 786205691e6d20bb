package ldb

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"

	"github.com/Ndacyayisenga-droid/hedera-services/common"
	"github.com/Ndacyayisenga-droid/hedera-services/index"
)

const lastIndexKey = "last"

// KeyIndex represents a LevelDB-backed index.KeyIndex implementation.
// Both the key mappings and the next-free ordinal number are persisted,
// so the index fully recovers by reopening the same database.
type KeyIndex[K comparable, I common.Identifier] struct {
	db              common.LevelDB
	table           common.TableSpace
	keySerializer   common.Serializer[K]
	indexSerializer common.Serializer[I]
	lastIndex       I
}

// NewKeyIndex creates a new instance of the index backed by a persisted database
func NewKeyIndex[K comparable, I common.Identifier](
	db common.LevelDB,
	table common.TableSpace,
	keySerializer common.Serializer[K],
	indexSerializer common.Serializer[I]) (*KeyIndex[K, I], error) {

	// read the last index from the database
	var lastIndex I
	last, err := db.Get(table.StrToDBKey(lastIndexKey).ToBytes(), nil)
	if err != nil {
		if err != errors.ErrNotFound {
			return nil, err
		}
	} else {
		lastIndex = indexSerializer.FromBytes(last)
	}

	return &KeyIndex[K, I]{
		db:              db,
		table:           table,
		keySerializer:   keySerializer,
		indexSerializer: indexSerializer,
		lastIndex:       lastIndex,
	}, nil
}

// GetOrAdd returns an index mapping for the key, or creates the new index
func (m *KeyIndex[K, I]) GetOrAdd(key K) (I, error) {
	dbKey := m.convertKey(key).ToBytes()
	val, err := m.db.Get(dbKey, nil)
	if err == nil {
		return m.indexSerializer.FromBytes(val), nil
	}
	if err != errors.ErrNotFound {
		return 0, err
	}

	// map the input key to the next index as well as storing the next index
	idx := m.lastIndex
	next := idx + 1
	batch := new(leveldb.Batch)
	batch.Put(m.table.StrToDBKey(lastIndexKey).ToBytes(), m.indexSerializer.ToBytes(next))
	batch.Put(dbKey, m.indexSerializer.ToBytes(idx))
	if err := m.db.Write(batch, nil); err != nil {
		return 0, err
	}
	m.lastIndex = next
	return idx, nil
}

// Get returns an index mapping for the key if it exists
func (m *KeyIndex[K, I]) Get(key K) (I, bool, error) {
	val, err := m.db.Get(m.convertKey(key).ToBytes(), nil)
	if err != nil {
		if err == errors.ErrNotFound {
			return 0, false, nil
		}
		return 0, false, err
	}
	return m.indexSerializer.FromBytes(val), true, nil
}

// Contains returns a bool flag to test existence of the key in the mapping
func (m *KeyIndex[K, I]) Contains(key K) bool {
	exists, _ := m.db.Has(m.convertKey(key).ToBytes(), nil)
	return exists
}

// Size returns the number of indexed keys
func (m *KeyIndex[K, I]) Size() (I, error) {
	return m.lastIndex, nil
}

// Flush the index - writes are durable once the database write returns
func (m *KeyIndex[K, I]) Flush() error {
	return nil
}

// Close the index - the shared database is closed by its owner
func (m *KeyIndex[K, I]) Close() error {
	return nil
}

// convertKey translates the key into its database key
func (m *KeyIndex[K, I]) convertKey(key K) common.DbKey {
	return m.table.ToDBKey(m.keySerializer.ToBytes(key))
}

// the compile-time check the interface is implemented
var _ index.KeyIndex[common.Hash, uint64] = (*KeyIndex[common.Hash, uint64])(nil)
