package ldb

import (
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/Ndacyayisenga-droid/hedera-services/common"
)

// Store is a database-based backend.Store implementation. It stores items
// in a LevelDB key-value database under the given table space.
type Store[I common.Identifier, V any] struct {
	db              common.LevelDB
	table           common.TableSpace
	valueSerializer common.Serializer[V]
	indexSerializer common.Serializer[I]
	itemDefault     V
}

// NewStore constructs a new instance of the Store.
// The provided database is shared with other table spaces and is not owned
// (i.e. not closed) by this store.
func NewStore[I common.Identifier, V any](
	db common.LevelDB,
	table common.TableSpace,
	valueSerializer common.Serializer[V],
	indexSerializer common.Serializer[I],
	itemDefault V) *Store[I, V] {

	return &Store[I, V]{
		db:              db,
		table:           table,
		valueSerializer: valueSerializer,
		indexSerializer: indexSerializer,
		itemDefault:     itemDefault,
	}
}

// convertKey translates the id into its database key
func (m *Store[I, V]) convertKey(id I) common.DbKey {
	return m.table.ToDBKey(m.indexSerializer.ToBytes(id))
}

// Set a value of an item
func (m *Store[I, V]) Set(id I, value V) error {
	return m.db.Put(m.convertKey(id).ToBytes(), m.valueSerializer.ToBytes(value), nil)
}

// Get a value of the item (or the itemDefault, if not set)
func (m *Store[I, V]) Get(id I) (V, error) {
	value, err := m.db.Get(m.convertKey(id).ToBytes(), nil)
	if err != nil {
		if err == errors.ErrNotFound {
			return m.itemDefault, nil
		}
		return m.itemDefault, err
	}
	return m.valueSerializer.FromBytes(value), nil
}

// Flush the store - writes are durable once the database write returns
func (m *Store[I, V]) Flush() error {
	return nil
}

// GetSizeOnDisk provides the approximate size of the table space on disk
func (m *Store[I, V]) GetSizeOnDisk() (int64, error) {
	start := common.DbKey{byte(m.table)}
	limit := common.DbKey{byte(m.table) + 1}
	sizes, err := m.db.SizeOf([]util.Range{{Start: start.ToBytes(), Limit: limit.ToBytes()}})
	if err != nil {
		return 0, err
	}
	return sizes.Sum(), nil
}

// Close the store - the shared database is closed by its owner
func (m *Store[I, V]) Close() error {
	return nil
}
