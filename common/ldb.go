package common

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDB is an interface missing in original LevelDB design.
// It contains the subset of methods the LevelDB-backed variants use,
// allowing tests to substitute instances transparently.
type LevelDB interface {

	// Get gets the value for the given key. It returns ErrNotFound if the
	// DB does not contain the key.
	Get(key []byte, ro *opt.ReadOptions) (value []byte, err error)

	// Has returns true if the DB does contain the given key.
	Has(key []byte, ro *opt.ReadOptions) (bool, error)

	// NewIterator returns an iterator for the latest snapshot of the
	// underlying DB. The iterator must be released after use.
	NewIterator(slice *util.Range, ro *opt.ReadOptions) iterator.Iterator

	// Put sets the value for the given key. It overwrites any previous value
	// for that key; a DB is not a multi-map.
	Put(key, value []byte, wo *opt.WriteOptions) error

	// Write applies the given batch to the DB. The batch records will be
	// applied sequentially.
	Write(batch *leveldb.Batch, wo *opt.WriteOptions) error

	// SizeOf calculates approximate sizes of the given key ranges.
	SizeOf(ranges []util.Range) (leveldb.Sizes, error)
}

// TableSpace divides a key-value storage into spaces by adding a prefix to the key.
type TableSpace byte

const (
	// LeafStoreKey is the table space of leaf records
	LeafStoreKey TableSpace = 'L'
	// HashStoreKey is the table space of internal node digests
	HashStoreKey TableSpace = 'H'
	// KeyIndexKey is the table space of the key to leaf path index
	KeyIndexKey TableSpace = 'K'
)

// DbKey expects max size of the 32B key plus at most two bytes
// for the table prefix and the domain.
type DbKey [34]byte

func (d DbKey) ToBytes() []byte {
	return d[:]
}

// ToDBKey converts the input key to its respective table space key
func (t TableSpace) ToDBKey(key []byte) DbKey {
	var dbKey DbKey
	dbKey[0] = byte(t)
	copy(dbKey[1:], key)
	return dbKey
}

// StrToDBKey converts the input key to its respective table space key
func (t TableSpace) StrToDBKey(key string) DbKey {
	var dbKey DbKey
	dbKey[0] = byte(t)
	copy(dbKey[1:], key)
	return dbKey
}
