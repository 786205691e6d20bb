package store

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/Ndacyayisenga-droid/hedera-services/backend"
	backendcache "github.com/Ndacyayisenga-droid/hedera-services/backend/cache"
	backendfile "github.com/Ndacyayisenga-droid/hedera-services/backend/file"
	backendmemory "github.com/Ndacyayisenga-droid/hedera-services/backend/memory"
	"github.com/Ndacyayisenga-droid/hedera-services/common"
	"github.com/Ndacyayisenga-droid/hedera-services/index"
	indexldb "github.com/Ndacyayisenga-droid/hedera-services/index/ldb"
	indexmemory "github.com/Ndacyayisenga-droid/hedera-services/index/memory"
)

// Config selects the persistence variants of one virtual map lineage.
// Every combination of the two flags is behaviorally interchangeable,
// differing only in throughput and footprint.
type Config struct {
	// Directory is the storage location of all disk-backed parts.
	// It may be empty when both flags select in-memory variants.
	Directory string

	// InMemoryIndex selects the in-memory key to leaf-path index;
	// otherwise the index is kept in a LevelDB database under Directory.
	InMemoryIndex bool

	// InMemoryRecords selects in-memory leaf and digest stores; otherwise
	// records are kept in banked files under Directory.
	InMemoryRecords bool

	// CacheCapacity bounds an optional read cache applied to disk-backed
	// record stores; zero disables caching.
	CacheCapacity int
}

// Stores bundles the leaf store and the hash store of one lineage, sharing
// one storage location and lifetime.
type Stores[K comparable, V any] struct {
	Leaves  *LeafStore[K, V]
	Hashes  *HashStore
	Encoder common.Serializer[LeafRecord[K, V]]
	db      *leveldb.DB // nil unless the index is disk-backed
}

// Open resolves the configuration into a leaf store and a hash store.
// Disk-backed parts persist under the configured directory and are fully
// recovered when the same directory is opened again.
func Open[K comparable, V any](
	config Config,
	keySerializer common.Serializer[K],
	valueSerializer common.Serializer[V]) (*Stores[K, V], error) {

	encoder := NewLeafRecordSerializer[K, V](keySerializer, valueSerializer)

	var db *leveldb.DB
	var keys index.KeyIndex[K, uint64]
	if config.InMemoryIndex {
		keys = indexmemory.NewKeyIndex[K, uint64]()
	} else {
		var err error
		db, err = leveldb.OpenFile(config.Directory+"/index", nil)
		if err != nil {
			return nil, fmt.Errorf("failed to open index database; %w", err)
		}
		keys, err = indexldb.NewKeyIndex[K, uint64](db, common.KeyIndexKey, keySerializer, common.Identifier64Serializer[uint64]{})
		if err != nil {
			return nil, errors.Join(err, db.Close())
		}
	}

	leafRecords, err := openRecords[LeafRecord[K, V]](config, "leaves", encoder, LeafRecord[K, V]{})
	if err != nil {
		if db != nil {
			err = errors.Join(err, db.Close())
		}
		return nil, err
	}
	digests, err := openRecords[common.Hash](config, "hashes", common.HashSerializer{}, common.Hash{})
	if err != nil {
		err = errors.Join(err, leafRecords.Close())
		if db != nil {
			err = errors.Join(err, db.Close())
		}
		return nil, err
	}

	return &Stores[K, V]{
		Leaves:  NewLeafStore[K, V](keys, leafRecords),
		Hashes:  NewHashStore(digests),
		Encoder: encoder,
		db:      db,
	}, nil
}

// openRecords creates a record store variant per the configuration.
func openRecords[V any](config Config, name string, serializer common.Serializer[V], itemDefault V) (backend.Store[uint64, V], error) {
	if config.InMemoryRecords {
		return backendmemory.NewStore[uint64, V](itemDefault), nil
	}
	records, err := backendfile.NewStore[uint64, V](config.Directory+"/"+name, serializer, itemDefault)
	if err != nil {
		return nil, err
	}
	if config.CacheCapacity > 0 {
		return backendcache.NewStore[uint64, V](records, config.CacheCapacity)
	}
	return records, nil
}

// GetSizeOnDisk provides the combined on-disk footprint of both stores.
func (s *Stores[K, V]) GetSizeOnDisk() (int64, error) {
	leaves, err := s.Leaves.GetSizeOnDisk()
	if err != nil {
		return 0, err
	}
	hashes, err := s.Hashes.GetSizeOnDisk()
	if err != nil {
		return 0, err
	}
	return leaves + hashes, nil
}

// Close flushes and closes both stores and the index database.
func (s *Stores[K, V]) Close() error {
	err := errors.Join(
		s.Leaves.Close(),
		s.Hashes.Close(),
	)
	if s.db != nil {
		err = errors.Join(err, s.db.Close())
	}
	return err
}
