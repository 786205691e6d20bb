package backend_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/Ndacyayisenga-droid/hedera-services/backend"
	"github.com/Ndacyayisenga-droid/hedera-services/backend/cache"
	"github.com/Ndacyayisenga-droid/hedera-services/backend/file"
	"github.com/Ndacyayisenga-droid/hedera-services/backend/ldb"
	"github.com/Ndacyayisenga-droid/hedera-services/backend/memory"
	"github.com/Ndacyayisenga-droid/hedera-services/common"
)

// storeFactory creates a fresh store variant rooted in the given directory.
type storeFactory struct {
	label    string
	getStore func(t *testing.T, directory string) backend.Store[uint64, common.Hash]
}

func getStoreFactories() []storeFactory {
	return []storeFactory{
		{
			label: "Memory",
			getStore: func(t *testing.T, directory string) backend.Store[uint64, common.Hash] {
				return memory.NewStore[uint64, common.Hash](common.Hash{})
			},
		},
		{
			label: "File",
			getStore: func(t *testing.T, directory string) backend.Store[uint64, common.Hash] {
				store, err := file.NewStore[uint64, common.Hash](directory, common.HashSerializer{}, common.Hash{})
				if err != nil {
					t.Fatalf("failed to create file store; %s", err)
				}
				return store
			},
		},
		{
			label: "LevelDb",
			getStore: func(t *testing.T, directory string) backend.Store[uint64, common.Hash] {
				db, err := leveldb.OpenFile(directory, nil)
				if err != nil {
					t.Fatalf("failed to open leveldb; %s", err)
				}
				t.Cleanup(func() { _ = db.Close() })
				store := ldb.NewStore[uint64, common.Hash](db, common.HashStoreKey, common.HashSerializer{}, common.Identifier64Serializer[uint64]{}, common.Hash{})
				// the store does not own the shared database; closing through
				// this wrapper releases the directory lock so it can be reopened
				return ownedDbStore{store, db}
			},
		},
		{
			label: "CachedFile",
			getStore: func(t *testing.T, directory string) backend.Store[uint64, common.Hash] {
				wrapped, err := file.NewStore[uint64, common.Hash](directory, common.HashSerializer{}, common.Hash{})
				if err != nil {
					t.Fatalf("failed to create file store; %s", err)
				}
				store, err := cache.NewStore[uint64, common.Hash](wrapped, 16)
				if err != nil {
					t.Fatalf("failed to create cached store; %s", err)
				}
				return store
			},
		},
	}
}

type ownedDbStore struct {
	backend.Store[uint64, common.Hash]
	db *leveldb.DB
}

func (s ownedDbStore) Close() error {
	return errors.Join(s.Store.Close(), s.db.Close())
}

// testIds covers dense ids as well as sparse ids in distinct banks
// (the top byte of the id selects the bank in the file variant).
func testIds() []uint64 {
	ids := []uint64{0, 1, 2, 3, 55, 1024}
	for level := uint64(1); level <= 3; level++ {
		ids = append(ids, level<<56, level<<56|1, level<<56|129)
	}
	return ids
}

func testValue(seed uint64) common.Hash {
	var value common.Hash
	for i := 0; i < common.HashLength; i++ {
		value[i] = byte(seed + uint64(i))
	}
	return value
}

func TestStoresProduceEqualReadsForEqualWriteHistories(t *testing.T) {
	stores := map[string]backend.Store[uint64, common.Hash]{}
	for _, factory := range getStoreFactories() {
		stores[factory.label] = factory.getStore(t, t.TempDir())
	}
	defer func() {
		for _, store := range stores {
			_ = store.Close()
		}
	}()

	// identical write history against all variants, including overwrites
	for round := 0; round < 2; round++ {
		for i, id := range testIds() {
			for label, store := range stores {
				if err := store.Set(id, testValue(uint64(i*7+round))); err != nil {
					t.Fatalf("failed to set %s item %x; %s", label, id, err)
				}
			}
		}
	}

	// all variants must observe the same results, including unset ids
	for _, id := range append(testIds(), 123456, 5<<56|7) {
		var reference common.Hash
		for i, id2 := range testIds() {
			if id2 == id {
				reference = testValue(uint64(i*7 + 1))
			}
		}
		for label, store := range stores {
			value, err := store.Get(id)
			if err != nil {
				t.Fatalf("failed to get %s item %x; %s", label, id, err)
			}
			if value != reference {
				t.Errorf("%s store provides wrong value for %x: got %x, wanted %x", label, id, value, reference)
			}
		}
	}
}

func TestStoresProvideNonZeroDefaultsForUnsetIds(t *testing.T) {
	itemDefault := common.Hash{0xFF, 0xEE}

	fileStore, err := file.NewStore[uint64, common.Hash](t.TempDir(), common.HashSerializer{}, itemDefault)
	if err != nil {
		t.Fatalf("failed to create file store; %s", err)
	}
	db, err := leveldb.OpenFile(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("failed to open leveldb; %s", err)
	}
	stores := map[string]backend.Store[uint64, common.Hash]{
		"Memory":  memory.NewStore[uint64, common.Hash](itemDefault),
		"File":    fileStore,
		"LevelDb": ownedDbStore{ldb.NewStore[uint64, common.Hash](db, common.HashStoreKey, common.HashSerializer{}, common.Identifier64Serializer[uint64]{}, itemDefault), db},
	}
	defer func() {
		for _, store := range stores {
			_ = store.Close()
		}
	}()

	for label, store := range stores {
		if err := store.Set(10, common.Hash{0xAA}); err != nil {
			t.Fatalf("failed to set %s item; %s", label, err)
		}
		// ids in the hole before the item, beyond it and in other banks
		for _, id := range []uint64{0, 5, 9, 1000, 2<<56 | 3} {
			value, err := store.Get(id)
			if err != nil {
				t.Fatalf("failed to get %s item %x; %s", label, id, err)
			}
			if value != itemDefault {
				t.Errorf("%s store provides wrong default for %x: got %x, wanted %x", label, id, value, itemDefault)
			}
		}
		if value, err := store.Get(10); err != nil || value != (common.Hash{0xAA}) {
			t.Errorf("%s store lost the written item: %x, %s", label, value, err)
		}
	}
}

func TestStoresPersistFlushedDataAcrossReopen(t *testing.T) {
	for _, factory := range getStoreFactories() {
		if factory.label == "Memory" {
			continue // nothing persisted by the in-memory variant
		}
		t.Run(factory.label, func(t *testing.T) {
			directory := t.TempDir()

			store := factory.getStore(t, directory)
			for i, id := range testIds() {
				if err := store.Set(id, testValue(uint64(i))); err != nil {
					t.Fatalf("failed to set item %x; %s", id, err)
				}
			}
			if err := store.Flush(); err != nil {
				t.Fatalf("failed to flush store; %s", err)
			}
			if err := store.Close(); err != nil {
				t.Fatalf("failed to close store; %s", err)
			}

			reopened := factory.getStore(t, directory)
			defer reopened.Close()
			for i, id := range testIds() {
				value, err := reopened.Get(id)
				if err != nil {
					t.Fatalf("failed to get item %x; %s", id, err)
				}
				if value != testValue(uint64(i)) {
					t.Errorf("reopened store provides wrong value for %x: got %x, wanted %x", id, value, testValue(uint64(i)))
				}
			}
		})
	}
}

func TestDiskBackedStoresReportSizeOnDisk(t *testing.T) {
	for _, factory := range getStoreFactories() {
		t.Run(factory.label, func(t *testing.T) {
			store := factory.getStore(t, t.TempDir())
			defer store.Close()

			for i := uint64(0); i < 100; i++ {
				if err := store.Set(i, testValue(i)); err != nil {
					t.Fatalf("failed to set item %d; %s", i, err)
				}
			}
			if err := store.Flush(); err != nil {
				t.Fatalf("failed to flush store; %s", err)
			}
			size, err := store.GetSizeOnDisk()
			if err != nil {
				t.Fatalf("failed to measure size on disk; %s", err)
			}
			switch factory.label {
			case "Memory":
				if size != 0 {
					t.Errorf("in-memory store reports non-zero size on disk: %d", size)
				}
			case "LevelDb":
				// leveldb sizes are approximate and may lag behind compaction
				if size < 0 {
					t.Errorf("leveldb store reports negative size on disk: %d", size)
				}
			default:
				if size <= 0 {
					t.Errorf("disk-backed store reports no on-disk footprint")
				}
			}
		})
	}
}

func ExampleStore() {
	store := memory.NewStore[uint64, common.Hash](common.Hash{})
	_ = store.Set(5, common.Hash{0xAB})
	value, _ := store.Get(5)
	fmt.Printf("%x\n", value[0])
	// Output: ab
}
