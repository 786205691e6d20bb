package file

import (
	"os"
	"sync"
	"testing"

	"github.com/Ndacyayisenga-droid/hedera-services/common"
)

func TestFileStoreBanksRecordsByIdHighByte(t *testing.T) {
	directory := t.TempDir()
	store, err := NewStore[uint64, common.Hash](directory, common.HashSerializer{}, common.Hash{})
	if err != nil {
		t.Fatalf("failed to create store; %s", err)
	}
	defer store.Close()

	if err := store.Set(3, common.Hash{0x01}); err != nil {
		t.Fatalf("failed to set item; %s", err)
	}
	if err := store.Set(2<<56|3, common.Hash{0x02}); err != nil {
		t.Fatalf("failed to set item; %s", err)
	}

	for _, name := range []string{"00", "02"} {
		if _, err := os.Stat(directory + "/" + name); err != nil {
			t.Errorf("expected bank file %s does not exist; %s", name, err)
		}
	}

	value, err := store.Get(3)
	if err != nil || value != (common.Hash{0x01}) {
		t.Errorf("unexpected value in bank 00: %x, %s", value, err)
	}
	value, err = store.Get(2<<56 | 3)
	if err != nil || value != (common.Hash{0x02}) {
		t.Errorf("unexpected value in bank 02: %x, %s", value, err)
	}
}

func TestFileStoreProvidesDefaultForUnsetItems(t *testing.T) {
	store, err := NewStore[uint64, common.Hash](t.TempDir(), common.HashSerializer{}, common.Hash{0xFF})
	if err != nil {
		t.Fatalf("failed to create store; %s", err)
	}
	defer store.Close()

	// beyond the end of an empty bank file
	value, err := store.Get(1234)
	if err != nil {
		t.Fatalf("failed to get unset item; %s", err)
	}
	if value != (common.Hash{0xFF}) {
		t.Errorf("unexpected default value: %x", value)
	}

	// a hole before a written item reads as the default as well
	if err := store.Set(10, common.Hash{0xAA}); err != nil {
		t.Fatalf("failed to set item; %s", err)
	}
	value, err = store.Get(5)
	if err != nil {
		t.Fatalf("failed to get item in file hole; %s", err)
	}
	if value != (common.Hash{0xFF}) {
		t.Errorf("unexpected value in file hole: %x", value)
	}
}

func TestFileStoreSupportsConcurrentReaders(t *testing.T) {
	store, err := NewStore[uint64, common.Hash](t.TempDir(), common.HashSerializer{}, common.Hash{})
	if err != nil {
		t.Fatalf("failed to create store; %s", err)
	}
	defer store.Close()

	// concurrent reads race the lazy opening of the bank files
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for round := 0; round < 50; round++ {
				for bank := uint64(0); bank < 4; bank++ {
					value, err := store.Get(bank<<56 | uint64(round%7))
					if err != nil {
						t.Errorf("failed to get item; %s", err)
					}
					if value != (common.Hash{}) {
						t.Errorf("unexpected value: %x", value)
					}
				}
			}
		}()
	}
	wg.Wait()
}
