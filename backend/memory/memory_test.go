package memory

import (
	"testing"

	"github.com/Ndacyayisenga-droid/hedera-services/common"
)

func TestMemoryStoreBasicOperations(t *testing.T) {
	store := NewStore[uint32, common.Hash](common.Hash{0x42})
	defer store.Close()

	if value, err := store.Get(10); err != nil || value != (common.Hash{0x42}) {
		t.Errorf("unset item does not provide the default value: %x, %s", value, err)
	}
	if err := store.Set(10, common.Hash{0x07}); err != nil {
		t.Fatalf("failed to set item; %s", err)
	}
	if value, err := store.Get(10); err != nil || value != (common.Hash{0x07}) {
		t.Errorf("unexpected value: %x, %s", value, err)
	}
	if size, err := store.GetSizeOnDisk(); err != nil || size != 0 {
		t.Errorf("in-memory store must not occupy disk space: %d, %s", size, err)
	}
}
