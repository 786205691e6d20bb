package store

import (
	"github.com/Ndacyayisenga-droid/hedera-services/backend"
	"github.com/Ndacyayisenga-droid/hedera-services/common"
)

// HashStore maintains the internal-node digests of a virtual map lineage:
// a versioned store of 32-byte digests addressed by virtual paths. It is
// written exclusively by the hash pipeline; paths never written resolve to
// the zero digest.
type HashStore struct {
	digests *Versioned[uint64, common.Hash]
}

// NewHashStore creates a hash store above the given backing store.
func NewHashStore(digests backend.Store[uint64, common.Hash]) *HashStore {
	return &HashStore{
		digests: NewVersioned[uint64, common.Hash](digests),
	}
}

// ReadAt provides the digest at the given path as visible to the version.
func (s *HashStore) ReadAt(path uint64, version uint64) (common.Hash, error) {
	return s.digests.ReadAt(path, version)
}

// WriteAt records a mutation of the digest issued by the given version.
func (s *HashStore) WriteAt(path uint64, digest common.Hash, version uint64) error {
	return s.digests.WriteAt(path, digest, version)
}

// Flush materializes queued mutations up to the given version boundary.
func (s *HashStore) Flush(upTo uint64) error {
	return s.digests.Flush(upTo)
}

// GetSizeOnDisk provides the size of the digests on disk.
func (s *HashStore) GetSizeOnDisk() (int64, error) {
	return s.digests.GetSizeOnDisk()
}

// Close flushes and closes the digests.
func (s *HashStore) Close() error {
	return s.digests.Close()
}
