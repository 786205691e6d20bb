package backend

import (
	"github.com/Ndacyayisenga-droid/hedera-services/common"
)

//go:generate mockgen -source backend.go -destination backend_mocks.go -package backend

// Store is a persistence layer mapping ordinal ids - virtual paths or leaf
// indexes - to fixed-size records. It has no knowledge of tree semantics;
// it only provides mutation/lookup support plus durability control.
//
// The type I is the type used for the ordinal numbers,
// the type V for the store values - needs to be serializable.
//
// All implementations must produce identical observable read results for
// identical write histories, so that the variants can be exchanged freely.
type Store[I common.Identifier, V any] interface {

	// Set creates or overwrites the mapping from the id to the value
	Set(id I, value V) error

	// Get returns the value associated with the id, or the store's
	// default value when the id was never written
	Get(id I) (V, error)

	// Flush materializes all pending writes into the persistent media
	Flush() error

	// GetSizeOnDisk provides the number of bytes the store occupies on disk
	GetSizeOnDisk() (int64, error)

	// Close flushes and closes the storage
	Close() error
}
