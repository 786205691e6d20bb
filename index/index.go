package index

import "github.com/Ndacyayisenga-droid/hedera-services/common"

// KeyIndex is an append-only index for a set of keys, mapping each added
// key to a unique, monotonically assigned ordinal number. The virtual map
// uses it as its key to leaf-path lookup; indexes are never reassigned and
// keys are never removed for the life of the index.
//
// The type parameter K, the key type, can be any type that can
// be hashed and compared. The type I is the type used for the
// ordinal numbers.
type KeyIndex[K comparable, I common.Identifier] interface {

	// GetOrAdd returns an index mapping for the key, or creates the new index
	GetOrAdd(key K) (I, error)

	// Get returns an index mapping for the key if it exists
	Get(key K) (I, bool, error)

	// Contains returns a bool flag to test existence of the key in the mapping
	Contains(key K) bool

	// Size returns the number of indexed keys, which is also the next
	// ordinal number to be assigned
	Size() (I, error)

	// Flush makes the index content durable where the variant persists data
	Flush() error

	// Close closes the storage and clean-ups all possible dirty values
	Close() error
}
