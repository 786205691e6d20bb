package common

import "golang.org/x/exp/constraints"

// HashLength is the byte length of all digests used in the store.
const HashLength = 32

// Hash is a cryptographic digest of a node or a leaf record.
type Hash [HashLength]byte

// Identifier is a constraint for ordinal types addressing records in a
// backing store - virtual paths and leaf indexes.
type Identifier interface {
	constraints.Unsigned
}

// Serializer converts a value into a fixed-size binary form and back.
// All records held by backing stores are serialized through this interface,
// so that the in-memory and on-disk variants observe identical encodings.
type Serializer[T any] interface {

	// ToBytes serializes the value into its binary form
	ToBytes(T) []byte

	// FromBytes deserializes a value from the given bytes
	FromBytes([]byte) T

	// Size provides the length of the serialized form in bytes
	Size() int
}

// Flusher is any type that can be flushed.
type Flusher interface {
	Flush() error
}

// FlushAndCloser is a type that can be flushed and closed.
type FlushAndCloser interface {
	Flusher
	Close() error
}
