package common

import "encoding/binary"

// HashSerializer is a Serializer of the Hash type
type HashSerializer struct{}

func (a HashSerializer) ToBytes(hash Hash) []byte {
	return hash[:]
}
func (a HashSerializer) FromBytes(bytes []byte) Hash {
	var hash Hash
	copy(hash[:], bytes)
	return hash
}
func (a HashSerializer) Size() int {
	return HashLength
}

// Identifier64Serializer is a Serializer of 64bit identifiers
type Identifier64Serializer[I Identifier] struct{}

func (a Identifier64Serializer[I]) ToBytes(id I) []byte {
	return binary.LittleEndian.AppendUint64([]byte{}, uint64(id))
}
func (a Identifier64Serializer[I]) FromBytes(bytes []byte) I {
	return I(binary.LittleEndian.Uint64(bytes))
}
func (a Identifier64Serializer[I]) Size() int {
	return 8
}

// Identifier32Serializer is a Serializer of 32bit identifiers
type Identifier32Serializer[I Identifier] struct{}

func (a Identifier32Serializer[I]) ToBytes(id I) []byte {
	return binary.LittleEndian.AppendUint32([]byte{}, uint32(id))
}
func (a Identifier32Serializer[I]) FromBytes(bytes []byte) I {
	return I(binary.LittleEndian.Uint32(bytes))
}
func (a Identifier32Serializer[I]) Size() int {
	return 4
}
