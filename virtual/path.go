package virtual

import "math/bits"

// Path addresses a node in the conceptual complete binary tree of a virtual
// map. The low 56 bits hold the node's index within its level, the high
// 8 bits the level. Leaves live at level 0 with monotonically assigned
// indexes; internal nodes cover their level-0 descendants, with the root of
// a tree of n leaves sitting at level ceil(log2(n)).
//
// A leaf keeps its path for the life of the map lineage; paths are never
// reassigned.
type Path uint64

const (
	levelShift = 56
	indexMask  = (uint64(1) << levelShift) - 1
)

// NewPath composes a path from a level and an index within the level.
func NewPath(level uint8, index uint64) Path {
	return Path(uint64(level)<<levelShift | index&indexMask)
}

// LeafPath provides the path of the leaf with the given index.
func LeafPath(index uint64) Path {
	return NewPath(0, index)
}

// Level provides the level of the node, counted from the leaves.
func (p Path) Level() uint8 {
	return uint8(uint64(p) >> levelShift)
}

// Index provides the index of the node within its level.
func (p Path) Index() uint64 {
	return uint64(p) & indexMask
}

// Parent provides the path of the node's parent.
func (p Path) Parent() Path {
	return NewPath(p.Level()+1, p.Index()/2)
}

// LeftChild provides the path of the node's left child.
// It must not be called on leaf paths.
func (p Path) LeftChild() Path {
	return NewPath(p.Level()-1, p.Index()*2)
}

// RightChild provides the path of the node's right child.
// It must not be called on leaf paths.
func (p Path) RightChild() Path {
	return NewPath(p.Level()-1, p.Index()*2+1)
}

// rootLevel provides the level of the root node of a tree covering the
// given number of leaves.
func rootLevel(leafCount uint64) uint8 {
	if leafCount <= 1 {
		return 0
	}
	return uint8(bits.Len64(leafCount - 1))
}

// levelWidth provides the number of nodes existing at the given level of
// a tree covering the given number of leaves.
func levelWidth(leafCount uint64, level uint8) uint64 {
	if leafCount == 0 {
		return 0
	}
	return ((leafCount - 1) >> level) + 1
}
