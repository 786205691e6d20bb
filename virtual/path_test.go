package virtual

import "testing"

func TestPathEncodesLevelAndIndex(t *testing.T) {
	tests := []struct {
		level uint8
		index uint64
	}{
		{0, 0},
		{0, 12345},
		{1, 0},
		{7, 1<<40 + 17},
		{255, 1<<56 - 1},
	}
	for _, test := range tests {
		path := NewPath(test.level, test.index)
		if path.Level() != test.level {
			t.Errorf("wrong level of (%d,%d): got %d", test.level, test.index, path.Level())
		}
		if path.Index() != test.index {
			t.Errorf("wrong index of (%d,%d): got %d", test.level, test.index, path.Index())
		}
	}
}

func TestLeafPathsAreLevelZero(t *testing.T) {
	if LeafPath(42) != Path(42) {
		t.Errorf("leaf paths are not identical to their index: %d", LeafPath(42))
	}
	if LeafPath(42).Level() != 0 {
		t.Errorf("leaf path has non-zero level: %d", LeafPath(42).Level())
	}
}

func TestPathNavigation(t *testing.T) {
	node := NewPath(3, 5)
	if got := node.Parent(); got != NewPath(4, 2) {
		t.Errorf("wrong parent: level %d, index %d", got.Level(), got.Index())
	}
	if got := node.LeftChild(); got != NewPath(2, 10) {
		t.Errorf("wrong left child: level %d, index %d", got.Level(), got.Index())
	}
	if got := node.RightChild(); got != NewPath(2, 11) {
		t.Errorf("wrong right child: level %d, index %d", got.Level(), got.Index())
	}
	if got := node.LeftChild().Parent(); got != node {
		t.Errorf("left child does not lead back to its parent: %d", got)
	}
	if got := node.RightChild().Parent(); got != node {
		t.Errorf("right child does not lead back to its parent: %d", got)
	}
}

func TestRootLevelGrowsLogarithmically(t *testing.T) {
	tests := []struct {
		leafCount uint64
		level     uint8
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{9, 4},
		{1 << 20, 20},
		{1<<20 + 1, 21},
	}
	for _, test := range tests {
		if got := rootLevel(test.leafCount); got != test.level {
			t.Errorf("wrong root level for %d leaves: got %d, wanted %d", test.leafCount, got, test.level)
		}
	}
}

func TestLevelWidthHalvesTowardsTheRoot(t *testing.T) {
	tests := []struct {
		leafCount uint64
		level     uint8
		width     uint64
	}{
		{0, 0, 0},
		{1, 0, 1},
		{5, 0, 5},
		{5, 1, 3},
		{5, 2, 2},
		{5, 3, 1},
		{8, 1, 4},
		{8, 3, 1},
	}
	for _, test := range tests {
		if got := levelWidth(test.leafCount, test.level); got != test.width {
			t.Errorf("wrong width of level %d for %d leaves: got %d, wanted %d", test.level, test.leafCount, got, test.width)
		}
	}
}
