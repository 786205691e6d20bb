package virtual

import (
	"context"
	"fmt"
	"sync"

	"github.com/Ndacyayisenga-droid/hedera-services/common"
)

// Future is the single-assignment result of one asynchronous hashing run.
// It resolves into the root digest of the submitted generation, or into the
// error that made hashing fail.
type Future struct {
	done chan struct{}
	hash common.Hash
	err  error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) complete(hash common.Hash, err error) {
	f.hash, f.err = hash, err
	close(f.done)
}

// Get blocks until the hashing run has completed and provides its result.
// When the context expires first, ErrHashTimeout is reported while the run
// keeps going; a later Get can still collect the result.
func (f *Future) Get(ctx context.Context) (common.Hash, error) {
	select {
	case <-f.done:
		return f.hash, f.err
	case <-ctx.Done():
		return common.Hash{}, fmt.Errorf("%w; %s", ErrHashTimeout, ctx.Err())
	}
}

// Digester is the background hash pipeline of virtual maps. One worker
// processes submitted generations in submission order, computing leaf and
// internal-node digests incrementally from the set of mutated leaves.
//
// A digester can serve several map lineages at once. Close drains the queue
// and completes all accepted futures before returning.
type Digester[K comparable, V any] struct {
	mu     sync.Mutex
	jobs   chan *VirtualMap[K, V]
	done   chan struct{}
	closed bool
}

// digesterQueueSize bounds the number of generations waiting to be hashed;
// submissions beyond it block the caller.
const digesterQueueSize = 16

// StartDigester launches the background hashing worker.
func StartDigester[K comparable, V any]() *Digester[K, V] {
	d := &Digester[K, V]{
		jobs: make(chan *VirtualMap[K, V], digesterQueueSize),
		done: make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Digester[K, V]) run() {
	defer close(d.done)
	for m := range d.jobs {
		// a generation queued behind one that failed meanwhile would read
		// digests the failed run never produced; fail it instead
		var root common.Hash
		err := m.lineage.priorFailure(m)
		if err == nil {
			root, err = digest(m)
		}
		if err != nil {
			err = fmt.Errorf("failed to hash generation %d; %w", m.version, err)
		}
		l := m.lineage
		l.mu.Lock()
		if err != nil {
			m.state = stateFailed
		} else {
			m.state = stateHashed
		}
		l.mu.Unlock()
		m.future.complete(root, err)
	}
}

// submit queues a generation for hashing. Must not be called while holding
// the generation's lineage lock.
func (d *Digester[K, V]) submit(m *VirtualMap[K, V]) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrDigesterClosed
	}
	d.jobs <- m
	return nil
}

// Close rejects further submissions, waits until all queued hashing runs
// have completed, and stops the worker.
func (d *Digester[K, V]) Close() error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.jobs)
	}
	d.mu.Unlock()
	<-d.done
	return nil
}

// digest computes the root digest of a frozen generation. Only digests on
// paths from mutated leaves to the root are recomputed; all other digests
// resolve into data of earlier generations. The generation is frozen, so its
// dirty set is stable and may be read without the lineage lock.
func digest[K comparable, V any](m *VirtualMap[K, V]) (common.Hash, error) {
	stores := m.lineage.stores
	version, leafCount := m.version, m.leafCount
	if leafCount == 0 {
		return common.Hash{}, nil
	}

	dirty := make(map[uint64]struct{}, len(m.dirty))
	for leaf := range m.dirty {
		record, err := stores.Leaves.ReadAt(leaf, version)
		if err != nil {
			return common.Hash{}, err
		}
		digest := common.Keccak256(stores.Encoder.ToBytes(record))
		if err := stores.Hashes.WriteAt(uint64(LeafPath(leaf)), digest, version); err != nil {
			return common.Hash{}, err
		}
		dirty[leaf] = struct{}{}
	}

	root := rootLevel(leafCount)
	for level := uint8(1); level <= root; level++ {
		childWidth := levelWidth(leafCount, level-1)
		parents := make(map[uint64]struct{}, len(dirty)/2+1)
		for index := range dirty {
			parents[index/2] = struct{}{}
		}
		for index := range parents {
			node := NewPath(level, index)
			left, err := stores.Hashes.ReadAt(uint64(node.LeftChild()), version)
			if err != nil {
				return common.Hash{}, err
			}
			// a missing right child contributes the zero digest
			var payload [2 * common.HashLength]byte
			copy(payload[:], left[:])
			if right := node.RightChild(); right.Index() < childWidth {
				rightDigest, err := stores.Hashes.ReadAt(uint64(right), version)
				if err != nil {
					return common.Hash{}, err
				}
				copy(payload[common.HashLength:], rightDigest[:])
			}
			if err := stores.Hashes.WriteAt(uint64(node), common.Keccak256(payload[:]), version); err != nil {
				return common.Hash{}, err
			}
		}
		dirty = parents
	}
	return stores.Hashes.ReadAt(uint64(NewPath(root, 0)), version)
}
