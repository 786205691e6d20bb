package virtual

import (
	"errors"
	"sync"

	"github.com/Ndacyayisenga-droid/hedera-services/store"
)

// VirtualMap is one generation of a copy-on-write key/value map lineage.
// At most one generation is mutable at any time; Copy freezes the receiver
// and provides the next mutable generation. Frozen generations are immutable
// snapshots that stay readable until they have been hashed and released.
//
// All generations of one lineage share the same backing stores; a generation
// only carries the version it reads at and the set of leaves it mutated, so
// Copy is constant time regardless of the map size.
type VirtualMap[K comparable, V any] struct {
	lineage   *lineage[K, V]
	version   uint64
	state     generationState // guarded by lineage.mu
	dirty     map[uint64]struct{}
	leafCount uint64
	future    *Future
}

// lineage holds the state shared by all generations of one virtual map.
type lineage[K comparable, V any] struct {
	mu       sync.Mutex
	submitMu sync.Mutex // serializes digester submissions, taken before mu
	stores   *store.Stores[K, V]
	digester *Digester[K, V]
	live     []*VirtualMap[K, V] // unreleased generations, oldest first
}

// New creates the initial, mutable generation of a virtual map above the
// given stores. Leaf records already present in the stores, from an earlier
// run against the same storage location, are part of the map's content.
//
// The digester is shared infrastructure and is not closed by the map.
func New[K comparable, V any](stores *store.Stores[K, V], digester *Digester[K, V]) (*VirtualMap[K, V], error) {
	count, err := stores.Leaves.KeyCount()
	if err != nil {
		return nil, err
	}
	l := &lineage[K, V]{stores: stores, digester: digester}
	m := &VirtualMap[K, V]{
		lineage:   l,
		state:     stateCurrent,
		dirty:     map[uint64]struct{}{},
		leafCount: count,
	}
	l.live = append(l.live, m)
	return m, nil
}

// Get provides the value of the key as visible to this generation. Keys the
// generation has never seen report absence rather than an error. Reads stay
// available after the generation was frozen, also while it is being hashed.
func (m *VirtualMap[K, V]) Get(key K) (V, bool, error) {
	var none V
	l := m.lineage
	l.mu.Lock()
	defer l.mu.Unlock()
	if m.state == stateReleased {
		return none, false, ErrReleased
	}
	path, exists, err := l.stores.Leaves.PathOf(key)
	if err != nil {
		return none, false, err
	}
	// paths assigned by newer generations are not part of this snapshot
	if !exists || path >= m.leafCount {
		return none, false, nil
	}
	record, err := l.stores.Leaves.ReadAt(path, m.version)
	if err != nil {
		return none, false, err
	}
	return record.Value, true, nil
}

// Put sets the value of the key in this generation. Only the current
// generation of a lineage accepts mutations.
func (m *VirtualMap[K, V]) Put(key K, value V) error {
	l := m.lineage
	l.mu.Lock()
	defer l.mu.Unlock()
	if m.state != stateCurrent {
		return ErrNotCurrent
	}
	path, err := l.stores.Leaves.Assign(key)
	if err != nil {
		return err
	}
	if path == m.leafCount {
		m.leafCount++
	}
	record := store.LeafRecord[K, V]{Key: key, Value: value}
	if err := l.stores.Leaves.WriteAt(path, record, m.version); err != nil {
		return err
	}
	m.dirty[path] = struct{}{}
	return nil
}

// Copy freezes this generation and provides the next mutable generation of
// the lineage. The frozen receiver keeps serving reads at its snapshot.
func (m *VirtualMap[K, V]) Copy() (*VirtualMap[K, V], error) {
	l := m.lineage
	l.mu.Lock()
	defer l.mu.Unlock()
	if m.state != stateCurrent {
		return nil, ErrNotCurrent
	}
	if err := l.flushLocked(); err != nil {
		return nil, err
	}
	m.state = stateFrozen
	next := &VirtualMap[K, V]{
		lineage:   l,
		version:   m.version + 1,
		state:     stateCurrent,
		dirty:     map[uint64]struct{}{},
		leafCount: m.leafCount,
	}
	l.live = append(l.live, next)
	return next, nil
}

// HashAsync submits this frozen generation to the background digester and
// provides a future resolving into the root digest. Repeated calls on the
// same generation provide the same future.
//
// Generations must be submitted oldest first: the digest walk recomputes
// only the ancestors of this generation's mutations and reads all other
// digests from the preceding generations. A submission skipping an
// unsubmitted older generation is rejected with ErrOutOfOrderHashing; a
// lineage whose older generation failed hashing cannot make progress and
// reports ErrHashingFailed.
func (m *VirtualMap[K, V]) HashAsync() (*Future, error) {
	l := m.lineage
	l.submitMu.Lock()
	defer l.submitMu.Unlock()
	l.mu.Lock()
	switch m.state {
	case stateHashing, stateHashed, stateFailed:
		future := m.future
		l.mu.Unlock()
		return future, nil
	case stateFrozen:
		// handled below
	default:
		l.mu.Unlock()
		return nil, ErrNotFrozen
	}
	for _, older := range l.live {
		if older == m {
			break
		}
		if older.state == stateFrozen {
			l.mu.Unlock()
			return nil, ErrOutOfOrderHashing
		}
		if older.state == stateFailed {
			l.mu.Unlock()
			return nil, ErrHashingFailed
		}
	}
	future := newFuture()
	m.future = future
	m.state = stateHashing

	// submitting may block on digester backpressure and must not hold the
	// lineage lock, which the digester needs to complete running jobs; the
	// submission lock keeps the queue in generation order and makes the
	// revert below invisible to concurrent callers
	l.mu.Unlock()
	if err := l.digester.submit(m); err != nil {
		l.mu.Lock()
		m.state = stateFrozen
		m.future = nil
		l.mu.Unlock()
		return nil, err
	}
	return future, nil
}

// Release discards this generation after its hashing has completed, allowing
// mutation queues covered by newer generations to be reclaimed. Generations
// whose hashing failed cannot be released.
func (m *VirtualMap[K, V]) Release() error {
	l := m.lineage
	l.mu.Lock()
	defer l.mu.Unlock()
	switch m.state {
	case stateHashed:
		// handled below
	case stateReleased:
		return ErrReleased
	case stateFailed:
		return ErrHashingFailed
	default:
		return ErrNotHashed
	}
	m.state = stateReleased
	for i, g := range l.live {
		if g == m {
			l.live = append(l.live[:i], l.live[i+1:]...)
			break
		}
	}
	return l.flushLocked()
}

// priorFailure reports whether an older live generation's hashing failed.
func (l *lineage[K, V]) priorFailure(m *VirtualMap[K, V]) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, older := range l.live {
		if older == m {
			break
		}
		if older.state == stateFailed {
			return ErrHashingFailed
		}
	}
	return nil
}

// flushLocked materializes mutations no live generation can observe anymore
// into the backing stores. The oldest unreleased generation bounds what may
// be reclaimed. Requires the lineage lock.
func (l *lineage[K, V]) flushLocked() error {
	if len(l.live) == 0 {
		return nil
	}
	boundary := l.live[0].version
	return errors.Join(
		l.stores.Leaves.Flush(boundary),
		l.stores.Hashes.Flush(boundary),
	)
}

// GetSizeOnDisk provides the on-disk footprint of the lineage's stores.
func (m *VirtualMap[K, V]) GetSizeOnDisk() (int64, error) {
	return m.lineage.stores.GetSizeOnDisk()
}

// Close flushes and closes the backing stores of the whole lineage. No
// generation of the lineage is usable afterwards.
func (m *VirtualMap[K, V]) Close() error {
	l := m.lineage
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stores.Close()
}
