package store

import (
	"errors"
	"sync"

	"github.com/Ndacyayisenga-droid/hedera-services/backend"
	"github.com/Ndacyayisenga-droid/hedera-services/common"
)

// mutation is one write issued against a single map generation, identified
// by the generation's version number.
type mutation[V any] struct {
	version uint64
	value   V
}

// Versioned adds a per-generation mutation queue on top of a backing store.
//
// Writes issued against a generation are buffered in the queue and become
// visible to reads at that or any later version immediately, before being
// flushed to the backing store. Reads resolve the newest queued mutation at
// or below the requested version and fall through to the backing store
// otherwise, so an unmodified record read at version N may physically
// resolve into data written at an earlier version.
//
// Flush materializes mutations up to a given version boundary into the
// shared backing store and drops them from the queue. The caller must
// guarantee that no live generation older than the boundary exists,
// otherwise such a generation could observe the materialized data.
type Versioned[I common.Identifier, V any] struct {
	mu      sync.RWMutex
	records backend.Store[I, V]
	pending map[I][]mutation[V]
}

// ErrOutdatedWrite is reported when a write targets an older version than
// the newest queued mutation of the same record.
const ErrOutdatedWrite = common.ConstError("write against an outdated version")

// NewVersioned creates a versioned store above the given backing store.
func NewVersioned[I common.Identifier, V any](records backend.Store[I, V]) *Versioned[I, V] {
	return &Versioned[I, V]{
		records: records,
		pending: make(map[I][]mutation[V]),
	}
}

// ReadAt provides the value of the record as visible to the given version.
func (s *Versioned[I, V]) ReadAt(id I, version uint64) (V, error) {
	// the lock is held across the fall-through read, so a concurrent Flush
	// cannot mutate the backing store mid-read
	s.mu.RLock()
	defer s.mu.RUnlock()
	queue := s.pending[id]
	for i := len(queue) - 1; i >= 0; i-- {
		if queue[i].version <= version {
			return queue[i].value, nil
		}
	}
	return s.records.Get(id)
}

// WriteAt records a mutation of the record issued by the given version.
// Repeated writes by the same version overwrite each other; versions of
// queued mutations of one record are strictly increasing.
func (s *Versioned[I, V]) WriteAt(id I, value V, version uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	queue := s.pending[id]
	if last := len(queue) - 1; last >= 0 {
		if queue[last].version == version {
			queue[last].value = value
			return nil
		}
		if queue[last].version > version {
			return ErrOutdatedWrite
		}
	}
	s.pending[id] = append(queue, mutation[V]{version, value})
	return nil
}

// Flush materializes queued mutations up to the given version boundary into
// the backing store. For each record, the newest mutation at or below the
// boundary is written; all mutations at or below the boundary are dropped.
func (s *Versioned[I, V]) Flush(upTo uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var errs []error
	for id, queue := range s.pending {
		last := -1
		for i, m := range queue {
			if m.version <= upTo {
				last = i
			}
		}
		if last < 0 {
			continue
		}
		if err := s.records.Set(id, queue[last].value); err != nil {
			errs = append(errs, err)
			continue
		}
		if last == len(queue)-1 {
			delete(s.pending, id)
		} else {
			s.pending[id] = queue[last+1:]
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return s.records.Flush()
}

// GetSizeOnDisk provides the size of the backing store on disk.
func (s *Versioned[I, V]) GetSizeOnDisk() (int64, error) {
	return s.records.GetSizeOnDisk()
}

// Close materializes all queued mutations and closes the backing store.
func (s *Versioned[I, V]) Close() error {
	return errors.Join(
		s.Flush(^uint64(0)),
		s.records.Close(),
	)
}
