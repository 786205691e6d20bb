package virtual

import "github.com/Ndacyayisenga-droid/hedera-services/common"

// generationState tracks one virtual map generation through its lifecycle.
// The only valid transitions are
//
//	current -> frozen   (on Copy)
//	frozen  -> hashing  (on HashAsync)
//	hashing -> hashed   (on digester success)
//	hashing -> failed   (on digester error, terminal)
//	hashed  -> released (on Release, terminal)
//
// Any operation attempted against a generation in the wrong state is
// rejected with one of the state errors below.
type generationState int

const (
	stateCurrent generationState = iota
	stateFrozen
	stateHashing
	stateHashed
	stateFailed
	stateReleased
)

func (s generationState) String() string {
	switch s {
	case stateCurrent:
		return "current"
	case stateFrozen:
		return "frozen"
	case stateHashing:
		return "hashing"
	case stateHashed:
		return "hashed"
	case stateFailed:
		return "failed"
	case stateReleased:
		return "released"
	}
	return "unknown"
}

const (
	// ErrNotCurrent is reported when a mutation targets a frozen or
	// released generation.
	ErrNotCurrent = common.ConstError("virtual map generation is immutable")

	// ErrNotFrozen is reported when hashing is requested for a generation
	// that has not been frozen by a Copy call yet.
	ErrNotFrozen = common.ConstError("virtual map generation is not frozen")

	// ErrOutOfOrderHashing is reported when hashing is requested for a
	// generation while an older generation of the lineage has not been
	// submitted for hashing yet. The digest walk is incremental and needs
	// the digests of all preceding generations.
	ErrOutOfOrderHashing = common.ConstError("generations must be hashed in order")

	// ErrNotHashed is reported when a generation is released before its
	// hashing has completed.
	ErrNotHashed = common.ConstError("virtual map generation has not been hashed")

	// ErrHashingFailed is reported when a generation whose hashing failed
	// is released; such a generation can never be released.
	ErrHashingFailed = common.ConstError("hashing of the virtual map generation has failed")

	// ErrReleased is reported when a released generation is accessed or
	// released a second time.
	ErrReleased = common.ConstError("virtual map generation has been released")

	// ErrHashTimeout is reported when a bounded wait for hashing to
	// complete elapses before completion.
	ErrHashTimeout = common.ConstError("timed out waiting for hashing to complete")

	// ErrDigesterClosed is reported when hashing is requested after the
	// digester has been shut down.
	ErrDigesterClosed = common.ConstError("digester has been closed")
)
