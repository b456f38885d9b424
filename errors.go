// Package mimpi is a miniature message-passing runtime for a fixed group
// of cooperating processes spawned together as one parallel job: point-to-
// point Send/Recv matched by size and tag, the Barrier/Bcast/Reduce
// collectives over a binary tree, and an optional best-effort pairwise
// deadlock detector.
package mimpi

import (
	"fmt"

	"github.com/mracinowski-go/mimpi/inbox"
	"github.com/mracinowski-go/mimpi/wire"
)

// Status is the outcome code every point-to-point and collective operation
// resolves to. It is a direct alias of wire.Status so the root package can
// re-export the wire vocabulary under the names callers expect without a
// second type to keep in sync.
type Status = wire.Status

// The full set of return codes an operation may resolve to.
const (
	Success             = wire.StatusSuccess
	ErrAttemptedSelfOp  = wire.StatusAttemptedSelfOp
	ErrNoSuchRank       = wire.StatusNoSuchRank
	ErrRemoteFinished   = wire.StatusRemoteFinished
	ErrDeadlockDetected = wire.StatusDeadlockDetected
)

// AnyTag is the user-facing "match any tag" sentinel for Recv: distinct
// from the wire wildcard (reserved for Outbox/Request matching) and from
// every reserved wire tag, so it never collides with a legal user tag
// (which must be >= 0) and never appears on the wire itself.
const AnyTag = inbox.AnyTag

// StatusError adapts a Status to the standard error interface, for callers
// that prefer idiomatic Go error handling (e.g. `if err := st.Err(); err !=
// nil`) over comparing codes directly.
type StatusError struct{ Status Status }

func (e StatusError) Error() string {
	return fmt.Sprintf("mimpi: %s", e.Status)
}

// Err returns nil for Success, and a StatusError wrapping s otherwise.
func Err(s Status) error {
	if s == Success {
		return nil
	}
	return StatusError{Status: s}
}
