package mimpi

import (
	"github.com/mracinowski-go/mimpi/wire"
	"github.com/puzpuzpuz/xsync/v3"
)

// peerLiveness latches REMOTE_FINISHED once Send or Recv observes it for a
// peer, so that after observing REMOTE_FINISHED from a peer,
// subsequent Send/Recv to that peer keep returning REMOTE_FINISHED without
// re-attempting a write to an already-dead channel every time. Keyed by
// peer rank; grounded on Pipe.KV's use of puzpuzpuz/xsync.MapOf for
// process-wide concurrent state — here there is only ever one writer (the
// user goroutine), but the map still gives lock-free reads if that ever
// changes.
type peerLiveness struct {
	latched *xsync.MapOf[int, wire.Status]
}

func newPeerLiveness() peerLiveness {
	return peerLiveness{latched: xsync.NewMapOf[int, wire.Status]()}
}

func (p peerLiveness) get(peer int) (wire.Status, bool) {
	return p.latched.Load(peer)
}

// latch records a peer as permanently gone. Only wire.StatusRemoteFinished
// is sticky: a DEADLOCK_DETECTED or a successful Recv says nothing about
// whether src's channel is still alive, so neither is latched.
func (p peerLiveness) latch(peer int, status wire.Status) {
	if status != wire.StatusRemoteFinished {
		return
	}
	p.latched.Store(peer, status)
}
