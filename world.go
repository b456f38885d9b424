package mimpi

import (
	"sync"
	"sync/atomic"

	"github.com/mracinowski-go/mimpi/inbox"
	"github.com/mracinowski-go/mimpi/outbox"
	"github.com/mracinowski-go/mimpi/receiver"
	"github.com/mracinowski-go/mimpi/transport"
	"github.com/rs/zerolog"
)

// World is the process-wide runtime state: rank, size, the deadlock-
// detection flag, and one Inbox/Outbox/Receiver per peer. It is modeled as
// an opaque context returned by Init and threaded through every operation,
// rather than a package-level singleton — the natural Go shape for a value
// with a clear lifecycle, and the shape that lets a single test process
// host several ranks at once over transport.NewLoopback.
type World struct {
	rank, size int
	detect     bool

	peers     *transport.Peers
	inboxes   []*inbox.Inbox
	outboxes  []*outbox.Outbox
	receivers []*receiver.Receiver

	live peerLiveness
	log  *zerolog.Logger
	wg   sync.WaitGroup

	finalized atomic.Bool
}

// Rank returns this process's rank within the job.
func (w *World) Rank() int { return w.rank }

// Size returns the world size (number of ranks), fixed for the job.
func (w *World) Size() int { return w.size }
