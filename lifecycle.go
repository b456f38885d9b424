package mimpi

import (
	"fmt"

	"github.com/mracinowski-go/mimpi/frame"
	"github.com/mracinowski-go/mimpi/inbox"
	"github.com/mracinowski-go/mimpi/outbox"
	"github.com/mracinowski-go/mimpi/receiver"
	"github.com/mracinowski-go/mimpi/transport"
	"github.com/mracinowski-go/mimpi/wire"
)

// Init allocates every peer's Inbox/Outbox and starts its Receiver
// goroutine. With opts.Peers nil, channels are acquired from the
// inherited-descriptor launcher contract; tests and the bundled demo pass
// a loopback transport instead.
//
// A transport-acquisition failure is returned as an error rather than
// aborting the process: idiomatic Go lets the caller's main
// decide whether to log.Fatal.
func Init(opts Options) (*World, error) {
	peers := opts.Peers
	if peers == nil {
		p, err := transport.FromInheritedFds()
		if err != nil {
			return nil, fmt.Errorf("mimpi: init: %w", err)
		}
		peers = p
	}

	w := &World{
		rank:      peers.Rank,
		size:      peers.Size,
		detect:    opts.DeadlockDetection,
		peers:     peers,
		inboxes:   make([]*inbox.Inbox, peers.Size),
		outboxes:  make([]*outbox.Outbox, peers.Size),
		receivers: make([]*receiver.Receiver, peers.Size),
		live:      newPeerLiveness(),
		log:       opts.logger(),
	}

	for peer := 0; peer < w.size; peer++ {
		if peer == w.rank {
			continue
		}

		var ob *outbox.Outbox
		if w.detect {
			ob = outbox.New()
			w.outboxes[peer] = ob
		}
		ib := inbox.New(w.detect, ob)
		w.inboxes[peer] = ib

		rc := receiver.New(peer, peers.Readers[peer], ib, w.log)
		w.receivers[peer] = rc

		w.wg.Add(1)
		go rc.Run(&w.wg)
	}

	return w, nil
}

// Finalize sends a CLOSE frame to every peer, closes every outbound
// channel, joins every Receiver, and releases every Inbox/Outbox. Senders
// go first so peers observe an orderly shutdown before their own Receiver
// goroutines see EOF. Only the first call does any work; later calls
// return nil at once. Safe to call regardless of prior Send/Recv errors.
func (w *World) Finalize() error {
	if !w.finalized.CompareAndSwap(false, true) {
		return nil
	}

	for peer := 0; peer < w.size; peer++ {
		if peer == w.rank {
			continue
		}
		if _, err := frame.Send(w.peers.Writers[peer], nil, wire.CloseTag); err != nil {
			w.log.Debug().Int("peer", peer).Err(err).Msg("mimpi: finalize: close frame failed")
		}
		if err := w.peers.Writers[peer].Close(); err != nil {
			w.log.Debug().Int("peer", peer).Err(err).Msg("mimpi: finalize: close writer failed")
		}
	}

	w.wg.Wait()

	for peer := 0; peer < w.size; peer++ {
		if peer == w.rank {
			continue
		}
		w.inboxes[peer].Destroy()
		if w.outboxes[peer] != nil {
			w.outboxes[peer].Destroy()
		}
	}

	return nil
}
