// Package receiver runs the background per-peer reader goroutine: one
// instance is pinned to a peer's incoming channel, decoding packets with
// package frame and appending entries to that peer's Inbox until a close
// frame or channel EOF, the same read-loop-until-EOF shape as
// Direction.Handler (pipe/direction.go).
package receiver

import (
	"io"
	"sync"

	"github.com/mracinowski-go/mimpi/frame"
	"github.com/mracinowski-go/mimpi/inbox"
	"github.com/mracinowski-go/mimpi/wire"
	"github.com/rs/zerolog"
)

// Receiver reads one peer's inbound channel and feeds its Inbox.
type Receiver struct {
	Peer  int
	R     io.ReadCloser
	Inbox *inbox.Inbox
	Log   *zerolog.Logger
}

// New returns a Receiver for the given peer, reading from r into ib. If log
// is nil, diagnostics are discarded via zerolog.Nop().
func New(peer int, r io.ReadCloser, ib *inbox.Inbox, log *zerolog.Logger) *Receiver {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Receiver{Peer: peer, R: r, Inbox: ib, Log: log}
}

// Run executes the read loop until EOF or a CLOSE frame, then closes the
// inbound channel descriptor and the Inbox, and signals wg. Intended to be
// started with `go rcv.Run(wg)`.
func (rc *Receiver) Run(wg *sync.WaitGroup) {
	defer wg.Done()
	defer rc.Inbox.Close()
	defer rc.R.Close()

	for {
		data, tag, err := frame.Receive(rc.R)
		if err != nil {
			rc.Log.Debug().Int("peer", rc.Peer).Msg("receiver: peer channel closed")
			return
		}

		switch tag {
		case wire.CloseTag:
			rc.Log.Debug().Int("peer", rc.Peer).Msg("receiver: got close frame")
			return

		case wire.RequestTag:
			h := frame.DecodeRequestHeader(data)
			rc.Inbox.SaveRequest(h.Tag, h.Size)

		default:
			rc.Inbox.SaveMessage(tag, uint64(len(data)), data)
		}
	}
}
