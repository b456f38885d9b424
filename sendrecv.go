package mimpi

import (
	"github.com/mracinowski-go/mimpi/frame"
	"github.com/mracinowski-go/mimpi/wire"
)

// Send frames data and writes it to dst's outbound channel with the given
// user tag. tag must be >= 0; the reserved negative tags are for internal
// framing only (REQUEST/CLOSE/GROUP).
func (w *World) Send(data []byte, dst int, tag int32) Status {
	if dst == w.rank {
		return ErrAttemptedSelfOp
	}
	if dst < 0 || dst >= w.size {
		return ErrNoSuchRank
	}
	if st, ok := w.live.get(dst); ok {
		return st
	}

	status, err := frame.Send(w.peers.Writers[dst], data, tag)
	if err != nil {
		w.live.latch(dst, wire.StatusRemoteFinished)
		return wire.StatusRemoteFinished
	}

	if w.detect {
		w.outboxes[dst].Push(tag, uint64(len(data)))
	}
	return status
}

// Recv announces intent (if deadlock detection is enabled) and then blocks
// on src's Inbox until a matching message, a terminal close, or an
// unsatisfiable REQUEST surfaces a deadlock. tag may be AnyTag to match
// any incoming tag for this src.
func (w *World) Recv(buf []byte, src int, tag int32) Status {
	if src == w.rank {
		return ErrAttemptedSelfOp
	}
	if src < 0 || src >= w.size {
		return ErrNoSuchRank
	}
	if st, ok := w.live.get(src); ok {
		return st
	}

	if w.detect {
		wireTag := tag
		if wireTag == AnyTag {
			wireTag = wire.WireWildcard
		}
		if _, err := frame.SendHeader(w.peers.Writers[src], wire.RequestTag, wire.Header{
			Size: uint64(len(buf)),
			Tag:  wireTag,
		}); err != nil {
			w.live.latch(src, wire.StatusRemoteFinished)
			return wire.StatusRemoteFinished
		}
	}

	status := w.inboxes[src].Retrieve(tag, uint64(len(buf)), buf)
	w.live.latch(src, status)
	return status
}
