// Package inbox implements the per-peer FIFO matching queue: a singly-
// linked list with a permanently-ready front guard and an unsignaled tail
// sentinel, fed by exactly one producer (the peer's Receiver goroutine) and
// drained by exactly one consumer (the user goroutine calling Recv).
//
// The SPSC discipline relies on a single trick: the producer never mutates
// a node the consumer may already be inspecting. It only writes the fields
// of the current tail sentinel, appends a fresh sentinel after it, then
// publishes the filled node by closing its ready channel — a closed channel is forever "ready", which is exactly the
// idempotent, always-reobservable signal a one-shot completion needs.
package inbox

import (
	"github.com/mracinowski-go/mimpi/outbox"
	"github.com/mracinowski-go/mimpi/wire"
)

type entryType uint8

const (
	typeGuard entryType = iota
	typeMessage
	typeRequest
	typeClose
	typeDeadlock
)

type entry struct {
	typ   entryType
	tag   int32
	size  uint64
	data  []byte
	next  *entry
	ready chan struct{}
}

func newGuard() *entry {
	return &entry{typ: typeGuard, ready: make(chan struct{})}
}

// Inbox is the per-peer queue of arrivals from one peer.
type Inbox struct {
	front *entry // guard; front.next is the oldest not-yet-matched entry
	back  *entry // unsignaled tail sentinel; only the producer touches this

	// detect is whether deadlock detection is active for this world. outOf
	// is this process's own Outbox for the same peer this Inbox receives
	// from — a REQUEST arriving here means that peer is asking whether we
	// already sent it something, which is answered by popping outOf.
	detect bool
	outOf  *outbox.Outbox
}

// New returns an empty Inbox. outOf may be nil iff detect is false.
func New(detect bool, outOf *outbox.Outbox) *Inbox {
	g := newGuard()
	close(g.ready) // front is always already signaled (invariant 1)
	tail := newGuard()
	g.next = tail
	return &Inbox{front: g, back: tail, detect: detect, outOf: outOf}
}

// save is the common tail of every producer operation: materialize the old
// tail sentinel into a real entry, allocate the new tail, then publish.
func (i *Inbox) save(typ entryType, tag int32, size uint64, data []byte) {
	old := i.back
	newTail := newGuard()

	old.typ = typ
	old.tag = tag
	old.size = size
	old.data = data
	old.next = newTail // invariant 2: next is set before ready fires

	i.back = newTail
	close(old.ready)
}

// SaveMessage enqueues a data message. Producer-only.
func (i *Inbox) SaveMessage(tag int32, size uint64, data []byte) {
	i.save(typeMessage, tag, size, data)
}

// SaveRequest enqueues a deadlock-detection REQUEST. Producer-only.
func (i *Inbox) SaveRequest(tag int32, size uint64) {
	i.save(typeRequest, tag, size, nil)
}

// SaveDeadlock enqueues a reserved DEADLOCK placeholder entry. Producer-only;
// nothing in this runtime emits one today, but the slot exists for tests
// that want to drive the transparent-control-entry path directly.
func (i *Inbox) SaveDeadlock() {
	i.save(typeDeadlock, 0, 0, nil)
}

// Close enqueues the terminal CLOSE marker. After Close, no further saves
// may be made. Producer-only.
func (i *Inbox) Close() {
	i.save(typeClose, 0, 0, nil)
}

// Retrieve walks the queue from front, waiting on each node's ready signal,
// until it finds a MESSAGE matching (tag, size), hits the terminal CLOSE
// marker, or observes an unsatisfiable REQUEST. REQUEST and DEADLOCK
// entries are transparent to the caller: they are consumed in passing and
// never themselves returned as a match. Consumer only; must not be called
// concurrently with itself.
func (i *Inbox) Retrieve(tag int32, size uint64, out []byte) wire.Status {
	prev := i.front
	for {
		node := prev.next
		<-node.ready // step 1: wait for, then rely on the permanence of, ready

		switch node.typ {
		case typeClose:
			return wire.StatusRemoteFinished

		case typeRequest:
			prev.next = node.next // transparent: always unlinked
			if !i.detect {
				continue
			}
			if i.outOf.Pop(node.tag, node.size) {
				continue // peer's wait is satisfiable by a send we logged
			}
			return wire.StatusDeadlockDetected

		case typeDeadlock:
			prev.next = node.next // transparent: always unlinked
			continue

		case typeMessage:
			if wire.Matches(node.size, node.tag, size, tag, AnyTag) {
				copy(out, node.data)
				prev.next = node.next
				return wire.StatusSuccess
			}
			prev = node // leave in place; a later Retrieve may still want it

		default:
			// Unreachable: a node's type is only ever typeGuard before its
			// ready channel closes, and save() always changes it first.
			prev = node
		}
	}
}

// AnyTag is the user-facing wildcard tag for Recv, distinct from the wire's
// reserved wildcard (wire.WireWildcard) and from every reserved wire tag
// (wire.GroupTag, wire.CloseTag, wire.RequestTag): user tags are restricted
// to >= 0, and AnyTag never appears on the wire — Recv passes it to
// Retrieve unchanged and puts wire.WireWildcard in its REQUEST header.
const AnyTag int32 = -4

// Destroy releases every node still reachable from front, for use at
// Finalize once no further Retrieve calls will be made.
func (i *Inbox) Destroy() {
	i.front.next = i.back
}
