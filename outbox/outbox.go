// Package outbox implements the per-peer shadow log of sends that have not
// yet been matched by the peer's receive, used only by the deadlock
// detector.
//
// An Outbox is touched only by its owning process's own goroutine: once on
// Push (at send time) and once on Pop (while the corresponding Inbox
// consumes a REQUEST from that same peer). There is never cross-goroutine
// sharing of a single Outbox, so no locking is needed.
package outbox

import "github.com/mracinowski-go/mimpi/wire"

type entry struct {
	tag  int32
	size uint64
	next *entry
}

// Outbox is a LIFO stack of (tag, size) pairs awaiting a matching REQUEST.
type Outbox struct {
	head *entry
}

// New returns an empty Outbox.
func New() *Outbox {
	return &Outbox{}
}

// Push prepends a (tag, size) entry. Never fails.
func (o *Outbox) Push(tag int32, size uint64) {
	o.head = &entry{tag: tag, size: size, next: o.head}
}

// Pop performs a linear search from the head and removes the first entry
// whose (size, tag) matches (size, tag) under the outbox wildcard (tag 0).
// Reports whether a match was found.
func (o *Outbox) Pop(tag int32, size uint64) bool {
	var prev *entry
	for e := o.head; e != nil; prev, e = e, e.next {
		if wire.Matches(e.size, e.tag, size, tag, wire.WireWildcard) {
			if prev == nil {
				o.head = e.next
			} else {
				prev.next = e.next
			}
			return true
		}
	}
	return false
}

// Destroy drops all remaining entries, releasing them to the garbage
// collector.
func (o *Outbox) Destroy() {
	o.head = nil
}

// Len reports the number of pending entries; exposed for tests and
// diagnostics only.
func (o *Outbox) Len() int {
	n := 0
	for e := o.head; e != nil; e = e.next {
		n++
	}
	return n
}
