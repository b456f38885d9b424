package mimpi

import "github.com/mracinowski-go/mimpi/collective"

// Op is a reduction operator applied elementwise over unsigned byte arrays,
// re-exported so callers need not import package collective just to name
// one.
type Op = collective.Op

// The reduction operators Reduce accepts.
const (
	Max  = collective.Max
	Min  = collective.Min
	Sum  = collective.Sum
	Prod = collective.Prod
)

// Barrier blocks until every rank has entered it, or returns the same
// non-success status at every rank. Expressed as a Collect/Distribute with
// a zero-byte payload over a tree rooted at rank 0 — any root works, since
// a barrier carries no data.
func (w *World) Barrier() Status {
	return collective.Barrier(w)
}

// Bcast sends root's data to every rank. On success every rank's data
// equals root's input; otherwise every rank returns the same non-success
// status.
func (w *World) Bcast(data []byte, count int, root int) Status {
	return collective.Bcast(w, data[:count], count, root)
}

// Reduce folds every rank's send under op, leaving the combined result in
// recv only at root; non-root ranks' recv is left untouched.
func (w *World) Reduce(send, recv []byte, count int, op Op, root int) Status {
	return collective.Reduce(w, send[:count], recv[:count], count, op, root)
}
