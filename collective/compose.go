package collective

import "github.com/mracinowski-go/mimpi/wire"

// Barrier synchronizes every rank: a zero-payload Collect (pooling any
// error every participant has already observed) followed by a zero-payload
// Distribute, so every rank agrees on the same status before returning.
func Barrier(pp PointToPoint) wire.Status {
	_, collectStatus := Collect(pp, 0, nil, 0, Noop)
	_, status := Distribute(pp, 0, nil, 0, collectStatus)
	return status
}

// Bcast distributes root's data to every rank. The Collect phase carries no
// payload and exists purely to synchronize and pool errors before the
// actual fan-out.
func Bcast(pp PointToPoint, data []byte, count int, root int) wire.Status {
	_, collectStatus := Collect(pp, root, nil, 0, Noop)
	_, status := Distribute(pp, root, data, count, collectStatus)
	return status
}

// Reduce folds every rank's send under op, leaving the result in recv only
// at root. The Distribute phase carries no payload; it exists purely to
// carry the pooled status back down to every participant.
func Reduce(pp PointToPoint, send, recv []byte, count int, op Op, root int) wire.Status {
	combined, collectStatus := Collect(pp, root, send, count, op)
	if pp.Rank() == root && collectStatus == wire.StatusSuccess {
		copy(recv, combined)
	}
	_, status := Distribute(pp, root, nil, 0, collectStatus)
	return status
}
