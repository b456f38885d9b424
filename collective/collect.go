package collective

import "github.com/mracinowski-go/mimpi/wire"

// Collect folds contribution up the tree rooted at root: every node seeds
// a working buffer with its own contribution and wire.StatusSuccess,
// receives the same shape from each child in fixed order, folds the
// child's rolling status into its own, and — only if that child's
// transfer succeeded — folds the child's payload in under op. The
// combined buffer is then forwarded to the parent, if any.
//
// The returned slice is only meaningful at the root (position 1); callers
// elsewhere in the tree may ignore it. count may be 0, for synchronization-
// only collects (Barrier, and the sync phase of Bcast).
func Collect(pp PointToPoint, root int, contribution []byte, count int, op Op) ([]byte, wire.Status) {
	rank, size := pp.Rank(), pp.Size()
	pos := Position(rank, root, size)

	buf := make([]byte, count+statusSize)
	copy(buf[:count], contribution)
	putStatus(buf[count:], wire.StatusSuccess)
	status := wire.StatusSuccess

	childBuf := make([]byte, count+statusSize)
	for _, child := range Children(pos, root, size, nil) {
		recvStatus := pp.Recv(childBuf, child, wire.GroupTag)
		if recvStatus != wire.StatusSuccess {
			status = wire.Fold(status, recvStatus)
			continue
		}

		childStatus := getStatus(childBuf[count:])
		status = wire.Fold(status, childStatus)
		if childStatus == wire.StatusSuccess {
			op.Apply(buf[:count], childBuf[:count])
		}
	}
	putStatus(buf[count:], status)

	if parent, ok := Parent(pos, root, size); ok {
		if sendStatus := pp.Send(buf, parent, wire.GroupTag); sendStatus != wire.StatusSuccess {
			status = wire.Fold(status, sendStatus)
		}
	}

	return buf[:count], status
}
