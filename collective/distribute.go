package collective

import "github.com/mracinowski-go/mimpi/wire"

// Distribute fans data out down the tree rooted at root: the root seeds a
// working buffer with data and initialStatus; every other node receives
// it from its parent. The buffer
// is forwarded to every child, and non-root nodes commit the payload into
// data only once the final status is wire.StatusSuccess — a node must not
// act on a payload its ancestors never agreed was good.
func Distribute(pp PointToPoint, root int, data []byte, count int, initialStatus wire.Status) ([]byte, wire.Status) {
	rank, size := pp.Rank(), pp.Size()
	pos := Position(rank, root, size)

	buf := make([]byte, count+statusSize)
	var status wire.Status
	isRoot := pos == 1

	if isRoot {
		copy(buf[:count], data)
		status = initialStatus
		putStatus(buf[count:], status)
	} else {
		parent, _ := Parent(pos, root, size)
		if recvStatus := pp.Recv(buf, parent, wire.GroupTag); recvStatus != wire.StatusSuccess {
			status = recvStatus
			putStatus(buf[count:], status)
		} else {
			status = getStatus(buf[count:])
		}
	}

	for _, child := range Children(pos, root, size, nil) {
		if sendStatus := pp.Send(buf, child, wire.GroupTag); sendStatus != wire.StatusSuccess {
			status = wire.Fold(status, sendStatus)
		}
	}

	if !isRoot && status == wire.StatusSuccess {
		copy(data, buf[:count])
	}

	return buf[:count], status
}
