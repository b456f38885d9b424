// Package collective implements the rooted binary tree shared by Barrier,
// Bcast, and Reduce: logical-position mapping, the Collect/Distribute
// skeleton, reduction operators, and the status-folding discipline that
// lets every participant agree on one outcome.
package collective

import "github.com/mracinowski-go/mimpi/wire"

// PointToPoint is the subset of the point-to-point runtime the collective
// tree needs. World satisfies it directly: collectives are expressed
// purely in terms of ordinary Send/Recv with the reserved wire.GroupTag,
// so the deadlock-detection announcement in Recv applies to collective
// traffic exactly as it does to user traffic.
type PointToPoint interface {
	Rank() int
	Size() int
	Send(data []byte, dst int, tag int32) wire.Status
	Recv(buf []byte, src int, tag int32) wire.Status
}

// statusSize is the wire width of the rolling status folded alongside a
// collective payload.
const statusSize = 4

func putStatus(dst []byte, s wire.Status) {
	wire.Msb.PutUint32(dst, uint32(s))
}

func getStatus(src []byte) wire.Status {
	return wire.Status(wire.Msb.Uint32(src))
}
