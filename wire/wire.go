// Package wire defines the on-the-wire vocabulary shared by every MIMPI
// component: the fixed packet header, reserved tags, the matching
// predicate, and the status codes collectives fold across ranks.
package wire

import "encoding/binary"

// Msb is the byte order used for every multi-byte wire field, named and
// shaped after binary.Msb in the BGP codec this runtime is descended from.
var Msb = msb{binary.BigEndian}

type msb struct {
	binary.ByteOrder
}

const (
	// HeaderSize is the wire size of a Header: 8 bytes size + 4 bytes tag,
	// padded to 16 to keep the payload prefix naturally aligned.
	HeaderSize = 16

	// PacketSize is the fixed width of every packet on the wire.
	PacketSize = 512

	// PrefixSize is how many payload bytes fit in the first packet
	// alongside the header; the remainder (if any) follows as a raw tail.
	PrefixSize = PacketSize - HeaderSize
)

// Reserved tags. All negative; user tags are >= 0.
const (
	RequestTag int32 = -3 // deadlock-detection REQUEST frame
	CloseTag   int32 = -2 // receiver-side termination frame
	GroupTag   int32 = -1 // collective payload frame

	// WireWildcard is the tag value that means "match any" on the wire and
	// in the Outbox/Request matching path.
	WireWildcard int32 = 0
)

// Header is the fixed record carried by every packet.
type Header struct {
	Size uint64
	Tag  int32
}

// Encode writes h into the first HeaderSize bytes of dst, which must be at
// least that long.
func (h Header) Encode(dst []byte) {
	_ = dst[HeaderSize-1] // bounds check hint, mirrors binary.Msb style helpers
	Msb.PutUint64(dst[0:8], h.Size)
	Msb.PutUint32(dst[8:12], uint32(h.Tag))
	// bytes [12:16] are padding, left zero.
}

// DecodeHeader reads a Header from the first HeaderSize bytes of src.
func DecodeHeader(src []byte) Header {
	_ = src[HeaderSize-1]
	return Header{
		Size: Msb.Uint64(src[0:8]),
		Tag:  int32(Msb.Uint32(src[8:12])),
	}
}

// Matches implements the single matching predicate used throughout the
// runtime: two (size, tag) pairs match iff the sizes are equal and either
// tag equals the wildcard or the tags are equal.
func Matches(sizeA uint64, tagA int32, sizeB uint64, tagB int32, wildcard int32) bool {
	if sizeA != sizeB {
		return false
	}
	return tagA == wildcard || tagB == wildcard || tagA == tagB
}
