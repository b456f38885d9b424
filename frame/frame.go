// Package frame serializes and parses the fixed-size packets MIMPI sends
// between peers, generalizing a BGP codec's header+payload split
// (msg.Msg.WriteTo/FromBytes, its marker+length+type header) to the
// MIMPI {size,tag} header.
package frame

import (
	"io"

	"github.com/mracinowski-go/mimpi/wire"
)

// Send writes one framed message to w: a fixed wire.PacketSize header
// packet (header plus as much of data as fits in the prefix), followed by
// any overflow as a raw tail with no further framing.
//
// Send returns wire.StatusRemoteFinished if w refuses a byte before the
// full packet is written.
func Send(w io.Writer, data []byte, tag int32) (wire.Status, error) {
	var pkt [wire.PacketSize]byte

	h := wire.Header{Size: uint64(len(data)), Tag: tag}
	h.Encode(pkt[:wire.HeaderSize])

	n := copy(pkt[wire.HeaderSize:], data)

	if err := writeFull(w, pkt[:]); err != nil {
		return wire.StatusRemoteFinished, err
	}

	if len(data) > n {
		if err := writeFull(w, data[n:]); err != nil {
			return wire.StatusRemoteFinished, err
		}
	}

	return wire.StatusSuccess, nil
}

// Receive reads exactly one framed message from r: a header packet and,
// if size exceeds the prefix capacity, the raw tail that follows.
//
// A size of 0 returns an empty, non-nil data slice. Any read failure
// (including a clean io.EOF) is reported as io.EOF so the caller — the
// Receiver — can treat it uniformly as the peer closing.
func Receive(r io.Reader) (data []byte, tag int32, err error) {
	var pkt [wire.PacketSize]byte
	if err := readFull(r, pkt[:]); err != nil {
		return nil, 0, io.EOF
	}

	h := wire.DecodeHeader(pkt[:wire.HeaderSize])
	if h.Size == 0 {
		return []byte{}, h.Tag, nil
	}

	data = make([]byte, h.Size)
	n := copy(data, pkt[wire.HeaderSize:])
	if uint64(n) < h.Size {
		if err := readFull(r, data[n:]); err != nil {
			return nil, 0, io.EOF
		}
	}

	return data, h.Tag, nil
}

// SendHeader frames a bare Header as the payload of a message — used by the
// deadlock-detection REQUEST frame, whose body is just {size, tag} of the
// pending receive.
func SendHeader(w io.Writer, tag int32, h wire.Header) (wire.Status, error) {
	var body [wire.HeaderSize]byte
	h.Encode(body[:])
	return Send(w, body[:], tag)
}

// DecodeRequestHeader parses the body of a REQUEST frame back into a Header.
func DecodeRequestHeader(body []byte) wire.Header {
	return wire.DecodeHeader(body)
}

func writeFull(w io.Writer, buf []byte) error {
	for len(buf) > 0 {
		n, err := w.Write(buf)
		if n > 0 {
			buf = buf[n:]
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
	}
	return nil
}

func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	return err
}
