package frame_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/mracinowski-go/mimpi/frame"
	"github.com/mracinowski-go/mimpi/wire"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, data []byte, tag int32) {
	t.Helper()
	var buf bytes.Buffer

	status, err := frame.Send(&buf, data, tag)
	require.NoError(t, err)
	require.Equal(t, wire.StatusSuccess, status)

	got, gotTag, err := frame.Receive(&buf)
	require.NoError(t, err)
	require.Equal(t, tag, gotTag)
	require.Equal(t, data, got)
}

func TestRoundTripSizes(t *testing.T) {
	// Testable property 7: exact prefix boundary, one over it, 1 byte, 0 bytes.
	sizes := []int{wire.PrefixSize, wire.PrefixSize + 1, 1, 0}
	for _, n := range sizes {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i)
		}
		roundTrip(t, data, 42)
	}
}

func TestRoundTripLargePayload(t *testing.T) {
	data := make([]byte, 10_000)
	for i := range data {
		data[i] = byte(i)
	}
	roundTrip(t, data, 42)
}

func TestReceiveEOF(t *testing.T) {
	_, _, err := frame.Receive(bytes.NewReader(nil))
	require.ErrorIs(t, err, io.EOF)
}

func TestReceiveShortHeader(t *testing.T) {
	_, _, err := frame.Receive(bytes.NewReader(make([]byte, wire.HeaderSize)))
	require.ErrorIs(t, err, io.EOF)
}
