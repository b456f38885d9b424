package wire_test

import (
	"testing"

	"github.com/mracinowski-go/mimpi/wire"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := wire.Header{Size: 123456, Tag: 7}
	buf := make([]byte, wire.HeaderSize)
	h.Encode(buf)

	got := wire.DecodeHeader(buf)
	require.Equal(t, h, got)
}

func TestMatches(t *testing.T) {
	const any = wire.WireWildcard

	require.True(t, wire.Matches(4, 1, 4, 1, any))
	require.False(t, wire.Matches(4, 1, 5, 1, any))
	require.False(t, wire.Matches(4, 1, 4, 2, any))
	require.True(t, wire.Matches(4, any, 4, 2, any))
	require.True(t, wire.Matches(4, 2, 4, any, any))
}

func TestFoldPrecedence(t *testing.T) {
	require.Equal(t, wire.StatusNoSuchRank, wire.Fold(wire.StatusNoSuchRank, wire.StatusAttemptedSelfOp))
	require.Equal(t, wire.StatusAttemptedSelfOp, wire.Fold(wire.StatusAttemptedSelfOp, wire.StatusRemoteFinished))
	require.Equal(t, wire.StatusRemoteFinished, wire.Fold(wire.StatusRemoteFinished, wire.StatusDeadlockDetected))
	require.Equal(t, wire.StatusDeadlockDetected, wire.Fold(wire.StatusDeadlockDetected, wire.StatusSuccess))
	require.Equal(t, wire.StatusSuccess, wire.Fold(wire.StatusSuccess, wire.StatusSuccess))

	// commutative
	require.Equal(t, wire.Fold(wire.StatusDeadlockDetected, wire.StatusNoSuchRank),
		wire.Fold(wire.StatusNoSuchRank, wire.StatusDeadlockDetected))
}
