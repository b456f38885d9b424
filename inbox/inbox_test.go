package inbox_test

import (
	"testing"

	"github.com/mracinowski-go/mimpi/inbox"
	"github.com/mracinowski-go/mimpi/outbox"
	"github.com/mracinowski-go/mimpi/wire"
	"github.com/stretchr/testify/require"
)

func TestOrderedDelivery(t *testing.T) {
	ib := inbox.New(false, nil)
	ib.SaveMessage(1, 2, []byte("hi"))
	ib.SaveMessage(1, 2, []byte("yo"))

	buf := make([]byte, 2)
	require.Equal(t, wire.StatusSuccess, ib.Retrieve(1, 2, buf))
	require.Equal(t, "hi", string(buf))

	require.Equal(t, wire.StatusSuccess, ib.Retrieve(1, 2, buf))
	require.Equal(t, "yo", string(buf))
}

func TestWildcardTagMatchesAny(t *testing.T) {
	ib := inbox.New(false, nil)
	ib.SaveMessage(99, 2, []byte("hi"))

	buf := make([]byte, 2)
	require.Equal(t, wire.StatusSuccess, ib.Retrieve(inbox.AnyTag, 2, buf))
	require.Equal(t, "hi", string(buf))
}

func TestNonMatchingStaysInPlace(t *testing.T) {
	ib := inbox.New(false, nil)
	ib.SaveMessage(1, 2, []byte("aa"))
	ib.SaveMessage(2, 2, []byte("bb"))

	buf := make([]byte, 2)
	// ask for tag 2 first: must skip past tag-1 message without consuming it
	require.Equal(t, wire.StatusSuccess, ib.Retrieve(2, 2, buf))
	require.Equal(t, "bb", string(buf))

	// tag-1 message must still be there, in original order
	require.Equal(t, wire.StatusSuccess, ib.Retrieve(1, 2, buf))
	require.Equal(t, "aa", string(buf))
}

func TestCloseIsTerminal(t *testing.T) {
	ib := inbox.New(false, nil)
	ib.Close()

	buf := make([]byte, 0)
	require.Equal(t, wire.StatusRemoteFinished, ib.Retrieve(0, 0, buf))
	require.Equal(t, wire.StatusRemoteFinished, ib.Retrieve(0, 0, buf))
}

func TestRequestTransparentWhenDetectionDisabled(t *testing.T) {
	ib := inbox.New(false, nil)
	ib.SaveRequest(5, 8)
	ib.SaveMessage(5, 8, []byte("12345678"))

	buf := make([]byte, 8)
	require.Equal(t, wire.StatusSuccess, ib.Retrieve(5, 8, buf))
}

func TestRequestSatisfiedByOutboxPop(t *testing.T) {
	ob := outbox.New()
	ob.Push(5, 8) // we previously sent this peer a matching message
	ib := inbox.New(true, ob)

	ib.SaveRequest(5, 8)
	ib.SaveMessage(1, 1, []byte("x"))

	buf := make([]byte, 1)
	require.Equal(t, wire.StatusSuccess, ib.Retrieve(1, 1, buf))
	require.Equal(t, 0, ob.Len())
}

func TestRequestUnsatisfiedIsDeadlock(t *testing.T) {
	ob := outbox.New() // nothing logged: we never sent this peer anything
	ib := inbox.New(true, ob)

	ib.SaveRequest(5, 8)

	buf := make([]byte, 1)
	require.Equal(t, wire.StatusDeadlockDetected, ib.Retrieve(1, 1, buf))
}

func TestConsumerBlocksUntilProducerSaves(t *testing.T) {
	ib := inbox.New(false, nil)
	done := make(chan wire.Status, 1)
	buf := make([]byte, 3)

	go func() {
		done <- ib.Retrieve(0, 3, buf)
	}()

	ib.SaveMessage(0, 3, []byte("abc"))
	require.Equal(t, wire.StatusSuccess, <-done)
	require.Equal(t, "abc", string(buf))
}
