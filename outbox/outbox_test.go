package outbox_test

import (
	"testing"

	"github.com/mracinowski-go/mimpi/outbox"
	"github.com/stretchr/testify/require"
)

func TestPushPopMatch(t *testing.T) {
	o := outbox.New()
	o.Push(7, 4)
	require.True(t, o.Pop(7, 4))
	require.False(t, o.Pop(7, 4)) // already removed
}

func TestPopWildcard(t *testing.T) {
	o := outbox.New()
	o.Push(7, 4)
	require.True(t, o.Pop(0, 4)) // wildcard tag matches any tag, same size
}

func TestPopNoMatchWrongSize(t *testing.T) {
	o := outbox.New()
	o.Push(7, 4)
	require.False(t, o.Pop(7, 5))
	require.Equal(t, 1, o.Len())
}

func TestPopFindsLaterEntry(t *testing.T) {
	o := outbox.New()
	o.Push(1, 4)
	o.Push(2, 4)
	require.True(t, o.Pop(1, 4)) // walks past the most recent push
	require.Equal(t, 1, o.Len())
}

func TestDestroy(t *testing.T) {
	o := outbox.New()
	o.Push(1, 4)
	o.Push(2, 4)
	o.Destroy()
	require.Equal(t, 0, o.Len())
}
